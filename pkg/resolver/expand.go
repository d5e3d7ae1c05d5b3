package resolver

import (
	errs "defaultslist/pkg/errors"
)

// ComputeElementDefaults resolves a single root element (typically the
// primary config). It initializes an empty group-choice table and drives the
// recursive expander on element.
func ComputeElementDefaults(element DefaultEntry, repo ConfigRepository) ([]DefaultEntry, error) {
	groupToChoice := make(map[string]string)
	return computeElementDefaultsImpl(element, groupToChoice, repo, newCycleGuard())
}

// ExpandDefaults resolves a pre-built list (typically
// [primaryRoot, ...overridesConvertedToEntries]). Before recursing it seeds
// the group-choice table by scanning defaults in reverse and, for each entry
// whose ConfigGroup is set, recording the first FQGN it encounters. Because
// the scan is reversed, the textually last override for a group is seen
// first and pins the choice: last-override-wins.
func ExpandDefaults(selfName string, defaults []DefaultEntry, repo ConfigRepository) ([]DefaultEntry, error) {
	groupToChoice := make(map[string]string)
	for i := len(defaults) - 1; i >= 0; i-- {
		d := defaults[i]
		if d.ConfigGroup == "" {
			continue
		}
		if _, ok := groupToChoice[d.FQGN()]; !ok {
			groupToChoice[d.FQGN()] = d.ConfigName
		}
	}
	return expandDefaultsListImpl(selfName, defaults, groupToChoice, repo, newCycleGuard())
}

// computeElementDefaultsImpl loads element's document, normalizes its
// embedded _self_ entry (inserting one if absent), and recurses into the
// expansion kernel with self_name = element.ConfigName.
func computeElementDefaultsImpl(
	element DefaultEntry,
	groupToChoice map[string]string,
	repo ConfigRepository,
	guard *cycleGuard,
) ([]DefaultEntry, error) {
	path := element.ConfigPath()
	if err := guard.enter(path); err != nil {
		return nil, err
	}
	defer guard.exit(path)

	doc, err := repo.LoadConfig(path, false)
	if err != nil {
		return nil, err
	}

	effectivePackage := element.Package
	var defaults []DefaultEntry
	switch {
	case doc == nil && element.Optional:
		// Missing but tolerated: contributes nothing, not even a synthetic self.
		return nil, nil
	case doc == nil:
		return nil, errs.NewMissingConfig(path, searchPaths(repo))
	default:
		defaults = append([]DefaultEntry(nil), doc.DefaultsList...)
		if effectivePackage == "" {
			effectivePackage = doc.Header.Package
		}
	}

	hasSelf := false
	for i := range defaults {
		if defaults[i].ConfigName != selfSentinel {
			continue
		}
		if hasSelf {
			return nil, errs.NewComposition("compute_element_defaults", "Duplicate _self_ defined in %s", path)
		}
		if defaults[i].ConfigGroup != "" {
			return nil, errs.NewComposition("compute_element_defaults", "Invalid _self_ entry in %s: config_group must be unset, got %q", path, defaults[i].ConfigGroup)
		}
		hasSelf = true
		defaults[i].ConfigGroup = element.ConfigGroup
		defaults[i].Package = effectivePackage
	}
	if !hasSelf {
		self := DefaultEntry{ConfigGroup: element.ConfigGroup, ConfigName: selfSentinel, Package: effectivePackage}
		defaults = append([]DefaultEntry{self}, defaults...)
	}

	return expandDefaultsListImpl(element.ConfigName, defaults, groupToChoice, repo, guard)
}

// expandDefaultsListImpl is the algorithmic heart (§4.3). It walks defaults in
// reverse, dispatching each entry by Kind, then reverses and flattens the
// emitted sublists to forward order before running the rename pass, the
// add-only conflict check, and deduplication.
func expandDefaultsListImpl(
	selfName string,
	defaults []DefaultEntry,
	groupToChoice map[string]string,
	repo ConfigRepository,
	guard *cycleGuard,
) ([]DefaultEntry, error) {
	sublists := make([][]DefaultEntry, 0, len(defaults))

	for i := len(defaults) - 1; i >= 0; i-- {
		d := defaults[i]

		var sublist []DefaultEntry
		switch d.Kind() {
		case KindSelf:
			if selfName == "" {
				return nil, errs.NewComposition("expand_defaults", "self_name is not specified and defaults list contains a _self_ item")
			}
			if name, ok := groupToChoice[d.FQGN()]; ok {
				d.ConfigName = name
			} else {
				d.ConfigName = selfName
			}
			sublist = []DefaultEntry{d}

		case KindRename, KindAdd:
			sublist = []DefaultEntry{d}

		default: // KindSelection
			if name, ok := groupToChoice[d.FQGN()]; ok {
				d.ConfigName = name
			}
			expanded, err := computeElementDefaultsImpl(d, groupToChoice, repo, guard)
			if err != nil {
				return nil, err
			}
			sublist = expanded
		}

		sublists = append(sublists, sublist)

		for j := len(sublist) - 1; j >= 0; j-- {
			dd := sublist[j]
			if dd.ConfigGroup == "" || dd.ConfigName == keepSentinel {
				continue
			}
			fqgn := dd.FQGN()
			if _, ok := groupToChoice[fqgn]; !ok {
				groupToChoice[fqgn] = dd.ConfigName
			}
		}
	}

	provisional := make([]DefaultEntry, 0, len(defaults))
	for i := len(sublists) - 1; i >= 0; i-- {
		provisional = append(provisional, sublists[i]...)
	}

	renamed, err := applyRenames(provisional)
	if err != nil {
		return nil, err
	}

	if err := checkAddOnlyConflicts(renamed); err != nil {
		return nil, err
	}

	return deduplicate(renamed), nil
}

// applyRenames implements §4.4: repeatedly finds the rightmost rename
// directive, removes it, and overwrites the Package of every remaining entry
// whose ConfigGroup and Package (its source package) match. Each iteration
// removes exactly one directive and never reintroduces one, so the loop is
// bounded by the input's rename count.
func applyRenames(list []DefaultEntry) ([]DefaultEntry, error) {
	for {
		lastIdx := -1
		for i := len(list) - 1; i >= 0; i-- {
			if list[i].Kind() == KindRename {
				lastIdx = i
				break
			}
		}
		if lastIdx == -1 {
			return list, nil
		}

		rename := list[lastIdx]
		list = append(append([]DefaultEntry{}, list[:lastIdx]...), list[lastIdx+1:]...)

		renamed := false
		for i := range list {
			if list[i].ConfigGroup == rename.ConfigGroup && list[i].Package == rename.Package {
				list[i].Package = rename.SubjectPackage()
				renamed = true
			}
		}
		if !renamed {
			return nil, errs.NewComposition(
				"apply_renames",
				"Could not rename package. No match for '%s@%s' in the defaults list",
				rename.ConfigGroup, rename.Package,
			)
		}
	}
}

// checkAddOnlyConflicts implements §4.5: walking in reverse, every
// is_add_only entry must have no earlier entry sharing its FQGN.
func checkAddOnlyConflicts(list []DefaultEntry) error {
	for i := len(list) - 1; i >= 0; i-- {
		if list[i].Kind() != KindAdd {
			continue
		}
		fqgn := list[i].FQGN()
		for j := 0; j < i; j++ {
			if list[j].FQGN() == fqgn {
				return errs.NewComposition(
					"check_add_only",
					"Could not add '%s=%s'. '%s' is already in the defaults list.",
					fqgn, list[i].ConfigName, fqgn,
				)
			}
		}
	}
	return nil
}

// deduplicate implements §4.6: the first occurrence of each FQGN wins;
// group-less entries always pass through.
func deduplicate(list []DefaultEntry) []DefaultEntry {
	seen := make(map[string]bool, len(list))
	out := make([]DefaultEntry, 0, len(list))
	for _, d := range list {
		if d.ConfigGroup == "" {
			out = append(out, d)
			continue
		}
		fqgn := d.FQGN()
		if seen[fqgn] {
			continue
		}
		seen[fqgn] = true
		out = append(out, d)
	}
	return out
}
