// Package overrides turns the command-line override grammar into
// resolver.DefaultEntry values (or delete directives), so the resolver core
// never has to know about override syntax. This is the adapter the resolver
// spec treats as an external collaborator.
//
// Copyright (c) 2024 BkpDir Contributors
// Licensed under the MIT License
package overrides

import (
	"fmt"
	"strings"

	"defaultslist/pkg/resolver"
)

// Kind tags whether a parsed override adds/selects a DefaultEntry or removes
// matching entries from a defaults list before the resolver ever sees them.
type Kind int

const (
	// KindEntry means Override.Entry is populated.
	KindEntry Kind = iota
	// KindDelete means Override.Delete is populated.
	KindDelete
)

// DeleteDirective removes entries matching Group (and, if set, Name) from a
// defaults list. The resolver core has no concept of deletion: per the
// design notes, the parser/facade must apply these before calling the
// resolver.
type DeleteDirective struct {
	Group string
	Name  string // "" means "any name in Group"
}

// Override is the parsed form of a single command-line override string.
type Override struct {
	Kind   Kind
	Entry  resolver.DefaultEntry
	Delete DeleteDirective
}

// Parse converts one override string into an Override. Supported forms:
//
//	G=v          plain override
//	G@p=v        package assignment
//	G@p1:p2=v    package rename
//	+G=v         addition (is_add_only)
//	~G / ~G=v    deletion directive
func Parse(raw string) (Override, error) {
	if raw == "" {
		return Override{}, fmt.Errorf("empty override")
	}

	isAdd := false
	isDelete := false
	body := raw
	switch body[0] {
	case '+':
		isAdd = true
		body = body[1:]
	case '~':
		isDelete = true
		body = body[1:]
	}

	left, value, hasValue := cutOnce(body, "=")
	if left == "" {
		return Override{}, fmt.Errorf("malformed override %q: missing group", raw)
	}
	group, pkg1, pkg2 := splitGroupAndPackages(left)

	if isDelete {
		return Override{Kind: KindDelete, Delete: DeleteDirective{Group: group, Name: value}}, nil
	}

	if !hasValue || value == "" {
		return Override{}, fmt.Errorf("malformed override %q: missing value", raw)
	}
	if isAdd && pkg2 != "" {
		return Override{}, fmt.Errorf("malformed override %q: addition cannot be combined with a package rename", raw)
	}

	entry := resolver.DefaultEntry{
		ConfigGroup:  group,
		ConfigName:   value,
		Package:      pkg1,
		Package2:     pkg2,
		IsAddOnly:    isAdd,
		FromOverride: true,
	}
	return Override{Kind: KindEntry, Entry: entry}, nil
}

// ParseAll parses every raw override, splitting the results into entries
// (ready to hand to resolver.ExpandDefaults) and delete directives (to be
// applied with ApplyDeletes first).
func ParseAll(raws []string) (entries []resolver.DefaultEntry, deletes []DeleteDirective, err error) {
	for _, raw := range raws {
		o, perr := Parse(raw)
		if perr != nil {
			return nil, nil, perr
		}
		switch o.Kind {
		case KindDelete:
			deletes = append(deletes, o.Delete)
		default:
			entries = append(entries, o.Entry)
		}
	}
	return entries, deletes, nil
}

// ApplyDeletes removes every entry matching a delete directive (same group,
// and same name when the directive names one) from entries.
func ApplyDeletes(entries []resolver.DefaultEntry, deletes []DeleteDirective) []resolver.DefaultEntry {
	if len(deletes) == 0 {
		return entries
	}
	out := make([]resolver.DefaultEntry, 0, len(entries))
	for _, e := range entries {
		matched := false
		for _, d := range deletes {
			if e.ConfigGroup != d.Group {
				continue
			}
			if d.Name != "" && e.ConfigName != d.Name {
				continue
			}
			matched = true
			break
		}
		if !matched {
			out = append(out, e)
		}
	}
	return out
}

// splitGroupAndPackages splits "G", "G@p", or "G@p1:p2" into its parts.
func splitGroupAndPackages(left string) (group, pkg1, pkg2 string) {
	g, pkgSpec, hasPkg := cutOnce(left, "@")
	if !hasPkg {
		return left, "", ""
	}
	p1, p2, hasRename := cutOnce(pkgSpec, ":")
	if !hasRename {
		return g, pkgSpec, ""
	}
	return g, p1, p2
}

// cutOnce splits s on the first occurrence of sep, reporting whether sep was
// found.
func cutOnce(s, sep string) (before, after string, found bool) {
	idx := strings.Index(s, sep)
	if idx < 0 {
		return s, "", false
	}
	return s[:idx], s[idx+1:], true
}
