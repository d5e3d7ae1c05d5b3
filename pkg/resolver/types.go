// Package resolver implements the hierarchical defaults-list resolver: given
// a root element (or a pre-built defaults list plus overrides) and a
// ConfigRepository capable of loading documents, it produces a flat, ordered,
// deduplicated list of fully qualified configuration selections.
//
// The algorithm is a straight port of the recursive expansion used by
// config-composition systems built around named config groups, re-architected
// with value semantics (every transformation clones rather than mutates) and
// an added cycle guard (see cycle.go) that the original algorithm leaves
// implicit.
//
// Copyright (c) 2024 BkpDir Contributors
// Licensed under the MIT License
package resolver

// selfSentinel is the reserved config_name meaning "insert the enclosing
// document at this position in its own defaults list".
const selfSentinel = "_self_"

// keepSentinel is the reserved config_name meaning "do not register this
// entry's FQGN in the group-choice table".
const keepSentinel = "_keep_"

// Kind tags the sum type a DefaultEntry's attributes encode: exactly one of
// Self, Rename, Add, or Selection, chosen by ConfigName and the presence of
// Package2/IsAddOnly. Modeling it explicitly makes the kernel's dispatch in
// expand.go exhaustive rather than an implicit flag soup.
type Kind int

const (
	// KindSelection is an ordinary group member reference, recursed into.
	KindSelection Kind = iota
	// KindSelf is the _self_ placeholder.
	KindSelf
	// KindRename is a package-rename directive (Package2 set).
	KindRename
	// KindAdd is a +group=name pure-addition entry.
	KindAdd
)

// DefaultEntry is the single value type flowing through the resolver. Entries
// loaded from a document are treated as immutable templates: every
// transformation in this package clones before mutating ConfigName or
// Package, per the value-semantics requirement.
type DefaultEntry struct {
	// ConfigGroup is the optional group identifier, "" when absent.
	ConfigGroup string
	// ConfigName is the non-empty document name, or the sentinel "_self_".
	ConfigName string
	// Package is the optional target package, "" when absent.
	Package string
	// Package2 is the optional rename target; its presence makes this a
	// package-rename directive rather than a selection.
	Package2 string
	// Optional, when true, means a missing document is dropped rather than
	// raising MissingConfig.
	Optional bool
	// IsAddOnly, when true, means this entry must not already be present
	// (+group=name).
	IsAddOnly bool
	// FromOverride distinguishes user-supplied entries from document-embedded
	// ones. It affects only diagnostics.
	FromOverride bool
}

// ConfigPath returns "{group}/{name}" when a group is present, else name.
func (d DefaultEntry) ConfigPath() string {
	if d.ConfigGroup != "" {
		return d.ConfigGroup + "/" + d.ConfigName
	}
	return d.ConfigName
}

// FQGN returns the fully qualified group name: "{group}@{package}" when
// package is set, else "{group}". This is the identity under which group
// choices and dedup membership are tracked.
func (d DefaultEntry) FQGN() string {
	if d.Package != "" {
		return d.ConfigGroup + "@" + d.Package
	}
	return d.ConfigGroup
}

// SubjectPackage returns Package2 if present, else Package. It is the package
// a rename directive writes into matching entries.
func (d DefaultEntry) SubjectPackage() string {
	if d.Package2 != "" {
		return d.Package2
	}
	return d.Package
}

// Kind classifies d into the tagged variant the expansion kernel dispatches
// on.
func (d DefaultEntry) Kind() Kind {
	switch {
	case d.ConfigName == selfSentinel:
		return KindSelf
	case d.Package2 != "":
		return KindRename
	case d.IsAddOnly:
		return KindAdd
	default:
		return KindSelection
	}
}

// Header is the metadata exposed by a loaded document alongside its defaults
// list.
type Header struct {
	// Package is the document's declared package, "" meaning root/none.
	Package string
}

// LoadedDocument is what a ConfigRepository returns for a located config_path.
type LoadedDocument struct {
	DefaultsList []DefaultEntry
	Header       Header
}

// Source describes one entry in a repository's search path, for formatting
// MissingConfig diagnostics.
type Source struct {
	Path     string
	Provider string
}
