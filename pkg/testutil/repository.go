package testutil

import "defaultslist/pkg/resolver"

// Doc is one fixture document: its defaults list and declared package.
type Doc struct {
	Defaults []resolver.DefaultEntry
	Package  string
}

// MapConfigRepository is an in-memory resolver.ConfigRepository over a fixed
// set of named documents, for resolver/overrides tests that don't need real
// file I/O. configrepo.FilesystemConfigRepository is the disk-backed
// counterpart.
type MapConfigRepository struct {
	Docs    map[string]Doc
	Sources []resolver.Source
}

// NewMapConfigRepository builds a MapConfigRepository over docs, reporting a
// single synthetic "testutil://fixtures" source.
func NewMapConfigRepository(docs map[string]Doc) *MapConfigRepository {
	return &MapConfigRepository{
		Docs:    docs,
		Sources: []resolver.Source{{Path: "testutil://fixtures", Provider: "testutil"}},
	}
}

// LoadConfig implements resolver.ConfigRepository.
func (r *MapConfigRepository) LoadConfig(path string, isPrimaryConfig bool) (*resolver.LoadedDocument, error) {
	d, ok := r.Docs[path]
	if !ok {
		return nil, nil
	}
	return &resolver.LoadedDocument{
		DefaultsList: append([]resolver.DefaultEntry(nil), d.Defaults...),
		Header:       resolver.Header{Package: d.Package},
	}, nil
}

// GetSources implements resolver.ConfigRepository.
func (r *MapConfigRepository) GetSources() []resolver.Source {
	return r.Sources
}

// StandardFixtures returns a set of small documents, named after the
// scenario they exercise.
func StandardFixtures() map[string]Doc {
	return map[string]Doc{
		"no_defaults": {},
		"duplicate_self": {
			Defaults: []resolver.DefaultEntry{{ConfigName: "_self_"}, {ConfigName: "_self_"}},
		},
		"explicit_trailing_self": {
			Defaults: []resolver.DefaultEntry{{ConfigName: "no_defaults"}, {ConfigName: "_self_"}},
		},
		"implicit_self": {
			Defaults: []resolver.DefaultEntry{{ConfigName: "no_defaults"}},
		},
		"leading_self": {
			Defaults: []resolver.DefaultEntry{{ConfigName: "_self_"}, {ConfigName: "no_defaults"}},
		},
		"a/a1": {},
		"a/a2": {
			Defaults: []resolver.DefaultEntry{{ConfigGroup: "b", ConfigName: "b1"}},
			Package:  "a",
		},
		"a/global": {
			Package: "_global_",
		},
		"b/b1": {
			Package: "b",
		},
	}
}

// NewStandardRepository builds a MapConfigRepository over StandardFixtures.
func NewStandardRepository() *MapConfigRepository {
	return NewMapConfigRepository(StandardFixtures())
}
