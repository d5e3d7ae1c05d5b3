package resolver

// ConfigRepository is the external collaborator that maps a config_path to a
// loaded document. It is injected as a capability (never a process-global),
// per the design note against a global config repository.
type ConfigRepository interface {
	// LoadConfig returns the document at path, or (nil, nil) iff it cannot be
	// located. Any other failure mode should be returned as a non-nil error
	// and is propagated upward unchanged.
	LoadConfig(path string, isPrimaryConfig bool) (*LoadedDocument, error)

	// GetSources returns the repository's search path, used only to format
	// MissingConfig diagnostics. Entries whose Provider is "schema" are
	// suppressed from the user-visible search path by searchPaths below.
	GetSources() []Source
}

// searchPaths formats repo's sources for a MissingConfig diagnostic,
// dropping entries contributed by the "schema" provider.
func searchPaths(repo ConfigRepository) []string {
	sources := repo.GetSources()
	paths := make([]string, 0, len(sources))
	for _, s := range sources {
		if s.Provider == "schema" {
			continue
		}
		paths = append(paths, s.Path)
	}
	return paths
}
