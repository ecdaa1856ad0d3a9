package pathutils

import (
	"path/filepath"
	"strings"
)

// RepositoryPathSanitizer normalizes repository path inputs consistently across commands.
type RepositoryPathSanitizer struct {
	homeExpander *HomeExpander
}

// NewRepositoryPathSanitizer constructs a RepositoryPathSanitizer with default behavior.
func NewRepositoryPathSanitizer() *RepositoryPathSanitizer {
	return NewRepositoryPathSanitizerWithExpander(nil)
}

// NewRepositoryPathSanitizerWithExpander constructs a RepositoryPathSanitizer using the provided expander.
func NewRepositoryPathSanitizerWithExpander(homeExpander *HomeExpander) *RepositoryPathSanitizer {
	resolvedExpander := homeExpander
	if resolvedExpander == nil {
		resolvedExpander = NewHomeExpander()
	}
	return &RepositoryPathSanitizer{homeExpander: resolvedExpander}
}

// Sanitize trims whitespace, expands the user's home directory, and cleans the path.
func (sanitizer *RepositoryPathSanitizer) Sanitize(candidatePath string) string {
	trimmedCandidate := strings.TrimSpace(candidatePath)
	if len(trimmedCandidate) == 0 {
		return ""
	}

	expander := sanitizer.resolveExpander()
	expandedPath := expander.Expand(trimmedCandidate)
	if len(expandedPath) == 0 {
		return ""
	}

	return filepath.Clean(expandedPath)
}

func (sanitizer *RepositoryPathSanitizer) resolveExpander() *HomeExpander {
	if sanitizer == nil || sanitizer.homeExpander == nil {
		return NewHomeExpander()
	}
	return sanitizer.homeExpander
}
