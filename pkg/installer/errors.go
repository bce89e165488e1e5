package installer

import "fmt"

// MissingEntryPointError is returned when the application entry point is
// absent from the repository root. It is detected before any filesystem
// mutation, so a run that fails with it has changed nothing.
type MissingEntryPointError struct {
	Path string
}

func (e *MissingEntryPointError) Error() string {
	return fmt.Sprintf("application entry point not found at %s (run from the repository checkout or pass --repo-root)", e.Path)
}
