package installer

import (
	"os"
	"path/filepath"
)

// pythonInterpreters in discovery order.
var pythonInterpreters = []string{"python3", "python"}

// findPython returns the first python interpreter discoverable on the
// search path. Absence is a warning condition, never a failure.
func (i *Installer) findPython() (string, bool) {
	for _, name := range pythonInterpreters {
		if path, err := i.opts.LookPath(name); err == nil {
			return path, true
		}
	}

	return "", false
}

// VenvActivateScript is the activation resource inside a virtual
// environment, sourced by the generated Exec line.
func VenvActivateScript(venvDir string) string {
	return filepath.Join(venvDir, "bin", "activate")
}

func venvExists(venvDir string) bool {
	info, err := os.Stat(VenvActivateScript(venvDir))
	return err == nil && !info.IsDir()
}
