package config

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultOutputDir is the schema directory name under the module root.
const DefaultOutputDir = "schemas"

// ExpandPath expands "~" and a leading "~/" to the user's home directory.
// Other tilde forms such as "~user/x" are returned unchanged.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// FindModuleRoot walks up from startDir to the nearest directory holding a go.mod.
func FindModuleRoot(startDir string) (string, bool) {
	dir := startDir
	for {
		if info, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil && !info.IsDir() {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// ResolveOutputDir picks the output directory, in order of precedence:
// the override (relative to cwd), cfg.OutputDir (relative to the config
// file), then <module root>/schemas, falling back to <cwd>/schemas.
// The result is absolute.
func ResolveOutputDir(override string, cfg *Config, cwd string) (string, error) {
	var dir string
	switch {
	case override != "":
		dir = resolveAgainst(ExpandPath(override), cwd)
	case cfg != nil && cfg.OutputDir != "":
		base := cwd
		if cfg.Path() != "" {
			base = filepath.Dir(cfg.Path())
		}
		dir = resolveAgainst(ExpandPath(cfg.OutputDir), base)
	default:
		root, ok := FindModuleRoot(cwd)
		if !ok {
			root = cwd
		}
		dir = filepath.Join(root, DefaultOutputDir)
	}
	return filepath.Abs(dir)
}

func resolveAgainst(path, base string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}
