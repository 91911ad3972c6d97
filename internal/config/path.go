package config

import (
	"os"
	"path/filepath"
)

// EnvConfigPath names the environment variable that points at a config file.
const EnvConfigPath = "LGREP_CONFIG"

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = ".lgrep.yaml"

// ResolveConfigPath returns the config file to load
// Priority order:
//  1. explicit path (the --config flag), if non-empty
//  2. LGREP_CONFIG environment variable, if set
//  3. .lgrep.yaml in the current working directory
//
// required is true when the user named the file (1 or 2); such a file must
// exist. The working directory file is optional.
func ResolveConfigPath(explicit string) (path string, required bool, err error) {
	if explicit != "" {
		return explicit, true, nil
	}

	if path := os.Getenv(EnvConfigPath); path != "" {
		return path, true, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, err
	}
	return filepath.Join(cwd, DefaultFileName), false, nil
}
