package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvConfig names an explicit config file, overriding discovery.
const EnvConfig = "CHECKCODEDOC_CONFIG"

var configFilenames = []string{
	".checkcodedoc.yaml",
	".checkcodedoc.yml",
	".checkcodedoc.toml",
	".checkcodedoc.json",
}

// Find locates the config file for a run. An explicit path (flag, then
// CHECKCODEDOC_CONFIG) must exist; otherwise startDir and its parents are
// searched. An empty result with a nil error means no config file.
func Find(startDir, explicitPath string) (string, error) {
	explicit := strings.TrimSpace(explicitPath)
	if explicit == "" {
		explicit = strings.TrimSpace(os.Getenv(EnvConfig))
	}
	if explicit != "" {
		info, err := os.Stat(explicit)
		if err != nil {
			return "", err
		}
		if info.IsDir() {
			return "", fmt.Errorf("config %q points to a directory", explicit)
		}
		return explicit, nil
	}

	start := strings.TrimSpace(startDir)
	if start == "" {
		start = "."
	}
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		for _, name := range configFilenames {
			candidate := filepath.Join(dir, name)
			if fileExists(candidate) {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
