package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver finds config and data files relative to the user's config
// dir, the executable and the working directory.
type PathResolver struct {
	executableDir string
	homeDir       string
	configDir     string
}

// NewPathResolver creates a path resolver for the running executable.
func NewPathResolver(appName string) (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executableDir: filepath.Dir(execPath),
		homeDir:       homeDir,
		configDir:     configDirFor(homeDir, appName),
	}
	log.Debugf("PathResolver initialized: execDir=%s, configDir=%s", pr.executableDir, pr.configDir)
	return pr, nil
}

// configDirFor returns the platform config directory for appName.
func configDirFor(homeDir, appName string) string {
	switch runtime.GOOS {
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, appName)
		}
		return filepath.Join(homeDir, ".config", appName)
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
		return filepath.Join(homeDir, "AppData", "Roaming", appName)
	default:
		return filepath.Join(homeDir, ".config", appName)
	}
}

// GetConfigPath returns a writable location for filename, falling back to
// the temp dir when the config dir is read-only.
func (pr *PathResolver) GetConfigPath(filename string) string {
	if isWritableDir(pr.configDir) {
		return filepath.Join(pr.configDir, filename)
	}
	for _, dir := range []string{pr.executableDir, os.TempDir()} {
		if isWritableDir(dir) {
			path := filepath.Join(dir, filename)
			log.Warnf("Using fallback config location: %s", path)
			return path
		}
	}
	return filepath.Join(os.TempDir(), filename)
}

// FindFile resolves a data file: absolute paths as-is, otherwise the first
// existing match relative to the working dir, the executable dir or the
// config dir. The cwd-relative path is returned when nothing exists.
func (pr *PathResolver) FindFile(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	var candidates []string
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, name))
	}
	candidates = append(candidates,
		filepath.Join(pr.executableDir, name),
		filepath.Join(pr.configDir, name),
	)
	for _, path := range candidates {
		if FileExists(path) {
			log.Debugf("Resolved %s to %s", name, path)
			return path
		}
	}
	return candidates[0]
}
