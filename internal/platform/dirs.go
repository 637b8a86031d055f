package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// Directory names
const (
	AppDirName = "philologus"
	LogDirName = "logs"

	DefaultDirPermissions = 0755
)

// GetConfigDir returns the per-user configuration directory for the app
func GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to ~/.config
		homeDir, herr := os.UserHomeDir()
		if herr != nil {
			return "", fmt.Errorf("failed to resolve config directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, AppDirName), nil
}

// GetLogDir returns the per-user log directory for the app
func GetLogDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	return filepath.Join(cacheDir, AppDirName, LogDirName), nil
}

// CreateDirectoryIfNotExists creates a directory and its parents if they don't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	return os.MkdirAll(dirPath, DefaultDirPermissions)
}

// IsSupportedOS reports whether folder reveal is implemented for this OS
func IsSupportedOS() bool {
	switch runtime.GOOS {
	case OSDarwin, OSWindows, OSLinux:
		return true
	default:
		return false
	}
}
