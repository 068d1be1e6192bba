// Package helpers contains small filesystem and process helpers used by the
// command line tool and the HTTP server.
package helpers

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// UserDir is the name of the qruuid directory in the user's home directory.
const UserDir = ".qruuid"

// ProjectUserPath returns the directory in which the user's configuration
// and log files are kept.
func ProjectUserPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	if home == "" {
		return "", errors.New("empty home directory")
	}
	return filepath.Join(home, UserDir), nil
}

// AbsolutePath returns path joined to root unless path is already absolute.
func AbsolutePath(path, root string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// SetLogsFile redirects the standard logger to logFilePath, creating the file
// and its parent directories when needed.
func SetLogsFile(fs afero.Fs, logFilePath string) error {
	if err := fs.MkdirAll(filepath.Dir(logFilePath), 0700); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	logFile, err := fs.OpenFile(
		logFilePath,
		os.O_APPEND|os.O_WRONLY|os.O_CREATE,
		0600,
	)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	log.SetOutput(logFile)
	return nil
}

// SetUpPidFile writes the PID of the current process in pidFile.
func SetUpPidFile(fs afero.Fs, pidFile string) error {
	return afero.WriteFile(fs, pidFile, []byte(fmt.Sprintf("%d\n", os.Getpid())), 0644)
}

// RemovePidFile removes a PID file created with SetUpPidFile. Missing files
// are not an error.
func RemovePidFile(fs afero.Fs, pidFile string) error {
	err := fs.Remove(pidFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
