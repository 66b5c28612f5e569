package config

import (
	"errors"
	"io/fs"
	"os"
)

// FileSystem abstracts the file reads the Loader performs.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
	UserHomeDir() (string, error)
	IsNotExist(err error) bool
}

// RealFileSystem implements FileSystem using the os package.
type RealFileSystem struct{}

// ReadFile reads the named file and returns the contents.
func (r *RealFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name) // #nosec G304 -- paths are the user's own config and .env files
}

// UserHomeDir returns the current user's home directory.
func (r *RealFileSystem) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

// IsNotExist reports whether err means the file does not exist.
func (r *RealFileSystem) IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
