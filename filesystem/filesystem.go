// Package filesystem provides a virtualized abstraction layer for all filesystem operations.
//
// It utilizes the afero library to allow seamless switching between OS-level and in-memory filesystem backends.
package filesystem

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the filesystem backend to the native operating system implementation.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs initializes a volatile in-memory filesystem backend for unit testing and CI environments.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// WriteAtomic writes data to a sibling temporary file and renames it over path,
// so readers never observe a partially written file.
func WriteAtomic(path string, data []byte, perm os.FileMode) error {
	fs := API()
	if err := fs.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := fs.WriteFile(tmp, data, perm); err != nil {
		return err
	}

	if err := fs.Rename(tmp, path); err != nil {
		_ = fs.Remove(tmp)
		return err
	}
	return nil
}
