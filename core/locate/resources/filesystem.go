package resources

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/npillmayer/notefonts/core"
)

// FileSystem is the file access capability the font subsystems depend on.
type FileSystem interface {
	Exists(path string) bool
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
	// ScanFiles lists the plain files directly contained in dir whose names
	// end with suffix. It returns absolute (or resource) paths, sorted.
	ScanFiles(dir string, suffix string) ([]string, error)
	Remove(path string) error
	MakePath(dir string) error
}

// NotFound returns an application error for a missing resource.
func NotFound(path string) error {
	return core.Error(core.EMISSING, "resource not found: %s", path)
}

// OSFileSystem accesses the operating system's file system.
type OSFileSystem struct{}

var _ FileSystem = OSFileSystem{}

// Exists is true if path names an existing file or directory.
func (OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadFile reads the whole file at path.
func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, core.WrapError(err, core.EMISSING, "file not found: %s", path)
	}
	return data, err
}

// WriteFile writes data to a file at path, replacing existing content.
func (OSFileSystem) WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return core.WrapError(err, core.EUNAVAILABLE, "cannot write file %s", path)
	}
	return nil
}

// ScanFiles lists files in dir ending with suffix. Sub-directories are not
// descended into.
func (OSFileSystem) ScanFiles(dir string, suffix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot scan directory %s", dir)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), suffix) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// Remove removes a file or an empty directory. Removing a non-existing path
// is not an error.
func (OSFileSystem) Remove(path string) error {
	err := os.Remove(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return core.WrapError(err, core.EUNAVAILABLE, "cannot remove %s", path)
}

// MakePath creates dir and all missing parents (with permissions 755).
func (OSFileSystem) MakePath(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return core.WrapError(err, core.EUNAVAILABLE, "cannot create directory %s", dir)
	}
	return nil
}
