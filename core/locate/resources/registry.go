package resources

import (
	"archive/zip"
	"bytes"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/npillmayer/notefonts/core"
)

// ResourcePrefix marks paths served from packaged resources.
const ResourcePrefix = ":/"

// IsResourcePath is true if p denotes a packaged resource.
func IsResourcePath(p string) bool {
	return strings.HasPrefix(p, ResourcePrefix)
}

// Registry serves packaged resources and delegates all other paths to an
// inner FileSystem.
//
// Packaged resources are either entries of registered zip archives or files
// of registered fs.FS instances, mounted at a prefix.
type Registry struct {
	sync.Mutex
	inner  FileSystem
	zipped map[string][]byte // resource path -> zip archive holding it
	mounts map[string]fs.FS  // mount prefix -> file system
}

var _ FileSystem = (*Registry)(nil)

// NewRegistry creates a registry. If inner is nil, non-resource paths are
// served from the operating system.
func NewRegistry(inner FileSystem) *Registry {
	if inner == nil {
		inner = OSFileSystem{}
	}
	return &Registry{
		inner:  inner,
		zipped: make(map[string][]byte),
		mounts: make(map[string]fs.FS),
	}
}

// AddZipData registers a zip archive holding files. File names are relative
// to the resource root and must match entry names inside the archive.
// Files already registered are not overridden.
func (r *Registry) AddZipData(files []string, data []byte) {
	r.Lock()
	defer r.Unlock()
	for _, f := range files {
		p := ResourcePrefix + strings.TrimPrefix(f, "/")
		if _, ok := r.zipped[p]; ok {
			tracer().Errorf("resource %s already registered", p)
			continue
		}
		r.zipped[p] = data
	}
}

// AddFS mounts a file system at a resource prefix, e.g.
//
//	reg.AddFS("fonts", fontsFS)   // serves ":/fonts/..."
func (r *Registry) AddFS(prefix string, fsys fs.FS) {
	r.Lock()
	defer r.Unlock()
	prefix = strings.Trim(prefix, "/")
	if _, ok := r.mounts[prefix]; ok {
		tracer().Errorf("resource mount %s already registered", prefix)
		return
	}
	r.mounts[prefix] = fsys
}

// Exists is true for registered resources and existing files.
func (r *Registry) Exists(p string) bool {
	if !IsResourcePath(p) {
		return r.inner.Exists(p)
	}
	r.Lock()
	defer r.Unlock()
	if _, ok := r.zipped[p]; ok {
		return true
	}
	if fsys, name, ok := r.mountFor(p); ok {
		_, err := fs.Stat(fsys, name)
		return err == nil
	}
	return false
}

// ReadFile reads a resource or a file.
func (r *Registry) ReadFile(p string) ([]byte, error) {
	if !IsResourcePath(p) {
		return r.inner.ReadFile(p)
	}
	r.Lock()
	defer r.Unlock()
	if data, ok := r.zipped[p]; ok {
		return readZipEntry(data, strings.TrimPrefix(p, ResourcePrefix))
	}
	if fsys, name, ok := r.mountFor(p); ok {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, core.WrapError(err, core.EMISSING, "resource not found: %s", p)
		}
		return data, nil
	}
	tracer().Errorf("not found resource: %s", p)
	return nil, NotFound(p)
}

// WriteFile writes a file. Packaged resources are read-only.
func (r *Registry) WriteFile(p string, data []byte) error {
	if IsResourcePath(p) {
		return core.Error(core.EINVALID, "resources are read-only: %s", p)
	}
	return r.inner.WriteFile(p, data)
}

// Remove removes a file. Packaged resources are read-only.
func (r *Registry) Remove(p string) error {
	if IsResourcePath(p) {
		return core.Error(core.EINVALID, "resources are read-only: %s", p)
	}
	return r.inner.Remove(p)
}

// MakePath creates a directory. Resource directories always exist.
func (r *Registry) MakePath(dir string) error {
	if IsResourcePath(dir) {
		return nil
	}
	return r.inner.MakePath(dir)
}

// ScanFiles lists files directly contained in dir. For resource paths, only
// the given directory is scanned, not its sub-directories.
func (r *Registry) ScanFiles(dir string, suffix string) ([]string, error) {
	if !IsResourcePath(dir) {
		return r.inner.ScanFiles(dir, suffix)
	}
	r.Lock()
	defer r.Unlock()
	root := strings.TrimSuffix(dir, "/") + "/"
	var paths []string
	for p := range r.zipped {
		if !strings.HasPrefix(p, root) {
			continue
		}
		rel := p[len(root):]
		if strings.Contains(rel, "/") || !strings.HasSuffix(rel, suffix) {
			continue
		}
		paths = append(paths, p)
	}
	if fsys, name, ok := r.mountFor(dir); ok {
		if entries, err := fs.ReadDir(fsys, name); err == nil {
			for _, e := range entries {
				if !e.IsDir() && strings.HasSuffix(e.Name(), suffix) {
					paths = append(paths, root+e.Name())
				}
			}
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// mountFor finds the mounted file system for a resource path. Caller must
// hold the lock.
func (r *Registry) mountFor(p string) (fs.FS, string, bool) {
	rel := strings.TrimPrefix(p, ResourcePrefix)
	rel = strings.TrimSuffix(rel, "/")
	var found fs.FS
	name, best := "", -1
	for prefix, fsys := range r.mounts { // longest prefix wins
		if len(prefix) <= best {
			continue
		}
		switch {
		case rel == prefix:
			found, name, best = fsys, ".", len(prefix)
		case prefix == "":
			found, name, best = fsys, rel, 0
		case strings.HasPrefix(rel, prefix+"/"):
			found, name, best = fsys, rel[len(prefix)+1:], len(prefix)
		}
	}
	return found, name, found != nil
}

func readZipEntry(data []byte, name string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot open resource archive for %s", name)
	}
	for _, f := range zr.File {
		if path.Clean(f.Name) != path.Clean(name) {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID, "cannot open resource %s", name)
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	tracer().Infof("the file is empty, may not be found, path: %s", name)
	for _, f := range zr.File {
		tracer().Debugf("    archive has %s", f.Name)
	}
	return nil, NotFound(ResourcePrefix + name)
}
