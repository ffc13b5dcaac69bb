package rendercache

import (
	"fmt"
	"path"
	"path/filepath"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/notefonts/core"
	"github.com/npillmayer/notefonts/core/font"
	"github.com/npillmayer/notefonts/core/locate/resources"
)

// RevisionFile is the name of the revision marker in the runtime directory.
const RevisionFile = "revision"

// Options configures a cache.
type Options struct {
	// FS is used for all file access. Defaults to the OS file system.
	FS resources.FileSystem
	// Persistent enables writing images to CacheDir.
	Persistent bool
	// CacheDir is the writable runtime directory.
	CacheDir string
	// ResourceDir is a read-only directory of pre-rendered images.
	// May be empty.
	ResourceDir string
	// Revision invalidates persisted images of other revisions.
	Revision string
	// Debug makes duplicate stores panic.
	Debug bool
}

// Cache stores glyph images by face key and glyph index.
type Cache struct {
	opts       Options
	persistent bool
	mem        *treemap.Map // entry -> font.GlyphImage
	index      map[string]fileInfo
}

type entry struct {
	face  font.FaceKey
	glyph font.GlyphIndex
}

func entryComparator(a, b interface{}) int {
	e1, e2 := a.(entry), b.(entry)
	if c := e1.face.Compare(e2.face); c != 0 {
		return c
	}
	switch {
	case e1.glyph < e2.glyph:
		return -1
	case e1.glyph > e2.glyph:
		return 1
	}
	return 0
}

// New creates a cache. Persistence is off until Init succeeds.
func New(opts Options) *Cache {
	if opts.FS == nil {
		opts.FS = resources.OSFileSystem{}
	}
	return &Cache{
		opts: opts,
		mem:  treemap.NewWith(entryComparator),
	}
}

// Init prepares the runtime directory. If the revision marker does not match
// the configured revision, all files in the directory are removed. Then the
// directory is created and the marker written.
//
// If persistence is disabled, Init does nothing. If the directory is not
// usable, persistence is switched off and an error with code EUNAVAILABLE is
// returned; the cache still works in memory.
func (c *Cache) Init() error {
	c.persistent = false
	if !c.opts.Persistent {
		return nil
	}
	if c.opts.CacheDir == "" {
		return core.Error(core.EUNAVAILABLE, "no SDF cache directory configured")
	}
	fs := c.opts.FS
	revisionPath := c.join(c.opts.CacheDir, RevisionFile)
	needClear := true
	if fs.Exists(revisionPath) {
		if data, err := fs.ReadFile(revisionPath); err == nil && string(data) == c.opts.Revision {
			needClear = false
		}
	}
	if needClear {
		if files, err := fs.ScanFiles(c.opts.CacheDir, ""); err == nil {
			tracer().Infof("SDF cache revision changed, removing %d files", len(files))
			for _, p := range files {
				if err := fs.Remove(p); err != nil {
					tracer().Errorf("failed remove file: %s", p)
				}
			}
		}
	}
	if err := fs.MakePath(c.opts.CacheDir); err != nil {
		tracer().Errorf("SDF cache directory not available: %v", err)
		return core.WrapError(err, core.EUNAVAILABLE, "SDF cache not available")
	}
	if err := fs.WriteFile(revisionPath, []byte(c.opts.Revision)); err != nil {
		tracer().Errorf("failed write SDF cache revision: %v", err)
		return core.WrapError(err, core.EUNAVAILABLE, "SDF cache not available")
	}
	c.persistent = true
	c.index = nil
	return nil
}

// IsPersistent is true if images are written to disk.
func (c *Cache) IsPersistent() bool {
	return c.persistent
}

// Len returns the number of images held in memory.
func (c *Cache) Len() int {
	return c.mem.Size()
}

// Lookup returns an image held in memory, without consulting the disk.
func (c *Cache) Lookup(face font.FaceKey, glyph font.GlyphIndex) (font.GlyphImage, bool) {
	if v, ok := c.mem.Get(entry{face, glyph}); ok {
		return v.(font.GlyphImage), true
	}
	return font.GlyphImage{}, false
}

// Load returns the image for a glyph. It checks memory first, then the disk
// index, which is built on first use. Images found on disk are moved into
// memory. If nothing is found, false is returned and the caller has to
// render the image.
func (c *Cache) Load(face font.FaceKey, glyph font.GlyphIndex) (font.GlyphImage, bool) {
	if img, ok := c.Lookup(face, glyph); ok {
		return img, true
	}
	if c.index == nil {
		c.buildIndex()
	}
	info, ok := c.index[KeyString(face, glyph)]
	if !ok {
		return font.GlyphImage{}, false
	}
	data, err := c.opts.FS.ReadFile(info.path)
	if err != nil {
		tracer().Errorf("failed read file: %s", info.path)
		return font.GlyphImage{}, false
	}
	if len(data) != info.width*info.height {
		tracer().Errorf("cached image %s has %d bytes, expected %dx%d", info.path, len(data), info.width, info.height)
		return font.GlyphImage{}, false
	}
	img := font.GlyphImage{
		Rect: info.rect,
		Sdf:  font.Sdf{Width: info.width, Height: info.height, Bitmap: data},
	}
	c.put(face, glyph, img)
	return img, true
}

// Store adds an image and persists it, if enabled. Storing a key twice is a
// programming error.
func (c *Cache) Store(face font.FaceKey, glyph font.GlyphIndex, img font.GlyphImage) {
	c.put(face, glyph, img)
	if !c.persistent {
		return
	}
	p := c.join(c.opts.CacheDir, FileName(face, glyph, img))
	if err := c.opts.FS.WriteFile(p, img.Sdf.Bitmap); err != nil {
		tracer().Errorf("failed open to write file: %s", p)
	}
}

func (c *Cache) put(face font.FaceKey, glyph font.GlyphIndex, img font.GlyphImage) {
	e := entry{face, glyph}
	if _, exists := c.mem.Get(e); exists {
		msg := fmt.Sprintf("duplicate SDF cache entry %s", KeyString(face, glyph))
		if c.opts.Debug {
			panic(msg)
		}
		tracer().Errorf("%s", msg)
		return
	}
	c.mem.Put(e, img)
}

// buildIndex scans the resource directory, then the runtime directory. The
// first entry found for a key wins.
func (c *Cache) buildIndex() {
	c.index = make(map[string]fileInfo)
	if c.opts.ResourceDir != "" {
		c.scan(c.opts.ResourceDir)
	}
	if c.persistent {
		c.scan(c.opts.CacheDir)
	}
	tracer().Debugf("SDF cache index has %d entries", len(c.index))
}

func (c *Cache) scan(dir string) {
	files, err := c.opts.FS.ScanFiles(dir, FileSuffix)
	if err != nil {
		tracer().Debugf("cannot scan SDF cache dir %s: %v", dir, err)
		return
	}
	for _, p := range files {
		key, info, ok := ParseFileName(p)
		if !ok {
			continue
		}
		if _, exists := c.index[key]; !exists {
			c.index[key] = info
		}
	}
}

func (c *Cache) join(dir, name string) string {
	if resources.IsResourcePath(dir) {
		return path.Join(dir, name)
	}
	return filepath.Join(dir, name)
}
