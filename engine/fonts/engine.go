package fonts

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/notefonts/core/font"
	"github.com/npillmayer/notefonts/core/font/fontface"
	"github.com/npillmayer/notefonts/core/font/fontregistry"
	"github.com/npillmayer/notefonts/core/locate/resources"
	"github.com/npillmayer/notefonts/engine/rendercache"
	"github.com/npillmayer/notefonts/engine/sdf"
)

// Engine constants.
const (
	// DefaultPixelSize is used for requests without a size.
	DefaultPixelSize = 100
	// SymbolsPixelSize is the fixed request size in symbol mode.
	SymbolsPixelSize = 200
	// LoadedPixelSize is the reference size faces are loaded at.
	LoadedPixelSize = fontface.LoadedPixelSize
	// TextLineScale is the line height of rendered text, relative to the
	// pixel size.
	TextLineScale = 1.2
)

// glyphs which are never rendered
var notRendered = map[font.GlyphIndex]struct{}{
	3: {}, // space
}

// SDFGenerator renders a glyph outline to a distance field image.
type SDFGenerator interface {
	Generate(shape *font.Shape) font.GlyphImage
}

// RequiredFace is a resolved font request: a loaded face together with the
// factor from the face's reference size to the requested pixel size.
type RequiredFace struct {
	key        font.FaceKey
	face       font.Face
	symbolMode bool
}

// Key is the request key, after defaults have been applied.
func (rf *RequiredFace) Key() font.FaceKey { return rf.key }

// Face is the loaded face serving the request.
func (rf *RequiredFace) Face() font.Face { return rf.face }

// IsSymbolMode is true if the request has been resolved in symbol mode.
func (rf *RequiredFace) IsSymbolMode() bool { return rf.symbolMode }

// PixelScale is requested pixel size / loaded pixel size.
func (rf *RequiredFace) PixelScale() float64 {
	if rf == nil || rf.face == nil {
		return 0
	}
	loaded := rf.face.Key().PixelSize
	if loaded <= 0 {
		loaded = LoadedPixelSize
	}
	return float64(rf.key.PixelSize) / float64(loaded)
}

func (rf *RequiredFace) scaled(v font.F26Dot6) float64 {
	return font.FromF26Dot6Scaled(v, rf.PixelScale())
}

// loadedKey identifies a loaded face.
type loadedKey struct {
	data       font.FontDataKey
	symbolMode bool
}

func loadedKeyComparator(a, b interface{}) int {
	k1, k2 := a.(loadedKey), b.(loadedKey)
	if k1.symbolMode != k2.symbolMode {
		if !k1.symbolMode {
			return -1
		}
		return 1
	}
	return k1.data.Compare(k2.data)
}

// Engine resolves font requests and answers metric and rendering queries.
type Engine struct {
	db        *fontregistry.Database
	fs        resources.FileSystem
	factory   font.FaceFactory
	cache     *rendercache.Cache
	generator SDFGenerator
	required  []*RequiredFace
	loaded    *treemap.Map // loadedKey -> font.Face
}

// Option configures an engine.
type Option func(*Engine)

// WithFaceFactory sets the factory used to create faces for font files.
// The default is fontface.DefaultFactory.
func WithFaceFactory(factory font.FaceFactory) Option {
	return func(e *Engine) {
		e.factory = factory
	}
}

// WithRenderCache sets the cache for rendered glyphs. The default is an
// in-memory cache.
func WithRenderCache(cache *rendercache.Cache) Option {
	return func(e *Engine) {
		e.cache = cache
	}
}

// WithSDFGenerator sets the generator for glyph images.
func WithSDFGenerator(g SDFGenerator) Option {
	return func(e *Engine) {
		e.generator = g
	}
}

// WithFileSystem sets the file system the default face factory and the
// default render cache read from. The default is the file system of the
// font database.
func WithFileSystem(fsys resources.FileSystem) Option {
	return func(e *Engine) {
		e.fs = fsys
	}
}

// NewEngine creates an engine resolving fonts through db. The render cache
// is initialized; if its runtime directory is unusable, rendered glyphs
// are kept in memory only.
func NewEngine(db *fontregistry.Database, opts ...Option) *Engine {
	e := &Engine{
		db:     db,
		loaded: treemap.NewWith(loadedKeyComparator),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.fs == nil {
		e.fs = db.FileSystem()
	}
	if e.factory == nil {
		e.factory = fontface.DefaultFactory(e.fs)
	}
	if e.cache == nil {
		e.cache = rendercache.New(rendercache.Options{FS: e.fs})
	}
	if e.generator == nil {
		e.generator = sdf.DefaultGenerator()
	}
	if err := e.cache.Init(); err != nil {
		tracer().Errorf("render cache: %v", err)
	}
	return e
}

// Database returns the font database of e.
func (e *Engine) Database() *fontregistry.Database {
	return e.db
}

// RenderCache returns the render cache of e.
func (e *Engine) RenderCache() *rendercache.Cache {
	return e.cache
}

// AddSymbolFont registers a music symbol font file with the font database.
// It returns the database ID, or -1 if the file does not exist.
func (e *Engine) AddSymbolFont(family string, path string) int {
	if !e.db.FileSystem().Exists(path) {
		tracer().Errorf("not exists symbol font file: %s", path)
		return -1
	}
	return e.db.AddFont(font.NewFontDataKey(family, false, false), path)
}

// Close releases all faces. Faces will be loaded again on demand.
func (e *Engine) Close() {
	e.required = nil
	e.loaded.Clear()
}

// LoadedFaces is the number of faces currently loaded.
func (e *Engine) LoadedFaces() int {
	return e.loaded.Size()
}

// requestKey applies the defaults to the key of a request.
func requestKey(f font.Font, symbolMode bool) font.FaceKey {
	key := font.FaceKeyFor(f)
	if key.PixelSize <= 0 {
		key.PixelSize = DefaultPixelSize
	}
	if symbolMode {
		key.PixelSize = SymbolsPixelSize
	}
	if key.Purpose == font.Undefined || key.Purpose == font.Unknown {
		key.Purpose = font.Text
	}
	return key
}

// LookupFace returns the face for a request which has been resolved
// before. It never loads a face.
func (e *Engine) LookupFace(f font.Font, symbolMode bool) (*RequiredFace, bool) {
	key := requestKey(f, symbolMode)
	for _, rf := range e.required {
		if rf.key.Equal(key) && rf.symbolMode == symbolMode {
			return rf, true
		}
	}
	return nil, false
}

// ResolveFace returns the face for a request, loading it if necessary.
// The actual font is determined by the font database, which may substitute
// a default font. Faces are shared between requests for the same actual
// font and mode. If no font file can be found or loaded, nil is returned.
func (e *Engine) ResolveFace(f font.Font, symbolMode bool) *RequiredFace {
	if rf, ok := e.LookupFace(f, symbolMode); ok {
		return rf
	}
	key := requestKey(f, symbolMode)
	actual := e.db.ActualFont(key.DataKey, key.Purpose)
	var face font.Face
	if v, ok := e.loaded.Get(loadedKey{actual, symbolMode}); ok {
		face = v.(font.Face)
	} else {
		path := e.db.FontPath(key.DataKey, key.Purpose)
		if path == "" {
			tracer().Errorf("no font file for %s", key)
			return nil
		}
		face = e.factory(path)
		loadKey := font.FaceKey{
			DataKey:   actual,
			Purpose:   key.Purpose,
			PixelSize: LoadedPixelSize,
		}
		if err := face.Load(loadKey, path, symbolMode); err != nil {
			tracer().Errorf("failed load font %s from %s: %v", actual, path, err)
			return nil
		}
		e.loaded.Put(loadedKey{actual, symbolMode}, face)
	}
	rf := &RequiredFace{key: key, face: face, symbolMode: symbolMode}
	e.required = append(e.required, rf)
	tracer().Debugf("font %s resolved to %s, scale %.3f", key, face.Key(), rf.PixelScale())
	return rf
}

func (e *Engine) face(f font.Font, symbolMode bool) *RequiredFace {
	rf := e.ResolveFace(f, symbolMode)
	if rf == nil {
		tracer().Errorf("no face for font %s", f.Family)
	}
	return rf
}
