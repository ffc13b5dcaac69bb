package fontregistry

import (
	"sync"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/notefonts/core"
	"github.com/npillmayer/notefonts/core/font"
	"github.com/npillmayer/notefonts/core/locate/resources"
	"github.com/npillmayer/schuko/tracing"
)

// FontInfo is a font database entry.
type FontInfo struct {
	ID   int
	Key  font.FontDataKey
	Path string
}

// Valid is true for entries created by registration.
func (fi FontInfo) Valid() bool {
	return fi.Key.Valid()
}

// Database is a registry of font files.
type Database struct {
	sync.Mutex
	fs       resources.FileSystem
	nextID   int
	fonts    []FontInfo
	byKey    *treemap.Map // FontDataKey -> index into fonts, first registration wins
	defaults map[font.Purpose]font.FontDataKey
}

// NewDatabase creates an empty font database. File presence is checked and
// font data is read through fs; if fs is nil, the operating system's file
// system is used.
func NewDatabase(fs resources.FileSystem) *Database {
	if fs == nil {
		fs = resources.OSFileSystem{}
	}
	return &Database{
		fs:       fs,
		byKey:    treemap.NewWith(dataKeyComparator),
		defaults: make(map[font.Purpose]font.FontDataKey),
	}
}

func dataKeyComparator(a, b interface{}) int {
	return a.(font.FontDataKey).Compare(b.(font.FontDataKey))
}

// FileSystem returns the file system fonts are read from.
func (db *Database) FileSystem() resources.FileSystem {
	return db.fs
}

// SetDefault configures the font used for purpose p if a requested font is
// not available.
func (db *Database) SetDefault(p font.Purpose, key font.FontDataKey) {
	db.Lock()
	defer db.Unlock()
	db.defaults[p] = key
}

// Default returns the default font for purpose p, falling back to the
// default for purpose Unknown. If neither is configured, an invalid key is
// returned.
func (db *Database) Default(p font.Purpose) font.FontDataKey {
	db.Lock()
	defer db.Unlock()
	return db.defaultFor(p)
}

func (db *Database) defaultFor(p font.Purpose) font.FontDataKey {
	if key, ok := db.defaults[p]; ok {
		return key
	}
	if key, ok := db.defaults[font.Unknown]; ok {
		return key
	}
	tracer().Errorf("no default font for %s and no fallback configured", p)
	return font.FontDataKey{}
}

// AddFont registers a font file for key and returns the ID of the new entry.
func (db *Database) AddFont(key font.FontDataKey, path string) int {
	db.Lock()
	defer db.Unlock()
	key = font.NewFontDataKey(key.Family, key.Bold, key.Italic)
	id := db.nextID
	db.nextID++
	db.fonts = append(db.fonts, FontInfo{ID: id, Key: key, Path: path})
	if _, exists := db.byKey.Get(key); !exists {
		db.byKey.Put(key, len(db.fonts)-1)
	}
	tracer().Debugf("font database registers #%d %s = %s", id, key, path)
	return id
}

// FontInfo returns the database entry for key. The entry is invalid if no
// font has been registered for key.
func (db *Database) FontInfo(key font.FontDataKey) FontInfo {
	db.Lock()
	defer db.Unlock()
	return db.fontInfo(key)
}

func (db *Database) fontInfo(key font.FontDataKey) FontInfo {
	if inx, ok := db.byKey.Get(key); ok {
		return db.fonts[inx.(int)]
	}
	return FontInfo{}
}

// Fonts returns all entries in registration order.
func (db *Database) Fonts() []FontInfo {
	db.Lock()
	defer db.Unlock()
	fonts := make([]FontInfo, len(db.fonts))
	copy(fonts, db.fonts)
	return fonts
}

// ActualFont returns key if a file is registered for it and present.
// Otherwise it returns the default font for purpose p.
func (db *Database) ActualFont(key font.FontDataKey, p font.Purpose) font.FontDataKey {
	db.Lock()
	defer db.Unlock()
	return db.actualFont(key, p)
}

func (db *Database) actualFont(key font.FontDataKey, p font.Purpose) font.FontDataKey {
	if fi := db.fontInfo(key); fi.Path != "" && db.fs.Exists(fi.Path) {
		return key
	}
	tracer().Debugf("font %s not available, using default for %s", key, p)
	return db.defaultFor(p)
}

// FontPath resolves key via ActualFont and returns the path of the font file.
// If the resolved font is missing, an empty path is returned.
func (db *Database) FontPath(key font.FontDataKey, p font.Purpose) string {
	db.Lock()
	defer db.Unlock()
	actual := db.actualFont(key, p)
	fi := db.fontInfo(actual)
	if fi.Path == "" || !db.fs.Exists(fi.Path) {
		tracer().Errorf("not exists font file for %s (resolved from %s): %q", actual, key, fi.Path)
		return ""
	}
	return fi.Path
}

// FontBytes resolves key via ActualFont and returns the actual key together
// with the content of the font file.
func (db *Database) FontBytes(key font.FontDataKey, p font.Purpose) (font.FontDataKey, []byte, error) {
	path := db.FontPath(key, p)
	if path == "" {
		return font.FontDataKey{}, nil, core.Error(core.EMISSING, "no font file for %s", key)
	}
	data, err := db.fs.ReadFile(path)
	if err != nil {
		tracer().Errorf("failed open font file: %s", path)
		return font.FontDataKey{}, nil, err
	}
	return db.ActualFont(key, p), data, nil
}

// LogFontList is a helper function to dump the list of known fonts and
// defaults to the trace (log-level Info).
func (db *Database) LogFontList() {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	tracer().Infof("--- registered fonts ---")
	for _, fi := range db.Fonts() {
		tracer().Infof("font #%d [%s] = %s", fi.ID, fi.Key, fi.Path)
	}
	db.Lock()
	for p, key := range db.defaults {
		tracer().Infof("default [%s] = %s", p, key)
	}
	db.Unlock()
	tracer().Infof("------------------------")
	tracer().SetTraceLevel(level)
}
