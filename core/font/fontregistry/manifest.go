package fontregistry

import (
	"encoding/json"
	"path"
	"path/filepath"
	"strings"

	"github.com/npillmayer/notefonts/core"
	"github.com/npillmayer/notefonts/core/font"
	"github.com/npillmayer/notefonts/core/locate/resources"
)

// ManifestName is the file name of a font registration manifest.
const ManifestName = "fontslist.json"

// ManifestEntry is one font described in a manifest.
type ManifestEntry struct {
	File   string `json:"file"`
	Family string `json:"family"`
	Bold   bool   `json:"bold"`
	Italic bool   `json:"italic"`
}

// ParseManifest decodes a manifest (a JSON array of entries). Elements which
// are not objects yield empty entries; fields of the wrong type are left at
// their zero value.
func ParseManifest(data []byte) ([]ManifestEntry, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, core.WrapError(err, core.EINVALID, "failed parse font manifest")
	}
	entries := make([]ManifestEntry, 0, len(raw))
	for i, r := range raw {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(r, &fields); err != nil {
			tracer().Debugf("manifest entry #%d is not an object", i)
			entries = append(entries, ManifestEntry{})
			continue
		}
		var e ManifestEntry
		manifestField(fields, "file", &e.File, i)
		manifestField(fields, "family", &e.Family, i)
		manifestField(fields, "bold", &e.Bold, i)
		manifestField(fields, "italic", &e.Italic, i)
		entries = append(entries, e)
	}
	return entries, nil
}

func manifestField(fields map[string]json.RawMessage, name string, v interface{}, i int) {
	r, ok := fields[name]
	if !ok {
		return
	}
	if err := json.Unmarshal(r, v); err != nil {
		tracer().Debugf("manifest entry #%d: ignoring %s: %v", i, name, err)
	}
}

// AddAdditionalFonts reads the manifest `fontslist.json` in dir and registers
// every font listed there. File names are taken relative to dir. Entries
// without file or family are skipped.
func (db *Database) AddAdditionalFonts(dir string) error {
	manifest := joinPath(dir, ManifestName)
	data, err := db.fs.ReadFile(manifest)
	if err != nil {
		tracer().Errorf("failed open file: %s", manifest)
		return err
	}
	entries, err := ParseManifest(data)
	if err != nil {
		tracer().Errorf("failed parse: %s", manifest)
		return err
	}
	base := dir
	if !resources.IsResourcePath(dir) {
		if abs, err := filepath.Abs(dir); err == nil {
			base = abs
		}
	}
	for _, e := range entries {
		if e.File == "" || e.Family == "" {
			tracer().Debugf("skipping incomplete manifest entry %+v", e)
			continue
		}
		db.AddFont(font.NewFontDataKey(e.Family, e.Bold, e.Italic), joinPath(base, e.File))
	}
	return nil
}

func joinPath(dir, file string) string {
	if resources.IsResourcePath(dir) {
		return resources.ResourcePrefix + path.Join(strings.TrimPrefix(dir, resources.ResourcePrefix), file)
	}
	return filepath.Join(dir, file)
}
