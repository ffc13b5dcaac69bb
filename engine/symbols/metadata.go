package symbols

import (
	"encoding/json"
	"strconv"

	"github.com/emirpasic/gods/sets/treeset"
)

// metadata holds the sections of a SMuFL metadata file we read.
type metadata map[string]json.RawMessage

type alternate struct {
	Name               string `json:"name"`
	Codepoint          string `json:"codepoint"`
	AlternateCodepoint string `json:"alternateCodepoint"`
}

type alternates struct {
	Alternates []alternate `json:"alternates"`
}

func parseMetadata(data []byte) (metadata, error) {
	var meta metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return meta, nil
}

// section decodes a top-level section into v. Malformed sections are
// skipped.
func (meta metadata) section(name string, v interface{}) bool {
	raw, ok := meta[name]
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		tracer().Errorf("skipping metadata section %s: %v", name, err)
		return false
	}
	return true
}

func (meta metadata) glyphsWithAnchors() map[string]map[string][]float64 {
	var glyphs map[string]map[string][]float64
	meta.section("glyphsWithAnchors", &glyphs)
	return glyphs
}

func (meta metadata) glyphsWithAlternates() map[string]alternates {
	var glyphs map[string]alternates
	if !meta.section("glyphsWithAlternates", &glyphs) {
		return nil
	}
	return glyphs
}

// engravingDefaults returns the numeric engraving defaults. Other values,
// e.g. textFontFamily, are dropped.
func (meta metadata) engravingDefaults() map[string]float64 {
	var raw map[string]json.RawMessage
	if !meta.section("engravingDefaults", &raw) {
		return nil
	}
	values := make(map[string]float64, len(raw))
	for key, r := range raw {
		var v float64
		if err := json.Unmarshal(r, &v); err != nil {
			tracer().Debugf("engraving default %s is not a number", key)
			continue
		}
		values[key] = v
	}
	return values
}

// parseCodepoint parses codepoints noted as "U+E050". It returns 0 for
// malformed input.
func parseCodepoint(s string) rune {
	if len(s) <= 2 {
		return 0
	}
	v, err := strconv.ParseUint(s[2:], 16, 32)
	if err != nil {
		return 0
	}
	return rune(v)
}

func sortedKeys(m map[string]float64) []string {
	set := treeset.NewWithStringComparator()
	for k := range m {
		set.Add(k)
	}
	keys := make([]string, 0, set.Size())
	for _, k := range set.Values() {
		keys = append(keys, k.(string))
	}
	return keys
}
