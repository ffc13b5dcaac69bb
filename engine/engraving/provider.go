package engraving

import (
	"path"
	"path/filepath"

	"github.com/npillmayer/notefonts/core/font/fontregistry"
	"github.com/npillmayer/notefonts/core/locate/resources"
	"github.com/npillmayer/notefonts/engine/symbols"
	"golang.org/x/text/cases"
)

// Provider holds the engraving fonts of an application.
type Provider struct {
	// UseFallback enables taking symbols from the fallback font if a font
	// lacks them. It is on by default.
	UseFallback bool
	factory     symbols.MetricsFactory
	fonts       []*Font
	fallback    string
	fallbackFnt *Font
}

// NewProvider creates a provider without any fonts. factory creates the
// symbol metrics of every font added.
func NewProvider(factory symbols.MetricsFactory) *Provider {
	return &Provider{
		UseFallback: true,
		factory:     factory,
	}
}

// AddFont adds an engraving font. Its metrics are loaded on first lookup.
func (p *Provider) AddFont(name string, family string, fontPath string) *Font {
	f := &Font{
		name:     name,
		family:   family,
		path:     fontPath,
		metrics:  p.factory(fontPath),
		provider: p,
	}
	p.fonts = append(p.fonts, f)
	p.fallbackFnt = nil
	tracer().Debugf("engraving font %s (%s) at %s", name, family, fontPath)
	return f
}

// RegisterDefaults adds Leland and Bravura, found below root (a directory
// or a resource path like ":/fonts"), and makes Bravura the fallback font.
// If packed is true, the fonts are expected in packed format (".ftx").
func (p *Provider) RegisterDefaults(root string, packed bool) {
	ext := ".otf"
	if packed {
		ext = ".ftx"
	}
	join := filepath.Join
	if resources.IsResourcePath(root) {
		join = path.Join
	}
	p.AddFont("Leland", "Leland", join(root, "leland", "Leland"+ext))
	p.AddFont(fontregistry.SymbolFamily, fontregistry.SymbolFamily,
		join(root, "bravura", fontregistry.SymbolFamily+ext))
	p.SetFallbackFont(fontregistry.SymbolFamily)
}

func (p *Provider) lookup(name string) *Font {
	folded := cases.Fold().String(name)
	for _, f := range p.fonts {
		if cases.Fold().String(f.name) == folded {
			return f
		}
	}
	return nil
}

// FontByName returns the font with a name, ignoring case, or the fallback
// font if there is none. The font is loaded. FontByName returns nil if
// neither font exists.
func (p *Provider) FontByName(name string) *Font {
	f := p.lookup(name)
	if f == nil {
		tracer().Infof("no engraving font %q, using fallback %q", name, p.fallback)
		f = p.fallbackFont()
	}
	if f == nil {
		return nil
	}
	f.EnsureLoad()
	return f
}

// Fonts returns all fonts in the order they have been added.
func (p *Provider) Fonts() []*Font {
	fonts := make([]*Font, len(p.fonts))
	copy(fonts, p.fonts)
	return fonts
}

// SetFallbackFont sets the name of the fallback font.
func (p *Provider) SetFallbackFont(name string) {
	p.fallback = name
	p.fallbackFnt = nil
}

func (p *Provider) fallbackFont() *Font {
	if p.fallbackFnt == nil {
		p.fallbackFnt = p.lookup(p.fallback)
		if p.fallbackFnt == nil {
			tracer().Errorf("fallback engraving font %q not found", p.fallback)
		}
	}
	return p.fallbackFnt
}

// FallbackFont returns the loaded fallback font, or nil if it has not been
// added.
func (p *Provider) FallbackFont() *Font {
	f := p.fallbackFont()
	if f != nil {
		f.EnsureLoad()
	}
	return f
}

// IsFallbackFont is true if f is the fallback font.
func (p *Provider) IsFallbackFont(f *Font) bool {
	fb := p.fallbackFont()
	return fb != nil && fb == f
}

// Clear removes all fonts.
func (p *Provider) Clear() {
	p.fonts = nil
	p.fallbackFnt = nil
}
