package main

import (
	"archive/zip"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/npillmayer/notefonts/backend/gfx"
	"github.com/npillmayer/notefonts/core"
	"github.com/npillmayer/notefonts/core/font"
	"github.com/npillmayer/notefonts/core/font/fontface"
	"github.com/npillmayer/notefonts/core/font/fontregistry"
	"github.com/npillmayer/notefonts/core/locate/resources"
	"github.com/npillmayer/notefonts/engine/engraving"
	"github.com/npillmayer/notefonts/engine/fonts"
	"github.com/npillmayer/notefonts/engine/symbols"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'notefonts.engine'
func tracer() tracing.Trace {
	return tracing.Select("notefonts.engine")
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontdir := flag.String("fonts", "", "Folder of the standard font set")
	manifest := flag.String("manifest", "", "Folder containing a fontslist.json")
	family := flag.String("font", fontregistry.TextFamily, "Font to start with")
	flag.Parse()

	// set up configuration and logging
	k := koanf.New(".")
	conf := koanfadapter.New(k, "notefonts", []string{"nt"})
	conf.InitDefaults()
	k.Load(confmap.Provider(map[string]interface{}{
		"tracing.adapter":           "go",
		"trace.notefonts.engine":    *tlevel,
		"trace.notefonts.fonts":     *tlevel,
		"trace.notefonts.symbols":   *tlevel,
		"trace.notefonts.engraving": *tlevel,
		"trace.notefonts.gfx":       *tlevel,
	}, "."), nil)
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	pterm.Info.Println("Welcome to the notefonts CLI")
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// set up font database and engine
	reg := resources.NewRegistry(nil)
	db := fontregistry.NewDatabase(reg)
	if *fontdir != "" {
		db.RegisterDefaults(*fontdir, false)
	}
	db.AddFont(font.NewFontDataKey(font.FallbackFamily, false, false), fallbackPath)
	reg.AddZipData([]string{fallbackName}, fallbackZip())
	if !db.Default(font.Unknown).Valid() {
		db.SetDefault(font.Unknown, font.NewFontDataKey(font.FallbackFamily, false, false))
	}
	if *manifest != "" {
		if err := db.AddAdditionalFonts(*manifest); err != nil {
			pterm.Error.Printfln("%s (%s)", core.UserMessage(err), *manifest)
		}
	}
	engine := fonts.NewEngine(db, fonts.OptionsFromConfig(conf, reg)...)
	defer engine.Close()
	ratio := symbols.PixelRatioFromConfig(conf)
	music := engraving.NewProvider(symbols.DefaultMetricsFactory(engine, reg, ratio))
	if *fontdir != "" {
		music.RegisterDefaults(*fontdir, false)
	}
	//
	// set up REPL
	repl, err := readline.New("fonts > ")
	if err != nil {
		tracer().Errorf("%s", err.Error())
		os.Exit(3)
	}
	intp := &Intp{
		repl:   repl,
		engine: engine,
		music:  music,
		font:   font.Font{Family: *family, PixelSize: fonts.DefaultPixelSize},
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                             // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl   *readline.Instance
	engine *fonts.Engine
	music  *engraving.Provider
	font   font.Font
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd := parseCommand(line)
		quit, err := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Command is a parsed input line.
type Command struct {
	code int
	args []string
	text string // everything after the command word
}

const (
	QUIT int = iota
	HELP
	FONT
	FONTS
	METRICS
	ADVANCE
	BBOX
	RENDER
	PNG
	PACK
	SYM
)

func parseCommand(line string) *Command {
	word, rest, _ := strings.Cut(line, " ")
	cmd := &Command{args: strings.Fields(rest), text: rest}
	switch strings.ToLower(word) {
	case "quit", "exit":
		cmd.code = QUIT
	case "font":
		cmd.code = FONT
	case "fonts":
		cmd.code = FONTS
	case "metrics":
		cmd.code = METRICS
	case "advance":
		cmd.code = ADVANCE
	case "bbox":
		cmd.code = BBOX
	case "render":
		cmd.code = RENDER
	case "png":
		cmd.code = PNG
	case "pack":
		cmd.code = PACK
	case "sym":
		cmd.code = SYM
	default:
		cmd.code = HELP
	}
	tracer().Debugf("command %q = %d %v", word, cmd.code, cmd.args)
	return cmd
}

func (intp *Intp) execute(cmd *Command) (bool, error) {
	switch cmd.code {
	case QUIT:
		return true, nil
	case HELP:
		help()
	case FONT:
		return false, intp.setFont(cmd.args)
	case FONTS:
		data := pterm.TableData{{"ID", "Font", "Path"}}
		for _, fi := range intp.engine.Database().Fonts() {
			data = append(data, []string{strconv.Itoa(fi.ID), fi.Key.String(), fi.Path})
		}
		return false, pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	case METRICS:
		return false, intp.metrics()
	case ADVANCE:
		pterm.Printfln("advance of %q = %.2f px", cmd.text,
			intp.engine.HorizontalAdvanceText(intp.font, unescape(cmd.text)))
	case BBOX:
		text := unescape(cmd.text)
		pterm.Printfln("bounding rect = %v", intp.engine.BoundingRectText(intp.font, text))
		if text != "" {
			pterm.Printfln("tight rect    = %v", intp.engine.TightBoundingRect(intp.font, text))
		}
	case RENDER:
		return false, intp.render(unescape(cmd.text))
	case PNG:
		file, text, _ := strings.Cut(cmd.text, " ")
		return false, intp.png(file, unescape(text))
	case PACK:
		return false, intp.pack(cmd.args)
	case SYM:
		return false, intp.sym(cmd.args)
	}
	return false, nil
}

// font <family> [size] [bold] [italic] [text|symbol|symboltext|tab]
func (intp *Intp) setFont(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: font <family> [pixelsize] [bold] [italic] [purpose]")
	}
	f := font.Font{Family: strings.ReplaceAll(args[0], "_", " "), PixelSize: fonts.DefaultPixelSize}
	for _, arg := range args[1:] {
		switch strings.ToLower(arg) {
		case "bold":
			f.Bold = true
		case "italic":
			f.Italic = true
		case "text":
			f.Purpose = font.Text
		case "symbol":
			f.Purpose = font.MusicSymbol
		case "symboltext":
			f.Purpose = font.MusicSymbolText
		case "tab":
			f.Purpose = font.Tablature
		default:
			size, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("unknown font option %q", arg)
			}
			f.PixelSize = size
		}
	}
	intp.font = f
	rf := intp.engine.ResolveFace(f, false)
	if rf == nil {
		return fmt.Errorf("no face for font %q", f.Family)
	}
	pterm.Printfln("font %s resolved to %s (scale %.3f)", rf.Key(), rf.Face().Key(), rf.PixelScale())
	return nil
}

func (intp *Intp) metrics() error {
	e, f := intp.engine, intp.font
	row := func(name string, v float64) []string {
		return []string{name, strconv.FormatFloat(v, 'f', 2, 64)}
	}
	data := pterm.TableData{
		{"Metric", "px"},
		row("line spacing", e.LineSpacing(f)),
		row("height", e.Height(f)),
		row("ascent", e.Ascent(f)),
		row("descent", e.Descent(f)),
		row("x-height", e.XHeight(f)),
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (intp *Intp) render(text string) error {
	images := intp.engine.Render(intp.font, text)
	if len(images) == 0 {
		return errors.New("nothing to render")
	}
	for i, img := range images {
		pterm.Printfln("#%d  %dx%d at %v", i, img.Sdf.Width, img.Sdf.Height, img.Rect)
	}
	preview(images[0].Sdf)
	return nil
}

// png <file> <text> writes a preview of text as PNG.
func (intp *Intp) png(file string, text string) error {
	if file == "" || text == "" {
		return errors.New("usage: png <file.png> <text>")
	}
	pic := gfx.Compose(intp.engine.Render(intp.font, text), 4, gfx.DefaultSpread)
	if pic == nil {
		return errors.New("nothing to render")
	}
	var buf bytes.Buffer
	if err := gfx.WritePNG(&buf, pic); err != nil {
		return err
	}
	if err := os.WriteFile(file, buf.Bytes(), 0644); err != nil {
		return err
	}
	pterm.Printfln("wrote %dx%d picture to %s", pic.Rect.Dx(), pic.Rect.Dy(), file)
	return nil
}

// sym <name> [font] shows the metrics of a SMuFL symbol.
func (intp *Intp) sym(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: sym <smufl-name> [engraving font]")
	}
	id := symbols.SymIDByName(args[0])
	if id == symbols.NoSym {
		return fmt.Errorf("unknown symbol %q", args[0])
	}
	name := fontregistry.SymbolFamily
	if len(args) > 1 {
		name = args[1]
	}
	f := intp.music.FontByName(name)
	if f == nil {
		return errors.New("no engraving fonts, start with -fonts <dir>")
	}
	data := pterm.TableData{
		{"Symbol", "Font", "Code", "Valid", "BBox", "Advance"},
		{id.String(), f.Name(), fmt.Sprintf("U+%04X", f.SymCode(id)), strconv.FormatBool(f.IsValid(id)),
			f.BBox(id, 1).String(), strconv.FormatFloat(f.Advance(id, 1), 'f', 2, 64)},
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}
	for a := symbols.StemDownNW; a <= symbols.OpticalCenter; a++ {
		if p := f.SmuflAnchor(id, a, 1); p != (font.PointF{}) {
			pterm.Printfln("  %-14s (%.2f, %.2f)", a, p.X, p.Y)
		}
	}
	return nil
}

// The fallback font is served as a resource, so it is always available.
const fallbackName = "fallback/GoRegular.ttf"

var fallbackPath = resources.ResourcePrefix + fallbackName

func fallbackZip() []byte {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(fallbackName)
	if err == nil {
		_, err = w.Write(font.FallbackFontData())
	}
	if err == nil {
		err = zw.Close()
	}
	if err != nil {
		tracer().Errorf("cannot package fallback font: %v", err)
	}
	return buf.Bytes()
}

// preview prints an SDF, pixels inside the outline as '#'.
func preview(sdf font.Sdf) {
	var b strings.Builder
	for y := 0; y < sdf.Height; y += 2 {
		for x := 0; x < sdf.Width; x++ {
			switch v := sdf.Bitmap[y*sdf.Width+x]; {
			case v >= 128:
				b.WriteByte('#')
			case v >= 96:
				b.WriteByte('.')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	pterm.Println(b.String())
}

// pack <file.ftx> [from-to] packs the current font's glyphs for a range of
// hexadecimal codepoints.
func (intp *Intp) pack(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: pack <file.ftx> [from-to]")
	}
	from, to := rune(0x20), rune(0x7e)
	if len(args) > 1 {
		var err error
		if from, to, err = parseRange(args[1]); err != nil {
			return err
		}
	}
	text := intp.engine.ResolveFace(intp.font, false)
	sym := intp.engine.ResolveFace(intp.font, true)
	if text == nil || sym == nil {
		return fmt.Errorf("no face for font %q", intp.font.Family)
	}
	var codes []rune
	for c := from; c <= to; c++ {
		codes = append(codes, c)
	}
	var buf bytes.Buffer
	if err := fontface.Pack(text.Face(), sym.Face(), codes, nil, &buf); err != nil {
		return err
	}
	if err := os.WriteFile(args[0], buf.Bytes(), 0644); err != nil {
		return err
	}
	pterm.Printfln("packed %d codepoints into %s (%d bytes)", len(codes), args[0], buf.Len())
	return nil
}

func parseRange(s string) (rune, rune, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		hi = lo
	}
	from, err1 := strconv.ParseUint(strings.TrimPrefix(lo, "U+"), 16, 32)
	to, err2 := strconv.ParseUint(strings.TrimPrefix(hi, "U+"), 16, 32)
	if err1 != nil || err2 != nil || to < from {
		return 0, 0, fmt.Errorf("illegal codepoint range %q", s)
	}
	return rune(from), rune(to), nil
}

// unescape replaces "\n" by a line break and "\uXXXX" by the codepoint.
func unescape(s string) string {
	if u, err := strconv.Unquote(`"` + strings.ReplaceAll(s, `"`, `\"`) + `"`); err == nil {
		return u
	}
	return s
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	font <family> [px] [bold] [italic] [text|symbol|symboltext|tab]
	                  select the current font (use '_' for spaces in family names)
	fonts             list registered fonts
	metrics           line metrics of the current font
	advance <text>    horizontal advance of text
	bbox <text>       bounding rect and tight bounding rect of text
	render <text>     render text to signed distance fields
	png <file> <text> write a preview of rendered text as PNG
	pack <file> [from-to]
	                  write a packed font for a hex codepoint range
	sym <name> [font] metrics of a SMuFL symbol in an engraving font (needs -fonts)
	quit              leave the CLI

	Text may contain escapes like \n or \uE050.
	`)
}
