package export

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Japanese-capable fonts on common Linux and macOS installs. Collections are
// searched for the first face that covers japaneseSample.
var systemFontCandidates = []string{
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/noto-cjk/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/google-noto-cjk/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/opentype/noto/NotoSansCJKjp-Regular.otf",
	"/usr/share/fonts/noto-cjk/NotoSansCJKjp-Regular.otf",
	"/usr/share/fonts/truetype/fonts-japanese-gothic.ttf",
	"/usr/share/fonts/opentype/ipaexfont-gothic/ipaexg.ttf",
	"/usr/share/fonts/truetype/ipaexfont-gothic/ipaexg.ttf",
	"/usr/share/fonts/truetype/takao-gothic/TakaoPGothic.ttf",
	"/usr/share/fonts/ipa-gothic/ipag.ttf",
	"/System/Library/Fonts/ヒラギノ角ゴシック W3.ttc",
}

const japaneseSample = "危険度"

var (
	fallbackOnce sync.Once
	fallbackFont *truetype.Font
	fallbackErr  error
)

// fontSet hands out faces of one parsed font at arbitrary pixel sizes.
type fontSet struct {
	name     string
	newFace  func(size float64) (font.Face, error)
	hasGlyph func(r rune) bool
	faces    map[float64]font.Face
}

// loadFonts parses path if given, else the first system candidate with
// Japanese glyphs, else the bundled Go Regular face.
func loadFonts(path string) (*fontSet, error) {
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		return parseFontFile(trimmed, "")
	}
	for _, candidate := range systemFontCandidates {
		if set, err := parseFontFile(candidate, japaneseSample); err == nil {
			return set, nil
		}
	}
	fallbackOnce.Do(func() {
		fallbackFont, fallbackErr = truetype.Parse(goregular.TTF)
	})
	if fallbackErr != nil {
		return nil, fmt.Errorf("parse fallback font: %w", fallbackErr)
	}
	return trueTypeSet("goregular", fallbackFont), nil
}

// parseFontFile reads a TTF, OTF or collection. With a non-empty sample the
// first face covering every sample rune is chosen and a file without one is
// an error; otherwise the first face is used.
func parseFontFile(path, sample string) (*fontSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	collection, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	if collection.NumFonts() == 0 {
		return nil, fmt.Errorf("parse font %s: no faces", path)
	}
	for i := 0; i < collection.NumFonts(); i++ {
		f, err := collection.Font(i)
		if err != nil {
			return nil, fmt.Errorf("parse font %s face %d: %w", path, i, err)
		}
		set := openTypeSet(path, f)
		if sample == "" || len(set.missing(sample)) == 0 {
			return set, nil
		}
	}
	return nil, fmt.Errorf("font %s has no glyphs for %q", path, sample)
}

func trueTypeSet(name string, f *truetype.Font) *fontSet {
	return &fontSet{
		name: name,
		newFace: func(size float64) (font.Face, error) {
			return truetype.NewFace(f, &truetype.Options{Size: size, Hinting: font.HintingFull}), nil
		},
		hasGlyph: func(r rune) bool { return f.Index(r) != 0 },
		faces:    make(map[float64]font.Face),
	}
}

func openTypeSet(name string, f *opentype.Font) *fontSet {
	return &fontSet{
		name: name,
		newFace: func(size float64) (font.Face, error) {
			return opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
		},
		hasGlyph: func(r rune) bool {
			var buf sfnt.Buffer
			idx, err := f.GlyphIndex(&buf, r)
			return err == nil && idx != 0
		},
		faces: make(map[float64]font.Face),
	}
}

// face panics when the font cannot produce a face; Exporter.Export recovers
// it into an export error.
func (s *fontSet) face(size float64) font.Face {
	if face, ok := s.faces[size]; ok {
		return face
	}
	face, err := s.newFace(size)
	if err != nil {
		panic(fmt.Sprintf("font %s at %.1fpx: %v", s.name, size, err))
	}
	s.faces[size] = face
	return face
}

// missing returns the distinct printable runes of text the font cannot draw,
// in order of first appearance.
func (s *fontSet) missing(text string) []rune {
	var out []rune
	seen := make(map[rune]bool)
	for _, r := range text {
		if seen[r] || r <= ' ' || r == '　' {
			continue
		}
		seen[r] = true
		if !s.hasGlyph(r) {
			out = append(out, r)
		}
	}
	return out
}
