package export

import (
	"fmt"
	"image"
	"regexp"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/five82/exhibit/internal/exhibit"
)

const (
	DefaultBackground = "#fcfaf5"
	DefaultScale      = 2.0
	DefaultWidth      = 600
)

// Options controls how a card is rasterised.
type Options struct {
	Background string
	Scale      float64
	Width      int
	FontPath   string
}

// DefaultOptions mirrors the on-screen card: warm paper background at 2x.
func DefaultOptions() Options {
	return Options{Background: DefaultBackground, Scale: DefaultScale, Width: DefaultWidth}
}

var hexColor = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

func (o Options) normalized() (Options, error) {
	if strings.TrimSpace(o.Background) == "" {
		o.Background = DefaultBackground
	}
	if !hexColor.MatchString(o.Background) {
		return o, fmt.Errorf("invalid background color %q", o.Background)
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Scale < 0 || o.Scale > 8 {
		return o, fmt.Errorf("scale %.2f out of range", o.Scale)
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Width < 200 {
		return o, fmt.Errorf("width %d too small", o.Width)
	}
	return o, nil
}

// Card is everything drawn on an exported placard.
type Card struct {
	Name string
	Data exhibit.Data
}

// Rasterizer turns a card into an image.
type Rasterizer interface {
	Rasterize(card Card, opts Options) (image.Image, error)
}

// Ensure PlacardRasterizer implements Rasterizer at compile time.
var _ Rasterizer = PlacardRasterizer{}

// PlacardRasterizer draws cards with gg. Logger, when set, is warned about
// card text the chosen font has no glyphs for.
type PlacardRasterizer struct {
	Logger *log.Logger
}

// Palette, matching the TUI card.
const (
	colorBorder    = "#2e7d32"
	colorBadge     = "#8bc34a"
	colorBadgeText = "#ffffff"
	colorDanger    = "#d32f2f"
	colorInk       = "#3e2723"
	colorSubtle    = "#6d4c41"
	colorTrack     = "#e0e0e0"
	colorFactBg    = "#fff3e0"
	colorFactEdge  = "#ef6c00"
	colorFooter    = "#a1887f"
)

// Logical sizes, multiplied by Options.Scale when drawing.
const (
	pad          = 32.0
	badgeSize    = 14.0
	dangerSize   = 16.0
	nameSize     = 40.0
	sciSize      = 18.0
	headingSize  = 16.0
	bodySize     = 16.0
	statSize     = 13.0
	footerSize   = 11.0
	lineSpacing  = 1.6
	barHeight    = 10.0
	statRowGap   = 14.0
	sectionGap   = 24.0
	factPad      = 16.0
	borderWidth  = 6.0
	cornerRadius = 18.0
)

// Rasterize draws card at opts.Scale. Text and geometry are laid out in
// logical units and every coordinate and font size is multiplied by the
// scale, so glyphs are rendered at full resolution instead of upsampled.
func (r PlacardRasterizer) Rasterize(card Card, opts Options) (image.Image, error) {
	opts, err := opts.normalized()
	if err != nil {
		return nil, err
	}
	fonts, err := loadFonts(opts.FontPath)
	if err != nil {
		return nil, err
	}
	if missing := fonts.missing(placardText(card)); len(missing) > 0 && r.Logger != nil {
		r.Logger.Warn("font has no glyphs for placard text, set font_path to a Japanese font",
			"font", fonts.name, "missing", string(clip(missing, 16)), "count", len(missing))
	}

	l := newLayout(fonts, opts, card)
	dc := gg.NewContext(l.px(float64(opts.Width)), l.px(l.height))
	l.draw(dc)
	return dc.Image(), nil
}

type layout struct {
	fonts *fontSet
	opts  Options
	card  Card
	scale float64
	inner float64

	description []string
	funFact     []string
	height      float64
}

func newLayout(fonts *fontSet, opts Options, card Card) *layout {
	l := &layout{fonts: fonts, opts: opts, card: card, scale: opts.Scale}
	l.inner = float64(opts.Width) - 2*pad - 2*borderWidth

	measure := gg.NewContext(1, 1)
	l.description = wrapText(measure, fonts.face(bodySize*l.scale), card.Data.Description, l.inner*l.scale)
	l.funFact = wrapText(measure, fonts.face(bodySize*l.scale), card.Data.FunFact, (l.inner-2*factPad)*l.scale)

	h := borderWidth + pad
	h += badgeSize*2 + sectionGap/2
	h += nameSize*1.2 + sciSize*1.4 + sectionGap
	h += headingSize*1.5 + bodySize*lineSpacing*float64(len(l.description)) + sectionGap
	h += float64(len(card.Data.Stats.Values())) * (statSize*1.4 + barHeight + statRowGap)
	h += sectionGap + headingSize*1.5 + bodySize*lineSpacing*float64(len(l.funFact)) + 2*factPad
	h += sectionGap + footerSize*1.5 + pad + borderWidth
	l.height = h
	return l
}

func (l *layout) px(v float64) int {
	return int(v*l.scale + 0.5)
}

func (l *layout) s(v float64) float64 {
	return v * l.scale
}

func (l *layout) draw(dc *gg.Context) {
	width := float64(l.opts.Width)

	dc.SetHexColor(l.opts.Background)
	dc.Clear()

	dc.SetHexColor(colorBorder)
	dc.SetLineWidth(l.s(borderWidth))
	half := borderWidth / 2
	dc.DrawRoundedRectangle(l.s(half), l.s(half), l.s(width-borderWidth), l.s(l.height-borderWidth), l.s(cornerRadius))
	dc.Stroke()

	left := borderWidth + pad
	right := width - borderWidth - pad
	y := borderWidth + pad

	// Classification badge and danger level.
	dc.SetFontFace(l.fonts.face(l.s(badgeSize)))
	badgeW, _ := dc.MeasureString(l.card.Data.Classification)
	dc.SetHexColor(colorBadge)
	dc.DrawRoundedRectangle(l.s(left), l.s(y), badgeW+l.s(badgeSize*1.5), l.s(badgeSize*2), l.s(badgeSize))
	dc.Fill()
	dc.SetHexColor(colorBadgeText)
	dc.DrawStringAnchored(l.card.Data.Classification, l.s(left+badgeSize*0.75), l.s(y+badgeSize), 0, 0.35)

	dc.SetFontFace(l.fonts.face(l.s(dangerSize)))
	dc.SetHexColor(colorDanger)
	dc.DrawStringAnchored(exhibit.DangerCaption+l.card.Data.DangerLevel, l.s(right), l.s(y+badgeSize), 1, 0.35)
	y += badgeSize*2 + sectionGap/2

	// Name and scientific name.
	dc.SetFontFace(l.fonts.face(l.s(nameSize)))
	dc.SetHexColor(colorInk)
	y += nameSize
	dc.DrawString(l.card.Name, l.s(left), l.s(y))
	y += nameSize * 0.2

	dc.SetFontFace(l.fonts.face(l.s(sciSize)))
	dc.SetHexColor(colorSubtle)
	y += sciSize * 1.2
	dc.DrawString(l.card.Data.ScientificName, l.s(left), l.s(y))
	y += sciSize*0.2 + sectionGap

	// Keeper commentary.
	dc.SetFontFace(l.fonts.face(l.s(headingSize)))
	dc.SetHexColor(colorBorder)
	y += headingSize
	dc.DrawString(exhibit.KeeperCaption, l.s(left), l.s(y))
	y += headingSize * 0.5

	dc.SetFontFace(l.fonts.face(l.s(bodySize)))
	dc.SetHexColor(colorInk)
	for _, line := range l.description {
		y += bodySize * lineSpacing
		dc.DrawString(line, l.s(left), l.s(y))
	}
	y += sectionGap

	// Stat bars.
	for _, stat := range l.card.Data.Stats.Values() {
		dc.SetFontFace(l.fonts.face(l.s(statSize)))
		dc.SetHexColor(colorSubtle)
		y += statSize * 1.2
		dc.DrawString(stat.Label, l.s(left), l.s(y))
		dc.DrawStringAnchored(formatStat(stat.Value), l.s(right), l.s(y), 1, 0)
		y += statSize * 0.2

		barW := right - left
		dc.SetHexColor(colorTrack)
		dc.DrawRoundedRectangle(l.s(left), l.s(y), l.s(barW), l.s(barHeight), l.s(barHeight/2))
		dc.Fill()
		if fill := barW * exhibit.Percent(stat.Value); fill > 0 {
			dc.SetHexColor(colorBadge)
			dc.DrawRoundedRectangle(l.s(left), l.s(y), l.s(fill), l.s(barHeight), l.s(barHeight/2))
			dc.Fill()
		}
		y += barHeight + statRowGap
	}
	y += sectionGap

	// Fun fact box.
	boxH := headingSize*1.5 + bodySize*lineSpacing*float64(len(l.funFact)) + 2*factPad
	dc.SetHexColor(colorFactBg)
	dc.DrawRoundedRectangle(l.s(left), l.s(y), l.s(right-left), l.s(boxH), l.s(cornerRadius/2))
	dc.Fill()
	dc.SetHexColor(colorFactEdge)
	dc.SetLineWidth(l.s(2))
	dc.DrawRoundedRectangle(l.s(left), l.s(y), l.s(right-left), l.s(boxH), l.s(cornerRadius/2))
	dc.Stroke()

	fy := y + factPad + headingSize
	dc.SetFontFace(l.fonts.face(l.s(headingSize)))
	dc.DrawString(exhibit.FunFactCaption, l.s(left+factPad), l.s(fy))
	fy += headingSize * 0.5
	dc.SetFontFace(l.fonts.face(l.s(bodySize)))
	dc.SetHexColor(colorInk)
	for _, line := range l.funFact {
		fy += bodySize * lineSpacing
		dc.DrawString(line, l.s(left+factPad), l.s(fy))
	}
	y += boxH + sectionGap

	dc.SetFontFace(l.fonts.face(l.s(footerSize)))
	dc.SetHexColor(colorFooter)
	dc.DrawStringAnchored(exhibit.Footer, l.s(width/2), l.s(y+footerSize), 0.5, 0)
}

// placardText is every string Rasterize draws for card.
func placardText(card Card) string {
	d := card.Data
	parts := []string{
		card.Name, d.ScientificName, d.Classification, exhibit.DangerCaption, d.DangerLevel,
		exhibit.KeeperCaption, d.Description, exhibit.FunFactCaption, d.FunFact, exhibit.Footer,
	}
	for _, stat := range d.Stats.Values() {
		parts = append(parts, stat.Label, formatStat(stat.Value))
	}
	return strings.Join(parts, "\n")
}

func clip(runes []rune, n int) []rune {
	if len(runes) > n {
		return runes[:n]
	}
	return runes
}

func formatStat(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}

type measurer interface {
	SetFontFace(face font.Face)
	MeasureString(s string) (float64, float64)
}

// wrapText breaks s into lines no wider than maxWidth. Lines break at the
// last space when there is one, otherwise between any two runes, so text
// without spaces (Japanese) still wraps.
func wrapText(m measurer, face font.Face, s string, maxWidth float64) []string {
	m.SetFontFace(face)
	var lines []string
	for _, paragraph := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		runes := []rune(strings.TrimRightFunc(paragraph, unicode.IsSpace))
		if len(runes) == 0 {
			lines = append(lines, "")
			continue
		}
		start := 0
		lastSpace := -1
		for i := 0; i < len(runes); i++ {
			if unicode.IsSpace(runes[i]) {
				lastSpace = i
			}
			if w, _ := m.MeasureString(string(runes[start : i+1])); w <= maxWidth || i == start {
				continue
			}
			end := i
			next := i
			if lastSpace > start {
				end = lastSpace
				next = lastSpace + 1
			}
			lines = append(lines, strings.TrimRightFunc(string(runes[start:end]), unicode.IsSpace))
			start = next
			lastSpace = -1
			i = start - 1
		}
		if start < len(runes) {
			lines = append(lines, string(runes[start:]))
		}
	}
	return lines
}
