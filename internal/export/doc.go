// Package export renders a placard to PNG.
//
// PlacardRasterizer draws the card with fogleman/gg on a #fcfaf5 background
// at 2x scale. Text uses the font at Options.FontPath (TTF, OTF or a TTC
// collection), else an installed Noto CJK or IPA font, else Go Regular. Text
// the chosen font cannot draw is logged as a warning. Exporter writes the image to
// <dir>/zoo_exhibit_<unix-millis>.png through a temp file and a rename, so a
// failed export never leaves a partial file behind.
//
// Export failures, including rasteriser panics, come back as errors. The UI
// shows AdvisoryMessage and keeps the result on screen.
package export
