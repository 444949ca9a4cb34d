package render

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// ErrNoFont reports that none of the candidate font files could be used.
var ErrNoFont = errors.New("no usable font file")

// DefaultFontPaths lists the TrueType fonts tried in order.
var DefaultFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
}

// Fonts holds the faces used for on-screen text.
type Fonts struct {
	Score font.Face
	Title font.Face
	Hint  font.Face

	// Fallback is set when the faces are the built-in bitmap font.
	Fallback bool
}

// FallbackFonts returns the bitmap font for every role.
func FallbackFonts() Fonts {
	return Fonts{
		Score:    basicfont.Face7x13,
		Title:    basicfont.Face7x13,
		Hint:     basicfont.Face7x13,
		Fallback: true,
	}
}

// LoadFonts parses the first usable file in paths and builds every face
// from it. When nothing loads it returns FallbackFonts together with an
// error wrapping ErrNoFont; the result is usable either way.
func LoadFonts(paths []string) (Fonts, error) {
	var errs []error
	for _, path := range paths {
		f, err := parseFont(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		fonts, err := facesFor(f)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		return fonts, nil
	}
	if len(errs) == 0 {
		return FallbackFonts(), fmt.Errorf("%w: no candidates", ErrNoFont)
	}
	return FallbackFonts(), fmt.Errorf("%w: %w", ErrNoFont, errors.Join(errs...))
}

func parseFont(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return f, nil
}

func facesFor(f *opentype.Font) (Fonts, error) {
	var fonts Fonts
	for _, role := range []struct {
		dst  *font.Face
		size float64
	}{
		{&fonts.Score, 24},
		{&fonts.Title, 48},
		{&fonts.Hint, 16},
	} {
		face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: role.size, DPI: 72, Hinting: font.HintingFull})
		if err != nil {
			return Fonts{}, fmt.Errorf("face %vpt: %w", role.size, err)
		}
		*role.dst = face
	}
	return fonts, nil
}
