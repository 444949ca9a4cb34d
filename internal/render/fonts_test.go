package render

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestLoadFontsFallsBackWhenMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.ttf")
	fonts, err := LoadFonts([]string{missing})
	if !errors.Is(err, ErrNoFont) {
		t.Fatalf("err = %v, want ErrNoFont", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v, want it to wrap fs.ErrNotExist", err)
	}
	if !fonts.Fallback || fonts.Score != basicfont.Face7x13 || fonts.Title == nil || fonts.Hint == nil {
		t.Fatalf("fallback fonts not usable: %+v", fonts)
	}
}

func TestLoadFontsSkipsCorruptFile(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.ttf")
	if err := os.WriteFile(bad, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}
	fonts, err := LoadFonts([]string{bad})
	if !errors.Is(err, ErrNoFont) {
		t.Fatalf("err = %v, want ErrNoFont", err)
	}
	if !fonts.Fallback {
		t.Fatal("corrupt font must fall back to the bitmap face")
	}
}

func TestLoadFontsNoCandidates(t *testing.T) {
	fonts, err := LoadFonts(nil)
	if !errors.Is(err, ErrNoFont) || !fonts.Fallback {
		t.Fatalf("LoadFonts(nil) = %+v, %v", fonts, err)
	}
}
