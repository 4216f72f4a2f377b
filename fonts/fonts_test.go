package fonts

import (
	"testing"

	"golang.org/x/image/font"
)

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(14, 72, 12); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}

	small := font.MeasureString(Small.Get(), "GAME OVER")
	title := font.MeasureString(Title.Get(), "GAME OVER")
	if small <= 0 || title <= small {
		t.Fatalf("widths small=%v title=%v", small, title)
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("bad", []byte("not a font"), 10); err == nil {
		t.Fatalf("expected a parse error")
	}
}

func TestMissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic")
		}
	}()
	FontName("nope").Get()
}
