package tui

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestPaletteCoversColors(t *testing.T) {
	for c := core.ColorRed; c <= core.ColorDarkGray; c++ {
		if _, ok := palette[c]; !ok {
			t.Errorf("palette has no entry for color %d", c)
		}
	}
	if _, ok := palette[core.ColorDefault]; ok {
		t.Error("ColorDefault should keep the terminal color")
	}
	if len(palette) != int(core.ColorDarkGray) {
		t.Errorf("palette has %d entries, expected %d", len(palette), core.ColorDarkGray)
	}
}
