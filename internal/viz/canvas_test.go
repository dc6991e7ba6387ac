package viz

import (
	"strings"
	"testing"
)

func TestCanvas_SetUnset(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	if !c.Lit(0, 0) || !c.Lit(3, 3) {
		t.Fatal("set dots not lit")
	}
	if got := c.Grid[0][0]; got != 0x2801 {
		t.Errorf("cell 0 = %U, want U+2801", got)
	}
	if got := c.Grid[0][1]; got != 0x2880 {
		t.Errorf("cell 1 = %U, want U+2880", got)
	}
	c.Unset(0, 0)
	if c.Lit(0, 0) || c.Grid[0][0] != brailleBlank {
		t.Error("Unset left dot lit")
	}
	if c.Count() != 1 {
		t.Errorf("Count = %d, want 1", c.Count())
	}
}

func TestCanvas_OutOfBounds(t *testing.T) {
	c := NewCanvas(1, 1)
	c.Set(-1, 0)
	c.Set(2, 0)
	c.Set(0, 4)
	if c.Count() != 0 {
		t.Errorf("Count = %d, want 0", c.Count())
	}
}

func TestCanvas_DrawLine(t *testing.T) {
	c := NewCanvas(5, 2)
	c.DrawLine(0, 0, 9, 0)
	if c.Count() != 10 {
		t.Errorf("horizontal line lit %d dots, want 10", c.Count())
	}
	c.Clear()
	c.DrawLine(0, 0, 7, 7)
	if c.Count() != 8 || !c.Lit(7, 7) {
		t.Errorf("diagonal lit %d dots, want 8", c.Count())
	}
}

func TestCanvas_String(t *testing.T) {
	c := NewCanvas(3, 2)
	lines := strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("rows = %d, want 2", len(lines))
	}
	if got := []rune(lines[0]); len(got) != 3 || got[0] != brailleBlank {
		t.Errorf("row = %q", lines[0])
	}
}
