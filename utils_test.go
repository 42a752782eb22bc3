package vrptw

import (
	"strings"
	"testing"
)

func TestCalcCostMatrix(t *testing.T) {
	coords := [][]float64{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	c := CalcCostMatrix(coords)
	if c[0][1] != 1 || c[1][2] != 1 || c[2][3] != 1 || c[3][0] != 1 {
		t.Errorf("unit edges not 1: %v", c)
	}
	if c[0][2] != 1.41 {
		t.Errorf("diagonal not rounded to two decimals: got %g, want 1.41", c[0][2])
	}
	for i := range c {
		for j := range c[i] {
			if c[i][j] != c[j][i] {
				t.Errorf("matrix not symmetric at (%d,%d)", i, j)
			}
		}
	}
}

func TestFormatRoute(t *testing.T) {
	if got := FormatRoute([]int{0, 3, 1, 0}); got != "0 -> 3 -> 1 -> 0" {
		t.Errorf("FormatRoute = %q", got)
	}
}

func TestSanitizeJsonArrayLineBreaks(t *testing.T) {
	in := "[\n\t1,\n\t2,\n\t3\n]\n"
	out := SanitizeJsonArrayLineBreaks(in)
	if strings.Contains(out, "1,\n") {
		t.Errorf("numeric array not compacted: %q", out)
	}
	if !strings.Contains(out, "1,2,3") {
		t.Errorf("expected compacted array in %q", out)
	}
}

func TestArrayIntFlags(t *testing.T) {
	var f ArrayIntFlags
	if err := f.Set("5"); err != nil {
		t.Fatalf("Set(5): %v", err)
	}
	if err := f.Set("12"); err != nil {
		t.Fatalf("Set(12): %v", err)
	}
	if err := f.Set("x"); err == nil {
		t.Error("Set(x) accepted")
	}
	if f.String() != "5,12" {
		t.Errorf("String() = %q, want 5,12", f.String())
	}
}
