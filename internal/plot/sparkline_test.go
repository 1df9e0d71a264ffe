package plot

import (
	"strings"
	"testing"
)

func TestSparklineLengthMatchesInput(t *testing.T) {
	cases := [][]float64{
		{1},
		{1, 2},
		{400, 410, 395, 420, 380, 405},
		make([]float64, 60),
	}

	for _, values := range cases {
		spark := Sparkline(values)
		if got := len([]rune(spark)); got != len(values) {
			t.Errorf("Sparkline(%d values) produced %d glyphs", len(values), got)
		}
	}
}

func TestSparklineGlyphsFromPalette(t *testing.T) {
	spark := Sparkline([]float64{1, 5, 3, 9, 2, 8, 4, 7, 6})
	for _, r := range spark {
		if !strings.ContainsRune("▁▂▃▄▅▆▇█", r) {
			t.Errorf("Unexpected glyph %q in sparkline %q", r, spark)
		}
	}

	// Extremes must map to the lowest and highest glyphs
	spark = Sparkline([]float64{0, 100})
	if spark != "▁█" {
		t.Errorf("Expected extremes to map to palette ends, got %q", spark)
	}
}

func TestSparklineFlatSeries(t *testing.T) {
	// A flat series maps every value to the middle intensity level
	spark := Sparkline([]float64{3.5, 3.5, 3.5})
	if spark != "▅▅▅" {
		t.Errorf("Expected middle-level glyphs for flat series, got %q", spark)
	}
}

func TestSparklineEmptyInput(t *testing.T) {
	// Empty input yields an empty string, not an error
	if spark := Sparkline(nil); spark != "" {
		t.Errorf("Expected empty sparkline for empty input, got %q", spark)
	}
}

func TestSummarizePositionalMedian(t *testing.T) {
	// The median is positional (index len/2 in given order), not sorted.
	// For [5, 1, 9] that is 1, not 5.
	s := Summarize([]float64{5, 1, 9})
	if s.Median != 1 {
		t.Errorf("Expected positional median 1, got %f", s.Median)
	}
	if s.Min != 1 || s.Max != 9 {
		t.Errorf("Expected min=1 max=9, got min=%f max=%f", s.Min, s.Max)
	}

	// Even-length input takes the element just past the midpoint
	s = Summarize([]float64{7, 2, 8, 3})
	if s.Median != 8 {
		t.Errorf("Expected positional median 8 for even-length input, got %f", s.Median)
	}
}

func TestSummarizeEmptyInput(t *testing.T) {
	s := Summarize(nil)
	if s.Sparkline != "" || s.Min != 0 || s.Median != 0 || s.Max != 0 {
		t.Errorf("Expected zero summary for empty input, got %+v", s)
	}
}

func TestSummarizeSingleValue(t *testing.T) {
	s := Summarize([]float64{412.3})
	if s.Sparkline != "▅" {
		t.Errorf("Expected single middle glyph, got %q", s.Sparkline)
	}
	if s.Min != 412.3 || s.Median != 412.3 || s.Max != 412.3 {
		t.Errorf("Expected all stats equal to the value, got %+v", s)
	}
}
