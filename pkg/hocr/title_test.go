package hocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBBox(t *testing.T) {
	tests := []struct {
		name     string
		property string
		want     BBox
		ok       bool
	}{
		{
			name:     "integers",
			property: "bbox 1 2 3 4",
			want:     BBox{1, 2, 3, 4},
			ok:       true,
		},
		{
			name:     "floats truncate toward zero",
			property: "bbox 1.9 2.1 3.9 4.1",
			want:     BBox{1, 2, 3, 4},
			ok:       true,
		},
		{
			name:     "negative values",
			property: "bbox -1 -2 -3 -4",
			want:     BBox{-1, -2, -3, -4},
			ok:       true,
		},
		{
			name:     "negative floats truncate toward zero",
			property: "bbox -1.9 -2.1 -3.9 -4.1",
			want:     BBox{-1, -2, -3, -4},
			ok:       true,
		},
		{
			name:     "mixed whitespace between coordinates",
			property: "bbox  1   2 \t 3 \n 4",
			want:     BBox{1, 2, 3, 4},
			ok:       true,
		},
		{
			name:     "leading junk tolerated",
			property: "foo bbox 1 2 3 4",
			want:     BBox{1, 2, 3, 4},
			ok:       true,
		},
		{
			name:     "trailing junk tolerated",
			property: "bbox 1 2 3 4 bar",
			want:     BBox{1, 2, 3, 4},
			ok:       true,
		},
		{
			name:     "surrounding junk tolerated",
			property: "foo bbox 1 2 3 4 bar",
			want:     BBox{1, 2, 3, 4},
			ok:       true,
		},
		{
			name:     "large coordinates",
			property: "bbox 0 0 12400 17540",
			want:     BBox{0, 0, 12400, 17540},
			ok:       true,
		},
		{
			name:     "empty string",
			property: "",
			ok:       false,
		},
		{
			name:     "uppercase keyword does not match",
			property: "BBOX 1 2 3 4",
			ok:       false,
		},
		{
			name:     "keyword only",
			property: "bbox",
			ok:       false,
		},
		{
			name:     "one coordinate",
			property: "bbox 1",
			ok:       false,
		},
		{
			name:     "two coordinates",
			property: "bbox 1 2",
			ok:       false,
		},
		{
			name:     "three coordinates",
			property: "bbox 1 2 3",
			ok:       false,
		},
		{
			name:     "alpha coordinate",
			property: "bbox a 2 3 4",
			ok:       false,
		},
		{
			name:     "wrong keyword",
			property: "box 1 2 3 4",
			ok:       false,
		},
		{
			name:     "prefixed keyword",
			property: "bbbox 1 2 3 4",
			ok:       false,
		},
		{
			name:     "letter glued to last coordinate",
			property: "bbox 1 2 3 4a",
			ok:       false,
		},
		{
			name:     "dots match the pattern but fail conversion",
			property: "bbox . . . .",
			ok:       false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := parseBBox(tc.property)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestParseConfidence(t *testing.T) {
	tests := []struct {
		name     string
		property string
		want     float64
		ok       bool
	}{
		{
			name:     "single sample",
			property: "x_wconf 95",
			want:     95,
			ok:       true,
		},
		{
			name:     "mean of two samples",
			property: "x_wconf 90 80",
			want:     85,
			ok:       true,
		},
		{
			name:     "fractional mean",
			property: "x_wconf 90 81",
			want:     85.5,
			ok:       true,
		},
		{
			name:     "x_confs key",
			property: "x_confs 90 80 70",
			want:     80,
			ok:       true,
		},
		{
			name:     "nlp key",
			property: "nlp 1 2 3",
			want:     2,
			ok:       true,
		},
		{
			name:     "uppercase key folds",
			property: "X_WCONF 95",
			want:     95,
			ok:       true,
		},
		{
			name:     "mixed case key folds",
			property: "X_wConf 90 80",
			want:     85,
			ok:       true,
		},
		{
			name:     "one alpha sample abandons the property",
			property: "x_wconf 90 abc",
			ok:       false,
		},
		{
			name:     "fractional sample abandons the property",
			property: "x_wconf 90.5",
			ok:       false,
		},
		{
			name:     "signed sample abandons the property",
			property: "x_wconf -90",
			ok:       false,
		},
		{
			name:     "key without samples",
			property: "x_wconf",
			ok:       false,
		},
		{
			name:     "unknown key",
			property: "wconf 90",
			ok:       false,
		},
		{
			name:     "empty string",
			property: "",
			ok:       false,
		},
		{
			name:     "bbox property is not a confidence",
			property: "bbox 1 2 3 4",
			ok:       false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := parseConfidence(tc.property)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestSplitProperties(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  []string
	}{
		{
			name:  "empty title",
			title: "",
			want:  nil,
		},
		{
			name:  "single property",
			title: "bbox 1 2 3 4",
			want:  []string{"bbox 1 2 3 4"},
		},
		{
			name:  "two properties",
			title: "bbox 1 2 3 4; x_wconf 95",
			want:  []string{"bbox 1 2 3 4", "x_wconf 95"},
		},
		{
			name:  "surrounding whitespace trimmed",
			title: "  bbox 1 2 3 4  ;  ppageno 0 ",
			want:  []string{"bbox 1 2 3 4", "ppageno 0"},
		},
		{
			name:  "empty parts kept",
			title: "a;;b;",
			want:  []string{"a", "", "b", ""},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, splitProperties(tc.title))
		})
	}
}

func TestParseTitleAttr(t *testing.T) {
	t.Run("bbox and confidence from one title", func(t *testing.T) {
		d := parseTitleAttr("bbox 10 20 30 40; x_wconf 90 80")
		assert.Equal(t, BBox{10, 20, 30, 40}, d.bbox)
		assert.True(t, d.hasConf)
		assert.Equal(t, 85.0, d.confidence)
		assert.Equal(t, []string{"bbox 10 20 30 40", "x_wconf 90 80"}, d.properties)
	})

	t.Run("last bbox wins", func(t *testing.T) {
		d := parseTitleAttr("bbox 1 2 3 4; bbox 5 6 7 8")
		assert.Equal(t, BBox{5, 6, 7, 8}, d.bbox)
	})

	t.Run("last confidence wins", func(t *testing.T) {
		d := parseTitleAttr("x_wconf 90; x_confs 70 80")
		assert.True(t, d.hasConf)
		assert.Equal(t, 75.0, d.confidence)
	})

	t.Run("malformed bbox keeps the earlier value", func(t *testing.T) {
		d := parseTitleAttr("bbox 1 2 3 4; bbox 9 9")
		assert.Equal(t, BBox{1, 2, 3, 4}, d.bbox)
	})

	t.Run("malformed confidence keeps the earlier value", func(t *testing.T) {
		d := parseTitleAttr("x_wconf 90; x_wconf 80 abc")
		assert.True(t, d.hasConf)
		assert.Equal(t, 90.0, d.confidence)
	})

	t.Run("empty title", func(t *testing.T) {
		d := parseTitleAttr("")
		assert.Nil(t, d.properties)
		assert.True(t, d.bbox.IsZero())
		assert.False(t, d.hasConf)
	})

	t.Run("unrelated properties leave defaults", func(t *testing.T) {
		d := parseTitleAttr(`image "page.png"; ppageno 0`)
		assert.Equal(t, []string{`image "page.png"`, "ppageno 0"}, d.properties)
		assert.True(t, d.bbox.IsZero())
		assert.False(t, d.hasConf)
	})
}
