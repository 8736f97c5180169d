package hocr

import (
	"regexp"
	"strconv"
	"strings"
)

// bboxPattern matches a bbox property anywhere inside a string: the
// keyword followed by four whitespace-separated, optionally signed,
// optionally fractional numbers. Matching is case-sensitive, so "BBOX"
// never matches.
var bboxPattern = regexp.MustCompile(`\bbbox\s+(-?[0-9.]+)\s+(-?[0-9.]+)\s+(-?[0-9.]+)\s+(-?[0-9.]+)\b`)

// confidenceKeys are the title property names understood to carry
// per-sample recognition confidence values.
var confidenceKeys = map[string]bool{
	"nlp":     true,
	"x_confs": true,
	"x_wconf": true,
}

// titleData holds everything extracted from one title attribute.
type titleData struct {
	properties []string // Raw properties, split on ';' and trimmed
	bbox       BBox     // Last bbox match, zero when none parsed
	confidence float64  // Last confidence mean, meaningful when hasConf
	hasConf    bool     // Whether any property carried a confidence
}

// parseTitleAttr runs the property grammar over a raw title attribute.
// Each property is scanned independently for coordinates and for
// confidence samples; when several properties carry the same kind of
// value the last one wins. A malformed property is skipped without
// touching values parsed from earlier properties.
func parseTitleAttr(title string) titleData {
	d := titleData{properties: splitProperties(title)}
	for _, prop := range d.properties {
		if box, ok := parseBBox(prop); ok {
			d.bbox = box
		}
		if conf, ok := parseConfidence(prop); ok {
			d.confidence = conf
			d.hasConf = true
		}
	}
	return d
}

// splitProperties splits a title attribute on semicolons and trims each
// part. Empty parts are kept; an empty or absent title yields nil.
func splitProperties(title string) []string {
	if title == "" {
		return nil
	}
	parts := strings.Split(title, ";")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}

// parseBBox searches a single property string for a bbox declaration.
// Surrounding tokens are tolerated. Coordinates written as floats are
// truncated toward zero, not rounded. ok is false when nothing usable
// was found, including fragments like "bbox . . . ." that match the
// pattern but fail numeric conversion.
func parseBBox(property string) (BBox, bool) {
	m := bboxPattern.FindStringSubmatch(property)
	if m == nil {
		return BBox{}, false
	}
	var coords [4]int
	for i, raw := range m[1:] {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return BBox{}, false
		}
		coords[i] = int(f)
	}
	return BBox{X0: coords[0], Y0: coords[1], X1: coords[2], Y1: coords[3]}, true
}

// parseConfidence interprets a single property as a confidence sample
// list: a recognized key followed by one or more integer samples. Only
// the key is case-folded. Every sample must be bare decimal digits; one
// bad sample abandons the whole property. The result is the arithmetic
// mean of the samples.
func parseConfidence(property string) (float64, bool) {
	fields := strings.Fields(property)
	if len(fields) < 2 {
		return 0, false
	}
	if !confidenceKeys[strings.ToLower(fields[0])] {
		return 0, false
	}
	samples := fields[1:]
	sum := 0
	for _, sample := range samples {
		if !isDigits(sample) {
			return 0, false
		}
		n, err := strconv.Atoi(sample)
		if err != nil {
			return 0, false
		}
		sum += n
	}
	return float64(sum) / float64(len(samples)), true
}

// isDigits reports whether s is non-empty and entirely ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
