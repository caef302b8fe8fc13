package point

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// numberPrefix matches the longest leading decimal literal of a token.
var numberPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// Tokenize splits text on any run of whitespace and/or commas.
// Empty tokens are discarded.
func Tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || isSpace(r)
	})
}

// Parse converts text into points. See [Scan] for the chunking rules.
func Parse(text string, layout Layout) []Point {
	points, _ := Scan(text, layout)
	return points
}

// Scan converts text into points and also reports how many trailing tokens
// were dropped because they did not fill a whole chunk.
//
// Within a chunk the positions are fixed: x, y, then z when
// layout.IncludeZ, then the tag when layout.IncludeTag.
func Scan(text string, layout Layout) (points []Point, leftover int) {
	content := strings.TrimSpace(text)
	if content == "" {
		return []Point{}, 0
	}

	tokens := Tokenize(content)
	size := layout.ChunkSize()
	points = make([]Point, 0, len(tokens)/size)

	k := 0
	for ; k+size <= len(tokens); k += size {
		chunk := tokens[k : k+size]
		p := Point{
			X: ParseNumber(chunk[0]),
			Y: ParseNumber(chunk[1]),
		}
		next := 2
		if layout.IncludeZ {
			p.Z = ParseNumber(chunk[next])
			next++
		}
		if layout.IncludeTag {
			p.Tag = chunk[next]
		}
		points = append(points, p)
	}

	return points, len(tokens) - k
}

// ParseNumber parses a numeric token on a best-effort basis.
//
// The longest leading decimal literal is used, so "12abc" yields 12.
// Tokens without one, and NaN or infinite values, yield 0.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return finite(v)
	}
	m := numberPrefix.FindString(s)
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return finite(v)
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// isSpace reports Unicode white space and the byte order mark.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
