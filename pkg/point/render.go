package point

import "strings"

const (
	// FieldSeparator joins the fields of one point.
	FieldSeparator = ", "

	// LineSeparator joins points.
	LineSeparator = ",\n"
)

// Fields returns the formatted fields of p in output order:
// x, y, then z when layout.IncludeZ, then the tag when layout.IncludeTag.
func (p Point) Fields(layout Layout) []string {
	fields := make([]string, 0, layout.ChunkSize())
	fields = append(fields, FormatNumber(p.X), FormatNumber(p.Y))
	if layout.IncludeZ {
		fields = append(fields, FormatNumber(p.Z))
	}
	if layout.IncludeTag {
		fields = append(fields, p.Tag)
	}
	return fields
}

// Render formats points as text, one point per line.
// An empty slice renders as the empty string.
func Render(points []Point, layout Layout) string {
	var b strings.Builder
	for i, p := range points {
		if i > 0 {
			b.WriteString(LineSeparator)
		}
		b.WriteString(strings.Join(p.Fields(layout), FieldSeparator))
	}
	return b.String()
}
