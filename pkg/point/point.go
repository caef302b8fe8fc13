package point

// Point is a parsed coordinate record.
//
// Z is 0 for 2D data. Tag holds the raw trailing token when tags are
// enabled and is empty otherwise; parsed tokens are never empty, so an
// empty Tag always means "no tag".
type Point struct {
	X   float64
	Y   float64
	Z   float64
	Tag string
}

// Layout describes which fields each point carries in text form.
type Layout struct {
	IncludeZ   bool // a third coordinate follows x and y
	IncludeTag bool // a free-text token follows the coordinates
}

// ChunkSize returns the number of tokens that make up one point.
func (l Layout) ChunkSize() int {
	n := 2
	if l.IncludeZ {
		n++
	}
	if l.IncludeTag {
		n++
	}
	return n
}

// Dimensions returns 3 when Z is included and 2 otherwise.
func (l Layout) Dimensions() int {
	if l.IncludeZ {
		return 3
	}
	return 2
}
