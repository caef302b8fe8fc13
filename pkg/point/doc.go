// Package point parses coordinate lists from free-form text and renders
// them back to text.
//
// Input is a flat stream of tokens separated by any run of whitespace
// and/or commas. Tokens are consumed in fixed-size chunks, one chunk per
// point:
//
//	x, y [, z] [, tag]
//
// The chunk size follows the [Layout]: two coordinates, plus one when Z is
// included, plus one when a trailing tag is included. A trailing partial
// chunk is dropped. Numeric tokens are parsed permissively: a token that is
// not a number yields 0, so garbage input produces degenerate but defined
// output instead of failing the whole list.
//
// # Usage
//
//	layout := point.Layout{IncludeZ: true}
//	pts := point.Parse("1 2 3, 4 5 6", layout)
//	fmt.Println(point.Render(pts, layout))
//	// 1, 2, 3,
//	// 4, 5, 6
//
// Rendering rounds every coordinate with [Round], which snaps values within
// 1e-6 of an integer and otherwise keeps at most four decimals.
package point
