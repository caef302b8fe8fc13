package transform

import (
	"strconv"
	"strings"

	"github.com/matzehuels/ordinatrix/pkg/point"
)

// Param is a numeric transform parameter that remembers whether it was set.
//
// The zero value is unset. Use [Value] for an explicit number, including
// an explicit 0.
type Param struct {
	Val float64
	Set bool
}

// Value returns a set Param holding v.
func Value(v float64) Param {
	return Param{Val: v, Set: true}
}

// Unset returns a Param for a field left empty.
func Unset() Param {
	return Param{}
}

// ParseParam converts form text into a Param.
// Blank text is unset. Any other text is set, and is parsed with
// [point.ParseNumber], so unparsable text is an explicit 0.
func ParseParam(s string) Param {
	if strings.TrimSpace(s) == "" {
		return Unset()
	}
	return Value(point.ParseNumber(s))
}

// Or returns the parameter value, or def when the parameter is unset.
func (p Param) Or(def float64) float64 {
	if !p.Set {
		return def
	}
	return p.Val
}

// String returns the value as it would be typed into a field, or "" when
// unset.
func (p Param) String() string {
	if !p.Set {
		return ""
	}
	return strconv.FormatFloat(p.Val, 'f', -1, 64)
}

// Params holds one parameter per axis. Their meaning depends on the mode:
// offsets for translate, factors for scale, angles in degrees for rotate.
type Params struct {
	X Param
	Y Param
	Z Param
}

// NewParams returns fully set parameters.
func NewParams(x, y, z float64) Params {
	return Params{X: Value(x), Y: Value(y), Z: Value(z)}
}

// Identity returns the neutral value of an unset parameter for mode:
// 1 for scale, 0 otherwise.
func Identity(mode Mode) float64 {
	if mode == Scale {
		return 1
	}
	return 0
}

// Defaults returns the reset values of the parameter group for mode.
func Defaults(mode Mode) Params {
	v := Identity(mode)
	return NewParams(v, v, v)
}

// Resolve replaces unset parameters with the identity value of mode.
func (p Params) Resolve(mode Mode) (x, y, z float64) {
	id := Identity(mode)
	return p.X.Or(id), p.Y.Or(id), p.Z.Or(id)
}
