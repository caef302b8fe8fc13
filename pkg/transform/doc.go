// Package transform applies geometric transforms to parsed points.
//
// Three mutually exclusive modes are supported:
//
//   - [Translate]: add an offset per axis
//   - [Scale]: multiply each axis by a factor
//   - [Rotate]: rotate about X, then Y, then Z by angles in degrees
//
// Parameters are a triple of [Param] values. A Param distinguishes a field
// the user left empty from one explicitly set to zero, which matters for
// scaling: an empty factor means "keep this axis" (multiply by 1), while an
// explicit 0 collapses the axis.
//
// In 2D (includeZ false) the Z parameter of translate and scale is ignored,
// and rotation only uses the Z angle, interpreted as an in-plane rotation.
//
// All functions are pure: each point is transformed independently and a
// new slice is returned.
package transform
