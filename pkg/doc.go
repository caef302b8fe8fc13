// Package pkg provides the libraries behind Ordinatrix, a tool that
// translates, scales and rotates free-form lists of 2D and 3D points.
//
// # Overview
//
// The pkg directory is organized into three areas:
//
//  1. Domain: [point] (parse, round, render) and [transform] (modes,
//     parameters, translate/scale/rotate)
//  2. Orchestration: [pipeline] (parse → transform → render) and [config]
//  3. Surfaces: [server] (HTTP API), [clipboard] (OSC52 copy),
//     [httputil], [observability]
//
// # Architecture
//
// The data flow through Ordinatrix:
//
//	"1 2, 3 4" (free-form text)
//	         ↓
//	    [point] Scan (tokenize, chunk into points)
//	         ↓
//	    [transform] Apply (translate | scale | rotate)
//	         ↓
//	    [pipeline] Render (text | json | yaml)
//	         ↓
//	"11, 2,\n13, 4"
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/ordinatrix/pkg/point"
//	    "github.com/matzehuels/ordinatrix/pkg/transform"
//	)
//
//	layout := point.Layout{}
//	points := point.Parse("1 2, 3 4", layout)
//	moved := transform.Apply(points, transform.Translate,
//	    transform.Params{X: transform.Value(10)}, layout.IncludeZ)
//	fmt.Println(point.Render(moved, layout))
//	// 11, 2,
//	// 13, 4
//
// Every stage is a pure function of its inputs: the same text and options
// always produce the same output, and no stage reads ambient state.
//
// [point]: https://pkg.go.dev/github.com/matzehuels/ordinatrix/pkg/point
// [transform]: https://pkg.go.dev/github.com/matzehuels/ordinatrix/pkg/transform
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/ordinatrix/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/matzehuels/ordinatrix/pkg/config
// [server]: https://pkg.go.dev/github.com/matzehuels/ordinatrix/pkg/server
// [clipboard]: https://pkg.go.dev/github.com/matzehuels/ordinatrix/pkg/clipboard
// [httputil]: https://pkg.go.dev/github.com/matzehuels/ordinatrix/pkg/httputil
// [observability]: https://pkg.go.dev/github.com/matzehuels/ordinatrix/pkg/observability
package pkg
