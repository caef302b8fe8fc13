package pipeline

import (
	"context"
	"math"
	"time"

	"github.com/matzehuels/ordinatrix/pkg/errors"
	"github.com/matzehuels/ordinatrix/pkg/observability"
	"github.com/matzehuels/ordinatrix/pkg/point"
	"github.com/matzehuels/ordinatrix/pkg/transform"
)

// Transform applies the transform selected by opts to every point.
//
// A coordinate that overflows to ±Inf is reported as INVALID_PARAM, since
// no output format can represent it faithfully.
func Transform(ctx context.Context, points []point.Point, opts Options) ([]point.Point, error) {
	start := time.Now()
	out := transform.Apply(points, opts.Mode, opts.Params, opts.IncludeZ)
	for i, p := range out {
		if !finite(p.X) || !finite(p.Y) || (opts.IncludeZ && !finite(p.Z)) {
			return nil, errors.New(errors.ErrCodeInvalidParam,
				"%s overflows point %d; use smaller parameters", opts.Mode, i+1)
		}
	}
	observability.Pipeline().OnTransform(ctx, opts.Mode.String(), len(out), time.Since(start))
	return out, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
