package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/ordinatrix/pkg/observability"
	"github.com/matzehuels/ordinatrix/pkg/point"
)

// Parse tokenizes input into points using the layout from opts.
// It returns the points and the number of dropped trailing tokens.
func Parse(ctx context.Context, input string, opts Options) ([]point.Point, int) {
	start := time.Now()
	points, leftover := point.Scan(input, opts.Layout())
	observability.Pipeline().OnParse(ctx, len(points), leftover, time.Since(start))
	return points, leftover
}
