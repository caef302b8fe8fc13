package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/ordinatrix/pkg/observability"
	"github.com/matzehuels/ordinatrix/pkg/point"
)

// Document is the structured form of a point list used by the JSON and
// YAML formats. Coordinates are rounded like the text output.
type Document struct {
	Points []PointDoc `json:"points" yaml:"points"`
}

// PointDoc is one point of a Document. Z and Tag are present only when the
// layout includes them.
type PointDoc struct {
	X   float64  `json:"x" yaml:"x"`
	Y   float64  `json:"y" yaml:"y"`
	Z   *float64 `json:"z,omitempty" yaml:"z,omitempty"`
	Tag *string  `json:"tag,omitempty" yaml:"tag,omitempty"`
}

// NewDocument converts points into a Document for the given layout.
func NewDocument(points []point.Point, layout point.Layout) Document {
	docs := make([]PointDoc, len(points))
	for i, p := range points {
		d := PointDoc{
			X: point.Round(p.X),
			Y: point.Round(p.Y),
		}
		if layout.IncludeZ {
			z := point.Round(p.Z)
			d.Z = &z
		}
		if layout.IncludeTag {
			tag := p.Tag
			d.Tag = &tag
		}
		docs[i] = d
	}
	return Document{Points: docs}
}

// Render formats points in the format requested by opts.
func Render(ctx context.Context, points []point.Point, opts Options) ([]byte, error) {
	start := time.Now()

	var data []byte
	var err error

	switch opts.Format {
	case FormatText, "":
		data = []byte(point.Render(points, opts.Layout()))
	case FormatJSON:
		data, err = json.MarshalIndent(NewDocument(points, opts.Layout()), "", "  ")
	case FormatYAML:
		data, err = yaml.Marshal(NewDocument(points, opts.Layout()))
	default:
		return nil, ValidateFormat(opts.Format)
	}
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", opts.Format, err)
	}

	observability.Pipeline().OnRender(ctx, opts.Format, len(data), time.Since(start))
	return data, nil
}
