package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/matzehuels/ordinatrix/pkg/buildinfo"
	"github.com/matzehuels/ordinatrix/pkg/config"
	"github.com/matzehuels/ordinatrix/pkg/httputil"
	"github.com/matzehuels/ordinatrix/pkg/pipeline"
	"github.com/matzehuels/ordinatrix/pkg/transform"
)

// TransformRequest is the body of POST /api/v1/transform.
// Fields left out fall back to the configured defaults. A null or
// missing parameter is unset.
type TransformRequest struct {
	Input      string        `json:"input"`
	Mode       string        `json:"mode,omitempty"`
	Preset     string        `json:"preset,omitempty"`
	IncludeZ   *bool         `json:"include_z,omitempty"`
	IncludeTag *bool         `json:"include_tag,omitempty"`
	Params     ParamsRequest `json:"params"`
	Format     string        `json:"format,omitempty"`
}

// ParamsRequest carries per-axis parameters.
type ParamsRequest struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
	Z *float64 `json:"z"`
}

// TransformResponse is the result of a pipeline run.
type TransformResponse struct {
	ID      string              `json:"id"`
	Output  string              `json:"output"`
	Points  []pipeline.PointDoc `json:"points"`
	Dropped int                 `json:"dropped"`
}

// DefaultsResponse holds the reset values of a parameter group.
type DefaultsResponse struct {
	Mode string  `json:"mode"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Z    float64 `json:"z"`
}

func (s *Server) transform(w http.ResponseWriter, r *http.Request) {
	var req TransformRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		_ = httputil.WriteError(w, err)
		return
	}

	opts, err := s.options(req)
	if err != nil {
		_ = httputil.WriteError(w, err)
		return
	}

	result, err := s.Runner.Execute(r.Context(), req.Input, opts)
	if err != nil {
		s.Logger.Warn("transform failed", "err", err)
		_ = httputil.WriteError(w, err)
		return
	}

	_ = httputil.WriteJSON(w, http.StatusOK, TransformResponse{
		ID:      uuid.NewString(),
		Output:  string(result.Output),
		Points:  pipeline.NewDocument(result.Points, opts.Layout()).Points,
		Dropped: result.Stats.Dropped,
	})
}

// options builds pipeline options from a request on top of the config
// defaults. A preset supplies mode and parameters; explicit request
// parameters override the preset's.
func (s *Server) options(req TransformRequest) (pipeline.Options, error) {
	opts := s.Config.PipelineOptions()

	if req.Preset != "" {
		mode, params, err := s.Config.Preset(req.Preset)
		if err != nil {
			return opts, err
		}
		opts.Mode, opts.Params = mode, params
	}
	if req.Mode != "" {
		mode, err := transform.ParseMode(req.Mode)
		if err != nil {
			return opts, err
		}
		opts.Mode = mode
	}
	if req.IncludeZ != nil {
		opts.IncludeZ = *req.IncludeZ
	}
	if req.IncludeTag != nil {
		opts.IncludeTag = *req.IncludeTag
	}
	if req.Format != "" {
		opts.Format = req.Format
	}

	override(&opts.Params.X, req.Params.X)
	override(&opts.Params.Y, req.Params.Y)
	override(&opts.Params.Z, req.Params.Z)
	return opts, nil
}

func override(p *transform.Param, v *float64) {
	if v != nil {
		*p = transform.Value(*v)
	}
}

func (s *Server) defaults(w http.ResponseWriter, r *http.Request) {
	mode, err := transform.ParseMode(chi.URLParam(r, "mode"))
	if err != nil {
		_ = httputil.WriteError(w, err)
		return
	}
	x, y, z := transform.Defaults(mode).Resolve(mode)
	_ = httputil.WriteJSON(w, http.StatusOK, DefaultsResponse{Mode: mode.String(), X: x, Y: y, Z: z})
}

func (s *Server) presets(w http.ResponseWriter, _ *http.Request) {
	presets := s.Config.Presets
	if presets == nil {
		presets = map[string]config.Preset{}
	}
	_ = httputil.WriteJSON(w, http.StatusOK, map[string]any{"presets": presets})
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	_ = httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}
