package client

import (
	"context"
	"net/url"
	"strconv"
)

// SimulationClient reads frames and tunes the relaxation.
type SimulationClient struct {
	client *Client
}

func (s *SimulationClient) Frame(ctx context.Context) (*Frame, error) {
	var f Frame
	if err := s.client.get(ctx, "/frame", &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Tick advances the server by one step of dt seconds (clamped server side).
func (s *SimulationClient) Tick(ctx context.Context, dt float64) (*StepReport, error) {
	var r StepReport
	if err := s.client.post(ctx, "/tick", map[string]float64{"dt": dt}, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *SimulationClient) Params(ctx context.Context) (*Params, error) {
	var p Params
	if err := s.client.get(ctx, "/params", &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateParams changes the non-nil fields of p and returns the resulting
// full set.
func (s *SimulationClient) UpdateParams(ctx context.Context, p Params) (*Params, error) {
	var out Params
	if err := s.client.patch(ctx, "/params", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BondAngle measures the a-center-b angle in degrees.
func (s *SimulationClient) BondAngle(ctx context.Context, a, center, b string) (float64, error) {
	q := url.Values{"a": {a}, "center": {center}, "b": {b}}
	var resp struct {
		Degrees float64 `json:"degrees"`
	}
	err := s.client.get(ctx, "/angle?"+q.Encode(), &resp)
	return resp.Degrees, err
}

// Placement computes a bond segment for two spheres distance apart, using
// the server's overlap and minimum length.
func (s *SimulationClient) Placement(ctx context.Context, distance, sourceRadius, targetRadius float64) (*Placement, error) {
	q := url.Values{
		"distance":      {ftoa(distance)},
		"source_radius": {ftoa(sourceRadius)},
		"target_radius": {ftoa(targetRadius)},
	}
	var p Placement
	if err := s.client.get(ctx, "/placement?"+q.Encode(), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *SimulationClient) Elements(ctx context.Context) ([]Element, error) {
	var out []Element
	err := s.client.get(ctx, "/elements", &out)
	return out, err
}

func (s *SimulationClient) Presets(ctx context.Context) ([]Preset, error) {
	var out []Preset
	err := s.client.get(ctx, "/presets", &out)
	return out, err
}

func ftoa(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

//Personal.AI order the ending
