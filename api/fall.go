package api

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/mitchellh/hashstructure/v2"
	"github.com/rotblauer/yfall/common"
	"github.com/rotblauer/yfall/inspect"
	"github.com/rotblauer/yfall/kinematics"
	"github.com/rotblauer/yfall/params"
	"github.com/rotblauer/yfall/render"
)

// FallResult holds one run of the height computation.
// Heights[i] is the height at Times[i].
type FallResult struct {
	Projectile  kinematics.Projectile
	Times       []float64
	Heights     []float64
	Summary     kinematics.Summary
	Fingerprint uint64
}

// fingerprint is the hashed identity of a run.
type fingerprint struct {
	Projectile kinematics.Projectile
	TimeRange  params.TimeRange
	Heights    []float64
}

// Fall computes heights over the configured time samples and writes them to w.
// The breakpoint is stopped once, after the samples exist and before anything is computed;
// if the operator quits there, inspect.ErrQuit is returned and nothing is written.
func Fall(cfg *params.FallConfig, w io.Writer, bp *inspect.Breakpoint) (*FallResult, error) {
	if cfg == nil {
		cfg = params.DefaultFallConfig()
	}
	format, err := render.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	p := kinematics.Projectile{X0: cfg.X0, V0: cfg.V0, A: cfg.Acceleration}
	ts := cfg.TimeRange.Samples()

	if err := bp.Stop("fall", inspect.Frame{
		{Name: "v0", Value: p.V0},
		{Name: "x0", Value: p.X0},
		{Name: "a", Value: p.A},
		{Name: "t", Value: ts},
	}); err != nil {
		return nil, err
	}

	ys := p.Heights(ts)

	opt := render.DefaultOptions()
	opt.Precision = cfg.Precision
	if err := render.Write(w, format, ts, ys, opt); err != nil {
		return nil, fmt.Errorf("write heights: %w", err)
	}

	res := &FallResult{
		Projectile: p,
		Times:      ts,
		Heights:    ys,
		Summary:    kinematics.Summarize(ts, ys),
	}
	res.Fingerprint, err = hashstructure.Hash(fingerprint{
		Projectile: p,
		TimeRange:  cfg.TimeRange,
		Heights:    ys,
	}, hashstructure.FormatV2, nil)
	if err != nil {
		return nil, fmt.Errorf("fingerprint: %w", err)
	}

	res.log()
	return res, nil
}

// commaf is humanize.Commaf for any float64; Inf and NaN are not comma-grouped.
func commaf(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return humanize.Commaf(v)
}

func (r *FallResult) log() {
	attrs := []any{
		"n", humanize.Comma(int64(r.Summary.N)),
		"max", commaf(common.DecimalToFixed(r.Summary.Max, 2)),
		"max.t", common.DecimalToFixed(r.Summary.MaxT, 2),
		"min", commaf(common.DecimalToFixed(r.Summary.Min, 2)),
		"mean", commaf(common.DecimalToFixed(r.Summary.Mean, 2)),
	}
	if t, y, ok := r.Projectile.Apex(); ok {
		attrs = append(attrs, "apex.t", common.DecimalToFixed(t, 3), "apex", commaf(common.DecimalToFixed(y, 2)))
	}
	if t, ok := r.Projectile.Impact(); ok {
		attrs = append(attrs, "impact.t", common.DecimalToFixed(t, 3))
	}
	slog.Info("Computed heights", attrs...)
	slog.Debug("Fall fingerprint", "hash", fmt.Sprintf("%x", r.Fingerprint))
}
