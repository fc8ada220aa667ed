package generator

import (
	"fmt"

	"github.com/balidani/coaster-generator/pkg/validation"
)

// Check validates options before a run. It catches configuration mistakes
// that would otherwise surface as an attempt loop that can never succeed.
func (o Options) Check() *validation.Report {
	r := validation.NewReport()

	if o.MinTrackLength <= 0 {
		r.AddError(validation.Result{
			Level:       validation.LevelOptions,
			Message:     "min_track_length must be greater than 0",
			ActualValue: o.MinTrackLength,
			Expected:    "> 0",
		})
	}
	if o.StepsPerAttempt <= 0 {
		r.AddError(validation.Result{
			Level:       validation.LevelOptions,
			Message:     "steps_per_attempt must be greater than 0",
			ActualValue: o.StepsPerAttempt,
			Expected:    "> 0",
		})
	}
	if o.MaxAttempts < 0 {
		r.AddError(validation.Result{
			Level:       validation.LevelOptions,
			Message:     "max_attempts must be 0 (retry forever) or positive",
			ActualValue: o.MaxAttempts,
			Expected:    ">= 0",
		})
	}
	if o.HeightLimitFactor < 0 {
		r.AddError(validation.Result{
			Level:       validation.LevelOptions,
			Message:     "height_limit_factor must be non-negative",
			ActualValue: o.HeightLimitFactor,
			Expected:    ">= 0",
		})
	} else if o.HeightLimitFactor == 0 {
		r.AddWarning(validation.Result{
			Level:   validation.LevelOptions,
			Message: "height_limit_factor 0 disables height pruning; long attempts may wander near the ceiling",
		})
	}
	if o.Dims.Y <= 0 || o.Dims.X <= 0 || o.Dims.Z <= 0 {
		r.AddError(validation.Result{
			Level:       validation.LevelOptions,
			Message:     "dims must be positive in every axis",
			ActualValue: fmt.Sprintf("%dx%dx%d", o.Dims.Y, o.Dims.X, o.Dims.Z),
			Expected:    "> 0 per axis",
		})
	}
	if len(o.Prologue) == 0 {
		r.AddError(validation.Result{
			Level:   validation.LevelOptions,
			Message: "prologue must contain at least one piece; the search needs a last-placed piece to continue from",
		})
	}

	inBounds := func(c [3]int) bool {
		return c[0] >= 0 && c[0] < o.Dims.Y &&
			c[1] >= 0 && c[1] < o.Dims.X &&
			c[2] >= 0 && c[2] < o.Dims.Z
	}
	if !inBounds([3]int{o.Start.Y, o.Start.X, o.Start.Z}) {
		r.AddError(validation.Result{
			Level:       validation.LevelOptions,
			Message:     "start anchor outside the volume",
			ActualValue: o.Start.String(),
		})
	}
	for _, c := range o.Reserved {
		if !inBounds([3]int{c.Y, c.X, c.Z}) {
			r.AddError(validation.Result{
				Level:       validation.LevelOptions,
				Message:     "reserved cell outside the volume",
				ActualValue: c.String(),
			})
		}
	}

	return r
}
