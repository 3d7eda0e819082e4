package gdd

import (
	"fmt"
	"math"

	"github.com/chris-s-bowden/aquacrop/internal/model"
)

// Method selects the temperature clipping convention used to derive a daily
// growing-degree-day value from the min/max air temperature.
type Method int

const (
	// MethodMeanFloor averages the raw extremes and floors the mean at Tbase.
	MethodMeanFloor Method = 1
	// MethodClipBoth clips both extremes into [Tbase, Tupp] before averaging.
	MethodClipBoth Method = 2
	// MethodCapAndFloor caps both extremes at Tupp and floors the mean at Tbase.
	MethodCapAndFloor Method = 3
)

// Daily computes one day's growing degree days in °C·day.
func Daily(method Method, tbase, tupp, tmin, tmax float64) (float64, error) {
	switch method {
	case MethodMeanFloor:
		tmean := (tmax + tmin) / 2
		return math.Max(tmean, tbase) - tbase, nil
	case MethodClipBoth:
		tmax = clip(tmax, tbase, tupp)
		tmin = clip(tmin, tbase, tupp)
		return (tmax+tmin)/2 - tbase, nil
	case MethodCapAndFloor:
		tmax = math.Min(tmax, tupp)
		tmin = math.Min(tmin, tupp)
		tmean := math.Max((tmax+tmin)/2, tbase)
		return tmean - tbase, nil
	default:
		return 0, fmt.Errorf("gdd: unknown method %d: %w", method, model.ErrConfiguration)
	}
}

// Series derives the daily GDD for every record of the series, oldest first.
func Series(method Method, tbase, tupp float64, w model.WeatherSeries) ([]float64, error) {
	out := make([]float64, len(w))
	for i := range w {
		g, err := Daily(method, tbase, tupp, w[i].TempMin, w[i].TempMax)
		if err != nil {
			return nil, err
		}
		out[i] = g
	}
	return out, nil
}

func clip(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
