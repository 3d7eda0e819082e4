package setup

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/chris-s-bowden/aquacrop/internal/model"
)

const (
	// calibrationWindow: number of leading curve rows the search covers.
	calibrationWindow = 100

	// referenceYear anchors "month/day" arithmetic that needs a concrete year.
	referenceYear = 1990

	// harvestLagDays separates the estimated harvest from crop maturity.
	harvestLagDays = 30
)

// CalibrateFertilityStress selects the stress-response coefficients whose
// candidate stress fraction is closest to target, searching the first
// calibrationWindow rows of the curve; ties go to the lowest index. The crop
// is written only on success.
func CalibrateFertilityStress(crop *model.Crop, curve *model.StressResponseCurve, target float64) (*model.StressCoefficients, error) {
	if target == 0 {
		return nil, fmt.Errorf("calibration: no soil fertility stress value available for %q: %w",
			crop.Name, model.ErrConfiguration)
	}
	if curve.Len() < calibrationWindow {
		return nil, fmt.Errorf("calibration: stress response curve has %d rows, need %d: %w",
			curve.Len(), calibrationWindow, model.ErrConfiguration)
	}

	diffs := make([]float64, calibrationWindow)
	for i := range diffs {
		diffs[i] = math.Abs(curve.Points[i].StressFraction - target)
	}
	loc := floats.MinIdx(diffs)

	p := curve.Points[loc]
	coeffs := &model.StressCoefficients{
		StressFraction:      p.StressFraction,
		CanopyExpansionKs:   p.CanopyExpansionKs,
		CanopyCoverKs:       p.CanopyCoverKs,
		CanopyDeclineRate:   p.CanopyDeclineRate,
		WaterProductivityKs: p.WaterProductivityKs,
		RelativeBiomass:     p.RelativeBiomass,
		Index:               loc,
	}
	crop.Fertility = coeffs
	return coeffs, nil
}

// EstimateHarvestDate places the harvest maturityDays+harvestLagDays after
// the "M/D" planting date, anchored in the reference year, and returns it in
// the same unpadded "M/D" convention.
func EstimateHarvestDate(plantingDate string, maturityDays int) (string, error) {
	plant, err := monthDayDate(plantingDate, referenceYear)
	if err != nil {
		return "", err
	}
	harv := plant.AddDate(0, 0, maturityDays+harvestLagDays)
	return fmt.Sprintf("%d/%d", int(harv.Month()), harv.Day()), nil
}
