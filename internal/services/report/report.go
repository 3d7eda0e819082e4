// Package report derives display views of the finalised model parameters.
// The views are presentational; the entity records stay the source of truth.
package report

import (
	"time"

	"github.com/chris-s-bowden/aquacrop/internal/model"
)

// FertilityStressReport expresses calibrated stress coefficients as the
// percentage reductions agronomists quote.
type FertilityStressReport struct {
	StressFraction                float64 `json:"stress_fraction"`
	CanopyCoverReductionPct       float64 `json:"ccx_reduction_pct"`
	CanopyExpansionReductionPct   float64 `json:"cgc_reduction_pct"`
	CanopyDeclinePctPerDay        float64 `json:"canopy_decline_pct_per_day"`
	WaterProductivityReductionPct float64 `json:"wp_reduction_pct"`
	RelativeBiomass               float64 `json:"rel_biomass"`
	CurveRow                      int     `json:"curve_row"`
}

// FertilityStressView converts stress coefficients into the report form.
// A nil input yields the zero report.
func FertilityStressView(c *model.StressCoefficients) FertilityStressReport {
	if c == nil {
		return FertilityStressReport{}
	}
	return FertilityStressReport{
		StressFraction:                c.StressFraction,
		CanopyCoverReductionPct:       (1 - c.CanopyCoverKs) * 100,
		CanopyExpansionReductionPct:   (1 - c.CanopyExpansionKs) * 100,
		CanopyDeclinePctPerDay:        c.CanopyDeclineRate * 100,
		WaterProductivityReductionPct: (1 - c.WaterProductivityKs) * 100,
		RelativeBiomass:               c.RelativeBiomass,
		CurveRow:                      c.Index,
	}
}

// SeasonSummary condenses a scheduled season sequence.
type SeasonSummary struct {
	Count          int       `json:"count"`
	FirstPlanting  time.Time `json:"first_planting"`
	LastHarvest    time.Time `json:"last_harvest"`
	MeanLengthDays float64   `json:"mean_length_days"`
}

// SummarizeSeasons reduces the season list to its summary. Empty input
// yields the zero summary.
func SummarizeSeasons(seasons []model.Season) SeasonSummary {
	if len(seasons) == 0 {
		return SeasonSummary{}
	}
	sum := SeasonSummary{
		Count:         len(seasons),
		FirstPlanting: seasons[0].PlantDate,
		LastHarvest:   seasons[len(seasons)-1].HarvestDate,
	}
	total := 0.0
	for _, s := range seasons {
		total += s.HarvestDate.Sub(s.PlantDate).Hours() / 24
	}
	sum.MeanLengthDays = total / float64(len(seasons))
	return sum
}
