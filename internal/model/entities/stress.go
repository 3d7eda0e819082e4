package entities

// StressResponsePoint is one candidate soil fertility stress level together
// with the crop response coefficients the offline table generator produced
// for it. Ks values are 0..1 multipliers (1 = no stress effect).
type StressResponsePoint struct {
	StressFraction      float64 `json:"stress_fraction"`
	CanopyExpansionKs   float64 `json:"ks_expansion"`
	CanopyCoverKs       float64 `json:"ks_canopy"`
	CanopyDeclineRate   float64 `json:"canopy_decline"` // cover lost per day in late season
	WaterProductivityKs float64 `json:"ks_wp"`
	RelativeBiomass     float64 `json:"relative_biomass"`
}

// StressResponseCurve is the ordered, read-only response table the calibrator
// searches. Index order is the generator's candidate order.
type StressResponseCurve struct {
	Points []StressResponsePoint `json:"points"`
}

func (c *StressResponseCurve) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Points)
}

// StressCoefficients are the calibrated values read off the curve at the
// matched row.
type StressCoefficients struct {
	StressFraction      float64 `json:"stress_fraction"`
	CanopyExpansionKs   float64 `json:"ks_expansion"`
	CanopyCoverKs       float64 `json:"ks_canopy"`
	CanopyDeclineRate   float64 `json:"canopy_decline"`
	WaterProductivityKs float64 `json:"ks_wp"`
	RelativeBiomass     float64 `json:"relative_biomass"`
	Index               int     `json:"index"` // matched curve row
}
