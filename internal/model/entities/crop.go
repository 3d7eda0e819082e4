package entities

// CalendarMode selects the unit in which stage transitions are expressed.
type CalendarMode int

const (
	ModeCalendarDays      CalendarMode = 1
	ModeGrowingDegreeDays CalendarMode = 2
)

// Stage identifies a crop development transition.
type Stage string

const (
	StageEmergence      Stage = "Emergence"
	StageMaxRooting     Stage = "MaxRooting"
	StageMaxCanopy      Stage = "MaxCanopy"
	StageCanopyDevEnd   Stage = "CanopyDevEnd"
	StageFloweringEnd   Stage = "FloweringEnd"
	StageHIStart        Stage = "HIStart"
	StageYieldFormation Stage = "YieldFormation"
	StageSenescence     Stage = "Senescence"
	StageMaturity       Stage = "Maturity"
)

// StageDay pairs a stage with its offset in days after planting. The crop
// template is ordered by Days and must contain StageMaturity.
type StageDay struct {
	Stage Stage `json:"stage" validate:"required"`
	Days  int   `json:"days" validate:"gte=0"`
}

// StageThreshold is one stage transition in the units of the calendar mode:
// cumulative growing degree days, or days after planting in calendar-day mode.
type StageThreshold struct {
	Stage Stage   `json:"stage"`
	Value float64 `json:"value"`
}

// Crop carries the per-crop template supplied by the caller plus the calendar
// and fertility parameters the setup pipeline writes back.
type Crop struct {
	Name         string       `json:"name" validate:"required"`
	PlantingDate string       `json:"planting_date" validate:"required"` // "M/D"
	HarvestDate  string       `json:"harvest_date,omitempty"`            // "M/D"; input in calendar-day mode, derived in GDD mode
	CalendarMode CalendarMode `json:"calendar_mode" validate:"oneof=1 2"`

	// Daily GDD derivation (growing-degree-day mode only).
	GDDMethod int     `json:"gdd_method" validate:"omitempty,oneof=1 2 3"`
	Tbase     float64 `json:"t_base"`                                 // °C
	Tupp      float64 `json:"t_upp" validate:"omitempty,gtfield=Tbase"` // °C

	Zmin float64 `json:"z_min" validate:"gt=0"`          // m, minimum effective rooting depth
	Zmax float64 `json:"z_max" validate:"gtefield=Zmin"` // m, maximum rooting depth

	StageDays []StageDay `json:"stage_days" validate:"required,min=1,dive"`

	// Soil fertility stress calibration.
	CalibrateFertility    bool                 `json:"calibrate_fertility"`
	FertilityStressTarget float64              `json:"fertility_stress_target" validate:"gte=0,lt=1"`
	StressCurve           *StressResponseCurve `json:"stress_curve,omitempty"`

	// Written by the setup pipeline, read-only afterwards.
	Calendar  *CropCalendar       `json:"calendar,omitempty"`
	Fertility *StressCoefficients `json:"fertility,omitempty"`
}

// MaturityDays returns the maturity offset from the stage template.
func (c *Crop) MaturityDays() (int, bool) {
	for _, sd := range c.StageDays {
		if sd.Stage == StageMaturity {
			return sd.Days, true
		}
	}
	return 0, false
}

// CropCalendar is the finalised stage calendar for one crop and one
// simulation window. Immutable after calibration.
type CropCalendar struct {
	Mode         CalendarMode     `json:"mode"`
	PlantingDate string           `json:"planting_date"` // nominal "M/D"
	MaturityDays int              `json:"maturity_days"`
	Thresholds   []StageThreshold `json:"thresholds"`
	GDD          []float64        `json:"gdd,omitempty"`     // daily values over the walk, planting day first
	GDDCum       []float64        `json:"gdd_cum,omitempty"` // running total of GDD
	HarvestDate  string           `json:"harvest_date"`      // "M/D"
}
