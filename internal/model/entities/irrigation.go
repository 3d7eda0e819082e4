package entities

import "time"

// IrrigationMethod selects how irrigation amounts are decided.
type IrrigationMethod int

const (
	IrrigationRainfed       IrrigationMethod = iota // no irrigation
	IrrigationSoilMoisture                          // triggered by per-stage soil moisture targets
	IrrigationFixedInterval                         // fixed interval between applications
	IrrigationSchedule                              // predefined date/depth schedule
	IrrigationNet                                   // hold the root zone at a moisture level
	IrrigationConstantDepth                         // same depth every day
)

// ScheduledApplication is one entry of a predefined irrigation schedule.
type ScheduledApplication struct {
	Date  time.Time `json:"date"`
	Depth float64   `json:"depth_mm" validate:"gte=0"`
}

// IrrigationManagement is the farmer's irrigation strategy. Zero values are
// not meaningful defaults; construct with NewIrrigationManagement.
type IrrigationManagement struct {
	Method           IrrigationMethod       `json:"method" validate:"gte=0,lte=5"`
	WettedSurfacePct float64                `json:"wet_surf" validate:"gt=0,lte=100"`
	AppEffPct        float64                `json:"app_eff" validate:"gt=0,lte=100"`
	MaxIrr           float64                `json:"max_irr" validate:"gte=0"`        // mm per day
	MaxIrrSeason     float64                `json:"max_irr_season" validate:"gte=0"` // mm per season
	SMT              [4]float64             `json:"smt"`                             // % TAW per growth stage (method 1)
	IrrInterval      int                    `json:"irr_interval" validate:"gte=0"`   // days (method 2)
	Schedule         []ScheduledApplication `json:"schedule,omitempty" validate:"dive"`
	NetIrrSMT        float64                `json:"net_irr_smt" validate:"gte=0,lte=100"` // % TAW (method 4)
	Depth            float64                `json:"depth" validate:"gte=0"`               // mm (method 5)
}

// NewIrrigationManagement returns a strategy with the conventional defaults
// for the given method.
func NewIrrigationManagement(method IrrigationMethod) IrrigationManagement {
	m := IrrigationManagement{
		Method:           method,
		WettedSurfacePct: 100,
		AppEffPct:        100,
		MaxIrr:           25,
		MaxIrrSeason:     10000,
		NetIrrSMT:        80,
	}
	switch method {
	case IrrigationSoilMoisture:
		m.SMT = [4]float64{100, 100, 100, 100}
	case IrrigationFixedInterval:
		m.IrrInterval = 3
	}
	return m
}
