package model

import (
	"github.com/chris-s-bowden/aquacrop/internal/model/entities"
)

// Alias per esporre i tipi comuni ai servizi

type (
	Crop                 = entities.Crop
	CropCalendar         = entities.CropCalendar
	StageDay             = entities.StageDay
	StageThreshold       = entities.StageThreshold
	Stage                = entities.Stage
	CalendarMode         = entities.CalendarMode
	SoilCompartment      = entities.SoilCompartment
	SoilProfile          = entities.SoilProfile
	StressResponsePoint  = entities.StressResponsePoint
	StressResponseCurve  = entities.StressResponseCurve
	StressCoefficients   = entities.StressCoefficients
	Season               = entities.Season
	Clock                = entities.Clock
	DailyWeather         = entities.DailyWeather
	WeatherSeries        = entities.WeatherSeries
	FieldManagement      = entities.FieldManagement
	IrrigationMethod     = entities.IrrigationMethod
	IrrigationManagement = entities.IrrigationManagement
	ScheduledApplication = entities.ScheduledApplication
)

const (
	ModeCalendarDays      = entities.ModeCalendarDays
	ModeGrowingDegreeDays = entities.ModeGrowingDegreeDays

	StageEmergence      = entities.StageEmergence
	StageMaxRooting     = entities.StageMaxRooting
	StageMaxCanopy      = entities.StageMaxCanopy
	StageCanopyDevEnd   = entities.StageCanopyDevEnd
	StageFloweringEnd   = entities.StageFloweringEnd
	StageHIStart        = entities.StageHIStart
	StageYieldFormation = entities.StageYieldFormation
	StageSenescence     = entities.StageSenescence
	StageMaturity       = entities.StageMaturity

	IrrigationRainfed       = entities.IrrigationRainfed
	IrrigationSoilMoisture  = entities.IrrigationSoilMoisture
	IrrigationFixedInterval = entities.IrrigationFixedInterval
	IrrigationSchedule      = entities.IrrigationSchedule
	IrrigationNet           = entities.IrrigationNet
	IrrigationConstantDepth = entities.IrrigationConstantDepth
)

// NewIrrigationManagement re-exports the entity constructor.
func NewIrrigationManagement(method IrrigationMethod) IrrigationManagement {
	return entities.NewIrrigationManagement(method)
}
