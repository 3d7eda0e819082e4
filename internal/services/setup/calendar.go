package setup

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/chris-s-bowden/aquacrop/internal/model"
	"github.com/chris-s-bowden/aquacrop/pkg/gdd"
)

// BuildGDDCalendar converts the crop's calendar-day stage template into
// growing-degree-day thresholds by walking the weather series from the
// planting date onward and accumulating daily GDD. The planting day is
// index 0 of the walk; a stage at day N maps to the running GDD total on
// day N.
func BuildGDDCalendar(crop *model.Crop, plantingDate time.Time, weather model.WeatherSeries) (*model.CropCalendar, error) {
	if crop.CalendarMode != model.ModeGrowingDegreeDays {
		return nil, fmt.Errorf("calendar: crop %q is not in growing-degree-day mode: %w",
			crop.Name, model.ErrUnsupportedMode)
	}
	maturity, ok := crop.MaturityDays()
	if !ok {
		return nil, fmt.Errorf("calendar: stage template for %q has no maturity entry: %w",
			crop.Name, model.ErrConfiguration)
	}
	start, ok := weather.IndexOf(plantingDate)
	if !ok {
		return nil, fmt.Errorf("calendar: weather series does not cover planting date %s: %w",
			plantingDate.Format("2006-01-02"), model.ErrConfiguration)
	}

	daily, err := gdd.Series(gdd.Method(crop.GDDMethod), crop.Tbase, crop.Tupp, weather[start:])
	if err != nil {
		return nil, err
	}
	cum := make([]float64, len(daily))
	floats.CumSum(cum, daily)

	thresholds := make([]model.StageThreshold, 0, len(crop.StageDays))
	for _, sd := range crop.StageDays {
		if sd.Days >= len(cum) {
			return nil, fmt.Errorf("calendar: weather ends %d days after planting, before stage %s at day %d: %w",
				len(cum)-1, sd.Stage, sd.Days, model.ErrConfiguration)
		}
		thresholds = append(thresholds, model.StageThreshold{Stage: sd.Stage, Value: cum[sd.Days]})
	}

	return &model.CropCalendar{
		Mode:         model.ModeGrowingDegreeDays,
		PlantingDate: crop.PlantingDate,
		MaturityDays: maturity,
		Thresholds:   thresholds,
		GDD:          daily,
		GDDCum:       cum,
	}, nil
}

// buildCalendarDayCalendar passes the day-valued template through unchanged.
func buildCalendarDayCalendar(crop *model.Crop) (*model.CropCalendar, error) {
	maturity, ok := crop.MaturityDays()
	if !ok {
		return nil, fmt.Errorf("calendar: stage template for %q has no maturity entry: %w",
			crop.Name, model.ErrConfiguration)
	}
	thresholds := make([]model.StageThreshold, 0, len(crop.StageDays))
	for _, sd := range crop.StageDays {
		thresholds = append(thresholds, model.StageThreshold{Stage: sd.Stage, Value: float64(sd.Days)})
	}
	return &model.CropCalendar{
		Mode:         model.ModeCalendarDays,
		PlantingDate: crop.PlantingDate,
		MaturityDays: maturity,
		Thresholds:   thresholds,
		HarvestDate:  crop.HarvestDate,
	}, nil
}
