package setup

import (
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/chris-s-bowden/aquacrop/internal/model"
	"github.com/chris-s-bowden/aquacrop/pkg/metrics"
)

// Pipeline finalises the model inputs for one simulation run: it validates
// the entity records, grows the soil column to cover the root zone, builds
// the crop calendar (calibrating soil fertility stress when asked), and
// schedules the growing seasons onto the clock. Any failure aborts the whole
// setup and leaves no partial result on the clock.
type Pipeline struct {
	validate *validator.Validate
	rec      *metrics.Recorder
}

// NewPipeline builds a pipeline; rec may be nil.
func NewPipeline(rec *metrics.Recorder) *Pipeline {
	return &Pipeline{validate: validator.New(), rec: rec}
}

// Finalize runs the full setup sequence. crop, soil and clk are mutated in
// place with the finalised parameters.
func (p *Pipeline) Finalize(crop *model.Crop, soil *model.SoilProfile, clk *model.Clock, weather model.WeatherSeries) error {
	if err := p.checkInputs(crop, soil, clk, weather); err != nil {
		return err
	}

	if err := EnsureMinimumDepth(soil, crop.Zmax+rootDepthMargin); err != nil {
		return err
	}

	var cal *model.CropCalendar
	switch crop.CalendarMode {
	case model.ModeGrowingDegreeDays:
		planting, err := firstPlantingOnOrAfter(crop.PlantingDate, clk.SimulationStart)
		if err != nil {
			return err
		}
		cal, err = BuildGDDCalendar(crop, planting, weather)
		if err != nil {
			return err
		}
		if crop.CalibrateFertility {
			coeffs, err := CalibrateFertilityStress(crop, crop.StressCurve, crop.FertilityStressTarget)
			if err != nil {
				return err
			}
			p.rec.CalibrationRun()
			log.Printf("setup: fertility calibration crop=%s row=%d ccx_reduction_pct=%.2f cgc_reduction_pct=%.2f canopy_decline_pct_per_day=%.4f wp_reduction_pct=%.2f rel_biomass=%.2f",
				crop.Name, coeffs.Index,
				(1-coeffs.CanopyCoverKs)*100, (1-coeffs.CanopyExpansionKs)*100,
				coeffs.CanopyDeclineRate*100, (1-coeffs.WaterProductivityKs)*100,
				coeffs.RelativeBiomass)
		}
		harvest, err := EstimateHarvestDate(crop.PlantingDate, cal.MaturityDays)
		if err != nil {
			return err
		}
		crop.HarvestDate = harvest
		cal.HarvestDate = harvest

	case model.ModeCalendarDays:
		if crop.CalibrateFertility {
			return fmt.Errorf("setup: fertility calibration needs the growing-degree-day calendar, crop %q runs on calendar days: %w",
				crop.Name, model.ErrUnsupportedMode)
		}
		var err error
		cal, err = buildCalendarDayCalendar(crop)
		if err != nil {
			return err
		}

	default:
		return fmt.Errorf("setup: calendar mode %d: %w", crop.CalendarMode, model.ErrUnsupportedMode)
	}

	crop.Calendar = cal
	p.rec.CalendarBuilt()

	seasons, counter, err := ScheduleSeasons(crop, clk)
	if err != nil {
		return err
	}
	if len(seasons) == 0 {
		return fmt.Errorf("setup: no growing season fits %s..%s: %w",
			clk.SimulationStart.Format("2006-01-02"), clk.SimulationEnd.Format("2006-01-02"),
			model.ErrConfiguration)
	}
	clk.Seasons = seasons
	clk.SeasonCounter = counter
	p.rec.SeasonsScheduled(len(seasons))

	log.Printf("setup: finalised crop=%s mode=%d seasons=%d counter=%d soil_depth_m=%.2f",
		crop.Name, crop.CalendarMode, len(seasons), counter, soil.TotalDepth())
	return nil
}

// checkInputs applies the struct tags plus the rules that span fields.
func (p *Pipeline) checkInputs(crop *model.Crop, soil *model.SoilProfile, clk *model.Clock, weather model.WeatherSeries) error {
	if crop == nil || soil == nil || clk == nil {
		return fmt.Errorf("setup: nil crop, soil or clock: %w", model.ErrConfiguration)
	}
	if err := p.validate.Struct(crop); err != nil {
		return fmt.Errorf("setup: invalid crop: %v: %w", err, model.ErrConfiguration)
	}
	if err := p.validate.Struct(soil); err != nil {
		return fmt.Errorf("setup: invalid soil profile: %v: %w", err, model.ErrConfiguration)
	}
	if err := p.validate.Struct(clk); err != nil {
		return fmt.Errorf("setup: invalid clock: %v: %w", err, model.ErrConfiguration)
	}

	if _, ok := crop.MaturityDays(); !ok {
		return fmt.Errorf("setup: stage template for %q has no maturity entry: %w",
			crop.Name, model.ErrConfiguration)
	}
	for i := 1; i < len(crop.StageDays); i++ {
		if crop.StageDays[i].Days < crop.StageDays[i-1].Days {
			return fmt.Errorf("setup: stage %s at day %d precedes %s at day %d: %w",
				crop.StageDays[i].Stage, crop.StageDays[i].Days,
				crop.StageDays[i-1].Stage, crop.StageDays[i-1].Days,
				model.ErrConfiguration)
		}
	}

	switch crop.CalendarMode {
	case model.ModeGrowingDegreeDays:
		if crop.GDDMethod < 1 || crop.GDDMethod > 3 {
			return fmt.Errorf("setup: crop %q needs a GDD method in growing-degree-day mode: %w",
				crop.Name, model.ErrConfiguration)
		}
		if crop.Tupp <= crop.Tbase {
			return fmt.Errorf("setup: crop %q has t_upp %.1f not above t_base %.1f: %w",
				crop.Name, crop.Tupp, crop.Tbase, model.ErrConfiguration)
		}
		if len(weather) == 0 {
			return fmt.Errorf("setup: growing-degree-day mode needs a weather series: %w",
				model.ErrConfiguration)
		}
	case model.ModeCalendarDays:
		if crop.HarvestDate == "" {
			return fmt.Errorf("setup: crop %q needs a harvest date in calendar-day mode: %w",
				crop.Name, model.ErrConfiguration)
		}
	}
	return nil
}

// firstPlantingOnOrAfter resolves the "M/D" planting date to its first
// occurrence on or after start.
func firstPlantingOnOrAfter(md string, start time.Time) (time.Time, error) {
	day := startOfDay(start)
	t, err := monthDayDate(md, day.Year())
	if err != nil {
		return time.Time{}, err
	}
	if t.Before(day) {
		return monthDayDate(md, day.Year()+1)
	}
	return t, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
