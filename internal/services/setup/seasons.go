package setup

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/chris-s-bowden/aquacrop/internal/model"
)

// ScheduleSeasons derives every planting/harvest date pair the simulation
// window contains, from the crop's single "M/D" planting and harvest dates.
// Pure over its inputs; the pipeline writes the result onto the clock.
//
// Whether the season crosses the calendar year boundary is decided in a
// fixed reference year, then the year lists are adjusted for a simulation
// end that falls before the last planting, for windows too narrow to fit a
// cross-year harvest, and for a partial first season.
func ScheduleSeasons(crop *model.Crop, clk *model.Clock) ([]model.Season, int, error) {
	if crop.HarvestDate == "" {
		return nil, 0, fmt.Errorf("seasons: crop %q has no harvest date: %w", crop.Name, model.ErrConfiguration)
	}
	refPlant, err := monthDayDate(crop.PlantingDate, referenceYear)
	if err != nil {
		return nil, 0, err
	}
	refHarvest, err := monthDayDate(crop.HarvestDate, referenceYear)
	if err != nil {
		return nil, 0, err
	}

	startYear := clk.SimulationStart.Year()
	endYear := clk.SimulationEnd.Year()

	var plantYears, harvestYears []int
	if refPlant.Before(refHarvest) {
		// season contained in a single calendar year
		mockEnd := time.Date(referenceYear, clk.SimulationEnd.Month(), clk.SimulationEnd.Day(), 0, 0, 0, 0, time.UTC)
		if !mockEnd.After(refPlant) {
			// the last simulated year ends before its season would start
			endYear--
		}
		plantYears = yearRange(startYear, endYear)
		harvestYears = plantYears
	} else {
		// harvest falls in the calendar year after planting
		wide, err := monthDayDate(crop.HarvestDate, endYear+2)
		if err != nil {
			return nil, 0, err
		}
		if wide.Before(clk.SimulationEnd) {
			plantYears = yearRange(startYear, endYear)
			harvestYears = yearRange(startYear+1, endYear+1)
		} else {
			plantYears = yearRange(startYear, endYear-1)
			harvestYears = yearRange(startYear+1, endYear)
		}
	}

	if len(plantYears) > 0 {
		first, err := monthDayDate(crop.PlantingDate, plantYears[0])
		if err != nil {
			return nil, 0, err
		}
		if first.Before(clk.SimulationStart) {
			// partial first season is excluded
			plantYears = plantYears[1:]
			harvestYears = harvestYears[1:]
		}
	}

	if len(plantYears) != len(harvestYears) {
		return nil, 0, fmt.Errorf("seasons: %d plant years against %d harvest years: %w",
			len(plantYears), len(harvestYears), model.ErrInternalConsistency)
	}

	seasons := make([]model.Season, 0, len(plantYears))
	for i := range plantYears {
		plant, err := monthDayDate(crop.PlantingDate, plantYears[i])
		if err != nil {
			return nil, 0, err
		}
		harvest, err := monthDayDate(crop.HarvestDate, harvestYears[i])
		if err != nil {
			return nil, 0, err
		}
		seasons = append(seasons, model.Season{PlantDate: plant, HarvestDate: harvest, Crop: crop.Name})
	}

	counter := -1
	if len(seasons) > 0 && clk.EffectiveStepStart().Equal(seasons[0].PlantDate) {
		counter = 0
	}
	return seasons, counter, nil
}

// ===== helpers =====

// monthDayDate parses an unpadded "M/D" string into a midnight UTC date of
// the given year. Dates that only exist in leap years are rejected.
func monthDayDate(md string, year int) (time.Time, error) {
	parts := strings.Split(md, "/")
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("date %q: want \"month/day\": %w", md, model.ErrConfiguration)
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || m < 1 || m > 12 {
		return time.Time{}, fmt.Errorf("date %q: bad month: %w", md, model.ErrConfiguration)
	}
	d, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || d < 1 || d > 31 {
		return time.Time{}, fmt.Errorf("date %q: bad day: %w", md, model.ErrConfiguration)
	}
	t := time.Date(year, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if int(t.Month()) != m || t.Day() != d {
		return time.Time{}, fmt.Errorf("date %q does not exist in year %d: %w", md, year, model.ErrConfiguration)
	}
	return t, nil
}

func yearRange(from, to int) []int {
	if to < from {
		return nil
	}
	ys := make([]int, 0, to-from+1)
	for y := from; y <= to; y++ {
		ys = append(ys, y)
	}
	return ys
}
