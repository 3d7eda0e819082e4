package setup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chris-s-bowden/aquacrop/internal/model"
)

func mayCrop() *model.Crop {
	c := gddCrop()
	c.HarvestDate = "10/10"
	return c
}

func winterCrop() *model.Crop {
	c := gddCrop()
	c.Name = "winter wheat"
	c.PlantingDate = "11/1"
	c.HarvestDate = "3/31"
	return c
}

func clockOver(start, end time.Time) *model.Clock {
	return &model.Clock{SimulationStart: start, SimulationEnd: end}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestScheduleSeasons_SingleYearThreeSeasons(t *testing.T) {
	clk := clockOver(date(1982, 5, 1), date(1984, 10, 30))

	seasons, counter, err := ScheduleSeasons(mayCrop(), clk)
	require.NoError(t, err)
	require.Len(t, seasons, 3)

	for i, s := range seasons {
		assert.Equal(t, date(1982+i, 5, 1), s.PlantDate, "season %d", i)
		assert.Equal(t, date(1982+i, 10, 10), s.HarvestDate, "season %d", i)
		assert.Equal(t, "maize", s.Crop)
	}
	assert.Equal(t, 0, counter)
}

func TestScheduleSeasons_LastYearEndsBeforePlanting(t *testing.T) {
	t.Run("end strictly before the planting day", func(t *testing.T) {
		clk := clockOver(date(1982, 5, 1), date(1984, 4, 30))

		seasons, counter, err := ScheduleSeasons(mayCrop(), clk)
		require.NoError(t, err)
		require.Len(t, seasons, 2)
		assert.Equal(t, date(1983, 5, 1), seasons[1].PlantDate)
		assert.Equal(t, 0, counter)
	})

	t.Run("end exactly on the planting day also drops the year", func(t *testing.T) {
		clk := clockOver(date(1982, 5, 1), date(1984, 5, 1))

		seasons, _, err := ScheduleSeasons(mayCrop(), clk)
		require.NoError(t, err)
		assert.Len(t, seasons, 2)
	})
}

func TestScheduleSeasons_PartialFirstSeasonExcluded(t *testing.T) {
	clk := clockOver(date(1982, 6, 15), date(1984, 10, 30))

	seasons, counter, err := ScheduleSeasons(mayCrop(), clk)
	require.NoError(t, err)
	require.Len(t, seasons, 2)

	assert.Equal(t, date(1983, 5, 1), seasons[0].PlantDate)
	assert.Equal(t, date(1984, 10, 10), seasons[1].HarvestDate)
	assert.Equal(t, -1, counter, "first step is off-season")
}

func TestScheduleSeasons_CrossYear(t *testing.T) {
	clk := clockOver(date(1982, 11, 1), date(1986, 4, 30))

	seasons, counter, err := ScheduleSeasons(winterCrop(), clk)
	require.NoError(t, err)
	require.Len(t, seasons, 4)

	for i, s := range seasons {
		assert.Equal(t, date(1982+i, 11, 1), s.PlantDate, "season %d", i)
		assert.Equal(t, date(1983+i, 3, 31), s.HarvestDate, "season %d", i)
	}
	assert.Equal(t, 0, counter)
}

func TestScheduleSeasons_CrossYearLongWindow(t *testing.T) {
	// harvest years never extend past the simulation's final year
	clk := clockOver(date(1980, 11, 1), date(1990, 6, 1))

	seasons, _, err := ScheduleSeasons(winterCrop(), clk)
	require.NoError(t, err)
	require.Len(t, seasons, 10)
	assert.Equal(t, date(1989, 11, 1), seasons[9].PlantDate)
	assert.Equal(t, date(1990, 3, 31), seasons[9].HarvestDate)
}

func TestScheduleSeasons_CrossYearPartialFirst(t *testing.T) {
	clk := clockOver(date(1982, 12, 1), date(1986, 4, 30))

	seasons, counter, err := ScheduleSeasons(winterCrop(), clk)
	require.NoError(t, err)
	require.Len(t, seasons, 3)
	assert.Equal(t, date(1983, 11, 1), seasons[0].PlantDate)
	assert.Equal(t, -1, counter)
}

func TestScheduleSeasons_WindowTooNarrow(t *testing.T) {
	// a cross-year crop cannot complete inside a two-month window
	clk := clockOver(date(1982, 11, 1), date(1982, 12, 31))

	seasons, counter, err := ScheduleSeasons(winterCrop(), clk)
	require.NoError(t, err)
	assert.Empty(t, seasons)
	assert.Equal(t, -1, counter)
}

func TestScheduleSeasons_StepStartControlsCounter(t *testing.T) {
	clk := clockOver(date(1982, 5, 1), date(1984, 10, 30))
	clk.StepStart = date(1982, 7, 1)

	_, counter, err := ScheduleSeasons(mayCrop(), clk)
	require.NoError(t, err)
	assert.Equal(t, -1, counter)
}

func TestScheduleSeasons_MissingHarvestDate(t *testing.T) {
	c := gddCrop() // no harvest date set
	_, _, err := ScheduleSeasons(c, clockOver(date(1982, 5, 1), date(1984, 10, 30)))
	assert.ErrorIs(t, err, model.ErrConfiguration)
}

func TestMonthDayDate(t *testing.T) {
	t.Run("parses unpadded month and day", func(t *testing.T) {
		got, err := monthDayDate("5/1", 1990)
		require.NoError(t, err)
		assert.Equal(t, date(1990, 5, 1), got)
	})

	t.Run("rejects days that normalise into the next month", func(t *testing.T) {
		_, err := monthDayDate("2/30", 1990)
		assert.ErrorIs(t, err, model.ErrConfiguration)
	})

	t.Run("rejects leap day outside leap years", func(t *testing.T) {
		_, err := monthDayDate("2/29", 1990)
		assert.ErrorIs(t, err, model.ErrConfiguration)

		got, err := monthDayDate("2/29", 1992)
		require.NoError(t, err)
		assert.Equal(t, date(1992, 2, 29), got)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, bad := range []string{"", "5", "5/1/2", "0/10", "13/1", "5/0", "5/32", "x/y"} {
			_, err := monthDayDate(bad, 1990)
			assert.ErrorIs(t, err, model.ErrConfiguration, "input %q", bad)
		}
	})
}

func TestYearRange(t *testing.T) {
	assert.Equal(t, []int{1982, 1983, 1984}, yearRange(1982, 1984))
	assert.Equal(t, []int{1982}, yearRange(1982, 1982))
	assert.Nil(t, yearRange(1984, 1982))
}
