package entities

import "time"

// Clock carries the simulation horizon and the season bookkeeping the setup
// pipeline writes once. SeasonCounter starts at 0 when the first simulated
// step coincides with the first planting date, else -1 (no season active yet).
type Clock struct {
	SimulationStart time.Time `json:"simulation_start" validate:"required"`
	SimulationEnd   time.Time `json:"simulation_end" validate:"required,gtfield=SimulationStart"`
	StepStart       time.Time `json:"step_start,omitempty"` // zero value means SimulationStart

	Seasons       []Season `json:"seasons,omitempty"`
	SeasonCounter int      `json:"season_counter"`
}

// EffectiveStepStart resolves the zero value to the simulation start.
func (c *Clock) EffectiveStepStart() time.Time {
	if c.StepStart.IsZero() {
		return c.SimulationStart
	}
	return c.StepStart
}

// NSeasons is the number of scheduled growing seasons.
func (c *Clock) NSeasons() int { return len(c.Seasons) }
