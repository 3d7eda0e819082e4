package entities

import "time"

// Season is one planting/harvest cycle. Harvest falls in the following
// calendar year for cross-year crops.
type Season struct {
	PlantDate   time.Time `json:"plant_date"`
	HarvestDate time.Time `json:"harvest_date"`
	Crop        string    `json:"crop"`
}
