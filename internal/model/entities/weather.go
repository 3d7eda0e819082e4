package entities

import "time"

// DailyWeather is one day of forcing. Temperatures in °C, water in mm.
type DailyWeather struct {
	Date          time.Time `json:"date"`
	TempMin       float64   `json:"t_min"`
	TempMax       float64   `json:"t_max"`
	Precipitation float64   `json:"precipitation"`
	ReferenceET   float64   `json:"et0"`
}

// WeatherSeries is a contiguous run of daily records, oldest first.
type WeatherSeries []DailyWeather

// IndexOf returns the position of the record for day, matching on the
// calendar date and ignoring the time of day.
func (w WeatherSeries) IndexOf(day time.Time) (int, bool) {
	y, m, d := day.Date()
	for i := range w {
		wy, wm, wd := w[i].Date.Date()
		if wy == y && wm == m && wd == d {
			return i, true
		}
	}
	return 0, false
}
