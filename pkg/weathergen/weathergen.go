package weathergen

import (
	"math"
	"math/rand"
	"time"

	"github.com/chris-s-bowden/aquacrop/internal/model"
)

// ====== Tunables ======
const (
	// defaultAnnualMean: mid-latitude yearly mean temperature (°C).
	defaultAnnualMean = 14.0

	// defaultAmplitude: half swing between winter and summer means (°C).
	defaultAmplitude = 9.0

	// defaultDiurnal: Tmax-Tmin spread (°C).
	defaultDiurnal = 8.0

	// defaultNoise: day-to-day jitter on the mean (°C).
	defaultNoise = 1.5

	// defaultWetProb / defaultWetMeanMM: chance of a wet day and its mean depth.
	defaultWetProb   = 0.3
	defaultWetMeanMM = 6.0

	// defaultET0Base: reference evapotranspiration baseline (mm/day),
	// scaled with the season.
	defaultET0Base = 2.5

	// warmestDOY: day of year of the temperature peak (northern hemisphere).
	warmestDOY = 196
)

// Generator produces synthetic daily weather for tests and examples.
// Deterministic: same seed, same series.
type Generator struct {
	rng        *rand.Rand
	annualMean float64
	amplitude  float64
	diurnal    float64
	noise      float64
	wetProb    float64
	wetMeanMM  float64
	et0Base    float64
}

type Option func(*Generator)

// WithTemperature overrides the annual mean, seasonal amplitude and diurnal
// spread, all in °C.
func WithTemperature(annualMean, amplitude, diurnal float64) Option {
	return func(g *Generator) {
		g.annualMean = annualMean
		g.amplitude = amplitude
		g.diurnal = diurnal
	}
}

// WithRainfall overrides the wet-day probability and the mean wet-day depth.
func WithRainfall(wetProb, wetMeanMM float64) Option {
	return func(g *Generator) {
		g.wetProb = math.Max(0, math.Min(1, wetProb))
		g.wetMeanMM = math.Max(0, wetMeanMM)
	}
}

// WithNoise overrides the day-to-day temperature jitter.
func WithNoise(noise float64) Option {
	return func(g *Generator) { g.noise = math.Max(0, noise) }
}

func New(seed int64, opts ...Option) *Generator {
	g := &Generator{
		rng:        rand.New(rand.NewSource(seed)),
		annualMean: defaultAnnualMean,
		amplitude:  defaultAmplitude,
		diurnal:    defaultDiurnal,
		noise:      defaultNoise,
		wetProb:    defaultWetProb,
		wetMeanMM:  defaultWetMeanMM,
		et0Base:    defaultET0Base,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Series generates the given number of consecutive days starting at start
// (normalised to midnight UTC).
func (g *Generator) Series(start time.Time, days int) model.WeatherSeries {
	y, m, d := start.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	out := make(model.WeatherSeries, 0, days)
	for i := 0; i < days; i++ {
		doy := float64(day.YearDay())
		season := math.Sin(2 * math.Pi * (doy - float64(warmestDOY) + 91.25) / 365)

		tmean := g.annualMean + g.amplitude*season + g.rng.NormFloat64()*g.noise
		tmin := tmean - g.diurnal/2
		tmax := tmean + g.diurnal/2

		rain := 0.0
		if g.rng.Float64() < g.wetProb {
			rain = g.rng.ExpFloat64() * g.wetMeanMM
		}

		et0 := math.Max(0, g.et0Base*(1+0.6*season))

		out = append(out, model.DailyWeather{
			Date:          day,
			TempMin:       tmin,
			TempMax:       tmax,
			Precipitation: rain,
			ReferenceET:   et0,
		})
		day = day.AddDate(0, 0, 1)
	}
	return out
}

// Constant builds a dry series with fixed temperatures, for exact-value tests.
func Constant(start time.Time, days int, tmin, tmax float64) model.WeatherSeries {
	y, m, d := start.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	out := make(model.WeatherSeries, 0, days)
	for i := 0; i < days; i++ {
		out = append(out, model.DailyWeather{Date: day, TempMin: tmin, TempMax: tmax})
		day = day.AddDate(0, 0, 1)
	}
	return out
}
