package hydrology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chris-s-bowden/aquacrop/internal/model"
)

// wiltingColumn: two 0.3m compartments with a 0.10/0.30 wp/fc band, so the
// 80% net irrigation target sits at theta 0.26.
func wiltingColumn() *model.SoilProfile {
	p := &model.SoilProfile{
		Compartments: []model.SoilCompartment{
			{Thickness: 0.3, ThetaFC: 0.30, ThetaWP: 0.10, ThetaS: 0.45},
			{Thickness: 0.3, ThetaFC: 0.30, ThetaWP: 0.10, ThetaS: 0.45},
		},
		CurveNumber:      75,
		CNReferenceDepth: 0.3,
	}
	p.RecalcDepths()
	return p
}

func netIrrigation() model.IrrigationManagement {
	return model.NewIrrigationManagement(model.IrrigationNet)
}

func TestPreIrrigationRequirement_FirstDayTopUp(t *testing.T) {
	th := []float64{0.15, 0.20}

	got, err := PreIrrigationRequirement(wiltingColumn(), th, netIrrigation(), 0.5, 0.3, 1, true)
	require.NoError(t, err)

	// only the compartment strictly above the 0.5m root depth is topped up:
	// (0.26 - 0.15) * 1000 * 0.3
	assert.InDelta(t, 33.0, got, 1e-9)
	assert.InDelta(t, 0.26, th[0], 1e-12)
	assert.Equal(t, 0.20, th[1], "compartment reaching the root depth is untouched")
}

func TestPreIrrigationRequirement_AlreadyWetEnough(t *testing.T) {
	th := []float64{0.28, 0.27}

	got, err := PreIrrigationRequirement(wiltingColumn(), th, netIrrigation(), 0.5, 0.3, 1, true)
	require.NoError(t, err)

	assert.Zero(t, got)
	assert.Equal(t, []float64{0.28, 0.27}, th)
}

func TestPreIrrigationRequirement_Gates(t *testing.T) {
	base := []float64{0.15, 0.20}

	cases := []struct {
		name    string
		irr     model.IrrigationManagement
		dap     int
		growing bool
	}{
		{"off season", netIrrigation(), 1, false},
		{"not the first day", netIrrigation(), 2, true},
		{"rainfed method", model.NewIrrigationManagement(model.IrrigationRainfed), 1, true},
		{"scheduled method", model.NewIrrigationManagement(model.IrrigationSchedule), 1, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			th := append([]float64(nil), base...)

			got, err := PreIrrigationRequirement(wiltingColumn(), th, tc.irr, 0.5, 0.3, tc.dap, tc.growing)
			require.NoError(t, err)
			assert.Zero(t, got)
			assert.Equal(t, base, th)
		})
	}
}

func TestPreIrrigationRequirement_MinimumRootDepthApplies(t *testing.T) {
	th := []float64{0.15, 0.20}

	// zmin 0.3 dominates the 0.1 root depth; the first compartment bottom
	// already reaches it, so nothing lies strictly above
	got, err := PreIrrigationRequirement(wiltingColumn(), th, netIrrigation(), 0.1, 0.3, 1, true)
	require.NoError(t, err)
	assert.Zero(t, got)
	assert.Equal(t, []float64{0.15, 0.20}, th)
}

func TestPreIrrigationRequirement_ColumnTooShallow(t *testing.T) {
	th := []float64{0.15, 0.20}

	_, err := PreIrrigationRequirement(wiltingColumn(), th, netIrrigation(), 0.7, 0.3, 1, true)
	assert.ErrorIs(t, err, model.ErrConfiguration)
}

func TestPreIrrigationRequirement_WaterContentTooShort(t *testing.T) {
	col := &model.SoilProfile{
		Compartments: []model.SoilCompartment{
			{Thickness: 0.2, ThetaFC: 0.30, ThetaWP: 0.10},
			{Thickness: 0.2, ThetaFC: 0.30, ThetaWP: 0.10},
			{Thickness: 0.2, ThetaFC: 0.30, ThetaWP: 0.10},
		},
	}
	col.RecalcDepths()

	_, err := PreIrrigationRequirement(col, []float64{0.15}, netIrrigation(), 0.5, 0.3, 1, true)
	assert.ErrorIs(t, err, model.ErrConfiguration)
}

func TestRoundTo2_HalfToEven(t *testing.T) {
	// 0.125 and 0.375 are exact binary fractions, so the .5 tie is real
	assert.Equal(t, 0.12, roundTo2(0.125))
	assert.Equal(t, 0.38, roundTo2(0.375))
	assert.Equal(t, 0.34, roundTo2(0.344))
	assert.Equal(t, 0.35, roundTo2(0.346))
}
