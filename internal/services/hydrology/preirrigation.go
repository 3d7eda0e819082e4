package hydrology

import (
	"fmt"
	"math"

	"github.com/chris-s-bowden/aquacrop/internal/model"
)

// PreIrrigationRequirement computes the water needed to bring the root zone
// up to the net-irrigation moisture target on the first day after planting,
// in mm, raising th in place to the target. It returns 0 outside the growing
// season, for other irrigation methods, and on every later day.
func PreIrrigationRequirement(profile *model.SoilProfile, th []float64, irr model.IrrigationManagement, zRoot, zMin float64, daysAfterPlanting int, growingSeason bool) (float64, error) {
	if !growingSeason || irr.Method != model.IrrigationNet || daysAfterPlanting != 1 {
		return 0, nil
	}

	rootDepth := roundTo2(math.Max(zRoot, zMin))
	compRz := profile.FirstReaching(rootDepth)
	if compRz < 0 {
		return 0, fmt.Errorf("pre-irrigation: soil column %.2fm ends above root depth %.2fm: %w",
			profile.TotalDepth(), rootDepth, model.ErrConfiguration)
	}
	if compRz > len(th) {
		return 0, fmt.Errorf("pre-irrigation: water content covers %d of %d compartments: %w",
			len(th), compRz, model.ErrConfiguration)
	}

	requirement := 0.0
	for i := 0; i < compRz; i++ {
		c := profile.Compartments[i]
		thCrit := c.ThetaWP + (irr.NetIrrSMT/100)*(c.ThetaFC-c.ThetaWP)
		if th[i] < thCrit {
			requirement += (thCrit - th[i]) * 1000 * c.Thickness
			th[i] = thCrit
		}
	}
	return requirement, nil
}

func roundTo2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
