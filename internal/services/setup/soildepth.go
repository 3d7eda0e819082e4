package setup

import (
	"fmt"

	"github.com/chris-s-bowden/aquacrop/internal/model"
)

const (
	// rootDepthMargin is added to the crop's maximum rooting depth when the
	// soil column is grown at setup (m).
	rootDepthMargin = 0.1

	// depthGrowthStep: thickness added per pass to one compartment (m).
	depthGrowthStep = 0.1

	// depthGrowthLimit: compartments at or past this thickness no longer grow (m).
	depthGrowthLimit = 0.25

	// maxDepthGrowthIterations caps the growth loop.
	maxDepthGrowthIterations = 1000
)

// EnsureMinimumDepth thickens the deepest eligible compartment, one pass at a
// time, until the column bottom reaches minDepth. Compartment depths are
// mutated in place.
func EnsureMinimumDepth(p *model.SoilProfile, minDepth float64) error {
	p.RecalcDepths()
	for iter := 0; p.TotalDepth() < minDepth; iter++ {
		if iter >= maxDepthGrowthIterations {
			return fmt.Errorf("soil depth: still %.2fm short of %.2fm after %d passes: %w",
				minDepth-p.TotalDepth(), minDepth, maxDepthGrowthIterations, model.ErrConfiguration)
		}
		grown := false
		for i := len(p.Compartments) - 1; i >= 0; i-- {
			if p.Compartments[i].Thickness < depthGrowthLimit {
				p.Compartments[i].Thickness += depthGrowthStep
				p.RecalcDepths()
				grown = true
				break
			}
		}
		if !grown {
			return fmt.Errorf("soil depth: no compartment thinner than %.2fm left to grow, column stuck at %.2fm of %.2fm: %w",
				depthGrowthLimit, p.TotalDepth(), minDepth, model.ErrConfiguration)
		}
	}
	return nil
}
