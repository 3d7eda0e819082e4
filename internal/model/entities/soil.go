package entities

// SoilCompartment is one layer of the discretised soil column, listed surface
// to depth. Depths in m, water contents in m3/m3.
type SoilCompartment struct {
	Thickness       float64 `json:"dz" validate:"gt=0"`
	CumulativeDepth float64 `json:"dzsum"` // depth of the compartment bottom
	ThetaFC         float64 `json:"theta_fc" validate:"gt=0,lt=1"`
	ThetaWP         float64 `json:"theta_wp" validate:"gt=0,ltfield=ThetaFC"`
	ThetaS          float64 `json:"theta_s" validate:"gtfield=ThetaFC,lte=1"`
	ThetaR          float64 `json:"theta_r" validate:"gte=0,ltefield=ThetaWP"`
}

// SoilProfile is the ordered soil column plus the curve-number configuration
// consumed by the rainfall partitioner. The compartment count is fixed once
// built; compartment thicknesses may still be grown during setup.
type SoilProfile struct {
	Compartments        []SoilCompartment `json:"compartments" validate:"required,min=1,dive"`
	CurveNumber         float64           `json:"cn" validate:"gt=0,lte=100"`
	AdjustCNForMoisture bool              `json:"adj_cn"`
	CNReferenceDepth    float64           `json:"z_cn" validate:"gt=0"` // m, top soil depth for the moisture adjustment
}

// RecalcDepths rebuilds the cumulative depths after a thickness change.
func (p *SoilProfile) RecalcDepths() {
	sum := 0.0
	for i := range p.Compartments {
		sum += p.Compartments[i].Thickness
		p.Compartments[i].CumulativeDepth = sum
	}
}

// TotalDepth returns the depth of the column bottom in metres.
func (p *SoilProfile) TotalDepth() float64 {
	if len(p.Compartments) == 0 {
		return 0
	}
	return p.Compartments[len(p.Compartments)-1].CumulativeDepth
}

// FirstReaching returns the index of the shallowest compartment whose bottom
// reaches depth, or -1 when the whole column is shallower.
func (p *SoilProfile) FirstReaching(depth float64) int {
	for i := range p.Compartments {
		if p.Compartments[i].CumulativeDepth >= depth {
			return i
		}
	}
	return -1
}

// CompartmentsWithin counts the compartments lying strictly above depth.
// When no compartment bottom reaches depth, the whole column counts.
func (p *SoilProfile) CompartmentsWithin(depth float64) int {
	below := 0
	for i := range p.Compartments {
		if p.Compartments[i].CumulativeDepth >= depth {
			below++
		}
	}
	if below == 0 {
		return len(p.Compartments)
	}
	return len(p.Compartments) - below
}
