package entities

// FieldManagement carries the surface-management practices that modulate the
// rainfall partition.
type FieldManagement struct {
	SurfaceRunoffInhibited bool    `json:"sr_inhibited"`
	Bunds                  bool    `json:"bunds"`
	BundHeight             float64 `json:"z_bund" validate:"gte=0"` // m
	CNAdjustPct            float64 `json:"cn_adj_pct"`              // curve number shift, %
}
