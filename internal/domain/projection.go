package domain

import (
	"github.com/shopspring/decimal"
)

// Path names shared by the coast projection and the freedom scenarios
const (
	PathAggressive   = "aggressive"
	PathModerate     = "moderate"
	PathConservative = "conservative"
)

// Timeline is the answer to "how many years until current assets reach the
// Coast FIRE number". Achievable is false when the search cap was hit.
type Timeline struct {
	Years      int  `json:"years"`
	Age        int  `json:"age"`
	Achievable bool `json:"achievable"`
}

// Milestone marks the first year a growth path crosses a share of the FIRE number
type Milestone struct {
	Label   string          `json:"label"`
	Percent int             `json:"percent"`
	Year    int             `json:"year"`
	Age     int             `json:"age"`
	Amount  decimal.Decimal `json:"amount"`
	Reached bool            `json:"reached"`
}

// GrowthPath is one of the aggressive / moderate / conservative projections
type GrowthPath struct {
	Name               string          `json:"name"`
	NominalRatePercent decimal.Decimal `json:"nominalRatePercent"`
	RealReturnRate     decimal.Decimal `json:"realReturnRate"`
	ProjectedAssets    decimal.Decimal `json:"projectedAssets"`
	Milestones         []Milestone     `json:"milestones"`
}

// GrowthPaths groups the three comparison paths
type GrowthPaths struct {
	Aggressive   GrowthPath `json:"aggressive"`
	Moderate     GrowthPath `json:"moderate"`
	Conservative GrowthPath `json:"conservative"`
}

// All returns the paths in aggressive, moderate, conservative order
func (g GrowthPaths) All() []GrowthPath {
	return []GrowthPath{g.Aggressive, g.Moderate, g.Conservative}
}

// ProjectionResult is the output of a Coast-FIRE projection. It is derived
// purely from a FinancialProfile and has no identity of its own.
type ProjectionResult struct {
	Profile           FinancialProfile `json:"profile"`
	YearsToRetirement int              `json:"yearsToRetirement"`
	RealReturnRate    decimal.Decimal  `json:"realReturnRate"`

	FireNumber             decimal.Decimal `json:"fireNumber"`
	CoastFireNumber        decimal.Decimal `json:"coastFireNumber"`
	CurrentAssetsProjected decimal.Decimal `json:"currentAssetsProjected"`
	Gap                    decimal.Decimal `json:"gap"`
	AlreadyCoasting        bool            `json:"alreadyCoasting"`
	Timeline               Timeline        `json:"timeline"`

	RequiredWithdrawal  decimal.Decimal `json:"requiredWithdrawal"`
	AvailableWithdrawal decimal.Decimal `json:"availableWithdrawal"`
	Surplus             decimal.Decimal `json:"surplus"` // negative is a shortfall

	Paths   GrowthPaths `json:"paths"`
	Summary string      `json:"summary"`
}

// PlanResult bundles whatever a PlanInput asked for
type PlanResult struct {
	Name       string            `json:"name"`
	Projection *ProjectionResult `json:"projection,omitempty"`
	Freedom    *FreedomResult    `json:"freedom,omitempty"`
}
