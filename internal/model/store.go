package model

// Store detection factor names. Keys of StoreMatch.Factors.
const (
	FactorName      = "name"
	FactorStructure = "structure"
	FactorFooter    = "footer"
)

// StoreMatch is the result of store detection: the best-scoring profile with a
// per-factor breakdown for explainability. Transient, produced per parse
// attempt.
type StoreMatch struct {
	Factors     map[string]float64
	ProfileID   string
	DisplayName string
	Confidence  float64
}
