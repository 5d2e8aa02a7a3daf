package models

// Quadrant is the priority-matrix cell an opportunity lands in.
type Quadrant string

const (
	QuadrantQuickWin     Quadrant = "quick-win"
	QuadrantStrategic    Quadrant = "strategic"
	QuadrantFillIn       Quadrant = "fill-in"
	QuadrantDeprioritize Quadrant = "deprioritize"
)

// ClassifyQuadrant maps a (value, complexity) score pair, each in 1..5, to a
// priority-matrix quadrant. High value with manageable complexity is a quick
// win; high value with high complexity is a strategic bet; low value splits
// the same way into fill-in work and deprioritized ideas.
//
// The result is computed once when an opportunity is scored and stored on the
// record; it is not recomputed when scores are edited later.
func ClassifyQuadrant(valueScore, complexityScore int) Quadrant {
	switch {
	case valueScore >= 3 && complexityScore <= 3:
		return QuadrantQuickWin
	case valueScore >= 3:
		return QuadrantStrategic
	case complexityScore <= 3:
		return QuadrantFillIn
	default:
		return QuadrantDeprioritize
	}
}
