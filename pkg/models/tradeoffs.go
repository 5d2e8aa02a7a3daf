package models

// Fixed tradeoff topics seeded into every fresh workshop. Custom topics are
// appended by participants and carry their own labels.
const (
	TopicSpeedVsAccuracy          = "speed-vs-accuracy"
	TopicAutomationVsOversight    = "automation-vs-oversight"
	TopicInnovationVsRisk         = "innovation-vs-risk"
	TopicCentralizedVsDistributed = "centralized-vs-distributed"
	TopicBuildVsBuy               = "build-vs-buy"
)

// SeedTradeoffs returns the five fixed-topic sliders in their initial
// position (centered, no rationale, not ignored). Each call generates fresh
// ids so a workshop reset produces a brand-new set.
func SeedTradeoffs() []Tradeoff {
	topics := []string{
		TopicSpeedVsAccuracy,
		TopicAutomationVsOversight,
		TopicInnovationVsRisk,
		TopicCentralizedVsDistributed,
		TopicBuildVsBuy,
	}
	tradeoffs := make([]Tradeoff, 0, len(topics))
	for _, topic := range topics {
		tradeoffs = append(tradeoffs, Tradeoff{
			ID:          NewID(),
			Topic:       topic,
			SliderValue: 50,
		})
	}
	return tradeoffs
}
