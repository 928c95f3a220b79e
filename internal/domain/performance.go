package domain

// PerformanceSummary aggregates completed round-trip trades. A trade is
// one Buy paired with the next Sell; a Buy left open at the end of the
// signal stream contributes nothing.
type PerformanceSummary struct {
	TotalTrades   int     `json:"totalTrades"`
	WinningTrades int     `json:"winningTrades"`
	LosingTrades  int     `json:"losingTrades"`
	WinRate       float64 `json:"winRate"`
	TotalReturn   float64 `json:"totalReturn"`
}
