package domain

import "time"

type SignalKind string

const (
	SignalKind_Buy  SignalKind = "BUY"
	SignalKind_Sell SignalKind = "SELL"
)

// Position is the exposure state of one evaluation pass. The crossover
// rule only ever takes long exposure, so there is no short state.
type Position string

const (
	Position_Flat Position = "FLAT"
	Position_Long Position = "LONG"
)

// Signal marks a crossover event on a specific bar. Price and Date are
// taken verbatim from that bar; ShortMA/LongMA are the averages at the
// same index.
type Signal struct {
	Date    time.Time  `json:"datetime"`
	Kind    SignalKind `json:"signal"`
	Price   float64    `json:"price"`
	ShortMA float64    `json:"shortMa"`
	LongMA  float64    `json:"longMa"`
}
