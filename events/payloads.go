package events

import "github.com/lixenwraith/echo-ring/game"

// RegionClickPayload carries the region resolved from a click or keypress
type RegionClickPayload struct {
	Region game.Region
}

// RoundResultPayload reports the outcome of a finished round
type RoundResultPayload struct {
	Round   int
	Won     bool
	Score   int
	Entered []game.Region
}
