package client

import "kierki/internal/wire"

// choose picks the card the automatic player plays for the current trick.
// Rule: play the lowest-ranked card that still beats the current in-trick
// high of the lead suit, if such a card is held; else play the lowest card
// of the lead suit if held; else play the highest-ranked card in hand.
// excluded cards (previously rejected by a WRONG reply) are skipped while
// any other card remains; once every card is excluded, the whole hand is
// considered again.
func choose(hand []wire.Card, playsSoFar []wire.Card, excluded map[wire.Card]bool) wire.Card {
	candidates := make([]wire.Card, 0, len(hand))
	for _, c := range hand {
		if !excluded[c] {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		// Every card has been rejected; fall back to the full hand rather
		// than refuse to play at all.
		candidates = hand
	}

	if len(playsSoFar) > 0 {
		lead := playsSoFar[0].Suit
		high := playsSoFar[0]
		for _, c := range playsSoFar[1:] {
			if c.Suit == lead && c.Rank > high.Rank {
				high = c
			}
		}

		var bestBeater *wire.Card
		for i, c := range candidates {
			if c.Suit != lead || c.Rank <= high.Rank {
				continue
			}
			if bestBeater == nil || c.Rank < bestBeater.Rank {
				bestBeater = &candidates[i]
			}
		}
		if bestBeater != nil {
			return *bestBeater
		}

		var lowestLead *wire.Card
		for i, c := range candidates {
			if c.Suit != lead {
				continue
			}
			if lowestLead == nil || c.Rank < lowestLead.Rank {
				lowestLead = &candidates[i]
			}
		}
		if lowestLead != nil {
			return *lowestLead
		}
	}

	highest := candidates[0]
	for _, c := range candidates[1:] {
		if c.Rank > highest.Rank {
			highest = c
		}
	}
	return highest
}
