package client

import "kierki/internal/wire"

// RunAutomatic drives the connection until the server closes it: record
// each DEAL, answer each TRICK prompt with the strategy's pick, and retry
// (excluding the rejected card) on WRONG until every held card has been
// rejected for that trick, after which it stops retrying. A play is only removed from the
// tracked hand once something confirms it was accepted — a later TRICK
// prompt for the next card, or the TAKEN that closes the trick — since a
// WRONG reply means the server never took it.
func (c *Client) RunAutomatic() error {
	var pendingNum int
	var pendingCard wire.Card
	var lastPrompt []wire.Card
	hasPending := false

	for {
		msg, err := c.recv()
		if err != nil {
			return err
		}
		switch m := msg.(type) {
		case wire.DealMsg:
			c.hand = append([]wire.Card(nil), m.Hand...)
			c.excluded = make(map[wire.Card]bool)
			c.taken = nil
			hasPending = false
		case wire.BusyMsg:
			return errBusy{seats: m.Seats}
		case wire.TrickMsg:
			if hasPending {
				c.removeFromHand(pendingCard)
				hasPending = false
			}
			c.excluded = make(map[wire.Card]bool)
			lastPrompt = m.Cards
			card := choose(c.hand, lastPrompt, c.excluded)
			pendingCard, pendingNum, hasPending = card, m.Num, true
			c.send(wire.TrickMsg{Num: m.Num, Cards: []wire.Card{card}})
		case wire.WrongMsg:
			if !hasPending || m.Num != pendingNum {
				continue
			}
			c.excluded[pendingCard] = true
			if len(c.excluded) >= len(c.hand) {
				hasPending = false
				continue
			}
			card := choose(c.hand, lastPrompt, c.excluded)
			pendingCard = card
			c.send(wire.TrickMsg{Num: pendingNum, Cards: []wire.Card{card}})
		case wire.TakenMsg:
			if hasPending {
				c.removeFromHand(pendingCard)
				hasPending = false
			}
			c.taken = append(c.taken, m)
			c.excluded = make(map[wire.Card]bool)
		case wire.PointsMsg:
			if m.Cumulative {
				c.taken = nil
			}
		}
	}
}

type errBusy struct{ seats []wire.Seat }

func (e errBusy) Error() string { return "client: requested seat already occupied" }
