package client

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"kierki/internal/wire"
)

// RunInteractive multiplexes the server socket and in (normally stdin) until
// the server closes the connection or in hits EOF: every server message is
// rendered as a human-readable line on c.out, and the three commands —
// "cards", "tricks", "!<card>" — are read from in. Mirrors the session
// server's own discipline of a single loop with two readiness sources
// instead of driving reads and writes from separate goroutines.
func (c *Client) RunInteractive(in io.Reader) error {
	lines := make(chan wire.Message)
	lineErrs := make(chan error, 1)
	go func() {
		for {
			msg, err := c.recv()
			if err != nil {
				lineErrs <- err
				return
			}
			lines <- msg
		}
	}()

	cmds := make(chan string)
	cmdErrs := make(chan error, 1)
	go func() {
		s := bufio.NewScanner(in)
		for s.Scan() {
			cmds <- s.Text()
		}
		cmdErrs <- s.Err()
	}()

	var pendingCard wire.Card
	var pendingNum int
	hasPending := false

	for {
		select {
		case err := <-lineErrs:
			return err

		case msg := <-lines:
			switch m := msg.(type) {
			case wire.DealMsg:
				c.hand = append([]wire.Card(nil), m.Hand...)
				c.taken = nil
				hasPending = false
				fmt.Fprintf(c.out, "-- new deal: type %c, %s leads --\n", m.Type, m.Leader)
			case wire.BusyMsg:
				fmt.Fprintf(c.out, "seat busy, occupied: %s\n", seatList(m.Seats))
				return errBusy{seats: m.Seats}
			case wire.TrickMsg:
				pendingNum, hasPending = m.Num, false
				fmt.Fprintf(c.out, "trick %d so far: %s -- your play? (!<card>)\n", m.Num, cardList(m.Cards))
			case wire.WrongMsg:
				hasPending = false
				fmt.Fprintf(c.out, "WRONG: trick %d rejected, try again\n", m.Num)
			case wire.TakenMsg:
				if hasPending {
					c.removeFromHand(pendingCard)
					hasPending = false
				}
				c.taken = append(c.taken, m)
				fmt.Fprintf(c.out, "trick %d taken by %s: %s\n", m.Num, m.Winner, cardList(m.Cards[:]))
			case wire.PointsMsg:
				label := "SCORE"
				if m.Cumulative {
					label = "TOTAL"
					c.taken = nil
				}
				fmt.Fprintf(c.out, "%s: %s\n", label, pointsList(m.Points))
			}

		case err := <-cmdErrs:
			return err

		case cmd := <-cmds:
			switch text := strings.TrimSpace(cmd); {
			case text == "cards":
				fmt.Fprintf(c.out, "your cards: %s\n", cardList(c.RemainingSorted()))
			case text == "tricks":
				for _, t := range c.TakenSoFar() {
					fmt.Fprintf(c.out, "trick %d: %s (won by %s)\n", t.Num, cardList(t.Cards[:]), t.Winner)
				}
			case strings.HasPrefix(text, "!"):
				card, _, err := wire.DecodeCard(text[1:])
				if err != nil {
					fmt.Fprintf(c.out, "not a card: %q\n", text[1:])
					continue
				}
				pendingCard, hasPending = card, true
				c.send(wire.TrickMsg{Num: pendingNum, Cards: []wire.Card{card}})
			case text == "":
				// ignore blank lines
			default:
				fmt.Fprintf(c.out, "unknown command %q (try: cards, tricks, !<card>)\n", text)
			}
		}
	}
}

func seatList(seats []wire.Seat) string {
	parts := make([]string, len(seats))
	for i, s := range seats {
		parts[i] = s.String()
	}
	return strings.Join(parts, ",")
}

func cardList(cards []wire.Card) string {
	if len(cards) == 0 {
		return "(none)"
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func pointsList(points map[wire.Seat]int) string {
	parts := make([]string, 0, len(wire.Seats))
	for _, s := range wire.Seats {
		parts = append(parts, fmt.Sprintf("%s=%d", s, points[s]))
	}
	return strings.Join(parts, " ")
}
