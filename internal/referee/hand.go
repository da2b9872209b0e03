// Package referee enforces the rules of a single deal: whose turn it is,
// whether a played card is legal, how a trick resolves, and the running
// per-seat point totals.
package referee

import (
	"errors"

	"kierki/internal/dealfile"
	"kierki/internal/scoring"
	"kierki/internal/wire"
)

var (
	ErrNotNextToPlay  = errors.New("referee: not this seat's turn")
	ErrWrongTrickNum  = errors.New("referee: trick number mismatch")
	ErrCardNotHeld    = errors.New("referee: card not in seat's remaining hand")
	ErrMustFollowSuit = errors.New("referee: must follow lead suit")
	ErrDealComplete   = errors.New("referee: deal already complete")
)

// ResolvedTrick records one finished trick for replay to reconnecting seats
// and for the eventual SCORE broadcast.
type ResolvedTrick struct {
	Num    int // 1-13
	Cards  [4]wire.Card
	Winner wire.Seat
}

// HandState is the mutable state of one deal in progress.
type HandState struct {
	dealType   byte
	remaining  map[wire.Seat][]wire.Card
	leadSeat   wire.Seat
	nextToPlay wire.Seat
	trickIdx   int // 0-indexed, current trick in progress
	plays      []wire.Card
	playOrder  []wire.Seat // seats in the order they played this trick
	taken      []ResolvedTrick
	points     map[wire.Seat]int
	done       bool
}

// NewHand starts a fresh HandState from a deal script entry.
func NewHand(spec dealfile.DealSpec) *HandState {
	remaining := make(map[wire.Seat][]wire.Card, 4)
	for seat, hand := range spec.Hand {
		cp := make([]wire.Card, len(hand))
		copy(cp, hand)
		remaining[seat] = cp
	}
	return &HandState{
		dealType:   spec.Type,
		remaining:  remaining,
		leadSeat:   spec.FirstLeader,
		nextToPlay: spec.FirstLeader,
		points:     map[wire.Seat]int{wire.SeatNorth: 0, wire.SeatEast: 0, wire.SeatSouth: 0, wire.SeatWest: 0},
	}
}

// NextToPlay is the seat the referee is currently waiting on.
func (h *HandState) NextToPlay() wire.Seat { return h.nextToPlay }

// TrickNum is the 1-indexed trick currently in progress (or just completed
// when Done is true).
func (h *HandState) TrickNum() int { return h.trickIdx + 1 }

// PlaysSoFar is the cards played in the in-flight trick, in play order —
// the body of the prompt TRICK message.
func (h *HandState) PlaysSoFar() []wire.Card {
	cp := make([]wire.Card, len(h.plays))
	copy(cp, h.plays)
	return cp
}

// Taken lists every trick resolved so far, in order.
func (h *HandState) Taken() []ResolvedTrick { return h.taken }

// Points is this deal's running per-seat score.
func (h *HandState) Points() map[wire.Seat]int {
	cp := make(map[wire.Seat]int, 4)
	for s, p := range h.points {
		cp[s] = p
	}
	return cp
}

// Done reports whether all 13 tricks have resolved.
func (h *HandState) Done() bool { return h.done }

// Remaining returns seat's unplayed cards, for hand displays.
func (h *HandState) Remaining(seat wire.Seat) []wire.Card {
	cp := make([]wire.Card, len(h.remaining[seat]))
	copy(cp, h.remaining[seat])
	return cp
}

// AcceptPlay validates and applies a TRICK reply from seat. On success it
// returns the resolved trick if this play completed one, else nil.
func (h *HandState) AcceptPlay(seat wire.Seat, trickNum int, card wire.Card) (*ResolvedTrick, error) {
	if h.done {
		return nil, ErrDealComplete
	}
	if seat != h.nextToPlay {
		return nil, ErrNotNextToPlay
	}
	if trickNum != h.trickIdx+1 {
		return nil, ErrWrongTrickNum
	}
	hand := h.remaining[seat]
	idx := -1
	for i, c := range hand {
		if c == card {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrCardNotHeld
	}
	if len(h.plays) > 0 {
		lead := h.plays[0].Suit
		if card.Suit != lead && seatHoldsSuit(hand, lead) {
			return nil, ErrMustFollowSuit
		}
	}

	h.remaining[seat] = append(hand[:idx], hand[idx+1:]...)
	h.plays = append(h.plays, card)
	h.playOrder = append(h.playOrder, seat)
	h.nextToPlay = h.nextToPlay.Next()

	if len(h.plays) < 4 {
		return nil, nil
	}
	return h.resolveTrick(), nil
}

func (h *HandState) resolveTrick() *ResolvedTrick {
	leadSuit := h.plays[0].Suit
	winnerIdx := 0
	for i := 1; i < 4; i++ {
		if h.plays[i].Suit == leadSuit && h.plays[i].Rank > h.plays[winnerIdx].Rank {
			winnerIdx = i
		}
	}
	winner := h.playOrder[winnerIdx]

	var cards [4]wire.Card
	copy(cards[:], h.plays)
	pts := scoring.Score(h.dealType, h.trickIdx, cards)
	h.points[winner] += pts

	resolved := ResolvedTrick{Num: h.trickIdx + 1, Cards: cards, Winner: winner}
	h.taken = append(h.taken, resolved)

	h.trickIdx++
	h.leadSeat = winner
	h.nextToPlay = winner
	h.plays = nil
	h.playOrder = nil
	if h.trickIdx == 13 {
		h.done = true
	}
	return &resolved
}

func seatHoldsSuit(hand []wire.Card, suit wire.Suit) bool {
	for _, c := range hand {
		if c.Suit == suit {
			return true
		}
	}
	return false
}
