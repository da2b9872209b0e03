// Package seating tracks which of the four seats at a table are occupied,
// independent of what a "connection" actually is — the session package
// supplies that.
package seating

import (
	"fmt"

	"kierki/internal/wire"
)

// Table records seat occupancy by an opaque occupant id (the session
// package's connection id). It holds no network or protocol state of its
// own.
type Table struct {
	occupants map[wire.Seat]string
}

// New returns a table with all four seats vacant.
func New() *Table {
	return &Table{occupants: make(map[wire.Seat]string, 4)}
}

// Occupied reports whether seat is currently taken.
func (t *Table) Occupied(seat wire.Seat) bool {
	_, ok := t.occupants[seat]
	return ok
}

// Assign seats occupant at seat. It fails if the seat is already taken;
// callers must check Occupied (or handle the error) to produce the BUSY
// reply themselves, since the occupied-seat list and connection close are
// session-layer concerns.
func (t *Table) Assign(seat wire.Seat, occupant string) error {
	if t.Occupied(seat) {
		return fmt.Errorf("seating: seat %s already occupied", seat)
	}
	t.occupants[seat] = occupant
	return nil
}

// Vacate frees seat, regardless of who held it.
func (t *Table) Vacate(seat wire.Seat) {
	delete(t.occupants, seat)
}

// Full reports whether all four seats are occupied.
func (t *Table) Full() bool {
	return len(t.occupants) == 4
}

// Occupant returns the occupant id holding seat, if any.
func (t *Table) Occupant(seat wire.Seat) (string, bool) {
	id, ok := t.occupants[seat]
	return id, ok
}

// Occupied seats in N,E,S,W order, for BUSY replies.
func (t *Table) OccupiedSeats() []wire.Seat {
	seats := make([]wire.Seat, 0, 4)
	for _, s := range wire.Seats {
		if t.Occupied(s) {
			seats = append(seats, s)
		}
	}
	return seats
}

// VacantSeats in N,E,S,W order.
func (t *Table) VacantSeats() []wire.Seat {
	seats := make([]wire.Seat, 0, 4)
	for _, s := range wire.Seats {
		if !t.Occupied(s) {
			seats = append(seats, s)
		}
	}
	return seats
}
