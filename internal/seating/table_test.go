package seating

import (
	"testing"

	"github.com/stretchr/testify/require"

	"kierki/internal/wire"
)

func TestAssignAndOccupied(t *testing.T) {
	tbl := New()
	require.False(t, tbl.Occupied(wire.SeatNorth))
	require.NoError(t, tbl.Assign(wire.SeatNorth, "conn-1"))
	require.True(t, tbl.Occupied(wire.SeatNorth))
	id, ok := tbl.Occupant(wire.SeatNorth)
	require.True(t, ok)
	require.Equal(t, "conn-1", id)
}

func TestAssignRejectsOccupiedSeat(t *testing.T) {
	tbl := New()
	require.NoError(t, tbl.Assign(wire.SeatEast, "conn-1"))
	err := tbl.Assign(wire.SeatEast, "conn-2")
	require.Error(t, err)
}

func TestVacateFreesSeat(t *testing.T) {
	tbl := New()
	require.NoError(t, tbl.Assign(wire.SeatSouth, "conn-1"))
	tbl.Vacate(wire.SeatSouth)
	require.False(t, tbl.Occupied(wire.SeatSouth))
	require.NoError(t, tbl.Assign(wire.SeatSouth, "conn-2"))
}

func TestFullAndSeatOrdering(t *testing.T) {
	tbl := New()
	require.False(t, tbl.Full())
	require.NoError(t, tbl.Assign(wire.SeatWest, "w"))
	require.NoError(t, tbl.Assign(wire.SeatNorth, "n"))
	require.Equal(t, []wire.Seat{wire.SeatNorth, wire.SeatWest}, tbl.OccupiedSeats())
	require.Equal(t, []wire.Seat{wire.SeatEast, wire.SeatSouth}, tbl.VacantSeats())

	require.NoError(t, tbl.Assign(wire.SeatEast, "e"))
	require.NoError(t, tbl.Assign(wire.SeatSouth, "s"))
	require.True(t, tbl.Full())
}
