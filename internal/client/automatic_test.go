package client

import (
	"bufio"
	"io"
	"net"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"kierki/internal/report"
	"kierki/internal/wire"
)

func newPipeClient(conn net.Conn) *Client {
	return &Client{
		conn:     conn,
		r:        bufio.NewReader(conn),
		seat:     wire.SeatNorth,
		log:      zerolog.Nop(),
		rep:      report.New(io.Discard),
		out:      io.Discard,
		excluded: make(map[wire.Card]bool),
	}
}

type serverSide struct {
	t    *testing.T
	conn net.Conn
	r    *bufio.Reader
}

func (s *serverSide) send(m wire.Message) {
	_, err := s.conn.Write([]byte(m.Encode()))
	require.NoError(s.t, err)
}

func (s *serverSide) recv() wire.Message {
	line, err := wire.ReadFrame(s.r)
	require.NoError(s.t, err)
	msg, err := wire.Decode(line)
	require.NoError(s.t, err)
	return msg
}

func TestRunAutomaticRetriesRejectedCardWithoutLosingIt(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	cl := newPipeClient(clientConn)
	srv := &serverSide{t: t, conn: serverConn, r: bufio.NewReader(serverConn)}

	twoClubs := wire.Card{Rank: wire.RankTwo, Suit: wire.SuitClubs}
	threeClubs := wire.Card{Rank: wire.RankThree, Suit: wire.SuitClubs}

	done := make(chan error, 1)
	go func() { done <- cl.RunAutomatic() }()

	srv.send(wire.DealMsg{Type: '1', Leader: wire.SeatNorth, Hand: []wire.Card{twoClubs, threeClubs}})
	srv.send(wire.TrickMsg{Num: 1, Cards: nil})

	first := srv.recv().(wire.TrickMsg)
	require.Equal(t, 1, first.Num)
	require.Equal(t, []wire.Card{threeClubs}, first.Cards)

	srv.send(wire.WrongMsg{Num: 1})

	retry := srv.recv().(wire.TrickMsg)
	require.Equal(t, 1, retry.Num)
	require.Equal(t, []wire.Card{twoClubs}, retry.Cards)

	srv.send(wire.TakenMsg{Num: 1, Cards: [4]wire.Card{twoClubs, twoClubs, twoClubs, twoClubs}, Winner: wire.SeatNorth})

	require.NoError(t, serverConn.Close())

	select {
	case err := <-done:
		require.Error(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("RunAutomatic did not return after connection close")
	}

	require.Equal(t, []wire.Card{threeClubs}, cl.hand, "the rejected card must stay in hand, only the accepted one is removed")
}

func TestRunAutomaticReturnsErrBusy(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	cl := newPipeClient(clientConn)
	srv := &serverSide{t: t, conn: serverConn, r: bufio.NewReader(serverConn)}

	done := make(chan error, 1)
	go func() { done <- cl.RunAutomatic() }()

	srv.send(wire.BusyMsg{Seats: []wire.Seat{wire.SeatNorth, wire.SeatEast}})

	select {
	case err := <-done:
		var busy errBusy
		require.ErrorAs(t, err, &busy)
		require.Equal(t, []wire.Seat{wire.SeatNorth, wire.SeatEast}, busy.seats)
	case <-time.After(2 * time.Second):
		t.Fatal("RunAutomatic did not return on BUSY")
	}
}
