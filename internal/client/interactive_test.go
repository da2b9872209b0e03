package client

import (
	"bufio"
	"bytes"
	"io"
	"net"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"kierki/internal/report"
	"kierki/internal/wire"
)

func newPipeClientWithOut(conn net.Conn, out io.Writer) *Client {
	return &Client{
		conn:     conn,
		r:        bufio.NewReader(conn),
		seat:     wire.SeatSouth,
		log:      zerolog.Nop(),
		rep:      report.New(io.Discard),
		out:      out,
		excluded: make(map[wire.Card]bool),
	}
}

func TestRunInteractivePlaysTypedCard(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	var out bytes.Buffer
	cl := newPipeClientWithOut(clientConn, &out)
	srv := &serverSide{t: t, conn: serverConn, r: bufio.NewReader(serverConn)}

	ace := wire.Card{Rank: wire.RankAce, Suit: wire.SuitSpades}
	typed := strReader("!AS\n")

	done := make(chan error, 1)
	go func() { done <- cl.RunInteractive(typed) }()

	srv.send(wire.DealMsg{Type: '1', Leader: wire.SeatSouth, Hand: []wire.Card{ace}})
	srv.send(wire.TrickMsg{Num: 1, Cards: nil})

	reply := srv.recv().(wire.TrickMsg)
	require.Equal(t, 1, reply.Num)
	require.Equal(t, []wire.Card{ace}, reply.Cards)

	require.NoError(t, serverConn.Close())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("RunInteractive did not return after connection close")
	}

	require.Contains(t, out.String(), "new deal")
}

func TestRunInteractiveCardsCommandListsHand(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	var out bytes.Buffer
	cl := newPipeClientWithOut(clientConn, &out)
	cl.hand = []wire.Card{{Rank: wire.RankTwo, Suit: wire.SuitClubs}}

	typed := strReader("cards\n")
	done := make(chan error, 1)
	go func() { done <- cl.RunInteractive(typed) }()

	require.NoError(t, serverConn.Close())
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("RunInteractive did not return after connection close")
	}

	require.Contains(t, out.String(), "2C")
}

func strReader(s string) io.Reader { return bytes.NewBufferString(s) }
