// Package client implements the player endpoint: dial the server, claim a
// seat, and either play automatically or relay a human's commands, sharing
// one event loop between the server socket and (in interactive mode) the
// terminal — the same single-threaded multiplexing discipline the server
// uses, just with two readiness sources instead of nine.
package client

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"sort"

	"github.com/rs/zerolog"

	"kierki/internal/report"
	"kierki/internal/wire"
	"kierki/pkg/config"
)

// Client holds one seat's connection state for the life of a tournament.
type Client struct {
	conn net.Conn
	r    *bufio.Reader
	seat wire.Seat
	log  zerolog.Logger
	rep  *report.Writer
	out  io.Writer // where interactive summaries are printed

	hand     []wire.Card
	excluded map[wire.Card]bool
	taken    []wire.TakenMsg
}

// Dial connects to the server, claims cfg.Seat, and returns a Client ready
// for RunAutomatic or RunInteractive. cfg.Family "4" or "6" dials "tcp4" or
// "tcp6"; anything else dials "tcp" (dual-stack, AF_UNSPEC-like).
func Dial(cfg config.ClientConfig, log zerolog.Logger, rep *report.Writer, out io.Writer) (*Client, error) {
	network := "tcp"
	switch cfg.Family {
	case "4":
		network = "tcp4"
	case "6":
		network = "tcp6"
	}
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	conn, err := net.Dial(network, addr)
	if err != nil {
		return nil, fmt.Errorf("client: dial %s: %w", addr, err)
	}
	seat, err := wire.ParseSeat(cfg.Seat)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("client: %w", err)
	}
	c := &Client{
		conn:     conn,
		r:        bufio.NewReader(conn),
		seat:     seat,
		log:      log,
		rep:      rep,
		out:      out,
		excluded: make(map[wire.Card]bool),
	}
	c.send(wire.IAMMsg{Seat: seat})
	return c, nil
}

func (c *Client) send(m wire.Message) {
	line := m.Encode()
	if _, err := c.conn.Write([]byte(line)); err != nil {
		c.log.Debug().Err(err).Msg("write failed")
		return
	}
	c.rep.Line(localLabel(c.conn), remoteLabel(c.conn), trimCRLF(line))
}

func (c *Client) recv() (wire.Message, error) {
	line, err := wire.ReadFrame(c.r)
	if err != nil {
		return nil, err
	}
	c.rep.Line(remoteLabel(c.conn), localLabel(c.conn), line)
	return wire.Decode(line)
}

// Close releases the underlying connection.
func (c *Client) Close() error { return c.conn.Close() }

// RemainingSorted returns the client's unplayed hand, sorted by suit then
// rank, for the "cards" interactive command.
func (c *Client) RemainingSorted() []wire.Card {
	cp := make([]wire.Card, len(c.hand))
	copy(cp, c.hand)
	sort.Slice(cp, func(i, j int) bool {
		if cp[i].Suit != cp[j].Suit {
			return cp[i].Suit < cp[j].Suit
		}
		return cp[i].Rank < cp[j].Rank
	})
	return cp
}

// TakenSoFar returns every trick resolved since the last DEAL, for the
// "tricks" interactive command.
func (c *Client) TakenSoFar() []wire.TakenMsg {
	cp := make([]wire.TakenMsg, len(c.taken))
	copy(cp, c.taken)
	return cp
}

func (c *Client) removeFromHand(card wire.Card) {
	for i, h := range c.hand {
		if h == card {
			c.hand = append(c.hand[:i], c.hand[i+1:]...)
			return
		}
	}
}

func localLabel(conn net.Conn) string  { return conn.LocalAddr().String() }
func remoteLabel(conn net.Conn) string { return conn.RemoteAddr().String() }

func trimCRLF(s string) string {
	if len(s) >= 2 && s[len(s)-2] == '\r' && s[len(s)-1] == '\n' {
		return s[:len(s)-2]
	}
	return s
}
