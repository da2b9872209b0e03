// Package session implements the server's single-threaded event loop: one
// goroutine owns the listener, the tournament state, and every connection's
// write side, fed by small per-connection reader goroutines over channels
// rather than a poll loop over raw descriptors.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"kierki/internal/dealfile"
	"kierki/internal/referee"
	"kierki/internal/report"
	"kierki/internal/seating"
	"kierki/internal/wire"
	"kierki/pkg/config"
)

// pendingConn is a not-yet-seated connection waiting for its IAM line.
type pendingConn struct {
	id    string
	conn  net.Conn
	since time.Time
}

// seatConn is a seated connection.
type seatConn struct {
	id   string
	seat wire.Seat
	conn net.Conn
}

type acceptEvent struct {
	id   string
	conn net.Conn
}

type lineEvent struct {
	id   string
	line string
}

type closeEvent struct {
	id  string
	err error
}

// Server drives one tournament end to end: accepting connections, seating
// players, running the deal/trick state machine, and scoring every deal in
// the script.
type Server struct {
	cfg config.ServerConfig
	log zerolog.Logger
	rep *report.Writer

	ln net.Listener

	deals   []dealfile.DealSpec
	dealIdx int
	totals  map[wire.Seat]int
	hand    *referee.HandState
	table   *seating.Table

	pending map[string]*pendingConn
	seats   map[wire.Seat]*seatConn

	lastTrickSentAt time.Time

	events  chan any
	stopped bool

	ready chan struct{} // closed once Run starts accepting
	addr  string
}

// New builds a Server ready to Run. deals must be non-empty and pass
// dealfile's validation (Load already guarantees this).
func New(cfg config.ServerConfig, deals []dealfile.DealSpec, log zerolog.Logger, rep *report.Writer) *Server {
	return &Server{
		cfg:     cfg,
		log:     log,
		rep:     rep,
		deals:   deals,
		totals:  map[wire.Seat]int{wire.SeatNorth: 0, wire.SeatEast: 0, wire.SeatSouth: 0, wire.SeatWest: 0},
		table:   seating.New(),
		pending: make(map[string]*pendingConn),
		seats:   make(map[wire.Seat]*seatConn),
		events:  make(chan any, 64),
		ready:   make(chan struct{}),
	}
}

// Addr blocks until the server is listening, then returns its address. It
// is meant for tests that start Run in a goroutine and need to dial in.
func (s *Server) Addr() string {
	<-s.ready
	return s.addr
}

// Run listens on cfg.Port and drives the tournament to completion, or until
// ctx is canceled. It returns nil when every deal in the script has been
// played to its TOTAL.
func (s *Server) Run(ctx context.Context) error {
	ln, err := listen(ctx, fmt.Sprintf(":%d", s.cfg.Port))
	if err != nil {
		return fmt.Errorf("session: listen: %w", err)
	}
	s.ln = ln
	s.addr = ln.Addr().String()
	close(s.ready)
	s.log.Info().Str("addr", s.addr).Msg("listening")

	s.hand = referee.NewHand(s.deals[0])

	go s.acceptLoop(ctx)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.closeAll()
			return ctx.Err()
		case ev := <-s.events:
			s.dispatch(ev)
			if s.stopped {
				return nil
			}
		case <-ticker.C:
			s.sweepTimeouts()
		}
	}
}

func (s *Server) acceptLoop(ctx context.Context) {
	for {
		c, err := s.ln.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return
			default:
			}
			s.log.Error().Err(err).Msg("accept")
			return
		}
		id := uuid.NewString()
		select {
		case s.events <- acceptEvent{id: id, conn: c}:
		case <-ctx.Done():
			_ = c.Close()
			return
		}
	}
}

func (s *Server) readLoop(id string, conn net.Conn) {
	r := bufio.NewReader(conn)
	for {
		line, err := wire.ReadFrame(r)
		if err != nil {
			if err == io.EOF {
				s.events <- closeEvent{id: id, err: nil}
				return
			}
			s.events <- closeEvent{id: id, err: err}
			return
		}
		s.events <- lineEvent{id: id, line: line}
	}
}

func (s *Server) dispatch(ev any) {
	switch e := ev.(type) {
	case acceptEvent:
		s.onAccept(e)
	case lineEvent:
		s.onLine(e)
	case closeEvent:
		s.onClose(e)
	}
}

func (s *Server) closeAll() {
	for _, p := range s.pending {
		_ = p.conn.Close()
	}
	for _, sc := range s.seats {
		_ = sc.conn.Close()
	}
}
