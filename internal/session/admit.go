package session

import (
	"net"
	"time"

	"kierki/internal/wire"
)

func (s *Server) onAccept(e acceptEvent) {
	maxPending := s.cfg.PendingSlots
	if maxPending <= 0 {
		maxPending = 4
	}
	if len(s.pending) >= maxPending {
		_ = e.conn.Close()
		s.log.Warn().Str("remote", e.conn.RemoteAddr().String()).Msg("no free pending slot, closing")
		return
	}
	s.pending[e.id] = &pendingConn{id: e.id, conn: e.conn, since: time.Now()}
	go s.readLoop(e.id, e.conn)
}

func (s *Server) onClose(e closeEvent) {
	if p, ok := s.pending[e.id]; ok {
		_ = p.conn.Close()
		delete(s.pending, e.id)
		return
	}
	for seat, sc := range s.seats {
		if sc.id == e.id {
			_ = sc.conn.Close()
			delete(s.seats, seat)
			s.table.Vacate(seat)
			s.log.Info().Str("seat", seat.String()).Msg("seat vacated")
			return
		}
	}
}

// assign seats a pending connection at seat, or rejects it with BUSY if the
// seat is already taken.
func (s *Server) assign(p *pendingConn, seat wire.Seat) {
	if s.table.Occupied(seat) {
		s.writeTo(p.conn, wire.BusyMsg{Seats: s.table.OccupiedSeats()})
		_ = p.conn.Close()
		delete(s.pending, p.id)
		return
	}
	_ = s.table.Assign(seat, p.id)
	delete(s.pending, p.id)
	sc := &seatConn{id: p.id, seat: seat, conn: p.conn}
	s.seats[seat] = sc

	s.catchUp(sc)
	s.log.Info().Str("seat", seat.String()).Str("remote", p.conn.RemoteAddr().String()).Msg("seat assigned")

	// Play only ever advances with all four seats filled; this covers both
	// the initial seating and a mid-deal reconnect refilling the table,
	// uniformly, since promptCurrent is a no-op whenever the table isn't
	// full or the deal is already done.
	s.promptCurrent()
}

// catchUp replays the deal announcement and every trick already taken to a
// newly seated connection. The in-flight trick's TRICK prompt, if any, is
// left to the promptCurrent() call that follows — sending it here too would
// double it whenever this seat also happens to be the one next to play.
func (s *Server) catchUp(sc *seatConn) {
	spec := s.deals[s.dealIdx]
	s.writeTo(sc.conn, wire.DealMsg{Type: spec.Type, Leader: spec.FirstLeader, Hand: spec.Hand[sc.seat]})
	for _, t := range s.hand.Taken() {
		s.writeTo(sc.conn, wire.TakenMsg{Num: t.Num, Cards: t.Cards, Winner: t.Winner})
	}
}

// promptCurrent (re-)sends the TRICK prompt for the seat next to play. Per
// the admission invariant, play only actually advances once all four seats
// are filled, so this is a no-op while any seat is vacant — the referee
// pauses rather than re-prompting or timing out. It is also what the
// re-prompt sweep resends on timeout.
func (s *Server) promptCurrent() {
	if s.hand.Done() || !s.table.Full() {
		return
	}
	next := s.hand.NextToPlay()
	sc, ok := s.seats[next]
	if !ok {
		return
	}
	s.writeTo(sc.conn, wire.TrickMsg{Num: s.hand.TrickNum(), Cards: s.hand.PlaysSoFar()})
	s.lastTrickSentAt = time.Now()
}

func (s *Server) writeTo(conn net.Conn, m wire.Message) {
	line := m.Encode()
	if _, err := writeFull(conn, []byte(line)); err != nil {
		s.log.Debug().Err(err).Msg("write failed, connection likely gone")
		return
	}
	s.rep.Line(conn.LocalAddr().String(), conn.RemoteAddr().String(), trimCRLF(line))
}

// writeFull loops until every byte is written or an error occurs; a short
// write from net.Conn.Write is not itself an error condition.
func writeFull(conn net.Conn, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := conn.Write(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func trimCRLF(s string) string {
	if len(s) >= 2 && s[len(s)-2] == '\r' && s[len(s)-1] == '\n' {
		return s[:len(s)-2]
	}
	return s
}
