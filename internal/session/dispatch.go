package session

import (
	"kierki/internal/referee"
	"kierki/internal/wire"
)

func (s *Server) onLine(e lineEvent) {
	if p, ok := s.pending[e.id]; ok {
		s.onPendingLine(p, e.line)
		return
	}
	for seat, sc := range s.seats {
		if sc.id == e.id {
			s.onSeatLine(seat, sc, e.line)
			return
		}
	}
}

func (s *Server) onPendingLine(p *pendingConn, line string) {
	s.rep.Line(p.conn.RemoteAddr().String(), s.ln.Addr().String(), line)
	msg, err := wire.Decode(line)
	if err != nil {
		s.closePending(p)
		return
	}
	iam, ok := msg.(wire.IAMMsg)
	if !ok {
		s.closePending(p)
		return
	}
	s.assign(p, iam.Seat)
}

func (s *Server) closePending(p *pendingConn) {
	_ = p.conn.Close()
	delete(s.pending, p.id)
}

func (s *Server) onSeatLine(seat wire.Seat, sc *seatConn, line string) {
	s.rep.Line(sc.conn.RemoteAddr().String(), s.ln.Addr().String(), line)
	msg, err := wire.Decode(line)
	if err != nil {
		s.closeSeat(seat, sc)
		return
	}
	trick, ok := msg.(wire.TrickMsg)
	if !ok {
		s.closeSeat(seat, sc)
		return
	}
	if len(trick.Cards) != 1 {
		s.writeTo(sc.conn, wire.WrongMsg{Num: s.hand.TrickNum()})
		return
	}

	resolved, err := s.hand.AcceptPlay(seat, trick.Num, trick.Cards[0])
	if err != nil {
		s.writeTo(sc.conn, wire.WrongMsg{Num: s.hand.TrickNum()})
		return
	}

	if resolved != nil {
		s.broadcast(wire.TakenMsg{Num: resolved.Num, Cards: resolved.Cards, Winner: resolved.Winner})
	}

	if s.hand.Done() {
		s.finishDeal()
		return
	}
	s.promptCurrent()
}

func (s *Server) closeSeat(seat wire.Seat, sc *seatConn) {
	_ = sc.conn.Close()
	delete(s.seats, seat)
	s.table.Vacate(seat)
	s.log.Info().Str("seat", seat.String()).Msg("seat closed on protocol violation")
}

// broadcast sends m to every currently occupied seat, in N,E,S,W order, so
// the relative ordering of TAKEN/SCORE/TOTAL is identical for every peer
// observing the deal.
func (s *Server) broadcast(m wire.Message) {
	for _, seat := range wire.Seats {
		if sc, ok := s.seats[seat]; ok {
			s.writeTo(sc.conn, m)
		}
	}
}

func (s *Server) finishDeal() {
	points := s.hand.Points()
	s.broadcast(wire.PointsMsg{Cumulative: false, Points: points})
	for seat, p := range points {
		s.totals[seat] += p
	}
	s.broadcast(wire.PointsMsg{Cumulative: true, Points: cloneTotals(s.totals)})

	s.dealIdx++
	if s.dealIdx >= len(s.deals) {
		s.log.Info().Msg("tournament complete")
		s.closeAll()
		s.stopped = true
		return
	}
	s.hand = referee.NewHand(s.deals[s.dealIdx])
	for seat, sc := range s.seats {
		spec := s.deals[s.dealIdx]
		s.writeTo(sc.conn, wire.DealMsg{Type: spec.Type, Leader: spec.FirstLeader, Hand: spec.Hand[seat]})
	}
	s.promptCurrent()
}

func cloneTotals(m map[wire.Seat]int) map[wire.Seat]int {
	cp := make(map[wire.Seat]int, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}
