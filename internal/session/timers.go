package session

import "time"

// sweepTimeouts runs once a second: it closes pending connections idle for
// longer than the configured timeout, and resends the current TRICK prompt
// if the player next to play hasn't answered within it.
func (s *Server) sweepTimeouts() {
	now := time.Now()
	timeout := s.cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	for id, p := range s.pending {
		if now.Sub(p.since) >= timeout {
			_ = p.conn.Close()
			delete(s.pending, id)
			s.log.Info().Str("remote", p.conn.RemoteAddr().String()).Msg("pending connection timed out")
		}
	}

	if s.hand == nil || s.hand.Done() {
		return
	}
	next := s.hand.NextToPlay()
	if _, ok := s.seats[next]; !ok {
		return
	}
	if !s.lastTrickSentAt.IsZero() && now.Sub(s.lastTrickSentAt) >= timeout {
		s.promptCurrent()
	}
}
