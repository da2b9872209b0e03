package wire

import (
	"fmt"
	"strconv"
)

// Decode parses one already-unframed line (no trailing CRLF) into a typed
// Message. It never panics: any deviation from the grammar comes back as an
// error instead.
func Decode(line string) (Message, error) {
	switch {
	case hasPrefix(line, KindIAM):
		return decodeIAM(line)
	case hasPrefix(line, KindBusy):
		return decodeBusy(line)
	case hasPrefix(line, KindDeal):
		return decodeDeal(line)
	case hasPrefix(line, KindTrick):
		return decodeTrick(line)
	case hasPrefix(line, KindWrong):
		return decodeWrong(line)
	case hasPrefix(line, KindTaken):
		return decodeTaken(line)
	case hasPrefix(line, KindScore):
		return decodeScore(line, false)
	case hasPrefix(line, KindTotal):
		return decodeScore(line, true)
	default:
		return nil, fmt.Errorf("wire: unrecognized message %q", line)
	}
}

// Encode renders any Message as a CRLF-terminated line.
func Encode(m Message) string { return m.Encode() }

func hasPrefix(line string, k Kind) bool {
	p := string(k)
	return len(line) >= len(p) && line[:len(p)] == p
}

func decodeIAM(line string) (Message, error) {
	rest := line[len(KindIAM):]
	if len(rest) != 1 {
		return nil, fmt.Errorf("wire: malformed IAM %q", line)
	}
	seat, err := ParseSeat(rest[0])
	if err != nil {
		return nil, fmt.Errorf("wire: malformed IAM: %w", err)
	}
	return IAMMsg{Seat: seat}, nil
}

func decodeBusy(line string) (Message, error) {
	rest := line[len(KindBusy):]
	if len(rest) < 1 || len(rest) > 4 {
		return nil, fmt.Errorf("wire: malformed BUSY %q", line)
	}
	seats := make([]Seat, 0, len(rest))
	for i := 0; i < len(rest); i++ {
		s, err := ParseSeat(rest[i])
		if err != nil {
			return nil, fmt.Errorf("wire: malformed BUSY: %w", err)
		}
		seats = append(seats, s)
	}
	return BusyMsg{Seats: seats}, nil
}

func decodeDeal(line string) (Message, error) {
	rest := line[len(KindDeal):]
	if len(rest) < 2 {
		return nil, fmt.Errorf("wire: malformed DEAL %q", line)
	}
	typ := rest[0]
	if typ < '1' || typ > '7' {
		return nil, fmt.Errorf("wire: malformed DEAL: invalid type %q", typ)
	}
	leader, err := ParseSeat(rest[1])
	if err != nil {
		return nil, fmt.Errorf("wire: malformed DEAL: %w", err)
	}
	cards, tail, err := DecodeCards(rest[2:], 13)
	if err != nil {
		return nil, fmt.Errorf("wire: malformed DEAL: %w", err)
	}
	if tail != "" {
		return nil, fmt.Errorf("wire: malformed DEAL: trailing bytes %q", tail)
	}
	return DealMsg{Type: typ, Leader: leader, Hand: cards}, nil
}

func decodeWrong(line string) (Message, error) {
	rest := line[len(KindWrong):]
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 || n > 13 {
		return nil, fmt.Errorf("wire: malformed WRONG %q", line)
	}
	return WrongMsg{Num: n}, nil
}

func decodeScore(line string, cumulative bool) (Message, error) {
	prefix := KindScore
	if cumulative {
		prefix = KindTotal
	}
	rest := line[len(prefix):]
	points := make(map[Seat]int, 4)
	for _, want := range Seats {
		if len(rest) < 2 {
			return nil, fmt.Errorf("wire: malformed %s %q", prefix, line)
		}
		got, err := ParseSeat(rest[0])
		if err != nil || got != want {
			return nil, fmt.Errorf("wire: malformed %s: expected seat %c, got %q", prefix, byte(want), rest[:1])
		}
		rest = rest[1:]
		j := 0
		for j < len(rest) && isDigit(rest[j]) {
			j++
		}
		if j == 0 {
			return nil, fmt.Errorf("wire: malformed %s: missing score for seat %c", prefix, byte(want))
		}
		n, err := strconv.Atoi(rest[:j])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("wire: malformed %s: bad score %q", prefix, rest[:j])
		}
		points[want] = n
		rest = rest[j:]
	}
	if rest != "" {
		return nil, fmt.Errorf("wire: malformed %s: trailing bytes %q", prefix, rest)
	}
	return PointsMsg{Cumulative: cumulative, Points: points}, nil
}

func decodeTaken(line string) (Message, error) {
	rest := line[len(KindTaken):]
	n, rest, err := decodeTrickNum(rest, func(after string) bool {
		// A TAKEN body always has exactly 4 cards then 1 seat letter
		// following the trick number; validate by attempting that shape.
		_, tail, err := DecodeCards(after, 4)
		if err != nil || len(tail) != 1 {
			return false
		}
		_, ok := ParseSeat(tail[0])
		return ok == nil
	})
	if err != nil {
		return nil, fmt.Errorf("wire: malformed TAKEN %q: %w", line, err)
	}
	cards, tail, err := DecodeCards(rest, 4)
	if err != nil {
		return nil, fmt.Errorf("wire: malformed TAKEN: %w", err)
	}
	if len(tail) != 1 {
		return nil, fmt.Errorf("wire: malformed TAKEN: expected exactly 1 trailing seat byte, got %q", tail)
	}
	winner, err := ParseSeat(tail[0])
	if err != nil {
		return nil, fmt.Errorf("wire: malformed TAKEN: %w", err)
	}
	var arr [4]Card
	copy(arr[:], cards)
	return TakenMsg{Num: n, Cards: arr, Winner: winner}, nil
}

func decodeTrick(line string) (Message, error) {
	rest := line[len(KindTrick):]
	n, rest, err := decodeTrickNum(rest, func(after string) bool {
		_, tail, err := decodeUpTo4Cards(after)
		return err == nil && tail == ""
	})
	if err != nil {
		return nil, fmt.Errorf("wire: malformed TRICK %q: %w", line, err)
	}
	cards, tail, err := decodeUpTo4Cards(rest)
	if err != nil {
		return nil, fmt.Errorf("wire: malformed TRICK: %w", err)
	}
	if tail != "" {
		return nil, fmt.Errorf("wire: malformed TRICK: trailing bytes %q", tail)
	}
	return TrickMsg{Num: n, Cards: cards}, nil
}

func decodeUpTo4Cards(s string) ([]Card, string, error) {
	var cards []Card
	rest := s
	for len(rest) > 0 && len(cards) < 4 {
		c, consumed, err := DecodeCard(rest)
		if err != nil {
			return nil, "", err
		}
		cards = append(cards, c)
		rest = rest[consumed:]
	}
	return cards, rest, nil
}

// decodeTrickNum resolves the n-then-cards ambiguity described in the wire
// grammar: n is 1-13 with no padding, immediately followed by 0-4 cards with
// no separator. A two-digit n (10-13) and a one-digit n=1 followed by a card
// beginning with the same two bytes can never both parse, because card rank
// characters and card suit characters are disjoint byte sets (suits are
// letters C/D/H/S; rank-leading bytes are digits or J/Q/K/A/'1'). We try the
// two-digit reading first when it's numerically possible and only accept it
// if validate() confirms the remainder parses as well-formed trailing
// content; otherwise we fall back to the one-digit reading.
func decodeTrickNum(s string, validate func(after string) bool) (int, string, error) {
	if len(s) == 0 {
		return 0, "", fmt.Errorf("empty trick number")
	}
	if s[0] == '1' && len(s) >= 2 && s[1] >= '0' && s[1] <= '3' {
		n := 10 + int(s[1]-'0')
		after := s[2:]
		if validate(after) {
			return n, after, nil
		}
	}
	if !isDigit(s[0]) {
		return 0, "", fmt.Errorf("invalid trick number byte %q", s[0])
	}
	n := int(s[0] - '0')
	if n < 1 {
		return 0, "", fmt.Errorf("trick number out of range: %d", n)
	}
	return n, s[1:], nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
