package wire

import "fmt"

// EncodeCard renders a card the way the protocol wants it on the wire: the
// rank character (or the two-char literal "10" for ten) followed by the
// suit character. There is never a separator between cards in a message.
func EncodeCard(c Card) (string, error) {
	r, ok := rankToString(c.Rank)
	if !ok {
		return "", fmt.Errorf("wire: invalid rank %d", c.Rank)
	}
	s, ok := suitToChar(c.Suit)
	if !ok {
		return "", fmt.Errorf("wire: invalid suit %d", c.Suit)
	}
	return r + string(s), nil
}

// DecodeCard reads exactly one card starting at s[0] and returns the card
// along with the number of bytes it consumed (2, or 3 for a ten). The rank
// "1" is only ever legal when immediately followed by "0"; a standalone "1"
// is a parse error, never a card of its own.
func DecodeCard(s string) (Card, int, error) {
	if len(s) < 2 {
		return Card{}, 0, fmt.Errorf("wire: card literal %q too short", s)
	}
	if s[0] == '1' {
		if len(s) < 3 || s[1] != '0' {
			return Card{}, 0, fmt.Errorf("wire: card literal %q: '1' not followed by '0'", s)
		}
		suit, ok := charToSuit(s[2])
		if !ok {
			return Card{}, 0, fmt.Errorf("wire: card literal %q: invalid suit char %q", s, s[2])
		}
		return Card{Rank: RankTen, Suit: suit}, 3, nil
	}
	rank, ok := charToRank(s[0])
	if !ok {
		return Card{}, 0, fmt.Errorf("wire: card literal %q: invalid rank char %q", s, s[0])
	}
	suit, ok := charToSuit(s[1])
	if !ok {
		return Card{}, 0, fmt.Errorf("wire: card literal %q: invalid suit char %q", s, s[1])
	}
	return Card{Rank: rank, Suit: suit}, 2, nil
}

// DecodeCards reads exactly n consecutive cards from s and returns them
// plus the unconsumed remainder of s.
func DecodeCards(s string, n int) ([]Card, string, error) {
	cards := make([]Card, 0, n)
	rest := s
	for i := 0; i < n; i++ {
		c, consumed, err := DecodeCard(rest)
		if err != nil {
			return nil, "", fmt.Errorf("wire: card %d/%d: %w", i+1, n, err)
		}
		cards = append(cards, c)
		rest = rest[consumed:]
	}
	return cards, rest, nil
}

func charToRank(ch byte) (Rank, bool) {
	switch ch {
	case '2':
		return RankTwo, true
	case '3':
		return RankThree, true
	case '4':
		return RankFour, true
	case '5':
		return RankFive, true
	case '6':
		return RankSix, true
	case '7':
		return RankSeven, true
	case '8':
		return RankEight, true
	case '9':
		return RankNine, true
	case 'J':
		return RankJack, true
	case 'Q':
		return RankQueen, true
	case 'K':
		return RankKing, true
	case 'A':
		return RankAce, true
	default:
		return 0, false
	}
}
