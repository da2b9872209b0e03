// Package scoring implements the seven deal-type scoring rules: given a
// resolved trick and the active deal type, how many points the trick's
// winner earns.
package scoring

import "kierki/internal/wire"

// Score returns the points a trick's winner earns, given the deal type,
// the 0-indexed trick number, and the four cards played in it. Rule bodies
// are grouped by type so type 7 ("sum of 1..6") can just call each in turn.
func Score(dealType byte, trickIdx int, cards [4]wire.Card) int {
	total := 0
	if dealType == '1' || dealType == '7' {
		total += scoreTricksTaken()
	}
	if dealType == '2' || dealType == '7' {
		total += scoreHearts(cards)
	}
	if dealType == '3' || dealType == '7' {
		total += scoreQueens(cards)
	}
	if dealType == '4' || dealType == '7' {
		total += scoreJacksAndKings(cards)
	}
	if dealType == '5' || dealType == '7' {
		total += scoreKingOfHearts(cards)
	}
	if dealType == '6' || dealType == '7' {
		total += scoreLastTwoTricks(trickIdx)
	}
	return total
}

// DealTotal is the invariant total points awarded across all 13 tricks of
// a deal of this type, used to assert scoring stayed consistent end to end.
func DealTotal(dealType byte) int {
	switch dealType {
	case '1':
		return 13
	case '2':
		return 13
	case '3':
		return 20
	case '4':
		return 16
	case '5':
		return 18
	case '6':
		return 20
	case '7':
		return DealTotal('1') + DealTotal('2') + DealTotal('3') + DealTotal('4') + DealTotal('5') + DealTotal('6')
	default:
		return 0
	}
}

func scoreTricksTaken() int { return 1 }

func scoreHearts(cards [4]wire.Card) int {
	n := 0
	for _, c := range cards {
		if c.Suit == wire.SuitHearts {
			n++
		}
	}
	return n
}

func scoreQueens(cards [4]wire.Card) int {
	n := 0
	for _, c := range cards {
		if c.Rank == wire.RankQueen {
			n++
		}
	}
	return n * 5
}

func scoreJacksAndKings(cards [4]wire.Card) int {
	n := 0
	for _, c := range cards {
		if c.Rank == wire.RankJack || c.Rank == wire.RankKing {
			n++
		}
	}
	return n * 2
}

func scoreKingOfHearts(cards [4]wire.Card) int {
	for _, c := range cards {
		if c.Suit == wire.SuitHearts && c.Rank == wire.RankKing {
			return 18
		}
	}
	return 0
}

// scoreLastTwoTricks awards type 6's bonus on the 7th and 13th tricks,
// 0-indexed as 6 and 12.
func scoreLastTwoTricks(trickIdx int) int {
	if trickIdx == 6 || trickIdx == 12 {
		return 10
	}
	return 0
}
