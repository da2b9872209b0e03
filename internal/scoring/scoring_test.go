package scoring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"kierki/internal/wire"
)

func card(r wire.Rank, s wire.Suit) wire.Card { return wire.Card{Rank: r, Suit: s} }

func TestType1TrickCount(t *testing.T) {
	cards := [4]wire.Card{
		card(wire.RankTwo, wire.SuitClubs), card(wire.RankThree, wire.SuitClubs),
		card(wire.RankFour, wire.SuitClubs), card(wire.RankFive, wire.SuitClubs),
	}
	require.Equal(t, 1, Score('1', 0, cards))
}

func TestType2Hearts(t *testing.T) {
	cards := [4]wire.Card{
		card(wire.RankTwo, wire.SuitHearts), card(wire.RankThree, wire.SuitClubs),
		card(wire.RankFour, wire.SuitHearts), card(wire.RankFive, wire.SuitSpades),
	}
	require.Equal(t, 2, Score('2', 0, cards))
}

func TestType3Queens(t *testing.T) {
	cards := [4]wire.Card{
		card(wire.RankQueen, wire.SuitHearts), card(wire.RankQueen, wire.SuitClubs),
		card(wire.RankFour, wire.SuitHearts), card(wire.RankFive, wire.SuitSpades),
	}
	require.Equal(t, 10, Score('3', 0, cards))
}

func TestType4JacksAndKings(t *testing.T) {
	cards := [4]wire.Card{
		card(wire.RankJack, wire.SuitHearts), card(wire.RankKing, wire.SuitClubs),
		card(wire.RankFour, wire.SuitHearts), card(wire.RankFive, wire.SuitSpades),
	}
	require.Equal(t, 4, Score('4', 0, cards))
}

func TestType5KingOfHearts(t *testing.T) {
	with := [4]wire.Card{
		card(wire.RankKing, wire.SuitHearts), card(wire.RankKing, wire.SuitClubs),
		card(wire.RankFour, wire.SuitHearts), card(wire.RankFive, wire.SuitSpades),
	}
	require.Equal(t, 18, Score('5', 0, with))

	without := [4]wire.Card{
		card(wire.RankKing, wire.SuitClubs), card(wire.RankQueen, wire.SuitClubs),
		card(wire.RankFour, wire.SuitHearts), card(wire.RankFive, wire.SuitSpades),
	}
	require.Equal(t, 0, Score('5', 0, without))
}

func TestType6LastTwoTricks(t *testing.T) {
	cards := [4]wire.Card{
		card(wire.RankTwo, wire.SuitClubs), card(wire.RankThree, wire.SuitClubs),
		card(wire.RankFour, wire.SuitClubs), card(wire.RankFive, wire.SuitClubs),
	}
	require.Equal(t, 10, Score('6', 6, cards))
	require.Equal(t, 10, Score('6', 12, cards))
	require.Equal(t, 0, Score('6', 5, cards))
}

func TestType7SumsAllRules(t *testing.T) {
	cards := [4]wire.Card{
		card(wire.RankKing, wire.SuitHearts), card(wire.RankQueen, wire.SuitClubs),
		card(wire.RankJack, wire.SuitHearts), card(wire.RankFive, wire.SuitSpades),
	}
	want := Score('1', 6, cards) + Score('2', 6, cards) + Score('3', 6, cards) +
		Score('4', 6, cards) + Score('5', 6, cards) + Score('6', 6, cards)
	require.Equal(t, want, Score('7', 6, cards))
}

func TestDealTotals(t *testing.T) {
	require.Equal(t, 13, DealTotal('1'))
	require.Equal(t, 13, DealTotal('2'))
	require.Equal(t, 20, DealTotal('3'))
	require.Equal(t, 16, DealTotal('4'))
	require.Equal(t, 18, DealTotal('5'))
	require.Equal(t, 20, DealTotal('6'))
	require.Equal(t, 98, DealTotal('7'))
}
