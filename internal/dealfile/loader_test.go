package dealfile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"kierki/internal/wire"
)

const oneDeal = "" +
	"1N\r\n" +
	"2C3C4C5C6C7C8C9C10CJCQCKCAC\r\n" +
	"2D3D4D5D6D7D8D9D10DJDQDKDAD\r\n" +
	"2H3H4H5H6H7H8H9H10HJHQHKHAH\r\n" +
	"2S3S4S5S6S7S8S9S10SJSQSKSAS\r\n"

func TestParseOneDeal(t *testing.T) {
	deals, err := parse(strings.NewReader(oneDeal))
	require.NoError(t, err)
	require.Len(t, deals, 1)
	d := deals[0]
	require.Equal(t, byte('1'), d.Type)
	require.Equal(t, wire.SeatNorth, d.FirstLeader)
	require.Len(t, d.Hand[wire.SeatNorth], 13)
	require.Len(t, d.Hand[wire.SeatWest], 13)
}

func TestParseRejectsBadLineCount(t *testing.T) {
	_, err := parse(strings.NewReader("1N\r\n2C3C\r\n"))
	require.Error(t, err)
}

func TestParseRejectsDuplicateCard(t *testing.T) {
	bad := strings.Replace(oneDeal, "2S3S4S5S6S7S8S9S10SJSQSKSAS", "2C3S4S5S6S7S8S9S10SJSQSKSAS", 1)
	_, err := parse(strings.NewReader(bad))
	require.Error(t, err)
}

func TestParseRejectsBadDealType(t *testing.T) {
	bad := strings.Replace(oneDeal, "1N", "8N", 1)
	_, err := parse(strings.NewReader(bad))
	require.Error(t, err)
}

func TestParseMultipleDeals(t *testing.T) {
	_, err := parse(strings.NewReader(oneDeal + oneDeal))
	require.NoError(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/to/script.txt")
	require.Error(t, err)
}
