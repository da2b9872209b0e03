package wire

import "strings"

// builder accumulates a message body byte-by-byte and terminates it with
// CRLF on String(), using a single growable buffer rather than repeated
// string concatenation.
type builder struct {
	sb strings.Builder
}

func newBuilder(prefix string) *builder {
	b := &builder{}
	b.sb.WriteString(prefix)
	return b
}

func (b *builder) writeByte(c byte) *builder {
	b.sb.WriteByte(c)
	return b
}

func (b *builder) writeString(s string) *builder {
	b.sb.WriteString(s)
	return b
}

func (b *builder) writeInt(n int) *builder {
	b.sb.WriteString(itoa(n))
	return b
}

func (b *builder) writeCard(c Card) *builder {
	s, err := EncodeCard(c)
	if err != nil {
		// Encoding a Card built by this package should never fail; a bad
		// value here is a programming error, not a protocol error.
		panic(err)
	}
	b.sb.WriteString(s)
	return b
}

func (b *builder) writeSeat(s Seat) *builder {
	b.sb.WriteByte(byte(s))
	return b
}

// String returns the framed line, CRLF-terminated.
func (b *builder) String() string {
	b.sb.WriteString("\r\n")
	return b.sb.String()
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
