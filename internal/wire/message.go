package wire

// Kind identifies the keyword prefix of a protocol message. Every message on
// the wire begins with exactly one of these, with no separator before the
// data that follows.
type Kind string

const (
	KindIAM   Kind = "IAM"
	KindBusy  Kind = "BUSY"
	KindDeal  Kind = "DEAL"
	KindTrick Kind = "TRICK"
	KindWrong Kind = "WRONG"
	KindTaken Kind = "TAKEN"
	KindScore Kind = "SCORE"
	KindTotal Kind = "TOTAL"
)

// Message is any value that can render itself as one CRLF-terminated wire
// line. Concrete types below cover both directions of the protocol; which
// ones a given peer may legally send is governed by the session/referee
// logic, not by this package.
type Message interface {
	Kind() Kind
	Encode() string
}

// IAMMsg — C→S: a pending connection claims a seat.
type IAMMsg struct{ Seat Seat }

func (m IAMMsg) Kind() Kind { return KindIAM }
func (m IAMMsg) Encode() string {
	return newBuilder(string(KindIAM)).writeSeat(m.Seat).String()
}

// BusyMsg — S→C: the requested seat (or seats, across repeated tries) is
// already occupied. Seats lists every seat currently occupied, in N,E,S,W
// order, 1-4 letters with no separator.
type BusyMsg struct{ Seats []Seat }

func (m BusyMsg) Kind() Kind { return KindBusy }
func (m BusyMsg) Encode() string {
	b := newBuilder(string(KindBusy))
	for _, s := range m.Seats {
		b.writeSeat(s)
	}
	return b.String()
}

// DealMsg — S→C: announces a new deal: its scoring type, the first leader,
// and the receiving seat's 13 cards in the order the script listed them.
type DealMsg struct {
	Type   byte
	Leader Seat
	Hand   []Card
}

func (m DealMsg) Kind() Kind { return KindDeal }
func (m DealMsg) Encode() string {
	b := newBuilder(string(KindDeal)).writeByte(m.Type).writeSeat(m.Leader)
	for _, c := range m.Hand {
		b.writeCard(c)
	}
	return b.String()
}

// TrickMsg carries cards played so far in trick Num. S→C it is a prompt
// (0-3 cards, the ones already played this trick); C→S it is the seat's
// reply (exactly 1 card).
type TrickMsg struct {
	Num   int
	Cards []Card
}

func (m TrickMsg) Kind() Kind { return KindTrick }
func (m TrickMsg) Encode() string {
	b := newBuilder(string(KindTrick)).writeInt(m.Num)
	for _, c := range m.Cards {
		b.writeCard(c)
	}
	return b.String()
}

// WrongMsg — S→C: the client's TRICK reply for trick Num was illegal.
type WrongMsg struct{ Num int }

func (m WrongMsg) Kind() Kind { return KindWrong }
func (m WrongMsg) Encode() string {
	return newBuilder(string(KindWrong)).writeInt(m.Num).String()
}

// TakenMsg — S→C: trick Num resolved; Cards is in play order, Winner is the
// seat that takes it.
type TakenMsg struct {
	Num    int
	Cards  [4]Card
	Winner Seat
}

func (m TakenMsg) Kind() Kind { return KindTaken }
func (m TakenMsg) Encode() string {
	b := newBuilder(string(KindTaken)).writeInt(m.Num)
	for _, c := range m.Cards {
		b.writeCard(c)
	}
	return b.writeSeat(m.Winner).String()
}

// PointsMsg — S→C: either SCORE (this deal) or TOTAL (cumulative), same
// shape: each seat letter followed by its decimal point total, N,E,S,W.
type PointsMsg struct {
	Cumulative bool
	Points     map[Seat]int
}

func (m PointsMsg) Kind() Kind {
	if m.Cumulative {
		return KindTotal
	}
	return KindScore
}

func (m PointsMsg) Encode() string {
	b := newBuilder(string(m.Kind()))
	for _, s := range Seats {
		b.writeSeat(s).writeInt(m.Points[s])
	}
	return b.String()
}
