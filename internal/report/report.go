// Package report renders the exact wire-trace line format required on
// stdout: one line per exchanged message, with the literal two characters
// `\r\n` printed at the end rather than an actual CRLF.
package report

import (
	"fmt"
	"io"
	"time"
)

// Writer appends one trace line per call to Line. It is not safe for
// concurrent use; the session loop that owns the connections is the only
// writer, matching the single-threaded event loop the rest of the server
// runs on.
type Writer struct {
	out io.Writer
	now func() time.Time
}

// New wraps out. now defaults to time.Now; tests may override it for
// deterministic timestamps.
func New(out io.Writer) *Writer {
	return &Writer{out: out, now: time.Now}
}

// Line records one exchanged message: src and dst are "ip:port" strings
// (or a synthetic label such as "stdin" for the client's own terminal
// input), line is the message without its trailing CRLF.
func (w *Writer) Line(src, dst, line string) {
	ts := w.now().Format("2006-01-02T15:04:05.000")
	fmt.Fprintf(w.out, "[%s,%s,%s] %s\\r\\n\n", src, dst, ts, line)
}
