package protocol

import (
	"bufio"
	"io"
	"strings"
)

// Transport reads newline-delimited frames from the bridge and writes
// command lines back. No business logic lives here; it does not even
// parse JSON.
type Transport struct {
	r *bufio.Reader
	w io.Writer
}

func NewTransport(r io.Reader, w io.Writer) *Transport {
	return &Transport{
		// State dumps for a late-game deck run long; the default scanner
		// token limit is too small, so read unbounded lines instead.
		r: bufio.NewReaderSize(r, 1<<16),
		w: w,
	}
}

// ReadLine blocks for the next frame. io.EOF passes through untouched so
// the caller can treat stream end separately from failure; everything
// else comes back as a TransportError.
func (t *Transport) ReadLine() ([]byte, error) {
	line, err := t.r.ReadBytes('\n')
	if err != nil {
		if err == io.EOF && len(strings.TrimSpace(string(line))) > 0 {
			return line, nil
		}
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, &TransportError{Op: "read", Err: err}
	}
	return line, nil
}

// WriteCommand sends one command line to the bridge.
func (t *Transport) WriteCommand(cmd string) error {
	if _, err := io.WriteString(t.w, cmd+"\n"); err != nil {
		return &TransportError{Op: "write", Err: err}
	}
	return nil
}
