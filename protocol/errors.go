package protocol

import "fmt"

// ProtocolError marks an inbound message this client cannot trust:
// unparseable JSON, a missing screen tag, or a missing full/partial
// discriminator. Recovery, when possible, is requesting a fresh full
// dump; that decision belongs to the caller.
type ProtocolError string

func (e ProtocolError) Error() string { return "protocol error: " + string(e) }

func Errorf(format string, args ...interface{}) ProtocolError {
	return ProtocolError(fmt.Sprintf(format, args...))
}

// TransportError wraps an I/O failure on the underlying stream. Always
// fatal to the session; there is no reconnect.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
