package packet

import "fmt"

// Type is the type of a packet, an integer in [0,6] on the wire.
type Type int

const (
	// Open is sent from the server when a new transport is opened.
	Open Type = iota
	// Close requests the close of this transport but does not shut down
	// the connection itself.
	Close
	// Ping is sent by the client. The receiver should answer with a Pong
	// packet carrying the same data.
	Ping
	// Pong answers a Ping.
	Pong
	// Message carries an application payload; client and server invoke
	// their callbacks with the data.
	Message
	// Upgrade is sent before the transport is switched, to test that
	// server and client can communicate over the new transport.
	Upgrade
	// Noop forces a poll cycle when an incoming websocket connection is
	// received. It carries no data.
	Noop

	// errorType is the decoder's sentinel for malformed input. It has no
	// wire code and the encoder never emits it.
	errorType Type = -1
)

// types is the ordered name table; its index is the wire code. The
// reverse lookup (ByteToType) treats the code as an index into this
// list, so the range check lives in exactly one place.
var types = [...]string{"open", "close", "ping", "pong", "message", "upgrade", "noop"}

func (t Type) String() string {
	if t == errorType {
		return "error"
	}
	if int(t) < 0 || int(t) >= len(types) {
		return fmt.Sprintf("unknown(%d)", int(t))
	}
	return types[t]
}

// Valid reports whether t is one of the seven wire packet types.
func (t Type) Valid() bool {
	return int(t) >= 0 && int(t) < len(types)
}

// StringByte converts a Type to the ASCII decimal digit used as the
// first character of a text-encoded packet.
func (t Type) StringByte() byte {
	return byte(t) + '0'
}

// BinaryByte converts a Type to the raw type-code byte used as the
// first byte of a binary-encoded packet.
func (t Type) BinaryByte() byte {
	return byte(t)
}

// ByteToType converts a wire byte back to a Type. isText selects
// whether b is an ASCII digit (text framing) or a raw code (binary
// framing). An out-of-range code yields errorType.
func ByteToType(b byte, isText bool) Type {
	if isText {
		b -= '0'
	}
	t := Type(b)
	if !t.Valid() {
		return errorType
	}
	return t
}

// TypeFromName looks up a Type by its lowercase name (the same string
// t.String() returns for a valid t), the inverse of String(). It
// reports false for any name that isn't one of the seven wire types.
func TypeFromName(name string) (Type, bool) {
	for i, n := range types {
		if n == name {
			return Type(i), true
		}
	}
	return errorType, false
}
