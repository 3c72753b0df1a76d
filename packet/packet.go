// Package packet implements the Engine.IO v2 single-packet codec: the
// type table and the text, binary and base64 encodings of one packet.
package packet

// Data is the optional payload carried by a Packet. A zero Data (as
// returned by Packet{} with no constructor call) means "no data",
// matching the spec's distinction between absent and empty data.
type Data struct {
	present bool
	text    string
	bytes   []byte
	isBytes bool
}

// Text wraps a string as packet data.
func Text(s string) Data {
	return Data{present: true, text: s}
}

// Bytes wraps a byte slice as packet data.
func Bytes(b []byte) Data {
	return Data{present: true, bytes: b, isBytes: true}
}

// Present reports whether data was supplied at all.
func (d Data) Present() bool { return d.present }

// IsBytes reports whether the data is a byte buffer rather than text.
func (d Data) IsBytes() bool { return d.present && d.isBytes }

// String returns the textual representation of the data. For byte
// data this is an interpretation of the raw bytes as UTF-8 text.
func (d Data) String() string {
	if !d.present {
		return ""
	}
	if d.isBytes {
		return string(d.bytes)
	}
	return d.text
}

// Raw returns the data's byte representation.
func (d Data) Raw() []byte {
	if !d.present {
		return nil
	}
	if d.isBytes {
		return d.bytes
	}
	return []byte(d.text)
}

// Packet is one unit of Engine.IO communication: a type tag plus
// optional data.
type Packet struct {
	Type Type
	Data Data
}

// ErrorPacket is the fixed value emitted by the decoder whenever input
// is malformed. It is a value, not an exception: callers compare
// against it (or check Type == errorType via IsError) to detect
// rejection.
var ErrorPacket = Packet{Type: errorType, Data: Text("parser error")}

// IsError reports whether p is the decoder's error sentinel.
func (p Packet) IsError() bool {
	return p.Type == errorType
}

// Equal reports whether two packets are equivalent for round-trip
// purposes: same type, and data equal by byte content regardless of
// whether it was constructed via Text or Bytes.
func (p Packet) Equal(o Packet) bool {
	if p.Type != o.Type {
		return false
	}
	if p.Data.Present() != o.Data.Present() {
		return false
	}
	if !p.Data.Present() {
		return true
	}
	return string(p.Data.Raw()) == string(o.Data.Raw())
}
