package packet

import "encoding/base64"

// DecodeText decodes a single packet from its text wire form. A
// leading 'b' delegates to the base64 path. Otherwise the first
// character must be the decimal digit of a valid type code; anything
// else yields ErrorPacket.
func DecodeText(s string) Packet {
	if len(s) == 0 {
		return ErrorPacket
	}
	if s[0] == 'b' {
		return DecodeBase64(s[1:])
	}
	c := s[0]
	if c < '0' || c > '9' {
		return ErrorPacket
	}
	t := ByteToType(c, true)
	if !t.Valid() {
		return ErrorPacket
	}
	if len(s) > 1 {
		return Packet{Type: t, Data: Text(s[1:])}
	}
	return Packet{Type: t}
}

// DecodeBinary decodes a single packet from its binary wire form.
// The first byte is the type code; the remainder is the data, always
// returned as a byte buffer (Go has no distinct array-buffer-view
// type). An out-of-range type byte is treated as invalid input and
// yields ErrorPacket, rather than being passed through as a packet
// with an undefined type.
func DecodeBinary(b []byte) Packet {
	if len(b) == 0 {
		return ErrorPacket
	}
	t := ByteToType(b[0], false)
	if !t.Valid() {
		return ErrorPacket
	}
	if len(b) > 1 {
		return Packet{Type: t, Data: Bytes(b[1:])}
	}
	return Packet{Type: t}
}

// DecodeBase64 decodes a single packet from its base64 wire form:
// the first character is the type digit, the remainder is
// base64-decoded to a byte buffer.
func DecodeBase64(s string) Packet {
	if len(s) == 0 {
		return ErrorPacket
	}
	c := s[0]
	if c < '0' || c > '9' {
		return ErrorPacket
	}
	t := ByteToType(c, true)
	if !t.Valid() {
		return ErrorPacket
	}
	raw, err := base64.StdEncoding.DecodeString(s[1:])
	if err != nil {
		return ErrorPacket
	}
	return Packet{Type: t, Data: Bytes(raw)}
}
