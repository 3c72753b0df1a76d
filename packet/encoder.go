package packet

import "encoding/base64"

// Encoded is the result of encoding one packet: either a text string
// or a raw byte buffer, never both. Exactly one of Text/Binary is
// meaningful, selected by IsText.
type Encoded struct {
	IsText bool
	Text   string
	Binary []byte
}

// Encode encodes a single packet, choosing the wire form by the
// data it carries and the caller's binary support. Rules, evaluated
// in order:
//
//  1. If the packet carries byte data: base64-wrap it into text when
//     supportsBinary is false, otherwise emit the raw binary form.
//  2. Otherwise emit the text form (type digit, then the stringified
//     data if present).
func Encode(p Packet, supportsBinary bool) Encoded {
	if p.Data.IsBytes() {
		if !supportsBinary {
			return Encoded{IsText: true, Text: EncodeBase64(p)}
		}
		return Encoded{Binary: EncodeBinary(p)}
	}
	return Encoded{IsText: true, Text: EncodeText(p)}
}

// EncodeText encodes a packet into its text form: the ASCII decimal
// digit of the type code, followed by the stringified data if
// present. Empty-string data encodes identically to absent data (just
// the digit), and decode treats a bare digit as absent data, so the
// two cannot be told apart after encoding.
func EncodeText(p Packet) string {
	b := make([]byte, 1, 1+len(p.Data.Raw()))
	b[0] = p.Type.StringByte()
	if p.Data.Present() {
		b = append(b, p.Data.Raw()...)
	}
	return string(b)
}

// EncodeBinary encodes a packet into its raw binary form: one byte
// for the type code, followed by the raw data bytes.
func EncodeBinary(p Packet) []byte {
	data := p.Data.Raw()
	b := make([]byte, 1+len(data))
	b[0] = p.Type.BinaryByte()
	copy(b[1:], data)
	return b
}

// EncodeBase64 encodes a packet as the literal 'b', the type digit,
// then the standard (padded) base64 of the raw data bytes.
func EncodeBase64(p Packet) string {
	var b []byte
	b = append(b, 'b', p.Type.StringByte())
	return string(b) + base64.StdEncoding.EncodeToString(p.Data.Raw())
}
