package payload

import "github.com/googollee/go-engineio-codec/packet"

// EncodeText encodes a sequence of packets into one text payload:
// each packet becomes a `<len>:<data>` segment, where `<data>` is the
// single-packet encoder's text (or base64) output. An empty packet
// list encodes to exactly "0:".
func EncodeText(packets []packet.Packet) string {
	if len(packets) == 0 {
		return "0:"
	}
	var out []byte
	for _, p := range packets {
		// supportsBinary=false forces every packet (including byte
		// data) down the single-packet encoder's text/base64 path,
		// since the whole payload is carried over a text transport.
		body := packet.Encode(p, false).Text
		out = appendStringLen(out, len(body))
		out = append(out, body...)
	}
	return string(out)
}

// EncodeBinary encodes a sequence of packets into one binary
// payload: each packet becomes `<kind><digits><0xFF><body>`, where
// kind is 0
// for a text body and 1 for a binary body, digits is the per-digit
// numeric-byte length header (not ASCII), and body is the
// single-packet encoding emitted in whichever native form the packet
// prefers (supportsBinary=true at the single-packet level).
func EncodeBinary(packets []packet.Packet) []byte {
	var out []byte
	for _, p := range packets {
		enc := packet.Encode(p, true)
		var body []byte
		var kind byte
		if enc.IsText {
			kind = 0
			body = []byte(enc.Text)
		} else {
			kind = 1
			body = enc.Binary
		}
		out = append(out, kind)
		out = appendBinaryLen(out, len(body))
		out = append(out, body...)
	}
	return out
}
