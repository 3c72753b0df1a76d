// Package engineio is the dispatch facade over the packet and
// payload codecs: it chooses text vs. binary wire form based on a
// supportsBinary capability flag, and exposes the packet-type table
// and protocol version as the module's public constants.
package engineio

import (
	"github.com/googollee/go-engineio-codec/packet"
	"github.com/googollee/go-engineio-codec/payload"
)

// ProtocolVersion is the Engine.IO wire protocol version this codec
// speaks. It is not negotiated; callers that need a different version
// are outside this codec's scope.
const ProtocolVersion = 2

// Type re-exports the packet type table for callers that only need
// the dispatch facade.
type Type = packet.Type

// The seven wire packet types, re-exported for convenience.
const (
	Open    = packet.Open
	Close   = packet.Close
	Ping    = packet.Ping
	Pong    = packet.Pong
	Message = packet.Message
	Upgrade = packet.Upgrade
	Noop    = packet.Noop
)

// Packet re-exports the single packet value type.
type Packet = packet.Packet

// TypeFromName looks up a Type by name, the inverse of Type.String().
// Together the two give the packet-type table both directions: code
// to name via String(), name to code via TypeFromName.
func TypeFromName(name string) (Type, bool) {
	return packet.TypeFromName(name)
}

// ErrorPacket is the sentinel decoded packets compare against to
// detect malformed input.
var ErrorPacket = packet.ErrorPacket

// Callback is invoked once per decoded packet during DecodePayload.
type Callback = payload.Callback

// EncodedPacket is the direct-return result of EncodePacket: either a
// text string or a raw byte buffer, never both.
type EncodedPacket = packet.Encoded

// EncodePacket encodes one packet: it returns the text or base64
// form when supportsBinary is false, or the raw binary form when
// supportsBinary is true and the packet carries byte data.
func EncodePacket(p Packet, supportsBinary bool) EncodedPacket {
	return packet.Encode(p, supportsBinary)
}

// DecodePacket decodes one packet, dispatching on isText: when it is
// true, text takes the text/base64 path; otherwise binary takes the
// binary path.
func DecodePacket(isText bool, text string, binary []byte) Packet {
	if isText {
		return packet.DecodeText(text)
	}
	return packet.DecodeBinary(binary)
}

// EncodedPayload is the direct-return result of EncodePayload.
type EncodedPayload struct {
	IsText bool
	Text   string
	Binary []byte
}

// EncodePayload encodes a sequence of packets into one payload: the
// binary payload encoder when supportsBinary is true, the text
// payload encoder otherwise.
func EncodePayload(packets []Packet, supportsBinary bool) EncodedPayload {
	if supportsBinary {
		return EncodedPayload{Binary: payload.EncodeBinary(packets)}
	}
	return EncodedPayload{IsText: true, Text: payload.EncodeText(packets)}
}

// DecodePayload decodes one payload: the text payload decoder when
// isText is true, the binary payload decoder otherwise. cb is invoked
// per packet with (packet, index, total); returning false from cb
// only has an effect for text payloads, since the binary decoder
// materializes every packet before it starts calling back.
func DecodePayload(isText bool, text string, binary []byte, cb Callback) {
	if isText {
		payload.DecodeText(text, cb)
		return
	}
	payload.DecodeBinary(binary, cb)
}
