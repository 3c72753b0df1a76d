package payload

import (
	"strconv"

	"github.com/googollee/go-engineio-codec/logger"
	"github.com/googollee/go-engineio-codec/packet"
)

var log = logger.GetLogger("payload")

// DecodeText decodes a text payload. It scans left to right,
// validating each `<len>:<data>` segment before decoding it with the
// single-packet decoder. Validation failure at any point rejects the
// whole payload: cb is invoked exactly once with (ErrorPacket, 0, 1)
// and decoding halts.
//
// Because the total packet count is only known once the scan
// completes, a fully valid payload is decoded in full before any
// callback fires; cb is then invoked once per packet in order, and a
// false return stops further callbacks (the remaining, already
// decoded packets are simply never delivered).
func DecodeText(s string, cb Callback) {
	if len(s) == 0 {
		log.V(1).Info("rejecting text payload", "reason", "empty input")
		cb(packet.ErrorPacket, 0, 1)
		return
	}

	var packets []packet.Packet

	pos := 0
	for pos < len(s) {
		n, bodyStart, ok := readStringLen(s, pos)
		if !ok || !isCanonicalLen(s[pos:bodyStart-1], n) {
			log.V(1).Info("rejecting text payload", "reason", "malformed length header", "pos", pos)
			cb(packet.ErrorPacket, 0, 1)
			return
		}
		if bodyStart+n > len(s) {
			log.V(1).Info("rejecting text payload", "reason", "segment overruns input", "pos", pos)
			cb(packet.ErrorPacket, 0, 1)
			return
		}
		// A zero-length segment is the "0:" empty-payload sentinel,
		// not a packet with empty data (every real packet encodes to
		// at least one character, the type digit) - skip it rather
		// than feeding "" to the single-packet decoder.
		if n > 0 {
			body := s[bodyStart : bodyStart+n]
			p := packet.DecodeText(body)
			if p.IsError() {
				log.V(1).Info("rejecting text payload", "reason", "malformed packet", "pos", pos)
				cb(packet.ErrorPacket, 0, 1)
				return
			}
			packets = append(packets, p)
		}
		pos = bodyStart + n
	}

	total := len(packets)
	for i, p := range packets {
		if !cb(p, i, total) {
			return
		}
	}
}

// isCanonicalLen reports whether digits is a non-empty run of ASCII
// decimal digits whose value equals n with no leading zeros (except
// the literal digit string "0" for n==0).
func isCanonicalLen(digits string, n int) bool {
	if digits == "" {
		return false
	}
	return digits == strconv.Itoa(n)
}

// DecodeBinary decodes a binary payload. It consumes
// `<kind><digits><0xFF><body>` segments until the buffer is
// exhausted, materializing every packet before invoking any
// callback, then delivers one callback per packet with the correct
// total. It does not support early termination: cb's return value is
// ignored and every packet is always delivered, since by the time
// callbacks start firing the whole payload has already been parsed.
func DecodeBinary(b []byte, cb Callback) {
	var packets []packet.Packet

	pos := 0
	for pos < len(b) {
		// Only a kind byte of exactly 0 selects the text sub-codec for
		// this segment's body; any other value (not just 1) is treated
		// as binary, matching the reference decoder's leniency here.
		isString := b[pos] == 0
		n, bodyStart, ok := readBinaryLen(b, pos+1)
		if !ok {
			log.V(1).Info("rejecting binary payload", "reason", "malformed length header", "pos", pos)
			cb(packet.ErrorPacket, 0, 1)
			return
		}
		if bodyStart+n > len(b) {
			log.V(1).Info("rejecting binary payload", "reason", "segment overruns input", "pos", pos)
			cb(packet.ErrorPacket, 0, 1)
			return
		}
		body := b[bodyStart : bodyStart+n]

		var p packet.Packet
		if isString {
			p = packet.DecodeText(string(body))
		} else {
			p = packet.DecodeBinary(body)
		}
		if p.IsError() {
			log.V(1).Info("rejecting binary payload", "reason", "malformed packet", "pos", pos)
			cb(packet.ErrorPacket, 0, 1)
			return
		}
		packets = append(packets, p)
		pos = bodyStart + n
	}

	total := len(packets)
	for i, p := range packets {
		cb(p, i, total)
	}
}
