// Package payload implements the Engine.IO v2 payload codec: framing
// an ordered sequence of packets into one transport message, in
// either the text length-prefix grammar or the binary length-prefix
// grammar terminated by the 0xFF sentinel.
package payload

import "github.com/googollee/go-engineio-codec/packet"

// Callback receives one decoded packet together with its 0-based
// index and the payload's total packet count. Returning false from a
// Callback passed to DecodeText halts further callbacks; DecodeBinary
// always delivers every packet and ignores the return value, since it
// only learns the total after materializing the whole payload.
type Callback func(p packet.Packet, index, total int) bool
