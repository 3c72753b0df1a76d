package engineio

import (
	"testing"

	"github.com/googollee/go-engineio-codec/packet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProtocolVersion(t *testing.T) {
	assert.Equal(t, 2, ProtocolVersion)
}

func TestEncodeDecodePacketFacade(t *testing.T) {
	assert := assert.New(t)

	p := Packet{Type: Message, Data: packet.Text("hello world")}
	enc := EncodePacket(p, false)
	assert.True(enc.IsText)
	assert.Equal("4hello world", enc.Text)

	dec := DecodePacket(true, enc.Text, nil)
	assert.True(p.Equal(dec))
}

func TestEncodeDecodePayloadFacade(t *testing.T) {
	must := require.New(t)
	assert := assert.New(t)

	packets := []Packet{
		{Type: Message, Data: packet.Text("hello")},
		{Type: Ping},
	}

	for _, supportsBinary := range []bool{true, false} {
		enc := EncodePayload(packets, supportsBinary)

		var got []Packet
		DecodePayload(enc.IsText, enc.Text, enc.Binary, func(p Packet, index, total int) bool {
			got = append(got, p)
			return true
		})

		must.Len(got, len(packets))
		for i, p := range packets {
			assert.True(p.Equal(got[i]))
		}
	}
}

func TestDecodePayloadErrorFacade(t *testing.T) {
	assert := assert.New(t)

	calls := 0
	DecodePayload(true, "1:a", nil, func(p Packet, index, total int) bool {
		calls++
		assert.True(p.IsError())
		return true
	})
	assert.Equal(1, calls)
}

func TestDecodePayloadEmptyTextInputIsError(t *testing.T) {
	assert := assert.New(t)

	calls := 0
	var got Packet
	DecodePayload(true, "", nil, func(p Packet, index, total int) bool {
		calls++
		got = p
		return true
	})
	assert.Equal(1, calls)
	assert.True(got.IsError())
}

func TestTypeFromNameFacade(t *testing.T) {
	assert := assert.New(t)

	got, ok := TypeFromName("message")
	assert.True(ok)
	assert.Equal(Message, got)

	_, ok = TypeFromName("bogus")
	assert.False(ok)
}
