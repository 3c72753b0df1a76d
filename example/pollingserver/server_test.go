package pollingserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/googollee/go-engineio-codec/packet"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleGetFlushesPendingPackets(t *testing.T) {
	assert := assert.New(t)

	s := &Server{}
	s.Send(packet.Packet{Type: packet.Message, Data: packet.Text("hello")})
	s.Send(packet.Packet{Type: packet.Ping})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/engine.io/", nil)
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(http.StatusOK, rec.Code)
	assert.Equal("6:4hello1:2", rec.Body.String())
}

func TestHandlePostDispatchesPackets(t *testing.T) {
	must := require.New(t)

	var got []packet.Packet
	s := &Server{OnPacket: func(p packet.Packet) { got = append(got, p) }}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/engine.io/", strings.NewReader("6:4hello1:2"))
	s.Handler().ServeHTTP(rec, req)

	must.Equal(http.StatusOK, rec.Code)
	must.Len(got, 2)
	must.Equal("hello", got[0].Data.String())
	must.Equal(packet.Ping, got[1].Type)
}

func TestHandlePostRejectsMalformedPayload(t *testing.T) {
	called := false
	s := &Server{OnPacket: func(p packet.Packet) { called = true }}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/engine.io/", strings.NewReader("1:a"))
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, called)
}
