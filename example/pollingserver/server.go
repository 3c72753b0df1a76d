// Package pollingserver is a minimal demonstration of calling the
// codec from an HTTP long-polling transport: a GET-flushes,
// POST-consumes handler pair. It deliberately carries no session,
// handshake, or heartbeat state; each request is exactly one payload
// encode or decode call.
package pollingserver

import (
	"io"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/googollee/go-engineio-codec/logger"
	"github.com/googollee/go-engineio-codec/packet"
	"github.com/googollee/go-engineio-codec/payload"
)

// Server buffers outbound packets for one connection and forwards
// inbound ones to OnPacket.
type Server struct {
	SupportsBinary bool
	OnPacket       func(packet.Packet)

	mu      sync.Mutex
	pending []packet.Packet
}

// Send queues a packet to be flushed on the next GET poll.
func (s *Server) Send(p packet.Packet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, p)
}

// Handler returns a gin.Engine wiring GET (flush outbound payload)
// and POST (consume inbound payload) to the codec.
func (s *Server) Handler() *gin.Engine {
	r := gin.New()
	r.GET("/engine.io/", s.handleGet)
	r.POST("/engine.io/", s.handlePost)
	return r
}

func (s *Server) handleGet(c *gin.Context) {
	s.mu.Lock()
	packets := s.pending
	s.pending = nil
	s.mu.Unlock()

	if s.SupportsBinary {
		c.Data(http.StatusOK, "application/octet-stream", payload.EncodeBinary(packets))
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=UTF-8", []byte(payload.EncodeText(packets)))
}

func (s *Server) handlePost(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	log := logger.GetLogger("pollingserver")
	cb := func(p packet.Packet, index, total int) bool {
		if p.IsError() {
			log.Info("rejected malformed payload", "index", index)
			return false
		}
		if s.OnPacket != nil {
			s.OnPacket(p)
		}
		return true
	}

	if s.SupportsBinary {
		payload.DecodeBinary(body, cb)
	} else {
		payload.DecodeText(string(body), cb)
	}
	c.Status(http.StatusOK)
}
