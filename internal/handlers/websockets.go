package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"newton_cooling/internal/cooling"
	"newton_cooling/internal/logger"
	"newton_cooling/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 1 << 12 // 4 KB
	maxQueued  = 16
)

// Envelope types sent to the client.
const (
	wsTypeResult = "result"
	wsTypeError  = "error"
)

// wsEnvelope wraps every message written to a session.
type wsEnvelope struct {
	Type  string      `json:"type"`
	Seq   int         `json:"seq"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// wsFrame is one decoded client message.
type wsFrame struct {
	seq int
	req estimateRequest
	err error
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // TODO: restrict origins once the web front end has a fixed host
}

// wsConnect runs an interactive calculator session. Each text message is an
// estimate request; replies are written in the order requests arrived.
func (h *Handler) wsConnect(c *gin.Context) {
	log := h.requestLog(c)
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Errorw("ws_upgrade_failed", "err", err)
		return
	}
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	frames := make(chan wsFrame, maxQueued)
	done := make(chan struct{})
	defer close(done)
	go startReader(log, conn, frames, done)

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Infow("ws_ping_failed", "err", err)
				return
			}
		case f, ok := <-frames:
			if !ok {
				return
			}
			if err := h.reply(ctx, log, conn, f, requestID(c)); err != nil {
				log.Infow("ws_write_failed", "err", err)
				return
			}
		}
	}
}

// startReader decodes client messages until the connection closes. It owns
// all reads; wsConnect owns all writes.
func startReader(log *logger.Logger, conn *websocket.Conn, frames chan<- wsFrame, done <-chan struct{}) {
	defer close(frames)
	for seq := 1; ; seq++ {
		_, data, err := conn.ReadMessage()
		if err != nil {
			log.Infow("ws_read_closed", "err", err)
			return
		}
		f := wsFrame{seq: seq}
		if err := json.Unmarshal(data, &f.req); err != nil {
			f.err = err
		}
		select {
		case frames <- f:
		case <-done:
			return
		}
	}
}

func (h *Handler) reply(ctx context.Context, log *logger.Logger, conn *websocket.Conn, f wsFrame, reqID string) error {
	env := h.evaluate(ctx, log, f, reqID)
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(env)
}

func (h *Handler) evaluate(ctx context.Context, log *logger.Logger, f wsFrame, reqID string) wsEnvelope {
	if f.err != nil {
		return wsEnvelope{Type: wsTypeError, Seq: f.seq, Error: errInvalidBodyPref + f.err.Error()}
	}
	res, err := h.services.Estimate(ctx, f.req.raw())
	if err != nil {
		_, body, known := modelError(err)
		if !known {
			log.Errorw("ws_estimate_failed", "err", err, "seq", f.seq)
		}
		return wsEnvelope{Type: wsTypeError, Seq: f.seq, Data: body, Error: body.Error}
	}
	return wsEnvelope{
		Type: wsTypeResult,
		Seq:  f.seq,
		Data: models.EstimateResponse{
			RequestID: reqID,
			Result:    res,
			Display:   cooling.Display(res),
		},
	}
}
