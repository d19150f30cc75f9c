package app

import (
	"context"
	"strings"
	"sync"
	"time"

	"entrust_service/internal/chat/domain"
	"entrust_service/pkg/logger"
	"entrust_service/pkg/middlewares"

	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"
)

const pingInterval = 10 * time.Minute

// ChatWebsocketHandler push new message notifications to the connected user
type ChatWebsocketHandler struct {
	sub Subscriber
}

// NewChatWebsocketHandler create ChatWebsocketHandler
func NewChatWebsocketHandler(sub Subscriber) *ChatWebsocketHandler {
	return &ChatWebsocketHandler{sub: sub}
}

// wsConn serialise writes, the subscription goroutine, the ping ticker and the read loop all write
type wsConn struct {
	*websocket.Conn
	mu sync.Mutex
}

func (c *wsConn) send(resp domain.WSResponse) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.WriteJSON(resp)
}

func (c *wsConn) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.WriteControl(websocket.PingMessage, []byte("ping"), time.Now().Add(time.Second))
}

// HandleConnection 是 WebSocket 連線的進入點
func (h *ChatWebsocketHandler) HandleConnection(conn *websocket.Conn) {
	uid, _ := conn.Locals(middlewares.TokenUID).(int64)
	c := &wsConn{Conn: conn}

	ctx, cancel := context.WithCancel(context.Background())
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		cancel()
		conn.Close()
		logger.Log.Info("websocket close", zap.Int64("uid", uid))
	}()

	//啟用sub訂閱自己的訊息
	err := h.sub.Subscribe(ctx, domain.UserChannel(uid), func(n domain.Notification) {
		if err := c.send(domain.WSResponse{Action: domain.NotifyMessage, Success: true, Payload: n}); err != nil {
			logger.Log.Warn("websocket write", zap.Int64("uid", uid), zap.Error(err))
		}
	})
	if err != nil {
		logger.Log.Error("websocket subscribe", zap.Int64("uid", uid), zap.Error(err))
		_ = c.send(domain.WSResponse{Action: domain.NotifyMessage, Error: "subscribe failed"})
		return
	}

	go func() {
		for {
			select {
			case <-ticker.C:
				if err := c.ping(); err != nil {
					logger.Log.Warn("ping error", zap.Int64("uid", uid), zap.Error(err))
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		mt, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err,
				websocket.CloseNormalClosure,
				websocket.CloseGoingAway,
				websocket.CloseNoStatusReceived,
			) {
				logger.Log.Debug("connection closed", zap.Int64("uid", uid))
			} else {
				//直接斷線 1006
				logger.Log.Warn("websocket read error", zap.Int64("uid", uid), zap.Error(err))
			}
			return
		}
		if mt == websocket.TextMessage && strings.TrimSpace(string(message)) == "ping" {
			_ = c.send(domain.WSResponse{Action: domain.Pong, Success: true})
		}
	}
}
