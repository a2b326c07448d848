package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/sir-pinecone/rusty-roguelike/internal/domain"
	"github.com/sir-pinecone/rusty-roguelike/internal/engine"
	"github.com/sir-pinecone/rusty-roguelike/pkg/api"
	"github.com/sir-pinecone/rusty-roguelike/pkg/logger"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Допустимые действия от клиента. Все остальное даже не доходит до движка.
var allowedActions = map[domain.ActionType]bool{
	domain.ActionInit:       true,
	domain.ActionMove:       true,
	domain.ActionInventory:  true,
	domain.ActionPickup:     true,
	domain.ActionUseItem:    true,
	domain.ActionLookAt:     true,
	domain.ActionFullscreen: true,
	domain.ActionQuit:       true,
}

// Client - посредник между Websocket и игровым циклом сессии.
// Инпут-коллаборатор шлет намерения, рендер-коллаборатор получает снимки.
type Client struct {
	Conn *websocket.Conn
	Loop *engine.Loop
}

// NewClient создает сессию с циклом и привязывает её к соединению.
func NewClient(cfg engine.Config, conn *websocket.Conn) (*Client, error) {
	session, err := engine.NewSession(cfg)
	if err != nil {
		return nil, err
	}

	c := &Client{
		Conn: conn,
		Loop: engine.NewLoop(session),
	}
	go c.Loop.Run()

	logger.Log.WithFields(logrus.Fields{
		"component": "ws_client",
		"seed":      cfg.Seed,
	}).Info("Client session started")

	return c, nil
}

// readPump читает намерения от клиента и скармливает их циклу.
func (c *Client) readPump() {
	defer func() {
		close(c.Loop.Commands)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection")
		}
		logger.Log.Info("Client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	// Первый кадр клиенту - INIT
	c.Loop.Commands <- domain.InternalCommand{Action: domain.ActionInit}

	for {
		var cmd api.ClientCommand
		if err := c.Conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.WithError(err).Error("WS read error")
			}
			return
		}

		action := domain.ActionType(cmd.Action)
		if !allowedActions[action] {
			logger.Log.WithField("action", cmd.Action).Warn("Rejected unknown action")
			continue
		}

		c.Loop.Commands <- domain.InternalCommand{Action: action, Payload: cmd.Payload}

		if action == domain.ActionQuit {
			return
		}
	}
}

// writePump отправляет снимки клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case snapshot, ok := <-c.Loop.Updates:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				// Цикл завершился (Exit): прощаемся
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(snapshot); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
