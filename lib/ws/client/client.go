package wsclient

import (
	"encoding/json"

	connectionhub "rh-hub-backend/lib/ws/hub/connection-hub"
	wsmodels "rh-hub-backend/models/ws"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

func NewClient(clientID, userID string, c *websocket.Conn, hub connectionhub.Provider) *WsClient {
	return &WsClient{
		conn:     c,
		clientID: clientID,
		userID:   userID,
		hub:      hub,
	}
}

type WsClient struct {
	conn     *websocket.Conn
	clientID string
	userID   string
	hub      connectionhub.Provider
}

var closeCodes []int

func init() {
	for i := websocket.CloseNormalClosure; i <= websocket.CloseTLSHandshake; i++ {
		closeCodes = append(closeCodes, i)
	}
}

// Dispatch читает команды клиента до закрытия соединения
func (c *WsClient) Dispatch() {
	logger := log.WithField("user_id", c.userID).WithField("client_id", c.clientID)
	for {
		if c.conn == nil {
			return
		}
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, closeCodes...) {
				logger.WithError(err).Error("ошибка получения сообщения")
			}
			return
		}
		c.handle(data, logger)
	}
}

func (c *WsClient) handle(data []byte, logger *log.Entry) {
	var msg wsmodels.ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		logger.WithError(err).Debug("некорректное сообщение клиента")
		return
	}
	switch msg.Action {
	case wsmodels.ActionSubscribe:
		c.hub.Subscribe(c.clientID, msg.JobID)
	case wsmodels.ActionUnsubscribe:
		c.hub.Unsubscribe(c.clientID, msg.JobID)
	default:
		logger.WithField("action", msg.Action).Debug("неизвестная команда клиента")
	}
}
