package connectionhub

import (
	"context"
	"time"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

const sendBufferSize = 16

type clientSession struct {
	companyID string
	userID    string
	conn      Writer
	jobs      map[string]struct{} // доски вакансий, на которые подписан клиент

	// исходящие сообщения, буферизованный канал
	sendCh chan any
	cancel context.CancelFunc
	done   chan struct{} // закрывается после завершения горутины отправки
}

func newSession(companyID, userID string, conn Writer) *clientSession {
	ctx, cancelFn := context.WithCancel(context.Background())
	sess := &clientSession{
		companyID: companyID,
		userID:    userID,
		conn:      conn,
		jobs:      map[string]struct{}{},
		cancel:    cancelFn,
		done:      make(chan struct{}),
		sendCh:    make(chan any, sendBufferSize),
	}
	go sess.startSend(ctx)
	return sess
}

func (s *clientSession) enqueue(msg any) bool {
	select {
	case s.sendCh <- msg:
		return true
	default:
		return false
	}
}

// stop завершает отправку и ждет, пока горутина закроет соединение.
// Вызывается до возврата из обработчика websocket, пока соединение еще принадлежит ему.
func (s *clientSession) stop() {
	s.cancel()
	<-s.done
}

func (s *clientSession) startSend(ctx context.Context) {
	defer close(s.done)
	for {
		select {
		case <-ctx.Done():
			s.close()
			return
		case msg := <-s.sendCh:
			if err := s.conn.WriteJSON(msg); err != nil {
				log.WithError(err).
					WithField("user_id", s.userID).
					Error("ошибка отправки сообщения")
			}
		}
	}
}

type controlWriter interface {
	WriteControl(messageType int, data []byte, deadline time.Time) error
}

func (s *clientSession) close() {
	conn, ok := s.conn.(controlWriter)
	if !ok {
		return
	}
	err := conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
	if err != nil {
		log.WithError(err).Debug("не удалось закрыть соединение")
	}
}
