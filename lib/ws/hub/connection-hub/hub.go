package connectionhub

import (
	"sync"

	wsmodels "rh-hub-backend/models/ws"

	log "github.com/sirupsen/logrus"
)

// Writer соединение, в которое сессия пишет сообщения
type Writer interface {
	WriteJSON(v interface{}) error
}

type Provider interface {
	AddClient(clientID, companyID, userID string, conn Writer)
	DeleteClient(clientID string)
	Subscribe(clientID, jobID string)
	Unsubscribe(clientID, jobID string)
	// Broadcast отправляет сообщение всем подписчикам доски вакансии в компании, возвращает число получателей
	Broadcast(msg wsmodels.ServerMessage) int
	IsConnected(clientID string) bool
}

var Instance Provider

func Init() {
	Instance = NewInstance()
}

func NewInstance() Provider {
	return &impl{
		clients: map[string]*clientSession{},
	}
}

type impl struct {
	mu      sync.RWMutex
	clients map[string]*clientSession // map[clientID]
}

func (i *impl) AddClient(clientID, companyID, userID string, conn Writer) {
	i.mu.Lock()
	oldSess := i.clients[clientID]
	i.clients[clientID] = newSession(companyID, userID, conn)
	i.mu.Unlock()
	if oldSess != nil {
		oldSess.stop()
	}
}

// DeleteClient возвращает управление только после остановки отправки и закрытия соединения
func (i *impl) DeleteClient(clientID string) {
	i.mu.Lock()
	sess, ok := i.clients[clientID]
	if ok {
		delete(i.clients, clientID)
	}
	i.mu.Unlock()
	if ok {
		sess.stop()
	}
}

func (i *impl) Subscribe(clientID, jobID string) {
	if jobID == "" {
		return
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	if sess, ok := i.clients[clientID]; ok {
		sess.jobs[jobID] = struct{}{}
	}
}

func (i *impl) Unsubscribe(clientID, jobID string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if sess, ok := i.clients[clientID]; ok {
		delete(sess.jobs, jobID)
	}
}

func (i *impl) Broadcast(msg wsmodels.ServerMessage) int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	sent := 0
	for clientID, sess := range i.clients {
		if sess.companyID != msg.CompanyID {
			continue
		}
		if _, ok := sess.jobs[msg.JobID]; !ok {
			continue
		}
		if sess.enqueue(msg) {
			sent++
		} else {
			log.WithField("client_id", clientID).
				WithField("user_id", sess.userID).
				Warn("очередь сообщений клиента переполнена, событие пропущено")
		}
	}
	return sent
}

func (i *impl) IsConnected(clientID string) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	_, ok := i.clients[clientID]
	return ok
}
