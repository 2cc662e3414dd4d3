package wsmodels

type ServerMessage struct {
	CompanyID string      `json:"-"`
	JobID     string      `json:"job_id"` // вакансия, к доске которой относится событие
	Time      string      `json:"time"`   // время события
	Code      string      `json:"code"`   // код события
	Title     string      `json:"title"`  // заголовок уведомления
	Msg       string      `json:"msg"`    // текст события
	Data      interface{} `json:"data,omitempty"`
}

type ClientMessage struct {
	Action string `json:"action"` // subscribe/unsubscribe
	JobID  string `json:"job_id"`
}

const (
	ActionSubscribe   = "subscribe"
	ActionUnsubscribe = "unsubscribe"
)
