package pipeline

import "time"

type EventType string

const (
	EventCandidateMoved EventType = "candidate_moved" // кандидат переведен на другой этап
	EventNoteAdded      EventType = "note_added"      // добавлена заметка по кандидату
)

// Event уведомление об изменении состояния воронки.
// Воронка не ждет обработки события и не проверяет результат, подписчик сам решает
// что с ним делать (сохранить, отправить в ws, записать в лог).
type Event struct {
	Type          EventType
	JobID         string
	CandidateID   string
	CandidateName string
	FromStageID   string
	ToStageID     string
	StageName     string // этап, на котором кандидат оказался после события
	Position      int    // позиция кандидата на этапе ToStageID
	Note          string
	Time          time.Time
}

type Listener func(event Event)

type Option func(p *Pipeline)

// WithListener подписка на события воронки с момента создания
func WithListener(listener Listener) Option {
	return func(p *Pipeline) {
		p.Subscribe(listener)
	}
}

// WithClock источник времени для событий
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		if now != nil {
			p.now = now
		}
	}
}

func (p *Pipeline) Subscribe(listener Listener) {
	if listener == nil {
		return
	}
	p.listeners = append(p.listeners, listener)
}

func (p *Pipeline) emit(event Event) {
	event.JobID = p.jobID
	event.Time = p.now()
	for _, listener := range p.listeners {
		listener(event)
	}
}
