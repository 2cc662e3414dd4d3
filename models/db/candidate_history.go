package dbmodels

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"
)

type CandidateHistory struct {
	BaseCompanyModel
	// Seq порядковый номер записи (bigserial), задает порядок при равном created_at
	Seq         int64  `gorm:"autoIncrement;index" json:"-"`
	CandidateID string `gorm:"type:varchar(36);index"`
	JobID       string `gorm:"type:varchar(36)"`
	Job         *Job   `gorm:"foreignKey:JobID"`
	UserID      *string
	UserName    string
	ActionType  ActionType     `gorm:"type:varchar(255)"`
	Changes     HistoryChanges `gorm:"type:jsonb"`
}

func (j HistoryChanges) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *HistoryChanges) Scan(value interface{}) error {
	switch data := value.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(data, j)
	case string:
		return json.Unmarshal([]byte(data), j)
	default:
		return errors.Errorf("неподдерживаемый тип данных истории: %T", value)
	}
}

type HistoryChanges struct {
	Description string          `json:"description"` // Комментарий
	Data        []HistoryChange `json:"data"`        // Список изменений
}

type HistoryChange struct {
	Field    string      `json:"field"`     // Измененное поле
	OldValue interface{} `json:"old_value"` // Старое значение
	NewValue interface{} `json:"new_value"` // Новое значение
}

type ActionType string

const (
	HistoryTypeComment     ActionType = "comment"      // Добавлена заметка по кандидату
	HistoryTypeAdded       ActionType = "added"        // Кандидат добавлен в воронку
	HistoryTypeStageChange ActionType = "stage_change" // Кандидат переведен на другой этап
	HistoryTypeInterview   ActionType = "interview"    // Назначено/изменено собеседование
)
