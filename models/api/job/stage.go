package jobapimodels

import (
	dbmodels "rh-hub-backend/models/db"
	"strings"

	"github.com/pkg/errors"
)

type StageData struct {
	Name        string `json:"name"`        // Название этапа
	Color       string `json:"color"`       // Цвет колонки на доске
	Description string `json:"description"` // Описание
}

func (s StageData) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return errors.New("не указано название этапа подбора")
	}
	return nil
}

type StageView struct {
	ID          string `json:"id"`          // Идентификатор этапа
	StageOrder  int    `json:"stage_order"` // Порядковый номер этапа
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description"`
	CanDelete   bool   `json:"can_delete"` // Этап пуст и не единственный в воронке
	Candidates  int    `json:"candidates"` // Кандидатов на этапе
}

type StageOrderData struct {
	ID       string `json:"id"`        // Идентификатор этапа
	NewOrder int    `json:"new_order"` // Новый порядковый номер
}

func (s StageOrderData) Validate() error {
	if s.ID == "" {
		return errors.New("не указан идентификатор этапа")
	}
	if s.NewOrder < 1 {
		return errors.New("некорректный порядковый номер этапа")
	}
	return nil
}

func StageConvert(rec dbmodels.PipelineStage) StageView {
	return StageView{
		ID:          rec.ID,
		StageOrder:  rec.StageOrder,
		Name:        rec.Name,
		Color:       rec.Color,
		Description: rec.Description,
	}
}
