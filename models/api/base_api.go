package apimodels

import "github.com/pkg/errors"

const (
	StatusSuccess = "success"
	StatusFail    = "fail"

	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

type Response struct {
	Status  string      `json:"status"`            // success/fail
	Message string      `json:"message,omitempty"` // сообщение об ошибке
	Data    interface{} `json:"data,omitempty"`
}

// ScrollerResponse ответ для списков, RowCount - общее количество записей по фильтру
type ScrollerResponse struct {
	Response
	RowCount int64 `json:"row_count"`
}

func NewError(message string) Response {
	return Response{
		Status:  StatusFail,
		Message: message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: StatusSuccess,
		Data:   data,
	}
}

func NewScrollerResponse(data interface{}, rowCount int64) ScrollerResponse {
	return ScrollerResponse{
		Response: NewResponse(data),
		RowCount: rowCount,
	}
}

type Pagination struct {
	Limit int `json:"limit"` // Записей на странице
	Page  int `json:"page"`  // Страница (1,2,3..)
}

func (r Pagination) Validate() error {
	if r.Page < 0 {
		return errors.New("номер страницы не может быть отрицательным")
	}
	if r.Limit < 0 {
		return errors.New("количество записей на странице не может быть отрицательным")
	}
	return nil
}

// GetPage страница и размер страницы с учетом значений по умолчанию
func (r Pagination) GetPage() (page, limit int) {
	page, limit = 1, DefaultPageLimit
	if r.Page > 0 {
		page = r.Page
	}
	if r.Limit > 0 {
		limit = r.Limit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return page, limit
}

func (r Pagination) Offset() int {
	page, limit := r.GetPage()
	return (page - 1) * limit
}
