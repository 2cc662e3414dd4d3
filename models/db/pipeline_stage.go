package dbmodels

type PipelineStage struct {
	BaseCompanyModel
	JobID       string `gorm:"type:varchar(36);index"`
	StageOrder  int
	Name        string `gorm:"type:varchar(255)"`
	Color       string `gorm:"type:varchar(100)"`
	Description string
}

const (
	ScreeningStage     string = "Скрининг"
	InterviewStage     string = "Интервью"
	TechnicalTestStage string = "Тестовое задание"
	OfferStage         string = "Оффер"
	HiredStage         string = "Принят"
)

var DefaultPipelineStages = []string{ScreeningStage, InterviewStage, TechnicalTestStage, OfferStage, HiredStage}

var defaultStageColors = []string{
	"bg-blue-100 border-blue-300",
	"bg-yellow-100 border-yellow-300",
	"bg-orange-100 border-orange-300",
	"bg-purple-100 border-purple-300",
	"bg-green-100 border-green-300",
}

// StageColor цвет по умолчанию для этапа с порядковым номером order (с нуля)
func StageColor(order int) string {
	if order < 0 {
		order = 0
	}
	return defaultStageColors[order%len(defaultStageColors)]
}
