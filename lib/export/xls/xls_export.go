package xlsexport

import (
	"bytes"
	"rh-hub-backend/lib/utils/helpers"
	pipelineapimodels "rh-hub-backend/models/api/pipeline"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportBoard(board pipelineapimodels.BoardView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

const (
	boardSheet = "Воронка"
	statsSheet = "Статистика"
)

var (
	boardHeaders = []string{"Этап", "ФИО", "Email", "Оценка", "Дата отклика", "Последняя заметка", "Заметок"}
	statsHeaders = []string{"Этап", "Кандидатов", "Доля, %"}
)

func (i impl) ExportBoard(board pipelineapimodels.BoardView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	if err := f.SetSheetName("Sheet1", boardSheet); err != nil {
		return nil, errors.Wrap(err, "ошибка создания листа xlsx")
	}
	if _, err := f.NewSheet(statsSheet); err != nil {
		return nil, errors.Wrap(err, "ошибка создания листа xlsx")
	}
	if err := writeBoard(f, board); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования таблицы кандидатов в xlsx")
	}
	if err := writeStats(f, board); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования статистики в xlsx")
	}
	return f.WriteToBuffer()
}

func writeBoard(f *excelize.File, board pipelineapimodels.BoardView) error {
	row, err := writeHeader(f, boardSheet, 0, boardHeaders, 25)
	if err != nil {
		return err
	}
	if err = applyDataCellStyle(f, boardSheet, 1, row+1, len(boardHeaders), row+board.Total); err != nil {
		return err
	}
	for _, stage := range board.Stages {
		for _, candidate := range stage.Candidates {
			row++
			err = writeRow(f, boardSheet, row,
				stage.Name,
				candidate.Name,
				candidate.Email,
				candidate.Rating,
				helpers.FormatDate(candidate.AppliedAt),
				candidate.LastNote,
				candidate.NotesCount,
			)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func writeStats(f *excelize.File, board pipelineapimodels.BoardView) error {
	row, err := writeHeader(f, statsSheet, 0, statsHeaders, 20)
	if err != nil {
		return err
	}
	if err = applyDataCellStyle(f, statsSheet, 1, row+1, len(statsHeaders), row+len(board.Stages)+1); err != nil {
		return err
	}
	for _, stage := range board.Stages {
		row++
		if err = writeRow(f, statsSheet, row, stage.Name, stage.Count, stage.Percentage); err != nil {
			return err
		}
	}
	row++
	return writeRow(f, statsSheet, row, "Всего", board.Total, nil)
}
