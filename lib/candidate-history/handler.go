package candidatehistoryhandler

import (
	"rh-hub-backend/db"
	candidatehistorystore "rh-hub-backend/lib/candidate-history/store"
	initchecker "rh-hub-backend/lib/utils/init-checker"
	candidateapimodels "rh-hub-backend/models/api/candidate"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	List(companyID, candidateID string, filter candidateapimodels.CandidateHistoryFilter) ([]candidateapimodels.CandidateHistoryView, int64, error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit("db", db.DB)
	Instance = impl{
		store: candidatehistorystore.NewInstance(db.DB),
	}
}

type impl struct {
	store candidatehistorystore.Provider
}

func (i impl) List(companyID, candidateID string, filter candidateapimodels.CandidateHistoryFilter) ([]candidateapimodels.CandidateHistoryView, int64, error) {
	rowCount, err := i.store.ListCount(companyID, candidateID, filter)
	if err != nil {
		return nil, 0, err
	}
	if int64(filter.Offset()) > rowCount {
		return []candidateapimodels.CandidateHistoryView{}, rowCount, nil
	}
	list, err := i.store.List(companyID, candidateID, filter)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка действий")
		return nil, 0, errors.New("ошибка получения списка действий")
	}
	result := make([]candidateapimodels.CandidateHistoryView, 0, len(list))
	for _, rec := range list {
		result = append(result, candidateapimodels.HistoryConvert(rec))
	}
	return result, rowCount, nil
}
