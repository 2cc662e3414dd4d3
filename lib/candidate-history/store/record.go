package candidatehistorystore

import (
	"rh-hub-backend/models"
	dbmodels "rh-hub-backend/models/db"
)

// Author автор записи истории, пустой UserID - действие системы
type Author struct {
	UserID   string
	UserName string
}

func NewRecord(companyID, candidateID, jobID string, author Author, action dbmodels.ActionType, changes dbmodels.HistoryChanges) dbmodels.CandidateHistory {
	rec := dbmodels.CandidateHistory{
		BaseCompanyModel: dbmodels.BaseCompanyModel{CompanyID: companyID},
		CandidateID:      candidateID,
		JobID:            jobID,
		ActionType:       action,
		Changes:          changes,
		UserName:         models.SystemUser,
	}
	if rec.Changes.Data == nil {
		rec.Changes.Data = []dbmodels.HistoryChange{}
	}
	if author.UserID != "" {
		userID := author.UserID
		rec.UserID = &userID
		rec.UserName = author.UserName
	}
	return rec
}
