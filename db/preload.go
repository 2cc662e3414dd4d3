package db

import (
	"rh-hub-backend/config"
	companystore "rh-hub-backend/lib/company/store"
	usersstore "rh-hub-backend/lib/users/store"
	authutils "rh-hub-backend/lib/utils/auth-utils"
	"rh-hub-backend/lib/utils/helpers"
	"rh-hub-backend/models"
	dbmodels "rh-hub-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func InitPreload() {
	addCompanyAdmin()
	fillStageColors()
}

// addCompanyAdmin первый администратор и его компания из настроек
func addCompanyAdmin() {
	if config.Conf.Admin.Email == "" {
		log.Warn("администратор не добавлен, отсутвует настройка ADMIN_EMAIL")
		return
	}
	email := helpers.NormalizeEmail(config.Conf.Admin.Email)
	existedRec, err := usersstore.NewInstance(DB).FindByEmail(email)
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора")
		return
	}
	if existedRec != nil {
		return
	}
	err = DB.Transaction(func(tx *gorm.DB) error {
		companyName := config.Conf.Admin.CompanyName
		if companyName == "" {
			companyName = config.Conf.Admin.Name
		}
		companyStore := companystore.NewInstance(tx)
		company, err := companyStore.FindByName(companyName)
		if err != nil {
			return errors.Wrap(err, "ошибка поиска компании")
		}
		companyID := ""
		if company != nil {
			companyID = company.ID
		} else {
			companyID, err = companyStore.Create(dbmodels.Company{Name: companyName, IsActive: true})
			if err != nil {
				return errors.Wrap(err, "ошибка создания компании")
			}
		}
		password, err := authutils.HashPassword(config.Conf.Admin.Password)
		if err != nil {
			return err
		}
		_, err = usersstore.NewInstance(tx).Create(dbmodels.User{
			CompanyID: companyID,
			Password:  password,
			FirstName: config.Conf.Admin.Name,
			Email:     email,
			IsActive:  true,
			Role:      models.CompanyAdminRole,
		})
		return err
	})
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора")
		return
	}
	log.WithField("email", email).Info("добавлен администратор компании")
}

// fillStageColors этапы без цвета получают цвет по умолчанию по порядковому номеру
func fillStageColors() {
	list := []dbmodels.PipelineStage{}
	err := DB.
		Where("color = '' or color is null").
		Find(&list).
		Error
	if err != nil {
		log.WithError(err).Error("ошибка получения этапов подбора без цвета")
		return
	}
	for _, rec := range list {
		err = DB.Model(&dbmodels.PipelineStage{}).
			Where("id = ?", rec.ID).
			Update("color", dbmodels.StageColor(rec.StageOrder-1)).
			Error
		if err != nil {
			log.WithError(err).
				WithField("stage_id", rec.ID).
				Error("ошибка заполнения цвета этапа подбора")
		}
	}
}
