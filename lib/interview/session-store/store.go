package interviewsessionstore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "mock-interview-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.InterviewSession) (id string, err error)
	GetByID(id string) (rec *dbmodels.InterviewSession, err error)
	Update(id string, state string, data string) error
	Delete(id string) error
	DeleteExpired(updatedBefore time.Time) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.InterviewSession) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.InterviewSession, error) {
	rec := dbmodels.InterviewSession{}
	err := i.db.
		Model(&dbmodels.InterviewSession{}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, state string, data string) error {
	updMap := map[string]interface{}{
		"state": state,
		"data":  data,
	}
	tx := i.db.
		Model(&dbmodels.InterviewSession{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("сессия интервью не найдена")
	}
	return nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.InterviewSession{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	err := i.db.
		Delete(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) DeleteExpired(updatedBefore time.Time) (int64, error) {
	tx := i.db.
		Where("updated_at < ?", updatedBefore).
		Delete(&dbmodels.InterviewSession{})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}
