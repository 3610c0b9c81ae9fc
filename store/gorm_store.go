package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ramzanpremierleague18-max/rpl-tournament/models"
)

// GormStore persists registrations through GORM (Postgres in production).
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) Insert(reg *models.Registration) error {
	return s.DB.Create(reg).Error
}

func (s *GormStore) GetByID(id uint) (*models.Registration, error) {
	var reg models.Registration
	if err := s.DB.First(&reg, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &reg, nil
}

func (s *GormStore) ListAll() ([]models.Registration, error) {
	var regs []models.Registration
	if err := s.DB.Order("id DESC").Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

func (s *GormStore) UpdateStatus(id uint, status models.PaymentStatus) error {
	res := s.DB.Model(&models.Registration{}).
		Where("id = ?", id).
		Update("payment_status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) Delete(id uint) error {
	res := s.DB.Delete(&models.Registration{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
