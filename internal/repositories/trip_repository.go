package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"voyago/internal/models/db_models"
)

type TripRepository interface {
	CreateTrip(ctx context.Context, record *db_models.TripRecord) error
	GetTripsByAccountId(ctx context.Context, page int, pageSize int, accountId string) ([]db_models.TripRecord, error)
	GetTripById(ctx context.Context, tripId string) (*db_models.TripRecord, error)
	DeleteTrip(ctx context.Context, tripId string, accountId string) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) CreateTrip(ctx context.Context, record *db_models.TripRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *tripRepository) GetTripsByAccountId(ctx context.Context, page int, pageSize int, accountId string) ([]db_models.TripRecord, error) {
	var records []db_models.TripRecord
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountId).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *tripRepository) GetTripById(ctx context.Context, tripId string) (*db_models.TripRecord, error) {
	var record db_models.TripRecord
	err := r.db.WithContext(ctx).
		Where("id = ?", tripId).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *tripRepository) DeleteTrip(ctx context.Context, tripId string, accountId string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", tripId, accountId).
		Delete(&db_models.TripRecord{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
