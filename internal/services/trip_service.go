package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

type TripServiceInterface interface {
	SaveTrip(ctx context.Context, accountId string, req *request_models.SaveTripRequest) (*response_models.TripSummary, error)
	GetTripsByAccountId(ctx context.Context, page int, pageSize int, accountId string) ([]response_models.TripSummary, error)
	GetTripById(ctx context.Context, tripId string, accountId string) (*response_models.TripDetail, error)
	DeleteTrip(ctx context.Context, tripId string, accountId string) error
}

// TripService owns the stored-itinerary lifecycle. The planner hands
// ownership of a TravelItinerary to the caller; this is where the caller
// attaches an identifier and timestamps.
type TripService struct {
	tripRepo repositories.TripRepository
}

func NewTripService(tripRepo repositories.TripRepository) TripServiceInterface {
	return &TripService{tripRepo: tripRepo}
}

func (s *TripService) SaveTrip(ctx context.Context, accountId string, req *request_models.SaveTripRequest) (*response_models.TripSummary, error) {
	if req.Itinerary == nil {
		return nil, utils.ErrInvalidRequest
	}
	if err := req.Request.Validate(); err != nil {
		return nil, err
	}

	doc, err := json.Marshal(req.Itinerary)
	if err != nil {
		return nil, utils.ErrInvalidRequest
	}

	start, _ := utils.ParseDate(req.Request.StartDate)
	end, _ := utils.ParseDate(req.Request.EndDate)

	title := req.Title
	if title == "" {
		title = req.Request.Destination
	}

	record := &db_models.TripRecord{
		AccountID:   accountId,
		Title:       title,
		Destination: req.Request.Destination,
		StartDate:   start.Unix(),
		EndDate:     end.Unix(),
		Degraded:    req.Degraded,
		Document:    string(doc),
	}

	if err := s.tripRepo.CreateTrip(ctx, record); err != nil {
		return nil, utils.ErrDatabaseError
	}

	summary := buildTripSummary(record)
	return &summary, nil
}

func (s *TripService) GetTripsByAccountId(ctx context.Context, page int, pageSize int, accountId string) ([]response_models.TripSummary, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	records, err := s.tripRepo.GetTripsByAccountId(ctx, page, pageSize, accountId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripSummary, 0, len(records))
	for i := range records {
		out = append(out, buildTripSummary(&records[i]))
	}
	return out, nil
}

func (s *TripService) GetTripById(ctx context.Context, tripId string, accountId string) (*response_models.TripDetail, error) {
	record, err := s.tripRepo.GetTripById(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if record == nil || record.AccountID != accountId {
		return nil, utils.ErrTripNotFound
	}

	var itinerary response_models.TravelItinerary
	if err := json.Unmarshal([]byte(record.Document), &itinerary); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.TripDetail{
		TripSummary: buildTripSummary(record),
		Itinerary:   &itinerary,
	}, nil
}

func (s *TripService) DeleteTrip(ctx context.Context, tripId string, accountId string) error {
	err := s.tripRepo.DeleteTrip(ctx, tripId, accountId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrTripNotFound
		}
		return utils.ErrDatabaseError
	}
	return nil
}

func buildTripSummary(record *db_models.TripRecord) response_models.TripSummary {
	return response_models.TripSummary{
		ID:          record.ID.String(),
		Title:       record.Title,
		Destination: record.Destination,
		StartDate:   time.Unix(record.StartDate, 0).UTC().Format(utils.DateLayout),
		EndDate:     time.Unix(record.EndDate, 0).UTC().Format(utils.DateLayout),
		Degraded:    record.Degraded,
		CreatedAt:   record.CreatedAt,
	}
}
