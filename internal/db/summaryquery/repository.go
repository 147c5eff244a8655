package summaryquery

import (
	"time"

	"gorm.io/gorm"
	"ulascansenturk/weather-summary/internal/weather"
)

type Repository interface {
	LogSummaryQuery(requestID string, coord weather.Coordinate, outcome string, upstreamStatus int, elapsed time.Duration) error
	GetRecentSummaryQuery(coord weather.Coordinate) (*SummaryQuery, error)
}

type SummarySQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &SummarySQLRepository{db: db}
}

func (r *SummarySQLRepository) LogSummaryQuery(requestID string, coord weather.Coordinate, outcome string, upstreamStatus int, elapsed time.Duration) error {
	query := SummaryQuery{
		RequestID:      requestID,
		Latitude:       coord.Latitude,
		Longitude:      coord.Longitude,
		Outcome:        outcome,
		UpstreamStatus: upstreamStatus,
		ElapsedMs:      elapsed.Milliseconds(),
		CreatedAt:      time.Now(),
	}

	return r.db.Create(&query).Error
}

func (r *SummarySQLRepository) GetRecentSummaryQuery(coord weather.Coordinate) (*SummaryQuery, error) {
	var query SummaryQuery
	err := r.db.Where("latitude = ? AND longitude = ?", coord.Latitude, coord.Longitude).
		Order("created_at DESC").
		First(&query).Error
	if err != nil {
		return nil, err
	}
	return &query, nil
}
