package summaryquery

import (
	"time"
)

const (
	OutcomeOK               = "ok"
	OutcomeUpstreamError    = "upstream_error"
	OutcomeTimedOut         = "timed_out"
	OutcomeInsufficientData = "insufficient_data"
	OutcomeError            = "error"
)

// SummaryQuery is one audited summary request. It stores request metadata
// only, never the weather samples or the generated text.
type SummaryQuery struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	RequestID      string    `json:"request_id" gorm:"column:request_id;uniqueIndex:idx_request_id"`
	Latitude       float64   `json:"latitude" gorm:"index:idx_coordinate"`
	Longitude      float64   `json:"longitude" gorm:"index:idx_coordinate"`
	Outcome        string    `json:"outcome" gorm:"index:idx_outcome"`
	UpstreamStatus int       `json:"upstream_status" gorm:"column:upstream_status"`
	ElapsedMs      int64     `json:"elapsed_ms" gorm:"column:elapsed_ms"`
	CreatedAt      time.Time `json:"created_at" gorm:"index:idx_created_at"`
}

func (SummaryQuery) TableName() string {
	return "summary_queries"
}
