package models

import (
	"time"

	"github.com/google/uuid"
)

// Analysis is the persisted record of one resume analysis. The full payload
// is stored as JSON so GET /result/:id can replay it verbatim; the scalar
// columns exist for querying.
type Analysis struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ResumeName        string    `gorm:"type:text" json:"resume_name"`
	ATSScore          int       `gorm:"not null" json:"ats_score"`
	PredictedCategory string    `gorm:"type:text" json:"predicted_category"`
	RecommendedJob    string    `gorm:"type:text" json:"recommended_job"`
	ResumeText        string    `gorm:"type:text" json:"-"`
	ResultJSON        string    `gorm:"type:text" json:"-"`
	CreatedAt         time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt         time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (Analysis) TableName() string {
	return "analyses"
}
