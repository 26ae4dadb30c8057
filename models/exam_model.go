package models

import (
	"time"

	"github.com/google/uuid"
)

type Exam struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ExamName   string     `gorm:"size:255;not null" json:"exam_name"`
	TotalMarks float64    `gorm:"not null;default:100" json:"total_marks"`
	ExamDate   *time.Time `json:"exam_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
