package models

import (
	"time"

	"github.com/google/uuid"
)

// GeneratedMarksheet is an append-only snapshot of one aggregation run.
type GeneratedMarksheet struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID     uuid.UUID `gorm:"type:uuid;not null;index" json:"student_id"`
	CourseID      uuid.UUID `gorm:"type:uuid;not null" json:"course_id"`
	Semester      string    `gorm:"size:10;not null" json:"semester"`
	MarksheetJSON string    `gorm:"type:text;not null" json:"marksheet_json"`
	TotalMarks    float64   `gorm:"not null" json:"total_marks"`
	ResultStatus  string    `gorm:"size:10;not null" json:"result_status"`

	CreatedAt time.Time `json:"created_at"`
}
