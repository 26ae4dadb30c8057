package models

import (
	"time"

	"github.com/google/uuid"
)

// Mark is the authoritative score for one attempt; at most one row per
// attempt, upserted by manual grading.
type Mark struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	AttemptID     uuid.UUID `gorm:"type:uuid;not null;unique" json:"attempt_id"`
	StudentID     uuid.UUID `gorm:"type:uuid;not null;index" json:"student_id"`
	ExamID        uuid.UUID `gorm:"type:uuid;not null" json:"exam_id"`
	SubjectID     uuid.UUID `gorm:"type:uuid;not null" json:"subject_id"`
	MarksObtained float64   `gorm:"not null" json:"marks_obtained"`
	GradedBy      string    `gorm:"size:255;not null" json:"graded_by"`
	GradeRemarks  string    `gorm:"type:text" json:"grade_remarks"`
	GradedOn      time.Time `gorm:"not null" json:"graded_on"`

	Attempt ExamAttempt `gorm:"foreignkey:AttemptID" json:"-"`
}
