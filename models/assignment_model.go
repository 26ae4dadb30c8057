package models

import (
	"time"

	"github.com/google/uuid"
)

// Assignment and Submission are owned by the LMS module; the engine only
// counts them for the coursework-completion eligibility signal.
type Assignment struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SubjectID uuid.UUID  `gorm:"type:uuid;not null;index" json:"subject_id"`
	Title     string     `gorm:"size:255;not null" json:"title"`
	DueDate   *time.Time `json:"due_date,omitempty"`

	Subject Subject `gorm:"foreignkey:SubjectID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

type Submission struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	AssignmentID uuid.UUID `gorm:"type:uuid;not null" json:"assignment_id"`
	StudentID    uuid.UUID `gorm:"type:uuid;not null;index" json:"student_id"`
	FilePath     *string   `gorm:"size:500" json:"file_path,omitempty"`
	SubmittedOn  time.Time `gorm:"not null" json:"submitted_on"`

	Assignment Assignment `gorm:"foreignkey:AssignmentID" json:"-"`
}
