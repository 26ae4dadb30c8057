package models

import (
	"time"

	"github.com/google/uuid"
)

type ExamPaper struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ExamID      uuid.UUID `gorm:"type:uuid;not null" json:"exam_id"`
	SubjectID   uuid.UUID `gorm:"type:uuid;not null" json:"subject_id"`
	GeneratedOn time.Time `gorm:"not null" json:"generated_on"`

	// Versioned part-composition metadata (see handlers.PaperPartMeta),
	// stored as JSON and never interpreted beyond persistence.
	PaperMeta *string `gorm:"type:text" json:"paper_meta,omitempty"`

	Exam    Exam    `gorm:"foreignkey:ExamID" json:"-"`
	Subject Subject `gorm:"foreignkey:SubjectID" json:"-"`
}
