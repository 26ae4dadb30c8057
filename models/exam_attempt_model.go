package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	AttemptStatusSubmitted = "Submitted"
	AttemptStatusGraded    = "Graded"
)

type ExamAttempt struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID   uuid.UUID `gorm:"type:uuid;not null;index" json:"student_id"`
	PaperID     uuid.UUID `gorm:"type:uuid;not null" json:"paper_id"`
	ExamID      uuid.UUID `gorm:"type:uuid;not null" json:"exam_id"`
	StartedOn   time.Time `gorm:"not null" json:"started_on"`
	SubmittedOn time.Time `gorm:"not null" json:"submitted_on"`
	Status      string    `gorm:"size:20;not null;default:'Submitted'" json:"status"`

	// MCQ answers as submitted (question id -> selected option), stored raw.
	AnswerJSON *string `gorm:"type:text" json:"answer_json,omitempty"`
	// Reference to an externally stored descriptive answer sheet.
	FilePath *string `gorm:"size:500" json:"file_path,omitempty"`

	Student User      `gorm:"foreignkey:StudentID" json:"-"`
	Paper   ExamPaper `gorm:"foreignkey:PaperID" json:"-"`
}
