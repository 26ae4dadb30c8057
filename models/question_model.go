package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	QuestionTypeMCQ         = "mcq"
	QuestionTypeDescriptive = "descriptive"
)

type Question struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SubjectID    uuid.UUID `gorm:"type:uuid;not null" json:"subject_id"`
	AddedBy      string    `gorm:"size:255" json:"added_by"`
	QuestionText string    `gorm:"type:text;not null" json:"question"`
	QuestionType string    `gorm:"size:20;not null;default:'mcq'" json:"question_type"`

	OptionA *string `gorm:"type:text" json:"option_a,omitempty"`
	OptionB *string `gorm:"type:text" json:"option_b,omitempty"`
	OptionC *string `gorm:"type:text" json:"option_c,omitempty"`
	OptionD *string `gorm:"type:text" json:"option_d,omitempty"`

	// Matched case-insensitively during auto-grading. Never serialized.
	CorrectOption *string `gorm:"size:10" json:"-"`

	Marks float64 `gorm:"not null;default:1" json:"marks"`

	Subject Subject `gorm:"foreignkey:SubjectID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
