package models

import "github.com/google/uuid"

// PaperQuestion snapshots a question onto a generated paper. Marks here is
// authoritative for grading even if the bank question is edited later.
type PaperQuestion struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	PaperID    uuid.UUID `gorm:"type:uuid;not null;index" json:"paper_id"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null" json:"question_id"`
	SeqNo      int       `gorm:"not null" json:"seq_no"`
	Marks      float64   `gorm:"not null;default:1" json:"marks"`

	Paper    ExamPaper `gorm:"foreignkey:PaperID" json:"-"`
	Question Question  `gorm:"foreignkey:QuestionID" json:"-"`
}
