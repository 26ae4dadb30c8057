package models

import (
	"time"

	"github.com/google/uuid"
)

// EligibilityCheck is an append-only audit row; re-running a check inserts a
// new row and never touches prior ones.
type EligibilityCheck struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID          uuid.UUID `gorm:"type:uuid;not null;index" json:"student_id"`
	Semester           string    `gorm:"size:10;not null" json:"semester"`
	FeeCleared         bool      `gorm:"not null" json:"fee_cleared"`
	AttendancePercent  float64   `gorm:"not null" json:"attendance_percent"`
	CourseworkPercent  float64   `gorm:"not null" json:"coursework_percent"`
	AssessmentsAverage float64   `gorm:"not null" json:"assessments_average"`
	AssessmentsCleared bool      `gorm:"not null" json:"assessments_cleared"`
	FinalDecision      string    `gorm:"size:20;not null" json:"final_decision"`
	CheckedBy          string    `gorm:"size:255;not null" json:"checked_by"`
	CheckedOn          time.Time `gorm:"not null" json:"checked_on"`
}
