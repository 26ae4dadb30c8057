package models

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceRecord is owned by the attendance module; the engine only reads
// it for the attendance eligibility signal.
type AttendanceRecord struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID      uuid.UUID `gorm:"type:uuid;not null;index" json:"student_id"`
	AttendanceDate time.Time `gorm:"not null" json:"attendance_date"`
	Status         string    `gorm:"size:20;not null" json:"status"`
}
