package models

import (
	"time"

	"github.com/google/uuid"
)

// StudentBill is owned by the finance module; the engine only reads it for
// the fee-clearance eligibility signal.
type StudentBill struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"student_id"`
	Description string     `gorm:"size:500" json:"description"`
	Amount      float64    `gorm:"not null" json:"amount"`
	Status      string     `gorm:"size:20;not null;default:'Pending'" json:"status"`
	BillDate    time.Time  `gorm:"not null" json:"bill_date"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}
