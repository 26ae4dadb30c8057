package models

import (
	"time"

	"github.com/google/uuid"
)

type Course struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CourseName string    `gorm:"size:255;not null" json:"course_name"`
	CourseCode string    `gorm:"size:50;unique" json:"course_code"`

	CreatedAt time.Time `json:"created_at"`
}
