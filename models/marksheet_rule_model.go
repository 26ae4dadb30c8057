package models

import (
	"time"

	"github.com/google/uuid"
)

// MarksheetRule maps component keys (mid, final, internal, ...) to percent
// weights for one course; a nil CourseID with IsDefault set is the global
// fallback rule.
type MarksheetRule struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CourseID   *uuid.UUID `gorm:"type:uuid;index" json:"course_id,omitempty"`
	ConfigJSON string     `gorm:"type:text;not null" json:"config_json"`
	IsDefault  bool       `gorm:"not null;default:false" json:"is_default"`

	CreatedAt time.Time `json:"created_at"`
}
