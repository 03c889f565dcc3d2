package models

import (
	"time"

	"github.com/gofrs/uuid"
)

// Project is a bounded effort with a due date, usually belonging to an Area.
// The due date is a free-form string the user types, not a parsed date.
type Project struct {
	ID      uuid.UUID  `json:"id" gorm:"primaryKey;type:uuid"`
	Created time.Time  `json:"created" gorm:"autoCreateTime"`
	Title   string     `json:"title" gorm:"size:100;not null"`
	AreaID  *uuid.UUID `json:"area_id" gorm:"type:uuid"`
	DueDate string     `json:"due_date" gorm:"size:30"`
	Archive bool       `json:"archive" gorm:"not null;default:false"`

	Tasks []Task `json:"tasks,omitempty" gorm:"foreignKey:ProjectID"`
}
