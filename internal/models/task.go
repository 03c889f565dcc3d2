package models

import (
	"time"

	"github.com/gofrs/uuid"
)

// Task is an actionable item, optionally tied to an Area and/or Project.
type Task struct {
	ID        uuid.UUID  `json:"id" gorm:"primaryKey;type:uuid"`
	Created   time.Time  `json:"created" gorm:"autoCreateTime"`
	Title     string     `json:"title" gorm:"size:100;not null"`
	Content   string     `json:"content" gorm:"type:text"`
	DueDate   string     `json:"due_date" gorm:"size:30"`
	AreaID    *uuid.UUID `json:"area_id" gorm:"type:uuid"`
	ProjectID *uuid.UUID `json:"project_id" gorm:"type:uuid"`
	Archive   bool       `json:"archive" gorm:"not null;default:false"`

	Sources []Source `json:"sources,omitempty" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}
