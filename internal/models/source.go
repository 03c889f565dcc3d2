package models

import "github.com/gofrs/uuid"

// Source is a reference attached to exactly one Task. Sources are only
// ever created as part of task creation and die with their task.
type Source struct {
	ID         uuid.UUID `json:"id" gorm:"primaryKey;type:uuid"`
	Title      string    `json:"title" gorm:"size:100;not null"`
	SourceType string    `json:"source_type" gorm:"size:100"`
	TaskID     uuid.UUID `json:"task_id" gorm:"type:uuid;not null;index"`
}
