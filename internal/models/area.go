package models

import (
	"time"

	"github.com/gofrs/uuid"
)

// Area is a top-level PARA life category such as Health or Career.
// Titles are unique across all areas, archived ones included.
type Area struct {
	ID      uuid.UUID `json:"id" gorm:"primaryKey;type:uuid"`
	Created time.Time `json:"created" gorm:"autoCreateTime"`
	Title   string    `json:"title" gorm:"size:100;not null;uniqueIndex"`
	Archive bool      `json:"archive" gorm:"not null;default:false"`

	Projects []Project `json:"projects,omitempty" gorm:"foreignKey:AreaID"`
	Tasks    []Task    `json:"tasks,omitempty" gorm:"foreignKey:AreaID"`
}
