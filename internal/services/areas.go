package services

import (
	"errors"

	"lifehub/backend/internal/models"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

// AreaEdit carries one edit submission for an area. A ContentEdit updates
// the title only, an ArchiveEdit sets the archive flag and nothing else.
type AreaEdit struct {
	Kind  EditKind
	Title string
}

type AreaService interface {
	CreateArea(db *gorm.DB, title string, archive bool) (models.Area, error)
	GetAreaByID(db *gorm.DB, id uuid.UUID) (models.Area, error)
	ListActiveAreas(db *gorm.DB) ([]models.Area, error)
	ListAreas(db *gorm.DB) ([]models.Area, error)
	ListArchivedAreas(db *gorm.DB) ([]models.Area, error)
	UpdateArea(db *gorm.DB, id uuid.UUID, edit AreaEdit) error
	UnarchiveArea(db *gorm.DB, id uuid.UUID) error
	DeleteArea(db *gorm.DB, id uuid.UUID) error
}

type AreaServiceImpl struct{}

func NewAreaService() *AreaServiceImpl {
	return &AreaServiceImpl{}
}

// CreateArea rejects empty and over-length titles, and titles already taken
// by any area, archived ones included. The duplicate check and the insert
// run in one transaction, with the unique index on title as backstop.
func (s *AreaServiceImpl) CreateArea(db *gorm.DB, title string, archive bool) (models.Area, error) {
	if title == "" {
		return models.Area{}, ErrTitleRequired
	}
	if len(title) > 100 {
		return models.Area{}, ErrTitleTooLong
	}

	area := models.Area{
		ID:      uuid.Must(uuid.NewV4()),
		Title:   title,
		Archive: archive,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Area{}).Where("title = ?", title).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateTitle
		}
		return tx.Create(&area).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Area{}, ErrDuplicateTitle
		}
		return models.Area{}, err
	}

	return area, nil
}

func (s *AreaServiceImpl) GetAreaByID(db *gorm.DB, id uuid.UUID) (models.Area, error) {
	var area models.Area
	result := db.Where("id = ?", id).First(&area)
	return area, result.Error
}

func (s *AreaServiceImpl) ListActiveAreas(db *gorm.DB) ([]models.Area, error) {
	var areas []models.Area
	result := db.Where("archive = ?", false).Order("created DESC").Find(&areas)
	return areas, result.Error
}

func (s *AreaServiceImpl) ListAreas(db *gorm.DB) ([]models.Area, error) {
	var areas []models.Area
	result := db.Find(&areas)
	return areas, result.Error
}

func (s *AreaServiceImpl) ListArchivedAreas(db *gorm.DB) ([]models.Area, error) {
	var areas []models.Area
	result := db.Where("archive = ?", true).Find(&areas)
	return areas, result.Error
}

func (s *AreaServiceImpl) UpdateArea(db *gorm.DB, id uuid.UUID, edit AreaEdit) error {
	var area models.Area
	if err := db.Where("id = ?", id).First(&area).Error; err != nil {
		return err
	}

	if edit.Kind == ArchiveEdit {
		return db.Model(&area).Update("archive", true).Error
	}
	return db.Model(&area).Update("title", edit.Title).Error
}

func (s *AreaServiceImpl) UnarchiveArea(db *gorm.DB, id uuid.UUID) error {
	var area models.Area
	if err := db.Where("id = ?", id).First(&area).Error; err != nil {
		return err
	}
	return db.Model(&area).Update("archive", false).Error
}

// DeleteArea removes the area for good and clears the reference on any
// project or task that pointed at it, so no dangling ids survive.
func (s *AreaServiceImpl) DeleteArea(db *gorm.DB, id uuid.UUID) error {
	var area models.Area
	if err := db.Where("id = ?", id).First(&area).Error; err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Project{}).Where("area_id = ?", id).Update("area_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Task{}).Where("area_id = ?", id).Update("area_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&area).Error
	})
}
