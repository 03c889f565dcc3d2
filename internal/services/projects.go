package services

import (
	"errors"

	"lifehub/backend/internal/models"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

// ProjectEdit carries one edit submission for a project. A ContentEdit
// updates title and area reference; the due date is fixed at creation.
type ProjectEdit struct {
	Kind   EditKind
	Title  string
	AreaID uuid.UUID
}

type ProjectService interface {
	CreateProject(db *gorm.DB, title, dueDate string, areaID uuid.UUID, archive bool) (models.Project, error)
	GetProjectByID(db *gorm.DB, id uuid.UUID) (models.Project, error)
	ListActiveProjects(db *gorm.DB) ([]models.Project, error)
	ListProjects(db *gorm.DB) ([]models.Project, error)
	ListArchivedProjects(db *gorm.DB) ([]models.Project, error)
	UpdateProject(db *gorm.DB, id uuid.UUID, edit ProjectEdit) error
	UnarchiveProject(db *gorm.DB, id uuid.UUID) error
	DeleteProject(db *gorm.DB, id uuid.UUID) error
}

type ProjectServiceImpl struct{}

func NewProjectService() *ProjectServiceImpl {
	return &ProjectServiceImpl{}
}

// CreateProject requires a title, a due date, and an existing area.
// Any missing piece rejects the whole submission with nothing persisted.
func (s *ProjectServiceImpl) CreateProject(db *gorm.DB, title, dueDate string, areaID uuid.UUID, archive bool) (models.Project, error) {
	if title == "" {
		return models.Project{}, ErrTitleRequired
	}
	if dueDate == "" {
		return models.Project{}, ErrDueDateRequired
	}

	var area models.Area
	if err := db.Where("id = ?", areaID).First(&area).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Project{}, ErrAreaNotFound
		}
		return models.Project{}, err
	}

	project := models.Project{
		ID:      uuid.Must(uuid.NewV4()),
		Title:   title,
		AreaID:  &area.ID,
		DueDate: dueDate,
		Archive: archive,
	}
	if err := db.Create(&project).Error; err != nil {
		return models.Project{}, err
	}
	return project, nil
}

func (s *ProjectServiceImpl) GetProjectByID(db *gorm.DB, id uuid.UUID) (models.Project, error) {
	var project models.Project
	result := db.Where("id = ?", id).First(&project)
	return project, result.Error
}

func (s *ProjectServiceImpl) ListActiveProjects(db *gorm.DB) ([]models.Project, error) {
	var projects []models.Project
	result := db.Where("archive = ?", false).Order("created DESC").Find(&projects)
	return projects, result.Error
}

func (s *ProjectServiceImpl) ListProjects(db *gorm.DB) ([]models.Project, error) {
	var projects []models.Project
	result := db.Find(&projects)
	return projects, result.Error
}

func (s *ProjectServiceImpl) ListArchivedProjects(db *gorm.DB) ([]models.Project, error) {
	var projects []models.Project
	result := db.Where("archive = ?", true).Find(&projects)
	return projects, result.Error
}

func (s *ProjectServiceImpl) UpdateProject(db *gorm.DB, id uuid.UUID, edit ProjectEdit) error {
	var project models.Project
	if err := db.Where("id = ?", id).First(&project).Error; err != nil {
		return err
	}

	if edit.Kind == ArchiveEdit {
		return db.Model(&project).Update("archive", true).Error
	}

	// A missing area on edit leaves the project unattached rather than
	// failing the request.
	areaRef := resolveAreaRef(db, edit.AreaID)
	return db.Model(&project).Updates(map[string]interface{}{
		"title":   edit.Title,
		"area_id": areaRef,
	}).Error
}

func (s *ProjectServiceImpl) UnarchiveProject(db *gorm.DB, id uuid.UUID) error {
	var project models.Project
	if err := db.Where("id = ?", id).First(&project).Error; err != nil {
		return err
	}
	return db.Model(&project).Update("archive", false).Error
}

// DeleteProject removes the project and clears the reference on any task
// that pointed at it.
func (s *ProjectServiceImpl) DeleteProject(db *gorm.DB, id uuid.UUID) error {
	var project models.Project
	if err := db.Where("id = ?", id).First(&project).Error; err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Task{}).Where("project_id = ?", id).Update("project_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&project).Error
	})
}

// resolveAreaRef turns a form-supplied id into a nullable reference:
// a zero or unknown id resolves to nil, never to an error.
func resolveAreaRef(db *gorm.DB, id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	var area models.Area
	if err := db.Where("id = ?", id).First(&area).Error; err != nil {
		return nil
	}
	return &area.ID
}
