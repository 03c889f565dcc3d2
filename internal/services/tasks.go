package services

import (
	"lifehub/backend/internal/models"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

// TaskInput is one task-creation submission, including the optional
// source fields that ride along in the same form.
type TaskInput struct {
	Title         string
	Content       string
	DueDate       string
	AreaID        uuid.UUID
	ProjectID     uuid.UUID
	Archive       bool
	ResourceTitle string
	ResourceType  string
}

// TaskEdit carries one edit submission for a task.
type TaskEdit struct {
	Kind      EditKind
	Title     string
	Content   string
	DueDate   string
	AreaID    uuid.UUID
	ProjectID uuid.UUID
}

type TaskService interface {
	CreateTask(db *gorm.DB, input TaskInput) (models.Task, bool, error)
	GetTaskByID(db *gorm.DB, id uuid.UUID) (models.Task, error)
	GetTaskSources(db *gorm.DB, taskID uuid.UUID) ([]models.Source, error)
	ListActiveTasks(db *gorm.DB) ([]models.Task, error)
	ListTasks(db *gorm.DB) ([]models.Task, error)
	ListArchivedTasks(db *gorm.DB) ([]models.Task, error)
	UpdateTask(db *gorm.DB, id uuid.UUID, edit TaskEdit) error
	UnarchiveTask(db *gorm.DB, id uuid.UUID) error
	DeleteTask(db *gorm.DB, id uuid.UUID) error
}

type TaskServiceImpl struct{}

func NewTaskService() *TaskServiceImpl {
	return &TaskServiceImpl{}
}

// CreateTask requires a title and content; area and project references are
// optional and an unknown id resolves to no reference. When either source
// field is filled in, exactly one Source row is attached in the same
// transaction. The returned bool reports whether a source was attached.
func (s *TaskServiceImpl) CreateTask(db *gorm.DB, input TaskInput) (models.Task, bool, error) {
	if input.Title == "" {
		return models.Task{}, false, ErrTitleRequired
	}
	if input.Content == "" {
		return models.Task{}, false, ErrContentRequired
	}

	task := models.Task{
		ID:        uuid.Must(uuid.NewV4()),
		Title:     input.Title,
		Content:   input.Content,
		DueDate:   input.DueDate,
		AreaID:    resolveAreaRef(db, input.AreaID),
		ProjectID: resolveProjectRef(db, input.ProjectID),
		Archive:   input.Archive,
	}

	withSource := input.ResourceTitle != "" || input.ResourceType != ""

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&task).Error; err != nil {
			return err
		}
		if !withSource {
			return nil
		}
		source := models.Source{
			ID:         uuid.Must(uuid.NewV4()),
			Title:      input.ResourceTitle,
			SourceType: input.ResourceType,
			TaskID:     task.ID,
		}
		return tx.Create(&source).Error
	})
	if err != nil {
		return models.Task{}, false, err
	}

	return task, withSource, nil
}

func (s *TaskServiceImpl) GetTaskByID(db *gorm.DB, id uuid.UUID) (models.Task, error) {
	var task models.Task
	result := db.Where("id = ?", id).First(&task)
	return task, result.Error
}

func (s *TaskServiceImpl) GetTaskSources(db *gorm.DB, taskID uuid.UUID) ([]models.Source, error) {
	var sources []models.Source
	result := db.Where("task_id = ?", taskID).Find(&sources)
	return sources, result.Error
}

func (s *TaskServiceImpl) ListActiveTasks(db *gorm.DB) ([]models.Task, error) {
	var tasks []models.Task
	result := db.Where("archive = ?", false).Order("created DESC").Find(&tasks)
	return tasks, result.Error
}

func (s *TaskServiceImpl) ListTasks(db *gorm.DB) ([]models.Task, error) {
	var tasks []models.Task
	result := db.Find(&tasks)
	return tasks, result.Error
}

func (s *TaskServiceImpl) ListArchivedTasks(db *gorm.DB) ([]models.Task, error) {
	var tasks []models.Task
	result := db.Where("archive = ?", true).Find(&tasks)
	return tasks, result.Error
}

// UpdateTask dispatches on the edit kind: an ArchiveEdit flips only the
// archive flag and discards every other submitted field, a ContentEdit
// applies title, content, due date and both references together.
func (s *TaskServiceImpl) UpdateTask(db *gorm.DB, id uuid.UUID, edit TaskEdit) error {
	var task models.Task
	if err := db.Where("id = ?", id).First(&task).Error; err != nil {
		return err
	}

	if edit.Kind == ArchiveEdit {
		return db.Model(&task).Update("archive", true).Error
	}

	return db.Model(&task).Updates(map[string]interface{}{
		"title":      edit.Title,
		"content":    edit.Content,
		"due_date":   edit.DueDate,
		"area_id":    resolveAreaRef(db, edit.AreaID),
		"project_id": resolveProjectRef(db, edit.ProjectID),
	}).Error
}

func (s *TaskServiceImpl) UnarchiveTask(db *gorm.DB, id uuid.UUID) error {
	var task models.Task
	if err := db.Where("id = ?", id).First(&task).Error; err != nil {
		return err
	}
	return db.Model(&task).Update("archive", false).Error
}

// DeleteTask removes the task and its sources in one transaction; sources
// never outlive their task.
func (s *TaskServiceImpl) DeleteTask(db *gorm.DB, id uuid.UUID) error {
	var task models.Task
	if err := db.Where("id = ?", id).First(&task).Error; err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&models.Source{}).Error; err != nil {
			return err
		}
		return tx.Delete(&task).Error
	})
}

func resolveProjectRef(db *gorm.DB, id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	var project models.Project
	if err := db.Where("id = ?", id).First(&project).Error; err != nil {
		return nil
	}
	return &project.ID
}
