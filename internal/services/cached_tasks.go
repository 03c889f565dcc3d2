package services

import (
	"fmt"
	"time"

	"lifehub/backend/internal/cache"
	"lifehub/backend/internal/models"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

const (
	taskKeyPrefix      = "task:"
	activeTasksKey     = "tasks:active"
	taskByIDTTL        = 30 * time.Minute
	activeTasksTTL     = 5 * time.Minute
	taskInvalidatePatt = "task:*"
)

// CachedTaskService decorates a TaskService with read-through caching for
// single-task lookups and the active listing. Every write invalidates both.
type CachedTaskService struct {
	taskService TaskService
	cache       cache.Cache
}

func NewCachedTaskService(taskService TaskService, cacheInstance cache.Cache) *CachedTaskService {
	return &CachedTaskService{
		taskService: taskService,
		cache:       cacheInstance,
	}
}

func (s *CachedTaskService) CreateTask(db *gorm.DB, input TaskInput) (models.Task, bool, error) {
	task, withSource, err := s.taskService.CreateTask(db, input)
	if err != nil {
		return task, withSource, err
	}

	s.cache.Set(taskKeyPrefix+task.ID.String(), task, taskByIDTTL)
	s.cache.Delete(activeTasksKey)

	return task, withSource, nil
}

func (s *CachedTaskService) GetTaskByID(db *gorm.DB, id uuid.UUID) (models.Task, error) {
	cacheKey := taskKeyPrefix + id.String()

	var cachedTask models.Task
	if err := s.cache.Get(cacheKey, &cachedTask); err == nil {
		return cachedTask, nil
	}

	task, err := s.taskService.GetTaskByID(db, id)
	if err != nil {
		return task, err
	}

	s.cache.Set(cacheKey, task, taskByIDTTL)

	return task, nil
}

func (s *CachedTaskService) GetTaskSources(db *gorm.DB, taskID uuid.UUID) ([]models.Source, error) {
	return s.taskService.GetTaskSources(db, taskID)
}

func (s *CachedTaskService) ListActiveTasks(db *gorm.DB) ([]models.Task, error) {
	var cachedTasks []models.Task
	if err := s.cache.Get(activeTasksKey, &cachedTasks); err == nil {
		return cachedTasks, nil
	}

	tasks, err := s.taskService.ListActiveTasks(db)
	if err != nil {
		return tasks, err
	}

	s.cache.Set(activeTasksKey, tasks, activeTasksTTL)

	return tasks, nil
}

func (s *CachedTaskService) ListTasks(db *gorm.DB) ([]models.Task, error) {
	return s.taskService.ListTasks(db)
}

func (s *CachedTaskService) ListArchivedTasks(db *gorm.DB) ([]models.Task, error) {
	return s.taskService.ListArchivedTasks(db)
}

func (s *CachedTaskService) UpdateTask(db *gorm.DB, id uuid.UUID, edit TaskEdit) error {
	if err := s.taskService.UpdateTask(db, id, edit); err != nil {
		return err
	}
	s.invalidate(id)
	return nil
}

func (s *CachedTaskService) UnarchiveTask(db *gorm.DB, id uuid.UUID) error {
	if err := s.taskService.UnarchiveTask(db, id); err != nil {
		return err
	}
	s.invalidate(id)
	return nil
}

func (s *CachedTaskService) DeleteTask(db *gorm.DB, id uuid.UUID) error {
	if err := s.taskService.DeleteTask(db, id); err != nil {
		return err
	}
	s.invalidate(id)
	return nil
}

func (s *CachedTaskService) invalidate(id uuid.UUID) {
	s.cache.Delete(fmt.Sprintf("%s%s", taskKeyPrefix, id.String()))
	s.cache.Delete(activeTasksKey)
	s.cache.DeletePattern(taskInvalidatePatt)
}
