package handlers

import (
	"errors"
	"net/http"

	"lifehub/backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

type TaskHandler struct {
	db             *gorm.DB
	taskService    services.TaskService
	areaService    services.AreaService
	projectService services.ProjectService
}

func NewTaskHandler(db *gorm.DB, taskService services.TaskService, areaService services.AreaService, projectService services.ProjectService) *TaskHandler {
	return &TaskHandler{
		db:             db,
		taskService:    taskService,
		areaService:    areaService,
		projectService: projectService,
	}
}

// ListTasks renders active tasks newest first; all areas and projects come
// along for the dropdowns on the creation form.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskService.ListActiveTasks(h.db)
	if err != nil {
		handleEntityError(c, err, "task")
		return
	}
	areas, err := h.areaService.ListAreas(h.db)
	if err != nil {
		handleEntityError(c, err, "area")
		return
	}
	projects, err := h.projectService.ListProjects(h.db)
	if err != nil {
		handleEntityError(c, err, "project")
		return
	}

	c.HTML(http.StatusOK, "tasks.html", gin.H{
		"tasks":    tasks,
		"areas":    areas,
		"projects": projects,
		"flash":    takeFlash(c),
	})
}

// CreateTask persists a task and, when either resource field is filled in,
// one source alongside it. The flash reports which of the two happened.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	input := services.TaskInput{
		Title:         c.PostForm("title"),
		Content:       c.PostForm("content"),
		DueDate:       c.PostForm("due"),
		AreaID:        uuid.FromStringOrNil(c.PostForm("area")),
		ProjectID:     uuid.FromStringOrNil(c.PostForm("project")),
		Archive:       c.PostForm("archive") == "on",
		ResourceTitle: c.PostForm("resource_title"),
		ResourceType:  c.PostForm("resource_type"),
	}

	_, withSource, err := h.taskService.CreateTask(h.db, input)
	switch {
	case errors.Is(err, services.ErrTitleRequired):
		setFlash(c, "danger", "Title is required")
	case errors.Is(err, services.ErrContentRequired):
		setFlash(c, "warning", "No content has been added")
	case err != nil:
		handleEntityError(c, err, "task")
		return
	case withSource:
		setFlash(c, "success", "Task created with source")
	default:
		setFlash(c, "warning", "Task created without a source")
	}

	c.Redirect(http.StatusFound, "/tasks")
}

func (h *TaskHandler) EditTaskForm(c *gin.Context) {
	id := uuid.FromStringOrNil(c.Param("id"))
	task, err := h.taskService.GetTaskByID(h.db, id)
	if err != nil {
		handleEntityError(c, err, "task")
		return
	}
	areas, err := h.areaService.ListAreas(h.db)
	if err != nil {
		handleEntityError(c, err, "area")
		return
	}
	projects, err := h.projectService.ListProjects(h.db)
	if err != nil {
		handleEntityError(c, err, "project")
		return
	}
	sources, err := h.taskService.GetTaskSources(h.db, id)
	if err != nil {
		handleEntityError(c, err, "source")
		return
	}

	c.HTML(http.StatusOK, "edit_task.html", gin.H{
		"task":     task,
		"areas":    areas,
		"projects": projects,
		"sources":  sources,
		"flash":    takeFlash(c),
	})
}

// EditTask applies either an archive request or a full content edit; when
// the archive box is checked every other submitted field is discarded.
func (h *TaskHandler) EditTask(c *gin.Context) {
	id := uuid.FromStringOrNil(c.Param("id"))

	edit := services.TaskEdit{
		Kind:      services.ContentEdit,
		Title:     c.PostForm("title"),
		Content:   c.PostForm("content"),
		DueDate:   c.PostForm("due"),
		AreaID:    uuid.FromStringOrNil(c.PostForm("area")),
		ProjectID: uuid.FromStringOrNil(c.PostForm("project")),
	}
	if c.PostForm("archive") == "on" {
		edit.Kind = services.ArchiveEdit
	}

	if err := h.taskService.UpdateTask(h.db, id, edit); err != nil {
		handleEntityError(c, err, "task")
		return
	}

	if edit.Kind == services.ArchiveEdit {
		setFlash(c, "warning", "Task archived.")
	} else {
		setFlash(c, "success", "Task edited.")
	}
	c.Redirect(http.StatusFound, "/tasks")
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id := uuid.FromStringOrNil(c.Param("id"))

	if err := h.taskService.DeleteTask(h.db, id); err != nil {
		handleEntityError(c, err, "task")
		return
	}

	setFlash(c, "danger", "Task deleted.")
	c.Redirect(http.StatusFound, "/tasks")
}

func (h *TaskHandler) UnarchiveTask(c *gin.Context) {
	id := uuid.FromStringOrNil(c.Param("id"))

	if err := h.taskService.UnarchiveTask(h.db, id); err != nil {
		handleEntityError(c, err, "task")
		return
	}

	setFlash(c, "warning", "Task unarchived.")
	c.Redirect(http.StatusFound, "/archive")
}
