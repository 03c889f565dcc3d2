package handlers

import (
	"errors"
	"net/http"

	"lifehub/backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

type ProjectHandler struct {
	db             *gorm.DB
	projectService services.ProjectService
	areaService    services.AreaService
	taskService    services.TaskService
}

func NewProjectHandler(db *gorm.DB, projectService services.ProjectService, areaService services.AreaService, taskService services.TaskService) *ProjectHandler {
	return &ProjectHandler{
		db:             db,
		projectService: projectService,
		areaService:    areaService,
		taskService:    taskService,
	}
}

// ListProjects renders active projects newest first; all areas come along
// for the area dropdown on the creation form.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.ListActiveProjects(h.db)
	if err != nil {
		handleEntityError(c, err, "project")
		return
	}
	areas, err := h.areaService.ListAreas(h.db)
	if err != nil {
		handleEntityError(c, err, "area")
		return
	}
	tasks, err := h.taskService.ListTasks(h.db)
	if err != nil {
		handleEntityError(c, err, "task")
		return
	}

	c.HTML(http.StatusOK, "projects.html", gin.H{
		"projects": projects,
		"areas":    areas,
		"tasks":    tasks,
		"flash":    takeFlash(c),
	})
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	title := c.PostForm("title")
	dueDate := c.PostForm("due")
	areaID := uuid.FromStringOrNil(c.PostForm("area"))
	archived := c.PostForm("archive") == "on"

	_, err := h.projectService.CreateProject(h.db, title, dueDate, areaID, archived)
	switch {
	case errors.Is(err, services.ErrTitleRequired), errors.Is(err, services.ErrDueDateRequired):
		setFlash(c, "danger", "Title or due date parameters missing.")
	case errors.Is(err, services.ErrAreaNotFound):
		setFlash(c, "error", "Area missing.")
	case err != nil:
		handleEntityError(c, err, "project")
		return
	default:
		setFlash(c, "success", "Project created.")
	}

	c.Redirect(http.StatusFound, "/projects")
}

func (h *ProjectHandler) EditProjectForm(c *gin.Context) {
	id := uuid.FromStringOrNil(c.Param("id"))
	project, err := h.projectService.GetProjectByID(h.db, id)
	if err != nil {
		handleEntityError(c, err, "project")
		return
	}
	areas, err := h.areaService.ListAreas(h.db)
	if err != nil {
		handleEntityError(c, err, "area")
		return
	}

	c.HTML(http.StatusOK, "edit_project.html", gin.H{
		"project": project,
		"areas":   areas,
		"flash":   takeFlash(c),
	})
}

// EditProject applies either an archive request or a title/area edit; the
// due date is never editable after creation.
func (h *ProjectHandler) EditProject(c *gin.Context) {
	id := uuid.FromStringOrNil(c.Param("id"))

	edit := services.ProjectEdit{
		Kind:   services.ContentEdit,
		Title:  c.PostForm("title"),
		AreaID: uuid.FromStringOrNil(c.PostForm("area")),
	}
	if c.PostForm("archive") == "on" {
		edit.Kind = services.ArchiveEdit
	}

	if err := h.projectService.UpdateProject(h.db, id, edit); err != nil {
		handleEntityError(c, err, "project")
		return
	}

	if edit.Kind == services.ArchiveEdit {
		setFlash(c, "warning", "Project archived")
	} else {
		setFlash(c, "success", "Project edited.")
	}
	c.Redirect(http.StatusFound, "/projects")
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id := uuid.FromStringOrNil(c.Param("id"))

	if err := h.projectService.DeleteProject(h.db, id); err != nil {
		handleEntityError(c, err, "project")
		return
	}

	setFlash(c, "danger", "Project deleted.")
	c.Redirect(http.StatusFound, "/projects")
}

func (h *ProjectHandler) UnarchiveProject(c *gin.Context) {
	id := uuid.FromStringOrNil(c.Param("id"))

	if err := h.projectService.UnarchiveProject(h.db, id); err != nil {
		handleEntityError(c, err, "project")
		return
	}

	setFlash(c, "warning", "Project unarchived.")
	c.Redirect(http.StatusFound, "/archive")
}
