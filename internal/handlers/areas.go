package handlers

import (
	"errors"
	"net/http"

	"lifehub/backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

type AreaHandler struct {
	db             *gorm.DB
	areaService    services.AreaService
	projectService services.ProjectService
	taskService    services.TaskService
}

func NewAreaHandler(db *gorm.DB, areaService services.AreaService, projectService services.ProjectService, taskService services.TaskService) *AreaHandler {
	return &AreaHandler{
		db:             db,
		areaService:    areaService,
		projectService: projectService,
		taskService:    taskService,
	}
}

// ListAreas renders active areas newest first, with all projects and tasks
// along for the per-area overview.
func (h *AreaHandler) ListAreas(c *gin.Context) {
	areas, err := h.areaService.ListActiveAreas(h.db)
	if err != nil {
		handleEntityError(c, err, "area")
		return
	}
	projects, err := h.projectService.ListProjects(h.db)
	if err != nil {
		handleEntityError(c, err, "project")
		return
	}
	tasks, err := h.taskService.ListTasks(h.db)
	if err != nil {
		handleEntityError(c, err, "task")
		return
	}

	c.HTML(http.StatusOK, "areas.html", gin.H{
		"areas":    areas,
		"projects": projects,
		"tasks":    tasks,
		"flash":    takeFlash(c),
	})
}

func (h *AreaHandler) CreateArea(c *gin.Context) {
	title := c.PostForm("title")
	archived := c.PostForm("archive") == "on"

	_, err := h.areaService.CreateArea(h.db, title, archived)
	switch {
	case errors.Is(err, services.ErrTitleRequired):
		setFlash(c, "danger", "Title is required")
	case errors.Is(err, services.ErrTitleTooLong):
		setFlash(c, "danger", "Title is too long")
	case errors.Is(err, services.ErrDuplicateTitle):
		setFlash(c, "danger", "Area already exists.")
	case err != nil:
		handleEntityError(c, err, "area")
		return
	default:
		setFlash(c, "success", "Area created.")
	}

	c.Redirect(http.StatusFound, "/areas")
}

func (h *AreaHandler) EditAreaForm(c *gin.Context) {
	id := uuid.FromStringOrNil(c.Param("id"))
	area, err := h.areaService.GetAreaByID(h.db, id)
	if err != nil {
		handleEntityError(c, err, "area")
		return
	}

	c.HTML(http.StatusOK, "edit_area.html", gin.H{
		"area":  area,
		"flash": takeFlash(c),
	})
}

// EditArea applies either an archive request or a title edit, never both:
// an archived submission discards the title field entirely.
func (h *AreaHandler) EditArea(c *gin.Context) {
	id := uuid.FromStringOrNil(c.Param("id"))

	edit := services.AreaEdit{
		Kind:  services.ContentEdit,
		Title: c.PostForm("title"),
	}
	if c.PostForm("archive") == "on" {
		edit.Kind = services.ArchiveEdit
	}

	if err := h.areaService.UpdateArea(h.db, id, edit); err != nil {
		handleEntityError(c, err, "area")
		return
	}

	if edit.Kind == services.ArchiveEdit {
		setFlash(c, "warning", "Area archived")
	} else {
		setFlash(c, "success", "Area edited.")
	}
	c.Redirect(http.StatusFound, "/areas")
}

func (h *AreaHandler) DeleteArea(c *gin.Context) {
	id := uuid.FromStringOrNil(c.Param("id"))

	if err := h.areaService.DeleteArea(h.db, id); err != nil {
		handleEntityError(c, err, "area")
		return
	}

	setFlash(c, "danger", "Area deleted.")
	c.Redirect(http.StatusFound, "/areas")
}

func (h *AreaHandler) UnarchiveArea(c *gin.Context) {
	id := uuid.FromStringOrNil(c.Param("id"))

	if err := h.areaService.UnarchiveArea(h.db, id); err != nil {
		handleEntityError(c, err, "area")
		return
	}

	setFlash(c, "warning", "Area unarchived.")
	c.Redirect(http.StatusFound, "/archive")
}
