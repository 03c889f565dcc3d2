package handlers

import (
	"net/http"

	"lifehub/backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PageHandler serves the landing page and the archive view.
type PageHandler struct {
	db             *gorm.DB
	areaService    services.AreaService
	projectService services.ProjectService
	taskService    services.TaskService
}

func NewPageHandler(db *gorm.DB, areaService services.AreaService, projectService services.ProjectService, taskService services.TaskService) *PageHandler {
	return &PageHandler{
		db:             db,
		areaService:    areaService,
		projectService: projectService,
		taskService:    taskService,
	}
}

func (h *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "main.html", gin.H{
		"flash": takeFlash(c),
	})
}

// ArchiveView lists every archived record of all three archivable types as
// three flat lists.
func (h *PageHandler) ArchiveView(c *gin.Context) {
	areas, err := h.areaService.ListArchivedAreas(h.db)
	if err != nil {
		handleEntityError(c, err, "area")
		return
	}
	projects, err := h.projectService.ListArchivedProjects(h.db)
	if err != nil {
		handleEntityError(c, err, "project")
		return
	}
	tasks, err := h.taskService.ListArchivedTasks(h.db)
	if err != nil {
		handleEntityError(c, err, "task")
		return
	}

	c.HTML(http.StatusOK, "archive.html", gin.H{
		"archived_areas":    areas,
		"archived_projects": projects,
		"archived_tasks":    tasks,
		"flash":             takeFlash(c),
	})
}
