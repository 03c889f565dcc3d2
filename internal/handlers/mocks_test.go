package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"lifehub/backend/internal/models"
	"lifehub/backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

type MockAreaService struct {
	areas      []models.Area
	createErr  error
	notFound   bool
	lastEdit   services.AreaEdit
	deletedIDs []uuid.UUID
}

func (m *MockAreaService) CreateArea(db *gorm.DB, title string, archive bool) (models.Area, error) {
	if title == "" {
		return models.Area{}, services.ErrTitleRequired
	}
	if m.createErr != nil {
		return models.Area{}, m.createErr
	}
	area := models.Area{ID: uuid.Must(uuid.NewV4()), Title: title, Archive: archive}
	m.areas = append(m.areas, area)
	return area, nil
}

func (m *MockAreaService) GetAreaByID(db *gorm.DB, id uuid.UUID) (models.Area, error) {
	if m.notFound {
		return models.Area{}, gorm.ErrRecordNotFound
	}
	return models.Area{ID: id, Title: "Health"}, nil
}

func (m *MockAreaService) ListActiveAreas(db *gorm.DB) ([]models.Area, error) {
	return m.areas, nil
}

func (m *MockAreaService) ListAreas(db *gorm.DB) ([]models.Area, error) {
	return m.areas, nil
}

func (m *MockAreaService) ListArchivedAreas(db *gorm.DB) ([]models.Area, error) {
	var archived []models.Area
	for _, area := range m.areas {
		if area.Archive {
			archived = append(archived, area)
		}
	}
	return archived, nil
}

func (m *MockAreaService) UpdateArea(db *gorm.DB, id uuid.UUID, edit services.AreaEdit) error {
	if m.notFound {
		return gorm.ErrRecordNotFound
	}
	m.lastEdit = edit
	return nil
}

func (m *MockAreaService) UnarchiveArea(db *gorm.DB, id uuid.UUID) error {
	if m.notFound {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (m *MockAreaService) DeleteArea(db *gorm.DB, id uuid.UUID) error {
	if m.notFound {
		return gorm.ErrRecordNotFound
	}
	m.deletedIDs = append(m.deletedIDs, id)
	return nil
}

type MockProjectService struct {
	projects  []models.Project
	createErr error
	notFound  bool
	lastEdit  services.ProjectEdit
}

func (m *MockProjectService) CreateProject(db *gorm.DB, title, dueDate string, areaID uuid.UUID, archive bool) (models.Project, error) {
	if title == "" {
		return models.Project{}, services.ErrTitleRequired
	}
	if dueDate == "" {
		return models.Project{}, services.ErrDueDateRequired
	}
	if m.createErr != nil {
		return models.Project{}, m.createErr
	}
	project := models.Project{ID: uuid.Must(uuid.NewV4()), Title: title, DueDate: dueDate, Archive: archive}
	m.projects = append(m.projects, project)
	return project, nil
}

func (m *MockProjectService) GetProjectByID(db *gorm.DB, id uuid.UUID) (models.Project, error) {
	if m.notFound {
		return models.Project{}, gorm.ErrRecordNotFound
	}
	return models.Project{ID: id, Title: "Marathon", DueDate: "spring"}, nil
}

func (m *MockProjectService) ListActiveProjects(db *gorm.DB) ([]models.Project, error) {
	return m.projects, nil
}

func (m *MockProjectService) ListProjects(db *gorm.DB) ([]models.Project, error) {
	return m.projects, nil
}

func (m *MockProjectService) ListArchivedProjects(db *gorm.DB) ([]models.Project, error) {
	return nil, nil
}

func (m *MockProjectService) UpdateProject(db *gorm.DB, id uuid.UUID, edit services.ProjectEdit) error {
	if m.notFound {
		return gorm.ErrRecordNotFound
	}
	m.lastEdit = edit
	return nil
}

func (m *MockProjectService) UnarchiveProject(db *gorm.DB, id uuid.UUID) error {
	if m.notFound {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (m *MockProjectService) DeleteProject(db *gorm.DB, id uuid.UUID) error {
	if m.notFound {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type MockTaskService struct {
	tasks    []models.Task
	notFound bool
	lastEdit services.TaskEdit
}

func (m *MockTaskService) CreateTask(db *gorm.DB, input services.TaskInput) (models.Task, bool, error) {
	if input.Title == "" {
		return models.Task{}, false, services.ErrTitleRequired
	}
	if input.Content == "" {
		return models.Task{}, false, services.ErrContentRequired
	}
	task := models.Task{ID: uuid.Must(uuid.NewV4()), Title: input.Title, Content: input.Content}
	m.tasks = append(m.tasks, task)
	withSource := input.ResourceTitle != "" || input.ResourceType != ""
	return task, withSource, nil
}

func (m *MockTaskService) GetTaskByID(db *gorm.DB, id uuid.UUID) (models.Task, error) {
	if m.notFound {
		return models.Task{}, gorm.ErrRecordNotFound
	}
	return models.Task{ID: id, Title: "Long run", Content: "20k"}, nil
}

func (m *MockTaskService) GetTaskSources(db *gorm.DB, taskID uuid.UUID) ([]models.Source, error) {
	return nil, nil
}

func (m *MockTaskService) ListActiveTasks(db *gorm.DB) ([]models.Task, error) {
	return m.tasks, nil
}

func (m *MockTaskService) ListTasks(db *gorm.DB) ([]models.Task, error) {
	return m.tasks, nil
}

func (m *MockTaskService) ListArchivedTasks(db *gorm.DB) ([]models.Task, error) {
	return nil, nil
}

func (m *MockTaskService) UpdateTask(db *gorm.DB, id uuid.UUID, edit services.TaskEdit) error {
	if m.notFound {
		return gorm.ErrRecordNotFound
	}
	m.lastEdit = edit
	return nil
}

func (m *MockTaskService) UnarchiveTask(db *gorm.DB, id uuid.UUID) error {
	if m.notFound {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (m *MockTaskService) DeleteTask(db *gorm.DB, id uuid.UUID) error {
	if m.notFound {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// flashOf extracts the category|message pair the handler left in the
// flash cookie, or empty strings when none was set.
func flashOf(t *testing.T, w *httptest.ResponseRecorder) (string, string) {
	t.Helper()

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name != "lifehub_flash" || cookie.Value == "" {
			continue
		}
		value, err := url.QueryUnescape(cookie.Value)
		if err != nil {
			t.Fatalf("Failed to unescape flash cookie: %v", err)
		}
		parts := strings.SplitN(value, "|", 2)
		if len(parts) != 2 {
			t.Fatalf("Malformed flash cookie: %q", value)
		}
		return parts[0], parts[1]
	}
	return "", ""
}
