package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"lifehub/backend/internal/handlers"
	"lifehub/backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

func setupTaskRouter(taskSvc *MockTaskService, areaSvc *MockAreaService, projectSvc *MockProjectService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.LoadHTMLGlob("../../web/templates/*.html")

	handler := handlers.NewTaskHandler(nil, taskSvc, areaSvc, projectSvc)
	router.GET("/tasks", handler.ListTasks)
	router.POST("/tasks", handler.CreateTask)
	router.GET("/tasks/edit/:id", handler.EditTaskForm)
	router.POST("/tasks/edit/:id", handler.EditTask)
	router.POST("/delete_task/:id", handler.DeleteTask)
	router.POST("/unarchive_task/:id", handler.UnarchiveTask)
	return router
}

func TestCreateTaskWithSource(t *testing.T) {
	taskSvc := &MockTaskService{}
	router := setupTaskRouter(taskSvc, &MockAreaService{}, &MockProjectService{})

	w := postForm(router, "/tasks", url.Values{
		"title":          {"Long run"},
		"content":        {"20k around the lake"},
		"resource_title": {"Training plan"},
		"resource_type":  {"article"},
	})

	if w.Code != http.StatusFound {
		t.Errorf("Expected status %d, got %d", http.StatusFound, w.Code)
	}
	if location := w.Header().Get("Location"); location != "/tasks" {
		t.Errorf("Expected redirect to /tasks, got %q", location)
	}
	category, message := flashOf(t, w)
	if category != "success" || message != "Task created with source" {
		t.Errorf("Expected success flash 'Task created with source', got %q %q", category, message)
	}
	if len(taskSvc.tasks) != 1 {
		t.Errorf("Expected 1 task created, got %d", len(taskSvc.tasks))
	}
}

func TestCreateTaskWithoutSource(t *testing.T) {
	taskSvc := &MockTaskService{}
	router := setupTaskRouter(taskSvc, &MockAreaService{}, &MockProjectService{})

	w := postForm(router, "/tasks", url.Values{
		"title":   {"Long run"},
		"content": {"20k around the lake"},
	})

	if w.Code != http.StatusFound {
		t.Errorf("Expected status %d, got %d", http.StatusFound, w.Code)
	}
	category, message := flashOf(t, w)
	if category != "warning" || message != "Task created without a source" {
		t.Errorf("Expected warning flash 'Task created without a source', got %q %q", category, message)
	}
}

func TestCreateTaskMissingTitle(t *testing.T) {
	taskSvc := &MockTaskService{}
	router := setupTaskRouter(taskSvc, &MockAreaService{}, &MockProjectService{})

	w := postForm(router, "/tasks", url.Values{"content": {"20k"}})

	if w.Code != http.StatusFound {
		t.Errorf("Expected status %d, got %d", http.StatusFound, w.Code)
	}
	category, message := flashOf(t, w)
	if category != "danger" || message != "Title is required" {
		t.Errorf("Expected danger flash 'Title is required', got %q %q", category, message)
	}
	if len(taskSvc.tasks) != 0 {
		t.Errorf("Expected no task created, got %d", len(taskSvc.tasks))
	}
}

func TestCreateTaskMissingContent(t *testing.T) {
	taskSvc := &MockTaskService{}
	router := setupTaskRouter(taskSvc, &MockAreaService{}, &MockProjectService{})

	w := postForm(router, "/tasks", url.Values{"title": {"Long run"}})

	if w.Code != http.StatusFound {
		t.Errorf("Expected status %d, got %d", http.StatusFound, w.Code)
	}
	category, message := flashOf(t, w)
	if category != "warning" || message != "No content has been added" {
		t.Errorf("Expected warning flash 'No content has been added', got %q %q", category, message)
	}
	if len(taskSvc.tasks) != 0 {
		t.Errorf("Expected no task created, got %d", len(taskSvc.tasks))
	}
}

func TestEditTaskContent(t *testing.T) {
	taskSvc := &MockTaskService{}
	router := setupTaskRouter(taskSvc, &MockAreaService{}, &MockProjectService{})

	id := uuid.Must(uuid.NewV4())
	areaID := uuid.Must(uuid.NewV4())
	w := postForm(router, "/tasks/edit/"+id.String(), url.Values{
		"title":   {"Recovery run"},
		"content": {"5k easy"},
		"due":     {"friday"},
		"area":    {areaID.String()},
	})

	if w.Code != http.StatusFound {
		t.Errorf("Expected status %d, got %d", http.StatusFound, w.Code)
	}
	category, message := flashOf(t, w)
	if category != "success" || message != "Task edited." {
		t.Errorf("Expected success flash 'Task edited.', got %q %q", category, message)
	}
	edit := taskSvc.lastEdit
	if edit.Kind != services.ContentEdit {
		t.Errorf("Expected content edit, got kind %d", edit.Kind)
	}
	if edit.Title != "Recovery run" || edit.Content != "5k easy" || edit.DueDate != "friday" || edit.AreaID != areaID {
		t.Errorf("Edit fields not carried through: %+v", edit)
	}
}

func TestEditTaskArchiveDiscardsFields(t *testing.T) {
	taskSvc := &MockTaskService{}
	router := setupTaskRouter(taskSvc, &MockAreaService{}, &MockProjectService{})

	id := uuid.Must(uuid.NewV4())
	w := postForm(router, "/tasks/edit/"+id.String(), url.Values{
		"title":   {"Renamed"},
		"content": {"changed"},
		"archive": {"on"},
	})

	if w.Code != http.StatusFound {
		t.Errorf("Expected status %d, got %d", http.StatusFound, w.Code)
	}
	category, message := flashOf(t, w)
	if category != "warning" || message != "Task archived." {
		t.Errorf("Expected warning flash 'Task archived.', got %q %q", category, message)
	}
	if taskSvc.lastEdit.Kind != services.ArchiveEdit {
		t.Errorf("Expected archive edit, got kind %d", taskSvc.lastEdit.Kind)
	}
}

func TestEditTaskNotFound(t *testing.T) {
	taskSvc := &MockTaskService{notFound: true}
	router := setupTaskRouter(taskSvc, &MockAreaService{}, &MockProjectService{})

	id := uuid.Must(uuid.NewV4())
	w := postForm(router, "/tasks/edit/"+id.String(), url.Values{"title": {"Run"}, "content": {"5k"}})

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status %d, got %d", http.StatusNotFound, w.Code)
	}
	if !strings.Contains(w.Body.String(), "task not found") {
		t.Errorf("Expected 'task not found' in body, got %q", w.Body.String())
	}
}

func TestDeleteTask(t *testing.T) {
	taskSvc := &MockTaskService{}
	router := setupTaskRouter(taskSvc, &MockAreaService{}, &MockProjectService{})

	id := uuid.Must(uuid.NewV4())
	w := postForm(router, "/delete_task/"+id.String(), url.Values{})

	if w.Code != http.StatusFound {
		t.Errorf("Expected status %d, got %d", http.StatusFound, w.Code)
	}
	category, message := flashOf(t, w)
	if category != "danger" || message != "Task deleted." {
		t.Errorf("Expected danger flash 'Task deleted.', got %q %q", category, message)
	}
}

func TestUnarchiveTaskRedirectsToArchive(t *testing.T) {
	taskSvc := &MockTaskService{}
	router := setupTaskRouter(taskSvc, &MockAreaService{}, &MockProjectService{})

	id := uuid.Must(uuid.NewV4())
	w := postForm(router, "/unarchive_task/"+id.String(), url.Values{})

	if w.Code != http.StatusFound {
		t.Errorf("Expected status %d, got %d", http.StatusFound, w.Code)
	}
	if location := w.Header().Get("Location"); location != "/archive" {
		t.Errorf("Expected redirect to /archive, got %q", location)
	}
	category, message := flashOf(t, w)
	if category != "warning" || message != "Task unarchived." {
		t.Errorf("Expected warning flash 'Task unarchived.', got %q %q", category, message)
	}
}

func TestListTasksShowsFlashOnce(t *testing.T) {
	taskSvc := &MockTaskService{}
	router := setupTaskRouter(taskSvc, &MockAreaService{}, &MockProjectService{})

	// Create to obtain the flash cookie, then replay it on the next GET.
	created := postForm(router, "/tasks", url.Values{
		"title":   {"Long run"},
		"content": {"20k"},
	})

	req, _ := http.NewRequest("GET", "/tasks", nil)
	for _, cookie := range created.Result().Cookies() {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, w.Code)
	}
	if !strings.Contains(w.Body.String(), "Task created without a source") {
		t.Errorf("Expected flash message in rendered page")
	}

	// The render clears the cookie so a reload will not repeat the flash.
	cleared := false
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "lifehub_flash" && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Errorf("Expected flash cookie to be cleared after render")
	}
}
