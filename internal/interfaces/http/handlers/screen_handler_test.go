package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/myanimal/petcare-service/internal/domain"
	"github.com/myanimal/petcare-service/internal/infrastructure/uploads"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func screenRouter(h *ScreenHandler) http.Handler {
	r := chi.NewRouter()
	r.Post("/api/screens", h.Create)
	r.Put("/api/screens/{id}", h.Update)
	r.Delete("/api/screens/{id}", h.Delete)
	return r
}

func TestScreenHandler_Create(t *testing.T) {
	t.Run("both images required", func(t *testing.T) {
		repo := new(mockScreenRepository)
		files := new(mockFileStore)

		req := multipartRequest(t, http.MethodPost, "/api/screens",
			map[string]string{"name": "Welcome", "description": "First screen"},
			map[string]string{"image": "a.png"})
		w := httptest.NewRecorder()
		screenRouter(NewScreenHandler(repo, files, zap.NewNop())).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"code":"VALIDATION_ERROR","message":"Name, image, detailsimage, and description are required"}`, w.Body.String())
		files.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("second image rejected drops the first", func(t *testing.T) {
		repo := new(mockScreenRepository)
		files := new(mockFileStore)
		files.On("Save", "a.png", uploads.ImagesOnly).Return("/uploads/a.png", nil)
		files.On("Save", "b.gif", uploads.ImagesOnly).Return("", uploads.ErrNotImage)
		files.On("Discard", []string{"/uploads/a.png"}).Return()

		req := multipartRequest(t, http.MethodPost, "/api/screens",
			map[string]string{"name": "Welcome", "description": "First screen"},
			map[string]string{"image": "a.png", "detailsimage": "b.gif"})
		w := httptest.NewRecorder()
		screenRouter(NewScreenHandler(repo, files, zap.NewNop())).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		files.AssertExpectations(t)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("created", func(t *testing.T) {
		repo := new(mockScreenRepository)
		files := new(mockFileStore)
		files.On("Save", "a.png", uploads.ImagesOnly).Return("/uploads/a.png", nil)
		files.On("Save", "b.png", uploads.ImagesOnly).Return("/uploads/b.png", nil)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Screen) bool {
			return s.Image == "/uploads/a.png" && s.DetailsImage == "/uploads/b.png"
		})).Return(nil)

		req := multipartRequest(t, http.MethodPost, "/api/screens",
			map[string]string{"name": "Welcome", "description": "First screen"},
			map[string]string{"image": "a.png", "detailsimage": "b.png"})
		w := httptest.NewRecorder()
		screenRouter(NewScreenHandler(repo, files, zap.NewNop())).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		repo.AssertExpectations(t)
	})
}

func TestScreenHandler_Delete(t *testing.T) {
	id := ulid.Make()
	repo := new(mockScreenRepository)
	files := new(mockFileStore)
	repo.On("Delete", mock.Anything, id).Return([]string{"/uploads/a.png", "/uploads/b.png"}, nil)
	files.On("Discard", []string{"/uploads/a.png", "/uploads/b.png"}).Return()

	req := httptest.NewRequest(http.MethodDelete, "/api/screens/"+id.String(), nil)
	w := httptest.NewRecorder()
	screenRouter(NewScreenHandler(repo, files, zap.NewNop())).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	files.AssertExpectations(t)
}
