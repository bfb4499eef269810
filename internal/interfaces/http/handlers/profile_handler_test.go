package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/myanimal/petcare-service/internal/application"
	"github.com/myanimal/petcare-service/internal/domain"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func profileRouter(h *ProfileHandler) http.Handler {
	r := chi.NewRouter()
	r.Put("/user-name/{id}", h.UpdateName)
	r.Get("/users", h.List)
	r.Get("/users/{id}", h.Get)
	r.Put("/users/{id}", h.Update)
	r.Get("/api/me", h.Me)
	return r
}

func TestProfileHandler_Update(t *testing.T) {
	id := ulid.Make()

	t.Run("new image supersedes the old one", func(t *testing.T) {
		svc := new(mockProfileService)
		files := new(mockFileStore)
		files.On("Save", "me.png", mock.Anything).Return("/uploads/new.png", nil)
		files.On("Discard", []string{"/uploads/old.png"}).Return()
		svc.On("UpdateProfile", mock.Anything, id, application.ProfileUpdate{
			Name:    "Asha",
			UserImg: "/uploads/new.png",
		}).Return([]string{"/uploads/old.png"}, nil)

		req := multipartRequest(t, http.MethodPut, "/users/"+id.String(),
			map[string]string{"name": "Asha"}, map[string]string{"userImg": "me.png"})
		w := httptest.NewRecorder()
		profileRouter(NewProfileHandler(svc, files, zap.NewNop())).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"User updated successfully"}`, w.Body.String())
		files.AssertExpectations(t)
		svc.AssertExpectations(t)
	})

	t.Run("failed update drops the new image", func(t *testing.T) {
		svc := new(mockProfileService)
		files := new(mockFileStore)
		files.On("Save", "me.png", mock.Anything).Return("/uploads/new.png", nil)
		files.On("Discard", []string{"/uploads/new.png"}).Return()
		svc.On("UpdateProfile", mock.Anything, id, mock.Anything).Return(nil, domain.NewNotFoundError("User"))

		req := multipartRequest(t, http.MethodPut, "/users/"+id.String(), nil, map[string]string{"userImg": "me.png"})
		w := httptest.NewRecorder()
		profileRouter(NewProfileHandler(svc, files, zap.NewNop())).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		files.AssertExpectations(t)
	})

	t.Run("malformed id", func(t *testing.T) {
		svc := new(mockProfileService)
		req := multipartRequest(t, http.MethodPut, "/users/42", map[string]string{"name": "Asha"}, nil)
		w := httptest.NewRecorder()
		profileRouter(NewProfileHandler(svc, new(mockFileStore), zap.NewNop())).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestProfileHandler_UpdateName(t *testing.T) {
	id := ulid.Make()
	svc := new(mockProfileService)
	svc.On("UpdateName", mock.Anything, id, "Bruno").Return(nil)

	req := httptest.NewRequest(http.MethodPut, "/user-name/"+id.String(), bytes.NewBufferString(`{"name":"Bruno"}`))
	w := httptest.NewRecorder()
	profileRouter(NewProfileHandler(svc, new(mockFileStore), zap.NewNop())).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "Name updated successfully.", body["message"])
	assert.Equal(t, id.String(), body["userId"])
}

func TestProfileHandler_Me(t *testing.T) {
	id := ulid.Make()
	phone := "9876543210"

	t.Run("session subject", func(t *testing.T) {
		svc := new(mockProfileService)
		svc.On("GetProfile", mock.Anything, id).Return(&domain.Profile{ID: id, PhoneNumber: phone}, nil)
		handler := NewProfileHandler(svc, new(mockFileStore), zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req = req.WithContext(domain.WithSubject(req.Context(), id.String()))
		w := httptest.NewRecorder()
		handler.Me(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var body struct {
			User domain.Profile `json:"user"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, phone, body.User.PhoneNumber)
	})

	t.Run("no subject", func(t *testing.T) {
		handler := NewProfileHandler(new(mockProfileService), new(mockFileStore), zap.NewNop())
		w := httptest.NewRecorder()
		handler.Me(w, httptest.NewRequest(http.MethodGet, "/api/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
