package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/myanimal/petcare-service/internal/domain"
	"github.com/myanimal/petcare-service/internal/interfaces/http/errors"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestContactHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockSetup      func(*mockContactRepository)
		expectedStatus int
		expectedFields []string
	}{
		{
			name: "stored",
			body: `{"name":"Meera","email":"meera@example.com","message":"Do you groom cats?"}`,
			mockSetup: func(m *mockContactRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*domain.Contact")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing fields",
			body:           `{"email":"meera@example.com"}`,
			mockSetup:      func(m *mockContactRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedFields: []string{"name", "message"},
		},
		{
			name:           "bad email",
			body:           `{"name":"Meera","email":"meera","message":"hi"}`,
			mockSetup:      func(m *mockContactRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedFields: []string{"email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockContactRepository)
			tt.mockSetup(repo)
			handler := NewContactHandler(repo, zap.NewNop())

			w := httptest.NewRecorder()
			handler.Create(w, httptest.NewRequest(http.MethodPost, "/api/contactdetails", bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedFields != nil {
				var resp errors.ErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				var fields []string
				for _, d := range resp.Details {
					fields = append(fields, d.Field)
				}
				assert.Equal(t, tt.expectedFields, fields)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestContactHandler_Update(t *testing.T) {
	id := ulid.Make()
	r := func(h *ContactHandler) http.Handler {
		router := chi.NewRouter()
		router.Put("/api/contactdetails/{id}", h.Update)
		return router
	}

	t.Run("partial", func(t *testing.T) {
		repo := new(mockContactRepository)
		repo.On("Update", mock.Anything, id, mock.MatchedBy(func(p domain.ContactPatch) bool {
			return p.Name == nil && p.Email == nil && p.Message != nil && *p.Message == "Updated"
		})).Return(nil)

		w := httptest.NewRecorder()
		r(NewContactHandler(repo, zap.NewNop())).ServeHTTP(w,
			httptest.NewRequest(http.MethodPut, "/api/contactdetails/"+id.String(), bytes.NewBufferString(`{"message":"Updated"}`)))

		assert.Equal(t, http.StatusOK, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("nothing to update", func(t *testing.T) {
		repo := new(mockContactRepository)
		w := httptest.NewRecorder()
		r(NewContactHandler(repo, zap.NewNop())).ServeHTTP(w,
			httptest.NewRequest(http.MethodPut, "/api/contactdetails/"+id.String(), bytes.NewBufferString(`{}`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "No fields to update")
	})
}
