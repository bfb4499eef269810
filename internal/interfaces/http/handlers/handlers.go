package handlers

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"maps"
	"mime/multipart"
	"net/http"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/myanimal/petcare-service/internal/domain"
	"github.com/myanimal/petcare-service/internal/infrastructure/uploads"
	"github.com/myanimal/petcare-service/internal/interfaces/http/errors"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// FileStore keeps uploaded files; it is satisfied by *uploads.Manager
type FileStore interface {
	Save(fh *multipart.FileHeader, policy uploads.Policy) (string, error)
	Discard(paths ...string)
	MaxBytes() int64
}

// MessageResponse is the body of operations that only report success
type MessageResponse struct {
	Message string `json:"message"`
}

const (
	maxFormMemory = 32 << 20
	timeFormat    = time.RFC3339
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondMessage(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusOK, MessageResponse{Message: message})
}

// respondError writes err and logs the failures a caller cannot fix
func respondError(w http.ResponseWriter, logger *zap.Logger, msg string, err error) {
	code := domain.AsError(err).GetCode()
	if errors.StatusFor(code) >= http.StatusInternalServerError {
		logger.Error(msg, zap.Error(err), zap.String("code", code))
	} else {
		logger.Debug(msg, zap.Error(err), zap.String("code", code))
	}
	errors.RespondWithError(w, err)
}

// decodeJSON reads a JSON body into dst
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !stderrors.Is(err, io.EOF) {
		return domain.NewValidationError("Invalid request body")
	}
	return nil
}

// decodeAndValidate reads a JSON body into dst and checks its validate tags
func decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := decodeJSON(r, dst); err != nil {
		return err
	}
	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if !stderrors.As(err, &fieldErrs) {
			return domain.ErrValidation.Wrap(err)
		}
		var errs domain.ValidationErrors
		for _, fe := range fieldErrs {
			errs.Add(fe.Field(), fieldMessage(fe))
		}
		return errs
	}
	return nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "Invalid email format."
	case "gt", "gte", "min":
		return fe.Field() + " must be at least " + fe.Param()
	}
	return fe.Field() + " is invalid"
}

// pathID parses the {id} route parameter
func pathID(r *http.Request) (ulid.ULID, error) {
	return domain.ParseID(chi.URLParam(r, "id"))
}

// parseForm accepts multipart and urlencoded bodies alike
func parseForm(r *http.Request) error {
	var err error
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		err = r.ParseMultipartForm(maxFormMemory)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		return domain.NewValidationError("Invalid form data")
	}
	return nil
}

func formValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.FormValue(key))
}

// formFloat parses an optional numeric form field; nil when absent
func formFloat(r *http.Request, key, label string) (*float64, error) {
	raw := formValue(r, key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, domain.NewValidationError(label + " must be a number")
	}
	return &v, nil
}

// formInt parses an optional integer form field; nil when absent
func formInt(r *http.Request, key, label string) (*int, error) {
	raw := formValue(r, key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return nil, domain.NewValidationError(label + " must be a positive number")
	}
	return &v, nil
}

// savedFiles tracks the uploads of one request so they can be dropped if the
// request fails after they were written
type savedFiles struct {
	store FileStore
	paths map[string]string
}

// saveUploads stores every present file field. Nothing is kept on error.
func saveUploads(store FileStore, r *http.Request, policy uploads.Policy, fields ...string) (*savedFiles, error) {
	saved := &savedFiles{store: store, paths: make(map[string]string, len(fields))}
	if r.MultipartForm == nil {
		return saved, nil
	}
	for _, field := range fields {
		fhs := r.MultipartForm.File[field]
		if len(fhs) == 0 {
			continue
		}
		p, err := store.Save(fhs[0], policy)
		if err != nil {
			saved.discard()
			return nil, err
		}
		saved.paths[field] = p
	}
	return saved, nil
}

// get returns the stored path for field, or nil when no file was sent
func (s *savedFiles) get(field string) *string {
	p, ok := s.paths[field]
	if !ok {
		return nil
	}
	return &p
}

func (s *savedFiles) discard() {
	if len(s.paths) == 0 {
		return
	}
	s.store.Discard(slices.Sorted(maps.Values(s.paths))...)
}

// optional returns nil for a blank value
func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func hasFile(r *http.Request, field string) bool {
	return r.MultipartForm != nil && len(r.MultipartForm.File[field]) > 0
}
