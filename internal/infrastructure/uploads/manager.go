package uploads

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/myanimal/petcare-service/internal/domain"
	"github.com/myanimal/petcare-service/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Policy restricts what Save accepts
type Policy int

const (
	AnyFile Policy = iota
	ImagesOnly
)

var (
	ErrNotImage     = domain.NewValidationError("Only JPEG, JPG, and PNG files are allowed")
	ErrFileTooLarge = domain.NewValidationError("File too large")
)

var imageExtensions = map[string]bool{".jpeg": true, ".jpg": true, ".png": true}

// Manager stores uploaded files on local disk and serves them under a URL prefix
type Manager struct {
	dir       string
	urlPrefix string
	maxBytes  int64
	logger    *zap.Logger
}

func NewManager(cfg *config.Config, logger *zap.Logger) (*Manager, error) {
	dir, err := filepath.Abs(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("error resolving upload directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating upload directory: %w", err)
	}
	prefix := "/" + strings.Trim(cfg.UploadURLPrefix, "/")
	return &Manager{
		dir:       dir,
		urlPrefix: prefix,
		maxBytes:  cfg.UploadMaxBytes,
		logger:    logger,
	}, nil
}

func (m *Manager) Dir() string       { return m.dir }
func (m *Manager) URLPrefix() string { return m.urlPrefix }
func (m *Manager) MaxBytes() int64   { return m.maxBytes }

// Save writes the uploaded file under a fresh name and returns its public path
func (m *Manager) Save(fh *multipart.FileHeader, policy Policy) (string, error) {
	if fh.Size > m.maxBytes {
		return "", ErrFileTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return "", domain.NewValidationError("Unreadable upload").Wrap(err)
	}
	defer src.Close()

	detected, err := mimetype.DetectReader(src)
	if err != nil {
		return "", domain.NewValidationError("Unreadable upload").Wrap(err)
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", domain.ErrInternal.Wrap(err)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if policy == ImagesOnly {
		if !imageExtensions[ext] || !(detected.Is("image/jpeg") || detected.Is("image/png")) {
			return "", ErrNotImage
		}
	}
	if ext == "" {
		ext = detected.Extension()
	}

	name := domain.NewID().String() + ext
	dst, err := os.OpenFile(filepath.Join(m.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", domain.ErrInternal.Wrap(fmt.Errorf("create upload: %w", err))
	}

	written, err := io.Copy(dst, io.LimitReader(src, m.maxBytes+1))
	closeErr := dst.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil || written > m.maxBytes {
		_ = os.Remove(dst.Name())
		if err != nil {
			return "", domain.ErrInternal.Wrap(fmt.Errorf("write upload: %w", err))
		}
		return "", ErrFileTooLarge
	}

	public := path.Join(m.urlPrefix, name)
	m.logger.Debug("upload saved", zap.String("path", public), zap.Int64("bytes", written))
	return public, nil
}

// Discard removes the files behind the given public paths. Failures are only
// logged; callers never depend on removal succeeding.
func (m *Manager) Discard(paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		local, ok := m.localPath(p)
		if !ok {
			m.logger.Warn("refusing to discard path outside upload directory", zap.String("path", p))
			continue
		}
		if err := os.Remove(local); err != nil && !errors.Is(err, os.ErrNotExist) {
			m.logger.Warn("failed to discard upload", zap.String("path", p), zap.Error(err))
		}
	}
}

// Handler serves stored files; mount it at URLPrefix
func (m *Manager) Handler() http.Handler {
	return http.StripPrefix(m.urlPrefix, http.FileServer(http.Dir(m.dir)))
}

// localPath maps a public path to a file directly inside the upload directory
func (m *Manager) localPath(public string) (string, bool) {
	if !strings.HasPrefix(public, m.urlPrefix+"/") {
		return "", false
	}
	name := strings.TrimPrefix(public, m.urlPrefix+"/")
	if name == "" || name != filepath.Base(name) || name == ".." || name == "." {
		return "", false
	}
	return filepath.Join(m.dir, name), true
}

// PublicPath returns the public path of a file name in the upload directory
func (m *Manager) PublicPath(name string) string {
	return path.Join(m.urlPrefix, name)
}
