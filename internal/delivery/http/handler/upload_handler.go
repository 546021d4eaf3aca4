package handler

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"rx-prescription-api/config"
	"rx-prescription-api/internal/delivery/dto"
	"rx-prescription-api/pkg/response"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// allowedUploadTypes maps accepted MIME types to the extension files are
// stored under. Types are sniffed from content, never taken from the client.
var allowedUploadTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"application/pdf": ".pdf",
}

type UploadHandler struct {
	cfg *config.Config
	log *logrus.Logger
}

func NewUploadHandler(cfg *config.Config, log *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		cfg: cfg,
		log: log,
	}
}

// Upload stores a multipart file under a random name and returns its path.
// Doctors use it for signature, stamp, and letterhead assets.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.Upload.MaxSize)

	if err := r.ParseMultipartForm(h.cfg.Upload.MaxSize); err != nil {
		response.Error(w, http.StatusRequestEntityTooLarge, "File too large", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "file form field is required", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.log.Warnf("Failed to read upload: %+v", err)
		response.InternalServerError(w, "Failed to read file")
		return
	}

	detected := mimetype.Detect(data)
	ext, ok := allowedUploadTypes[detected.String()]
	if !ok {
		response.Error(w, http.StatusUnsupportedMediaType, "Only JPEG, PNG, and PDF files are allowed", nil)
		return
	}

	if err := os.MkdirAll(h.cfg.Upload.Dir, 0o755); err != nil {
		h.log.Warnf("Failed to create upload dir: %+v", err)
		response.InternalServerError(w, "Failed to store file")
		return
	}

	fileName := uuid.New().String() + ext
	filePath := filepath.Join(h.cfg.Upload.Dir, fileName)

	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		h.log.Warnf("Failed to write upload: %+v", err)
		response.InternalServerError(w, "Failed to store file")
		return
	}

	h.log.Infof("Upload stored: %s (%d bytes, %s, original %q)", fileName, len(data), detected.String(), header.Filename)

	response.Success(w, http.StatusCreated, "File uploaded successfully", &dto.UploadResponse{
		FileName: fileName,
		FilePath: filePath,
		FileURL:  fmt.Sprintf("%s/uploads/%s", h.cfg.App.BaseURL, fileName),
		Size:     int64(len(data)),
		MimeType: detected.String(),
	})
}
