package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"journal/config"
	"journal/internal/delivery/http/response"
	domainerrors "journal/internal/domain/errors"
	"journal/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const audioFormField = "audio"

// TranscriptionHandler relays uploaded audio to the speech-to-text
// collaborator, enforcing the upload limits before anything leaves the
// process.
type TranscriptionHandler struct {
	svc         service.TranscriptionService
	maxFileSize int64
	maxFiles    int
	logger      *slog.Logger
}

// NewTranscriptionHandler is the constructor for TranscriptionHandler, injected by Fx.
func NewTranscriptionHandler(svc service.TranscriptionService, cfg *config.Config, logger *slog.Logger) *TranscriptionHandler {
	return &TranscriptionHandler{
		svc:         svc,
		maxFileSize: cfg.Upload.MaxFileSize,
		maxFiles:    cfg.Upload.MaxFiles,
		logger:      logger,
	}
}

// Transcribe handles the multipart audio upload.
func (h *TranscriptionHandler) Transcribe(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return domainerrors.ErrFileUpload.WrapMessage("request is not valid multipart")
	}

	files := form.File[audioFormField]
	if len(files) == 0 {
		return domainerrors.ErrFileUpload.WrapMessage("audio file missing")
	}
	if len(files) > h.maxFiles {
		return domainerrors.ErrTooManyFiles.WrapMessage("upload count limit exceeded")
	}

	// Limits are enforced for every file before anything is relayed, so a
	// partial batch never reaches the upstream API.
	for _, fileHeader := range files {
		if fileHeader.Size > h.maxFileSize {
			return domainerrors.ErrFileTooLarge.WrapMessage("upload size limit exceeded")
		}
	}

	texts := make([]string, 0, len(files))
	for _, fileHeader := range files {
		text, err := h.transcribeFile(c, fileHeader)
		if err != nil {
			return err
		}

		texts = append(texts, text)
	}

	return response.Success(c, http.StatusOK, map[string]string{"text": strings.Join(texts, "\n")})
}

func (h *TranscriptionHandler) transcribeFile(c echo.Context, fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", domainerrors.ErrFileUpload.WrapMessage("failed to open uploaded file")
	}
	defer file.Close()

	audio, err := io.ReadAll(io.LimitReader(file, h.maxFileSize+1))
	if err != nil {
		return "", domainerrors.ErrFileUpload.WrapMessage("failed to read uploaded file")
	}
	if int64(len(audio)) > h.maxFileSize {
		return "", domainerrors.ErrFileTooLarge.WrapMessage("upload size limit exceeded")
	}

	text, err := h.svc.Transcribe(c.Request().Context(), audio, fileHeader.Filename)
	if err != nil {
		return "", errors.Wrap(err, "transcription relay failed")
	}

	return text, nil
}
