package extract

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"icebreaker-backend/internal/profile"
	"icebreaker-backend/internal/shared/server/respond"
	"icebreaker-backend/internal/shared/telemetry"
	"icebreaker-backend/internal/shared/util"
)

const maxImportBytes = 5 << 20

var allowedImportTypes = map[string]struct{}{
	"application/pdf": {},
	"application/zip": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/profiles/import", h.importProfile)
}

// importProfile accepts a PDF or DOCX upload, extracts its text, and returns
// the parsed profile together with the analyzed conversation context.
func (h *Handler) importProfile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	if fileHeader.Size <= 0 || fileHeader.Size > maxImportBytes {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file size exceeds limit", nil)
		return
	}

	fileName, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid file name", nil)
		return
	}

	mimeType := strings.TrimSpace(fileHeader.Header.Get("Content-Type"))
	if _, ok := allowedImportTypes[strings.ToLower(strings.Split(mimeType, ";")[0])]; !ok {
		respond.Error(c, http.StatusBadRequest, "validation_error", "contentType is not allowed", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read upload", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImportBytes+1))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read upload", nil)
		return
	}
	if len(data) > maxImportBytes {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file size exceeds limit", nil)
		return
	}

	text, err := TextFromBytes(c.Request.Context(), data, mimeType, fileName)
	if err != nil {
		telemetry.Warn("extract.failed", map[string]any{
			"file": fileName,
			"mime": mimeType,
			"err":  err.Error(),
		})
		respond.Error(c, http.StatusUnprocessableEntity, "extract_error", "could not extract text from file", nil)
		return
	}

	raw := ParseProfile(text)
	pctx := profile.Analyze(raw)

	respond.JSON(c, http.StatusOK, gin.H{
		"profile": raw,
		"context": pctx,
		"summary": profile.Summary(pctx),
	})
}
