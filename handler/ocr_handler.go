package handler

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/qanooni/hr-assistant-be/service"
	"github.com/qanooni/hr-assistant-be/types"
)

// Texts shorter than this are treated as failed extractions.
const minOCRTextLength = 10

const ocrSnippetLength = 400

var whitespaceRe = regexp.MustCompile(`\s+`)

type OCRHandler struct {
	fileService  *service.FileService
	maxSizeBytes int64
}

func NewOCRHandler(fileService *service.FileService, maxSizeMB int64) *OCRHandler {
	return &OCRHandler{
		fileService:  fileService,
		maxSizeBytes: maxSizeMB << 20,
	}
}

// HandleUpload extracts text from an uploaded document or image without
// ingesting it into any corpus.
func (h *OCRHandler) HandleUpload(c *gin.Context) {
	file, err := c.FormFile("document")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.UploadErrorResponse{
			Error: "لم يتم رفع أي ملف",
		})
		return
	}
	if file.Size > h.maxSizeBytes {
		c.JSON(http.StatusBadRequest, types.UploadErrorResponse{
			Error: "File too large",
		})
		return
	}

	text, err := h.fileService.ExtractUpload(c.Request.Context(), file)
	if err != nil && !errors.Is(err, types.ErrEmptyExtraction) {
		status := http.StatusInternalServerError
		if errors.Is(err, types.ErrUnsupportedFormat) {
			status = http.StatusBadRequest
		}
		c.JSON(status, types.UploadErrorResponse{Error: err.Error()})
		return
	}

	text = strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
	if len([]rune(text)) < minOCRTextLength {
		c.JSON(http.StatusOK, types.UploadErrorResponse{
			Error: "لم يتم استخراج نص واضح من الملف.",
		})
		return
	}

	c.JSON(http.StatusOK, types.OCRResponse{
		Success:     true,
		Message:     "تم استخراج النص بنجاح",
		TextSnippet: snippet(text),
		Text:        text,
	})
}

func snippet(text string) string {
	runes := []rune(text)
	if len(runes) <= ocrSnippetLength {
		return text
	}
	return string(runes[:ocrSnippetLength]) + "..."
}
