package handler

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qanooni/hr-assistant-be/service"
	"github.com/qanooni/hr-assistant-be/types"
)

type UploadHandler struct {
	fileService  *service.FileService
	maxSizeBytes int64
}

func NewUploadHandler(fileService *service.FileService, maxSizeMB int64) *UploadHandler {
	return &UploadHandler{
		fileService:  fileService,
		maxSizeBytes: maxSizeMB << 20,
	}
}

// HandleUploadLaw ingests a law document into the law corpus.
func (h *UploadHandler) HandleUploadLaw(c *gin.Context) {
	file, ok := h.formFile(c)
	if !ok {
		return
	}

	result, err := h.fileService.IngestUpload(c.Request.Context(), file, types.DocumentTypeLaw, types.SourceAdminUpload)
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.UploadLawResponse{
		Success:     true,
		Message:     fmt.Sprintf("تم تحميل قانون: %s", file.Filename),
		Chunks:      result.Chunks,
		Type:        types.DocumentTypeLaw,
		TotalChunks: result.TotalChunks,
	})
}

// HandleUploadContract ingests an employment contract into the contract
// corpus.
func (h *UploadHandler) HandleUploadContract(c *gin.Context) {
	file, ok := h.formFile(c)
	if !ok {
		return
	}

	result, err := h.fileService.IngestUpload(c.Request.Context(), file, types.DocumentTypeContract, types.SourceUserUpload)
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.UploadContractResponse{
		Success:     true,
		Message:     fmt.Sprintf("تم تحميل وتحليل العقد: %s", file.Filename),
		Chunks:      result.Chunks,
		TotalChunks: result.TotalChunks,
	})
}

func (h *UploadHandler) formFile(c *gin.Context) (*multipart.FileHeader, bool) {
	header, err := c.FormFile("document")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.UploadErrorResponse{
			Error: "No file uploaded",
		})
		return nil, false
	}
	if header.Size > h.maxSizeBytes {
		c.JSON(http.StatusBadRequest, types.UploadErrorResponse{
			Error: "File too large",
		})
		return nil, false
	}
	return header, true
}

func (h *UploadHandler) sendError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, types.ErrUnsupportedFormat) ||
		errors.Is(err, types.ErrEmptyExtraction) ||
		errors.Is(err, types.ErrEmptyDocument) {
		status = http.StatusBadRequest
	}
	c.JSON(status, types.UploadErrorResponse{
		Error: err.Error(),
	})
}
