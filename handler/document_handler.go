package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/qanooni/hr-assistant-be/store"
	"github.com/qanooni/hr-assistant-be/types"
)

// DocumentHandler exposes corpus statistics, deletion and the health probe.
type DocumentHandler struct {
	corpus *store.CorpusStore
}

func NewDocumentHandler(corpus *store.CorpusStore) *DocumentHandler {
	return &DocumentHandler{corpus: corpus}
}

func (h *DocumentHandler) HandleCounts(c *gin.Context) {
	c.JSON(http.StatusOK, types.DocumentsResponse{
		LawDocuments:      h.corpus.Count(types.DocumentTypeLaw),
		ContractDocuments: h.corpus.Count(types.DocumentTypeContract),
	})
}

// HandleDelete clears one corpus when a type is given, both when the body is
// empty or omits the type.
func (h *DocumentHandler) HandleDelete(c *gin.Context) {
	var req types.DeleteDocumentsRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	label := req.Type
	switch req.Type {
	case "":
		h.corpus.ClearAll()
		label = "جميع"
	case types.DocumentTypeLaw, types.DocumentTypeContract:
		if err := h.corpus.Clear(req.Type); err != nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Error:   "Delete failed",
				Details: err.Error(),
			})
			return
		}
	default:
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error: "Invalid document type",
		})
		return
	}

	c.JSON(http.StatusOK, types.DeleteDocumentsResponse{
		Message: fmt.Sprintf("تم حذف %s الوثائق بنجاح", label),
	})
}

func (h *DocumentHandler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, types.HealthResponse{
		Status:   "OK",
		Law:      h.corpus.Count(types.DocumentTypeLaw),
		Contract: h.corpus.Count(types.DocumentTypeContract),
		Ts:       time.Now().UTC().Format(time.RFC3339),
	})
}
