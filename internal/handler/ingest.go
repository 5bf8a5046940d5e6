package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/markusluicellas/luibot/internal/service"
)

type IngestHandler struct {
	ingestSvc *service.IngestService
}

func NewIngestHandler(ingestSvc *service.IngestService) *IngestHandler {
	return &IngestHandler{ingestSvc: ingestSvc}
}

type IngestTextRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type IngestTextResponse struct {
	OK         bool   `json:"ok"`
	DocumentID string `json:"document_id"`
	Chunks     int    `json:"chunks"`
	Partial    bool   `json:"partial,omitempty"`
}

// IngestText stores a plain-text document as embedded chunks. A failure
// partway through chunk processing still answers 200 with partial=true and
// the number of chunks that made it in.
func (h *IngestHandler) IngestText(c *gin.Context) {
	var req IngestTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "validation_error"})
		return
	}

	res, err := h.ingestSvc.IngestText(c.Request.Context(), req.Title, req.Content)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, IngestTextResponse{
		OK:         true,
		DocumentID: res.DocumentID.String(),
		Chunks:     res.ChunkCount,
		Partial:    res.Partial,
	})
}
