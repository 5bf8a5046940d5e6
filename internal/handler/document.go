package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/markusluicellas/luibot/internal/store"
)

type DocumentHandler struct {
	store store.Store
}

func NewDocumentHandler(st store.Store) *DocumentHandler {
	return &DocumentHandler{store: st}
}

func (h *DocumentHandler) List(c *gin.Context) {
	docs, err := h.store.ListDocuments(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": docs, "total": len(docs)})
}

// Delete removes a document and all of its chunks.
func (h *DocumentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid document id", Code: "validation_error"})
		return
	}

	if err := h.store.DeleteDocument(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
