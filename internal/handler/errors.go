package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/markusluicellas/luibot/internal/embedding"
	"github.com/markusluicellas/luibot/internal/segment"
	"github.com/markusluicellas/luibot/internal/service"
	"github.com/markusluicellas/luibot/internal/store"
)

// ErrorResponse is the structured error body for every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(c *gin.Context, err error) {
	status, code := classify(err)
	c.JSON(status, ErrorResponse{Error: err.Error(), Code: code})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrEmptyTitle),
		errors.Is(err, service.ErrEmptyContent),
		errors.Is(err, service.ErrEmptyQuestion),
		errors.Is(err, store.ErrEmptyTitle),
		errors.Is(err, store.ErrEmptyChunk),
		errors.Is(err, store.ErrInvalidLimit),
		errors.Is(err, segment.ErrInvalidWindow):
		return http.StatusBadRequest, "validation_error"
	case errors.Is(err, store.ErrDocumentNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, embedding.ErrUnavailable):
		return http.StatusBadGateway, "embedding_unavailable"
	case errors.Is(err, embedding.ErrMalformed):
		return http.StatusBadGateway, "embedding_malformed"
	case errors.Is(err, store.ErrDimensionMismatch):
		return http.StatusInternalServerError, "dimension_mismatch"
	default:
		return http.StatusInternalServerError, "storage_error"
	}
}
