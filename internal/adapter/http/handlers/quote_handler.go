package handlers

import (
	"errors"
	request "murilov3d/internal/adapter/http/dto/request"
	response "murilov3d/internal/adapter/http/dto/response"
	"murilov3d/internal/domain/entities"
	"murilov3d/internal/usecase"
	"murilov3d/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
	errInvalidQuoteStatus  = pkg.NewDomainErrorSimple("INVALID_QUOTE_STATUS", "Invalid quote status", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for pricing previews and the quote
// history.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// Preview recomputes the breakdown for the current form values without
// persisting anything.
func (h *QuoteHandler) Preview(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	breakdown, err := h.usecase.Preview(c.Request.Context(), payload.ToInput(""))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBreakdown(breakdown))
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	saved, err := h.usecase.Save(c.Request.Context(), payload.ToInput(""))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(saved))
}

// UpdateQuote replaces the quote pinned by the path id. If that quote was
// deleted in the meantime the save falls back to creating a new record, and
// the response carries the fresh id.
func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	saved, err := h.usecase.Save(c.Request.Context(), payload.ToInput(c.Param("id")))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(saved))
}

func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	status := entities.QuoteStatus(c.Query("status"))
	if status != "" && !entities.ValidQuoteStatus(status) {
		c.JSON(errInvalidQuoteStatus.HTTPStatus, errInvalidQuoteStatus.ToHTTPError())
		return
	}

	quotes, err := h.usecase.Query(c.Request.Context(), c.Query("search"), status)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteList(quotes))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

func (h *QuoteHandler) GetEditForm(c *gin.Context) {
	in, err := h.usecase.EditForm(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEditForm(in))
}

func (h *QuoteHandler) UpdateQuoteStatus(c *gin.Context) {
	var payload request.QuoteStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	if err := h.usecase.SetStatus(c.Request.Context(), c.Param("id"), payload.ResolveStatus()); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	if err := h.usecase.Remove(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *QuoteHandler) ShareQuote(c *gin.Context) {
	msg, err := h.usecase.Share(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromShareMessage(msg))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingRequiredFields):
		return pkg.NewDomainErrorSimple("MISSING_REQUIRED_FIELDS", "Client name and project are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteStatus):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_STATUS", "Invalid quote status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
