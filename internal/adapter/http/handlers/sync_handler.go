package handlers

import (
	"errors"
	request "murilov3d/internal/adapter/http/dto/request"
	response "murilov3d/internal/adapter/http/dto/response"
	"murilov3d/internal/usecase"
	"murilov3d/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSyncPayload = pkg.NewDomainErrorSimple("INVALID_SYNC_INPUT", "Invalid sync payload", http.StatusBadRequest)
)

// SyncHandler handles HTTP requests for the spreadsheet mirror.
type SyncHandler struct {
	usecase usecase.ISyncUseCase
}

func NewSyncHandler(uc usecase.ISyncUseCase) *SyncHandler {
	return &SyncHandler{usecase: uc}
}

func (h *SyncHandler) GetStatus(c *gin.Context) {
	endpoint, err := h.usecase.Endpoint(c.Request.Context())
	if err != nil {
		appErr := mapSyncError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.SyncStatusResponse{
		Status:   string(h.usecase.Status()),
		Endpoint: endpoint,
	})
}

func (h *SyncHandler) SetEndpoint(c *gin.Context) {
	var payload request.SyncEndpointRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSyncPayload.HTTPStatus, errInvalidSyncPayload.ToHTTPError())
		return
	}

	if err := h.usecase.SetEndpoint(c.Request.Context(), payload.ResolveURL()); err != nil {
		appErr := mapSyncError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.SyncStatusResponse{
		Status:   string(h.usecase.Status()),
		Endpoint: payload.ResolveURL(),
	})
}

func (h *SyncHandler) TestConnection(c *gin.Context) {
	msg, err := h.usecase.TestConnection(c.Request.Context())
	if err != nil {
		appErr := mapSyncError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.SyncMessageResponse{Message: msg})
}

func (h *SyncHandler) Push(c *gin.Context) {
	if err := h.usecase.Push(c.Request.Context()); err != nil {
		appErr := mapSyncError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.SyncStatusResponse{Status: string(h.usecase.Status())})
}

func (h *SyncHandler) Pull(c *gin.Context) {
	if err := h.usecase.Pull(c.Request.Context()); err != nil {
		appErr := mapSyncError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.SyncStatusResponse{Status: string(h.usecase.Status())})
}

func mapSyncError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrSyncNotConfigured):
		return pkg.NewDomainErrorSimple("SYNC_NOT_CONFIGURED", "Spreadsheet endpoint not configured", http.StatusConflict)
	case errors.Is(err, usecase.ErrSyncFailed):
		return pkg.NewDomainErrorSimple("SYNC_FAILED", "Spreadsheet sync failed", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
