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
	errInvalidCatalogPayload = pkg.NewDomainErrorSimple("INVALID_CATALOG_INPUT", "Invalid catalog payload", http.StatusBadRequest)
)

// CatalogHandler handles HTTP requests for the cost catalog.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	catalog, err := h.usecase.Load(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalog(catalog))
}

func (h *CatalogHandler) UpdateConfig(c *gin.Context) {
	var payload request.ConfigRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}
	if err := h.usecase.UpdateConfig(c.Request.Context(), payload.ToPatch()); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) AddPerson(c *gin.Context) {
	p, err := h.usecase.AddPerson(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *CatalogHandler) AddEquipment(c *gin.Context) {
	eq, err := h.usecase.AddEquipment(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, eq)
}

func (h *CatalogHandler) AddMaterial(c *gin.Context) {
	m, err := h.usecase.AddMaterial(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *CatalogHandler) UpdatePerson(c *gin.Context) {
	var payload request.PersonPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}
	if err := h.usecase.UpdatePerson(c.Request.Context(), c.Param("id"), payload.ToPatch()); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) UpdateEquipment(c *gin.Context) {
	var payload request.EquipmentPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}
	if err := h.usecase.UpdateEquipment(c.Request.Context(), c.Param("id"), payload.ToPatch()); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) UpdateMaterial(c *gin.Context) {
	var payload request.MaterialPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}
	if err := h.usecase.UpdateMaterial(c.Request.Context(), c.Param("id"), payload.ToPatch()); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) RemovePerson(c *gin.Context) {
	if err := h.usecase.RemovePerson(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) RemoveEquipment(c *gin.Context) {
	if err := h.usecase.RemoveEquipment(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) RemoveMaterial(c *gin.Context) {
	if err := h.usecase.RemoveMaterial(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMaterialType):
		return pkg.NewDomainErrorSimple("INVALID_MATERIAL_TYPE", "Material type must be filamento or resina", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
