package contacts

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"icebreaker-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/contacts", h.list)
	rg.POST("/contacts", h.create)
	rg.GET("/contacts/:id", h.get)
	rg.PUT("/contacts/:id", h.update)
	rg.DELETE("/contacts/:id", h.remove)
}

type contactRequest struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Notes   string `json:"notes"`
	MetAt   string `json:"metAt"`
}

func (h *Handler) list(c *gin.Context) {
	out, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list contacts", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"contacts": out})
}

func (h *Handler) create(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	contact, err := h.Svc.Create(c.Request.Context(), Contact{
		Name:    req.Name,
		Title:   req.Title,
		Company: req.Company,
		Email:   req.Email,
		Notes:   req.Notes,
		MetAt:   req.MetAt,
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusInternalServerError, "internal_error", "contact vanished after create", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	respond.JSON(c, http.StatusCreated, contact)
}

func (h *Handler) get(c *gin.Context) {
	contact, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "contact not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load contact", nil)
		return
	}
	respond.JSON(c, http.StatusOK, contact)
}

func (h *Handler) update(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	contact, err := h.Svc.Update(c.Request.Context(), Contact{
		ID:      c.Param("id"),
		Name:    req.Name,
		Title:   req.Title,
		Company: req.Company,
		Email:   req.Email,
		Notes:   req.Notes,
		MetAt:   req.MetAt,
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "contact not found", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	respond.JSON(c, http.StatusOK, contact)
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "contact not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete contact", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"deleted": true})
}
