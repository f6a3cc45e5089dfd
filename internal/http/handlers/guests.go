package handlers

import (
	"net/http"

	"hotel-backend/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// POST /api/guests
func (h *Handlers) CreateGuest(c *gin.Context) {
	var req models.GuestInput
	if !BindJSONOrError(c, &req) {
		return
	}

	guest, err := h.guests(c).Create(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, guest)
}

// GET /api/guests
func (h *Handlers) GetGuests(c *gin.Context) {
	guests, err := h.guests(c).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, guests)
}

// GET /api/guests/search?query=
func (h *Handlers) SearchGuests(c *gin.Context) {
	guests, err := h.guests(c).Search(c.Query("query"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, guests)
}

// GET /api/guests/:id
func (h *Handlers) GetGuest(c *gin.Context) {
	guest, err := h.guests(c).Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, guest)
}

// PUT /api/guests/:id
func (h *Handlers) UpdateGuest(c *gin.Context) {
	var req models.GuestInput
	if !BindJSONOrError(c, &req) {
		return
	}

	guest, err := h.guests(c).Update(c.Param("id"), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, guest)
}

// DELETE /api/guests/:id
func (h *Handlers) DeleteGuest(c *gin.Context) {
	if err := h.guests(c).Delete(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Guest deleted successfully"})
}
