package handlers

import (
	"net/http"

	"hotel-backend/internal/domain"
	"hotel-backend/internal/domain/models"
	"hotel-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type createRoomRequest struct {
	RoomNumber    string   `json:"room_number"`
	RoomType      string   `json:"room_type"`
	PricePerNight float64  `json:"price_per_night"`
	Description   string   `json:"description"`
	MaxOccupancy  int      `json:"max_occupancy"`
	Amenities     []string `json:"amenities"`
}

// POST /api/rooms
func (h *Handlers) CreateRoom(c *gin.Context) {
	var req createRoomRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	roomType, err := domain.ParseRoomType(req.RoomType)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	room, err := h.rooms(c).Create(services.CreateRoomInput{
		RoomNumber:    req.RoomNumber,
		RoomType:      roomType,
		PricePerNight: req.PricePerNight,
		Description:   req.Description,
		MaxOccupancy:  req.MaxOccupancy,
		Amenities:     req.Amenities,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// GET /api/rooms
func (h *Handlers) GetRooms(c *gin.Context) {
	rooms, err := h.rooms(c).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GET /api/rooms/:id
func (h *Handlers) GetRoom(c *gin.Context) {
	room, err := h.rooms(c).Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

type updateRoomRequest struct {
	RoomType      *string   `json:"room_type"`
	PricePerNight *float64  `json:"price_per_night"`
	Status        *string   `json:"status"`
	Description   *string   `json:"description"`
	MaxOccupancy  *int      `json:"max_occupancy"`
	Amenities     *[]string `json:"amenities"`
}

// PUT /api/rooms/:id
func (h *Handlers) UpdateRoom(c *gin.Context) {
	var req updateRoomRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	patch := models.RoomPatch{
		PricePerNight: req.PricePerNight,
		Description:   req.Description,
		MaxOccupancy:  req.MaxOccupancy,
		Amenities:     req.Amenities,
	}
	if req.RoomType != nil {
		roomType, err := domain.ParseRoomType(*req.RoomType)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		patch.RoomType = &roomType
	}
	if req.Status != nil {
		status, err := domain.ParseRoomStatus(*req.Status)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		patch.Status = &status
	}

	room, err := h.rooms(c).Update(c.Param("id"), patch)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// DELETE /api/rooms/:id
func (h *Handlers) DeleteRoom(c *gin.Context) {
	if err := h.rooms(c).Delete(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room deleted successfully"})
}

// GET /api/rooms/:id/availability?check_in=YYYY-MM-DD&check_out=YYYY-MM-DD
func (h *Handlers) RoomAvailability(c *gin.Context) {
	roomID := c.Param("id")
	if _, err := h.rooms(c).Get(roomID); err != nil {
		RespondDomainError(c, err)
		return
	}

	checkIn, err := domain.ParseDate(c.Query("check_in"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	checkOut, err := domain.ParseDate(c.Query("check_out"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	available, err := h.availability().IsAvailable(roomID, checkIn, checkOut, "")
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": available})
}

// POST /api/initialize-rooms
func (h *Handlers) InitializeRooms(c *gin.Context) {
	seeded, err := h.rooms(c).InitializeDefaults()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if seeded == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Rooms already initialized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Successfully initialized 10 default rooms"})
}
