package api

import (
	"errors"
	"net/http"

	reqdto "hotelhub/internal/handler/dto/request"
	resdto "hotelhub/internal/handler/dto/response"
	"hotelhub/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	roomUseCase usecase.RoomUseCase
}

func NewRoomHandler(roomUseCase usecase.RoomUseCase) *RoomHandler {
	return &RoomHandler{
		roomUseCase: roomUseCase,
	}
}

// @Summary List rooms
// @Description List all rooms in the inventory
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.roomUseCase.ListRooms(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomRMs(rooms))
}

// @Summary Create room
// @Description Add a room to the inventory
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomRequest true "Room request"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	roomRM, err := h.roomUseCase.CreateRoom(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRoomNumberTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Room number already exists",
			})
		case errors.Is(err, usecase.ErrRoomValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid room data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRoomRM(roomRM))
}

// @Summary Update room
// @Description Update room number, type or tariff; omitted fields stay unchanged
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateRoomRequest true "Room update request"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rooms/{id} [put]
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID",
		})
		return
	}

	var req reqdto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	roomRM, err := h.roomUseCase.UpdateRoom(c.Request.Context(), roomID, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, usecase.ErrRoomNumberTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Room number already exists",
			})
		case errors.Is(err, usecase.ErrRoomValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid room data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomRM(roomRM))
}

// @Summary Delete room
// @Description Remove a room; rooms referenced by bookings cannot be deleted
// @Tags rooms
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rooms/{id} [delete]
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID",
		})
		return
	}

	if err := h.roomUseCase.DeleteRoom(c.Request.Context(), roomID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, usecase.ErrRoomInUse):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Room has bookings and cannot be deleted",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
