package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mfigueredo/hearth/pkg/api/types"
	"github.com/mfigueredo/hearth/pkg/db"
	"github.com/mfigueredo/hearth/pkg/device"
	"github.com/mfigueredo/hearth/pkg/device/schema"
	"github.com/rs/zerolog/log"
)

// DevicesHandler handles device CRUD endpoints
type DevicesHandler struct {
	devices   db.DeviceStore
	validator *schema.Validator
}

// NewDevicesHandler creates a new devices handler
func NewDevicesHandler(devices db.DeviceStore, validator *schema.Validator) *DevicesHandler {
	return &DevicesHandler{devices: devices, validator: validator}
}

// ListDevices handles GET /devices
// @Summary      List devices
// @Description  Returns all devices owned by the authenticated user
// @Tags         devices
// @Produce      json
// @Success      200  {object}  types.ListDevicesResponse
// @Failure      401  {object}  types.ErrorResponse  "Unauthorized"
// @Failure      500  {object}  types.ErrorResponse  "Internal error"
// @Security     BearerAuth
// @Router       /devices [get]
func (h *DevicesHandler) ListDevices(c *gin.Context) {
	userID := c.GetString(types.ContextUserID)

	devices, err := h.devices.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to list devices")
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to list devices",
		})
		return
	}

	c.JSON(http.StatusOK, types.ListDevicesResponse{
		Devices: devices,
		Count:   len(devices),
	})
}

// GetDevice handles GET /devices/:id
// @Summary      Get device details
// @Description  Returns one device owned by the authenticated user
// @Tags         devices
// @Produce      json
// @Param        id   path      string  true  "Device ID"
// @Success      200  {object}  types.DeviceResponse
// @Failure      401  {object}  types.ErrorResponse  "Unauthorized"
// @Failure      404  {object}  types.ErrorResponse  "Device not found"
// @Security     BearerAuth
// @Router       /devices/{id} [get]
func (h *DevicesHandler) GetDevice(c *gin.Context) {
	userID := c.GetString(types.ContextUserID)
	id := c.Param("id")

	d, err := h.devices.Get(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, device.ErrNotFound) {
			c.JSON(http.StatusNotFound, types.ErrorResponse{
				Error:   "not_found",
				Message: "Device not found",
			})
			return
		}
		log.Error().Err(err).Str("device_id", id).Msg("failed to get device")
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to get device",
		})
		return
	}

	c.JSON(http.StatusOK, types.DeviceResponse{Device: d})
}

// CreateDevice handles POST /devices
// @Summary      Create a device
// @Description  Creates a device for the authenticated user; state starts as "off"
// @Tags         devices
// @Accept       json
// @Produce      json
// @Param        request  body      object  true  "Device name and category"
// @Success      201      {object}  types.DeviceResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid request"
// @Failure      401      {object}  types.ErrorResponse  "Unauthorized"
// @Security     BearerAuth
// @Router       /devices [post]
func (h *DevicesHandler) CreateDevice(c *gin.Context) {
	userID := c.GetString(types.ContextUserID)

	var req map[string]any
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
		return
	}

	if err := h.validator.Validate(schema.DeviceCreate, req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	name, _ := req["name"].(string)
	category, _ := req["category"].(string)

	d := &device.Device{
		OwnerID:  userID,
		Name:     name,
		Category: device.Category(category),
		State:    "off",
	}
	if err := h.devices.Create(c.Request.Context(), d); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to create device")
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to create device",
		})
		return
	}

	c.JSON(http.StatusCreated, types.DeviceResponse{Device: d})
}

// UpdateDevice handles PATCH /devices/:id
// @Summary      Update a device
// @Description  Renames a device and/or changes its category
// @Tags         devices
// @Accept       json
// @Produce      json
// @Param        id       path      string  true  "Device ID"
// @Param        request  body      object  true  "Fields to change"
// @Success      200      {object}  types.DeviceResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid request"
// @Failure      401      {object}  types.ErrorResponse  "Unauthorized"
// @Failure      404      {object}  types.ErrorResponse  "Device not found"
// @Security     BearerAuth
// @Router       /devices/{id} [patch]
func (h *DevicesHandler) UpdateDevice(c *gin.Context) {
	userID := c.GetString(types.ContextUserID)
	id := c.Param("id")

	var req map[string]any
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
		return
	}

	if err := h.validator.Validate(schema.DeviceUpdate, req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	name, _ := req["name"].(string)
	category, _ := req["category"].(string)

	d, err := h.devices.Update(c.Request.Context(), userID, id, name, device.Category(category))
	if err != nil {
		if errors.Is(err, device.ErrNotFound) {
			c.JSON(http.StatusNotFound, types.ErrorResponse{
				Error:   "not_found",
				Message: "Device not found",
			})
			return
		}
		log.Error().Err(err).Str("device_id", id).Msg("failed to update device")
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to update device",
		})
		return
	}

	c.JSON(http.StatusOK, types.DeviceResponse{Device: d})
}

// DeleteDevice handles DELETE /devices/:id
// @Summary      Delete a device
// @Description  Removes a device owned by the authenticated user
// @Tags         devices
// @Produce      json
// @Param        id   path  string  true  "Device ID"
// @Success      204  "Device deleted"
// @Failure      401  {object}  types.ErrorResponse  "Unauthorized"
// @Failure      404  {object}  types.ErrorResponse  "Device not found"
// @Security     BearerAuth
// @Router       /devices/{id} [delete]
func (h *DevicesHandler) DeleteDevice(c *gin.Context) {
	userID := c.GetString(types.ContextUserID)
	id := c.Param("id")

	if err := h.devices.Delete(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, device.ErrNotFound) {
			c.JSON(http.StatusNotFound, types.ErrorResponse{
				Error:   "not_found",
				Message: "Device not found",
			})
			return
		}
		log.Error().Err(err).Str("device_id", id).Msg("failed to delete device")
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to delete device",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
