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

// AutomationsHandler handles automation rule endpoints. Rules are
// stored and listed; evaluation is out of scope.
type AutomationsHandler struct {
	rules     db.RuleStore
	devices   db.DeviceStore
	validator *schema.Validator
}

// NewAutomationsHandler creates a new automations handler
func NewAutomationsHandler(rules db.RuleStore, devices db.DeviceStore, validator *schema.Validator) *AutomationsHandler {
	return &AutomationsHandler{rules: rules, devices: devices, validator: validator}
}

// ListRules handles GET /automations
// @Summary      List automation rules
// @Description  Returns all automation rules owned by the authenticated user
// @Tags         automations
// @Produce      json
// @Success      200  {object}  types.ListRulesResponse
// @Failure      401  {object}  types.ErrorResponse  "Unauthorized"
// @Security     BearerAuth
// @Router       /automations [get]
func (h *AutomationsHandler) ListRules(c *gin.Context) {
	userID := c.GetString(types.ContextUserID)

	rules, err := h.rules.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to list rules")
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to list automation rules",
		})
		return
	}

	c.JSON(http.StatusOK, types.ListRulesResponse{
		Rules: rules,
		Count: len(rules),
	})
}

// CreateRule handles POST /automations
// @Summary      Create an automation rule
// @Description  Stores a trigger/action rule over two of the user's devices
// @Tags         automations
// @Accept       json
// @Produce      json
// @Param        request  body      object  true  "Rule definition"
// @Success      201      {object}  types.RuleResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid request"
// @Failure      401      {object}  types.ErrorResponse  "Unauthorized"
// @Failure      404      {object}  types.ErrorResponse  "Referenced device not found"
// @Security     BearerAuth
// @Router       /automations [post]
func (h *AutomationsHandler) CreateRule(c *gin.Context) {
	userID := c.GetString(types.ContextUserID)
	ctx := c.Request.Context()

	var req map[string]any
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
		return
	}

	if err := h.validator.Validate(schema.RuleCreate, req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	rule := &db.Rule{
		OwnerID:          userID,
		Name:             req["name"].(string),
		TriggerDeviceID:  req["trigger_device_id"].(string),
		TriggerCondition: req["trigger_condition"].(string),
		ActionDeviceID:   req["action_device_id"].(string),
		ActionState:      req["action_state"].(string),
	}

	// Both referenced devices must belong to the user
	for _, deviceID := range []string{rule.TriggerDeviceID, rule.ActionDeviceID} {
		if _, err := h.devices.Get(ctx, userID, deviceID); err != nil {
			if errors.Is(err, device.ErrNotFound) {
				c.JSON(http.StatusNotFound, types.ErrorResponse{
					Error:   "not_found",
					Message: "Referenced device not found",
				})
				return
			}
			log.Error().Err(err).Str("device_id", deviceID).Msg("failed to check rule device")
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Error:   "internal_error",
				Message: "Failed to create automation rule",
			})
			return
		}
	}

	if err := h.rules.Create(ctx, rule); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to create rule")
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to create automation rule",
		})
		return
	}

	c.JSON(http.StatusCreated, types.RuleResponse{Rule: rule})
}

// DeleteRule handles DELETE /automations/:id
// @Summary      Delete an automation rule
// @Description  Removes a rule owned by the authenticated user
// @Tags         automations
// @Produce      json
// @Param        id   path  string  true  "Rule ID"
// @Success      204  "Rule deleted"
// @Failure      401  {object}  types.ErrorResponse  "Unauthorized"
// @Failure      404  {object}  types.ErrorResponse  "Rule not found"
// @Security     BearerAuth
// @Router       /automations/{id} [delete]
func (h *AutomationsHandler) DeleteRule(c *gin.Context) {
	userID := c.GetString(types.ContextUserID)
	id := c.Param("id")

	if err := h.rules.Delete(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, db.ErrRuleNotFound) {
			c.JSON(http.StatusNotFound, types.ErrorResponse{
				Error:   "not_found",
				Message: "Automation rule not found",
			})
			return
		}
		log.Error().Err(err).Str("rule_id", id).Msg("failed to delete rule")
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to delete automation rule",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
