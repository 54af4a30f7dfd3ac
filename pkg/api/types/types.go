package types

import (
	"time"

	"github.com/mfigueredo/hearth/pkg/chat"
	"github.com/mfigueredo/hearth/pkg/db"
	"github.com/mfigueredo/hearth/pkg/device"
)

// Context keys set by the auth middleware and read by handlers.
const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
)

// --- Request DTOs ---

// RegisterRequest is the request body for POST /auth/register
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the request body for POST /auth/login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ChatRequest is the request body for POST /chat
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// --- Response DTOs ---

// ErrorResponse represents an API error
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned from GET /health
type HealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

// TokenResponse is returned from POST /auth/login
type TokenResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// RegisterResponse is returned from POST /auth/register
type RegisterResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// ChatResponse is returned from POST /chat. DeviceUpdate is null when
// the message produced no state transition.
type ChatResponse struct {
	Response     string      `json:"response"`
	DeviceUpdate *chat.Delta `json:"device_update"`
}

// ListDevicesResponse is returned from GET /devices
type ListDevicesResponse struct {
	Devices []*device.Device `json:"devices"`
	Count   int              `json:"count"`
}

// DeviceResponse is returned from single-device endpoints
type DeviceResponse struct {
	Device *device.Device `json:"device"`
}

// ListRulesResponse is returned from GET /automations
type ListRulesResponse struct {
	Rules []*db.Rule `json:"rules"`
	Count int        `json:"count"`
}

// RuleResponse is returned from POST /automations
type RuleResponse struct {
	Rule *db.Rule `json:"rule"`
}
