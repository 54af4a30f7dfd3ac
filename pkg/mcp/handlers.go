package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mfigueredo/hearth/pkg/db"
	"github.com/mfigueredo/hearth/pkg/device"
)

func (s *Server) handleSendMessage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	user, err := s.resolveUser(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	message, err := requiredString(request, "message")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	reply := s.dispatcher.ProcessMessage(ctx, user.ID, message)

	out := SendMessageOutput{
		Response:     reply.Text,
		DeviceUpdate: reply.Update,
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleListDevices(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	user, err := s.resolveUser(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	devices, err := s.devices.ListByOwner(ctx, user.ID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list devices: %s", err)), nil
	}

	infos := make([]DeviceInfo, 0, len(devices))
	for _, d := range devices {
		infos = append(infos, DeviceToInfo(d))
	}

	out := ListDevicesOutput{
		Devices: infos,
		Count:   len(infos),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleGetDevice(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	user, err := s.resolveUser(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	id, err := requiredString(request, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	d, err := s.devices.Get(ctx, user.ID, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("device not found: %s", err)), nil
	}

	out := GetDeviceOutput{Device: DeviceToInfo(d)}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleCreateDevice(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	user, err := s.resolveUser(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	name, err := requiredString(request, "name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	category, err := requiredString(request, "category")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	d := &device.Device{
		OwnerID:  user.ID,
		Name:     name,
		Category: device.Category(category),
		State:    "off",
	}
	if err := s.devices.Create(ctx, d); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to create device: %s", err)), nil
	}

	out := CreateDeviceOutput{Device: DeviceToInfo(d)}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleRemoveDevice(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	user, err := s.resolveUser(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	id, err := requiredString(request, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := s.devices.Delete(ctx, user.ID, id); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to remove device: %s", err)), nil
	}

	out := RemoveDeviceOutput{
		Success: true,
		Message: fmt.Sprintf("Device %q removed", id),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

// --- helpers ---

func (s *Server) resolveUser(ctx context.Context, request mcp.CallToolRequest) (*db.User, error) {
	username, err := requiredString(request, "username")
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("unknown user %q", username)
	}
	return user, nil
}

func requiredString(request mcp.CallToolRequest, key string) (string, error) {
	args := request.GetArguments()
	v, ok := args[key]
	if !ok || v == nil {
		return "", fmt.Errorf("required parameter %q is missing", key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("parameter %q must be a non-empty string", key)
	}
	return s, nil
}

func formatJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error":"failed to marshal response: %s"}`, err)
	}
	return string(b)
}
