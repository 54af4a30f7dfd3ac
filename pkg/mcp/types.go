package mcp

import (
	"github.com/mfigueredo/hearth/pkg/chat"
	"github.com/mfigueredo/hearth/pkg/device"
)

// --- Send Message Tool ---

// SendMessageOutput is the output for the send_message tool
type SendMessageOutput struct {
	Response     string      `json:"response" jsonschema:"description=Assistant response text"`
	DeviceUpdate *chat.Delta `json:"device_update,omitempty" jsonschema:"description=Device state change if one occurred"`
}

// --- Device Tools ---

// DeviceInfo represents a device in tool outputs
type DeviceInfo struct {
	ID       string `json:"id" jsonschema:"description=Unique device identifier"`
	Name     string `json:"name" jsonschema:"description=User-friendly device name"`
	Category string `json:"category" jsonschema:"description=Device category (light/thermostat/lock/speaker/fan/blinds/camera/outlet)"`
	State    string `json:"state" jsonschema:"description=Current encoded device state"`
}

// ListDevicesOutput is the output for the list_devices tool
type ListDevicesOutput struct {
	Devices []DeviceInfo `json:"devices" jsonschema:"description=The user's devices"`
	Count   int          `json:"count" jsonschema:"description=Total number of devices"`
}

// GetDeviceOutput is the output for the get_device tool
type GetDeviceOutput struct {
	Device DeviceInfo `json:"device"`
}

// CreateDeviceOutput is the output for the create_device tool
type CreateDeviceOutput struct {
	Device DeviceInfo `json:"device"`
}

// RemoveDeviceOutput is the output for the remove_device tool
type RemoveDeviceOutput struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DeviceToInfo converts a device to its tool-output shape
func DeviceToInfo(d *device.Device) DeviceInfo {
	return DeviceInfo{
		ID:       d.ID,
		Name:     d.Name,
		Category: string(d.Category),
		State:    d.State,
	}
}
