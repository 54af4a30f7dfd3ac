package device

import (
	"time"

	"github.com/google/uuid"
)

// Category is a fixed device type addressable from chat.
type Category string

const (
	CategoryLight      Category = "light"
	CategoryThermostat Category = "thermostat"
	CategoryLock       Category = "lock"
	CategorySpeaker    Category = "speaker"
	CategoryFan        Category = "fan"
	CategoryBlinds     Category = "blinds"
	CategoryCamera     Category = "camera"
	CategoryOutlet     Category = "outlet"
)

// Categories lists every valid category in a fixed order.
var Categories = []Category{
	CategoryLight,
	CategoryThermostat,
	CategoryLock,
	CategorySpeaker,
	CategoryFan,
	CategoryBlinds,
	CategoryCamera,
	CategoryOutlet,
}

// IsValidCategory returns true if c is one of the fixed categories.
func IsValidCategory(c Category) bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// Device represents a virtual smart-home device owned by a user.
// State is a category-specific encoded string (e.g. "on_50%", "72°F",
// "locked") mutated only by the chat engine and device endpoints.
type Device struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Category  Category  `json:"category"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StarterDevices returns the fixed set of devices created for a new
// user at registration.
func StarterDevices(ownerID string) []Device {
	starters := []struct {
		name     string
		category Category
		state    string
	}{
		{"Living Room Light", CategoryLight, "off"},
		{"Home Thermostat", CategoryThermostat, "72°F"},
		{"Front Door Lock", CategoryLock, "locked"},
		{"Living Room Camera", CategoryCamera, "off"},
		{"Living Room Speaker", CategorySpeaker, "off"},
		{"Bedroom Fan", CategoryFan, "off"},
		{"Living Room Blinds", CategoryBlinds, "closed"},
		{"Kitchen Outlet", CategoryOutlet, "off"},
	}

	devices := make([]Device, 0, len(starters))
	for _, s := range starters {
		devices = append(devices, Device{
			ID:       uuid.NewString(),
			OwnerID:  ownerID,
			Name:     s.name,
			Category: s.category,
			State:    s.state,
		})
	}
	return devices
}
