package chat

import (
	"fmt"
	"strings"

	"github.com/mfigueredo/hearth/pkg/device"
)

// handleFan interprets fan commands: power, speed, and oscillation.
// Turning on defaults to medium speed.
func handleFan(message string, d *device.Device) (string, *Delta) {
	message = strings.ToLower(message)

	if strings.Contains(message, "turn on") {
		return fmt.Sprintf("Turned on the %s at medium speed.", d.Name), &Delta{DeviceID: d.ID, State: "on_medium"}
	}
	if strings.Contains(message, "turn off") {
		return fmt.Sprintf("Turned off the %s.", d.Name), &Delta{DeviceID: d.ID, State: "off"}
	}

	if containsAny(message, "high", "fast") {
		return fmt.Sprintf("Set %s to high speed.", d.Name), &Delta{DeviceID: d.ID, State: "on_high"}
	}
	if strings.Contains(message, "medium") {
		return fmt.Sprintf("Set %s to medium speed.", d.Name), &Delta{DeviceID: d.ID, State: "on_medium"}
	}
	if containsAny(message, "low", "slow") {
		return fmt.Sprintf("Set %s to low speed.", d.Name), &Delta{DeviceID: d.ID, State: "on_low"}
	}

	if containsAny(message, "oscillate", "swing") {
		if strings.Contains(message, "stop") {
			return fmt.Sprintf("Stopped %s oscillation.", d.Name), &Delta{DeviceID: d.ID, State: "on_fixed"}
		}
		return fmt.Sprintf("Started %s oscillation.", d.Name), &Delta{DeviceID: d.ID, State: "on_oscillating"}
	}

	return fmt.Sprintf("The %s is currently %s. You can control power, speed, and oscillation.", d.Name, d.State), nil
}
