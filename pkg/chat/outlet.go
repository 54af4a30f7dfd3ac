package chat

import (
	"fmt"
	"strings"

	"github.com/mfigueredo/hearth/pkg/device"
)

// handleOutlet interprets smart plug commands: power on/off and
// schedule requests. Schedules are acknowledged with the extracted
// time but not persisted.
func handleOutlet(message string, d *device.Device) (string, *Delta) {
	message = strings.ToLower(message)

	if containsAny(message, "turn on", "power on") {
		return fmt.Sprintf("I've turned on the %s.", d.Name), &Delta{DeviceID: d.ID, State: "on"}
	}
	if containsAny(message, "turn off", "power off") {
		return fmt.Sprintf("I've turned off the %s.", d.Name), &Delta{DeviceID: d.ID, State: "off"}
	}

	if strings.Contains(message, "schedule") {
		at, ok := extractTime(message)
		if !ok {
			return "Please specify a time for scheduling.", nil
		}
		return fmt.Sprintf("I'll schedule the %s for %s.", d.Name, at), nil
	}

	return fmt.Sprintf("The %s is currently %s.", d.Name, d.State), nil
}
