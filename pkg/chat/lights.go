package chat

import (
	"fmt"
	"strings"

	"github.com/mfigueredo/hearth/pkg/device"
)

// handleLights interprets light commands: brightness percentages,
// colors, and plain on/off. A number only counts as a brightness
// request when paired with a brightness keyword.
func handleLights(message string, d *device.Device) (string, *Delta) {
	message = strings.ToLower(message)

	if level, ok := extractInt(message); ok && containsAny(message, "brightness", "dim", "bright") {
		if level < 0 || level > 100 {
			return "Please specify brightness between 0% and 100%.", nil
		}
		state := fmt.Sprintf("on_%d%%", level)
		return fmt.Sprintf("Set %s brightness to %d%%.", d.Name, level), &Delta{DeviceID: d.ID, State: state}
	}

	if color, ok := extractColor(message); ok {
		state := "on_" + color
		return fmt.Sprintf("Changed %s color to %s.", d.Name, color), &Delta{DeviceID: d.ID, State: state}
	}

	if strings.Contains(message, "on") {
		return fmt.Sprintf("I've turned on the %s.", d.Name), &Delta{DeviceID: d.ID, State: "on_100%"}
	}
	if strings.Contains(message, "off") {
		return fmt.Sprintf("I've turned off the %s.", d.Name), &Delta{DeviceID: d.ID, State: "off"}
	}

	return fmt.Sprintf("The %s is currently %s. You can turn it on/off, adjust brightness, or change colors.", d.Name, d.State), nil
}
