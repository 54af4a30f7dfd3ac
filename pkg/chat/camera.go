package chat

import (
	"fmt"
	"strings"

	"github.com/mfigueredo/hearth/pkg/device"
)

// handleCamera interprets camera commands: power, recording control,
// snapshots, and motion detection toggling.
func handleCamera(message string, d *device.Device) (string, *Delta) {
	message = strings.ToLower(message)

	if strings.Contains(message, "turn on") {
		return fmt.Sprintf("Started recording on %s.", d.Name), &Delta{DeviceID: d.ID, State: "recording"}
	}
	if strings.Contains(message, "turn off") {
		return fmt.Sprintf("Stopped recording on %s.", d.Name), &Delta{DeviceID: d.ID, State: "off"}
	}

	if strings.Contains(message, "start recording") {
		return fmt.Sprintf("Started recording on %s.", d.Name), &Delta{DeviceID: d.ID, State: "recording"}
	}
	if strings.Contains(message, "stop recording") {
		return fmt.Sprintf("Stopped recording on %s.", d.Name), &Delta{DeviceID: d.ID, State: "standby"}
	}
	if containsAny(message, "take picture", "snapshot") {
		return fmt.Sprintf("Took a snapshot with %s.", d.Name), &Delta{DeviceID: d.ID, State: "snapshot"}
	}

	if strings.Contains(message, "motion detection") {
		// Disable is checked first: "motion" itself contains "on", so
		// an enable-first check would never reach the disable branch.
		if containsAny(message, "disable", "off") {
			return fmt.Sprintf("Disabled motion detection on %s.", d.Name), &Delta{DeviceID: d.ID, State: "standby"}
		}
		if containsAny(message, "enable", "on") {
			return fmt.Sprintf("Enabled motion detection on %s.", d.Name), &Delta{DeviceID: d.ID, State: "motion_detection"}
		}
	}

	return fmt.Sprintf("The %s is currently %s. You can control recording, take snapshots, or toggle motion detection.", d.Name, d.State), nil
}
