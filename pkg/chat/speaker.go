package chat

import (
	"fmt"
	"strings"

	"github.com/mfigueredo/hearth/pkg/device"
)

// handleSpeaker interprets speaker commands: power, playback
// transport, volume, and mute. Track skips ("next"/"previous") are
// acknowledged without a state transition. "unmute" is checked before
// "mute" since it contains it as a substring.
func handleSpeaker(message string, d *device.Device) (string, *Delta) {
	message = strings.ToLower(message)

	if containsAny(message, "turn on", "power on") {
		return fmt.Sprintf("I've turned on the %s.", d.Name), &Delta{DeviceID: d.ID, State: "on"}
	}
	if containsAny(message, "turn off", "power off") {
		return fmt.Sprintf("I've turned off the %s.", d.Name), &Delta{DeviceID: d.ID, State: "off"}
	}

	if strings.Contains(message, "play") {
		return fmt.Sprintf("Playing music on %s.", d.Name), &Delta{DeviceID: d.ID, State: "playing"}
	}
	if strings.Contains(message, "pause") {
		return fmt.Sprintf("Paused music on %s.", d.Name), &Delta{DeviceID: d.ID, State: "paused"}
	}
	if strings.Contains(message, "stop") {
		return fmt.Sprintf("Stopped music on %s.", d.Name), &Delta{DeviceID: d.ID, State: "stopped"}
	}
	if strings.Contains(message, "next") {
		return fmt.Sprintf("Skipped to next track on %s.", d.Name), nil
	}
	if containsAny(message, "previous", "prev") {
		return fmt.Sprintf("Skipped to previous track on %s.", d.Name), nil
	}

	if strings.Contains(message, "volume") {
		level, ok := extractDigitToken(message)
		if !ok {
			return "Please specify a valid volume level (0-100).", nil
		}
		if level < 0 || level > 100 {
			return "Please specify a volume level between 0 and 100.", nil
		}
		state := fmt.Sprintf("volume_%d", level)
		return fmt.Sprintf("Set %s volume to %d%%.", d.Name, level), &Delta{DeviceID: d.ID, State: state}
	}

	if strings.Contains(message, "unmute") {
		return fmt.Sprintf("Unmuted %s.", d.Name), &Delta{DeviceID: d.ID, State: "on"}
	}
	if strings.Contains(message, "mute") {
		return fmt.Sprintf("Muted %s.", d.Name), &Delta{DeviceID: d.ID, State: "muted"}
	}

	return fmt.Sprintf("The %s is currently %s. You can control power, playback, or volume.", d.Name, d.State), nil
}
