package chat

import (
	"fmt"
	"strings"

	"github.com/mfigueredo/hearth/pkg/device"
)

// handleLock interprets door lock commands. "lock" alone locks;
// "unlock" unlocks. The lock check excludes "unlock" because the
// latter contains the former as a substring.
func handleLock(message string, d *device.Device) (string, *Delta) {
	message = strings.ToLower(message)

	if strings.Contains(message, "lock") && !strings.Contains(message, "unlock") {
		return fmt.Sprintf("I've locked the %s.", d.Name), &Delta{DeviceID: d.ID, State: "locked"}
	}
	if strings.Contains(message, "unlock") {
		return fmt.Sprintf("I've unlocked the %s.", d.Name), &Delta{DeviceID: d.ID, State: "unlocked"}
	}

	return fmt.Sprintf("The %s is currently %s. Would you like me to lock or unlock it?", d.Name, d.State), nil
}
