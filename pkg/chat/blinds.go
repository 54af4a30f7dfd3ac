package chat

import (
	"fmt"
	"strings"

	"github.com/mfigueredo/hearth/pkg/device"
)

// handleBlinds interprets blinds commands: open (fully or halfway),
// close, or a specific open percentage.
func handleBlinds(message string, d *device.Device) (string, *Delta) {
	message = strings.ToLower(message)

	if strings.Contains(message, "open") {
		if containsAny(message, "partially", "half") {
			return fmt.Sprintf("Partially opened the %s.", d.Name), &Delta{DeviceID: d.ID, State: "half_open"}
		}
		return fmt.Sprintf("Opened the %s.", d.Name), &Delta{DeviceID: d.ID, State: "open"}
	}
	if strings.Contains(message, "close") {
		return fmt.Sprintf("Closed the %s.", d.Name), &Delta{DeviceID: d.ID, State: "closed"}
	}

	if pct, ok := extractInt(message); ok {
		if pct < 0 || pct > 100 {
			return "Please specify a percentage between 0% and 100%.", nil
		}
		state := fmt.Sprintf("open_%d%%", pct)
		return fmt.Sprintf("Set %s to %d%% open.", d.Name, pct), &Delta{DeviceID: d.ID, State: state}
	}

	return fmt.Sprintf("The %s are currently %s. You can open/close them or set a specific percentage.", d.Name, d.State), nil
}
