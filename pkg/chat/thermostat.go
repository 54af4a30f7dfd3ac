package chat

import (
	"fmt"
	"strings"

	"github.com/mfigueredo/hearth/pkg/device"
)

// handleThermostat interprets temperature commands. "set" plus the
// first digit-only token becomes the target in Fahrenheit; anything
// else reads back the current temperature.
func handleThermostat(message string, d *device.Device) (string, *Delta) {
	message = strings.ToLower(message)

	if strings.Contains(message, "set") {
		temp, ok := extractDigitToken(message)
		if !ok {
			return "Please specify a temperature value.", nil
		}
		state := fmt.Sprintf("%d°F", temp)
		return fmt.Sprintf("I've set the temperature to %d°F.", temp), &Delta{DeviceID: d.ID, State: state}
	}

	return fmt.Sprintf("The current temperature is %s.", d.State), nil
}
