package chat

import (
	"github.com/mfigueredo/hearth/pkg/device"
)

// Delta records a device mutation produced by a handler: the device
// and the new encoded state it should be persisted with.
type Delta struct {
	DeviceID string `json:"device_id"`
	State    string `json:"state"`
}

// Reply is the result of processing one chat message.
type Reply struct {
	Text   string `json:"response"`
	Update *Delta `json:"device_update"`
}

// HandlerFunc interprets a chat message against the user's device of
// one category. It returns the response text and, when the message
// produced a state transition, the delta to persist. Handlers are pure
// over the passed device; persistence is the dispatcher's job.
type HandlerFunc func(message string, d *device.Device) (string, *Delta)

// route binds an intent to the device category it addresses, the
// handler that interprets it, and the response used when the user owns
// no device of that category.
type route struct {
	intent   Intent
	category device.Category
	missing  string
	handle   HandlerFunc
}

// routes is the fixed dispatch table for device intents. Automation
// and unknown intents are resolved by the dispatcher itself.
var routes = []route{
	{IntentLights, device.CategoryLight, "No light device found.", handleLights},
	{IntentTemperature, device.CategoryThermostat, "No thermostat found.", handleThermostat},
	{IntentDoor, device.CategoryLock, "No door lock found.", handleLock},
	{IntentSpeaker, device.CategorySpeaker, "No speaker found.", handleSpeaker},
	{IntentFan, device.CategoryFan, "No fan found.", handleFan},
	{IntentBlinds, device.CategoryBlinds, "No blinds found.", handleBlinds},
	{IntentCamera, device.CategoryCamera, "No camera found.", handleCamera},
	{IntentOutlet, device.CategoryOutlet, "No smart plug found.", handleOutlet},
}

func routeFor(intent Intent) (route, bool) {
	for _, r := range routes {
		if r.intent == intent {
			return r, true
		}
	}
	return route{}, false
}
