package chat

import "strings"

// Intent is the classification of a chat message into a device
// category, an automation request, or unknown.
type Intent string

const (
	IntentLights      Intent = "lights"
	IntentTemperature Intent = "temperature"
	IntentDoor        Intent = "door"
	IntentSpeaker     Intent = "speaker"
	IntentFan         Intent = "fan"
	IntentBlinds      Intent = "blinds"
	IntentCamera      Intent = "camera"
	IntentOutlet      Intent = "outlet"
	IntentAutomation  Intent = "automation"
	IntentUnknown     Intent = "unknown"
)

// intentKeywords maps each intent to its trigger keywords. A slice,
// not a map: an ambiguous message containing keywords from two
// categories must always resolve to the same intent, so evaluation
// order has to be fixed across runs.
var intentKeywords = []struct {
	intent   Intent
	keywords []string
}{
	{IntentLights, []string{"light", "lights", "lamp", "bright", "dim", "color"}},
	{IntentTemperature, []string{"temperature", "thermostat", "heat", "cool", "warm"}},
	{IntentDoor, []string{"door", "lock", "unlock", "entry"}},
	{IntentSpeaker, []string{"speaker", "volume", "music", "play", "pause", "stop", "sound", "mute"}},
	{IntentFan, []string{"fan", "speed", "oscillate", "swing"}},
	{IntentBlinds, []string{"blind", "blinds", "shade", "shades"}},
	{IntentCamera, []string{"camera", "record", "snapshot", "motion"}},
	{IntentOutlet, []string{"outlet", "plug", "socket", "smart plug"}},
	{IntentAutomation, []string{"automation", "rule", "schedule", "routine"}},
}

// Classify maps a raw chat message to an intent by substring keyword
// matching. The first intent with any matching keyword wins; messages
// matching nothing classify as IntentUnknown. Pure function.
func Classify(message string) Intent {
	message = strings.ToLower(message)
	for _, entry := range intentKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(message, keyword) {
				return entry.intent
			}
		}
	}
	return IntentUnknown
}
