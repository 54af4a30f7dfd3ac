package chat

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Intent
	}{
		{"light on", "Turn on the living room light", IntentLights},
		{"lamp", "is the lamp still on?", IntentLights},
		{"dim", "dim it a bit", IntentLights},
		{"thermostat", "Set the thermostat to 68", IntentTemperature},
		{"warm", "make it warmer in here", IntentTemperature},
		{"lock", "lock the front door", IntentDoor},
		{"unlock", "unlock please", IntentDoor},
		{"volume", "volume up", IntentSpeaker},
		{"music", "play some music", IntentSpeaker},
		{"fan", "turn on the fan", IntentFan},
		{"oscillate", "oscillate", IntentFan},
		{"blinds", "open the blinds", IntentBlinds},
		{"shades", "close the shades halfway", IntentBlinds},
		{"camera", "turn on the camera", IntentCamera},
		{"snapshot", "take a snapshot", IntentCamera},
		{"outlet", "turn off the outlet", IntentOutlet},
		{"plug", "switch the plug on", IntentOutlet},
		{"automation", "create an automation", IntentAutomation},
		{"routine", "what routines do I have", IntentAutomation},
		{"case insensitive", "TURN ON THE LIGHTS", IntentLights},
		{"unknown", "what's the weather like?", IntentUnknown},
		{"empty", "", IntentUnknown},
		{"emoji", "🏠🔥", IntentUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.message); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.message, got, tt.want)
			}
		})
	}
}

// Classification order is fixed: when a message names two categories,
// the one listed first always wins, no matter how often Classify runs.
func TestClassify_Precedence(t *testing.T) {
	tests := []struct {
		message string
		want    Intent
	}{
		{"turn off the light and the fan", IntentLights},
		{"lock the door and pause the music", IntentDoor},
		{"set thermostat and open blinds", IntentTemperature},
	}

	for _, tt := range tests {
		for i := 0; i < 50; i++ {
			if got := Classify(tt.message); got != tt.want {
				t.Fatalf("Classify(%q) = %v on run %d, want %v", tt.message, got, i, tt.want)
			}
		}
	}
}
