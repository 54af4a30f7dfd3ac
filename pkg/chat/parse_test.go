package chat

import "testing"

func TestExtractInt(t *testing.T) {
	tests := []struct {
		message string
		want    int
		ok      bool
	}{
		{"set brightness to 50%", 50, true},
		{"dim to 30", 30, true},
		{"brightness 0", 0, true},
		{"open them 150%", 150, true},
		{"no numbers here", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := extractInt(tt.message)
		if got != tt.want || ok != tt.ok {
			t.Errorf("extractInt(%q) = (%d, %v), want (%d, %v)", tt.message, got, ok, tt.want, tt.ok)
		}
	}
}

func TestExtractDigitToken(t *testing.T) {
	tests := []struct {
		message string
		want    int
		ok      bool
	}{
		{"set temperature to 68", 68, true},
		{"volume 25 please", 25, true},
		{"set it to 68,", 0, false},  // punctuation attached
		{"set it to 50%", 0, false},  // percent attached
		{"warmer by -5", 0, false},   // sign is not a digit
		{"set it to 68 or 70", 68, true},
		{"set temperature", 0, false},
	}

	for _, tt := range tests {
		got, ok := extractDigitToken(tt.message)
		if got != tt.want || ok != tt.ok {
			t.Errorf("extractDigitToken(%q) = (%d, %v), want (%d, %v)", tt.message, got, ok, tt.want, tt.ok)
		}
	}
}

func TestExtractTime(t *testing.T) {
	tests := []struct {
		message string
		want    string
		ok      bool
	}{
		{"schedule the plug for 7pm", "7pm", true},
		{"schedule for 10:30 am", "10:30 am", true},
		{"schedule it at 22:15", "22:15", true},
		{"schedule the outlet", "", false},
	}

	for _, tt := range tests {
		got, ok := extractTime(tt.message)
		if got != tt.want || ok != tt.ok {
			t.Errorf("extractTime(%q) = (%q, %v), want (%q, %v)", tt.message, got, ok, tt.want, tt.ok)
		}
	}
}

func TestExtractColor(t *testing.T) {
	tests := []struct {
		message string
		want    string
		ok      bool
	}{
		{"change the light to blue", "blue", true},
		{"make it red", "red", true},
		{"turn on the light", "", false},
	}

	for _, tt := range tests {
		got, ok := extractColor(tt.message)
		if got != tt.want || ok != tt.ok {
			t.Errorf("extractColor(%q) = (%q, %v), want (%q, %v)", tt.message, got, ok, tt.want, tt.ok)
		}
	}
}
