package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/mfigueredo/hearth/pkg/device"
	"github.com/rs/zerolog"
)

// fakeStore serves a fixed set of devices keyed by category and
// records state updates. Configurable failures for error paths.
type fakeStore struct {
	devices     map[device.Category]*device.Device
	updates     map[string]string
	lookupErr   error
	updateErr   error
	lookupPanic bool
}

func newFakeStore(devices ...*device.Device) *fakeStore {
	s := &fakeStore{
		devices: make(map[device.Category]*device.Device),
		updates: make(map[string]string),
	}
	for _, d := range devices {
		s.devices[d.Category] = d
	}
	return s
}

func (s *fakeStore) GetByOwnerAndCategory(_ context.Context, _ string, category device.Category) (*device.Device, error) {
	if s.lookupPanic {
		panic("store blew up")
	}
	if s.lookupErr != nil {
		return nil, s.lookupErr
	}
	d, ok := s.devices[category]
	if !ok {
		return nil, device.ErrNotFound
	}
	return d, nil
}

func (s *fakeStore) UpdateState(_ context.Context, id, state string) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updates[id] = state
	return nil
}

type fakeResponder struct {
	text string
	err  error
}

func (r *fakeResponder) Respond(_ context.Context, _, _ string) (string, error) {
	return r.text, r.err
}

func newTestDispatcher(store *fakeStore) *Dispatcher {
	return NewDispatcher(store, &fakeResponder{text: "You have no automation rules yet."}, zerolog.Nop())
}

func TestProcessMessage_LightOn(t *testing.T) {
	store := newFakeStore(testDevice("Living Room Light", device.CategoryLight, "off"))
	d := newTestDispatcher(store)

	reply := d.ProcessMessage(context.Background(), "user-1", "Turn on the living room light")

	if reply.Text != "I've turned on the Living Room Light." {
		t.Errorf("text = %q", reply.Text)
	}
	if reply.Update == nil || reply.Update.State != "on_100%" {
		t.Fatalf("update = %+v, want state on_100%%", reply.Update)
	}
	if got := store.updates["dev-1"]; got != "on_100%" {
		t.Errorf("persisted state = %q, want on_100%%", got)
	}
}

func TestProcessMessage_Thermostat(t *testing.T) {
	store := newFakeStore(testDevice("Home Thermostat", device.CategoryThermostat, "72°F"))
	d := newTestDispatcher(store)

	reply := d.ProcessMessage(context.Background(), "user-1", "Set the thermostat to 68")

	if reply.Text != "I've set the temperature to 68°F." {
		t.Errorf("text = %q", reply.Text)
	}
	if got := store.updates["dev-1"]; got != "68°F" {
		t.Errorf("persisted state = %q, want 68°F", got)
	}
}

func TestProcessMessage_UnknownGetsHelp(t *testing.T) {
	store := newFakeStore()
	d := newTestDispatcher(store)

	reply := d.ProcessMessage(context.Background(), "user-1", "what's the weather like?")

	if reply.Text != helpText {
		t.Errorf("text = %q, want help text", reply.Text)
	}
	if reply.Update != nil {
		t.Errorf("update = %+v, want nil", reply.Update)
	}
}

func TestProcessMessage_MissingDevice(t *testing.T) {
	store := newFakeStore() // user owns nothing
	d := newTestDispatcher(store)

	tests := []struct {
		message string
		want    string
	}{
		{"turn on the light", "No light device found."},
		{"set the thermostat to 68", "No thermostat found."},
		{"lock the door", "No door lock found."},
		{"play some music", "No speaker found."},
		{"turn on the fan", "No fan found."},
		{"open the blinds", "No blinds found."},
		{"turn on the camera", "No camera found."},
		{"turn off the outlet", "No smart plug found."},
	}

	for _, tt := range tests {
		reply := d.ProcessMessage(context.Background(), "user-1", tt.message)
		if reply.Text != tt.want {
			t.Errorf("ProcessMessage(%q).Text = %q, want %q", tt.message, reply.Text, tt.want)
		}
		if reply.Update != nil {
			t.Errorf("ProcessMessage(%q).Update = %+v, want nil", tt.message, reply.Update)
		}
	}
}

func TestProcessMessage_StatusQueryDoesNotMutate(t *testing.T) {
	store := newFakeStore(testDevice("Living Room Light", device.CategoryLight, "on_50%"))
	d := newTestDispatcher(store)

	reply := d.ProcessMessage(context.Background(), "user-1", "light")

	if reply.Update != nil {
		t.Errorf("update = %+v, want nil", reply.Update)
	}
	if len(store.updates) != 0 {
		t.Errorf("updates = %v, want none", store.updates)
	}
}

func TestProcessMessage_Automation(t *testing.T) {
	store := newFakeStore()
	d := newTestDispatcher(store)

	reply := d.ProcessMessage(context.Background(), "user-1", "show my automation rules")

	if reply.Text != "You have no automation rules yet." {
		t.Errorf("text = %q", reply.Text)
	}
}

func TestProcessMessage_AutomationErrorApologizes(t *testing.T) {
	store := newFakeStore()
	d := NewDispatcher(store, &fakeResponder{err: errors.New("db down")}, zerolog.Nop())

	reply := d.ProcessMessage(context.Background(), "user-1", "show my automation rules")

	if reply.Text != apologyText {
		t.Errorf("text = %q, want apology", reply.Text)
	}
}

func TestProcessMessage_LookupErrorApologizes(t *testing.T) {
	store := newFakeStore()
	store.lookupErr = errors.New("db locked")
	d := newTestDispatcher(store)

	reply := d.ProcessMessage(context.Background(), "user-1", "turn on the light")

	if reply.Text != apologyText {
		t.Errorf("text = %q, want apology", reply.Text)
	}
}

func TestProcessMessage_PersistErrorApologizes(t *testing.T) {
	store := newFakeStore(testDevice("Living Room Light", device.CategoryLight, "off"))
	store.updateErr = errors.New("disk full")
	d := newTestDispatcher(store)

	reply := d.ProcessMessage(context.Background(), "user-1", "turn on the light")

	if reply.Text != apologyText {
		t.Errorf("text = %q, want apology", reply.Text)
	}
	if reply.Update != nil {
		t.Errorf("update = %+v, want nil", reply.Update)
	}
}

func TestProcessMessage_RecoversFromPanic(t *testing.T) {
	store := newFakeStore()
	store.lookupPanic = true
	d := newTestDispatcher(store)

	reply := d.ProcessMessage(context.Background(), "user-1", "turn on the light")

	if reply.Text != apologyText {
		t.Errorf("text = %q, want apology", reply.Text)
	}
}

// Arbitrary input must always produce a well-formed reply.
func TestProcessMessage_NeverPanics(t *testing.T) {
	store := newFakeStore(
		testDevice("Living Room Light", device.CategoryLight, "off"),
		testDevice("Living Room Speaker", device.CategorySpeaker, "off"),
	)
	d := newTestDispatcher(store)

	messages := []string{
		"",
		"   ",
		"🎉🎊✨",
		"LIGHT LIGHT LIGHT LIGHT",
		"set brightness to 99999999999999999999",
		"volume \x00\x01",
		"ライトをつけて light",
	}

	for _, m := range messages {
		reply := d.ProcessMessage(context.Background(), "user-1", m)
		if reply.Text == "" {
			t.Errorf("ProcessMessage(%q) returned empty text", m)
		}
	}
}
