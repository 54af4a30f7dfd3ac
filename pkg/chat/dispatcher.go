package chat

import (
	"context"
	"errors"

	"github.com/mfigueredo/hearth/pkg/device"
	"github.com/rs/zerolog"
)

const (
	helpText = "I'm not sure how to help with that. You can control these devices: " +
		"lights, temperature, doors, speakers, fans, blinds, cameras, and outlets."
	apologyText = "Sorry, there was an error processing your request."
)

// DeviceStore is the persistence collaborator the dispatcher needs:
// resolve a user's device by category and persist handler deltas.
type DeviceStore interface {
	GetByOwnerAndCategory(ctx context.Context, ownerID string, category device.Category) (*device.Device, error)
	UpdateState(ctx context.Context, id, state string) error
}

// AutomationResponder answers chat messages classified as automation
// requests. Rule storage and evaluation live outside the chat engine.
type AutomationResponder interface {
	Respond(ctx context.Context, ownerID, message string) (string, error)
}

// Dispatcher routes a chat message through intent classification to
// the matching category handler and persists the resulting state
// transition. It always produces a well-formed Reply: unexpected
// failures, including handler panics, become a generic apology.
type Dispatcher struct {
	devices     DeviceStore
	automations AutomationResponder
	log         zerolog.Logger
}

// NewDispatcher creates a Dispatcher over the given collaborators.
func NewDispatcher(devices DeviceStore, automations AutomationResponder, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		devices:     devices,
		automations: automations,
		log:         log,
	}
}

// ProcessMessage interprets one chat message for one user. The reply
// carries the response text and, when a device changed state, the
// persisted delta.
func (d *Dispatcher) ProcessMessage(ctx context.Context, userID, message string) (reply Reply) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error().
				Str("user_id", userID).
				Interface("panic", r).
				Msg("chat handler panicked")
			reply = Reply{Text: apologyText}
		}
	}()

	intent := Classify(message)

	switch intent {
	case IntentUnknown:
		return Reply{Text: helpText}

	case IntentAutomation:
		text, err := d.automations.Respond(ctx, userID, message)
		if err != nil {
			d.log.Error().Err(err).Str("user_id", userID).Msg("automation responder failed")
			return Reply{Text: apologyText}
		}
		return Reply{Text: text}
	}

	r, ok := routeFor(intent)
	if !ok {
		// Every non-automation intent has a route; getting here means
		// the intent table and route table drifted apart.
		d.log.Error().Str("intent", string(intent)).Msg("no route for intent")
		return Reply{Text: apologyText}
	}

	dev, err := d.devices.GetByOwnerAndCategory(ctx, userID, r.category)
	if err != nil {
		if errors.Is(err, device.ErrNotFound) {
			return Reply{Text: r.missing}
		}
		d.log.Error().Err(err).
			Str("user_id", userID).
			Str("category", string(r.category)).
			Msg("device lookup failed")
		return Reply{Text: apologyText}
	}

	text, delta := r.handle(message, dev)
	if delta != nil {
		if err := d.devices.UpdateState(ctx, delta.DeviceID, delta.State); err != nil {
			d.log.Error().Err(err).
				Str("device_id", delta.DeviceID).
				Str("state", delta.State).
				Msg("failed to persist device state")
			return Reply{Text: apologyText}
		}
	}

	return Reply{Text: text, Update: delta}
}
