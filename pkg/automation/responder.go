package automation

import (
	"context"
	"fmt"
	"strings"

	"github.com/mfigueredo/hearth/pkg/db"
)

// Responder answers chat messages classified as automation requests.
// It reads rule storage only; creating and deleting rules happens
// through the automation endpoints, and rule evaluation is out of
// scope entirely.
type Responder struct {
	rules db.RuleStore
}

// NewResponder creates a Responder over the given rule store.
func NewResponder(rules db.RuleStore) *Responder {
	return &Responder{rules: rules}
}

// Respond summarizes the user's automation rules. A message asking to
// list rules gets the full summary; anything else gets a pointer to
// the automation endpoints.
func (r *Responder) Respond(ctx context.Context, ownerID, message string) (string, error) {
	rules, err := r.rules.ListByOwner(ctx, ownerID)
	if err != nil {
		return "", fmt.Errorf("failed to list automation rules: %w", err)
	}

	message = strings.ToLower(message)

	if strings.Contains(message, "list") || strings.Contains(message, "show") {
		if len(rules) == 0 {
			return "You don't have any automation rules yet. You can create one through the automations page.", nil
		}
		names := make([]string, 0, len(rules))
		for _, rule := range rules {
			names = append(names, rule.Name)
		}
		return fmt.Sprintf("You have %d automation rule(s): %s.", len(rules), strings.Join(names, ", ")), nil
	}

	return fmt.Sprintf("You have %d automation rule(s). To create or change rules, use the automations page.", len(rules)), nil
}
