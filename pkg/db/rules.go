package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrRuleNotFound = errors.New("automation rule not found")

// Rule represents a stored automation rule. Rules are persisted and
// listed only; evaluation is out of scope.
type Rule struct {
	ID               string    `json:"id"`
	OwnerID          string    `json:"owner_id"`
	Name             string    `json:"name"`
	TriggerDeviceID  string    `json:"trigger_device_id"`
	TriggerCondition string    `json:"trigger_condition"`
	ActionDeviceID   string    `json:"action_device_id"`
	ActionState      string    `json:"action_state"`
	CreatedAt        time.Time `json:"created_at"`
}

// RuleStore provides owner-scoped automation rule persistence.
type RuleStore interface {
	ListByOwner(ctx context.Context, ownerID string) ([]*Rule, error)
	Create(ctx context.Context, r *Rule) error
	Delete(ctx context.Context, ownerID, id string) error
}

// Rules returns a RuleStore for this database.
func (db *DB) Rules() RuleStore {
	return &ruleStore{db: db}
}

type ruleStore struct {
	db *DB
}

func (s *ruleStore) ListByOwner(ctx context.Context, ownerID string) ([]*Rule, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, owner_id, name, trigger_device_id, trigger_condition,
		       action_device_id, action_state, created_at
		FROM automation_rules
		WHERE owner_id = ?
		ORDER BY created_at, id
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var rules []*Rule
	for rows.Next() {
		r := &Rule{}
		var createdAt string
		if err := rows.Scan(&r.ID, &r.OwnerID, &r.Name, &r.TriggerDeviceID, &r.TriggerCondition,
			&r.ActionDeviceID, &r.ActionState, &createdAt); err != nil {
			return nil, err
		}
		r.CreatedAt, _ = time.Parse(time.DateTime, createdAt)
		rules = append(rules, r)
	}
	return rules, rows.Err()
}

func (s *ruleStore) Create(ctx context.Context, r *Rule) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO automation_rules
			(id, owner_id, name, trigger_device_id, trigger_condition, action_device_id, action_state)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, r.ID, r.OwnerID, r.Name, r.TriggerDeviceID, r.TriggerCondition, r.ActionDeviceID, r.ActionState)
	if err != nil {
		return fmt.Errorf("failed to create automation rule: %w", err)
	}
	return nil
}

func (s *ruleStore) Delete(ctx context.Context, ownerID, id string) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM automation_rules WHERE owner_id = ? AND id = ?
	`, ownerID, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrRuleNotFound
	}
	return nil
}
