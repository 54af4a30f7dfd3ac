package automation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mfigueredo/hearth/pkg/db"
)

type fakeRuleStore struct {
	rules []*db.Rule
	err   error
}

func (s *fakeRuleStore) ListByOwner(_ context.Context, _ string) ([]*db.Rule, error) {
	return s.rules, s.err
}

func (s *fakeRuleStore) Create(_ context.Context, _ *db.Rule) error { return nil }

func (s *fakeRuleStore) Delete(_ context.Context, _, _ string) error { return nil }

func TestRespond_ListEmpty(t *testing.T) {
	r := NewResponder(&fakeRuleStore{})

	text, err := r.Respond(context.Background(), "user-1", "show my automation rules")
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if !strings.Contains(text, "don't have any automation rules") {
		t.Errorf("text = %q", text)
	}
}

func TestRespond_ListNamesRules(t *testing.T) {
	r := NewResponder(&fakeRuleStore{rules: []*db.Rule{
		{Name: "Evening lights"},
		{Name: "Night lock"},
	}})

	text, err := r.Respond(context.Background(), "user-1", "list my rules")
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if !strings.Contains(text, "Evening lights") || !strings.Contains(text, "Night lock") {
		t.Errorf("text = %q, want both rule names", text)
	}
	if !strings.Contains(text, "2 automation rule(s)") {
		t.Errorf("text = %q, want count", text)
	}
}

func TestRespond_OtherMessagesGetCount(t *testing.T) {
	r := NewResponder(&fakeRuleStore{rules: []*db.Rule{{Name: "Evening lights"}}})

	text, err := r.Respond(context.Background(), "user-1", "create an automation please")
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if !strings.Contains(text, "1 automation rule(s)") {
		t.Errorf("text = %q", text)
	}
}

func TestRespond_StoreError(t *testing.T) {
	r := NewResponder(&fakeRuleStore{err: errors.New("db down")})

	if _, err := r.Respond(context.Background(), "user-1", "show rules"); err == nil {
		t.Error("expected error from failing store")
	}
}
