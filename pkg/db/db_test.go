package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/mfigueredo/hearth/pkg/device"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "hearth.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *DB, username string) *User {
	t.Helper()

	u := &User{Username: username, PasswordHash: "x"}
	if err := db.Users().Create(context.Background(), u); err != nil {
		t.Fatalf("create user %q: %v", username, err)
	}
	return u
}

func TestMigrateAndBootstrap(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	needs, err := db.NeedsBootstrap(ctx)
	if err != nil {
		t.Fatalf("NeedsBootstrap: %v", err)
	}
	if !needs {
		t.Fatal("fresh database should need bootstrap")
	}

	if err := db.Bootstrap(ctx); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}

	needs, err = db.NeedsBootstrap(ctx)
	if err != nil {
		t.Fatalf("NeedsBootstrap: %v", err)
	}
	if needs {
		t.Error("bootstrapped database should not need bootstrap")
	}

	cfg, err := db.ActiveConfig(ctx)
	if err != nil {
		t.Fatalf("ActiveConfig: %v", err)
	}
	if cfg.Profile.Name != "default" {
		t.Errorf("profile name = %q, want default", cfg.Profile.Name)
	}
	if cfg.TokenSecret() == "" {
		t.Error("bootstrap did not generate a token secret")
	}
	if cfg.TokenTTL() <= 0 {
		t.Errorf("token ttl = %v, want positive", cfg.TokenTTL())
	}

	// Bootstrap is idempotent
	if err := db.Bootstrap(ctx); err != nil {
		t.Fatalf("second Bootstrap: %v", err)
	}
}

func TestUserStore_CreateSeedsStarterDevices(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	u := createTestUser(t, db, "marisol")

	devices, err := db.Devices().ListByOwner(ctx, u.ID)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(devices) != len(device.Categories) {
		t.Fatalf("starter devices = %d, want %d", len(devices), len(device.Categories))
	}

	byCategory := make(map[device.Category]*device.Device)
	for _, d := range devices {
		byCategory[d.Category] = d
	}
	for _, c := range device.Categories {
		if byCategory[c] == nil {
			t.Errorf("no starter device for category %s", c)
		}
	}

	if d := byCategory[device.CategoryThermostat]; d != nil && d.State != "72°F" {
		t.Errorf("thermostat starter state = %q, want 72°F", d.State)
	}
	if d := byCategory[device.CategoryLock]; d != nil && d.State != "locked" {
		t.Errorf("lock starter state = %q, want locked", d.State)
	}
}

func TestUserStore_DuplicateUsername(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	createTestUser(t, db, "marisol")

	err := db.Users().Create(ctx, &User{Username: "marisol", PasswordHash: "y"})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("err = %v, want ErrUsernameTaken", err)
	}
}

func TestUserStore_Lookup(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	u := createTestUser(t, db, "marisol")

	got, err := db.Users().Get(ctx, u.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Username != "marisol" {
		t.Errorf("username = %q, want marisol", got.Username)
	}

	got, err = db.Users().GetByUsername(ctx, "marisol")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("id = %q, want %q", got.ID, u.ID)
	}

	if _, err := db.Users().Get(ctx, "nope"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
	if _, err := db.Users().GetByUsername(ctx, "nobody"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}

func TestDeviceStore_CRUD(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	u := createTestUser(t, db, "marisol")
	store := db.Devices()

	d := &device.Device{OwnerID: u.ID, Name: "Desk Lamp", Category: device.CategoryLight}
	if err := store.Create(ctx, d); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if d.ID == "" {
		t.Fatal("Create did not assign an ID")
	}
	if d.State != "off" {
		t.Errorf("default state = %q, want off", d.State)
	}

	got, err := store.Get(ctx, u.ID, d.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "Desk Lamp" {
		t.Errorf("name = %q, want Desk Lamp", got.Name)
	}

	updated, err := store.Update(ctx, u.ID, d.ID, "Reading Lamp", "")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Reading Lamp" || updated.Category != device.CategoryLight {
		t.Errorf("updated = %+v", updated)
	}

	if err := store.UpdateState(ctx, d.ID, "on_75%"); err != nil {
		t.Fatalf("UpdateState: %v", err)
	}
	got, err = store.Get(ctx, u.ID, d.ID)
	if err != nil {
		t.Fatalf("Get after UpdateState: %v", err)
	}
	if got.State != "on_75%" {
		t.Errorf("state = %q, want on_75%%", got.State)
	}

	if err := store.Delete(ctx, u.ID, d.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := store.Delete(ctx, u.ID, d.ID); !errors.Is(err, device.ErrNotFound) {
		t.Errorf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestDeviceStore_InvalidCategory(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	u := createTestUser(t, db, "marisol")
	store := db.Devices()

	err := store.Create(ctx, &device.Device{OwnerID: u.ID, Name: "Toaster", Category: "toaster"})
	if !errors.Is(err, device.ErrInvalidCategory) {
		t.Errorf("Create err = %v, want ErrInvalidCategory", err)
	}

	d := &device.Device{OwnerID: u.ID, Name: "Lamp", Category: device.CategoryLight}
	if err := store.Create(ctx, d); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := store.Update(ctx, u.ID, d.ID, "", "toaster"); !errors.Is(err, device.ErrInvalidCategory) {
		t.Errorf("Update err = %v, want ErrInvalidCategory", err)
	}
}

func TestDeviceStore_OwnerScoping(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	store := db.Devices()

	aliceLight, err := store.GetByOwnerAndCategory(ctx, alice.ID, device.CategoryLight)
	if err != nil {
		t.Fatalf("GetByOwnerAndCategory: %v", err)
	}

	// Bob cannot see or delete Alice's device
	if _, err := store.Get(ctx, bob.ID, aliceLight.ID); !errors.Is(err, device.ErrNotFound) {
		t.Errorf("cross-owner Get err = %v, want ErrNotFound", err)
	}
	if err := store.Delete(ctx, bob.ID, aliceLight.ID); !errors.Is(err, device.ErrNotFound) {
		t.Errorf("cross-owner Delete err = %v, want ErrNotFound", err)
	}

	// Mutating Alice's light leaves Bob's untouched
	if err := store.UpdateState(ctx, aliceLight.ID, "on_100%"); err != nil {
		t.Fatalf("UpdateState: %v", err)
	}
	bobLight, err := store.GetByOwnerAndCategory(ctx, bob.ID, device.CategoryLight)
	if err != nil {
		t.Fatalf("GetByOwnerAndCategory: %v", err)
	}
	if bobLight.State != "off" {
		t.Errorf("bob's light state = %q, want off", bobLight.State)
	}
}

func TestRuleStore_CRUD(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	u := createTestUser(t, db, "marisol")

	light, err := db.Devices().GetByOwnerAndCategory(ctx, u.ID, device.CategoryLight)
	if err != nil {
		t.Fatalf("GetByOwnerAndCategory: %v", err)
	}
	lock, err := db.Devices().GetByOwnerAndCategory(ctx, u.ID, device.CategoryLock)
	if err != nil {
		t.Fatalf("GetByOwnerAndCategory: %v", err)
	}

	r := &Rule{
		OwnerID:          u.ID,
		Name:             "Lock up at lights-out",
		TriggerDeviceID:  light.ID,
		TriggerCondition: "off",
		ActionDeviceID:   lock.ID,
		ActionState:      "locked",
	}
	if err := db.Rules().Create(ctx, r); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if r.ID == "" {
		t.Fatal("Create did not assign an ID")
	}

	rules, err := db.Rules().ListByOwner(ctx, u.ID)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(rules) != 1 || rules[0].Name != "Lock up at lights-out" {
		t.Errorf("rules = %+v", rules)
	}

	if err := db.Rules().Delete(ctx, u.ID, r.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := db.Rules().Delete(ctx, u.ID, r.ID); !errors.Is(err, ErrRuleNotFound) {
		t.Errorf("second delete err = %v, want ErrRuleNotFound", err)
	}
}
