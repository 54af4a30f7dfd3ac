package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mfigueredo/hearth/pkg/device"
)

// DeviceStore provides owner-scoped device persistence. It is the
// Device Registry the chat engine mutates through.
type DeviceStore interface {
	Get(ctx context.Context, ownerID, id string) (*device.Device, error)
	// GetByOwnerAndCategory returns the first device of the category
	// in storage order. Multiple devices of one category are not
	// individually addressable from chat; the oldest wins.
	GetByOwnerAndCategory(ctx context.Context, ownerID string, category device.Category) (*device.Device, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*device.Device, error)
	Create(ctx context.Context, d *device.Device) error
	Update(ctx context.Context, ownerID, id string, name string, category device.Category) (*device.Device, error)
	UpdateState(ctx context.Context, id, state string) error
	Delete(ctx context.Context, ownerID, id string) error
}

// Devices returns a DeviceStore for this database.
func (db *DB) Devices() DeviceStore {
	return &deviceStore{db: db}
}

type deviceStore struct {
	db *DB
}

const deviceColumns = `id, owner_id, name, category, state, created_at, updated_at`

func scanDevice(row *sql.Row) (*device.Device, error) {
	d := &device.Device{}
	var createdAt, updatedAt string
	err := row.Scan(&d.ID, &d.OwnerID, &d.Name, &d.Category, &d.State, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, device.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	d.CreatedAt, _ = time.Parse(time.DateTime, createdAt)
	d.UpdatedAt, _ = time.Parse(time.DateTime, updatedAt)
	return d, nil
}

func (s *deviceStore) Get(ctx context.Context, ownerID, id string) (*device.Device, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+deviceColumns+` FROM devices
		WHERE owner_id = ? AND id = ?
	`, ownerID, id)
	return scanDevice(row)
}

func (s *deviceStore) GetByOwnerAndCategory(ctx context.Context, ownerID string, category device.Category) (*device.Device, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+deviceColumns+` FROM devices
		WHERE owner_id = ? AND category = ?
		ORDER BY created_at, id
		LIMIT 1
	`, ownerID, category)
	return scanDevice(row)
}

func (s *deviceStore) ListByOwner(ctx context.Context, ownerID string) ([]*device.Device, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+deviceColumns+` FROM devices
		WHERE owner_id = ?
		ORDER BY created_at, id
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var devices []*device.Device
	for rows.Next() {
		d := &device.Device{}
		var createdAt, updatedAt string
		if err := rows.Scan(&d.ID, &d.OwnerID, &d.Name, &d.Category, &d.State, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		d.CreatedAt, _ = time.Parse(time.DateTime, createdAt)
		d.UpdatedAt, _ = time.Parse(time.DateTime, updatedAt)
		devices = append(devices, d)
	}
	return devices, rows.Err()
}

func (s *deviceStore) Create(ctx context.Context, d *device.Device) error {
	if !device.IsValidCategory(d.Category) {
		return device.ErrInvalidCategory
	}
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.State == "" {
		d.State = "off"
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO devices (id, owner_id, name, category, state)
		VALUES (?, ?, ?, ?, ?)
	`, d.ID, d.OwnerID, d.Name, d.Category, d.State)
	if err != nil {
		return fmt.Errorf("failed to create device: %w", err)
	}
	return nil
}

func (s *deviceStore) Update(ctx context.Context, ownerID, id string, name string, category device.Category) (*device.Device, error) {
	d, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if name != "" {
		d.Name = name
	}
	if category != "" {
		if !device.IsValidCategory(category) {
			return nil, device.ErrInvalidCategory
		}
		d.Category = category
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE devices SET name = ?, category = ?, updated_at = datetime('now')
		WHERE owner_id = ? AND id = ?
	`, d.Name, d.Category, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update device: %w", err)
	}
	return d, nil
}

func (s *deviceStore) UpdateState(ctx context.Context, id, state string) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE devices SET state = ?, updated_at = datetime('now')
		WHERE id = ?
	`, state, id)
	if err != nil {
		return fmt.Errorf("failed to update device state: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return device.ErrNotFound
	}
	return nil
}

func (s *deviceStore) Delete(ctx context.Context, ownerID, id string) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM devices WHERE owner_id = ? AND id = ?
	`, ownerID, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return device.ErrNotFound
	}
	return nil
}
