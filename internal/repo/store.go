// Package repo implements the persistence gateway: a key-value store of
// whole JSON documents. The engine treats keys as opaque and never assumes
// atomicity across keys — each save is an independent replace-on-key write.
// No business logic lives here, only serialization and storage.
package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Maoxiaogui/lvyouzhinan/internal/domain"
)

// Keys used by the engine. Values stored under them are JSON arrays.
const (
	KeySavedTrips         = "savedTrips"
	KeyExperienceBookings = "experienceBookings"
	KeyExperienceReviews  = "experienceReviews"
)

// SchemaVersion tags every persisted document. Loads reject documents
// written with a different version; there is no migration path yet, only
// the hook for one.
const SchemaVersion = 1

// Store is the persistence gateway contract. Save replaces the whole value
// under key. Load decodes the value under key into dest, leaving dest
// untouched when the key is absent — callers initialize dest to the empty
// collection they expect.
//
// Services depend on this interface, not on a concrete implementation, so
// tests run against MemStore while production uses the Postgres store.
type Store interface {
	Save(ctx context.Context, key string, value any) error
	Load(ctx context.Context, key string, dest any) error
}

// envelope wraps every persisted document with its schema version.
type envelope struct {
	SchemaVersion int             `json:"schema_version"`
	Data          json.RawMessage `json:"data"`
}

// seal marshals value into a versioned envelope document.
func seal(value any) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("marshal value: %w", err)
	}
	return json.Marshal(envelope{SchemaVersion: SchemaVersion, Data: data})
}

// unseal validates the envelope version and decodes its payload into dest.
func unseal(raw []byte, dest any) error {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.SchemaVersion != SchemaVersion {
		return fmt.Errorf("unsupported schema version %d (want %d): %w",
			env.SchemaVersion, SchemaVersion, domain.ErrPersistence)
	}
	return json.Unmarshal(env.Data, dest)
}
