package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// ID identifies a workshop entity. Ids are client-generated UUIDs; the zero
// value means "no id" and is used for absent weak references.
type ID struct {
	uuid uuid.UUID
}

// NewID returns a freshly generated entity id.
func NewID() ID {
	return ID{uuid: uuid.New()}
}

// ParseID parses the canonical string form of an entity id.
func ParseID(s string) (ID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ID{}, fmt.Errorf("invalid entity id %q: %w", s, err)
	}
	return ID{uuid: id}, nil
}

func (id ID) String() string { return id.uuid.String() }
func (id ID) IsZero() bool   { return id.uuid == uuid.Nil }

func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.uuid.String())
}

func (id *ID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return err
	}
	id.uuid = parsed
	return nil
}

// Value implements driver.Valuer so ids can be bound directly in SQL queries.
func (id ID) Value() (driver.Value, error) {
	if id.IsZero() {
		return nil, nil
	}
	return id.uuid.String(), nil
}

// Scan implements sql.Scanner.
func (id *ID) Scan(value any) error {
	if value == nil {
		id.uuid = uuid.Nil
		return nil
	}
	switch v := value.(type) {
	case string:
		parsed, err := uuid.Parse(v)
		if err != nil {
			return err
		}
		id.uuid = parsed
		return nil
	case []byte:
		parsed, err := uuid.Parse(string(v))
		if err != nil {
			return err
		}
		id.uuid = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into ID", value)
	}
}

// GormDataType maps ID columns to the uuid type in the remote schema.
func (ID) GormDataType() string { return "uuid" }
