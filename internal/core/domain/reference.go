package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Reference data: countries, states, cities, and carriers. These tables are
// populated once by the seed commands and are read-only at request time.

// Country is the root of the location hierarchy.
type Country struct {
	ID   uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name string    `gorm:"column:name;size:100;not null"`
	Code string    `gorm:"column:code;size:3;not null"`
	ISO2 string    `gorm:"column:iso2;size:2;not null"`
	ISO3 string    `gorm:"column:iso3;size:3;not null"`
}

func (Country) TableName() string { return "countries" }

// State belongs to a country.
type State struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name      string    `gorm:"column:name;size:100;index;not null"`
	CountryID uuid.UUID `gorm:"column:country_id;type:uuid;index;not null"`

	Country *Country `gorm:"foreignKey:CountryID;constraint:OnDelete:CASCADE"`
}

func (State) TableName() string { return "states" }

// City belongs to a state and, redundantly, to a country. The country id is
// denormalized so consistency between the two can be checked cheaply.
type City struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name      string    `gorm:"column:name;size:100;index;not null"`
	StateID   uuid.UUID `gorm:"column:state_id;type:uuid;index;not null"`
	CountryID uuid.UUID `gorm:"column:country_id;type:uuid;index;not null"`

	State   *State   `gorm:"foreignKey:StateID;constraint:OnDelete:CASCADE"`
	Country *Country `gorm:"foreignKey:CountryID;constraint:OnDelete:CASCADE"`
}

func (City) TableName() string { return "cities" }

// TrackingPatterns maps a pattern name (e.g. "standard", "freight") to the
// regular expression a tracking number must match. Stored as a JSONB column.
type TrackingPatterns map[string]string

// Value implements driver.Valuer so GORM can write the map as JSONB.
func (p TrackingPatterns) Value() (driver.Value, error) {
	if p == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(p)
}

// Scan implements sql.Scanner for reading JSONB back into the map.
func (p *TrackingPatterns) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*p = nil
		return nil
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("tracking patterns: cannot scan %T", src)
	}
}

// Carrier identifies a shipping provider.
type Carrier struct {
	ID               uuid.UUID        `gorm:"column:id;type:uuid;primaryKey"`
	Name             string           `gorm:"column:name;size:128;uniqueIndex;not null"`
	TrackingPatterns TrackingPatterns `gorm:"column:tracking_patterns;type:jsonb;not null"`
}

func (Carrier) TableName() string { return "carriers" }
