// Package seed populates the reference tables the API reads at request
// time. Seeding is idempotent: a table that already holds data is left
// untouched.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/senvo/shipping-api/internal/core/domain"
)

// cityBatchSize bounds the size of bulk city inserts.
const cityBatchSize = 500

// Seeder loads reference data into Postgres.
type Seeder struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewSeeder(db *gorm.DB, log zerolog.Logger) *Seeder {
	return &Seeder{db: db, log: log}
}

// countryRecord mirrors one entry of the countries-states-cities JSON dump.
// Cities appear as bare name strings.
type countryRecord struct {
	Name        string `json:"name"`
	NumericCode string `json:"numeric_code"`
	ISO2        string `json:"iso2"`
	ISO3        string `json:"iso3"`
	States      []struct {
		Name   string   `json:"name"`
		Cities []string `json:"cities"`
	} `json:"states"`
}

// Countries loads the location hierarchy from the JSON file at path. It is a
// no-op when the countries table already has rows.
func (s *Seeder) Countries(ctx context.Context, path string) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&domain.Country{}).Count(&count).Error; err != nil {
		return fmt.Errorf("seed countries: count: %w", err)
	}
	if count > 0 {
		s.log.Info().Int64("existing", count).Msg("countries already seeded, skipping")
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("seed countries: %w", err)
	}
	defer f.Close()

	var countries, states, cities int
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return decodeCountries(f, func(rec countryRecord) error {
			country := domain.Country{
				ID:   uuid.New(),
				Name: rec.Name,
				Code: rec.NumericCode,
				ISO2: rec.ISO2,
				ISO3: rec.ISO3,
			}
			if err := tx.Create(&country).Error; err != nil {
				return fmt.Errorf("insert country %q: %w", rec.Name, err)
			}
			countries++

			for _, st := range rec.States {
				state := domain.State{
					ID:        uuid.New(),
					Name:      st.Name,
					CountryID: country.ID,
				}
				if err := tx.Create(&state).Error; err != nil {
					return fmt.Errorf("insert state %q: %w", st.Name, err)
				}
				states++

				if len(st.Cities) == 0 {
					continue
				}
				batch := make([]domain.City, len(st.Cities))
				for i, name := range st.Cities {
					batch[i] = domain.City{
						ID:        uuid.New(),
						Name:      name,
						StateID:   state.ID,
						CountryID: country.ID,
					}
				}
				if err := tx.CreateInBatches(batch, cityBatchSize).Error; err != nil {
					return fmt.Errorf("insert cities of %q: %w", st.Name, err)
				}
				cities += len(batch)
			}
			return nil
		})
	})
	if err != nil {
		return err
	}

	s.log.Info().
		Int("countries", countries).
		Int("states", states).
		Int("cities", cities).
		Msg("location hierarchy seeded")
	return nil
}

// decodeCountries streams a top-level JSON array of country records, calling
// fn for each one. Streaming keeps memory flat on the full world dump.
func decodeCountries(r io.Reader, fn func(countryRecord) error) error {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode countries: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return fmt.Errorf("decode countries: expected array, got %v", tok)
	}

	for dec.More() {
		var rec countryRecord
		if err := dec.Decode(&rec); err != nil {
			return fmt.Errorf("decode countries: %w", err)
		}
		if err := fn(rec); err != nil {
			return err
		}
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decode countries: %w", err)
	}
	return nil
}
