package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"

	"github.com/senvo/shipping-api/internal/core/domain"
)

// defaultCarriers is the built-in carrier set, each with the tracking number
// formats it issues.
var defaultCarriers = []struct {
	name     string
	patterns domain.TrackingPatterns
}{
	{
		name: "dhl-express",
		patterns: domain.TrackingPatterns{
			"standard": `^\d{10}$`,
			"express":  `^[A-Za-z0-9\-]{13,20}$`,
		},
	},
	{
		name: "ups",
		patterns: domain.TrackingPatterns{
			"standard":      `^1Z[A-Za-z0-9]{16}$`,
			"freight":       `^\d{9}$`,
			"international": `^\d{18}$`,
		},
	},
	{
		name: "fedex",
		patterns: domain.TrackingPatterns{
			"standard":  `^\d{12,14}$`,
			"ground":    `^\d{15,20}$`,
			"smartpost": `^[0-9]{20}$`,
		},
	},
}

// Carriers inserts the built-in carriers. Existing names are left as they
// are, so re-running the command never clobbers manual edits.
func (s *Seeder) Carriers(ctx context.Context) error {
	inserted := 0
	for _, c := range defaultCarriers {
		carrier := domain.Carrier{
			ID:               uuid.New(),
			Name:             c.name,
			TrackingPatterns: c.patterns,
		}
		res := s.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				DoNothing: true,
			}).
			Create(&carrier)
		if res.Error != nil {
			return fmt.Errorf("seed carrier %q: %w", c.name, res.Error)
		}
		inserted += int(res.RowsAffected)
	}

	s.log.Info().Int("inserted", inserted).Msg("carriers seeded")
	return nil
}
