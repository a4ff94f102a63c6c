// Package seed loads development fixtures into the store: the admin account,
// the area labels and a handful of casts. Every write is an upsert keyed on a
// natural key (email, area key, snsLink), so running it twice is harmless and
// never overwrites rows an operator has since edited.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/arisa-app/castdir/internal/domain"
)

// ErrNoPassword is returned when the admin password is empty.
var ErrNoPassword = errors.New("admin password is required")

// AdminStore, AreaStore and CastStore are the upsert halves of the repos.
type AdminStore interface {
	Upsert(ctx context.Context, admin domain.Admin) (domain.Admin, error)
}

type AreaStore interface {
	Upsert(ctx context.Context, area domain.AreaLabel) (domain.AreaLabel, error)
}

type CastStore interface {
	Upsert(ctx context.Context, cast domain.Cast) (domain.Cast, error)
}

// Seeder writes Fixtures through the stores.
type Seeder struct {
	admins AdminStore
	areas  AreaStore
	casts  CastStore
	log    *slog.Logger
	cost   int
}

// New returns a Seeder using bcrypt.DefaultCost for the admin password.
func New(admins AdminStore, areas AreaStore, casts CastStore, log *slog.Logger) *Seeder {
	return &Seeder{admins: admins, areas: areas, casts: casts, log: log, cost: bcrypt.DefaultCost}
}

// WithCost returns a copy of s hashing with the given bcrypt cost.
func (s *Seeder) WithCost(cost int) *Seeder {
	c := *s
	c.cost = cost
	return &c
}

// Report counts what a Run touched.
type Report struct {
	Admin string
	Areas int
	Casts int
}

// Run upserts fx. adminEmail overrides fx.Admin.Email when non-empty.
func (s *Seeder) Run(ctx context.Context, fx Fixtures, adminEmail, adminPassword string) (Report, error) {
	if adminPassword == "" {
		return Report{}, fmt.Errorf("seed.Run: %w", ErrNoPassword)
	}
	if err := fx.Validate(); err != nil {
		return Report{}, fmt.Errorf("seed.Run: %w", err)
	}

	email := fx.Admin.Email
	if adminEmail != "" {
		email = adminEmail
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), s.cost)
	if err != nil {
		return Report{}, fmt.Errorf("seed.Run: hash password: %w", err)
	}
	admin, err := s.admins.Upsert(ctx, domain.Admin{Email: email, Name: fx.Admin.Name, PasswordHash: string(hash)})
	if err != nil {
		return Report{}, fmt.Errorf("seed.Run admin %s: %w", email, err)
	}
	s.log.Info("admin seeded", "email", admin.Email)
	rep := Report{Admin: admin.Email}

	for _, a := range fx.Areas {
		area, err := s.areas.Upsert(ctx, domain.AreaLabel{Key: a.Key, Label: a.Label, SortOrder: a.SortOrder})
		if err != nil {
			return rep, fmt.Errorf("seed.Run area %s: %w", a.Key, err)
		}
		s.log.Info("area seeded", "key", area.Key, "label", area.Label)
		rep.Areas++
	}

	for _, c := range fx.Casts {
		var store *string
		if c.StoreLink != nil && *c.StoreLink != "" {
			store = c.StoreLink
		}
		cast, err := s.casts.Upsert(ctx, domain.Cast{
			Name:        c.Name,
			SNSLink:     c.SNSLink,
			StoreLink:   store,
			Area:        c.Area,
			ServiceType: domain.ServiceType(c.ServiceType),
			BudgetRange: domain.BudgetRange(c.BudgetRange),
		})
		if err != nil {
			return rep, fmt.Errorf("seed.Run cast %s: %w", c.SNSLink, err)
		}
		s.log.Info("cast seeded", "name", cast.Name, "area", cast.Area)
		rep.Casts++
	}
	return rep, nil
}
