package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arisa-app/castdir/internal/domain"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// Fixtures is the YAML document loaded by the seed command.
type Fixtures struct {
	Admin AdminFixture  `yaml:"admin"`
	Areas []AreaFixture `yaml:"areas"`
	Casts []CastFixture `yaml:"casts"`
}

type AdminFixture struct {
	Email string `yaml:"email"`
	Name  string `yaml:"name"`
}

type AreaFixture struct {
	Key       string `yaml:"key"`
	Label     string `yaml:"label"`
	SortOrder *int   `yaml:"sortOrder"`
}

type CastFixture struct {
	Name        string  `yaml:"name"`
	SNSLink     string  `yaml:"snsLink"`
	StoreLink   *string `yaml:"storeLink"`
	Area        string  `yaml:"area"`
	ServiceType string  `yaml:"serviceType"`
	BudgetRange string  `yaml:"budgetRange"`
}

// Default returns the fixtures compiled into the binary.
func Default() (Fixtures, error) {
	return parse(defaultFixtures)
}

// LoadFile reads fixtures from a YAML file on disk.
func LoadFile(path string) (Fixtures, error) {
	f, err := os.Open(path)
	if err != nil {
		return Fixtures{}, fmt.Errorf("seed.LoadFile: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes and validates fixtures from r. Unknown fields are rejected.
func Load(r io.Reader) (Fixtures, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Fixtures{}, fmt.Errorf("seed.Load: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (Fixtures, error) {
	var fx Fixtures
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fx); err != nil && !errors.Is(err, io.EOF) {
		return Fixtures{}, fmt.Errorf("seed: decode fixtures: %w", err)
	}
	if err := fx.Validate(); err != nil {
		return Fixtures{}, err
	}
	return fx, nil
}

// Validate checks every record against the same rules the API enforces.
// The first problem found is returned, wrapped in domain.ErrValidation.
func (fx Fixtures) Validate() error {
	keys := make(map[string]bool, len(fx.Areas))
	for i, a := range fx.Areas {
		switch {
		case !domain.ValidAreaKey(a.Key):
			return fmt.Errorf("%w: areas[%d]: key %q must match ^[A-Z_]+$", domain.ErrValidation, i, a.Key)
		case a.Label == "":
			return fmt.Errorf("%w: areas[%d]: label is required", domain.ErrValidation, i)
		case a.SortOrder != nil && *a.SortOrder < 0:
			return fmt.Errorf("%w: areas[%d]: sortOrder must be at least 0", domain.ErrValidation, i)
		case keys[a.Key]:
			return fmt.Errorf("%w: areas[%d]: duplicate key %s", domain.ErrValidation, i, a.Key)
		}
		keys[a.Key] = true
	}

	links := make(map[string]bool, len(fx.Casts))
	for i, c := range fx.Casts {
		switch {
		case c.Name == "":
			return fmt.Errorf("%w: casts[%d]: name is required", domain.ErrValidation, i)
		case !isURL(c.SNSLink):
			return fmt.Errorf("%w: casts[%d]: snsLink must be a valid URL", domain.ErrValidation, i)
		case c.StoreLink != nil && *c.StoreLink != "" && !isURL(*c.StoreLink):
			return fmt.Errorf("%w: casts[%d]: storeLink must be a valid URL", domain.ErrValidation, i)
		case c.Area == "":
			return fmt.Errorf("%w: casts[%d]: area is required", domain.ErrValidation, i)
		case !domain.ServiceType(c.ServiceType).Valid():
			return fmt.Errorf("%w: casts[%d]: unknown serviceType %q", domain.ErrValidation, i, c.ServiceType)
		case !domain.BudgetRange(c.BudgetRange).Valid():
			return fmt.Errorf("%w: casts[%d]: unknown budgetRange %q", domain.ErrValidation, i, c.BudgetRange)
		case links[c.SNSLink]:
			return fmt.Errorf("%w: casts[%d]: duplicate snsLink %s", domain.ErrValidation, i, c.SNSLink)
		}
		links[c.SNSLink] = true
	}
	return nil
}

func isURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}
