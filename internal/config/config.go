// Package config loads the forge CLI configuration file.
//
// The file is YAML:
//
//	version: 1.0.0
//	guard:
//	  dsn: conn1
//	prototypes:
//	  - tag: Dragon
//	    name: Smaug
//	    category: Dragon
//	    family: Evil
//	    traits:
//	      hp: "900"
//
// version must satisfy SupportedVersions. Prototypes are registered on top of
// the built-in character catalog, replacing entries with the same tag.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/forge/entity"
	"github.com/katalvlaran/forge/prototype"
	"github.com/katalvlaran/forge/singleton"
)

// SupportedVersions is the semver constraint a configuration version must meet.
const SupportedVersions = ">= 1.0.0, < 2.0.0"

// CurrentVersion is written by Default.
const CurrentVersion = "1.0.0"

var (
	// ErrUnsupportedVersion indicates a missing, malformed or out-of-range version.
	ErrUnsupportedVersion = errors.New("config: unsupported version")

	// ErrInvalidPrototype indicates a prototype entry lacking tag, name or category.
	ErrInvalidPrototype = errors.New("config: invalid prototype")
)

var supported = func() *semver.Constraints {
	c, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		panic(err)
	}
	return c
}()

// Config is the root of the configuration file.
type Config struct {
	Version    string      `json:"version"`
	Guard      Guard       `json:"guard,omitempty"`
	Prototypes []Prototype `json:"prototypes,omitempty"`
}

// Guard configures the forge guard command.
type Guard struct {
	DSN string `json:"dsn,omitempty"`
}

// Prototype describes one registry entry.
type Prototype struct {
	Tag        string            `json:"tag"`
	Name       string            `json:"name"`
	Category   string            `json:"category"`
	Family     string            `json:"family,omitempty"`
	AccessoryA string            `json:"accessoryA,omitempty"`
	AccessoryB string            `json:"accessoryB,omitempty"`
	Traits     map[string]string `json:"traits,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Guard:   Guard{DSN: singleton.DefaultDSN},
	}
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading configuration %q failed: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("configuration %q: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes and validates configuration bytes. Unknown fields are
// rejected. An empty guard DSN falls back to singleton.DefaultDSN.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling configuration failed: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Guard.DSN == "" {
		cfg.Guard.DSN = singleton.DefaultDSN
	}

	return cfg, nil
}

// Validate checks the version gate and every prototype entry.
func (c *Config) Validate() error {
	if c.Version == "" {
		return fmt.Errorf("%w: version is required", ErrUnsupportedVersion)
	}
	v, err := semver.NewVersion(c.Version)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedVersion, c.Version, err)
	}
	if !supported.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %q", ErrUnsupportedVersion, v, SupportedVersions)
	}
	for i, p := range c.Prototypes {
		if err := p.validate(); err != nil {
			return fmt.Errorf("prototypes[%d]: %w", i, err)
		}
	}

	return nil
}

func (p Prototype) validate() error {
	switch {
	case p.Tag == "":
		return fmt.Errorf("%w: tag is empty", ErrInvalidPrototype)
	case p.Name == "":
		return fmt.Errorf("%w: %q: name is empty", ErrInvalidPrototype, p.Tag)
	case p.Category == "":
		return fmt.Errorf("%w: %q: category is empty", ErrInvalidPrototype, p.Tag)
	}
	for k := range p.Traits {
		if k == "" {
			return fmt.Errorf("%w: %q: empty trait key", ErrInvalidPrototype, p.Tag)
		}
	}

	return nil
}

// Entity converts the entry into the prototype entity it describes.
// The entry must have passed Validate.
func (p Prototype) Entity() entity.Entity {
	return entity.New(p.Name, p.Category, p.Family,
		entity.WithAccessoryA(p.AccessoryA),
		entity.WithAccessoryB(p.AccessoryB),
		entity.WithTraits(p.Traits))
}

// NewRegistry returns the character catalog with every configured prototype
// registered on top, in file order.
func (c *Config) NewRegistry(opts ...prototype.RegistryOption) (*prototype.Registry, error) {
	r := prototype.NewCharacterRegistry(opts...)
	for _, p := range c.Prototypes {
		if err := r.Register(p.Tag, p.Entity()); err != nil {
			return nil, fmt.Errorf("registering prototype %q failed: %w", p.Tag, err)
		}
	}

	return r, nil
}
