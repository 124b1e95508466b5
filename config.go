// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package scene3d

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/gviegas/scene3d/linear"
)

// Config is used to configure new objects.
// It does not affect objects that already exist.
type Config struct {
	// The up direction of new objects.
	//
	// Default is (0, 1, 0).
	Up linear.V3 `yaml:"up"`

	// Whether new objects recompose their local
	// transform when their world transform is
	// updated.
	//
	// Default is true.
	MatrixAutoUpdate bool `yaml:"matrixAutoUpdate"`

	// The rotation order of new objects.
	//
	// Default is linear.XYZ.
	Order linear.Order `yaml:"order"`

	// Whether conversions that invert a singular
	// world transform fail with linear.ErrDegenerate
	// instead of using the identity.
	//
	// Default is false.
	StrictInverse bool `yaml:"strictInverse"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Up:               linear.V3{0, 1, 0},
		MatrixAutoUpdate: true,
		Order:            linear.DefaultOrder,
		StrictInverse:    false,
	}
}

var cfg Config

// Configure replaces the package's configuration
// with config.
// It fails if config.Order is not valid.
func Configure(config *Config) error {
	if !config.Order.Valid() {
		return errors.Wrapf(linear.ErrInvalidRotation, "Configure: unknown rotation order %q", string(config.Order))
	}
	cfg = *config
	logrus.WithFields(logrus.Fields{
		"up":               cfg.Up,
		"matrixAutoUpdate": cfg.MatrixAutoUpdate,
		"order":            cfg.Order.String(),
		"strictInverse":    cfg.StrictInverse,
	}).Debug("scene3d configured")
	return nil
}

// LoadConfig reads a YAML document from r.
// Fields missing from the document keep their default
// values. An empty document produces DefaultConfig().
func LoadConfig(r io.Reader) (Config, error) {
	config := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&config); err != nil && err != io.EOF {
		return config, errors.Wrap(err, "LoadConfig")
	}
	return config, nil
}

func init() {
	config := DefaultConfig()
	if err := Configure(&config); err != nil {
		panic(err)
	}
}
