// Package config loads a transportation instance and the solve settings of
// the transport command from a YAML, JSON or TOML file. Scalar settings can
// be overridden from the environment with the TRANSPORT_ prefix, e.g.
// TRANSPORT_METHOD=leastcost or TRANSPORT_LOG_LEVEL=debug.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/katalvlaran/transportation/internal/logging"
	"github.com/katalvlaran/transportation/transport"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "TRANSPORT"

// File is the decoded problem file.
type File struct {
	Supply          []float64      `mapstructure:"supply"           validate:"required,min=1,dive,gte=0"`
	Demand          []float64      `mapstructure:"demand"           validate:"required,min=1,dive,gte=0"`
	Cost            [][]float64    `mapstructure:"cost"             validate:"required,min=1,dive,min=1"`
	Method          string         `mapstructure:"method"           validate:"required"`
	Epsilon         float64        `mapstructure:"epsilon"          validate:"gte=0"`
	RequireBalanced bool           `mapstructure:"require_balanced"`
	Log             logging.Config `mapstructure:"log"`
}

// Load reads path (format taken from its extension), applies environment
// overrides and validates the result.
func Load(path string) (*File, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("method", transport.MethodNorthWest.String())
	v.SetDefault("epsilon", transport.DefaultEpsilon)
	v.SetDefault("require_balanced", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var f File
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := validator.New().Struct(&f); err != nil {
		return nil, fmt.Errorf("config: validate %s: %w", path, err)
	}
	if _, err := transport.ParseMethod(f.Method); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &f, nil
}

// Problem builds the transport instance described by f.
func (f *File) Problem() (*transport.Problem, error) {
	return transport.NewProblemFromSlices(f.Supply, f.Demand, f.Cost)
}

// Options translates the solve settings of f. Load has already checked the
// method name.
func (f *File) Options() ([]transport.Option, error) {
	m, err := transport.ParseMethod(f.Method)
	if err != nil {
		return nil, err
	}
	opts := []transport.Option{
		transport.WithMethod(m),
		transport.WithEpsilon(f.Epsilon),
	}
	if f.RequireBalanced {
		opts = append(opts, transport.WithRequireBalanced())
	}

	return opts, nil
}
