package config

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cablenet/cable"
	"github.com/katalvlaran/cablenet/instance"
)

// Sentinel errors for loading and conversion.
var (
	// ErrUnsupportedFormat is returned for an unknown file extension or format name.
	ErrUnsupportedFormat = errors.New("config: unsupported format")

	// ErrInvalidConfig wraps every decoding and validation failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrNoCables is returned by CablesConfig.Model without static cables.
	ErrNoCables = errors.New("config: no static cables configured")

	// ErrDuplicateCapacity is returned when a capacity is listed twice in one table.
	ErrDuplicateCapacity = errors.New("config: duplicate cable capacity")
)

// Config is the root of a cablenet configuration file.
type Config struct {
	Log      LogConfig      `yaml:"log" toml:"log"`
	Pipeline PipelineConfig `yaml:"pipeline" toml:"pipeline"`
	Metrics  MetricsConfig  `yaml:"metrics" toml:"metrics"`
	Cables   CablesConfig   `yaml:"cables" toml:"cables"`
}

// LogConfig selects the log level, format and destination. An empty File
// logs to stderr; otherwise the file is rotated by size.
type LogConfig struct {
	Level      string `yaml:"level" toml:"level" validate:"oneof=trace debug info warn warning error fatal panic"`
	Format     string `yaml:"format" toml:"format" validate:"oneof=text json auto"`
	File       string `yaml:"file" toml:"file"`
	Console    bool   `yaml:"console" toml:"console"`
	MaxSizeMB  int    `yaml:"max_size_mb" toml:"max_size_mb" validate:"gte=0"`
	MaxBackups int    `yaml:"max_backups" toml:"max_backups" validate:"gte=0"`
	MaxAgeDays int    `yaml:"max_age_days" toml:"max_age_days" validate:"gte=0"`
	Compress   bool   `yaml:"compress" toml:"compress"`
}

// PipelineConfig tunes pipeline runs.
type PipelineConfig struct {
	// Workers bounds the number of concurrent jobs in a batch.
	Workers int `yaml:"workers" toml:"workers" validate:"min=1,max=1024"`

	// Strict checks flow conservation before repairing.
	Strict bool `yaml:"strict" toml:"strict"`

	// MaxNbSec overrides the instance limit when > 0.
	MaxNbSec int `yaml:"max_nb_sec" toml:"max_nb_sec" validate:"gte=0"`
}

// MetricsConfig controls the Prometheus recorder.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled" toml:"enabled"`
	Namespace string `yaml:"namespace" toml:"namespace" validate:"omitempty,alphanum"`
}

// CableType is one catalog entry: the price per unit length of a cable
// carrying up to Capacity turbines.
type CableType struct {
	Capacity int     `yaml:"capacity" toml:"capacity" validate:"min=1"`
	Cost     float64 `yaml:"cost" toml:"cost" validate:"gte=0"`
}

// CablesConfig describes the cable catalog and the cost model parameters.
type CablesConfig struct {
	Static                 []CableType `yaml:"static" toml:"static" validate:"dive"`
	Dynamic                []CableType `yaml:"dynamic" toml:"dynamic" validate:"dive"`
	DistanceMin            float64     `yaml:"distance_min" toml:"distance_min" validate:"gte=0"`
	StaticStaticBranching  float64     `yaml:"static_static_branching" toml:"static_static_branching" validate:"gte=0"`
	DynamicStaticBranching float64     `yaml:"dynamic_static_branching" toml:"dynamic_static_branching" validate:"gte=0"`
	MaxNbSec               int         `yaml:"max_nb_sec" toml:"max_nb_sec" validate:"gte=0"`
}

// Model converts the catalog to a cable.Model.
func (c CablesConfig) Model() (cable.Model, error) {
	if len(c.Static) == 0 {
		return cable.Model{}, ErrNoCables
	}
	static, err := table("static", c.Static)
	if err != nil {
		return cable.Model{}, err
	}
	dynamic, err := table("dynamic", c.Dynamic)
	if err != nil {
		return cable.Model{}, err
	}

	return cable.Model{
		Catalog:                cable.Catalog{Static: static, Dynamic: dynamic},
		DistanceMin:            c.DistanceMin,
		StaticStaticBranching:  c.StaticStaticBranching,
		DynamicStaticBranching: c.DynamicStaticBranching,
	}, nil
}

// InstanceOptions returns the instance options carried by the catalog: the
// model and, when set, maxNbSec. A conversion failure is deferred to
// instance.New through an invalid model.
func (c CablesConfig) InstanceOptions() []instance.Option {
	model, _ := c.Model()
	opts := []instance.Option{instance.WithModel(model)}
	if c.MaxNbSec > 0 {
		opts = append(opts, instance.WithMaxNbSec(c.MaxNbSec))
	}
	return opts
}

func table(kind string, types []CableType) (map[int]float64, error) {
	out := make(map[int]float64, len(types))
	for _, t := range types {
		if _, dup := out[t.Capacity]; dup {
			return nil, fmt.Errorf("%w: %s capacity %d", ErrDuplicateCapacity, kind, t.Capacity)
		}
		out[t.Capacity] = t.Cost
	}
	return out, nil
}
