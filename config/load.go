package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Supported format names.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

var validate = validator.New()

// Default returns the configuration used for keys absent from a file.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  100,
			MaxBackups: 7,
			MaxAgeDays: 30,
			Compress:   true,
		},
		Pipeline: PipelineConfig{Workers: 4},
		Metrics:  MetricsConfig{Namespace: "cablenet"},
	}
}

// FormatOf maps a file extension to a format name.
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads, decodes and validates the file at path.
func Load(path string) (*Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Decode(bytes.NewReader(data), format)
}

// Decode reads a configuration in the given format over Default and
// validates it. Unknown keys are rejected.
func Decode(r io.Reader, format string) (*Config, error) {
	cfg := Default()
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: yaml: %w", ErrInvalidConfig, err)
		}
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&cfg)
		if err != nil {
			return nil, fmt.Errorf("%w: toml: %w", ErrInvalidConfig, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: toml: unknown key %s", ErrInvalidConfig, undecoded[0])
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the struct tags of every section and the cable tables.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, formatValidationError(err))
	}
	if len(c.Cables.Static) > 0 {
		if _, err := c.Cables.Model(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

// Save writes c to path in the format implied by its extension.
func Save(path string, c *Config) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, c, format); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// Encode writes c in the given format.
func Encode(w io.Writer, c *Config, format string) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("config: yaml: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(c); err != nil {
			return fmt.Errorf("config: toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// formatValidationError turns validator errors into one readable line.
func formatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		if e.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s (got %v)", e.Namespace(), e.Tag(), e.Param(), e.Value()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s must satisfy %s (got %v)", e.Namespace(), e.Tag(), e.Value()))
	}
	return strings.Join(msgs, "; ")
}
