// Package config loads vifmap settings from defaults, an optional vifmap.toml file,
// a .env file and the environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = "vifmap.toml"

// Store kinds.
const (
	StoreLocal = "local"
	StoreS3    = "s3"
)

// Embedding providers. ProviderAuto picks Gemini when an API key is configured.
const (
	ProviderAuto   = "auto"
	ProviderGemini = "gemini"
	ProviderHash   = "hash"
)

// Duration is a time.Duration written as "30s" in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}

	d.Duration = v

	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Config holds every vifmap setting. Secrets are only read from the environment.
type Config struct {
	LogLevel     string    `toml:"log_level"`
	Workers      int       `toml:"workers"`
	GeminiAPIKey string    `toml:"-"`
	Render       Render    `toml:"render"`
	Annotate     Annotate  `toml:"annotate"`
	Query        Query     `toml:"query"`
	Detector     Detector  `toml:"detector"`
	Embedding    Embedding `toml:"embedding"`
	Store        Store     `toml:"store"`
}

type Render struct {
	Latex     string   `toml:"latex"`
	Raster    string   `toml:"raster"`
	DPI       int      `toml:"dpi"`
	Timeout   Duration `toml:"timeout"`
	CacheSize int      `toml:"cache_size"`
}

type Annotate struct {
	Marker         string `toml:"marker"`
	MaxLabels      int    `toml:"max_labels"`
	SuppressGlobal bool   `toml:"suppress_global"`
	Description    bool   `toml:"description"`
}

type Query struct {
	Top       int     `toml:"top"`
	Sharpness float64 `toml:"sharpness"`
	Epsilon   float64 `toml:"epsilon"`
}

type Detector struct {
	Model string  `toml:"model"`
	Scale float64 `toml:"scale"`
}

type Embedding struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	Dims     int    `toml:"dims"`
}

type Store struct {
	Kind string `toml:"kind"`
	Dir  string `toml:"dir"`
	S3   S3     `toml:"s3"`
}

type S3 struct {
	Endpoint  string `toml:"endpoint"`
	Region    string `toml:"region"`
	AccessKey string `toml:"access_key"`
	SecretKey string `toml:"secret_key"`
	Bucket    string `toml:"bucket"`
	Prefix    string `toml:"prefix"`
	UseSSL    bool   `toml:"use_ssl"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		LogLevel: "warn",
		Render: Render{
			Latex:     "pdflatex",
			Raster:    "pdftoppm",
			DPI:       100,
			Timeout:   Duration{30 * time.Second},
			CacheSize: 512,
		},
		Annotate: Annotate{
			Marker:         "%",
			MaxLabels:      1,
			SuppressGlobal: true,
		},
		Query: Query{
			Top:       5,
			Sharpness: 10,
			Epsilon:   1e-9,
		},
		Detector: Detector{
			Model: "gemini-2.5-flash",
			Scale: 1000,
		},
		Embedding: Embedding{
			Provider: ProviderAuto,
			Model:    "text-embedding-004",
			Dims:     256,
		},
		Store: Store{
			Kind: StoreLocal,
			Dir:  ".vifmap",
			S3:   S3{Region: "us-east-1", Bucket: "vifmap"},
		},
	}
}

// ReadConfig returns the defaults overridden by the TOML file at path. A missing
// file is not an error.
func ReadConfig(path string) (*Config, error) {
	config := Default()

	if path == "" {
		path = DefaultFile
	}

	file, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}

	if err != nil {
		return config, fmt.Errorf("read %s: %w", path, err)
	}

	if err := toml.Unmarshal(file, config); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}

	return config, nil
}

// Load reads path, then .env, then the process environment, and validates the result.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	config, err := ReadConfig(path)
	if err != nil {
		return nil, err
	}

	if err := applyEnv(config, os.LookupEnv); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

type lookupFunc func(key string) (string, bool)

func applyEnv(c *Config, lookup lookupFunc) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)

		return v, ok && v != ""
	}

	strs := map[string]*string{
		"VIFMAP_LOG_LEVEL":       &c.LogLevel,
		"GEMINI_API_KEY":         &c.GeminiAPIKey,
		"VIFMAP_LATEX":           &c.Render.Latex,
		"VIFMAP_PDFTOPPM":        &c.Render.Raster,
		"VIFMAP_MARKER":          &c.Annotate.Marker,
		"VIFMAP_DETECTOR_MODEL":  &c.Detector.Model,
		"VIFMAP_EMBEDDER":        &c.Embedding.Provider,
		"VIFMAP_EMBEDDING_MODEL": &c.Embedding.Model,
		"VIFMAP_STORE":           &c.Store.Kind,
		"VIFMAP_STORE_DIR":       &c.Store.Dir,
		"VIFMAP_S3_ENDPOINT":     &c.Store.S3.Endpoint,
		"VIFMAP_S3_REGION":       &c.Store.S3.Region,
		"VIFMAP_S3_ACCESS_KEY":   &c.Store.S3.AccessKey,
		"VIFMAP_S3_SECRET_KEY":   &c.Store.S3.SecretKey,
		"VIFMAP_S3_BUCKET":       &c.Store.S3.Bucket,
		"VIFMAP_S3_PREFIX":       &c.Store.S3.Prefix,
	}

	for key, dst := range strs {
		if v, ok := get(key); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"VIFMAP_WORKERS":    &c.Workers,
		"VIFMAP_DPI":        &c.Render.DPI,
		"VIFMAP_CACHE_SIZE": &c.Render.CacheSize,
		"VIFMAP_MAX_LABELS": &c.Annotate.MaxLabels,
	}

	for key, dst := range ints {
		v, ok := get(key)
		if !ok {
			continue
		}

		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}

		*dst = n
	}

	floats := map[string]*float64{
		"VIFMAP_SHARPNESS":       &c.Query.Sharpness,
		"VIFMAP_DETECTION_SCALE": &c.Detector.Scale,
	}

	for key, dst := range floats {
		v, ok := get(key)
		if !ok {
			continue
		}

		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}

		*dst = f
	}

	if v, ok := get("VIFMAP_RENDER_TIMEOUT"); ok {
		if err := c.Render.Timeout.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("VIFMAP_RENDER_TIMEOUT: %w", err)
		}
	}

	if v, ok := get("VIFMAP_S3_USE_SSL"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("VIFMAP_S3_USE_SSL: %w", err)
		}

		c.Store.S3.UseSSL = b
	}

	return nil
}

// Validate reports the first setting out of range.
func (c *Config) Validate() error {
	switch {
	case c.Workers < 0:
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	case c.Render.DPI <= 0:
		return fmt.Errorf("render dpi must be positive, got %d", c.Render.DPI)
	case c.Render.Timeout.Duration <= 0:
		return fmt.Errorf("render timeout must be positive, got %s", c.Render.Timeout)
	case c.Render.CacheSize < 0:
		return fmt.Errorf("render cache size must not be negative, got %d", c.Render.CacheSize)
	case c.Annotate.MaxLabels < 1:
		return fmt.Errorf("max labels must be at least 1, got %d", c.Annotate.MaxLabels)
	case c.Query.Top < 0:
		return fmt.Errorf("query top must not be negative, got %d", c.Query.Top)
	case c.Query.Sharpness <= 0 || c.Query.Epsilon <= 0:
		return fmt.Errorf("query sharpness and epsilon must be positive")
	case c.Detector.Scale < 0:
		return fmt.Errorf("detection scale must not be negative, got %g", c.Detector.Scale)
	}

	switch c.Embedding.Provider {
	case ProviderAuto, ProviderHash:
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("embedding provider %q requires GEMINI_API_KEY", ProviderGemini)
		}
	default:
		return fmt.Errorf("unknown embedding provider %q", c.Embedding.Provider)
	}

	switch c.Store.Kind {
	case StoreLocal:
		if strings.TrimSpace(c.Store.Dir) == "" {
			return fmt.Errorf("store dir is required for the %s store", StoreLocal)
		}
	case StoreS3:
	default:
		return fmt.Errorf("unknown store kind %q", c.Store.Kind)
	}

	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// UseGemini reports whether feature labels are embedded with Gemini.
func (c *Config) UseGemini() bool {
	return c.Embedding.Provider == ProviderGemini ||
		(c.Embedding.Provider == ProviderAuto && c.GeminiAPIKey != "")
}

// SlogLevel parses LogLevel.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	return level, nil
}
