package bench

import (
	"errors"
	"fmt"
	"time"

	"github.com/qjpcpu/benchprobe/json"
)

// Config of sampling
type Config struct {
	// MinSamples taken for every case
	MinSamples int `json:"min_samples"`
	// MaxSamples stop sampling even if MaxTime not reached
	MaxSamples int `json:"max_samples"`
	// MaxTime spend on one case once MinSamples are taken
	MaxTime Duration `json:"max_time"`
	// MinSampleTime one sample should last at least
	MinSampleTime Duration `json:"min_sample_time"`
	// Warmup call case once before sampling
	Warmup bool `json:"warmup"`
}

// Duration accept "1s" style string or nanoseconds in json
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		v, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		*d = Duration(v)
		return nil
	}
	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("bad duration %s", string(b))
	}
	*d = Duration(n)
	return nil
}

// DefaultConfig of runner
func DefaultConfig() Config {
	return Config{
		MinSamples:    5,
		MaxSamples:    100,
		MaxTime:       Duration(time.Second),
		MinSampleTime: Duration(10 * time.Millisecond),
		Warmup:        true,
	}
}

// Option modify config
type Option func(*Config)

func WithMinSamples(n int) Option {
	return func(c *Config) {
		c.MinSamples = n
	}
}

func WithMaxSamples(n int) Option {
	return func(c *Config) {
		c.MaxSamples = n
	}
}

func WithMaxTime(d time.Duration) Option {
	return func(c *Config) {
		c.MaxTime = Duration(d)
	}
}

func WithMinSampleTime(d time.Duration) Option {
	return func(c *Config) {
		c.MinSampleTime = Duration(d)
	}
}

func WithWarmup(on bool) Option {
	return func(c *Config) {
		c.Warmup = on
	}
}

// NewConfig default config with options applied
func NewConfig(opts ...Option) Config {
	c := DefaultConfig()
	for _, fn := range opts {
		fn(&c)
	}
	return c
}

// LoadConfig read json file over default config
func LoadConfig(file string, opts ...Option) (Config, error) {
	c := NewConfig()
	if file != "" {
		if err := json.UnmarshalFile(file, &c); err != nil {
			return c, fmt.Errorf("load config %s: %v", file, err)
		}
	}
	for _, fn := range opts {
		fn(&c)
	}
	return c, c.Validate()
}

// Validate config
func (c Config) Validate() error {
	if c.MinSamples < 1 {
		return errors.New("min samples should be at least 1")
	}
	if c.MaxSamples < c.MinSamples {
		return fmt.Errorf("max samples %d less than min samples %d", c.MaxSamples, c.MinSamples)
	}
	if c.MaxTime <= 0 {
		return errors.New("max time should be positive")
	}
	if c.MinSampleTime <= 0 {
		return errors.New("min sample time should be positive")
	}
	return nil
}
