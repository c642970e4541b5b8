package camera

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/hupe1980/cbir/codec"
)

// Duration is a time.Duration that reads and writes JSON as "1s", "250ms".
// Plain numbers are taken as seconds.
type Duration time.Duration

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(time.Duration(d).String())), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	if s, err := strconv.Unquote(string(b)); err == nil {
		v, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		*d = Duration(v)
		return nil
	}

	secs, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("invalid duration %s", b)
	}
	*d = Duration(secs * float64(time.Second))
	return nil
}

// Config describes a live matching session.
type Config struct {
	// Library is the image directory or store URI matched against.
	Library string `json:"library"`

	// Interval is the refresh period.
	Interval Duration `json:"interval"`

	// Bins is the chromaticity histogram bin count per axis.
	Bins int `json:"bins"`

	// Device is the video device index used by DeviceSource.
	Device int `json:"device"`

	// FramePath selects FileSource when set.
	FramePath string `json:"frame_path,omitempty"`
}

// DefaultConfig returns a one-second refresh with 16 bins on device 0.
func DefaultConfig() Config {
	return Config{
		Interval: Duration(time.Second),
		Bins:     16,
	}
}

// LoadConfig reads a JSON config file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := (codec.GoJSON{}).Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("camera: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the config can drive a session.
func (c Config) Validate() error {
	var errs []error
	if c.Library == "" {
		errs = append(errs, errors.New("library is required"))
	}
	if c.Interval <= 0 {
		errs = append(errs, fmt.Errorf("interval must be positive, got %s", time.Duration(c.Interval)))
	}
	if c.Bins <= 0 {
		errs = append(errs, fmt.Errorf("bins must be positive, got %d", c.Bins))
	}
	if c.Device < 0 {
		errs = append(errs, fmt.Errorf("device must not be negative, got %d", c.Device))
	}
	if len(errs) > 0 {
		return fmt.Errorf("camera: invalid config: %w", errors.Join(errs...))
	}
	return nil
}
