package scrollview

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config describes a scroll view. The zero CellSize selects basic mode, where
// CellInterval and ScrollOffset are used as given and the scroller position is
// the index position. A positive CellSize selects padded mode, where both are
// derived from the pixel geometry and padding.
//
// A config file is YAML:
//
//	direction: vertical
//	movement_type: elastic
//	cell_size: 48
//	spacing: 4
//	snap:
//	  enabled: false
type Config struct {
	MotionConfig `yaml:",inline"`

	Loop bool `yaml:"loop"`

	// Basic mode.
	CellInterval float64 `yaml:"cell_interval" validate:"gte=0.01,lte=1"`
	ScrollOffset float64 `yaml:"scroll_offset" validate:"gte=0,lte=1"`

	// Padded mode.
	CellSize         float64 `yaml:"cell_size" validate:"gte=0"`
	Spacing          float64 `yaml:"spacing" validate:"gte=0"`
	PaddingHead      float64 `yaml:"padding_head" validate:"gte=0"`
	PaddingTail      float64 `yaml:"padding_tail" validate:"gte=0"`
	ReuseMarginCount float64 `yaml:"reuse_margin_count" validate:"gte=0"`
}

// DefaultConfig returns a basic-mode config showing five cells with the
// selected one centered.
func DefaultConfig() Config {
	return Config{
		MotionConfig: DefaultMotionConfig(),
		CellInterval: 0.2,
		ScrollOffset: 0.5,
	}
}

// Padded reports whether cfg selects padded mode.
func (c Config) Padded() bool { return c.CellSize > 0 }

// checkGeometry rejects padded geometry whose cell interval, at the given
// viewport, falls below minCellInterval.
func (c Config) checkGeometry(viewport Vec2) error {
	if !c.Padded() {
		return nil
	}
	l := Layout{
		ViewportSize:     float64(c.Direction.Axis(viewport)),
		CellSize:         c.CellSize,
		Spacing:          c.Spacing,
		ReuseMarginCount: c.ReuseMarginCount,
	}
	if interval, _ := l.Adjust(); interval < minCellInterval {
		return configError("Validate", "cell size %v with spacing %v gives interval %.4f at viewport %v, below %v",
			c.CellSize, c.Spacing, interval, l.ViewportSize, minCellInterval)
	}
	return nil
}

var configValidate = validator.New()

// Validate reports invalid values as a KindConfiguration error.
func (c Config) Validate() error {
	err := configValidate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return configError("Validate", "%v", err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s failed %s=%s (got %v)", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value()))
	}
	return configError("Validate", "%s", strings.Join(fields, "; "))
}

// Normalize corrects combinations padded mode cannot honour: looping,
// snapping and unrestricted movement. Each correction is reported as a
// KindUnsupportedCombination error; the returned config is always usable.
func (c Config) Normalize() (Config, []error) {
	if !c.Padded() {
		return c, nil
	}

	var warnings []error
	if c.Loop {
		c.Loop = false
		warnings = append(warnings, unsupportedError("loop is not supported with a cell size; disabled"))
	}
	if c.Snap.Enabled {
		c.Snap.Enabled = false
		warnings = append(warnings, unsupportedError("snap is not supported with a cell size; disabled"))
	}
	if c.MovementType == Unrestricted {
		c.MovementType = Elastic
		warnings = append(warnings, unsupportedError("unrestricted movement is not supported with a cell size; using elastic"))
	}
	return c, warnings
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, configError("ParseConfig", "%v", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// UnmarshalYAML decodes a direction name.
func (d *ScrollDirection) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch strings.ToLower(s) {
	case "vertical":
		*d = Vertical
	case "horizontal":
		*d = Horizontal
	default:
		return fmt.Errorf("invalid scroll direction: %q", s)
	}
	return nil
}

// MarshalYAML encodes the direction name.
func (d ScrollDirection) MarshalYAML() (any, error) { return d.String(), nil }

// UnmarshalYAML decodes a movement type name.
func (m *MovementType) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch strings.ToLower(s) {
	case "unrestricted":
		*m = Unrestricted
	case "elastic":
		*m = Elastic
	case "clamped":
		*m = Clamped
	default:
		return fmt.Errorf("invalid movement type: %q", s)
	}
	return nil
}

// MarshalYAML encodes the movement type name.
func (m MovementType) MarshalYAML() (any, error) { return m.String(), nil }

// UnmarshalYAML decodes an easing curve name such as "outCubic".
func (e *Ease) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseEase(s)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// MarshalYAML encodes the easing curve name.
func (e Ease) MarshalYAML() (any, error) { return e.String(), nil }
