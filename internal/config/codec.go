package config

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/youniqx/heist-commitlint/internal/errors"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ConfigFiles are the file names Load looks for, in order.
var ConfigFiles = []string{
	".commitlintrc.toml",
	".commitlintrc.yaml",
	".commitlintrc.yml",
}

// FormatFromPath picks the codec from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.ErrConfigFormat.WithContext("path", path)
	}
}

// ParseFormat maps a --format flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", errors.ErrConfigFormat.WithContext("format", s)
	}
}

// Load returns the configuration found in dir, or Default when dir holds
// none of ConfigFiles. The second return value is the file used, if any.
func Load(dir string) (*LintConfig, string, error) {
	for _, name := range ConfigFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, "", errors.ErrConfigRead.WithError(err).WithContext("path", path)
		}
		cfg, err := LoadFile(path)
		return cfg, path, err
	}
	return Default(), "", nil
}

// LoadFile reads and validates a configuration file.
func LoadFile(path string) (*LintConfig, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ErrConfigRead.WithError(err).WithContext("path", path)
	}

	cfg, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			return nil, appErr.WithContext("path", path)
		}
		return nil, err
	}
	return cfg, nil
}

// rawRule is RuleConfig as read from a file. Level is a pointer so that a
// missing level can be told apart from "off".
type rawRule struct {
	Level *Severity     `toml:"level" yaml:"level"`
	When  Applicability `toml:"when" yaml:"when"`
	Value any           `toml:"value" yaml:"value"`
}

type rawConfig struct {
	Extends []string           `toml:"extends" yaml:"extends"`
	Rules   map[string]rawRule `toml:"rules" yaml:"rules"`
}

// Decode parses a configuration, normalizes rule values and validates it.
// Unknown keys, a rules entry that is not a table and rules without a level
// are errors.
func Decode(r io.Reader, format Format) (*LintConfig, error) {
	var raw rawConfig

	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&raw)
		if err != nil {
			return nil, errors.ErrConfigDecode.WithError(err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.ErrConfigDecode.
				WithError(fmt.Errorf("unknown key %q", undecoded[0].String())).
				WithContext("key", undecoded[0].String())
		}
		// The decoder leaves a map field nil instead of failing when the
		// value is not a table.
		if md.IsDefined("rules") && raw.Rules == nil {
			return nil, errors.ErrConfigDecode.
				WithError(fmt.Errorf("rules must be a table")).
				WithContext("key", "rules")
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&raw); err != nil && err != io.EOF {
			return nil, errors.ErrConfigDecode.WithError(err)
		}
	default:
		return nil, errors.ErrConfigFormat.WithContext("format", string(format))
	}

	cfg, err := raw.normalize()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Encode writes c in the given format. Output is deterministic: rule tables
// are emitted in name order by both codecs.
func Encode(w io.Writer, c *LintConfig, format Format) error {
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(c); err != nil {
			return errors.ErrConfigDecode.WithError(err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return errors.ErrConfigDecode.WithError(err)
		}
		if err := enc.Close(); err != nil {
			return errors.ErrConfigDecode.WithError(err)
		}
	default:
		return errors.ErrConfigFormat.WithContext("format", string(format))
	}
	return nil
}

func (raw rawConfig) normalize() (*LintConfig, error) {
	cfg := &LintConfig{
		Extends: raw.Extends,
		Rules:   make(RuleSet, len(raw.Rules)),
	}
	if cfg.Extends == nil {
		cfg.Extends = []string{}
	}
	names := make([]string, 0, len(raw.Rules))
	for name := range raw.Rules {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		rr := raw.Rules[name]
		if rr.Level == nil {
			return nil, errors.ErrMissingSeverity.WithContext("rule", name)
		}
		rc := RuleConfig{Level: *rr.Level, When: rr.When}
		if rc.When == "" {
			rc.When = Always
		}
		value, err := normalizeValue(rr.Value)
		if err != nil {
			return nil, errors.ErrInvalidRuleValue.WithError(err).WithContext("rule", name)
		}
		rc.Value = value
		cfg.Rules[name] = rc
	}
	return cfg, nil
}

// normalizeValue maps decoder output onto the value types RuleConfig allows.
func normalizeValue(v any) (any, error) {
	switch val := v.(type) {
	case nil, string, int:
		return val, nil
	case int64:
		if val > math.MaxInt || val < math.MinInt {
			return nil, fmt.Errorf("%d is out of range", val)
		}
		return int(val), nil
	case uint64:
		if val > math.MaxInt {
			return nil, fmt.Errorf("%d is out of range", val)
		}
		return int(val), nil
	case float64:
		if val != math.Trunc(val) {
			return nil, fmt.Errorf("%v is not an integer", val)
		}
		// On 64-bit platforms float64(math.MaxInt) rounds up to 2^63.
		if val >= float64(math.MaxInt) || val < float64(math.MinInt) {
			return nil, fmt.Errorf("%v is out of range", val)
		}
		return int(val), nil
	case []string:
		return val, nil
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("list item %v is not a string", item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}
