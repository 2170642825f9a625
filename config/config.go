package config

import (
	"strings"

	"github.com/mmuldo/deltae/colorspace"
	"github.com/mmuldo/deltae/difference"
	apperrors "github.com/mmuldo/deltae/errors"
	"github.com/spf13/viper"
)

// Keys shared by flags, the config file and DELTAE_* environment variables.
const (
	KeyColorSpace = "colorspace"
	KeyWhitePoint = "whitepoint"
	KeyMethod     = "method"
	KeyLogLevel   = "log-level"
	KeyLogFormat  = "log-format"
	KeyColors     = "colors"
	KeyDither     = "dither"
)

// EnvPrefix is prepended to every key when read from the environment.
const EnvPrefix = "DELTAE"

type Config struct {
	ColorSpace *colorspace.Descriptor
	WhitePoint colorspace.WhitePoint
	Method     difference.Method
	LogLevel   string
	LogFormat  string
}

// New returns a viper instance with defaults and DELTAE_* environment
// bindings ("log-level" is read from DELTAE_LOG_LEVEL).
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// SetDefaults registers the defaults that reproduce the plain two-argument
// behavior: sRGB, D65, CIEDE2000.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyColorSpace, colorspace.DefaultName)
	v.SetDefault(KeyWhitePoint, string(colorspace.D65))
	v.SetDefault(KeyMethod, difference.DefaultMethod.String())
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyColors, 16)
	v.SetDefault(KeyDither, false)
}

// Load reads and validates the settings held by v.
func Load(v *viper.Viper) (*Config, error) {
	d, err := colorspace.Lookup(v.GetString(KeyColorSpace))
	if err != nil {
		return nil, err
	}
	wp, err := colorspace.ParseWhitePoint(v.GetString(KeyWhitePoint))
	if err != nil {
		return nil, err
	}
	m, err := difference.ParseMethod(v.GetString(KeyMethod))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ColorSpace: d,
		WhitePoint: wp,
		Method:     m,
		LogLevel:   strings.ToLower(v.GetString(KeyLogLevel)),
		LogFormat:  strings.ToLower(v.GetString(KeyLogFormat)),
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, apperrors.NewConfigError("invalid log-level: "+cfg.LogLevel, nil)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, apperrors.NewConfigError("invalid log-format: "+cfg.LogFormat, nil)
	}
	return cfg, nil
}
