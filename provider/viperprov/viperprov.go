package viperprov

import (
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/spf13/viper"

	"github.com/brent-hartwig/rsuite-conf-utils-lib/props"
)

// Config file formats viper can back the provider with.
const (
	ConfigTypeYAML       = "yaml"
	ConfigTypeJSON       = "json"
	ConfigTypeTOML       = "toml"
	ConfigTypeProperties = "properties"
	ConfigTypeEnv        = "env"
)

// Options controls how the provider sources its properties. The zero value
// is valid and yields an environment-and-defaults-only provider.
type Options struct {
	// ConfigName is the base name of the config file, without extension.
	// When empty, no file is read.
	ConfigName string
	// ConfigType names the file format. When empty, viper infers it from
	// the file extension.
	ConfigType string
	// Paths are the directories searched for the config file, in order.
	// Defaults to the working directory when ConfigName is set.
	Paths []string
	// EnvPrefix, when set, restricts the environment overlay to variables
	// beginning with the prefix.
	EnvPrefix string
	// Defaults seeds fallback values consulted when neither the file nor
	// the environment defines a property.
	Defaults map[string]string
}

// Validate checks the options before any file or environment access.
func (o Options) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.ConfigName,
			validation.Required.When(len(o.Paths) > 0).Error("config name is required when search paths are set"),
		),
		validation.Field(&o.ConfigType,
			validation.In(ConfigTypeYAML, ConfigTypeJSON, ConfigTypeTOML, ConfigTypeProperties, ConfigTypeEnv),
		),
		validation.Field(&o.EnvPrefix,
			is.Alphanumeric,
		),
	)
}

// Provider adapts a viper instance to props.Provider. Properties resolve in
// viper's usual order: environment overlay, then config file, then defaults.
type Provider struct {
	v *viper.Viper
}

var _ props.Provider = (*Provider)(nil)

// New validates opts, loads the config file when one is named, and returns
// the provider. A missing config file is tolerated, the provider then serves
// defaults and environment values; any other read failure is returned.
func New(opts Options) (*Provider, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	v := viper.New()
	for name, value := range opts.Defaults {
		v.SetDefault(name, value)
	}

	if opts.EnvPrefix != "" {
		v.SetEnvPrefix(opts.EnvPrefix)
	}
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if opts.ConfigName != "" {
		v.SetConfigName(opts.ConfigName)
		if opts.ConfigType != "" {
			v.SetConfigType(opts.ConfigType)
		}
		if len(opts.Paths) == 0 {
			v.AddConfigPath(".")
		}
		for _, path := range opts.Paths {
			v.AddConfigPath(path)
		}

		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				slog.Error("failed to read config file",
					slog.String("config", opts.ConfigName),
					slog.String("error", err.Error()))
				return nil, err
			}
			slog.Warn("config file not found, using defaults and environment variables",
				slog.String("config", opts.ConfigName))
		} else {
			slog.Info("loaded config file", slog.String("file", v.ConfigFileUsed()))
		}
	}

	return &Provider{v: v}, nil
}

func (p *Provider) Property(name string) (string, bool) {
	if !p.v.IsSet(name) {
		return "", false
	}
	return p.v.GetString(name), true
}

func (p *Provider) PropertiesWithPrefix(prefix string) map[string]string {
	out := make(map[string]string)
	for _, key := range p.v.AllKeys() {
		if strings.HasPrefix(key, prefix) {
			out[key] = p.v.GetString(key)
		}
	}
	return out
}
