// Package config loads configuration structs from environment variables and an optional file, using viper.
package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/a-peyrard/collections/option"
	"github.com/a-peyrard/collections/str"
	"github.com/spf13/viper"
)

type (
	Options struct {
		prefix string
		file   string
	}

	// WithDefault is implemented by configuration structs (at any nesting level) that fill
	// their own defaults once the values are loaded.
	WithDefault interface {
		ApplyDefault()
	}
)

// WithEnvPrefix sets the prefix of the environment variables, e.g. APP gives APP_LOG_LEVEL.
func WithEnvPrefix(prefix string) option.Option[Options] {
	return func(opts *Options) {
		opts.prefix = prefix
	}
}

// WithFile reads the given file before the environment, the format is deduced from the extension.
// An empty path is ignored.
func WithFile(path string) option.Option[Options] {
	return func(opts *Options) {
		opts.file = path
	}
}

// Load builds a T from the sources described by the options, environment variables win over the file.
func Load[T any](opts ...option.Option[Options]) (*T, error) {
	options := option.Build(&Options{}, opts...)

	v := viper.New()
	v.SetEnvPrefix(options.prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if options.file != "" {
		v.SetConfigFile(options.file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config file %s: %w", options.file, err)
		}
	}

	var vT T
	bindEnvs(v, options.prefix, reflect.TypeOf(vT))

	if err := v.Unmarshal(&vT); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config: %w", err)
	}

	applyDefaults(reflect.ValueOf(&vT))

	return &vT, nil
}

// bindEnvs declares every leaf key of the struct to viper, otherwise Unmarshal ignores
// the environment for keys absent from the file.
func bindEnvs(v *viper.Viper, envPrefix string, typ reflect.Type, parts ...string) {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name, ok := field.Tag.Lookup("mapstructure")
		if !ok {
			name = field.Name
		}
		path := append(parts[:len(parts):len(parts)], name)

		fieldType := field.Type
		if fieldType.Kind() == reflect.Pointer {
			fieldType = fieldType.Elem()
		}
		if fieldType.Kind() == reflect.Struct {
			bindEnvs(v, envPrefix, fieldType, path...)
			continue
		}

		envParts := make([]string, len(path))
		for j, part := range path {
			envParts[j] = str.ToScreamingSnakeCase(part)
		}
		_ = v.BindEnv(strings.Join(path, "."), mergeWithEnvPrefix(envPrefix, strings.Join(envParts, "_")))
	}
}

// applyDefaults walks the struct depth first, allocating nil struct pointers and calling ApplyDefault
// on every value implementing WithDefault, the innermost ones first.
func applyDefaults(val reflect.Value) {
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			if !val.CanSet() || val.Type().Elem().Kind() != reflect.Struct {
				return
			}
			val.Set(reflect.New(val.Type().Elem()))
		}
		applyDefaults(val.Elem())
		if d, ok := val.Interface().(WithDefault); ok {
			d.ApplyDefault()
		}
		return
	}

	if val.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < val.NumField(); i++ {
		if !val.Type().Field(i).IsExported() {
			continue
		}
		field := val.Field(i)
		switch {
		case field.Kind() == reflect.Pointer:
			applyDefaults(field)
		case field.Kind() == reflect.Struct && field.CanAddr():
			applyDefaults(field.Addr())
		}
	}
}

func mergeWithEnvPrefix(envPrefix string, in string) string {
	if envPrefix != "" {
		return strings.ToUpper(envPrefix + "_" + in)
	}

	return strings.ToUpper(in)
}
