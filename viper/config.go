// Package viper loads outline engine settings files.
package viper

import (
	"errors"
	"io/fs"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/fwojciec/pdfoutline"
)

// Load reads a JSON or YAML settings file and layers it over the built-in
// defaults, so partial files override only the keys they name. An empty
// path returns the defaults unchanged.
func Load(path string) (*pdfoutline.Config, error) {
	config := pdfoutline.DefaultConfig()
	if path == "" {
		return config, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, pdfoutline.Errorf(pdfoutline.ENOTFOUND, "settings file not found: %s", path)
		}
		return nil, pdfoutline.Errorf(pdfoutline.EINVALID, "cannot read settings file %s: %v", path, err)
	}

	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		stringToLevelHook(),
	))
	if err := v.Unmarshal(config, hook); err != nil {
		return nil, pdfoutline.Errorf(pdfoutline.EINVALID, "cannot parse settings file %s: %v", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// stringToLevelHook decodes wire strings like "H2" into Level values.
func stringToLevelHook() mapstructure.DecodeHookFuncType {
	levelType := reflect.TypeOf(pdfoutline.Level(0))
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != levelType {
			return data, nil
		}
		return pdfoutline.ParseLevel(data.(string))
	}
}
