package util

import (
	"errors"
	"fmt"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/spf13/viper"
)

const (
	LOCATION_ORDER_COMPUTED = "computed"
	LOCATION_ORDER_REVERSED = "reversed"
)

// AnalysisConfig drives one run of the antenna analysis.
type AnalysisConfig struct {
	GridFile         string `mapstructure:"GRID_FILE" validate:"required"`
	OriginLabel      string `mapstructure:"ORIGIN_LABEL" validate:"required,len=1"`
	OriginIndex      int    `mapstructure:"ORIGIN_INDEX" validate:"gte=0"`
	DestinationIndex int    `mapstructure:"DESTINATION_INDEX" validate:"gte=0"`
	LocationOrder    string `mapstructure:"LOCATION_ORDER" validate:"oneof=computed reversed"`
	FilterInBounds   bool   `mapstructure:"FILTER_IN_BOUNDS"`
	UniqueLocations  bool   `mapstructure:"UNIQUE_LOCATIONS"`
	PathCacheSize    int    `mapstructure:"PATH_CACHE_SIZE" validate:"gte=1"`
	LogLevel         string `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn error"`
}

// OriginRune returns the label the origin and destination antennas are looked up by.
func (c AnalysisConfig) OriginRune() rune {
	for _, r := range c.OriginLabel {
		return r
	}
	return 0
}

func SetConfigDefaults() {
	viper.SetDefault("GRID_FILE", "./data/matriz.txt")
	viper.SetDefault("ORIGIN_LABEL", "0")
	viper.SetDefault("ORIGIN_INDEX", 0)
	viper.SetDefault("DESTINATION_INDEX", 1)
	viper.SetDefault("LOCATION_ORDER", LOCATION_ORDER_COMPUTED)
	viper.SetDefault("FILTER_IN_BOUNDS", false)
	viper.SetDefault("UNIQUE_LOCATIONS", false)
	viper.SetDefault("PATH_CACHE_SIZE", 128)
	viper.SetDefault("LOG_LEVEL", "info")
}

// ReadConfig reads config.{yaml,json,toml} from configDir. A missing config file is not an
// error, defaults and environment variables still apply.
func ReadConfig(configDir string) error {
	SetConfigDefaults()
	viper.SetConfigName("config")
	viper.AddConfigPath(configDir)
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}

// LoadAnalysisConfig unmarshals the current viper state and validates it.
func LoadAnalysisConfig() (AnalysisConfig, error) {
	var cfg AnalysisConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, WrapErrorf(err, ErrInvalidInput, "could not decode config")
	}
	if err := ValidateConfig(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func ValidateConfig(cfg AnalysisConfig) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		return WrapErrorf(err, ErrInvalidInput, "validation error: %v", vvString)
	}
	return nil
}

func translateError(err error, trans ut.Translator) []error {
	if err == nil {
		return nil
	}
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []error{err}
	}
	errs := make([]error, 0, len(validatorErrs))
	for _, e := range validatorErrs {
		errs = append(errs, errors.New(e.Translate(trans)))
	}
	return errs
}
