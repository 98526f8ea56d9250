// Package configlib loads wordFreq settings from defaults, an optional YAML
// file, WORDFREQ_* environment variables and command line flags.
package configlib

import (
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"wordFreq/reportlib"
	"wordFreq/stringlib"
)

// Config keys, also used as flag names through FlagNames
const (
	KeyTop           = "top"
	KeyFormat        = "format"
	KeyStopwords     = "stopwords"
	KeyStem          = "stem"
	KeyIgnoreNumbers = "ignoreNumbers"
	KeyMinLength     = "minLength"
	KeyHTML          = "html"
	KeyCorpus        = "corpus"
	KeyContrast      = "contrast"
	KeyEntities      = "entities"
	KeyOutput        = "output"
)

// FlagNames maps config keys to their command line flag
var FlagNames = map[string]string{
	KeyTop:           "top",
	KeyFormat:        "format",
	KeyStopwords:     "stopwords",
	KeyStem:          "stem",
	KeyIgnoreNumbers: "ignore-numbers",
	KeyMinLength:     "min-length",
	KeyHTML:          "html",
	KeyCorpus:        "corpus",
	KeyContrast:      "contrast",
	KeyEntities:      "entities",
	KeyOutput:        "output",
}

// Config holds every setting of a run
type Config struct {
	Top           int
	Format        reportlib.Format
	Stopwords     string
	Stem          bool
	IgnoreNumbers bool
	MinLength     int
	HTML          bool
	Corpus        string
	Contrast      float64
	Entities      bool
	Output        string
}

// Default returns the settings of a plain run: every word, text output,
// no filters.
func Default() Config {
	return Config{
		Format:   reportlib.Text,
		Contrast: 1.0,
	}
}

// StopwordSet returns the configured stopwords as a lookup set
func (c Config) StopwordSet() map[string]struct{} {
	return stringlib.StopwordSet(c.Stopwords)
}

// New returns a viper instance holding the defaults
func New() *viper.Viper {
	d := Default()
	v := viper.New()
	v.SetDefault(KeyTop, d.Top)
	v.SetDefault(KeyFormat, string(d.Format))
	v.SetDefault(KeyStopwords, d.Stopwords)
	v.SetDefault(KeyStem, d.Stem)
	v.SetDefault(KeyIgnoreNumbers, d.IgnoreNumbers)
	v.SetDefault(KeyMinLength, d.MinLength)
	v.SetDefault(KeyHTML, d.HTML)
	v.SetDefault(KeyCorpus, d.Corpus)
	v.SetDefault(KeyContrast, d.Contrast)
	v.SetDefault(KeyEntities, d.Entities)
	v.SetDefault(KeyOutput, d.Output)

	v.SetEnvPrefix("wordfreq")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// BindFlags makes flags override every other source for the keys they name
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for key, name := range FlagNames {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "unable to bind flag --%s", name)
		}
	}
	return nil
}

// ReadFile reads configFile, or wordfreq.yaml from the working directory when
// configFile is empty. Only an explicit file is required to exist.
func ReadFile(v *viper.Viper, configFile string) error {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("wordfreq") // name of config file (without extension)
		v.SetConfigType("yaml")
		v.AddConfigPath(".") // look for config in the working directory
	}

	err := v.ReadInConfig()
	if _, notFound := err.(viper.ConfigFileNotFoundError); notFound && configFile == "" {
		log.Debug("no wordfreq.yaml found, using defaults")
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "fatal error config file")
	}
	log.WithField("config", v.ConfigFileUsed()).Info("config file loaded")

	return nil
}

// Load resolves v into a validated Config
func Load(v *viper.Viper) (Config, error) {
	format, err := reportlib.ParseFormat(v.GetString(KeyFormat))
	if err != nil {
		return Config{}, err
	}
	c := Config{
		Top:           v.GetInt(KeyTop),
		Format:        format,
		Stopwords:     stringlib.RmNewLines(v.GetString(KeyStopwords)),
		Stem:          v.GetBool(KeyStem),
		IgnoreNumbers: v.GetBool(KeyIgnoreNumbers),
		MinLength:     v.GetInt(KeyMinLength),
		HTML:          v.GetBool(KeyHTML),
		Corpus:        v.GetString(KeyCorpus),
		Contrast:      v.GetFloat64(KeyContrast),
		Entities:      v.GetBool(KeyEntities),
		Output:        v.GetString(KeyOutput),
	}
	if c.Top < 0 {
		return Config{}, errors.Errorf("%s must not be negative, got %d", KeyTop, c.Top)
	}
	if c.MinLength < 0 {
		return Config{}, errors.Errorf("%s must not be negative, got %d", KeyMinLength, c.MinLength)
	}
	if c.Contrast < 0 {
		return Config{}, errors.Errorf("%s must not be negative, got %g", KeyContrast, c.Contrast)
	}

	return c, nil
}
