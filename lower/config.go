package lower

import (
	"io"
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/xyproto/env/v2"
	"gopkg.in/yaml.v3"
)

// Config controls one compilation's lowering. It is threaded explicitly into
// New rather than read from ambient globals, so the range optimiser stays a
// pure function of expression and configuration.
type Config struct {
	// NoRangeOpt disables the direct range-iteration rewrite for the whole
	// compilation. Used to rule the rewrite in or out when chasing a
	// miscompile.
	NoRangeOpt bool `yaml:"no_range_opt"`
}

// FromEnv reads configuration from the environment.
func FromEnv() Config {
	return Config{
		NoRangeOpt: env.Bool("TARN_NO_RANGE_OPT"),
	}
}

// FromYAML reads configuration from a YAML document.
func FromYAML(r io.Reader) (Config, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read config")
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to parse config")
	}
	return c, nil
}
