package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"seehuhn.de/go/linebreak"
)

// fileConfig is the shape of a --config TOML file: any field left absent
// keeps linebreak's own documented default, same as the zero-value
// convention linebreak.Options itself uses.
type fileConfig struct {
	PTolerance  *float64 `toml:"p_tolerance"`
	LinePenalty *float64 `toml:"line_penalty"`
	Alpha       *float64 `toml:"alpha"`
	Gamma       *float64 `toml:"gamma"`
}

// loadOptions reads a TOML config file and overlays it onto opts. An empty
// path leaves opts unchanged.
func loadOptions(path string, opts linebreak.Options) (linebreak.Options, error) {
	if path == "" {
		return opts, nil
	}

	var cfg fileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return opts, fmt.Errorf("load config %s: %w", path, err)
	}

	if cfg.PTolerance != nil {
		opts.PTolerance = *cfg.PTolerance
	}
	if cfg.LinePenalty != nil {
		opts.LinePenalty = *cfg.LinePenalty
	}
	if cfg.Alpha != nil {
		opts.Alpha = *cfg.Alpha
	}
	if cfg.Gamma != nil {
		opts.Gamma = *cfg.Gamma
	}
	return opts, nil
}
