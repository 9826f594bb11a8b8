package cli

import (
	"github.com/BurntSushi/toml"

	"github.com/wordhaze/wordhaze/pkg/errors"
	"github.com/wordhaze/wordhaze/pkg/pipeline"
)

// fileConfig mirrors the generate command's flags as a TOML file.
//
// Pointer fields distinguish "absent" from an explicit zero, so a config
// file can set margin = 0 without it being mistaken for a missing key.
//
// Example:
//
//	width = 800
//	height = 400
//	prefer_horizontal = 0.95
//	font = "DejaVuSans"
//	min_count = 1
type fileConfig struct {
	Width            *int     `toml:"width"`
	Height           *int     `toml:"height"`
	Margin           *int     `toml:"margin"`
	PreferHorizontal *float64 `toml:"prefer_horizontal"`
	RanksOnly        *bool    `toml:"ranks_only"`
	MaxFontSize      *int     `toml:"max_font_size"`
	Seed             *int64   `toml:"seed"`
	Font             *string  `toml:"font"`
	Stopwords        *string  `toml:"stopwords"`
	MinCount         *int     `toml:"min_count"`
}

// loadConfig reads a TOML config file.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load config %q", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q in %q", undecoded[0].String(), path)
	}
	return cfg, nil
}

// apply copies the config's set fields onto opts. Flags that were given
// explicitly on the command line are applied afterwards and win.
func (c fileConfig) apply(opts *pipeline.Options) {
	if c.Width != nil {
		opts.Width = *c.Width
	}
	if c.Height != nil {
		opts.Height = *c.Height
	}
	if c.Margin != nil {
		opts.Margin = *c.Margin
	}
	if c.PreferHorizontal != nil {
		opts.PreferHorizontal = *c.PreferHorizontal
	}
	if c.RanksOnly != nil {
		opts.RanksOnly = *c.RanksOnly
	}
	if c.MaxFontSize != nil {
		opts.MaxFontSize = *c.MaxFontSize
	}
	if c.Seed != nil {
		opts.Seed = *c.Seed
	}
	if c.Font != nil {
		opts.Font = *c.Font
	}
	if c.Stopwords != nil {
		opts.StopwordPath = *c.Stopwords
	}
	if c.MinCount != nil {
		opts.MinCount = *c.MinCount
	}
}
