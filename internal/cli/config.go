package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/depscape/pkg/errors"
	"github.com/matzehuels/depscape/pkg/layout"
	"github.com/matzehuels/depscape/pkg/lod"
)

// fileConfig is the on-disk TOML configuration. Both sections are
// optional; keys absent from the file keep their defaults.
//
//	[lod]
//	performance_target = 60
//	max_render_distance = 150
//
//	[[lod.levels]]
//	name = "High Detail"
//	min_distance = 0
//	max_distance = 25
//	...
//
//	[layout]
//	algorithm = "clustered"
//	spacing = 5
type fileConfig struct {
	LOD    *lod.Config    `toml:"lod"`
	Layout *layout.Config `toml:"layout"`
}

// loadConfig reads a TOML config file and merges it over the defaults.
// An empty path returns the defaults unchanged.
func loadConfig(path string) (*lod.Config, layout.Config, error) {
	lodCfg := lod.DefaultConfig()
	layoutCfg := layout.DefaultConfig()
	if path == "" {
		return lodCfg, layoutCfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, layoutCfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "read config %s", path)
	}

	fc := fileConfig{LOD: lodCfg, Layout: &layoutCfg}
	if err := toml.Unmarshal(data, &fc); err != nil {
		return nil, layoutCfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}

	layoutCfg.SetDefaults()
	if err := layoutCfg.Validate(); err != nil {
		return nil, layoutCfg, err
	}
	if err := lodCfg.Validate(); err != nil {
		return nil, layoutCfg, err
	}
	return lodCfg, layoutCfg, nil
}
