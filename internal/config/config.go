package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config holds the settings for both demonstrations.
type Config struct {
	Debug bool `toml:"debug"`
	BST   BST  `toml:"bst"`
	Expr  Expr `toml:"expr"`
}

// BST configures the binary search tree demonstration.
type BST struct {
	// Values are inserted in order before the first print.
	Values []int `toml:"values"`
	// Insert is added after the first print.
	Insert int `toml:"insert"`
	// Remove is removed after the second print.
	Remove int `toml:"remove"`
	// Query is looked up at the end.
	Query int `toml:"query"`
	// Recursive selects InsertRec and RemoveRec for the mutations.
	Recursive bool `toml:"recursive"`
}

// Expr configures the expression tree demonstration.
type Expr struct {
	Postfix string `toml:"postfix"`
}

// Default returns the configuration of the classic demonstrations.
func Default() *Config {
	return &Config{
		BST: BST{
			Values: []int{6, 2, 9, 1, 5, 8, 4},
			Insert: 3,
			Remove: 2,
			Query:  4,
		},
		Expr: Expr{
			Postfix: "ab+cde+**",
		},
	}
}

// Load decodes the TOML file at path over the defaults. Keys missing from
// the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, "no such file: %s", path)
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("unknown key %q in %s", undecoded[0].String(), path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// Validate returns the first invalid setting.
func (c *Config) Validate() error {
	if err := validatePostfix(c.Expr.Postfix); err != nil {
		return errors.Wrap(err, "expr.postfix")
	}
	return nil
}

func validatePostfix(v string) error {
	if v == "" {
		return errors.New("must not be empty")
	}
	return nil
}
