package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/tomasnyberg/cypher-language-support/cypher"
)

var defaultOptions cypher.Options

func init() {
	defaultOptions = parseEnvOptions(os.Getenv("CYPHERFMT"))
}

// parseEnvOptions parses the comma-separated option list of the
// CYPHERFMT environment variable.
func parseEnvOptions(env string) cypher.Options {
	opts := cypher.Standard
	for _, opt := range strings.Split(env, ",") {
		switch opt = strings.TrimSpace(opt); opt {
		default:
			log.Printf("cypherfmt: Unknown option %q", opt)
		case "":
		case "base":
			opts = 0
		case "nocomments":
			opts |= cypher.StripComments
		case "nonewline":
			opts &^= cypher.FinalNewline
		}
	}
	return opts
}

const configName = "cypherfmt.toml"

var defaultExtensions = []string{".cypher", ".cql", ".cyp"}

// config is the contents of a cypherfmt.toml project file.
type config struct {
	Extensions    []string `toml:"extensions"`
	FinalNewline  *bool    `toml:"final_newline"`
	StripComments *bool    `toml:"strip_comments"`
}

var defaultConfig = &config{Extensions: defaultExtensions}

// options returns base adjusted by the settings present in c.
func (c *config) options(base cypher.Options) cypher.Options {
	set := func(opt cypher.Options, v *bool) {
		switch {
		case v == nil:
		case *v:
			base |= opt
		default:
			base &^= opt
		}
	}
	set(cypher.FinalNewline, c.FinalNewline)
	set(cypher.StripComments, c.StripComments)
	return base
}

// matches reports whether a file called name should be formatted
// when found in a directory walk.
func (c *config) matches(name string) bool {
	return slices.Contains(c.Extensions, filepath.Ext(name))
}

var (
	configMu    sync.Mutex
	configCache = map[string]*config{}
)

// findConfig returns the configuration of the nearest cypherfmt.toml
// in dir or any of its parents, or defaultConfig if there is none.
func findConfig(dir string) (*config, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	configMu.Lock()
	defer configMu.Unlock()

	// Directories walked through on the way up share the result.
	var visited []string
	remember := func(cfg *config) *config {
		for _, d := range visited {
			configCache[d] = cfg
		}
		return cfg
	}

	for {
		if cfg, ok := configCache[dir]; ok {
			return remember(cfg), nil
		}
		visited = append(visited, dir)

		path := filepath.Join(dir, configName)
		_, err := os.Stat(path)
		if os.IsNotExist(err) {
			parent := filepath.Dir(dir)
			if parent == dir {
				// Root.
				return remember(defaultConfig), nil
			}
			dir = parent
			continue
		}
		if err != nil {
			return nil, err
		}

		cfg, err := loadConfig(path)
		if err != nil {
			return nil, err
		}
		return remember(cfg), nil
	}
}

func loadConfig(path string) (*config, error) {
	var cfg config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	for _, key := range meta.Undecoded() {
		log.Printf("%s: unknown key %q", path, key.String())
	}
	if !meta.IsDefined("extensions") {
		cfg.Extensions = defaultExtensions
	}
	for i, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			cfg.Extensions[i] = "." + ext
		}
	}
	return &cfg, nil
}
