// Package config resolves server settings from command-line flags, falling back to
// CHESSBEE_* environment variables and then to built-in defaults.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

var ErrInvalidConfig = errors.New("invalid configuration")

const envPrefix = "CHESSBEE_"

type Config struct {
	Addr      string
	Origins   string
	LogLevel  zerolog.Level
	LogPretty bool
}

func Default() Config {
	return Config{
		Addr:      ":3000",
		Origins:   "http://localhost:5173",
		LogLevel:  zerolog.InfoLevel,
		LogPretty: false,
	}
}

// Load parses args (without the program name). Environment values become the flag
// defaults, so an explicit flag always wins.
func Load(args []string) (Config, error) {
	return load(args, os.LookupEnv)
}

func load(args []string, lookup func(string) (string, bool)) (Config, error) {
	def := Default()

	addr := envString(lookup, "ADDR", def.Addr)
	origins := envString(lookup, "ORIGINS", def.Origins)
	level := envString(lookup, "LOG_LEVEL", def.LogLevel.String())
	pretty, err := envBool(lookup, "LOG_PRETTY", def.LogPretty)
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.StringVar(&addr, "addr", addr, "listen address")
	fs.StringVar(&origins, "origins", origins, "comma separated CORS origins")
	fs.StringVar(&level, "log-level", level, "log level (trace, debug, info, warn, error)")
	fs.BoolVar(&pretty, "log-pretty", pretty, "human readable console logs")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		return Config{}, fmt.Errorf("%w: log level %q", ErrInvalidConfig, level)
	}
	if addr == "" {
		return Config{}, fmt.Errorf("%w: empty listen address", ErrInvalidConfig)
	}

	cfg := Config{
		Addr:      addr,
		Origins:   origins,
		LogLevel:  lvl,
		LogPretty: pretty,
	}
	allowed := cfg.OriginList()
	if len(allowed) == 0 {
		return Config{}, fmt.Errorf("%w: no allowed origins", ErrInvalidConfig)
	}
	// credentialed CORS cannot be combined with a wildcard origin
	if slices.Contains(allowed, "*") {
		return Config{}, fmt.Errorf("%w: wildcard origin", ErrInvalidConfig)
	}
	return cfg, nil
}

// OriginList splits Origins for the websocket upgrader.
func (c Config) OriginList() []string {
	var out []string
	for _, o := range strings.Split(c.Origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func envString(lookup func(string) (string, bool), key, fallback string) string {
	if v, ok := lookup(envPrefix + key); ok {
		return v
	}
	return fallback
}

func envBool(lookup func(string) (string, bool), key string, fallback bool) (bool, error) {
	v, ok := lookup(envPrefix + key)
	if !ok {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: %s%s=%q", ErrInvalidConfig, envPrefix, key, v)
	}
	return b, nil
}
