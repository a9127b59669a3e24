package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/inline-left-nav/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Dump    bool
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envFile       = "INLINE_LEFT_NAV_FILE"
	envRoot       = "INLINE_LEFT_NAV_ROOT"
	envOptions    = "INLINE_LEFT_NAV_OPTIONS"
	envWidth      = "INLINE_LEFT_NAV_WIDTH"
	envHeight     = "INLINE_LEFT_NAV_HEIGHT"
	envShowFooter = "INLINE_LEFT_NAV_FOOTER"
	envTrace      = "INLINE_LEFT_NAV_TRACE"
	envLogFile    = "INLINE_LEFT_NAV_LOG_FILE"
	envWatch      = "INLINE_LEFT_NAV_WATCH"
	envDump       = "INLINE_LEFT_NAV_DUMP"
	envOpen       = "INLINE_LEFT_NAV_OPEN"
	envActivate   = "INLINE_LEFT_NAV_ACTIVATE"
	envHTML       = "INLINE_LEFT_NAV_HTML"
)

const defaultWatchInterval = 1500 * time.Millisecond

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("inline-left-nav", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	file := fs.String("file", envOrDefault(env, envFile, ""), "path to the HTML file holding the navigation markup")
	root := fs.String("root", envOrDefault(env, envRoot, ""), "navigation root to show (defaults to the first one)")
	options := fs.String("options", envOrDefault(env, envOptions, ""), "YAML file overriding selectors and class names")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	watch := fs.Duration("watch", envOrDuration(env, envWatch, defaultWatchInterval), "poll interval for markup changes (0 disables reloads)")
	dump := fs.Bool("dump", envOrBool(env, envDump, false), "print the navigation state as a table and exit")
	open := fs.String("open", envOrDefault(env, envOpen, ""), "comma-separated branch addresses to expand before dumping")
	activate := fs.String("activate", envOrDefault(env, envActivate, ""), "address to activate before dumping")
	renderHTML := fs.Bool("html", envOrBool(env, envHTML, false), "dump the markup with navigation state applied instead of the table")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *watch < 0 {
		return Config{}, fmt.Errorf("watch must be >= 0 (got %s)", *watch)
	}

	cfg := Config{
		App: app.Config{
			File:          strings.TrimSpace(*file),
			Root:          strings.TrimSpace(*root),
			OptionsPath:   strings.TrimSpace(*options),
			Width:         *width,
			Height:        *height,
			ShowFooter:    *footer,
			WatchInterval: *watch,
			Open:          splitList(*open),
			Activate:      strings.TrimSpace(*activate),
			HTML:          *renderHTML,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Dump: *dump,
		Flags: map[string]string{
			"file":     *file,
			"root":     *root,
			"options":  *options,
			"width":    strconv.Itoa(*width),
			"height":   strconv.Itoa(*height),
			"footer":   strconv.FormatBool(*footer),
			"trace":    strconv.FormatBool(*trace),
			"logFile":  *logFile,
			"watch":    watch.String(),
			"dump":     strconv.FormatBool(*dump),
			"open":     *open,
			"activate": *activate,
			"html":     strconv.FormatBool(*renderHTML),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.App.File == "" {
		return errors.New("a markup file is required (-file or " + envFile + ")")
	}
	if !cfg.Dump && (len(cfg.App.Open) > 0 || cfg.App.Activate != "" || cfg.App.HTML) {
		return errors.New("-open, -activate and -html only apply together with -dump")
	}
	return nil
}
