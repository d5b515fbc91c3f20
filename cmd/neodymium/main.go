package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"example.com/neodymium/internal/app"
	"example.com/neodymium/pkg/config"
	"example.com/neodymium/pkg/fileio"
	"example.com/neodymium/pkg/logs"
	"golang.org/x/term"
)

var version = "0.1.0"

const (
	envConfig  = "NEODYMIUM_CONFIG"
	envTabStop = "NEODYMIUM_TABSTOP"
	envTheme   = "NEODYMIUM_THEME"
)

// options is the parsed command line.
type options struct {
	ConfigPath string
	TabStop    int
	Theme      string
	Version    bool
	Files      []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Environ(), os.Stdout, os.Stderr))
}

func run(args, environ []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, environ, stderr)
	switch {
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		return 2
	case err != nil:
		fmt.Fprintf(stderr, "neodymium: %v\n", err)
		return 2
	}
	if opts.Version {
		fmt.Fprintf(stdout, "neodymium %s\n", version)
		return 0
	}
	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "neodymium: %v\n", err)
		return 2
	}
	theme, err := config.ResolveTheme(cfg.Theme)
	if err != nil {
		fmt.Fprintf(stderr, "neodymium: theme %s: %v\n", cfg.Theme, err)
		return 2
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(stderr, "neodymium: stdin and stdout must be a terminal")
		return 1
	}

	s := app.New(app.Options{
		Config:    cfg,
		Theme:     theme,
		ThemeName: cfg.Theme,
		ThemeDir:  themeDir(opts.ConfigPath),
		Files:     fileio.OS{},
		Logger:    logs.NewFromEnv(),
		Version:   version,
	}, opts.Files...)
	if err := s.Run(); err != nil {
		fmt.Fprintf(stderr, "neodymium: %v\n", err)
		return 1
	}
	return 0
}

// errUsage reports a flag error that was already printed with the usage.
var errUsage = errors.New("usage")

// parseArgs reads flags, falling back to NEODYMIUM_* environment variables.
// Flag errors and -h print the usage to out.
func parseArgs(args, environ []string, out io.Writer) (options, error) {
	env := parseEnv(environ)
	fs := flag.NewFlagSet("neodymium", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprintln(out, "usage: neodymium [flags] [file ...]")
		fs.PrintDefaults()
	}

	var opts options
	fs.StringVar(&opts.ConfigPath, "config", env[envConfig], "path to the config file (default ~/.neodymium/config.yaml)")
	fs.IntVar(&opts.TabStop, "tabstop", envOrInt(env, envTabStop, 0), "tab stop width (overrides the config file)")
	fs.StringVar(&opts.Theme, "theme", env[envTheme], "theme name or theme file (overrides the config file)")
	fs.BoolVar(&opts.Version, "version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return options{}, err
		}
		return options{}, errUsage
	}
	if opts.TabStop < 0 || opts.TabStop > config.MaxTabStop {
		return options{}, fmt.Errorf("tabstop must be between 1 and %d (got %d)", config.MaxTabStop, opts.TabStop)
	}
	opts.Files = fs.Args()
	return opts, nil
}

func loadConfig(opts options) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if opts.ConfigPath != "" {
		cfg, err = config.Load(opts.ConfigPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, err
	}
	if opts.TabStop > 0 {
		cfg.TabStop = opts.TabStop
	}
	if opts.Theme != "" {
		cfg.Theme = opts.Theme
	}
	return cfg, nil
}

// themeDir is the themes directory next to the config file.
func themeDir(configPath string) string {
	if configPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return ""
		}
		configPath = p
	}
	return filepath.Join(filepath.Dir(configPath), "themes")
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		k, v, ok := strings.Cut(entry, "=")
		if !ok || k == "" {
			continue
		}
		values[k] = v
	}
	return values
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return n
}
