package command

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/urfave/cli/v2"

	"github.com/neatops/pulsectl/internal/cli/config"
	"github.com/neatops/pulsectl/internal/infra/buildinfo"
	"github.com/neatops/pulsectl/internal/pulse"
)

// App creates the CLI application.
func App() *cli.App {
	app := &cli.App{
		Name:    "pulsectl",
		Usage:   "Neat Pulse device management command-line tool",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			RegionsCommand(),
			LocationsCommand(),
			RoomsCommand(),
			MenuCommand(),
			VersionCommand(),
		},
		// No arguments drops into the interactive menu.
		Action: runMenu,
	}

	return app
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "org",
			Usage:   "Pulse organization ID",
			EnvVars: []string{"PULSE_ORG_ID"},
		},
		&cli.StringFlag{
			Name:    "token",
			Usage:   "Integration bearer token",
			EnvVars: []string{"PULSE_TOKEN"},
		},
		&cli.StringFlag{
			Name:    "base-url",
			Usage:   "API endpoint",
			EnvVars: []string{"PULSE_BASE_URL"},
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "YAML config file path (default: ~/.pulsectl/config.yaml)",
		},
		&cli.StringFlag{
			Name:  "env-file",
			Usage: "dotenv file path",
			Value: config.DefaultEnvFile,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json",
			Value:   "table",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Enable verbose diagnostics",
		},
	}
}

// GlobalFlags holds parsed global flag values.
type GlobalFlags struct {
	Org     string
	Token   string
	BaseURL string
	Output  string
	Verbose bool
}

// ParseGlobalFlags extracts global flags from context.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	return &GlobalFlags{
		Org:     c.String("org"),
		Token:   c.String("token"),
		BaseURL: c.String("base-url"),
		Output:  c.String("output"),
		Verbose: c.Bool("verbose"),
	}
}

// LoadConfig merges config sources with the global flags on top.
func LoadConfig(c *cli.Context) (*config.Config, error) {
	loader := config.NewLoader(
		config.WithConfigFile(c.String("config")),
		config.WithEnvFile(c.String("env-file")),
	)
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	flags := ParseGlobalFlags(c)
	if flags.Org != "" {
		cfg.OrgID = flags.Org
	}
	if flags.Token != "" {
		cfg.Token = flags.Token
	}
	if flags.BaseURL != "" {
		cfg.BaseURL = flags.BaseURL
	}
	return cfg, nil
}

// NewLogger creates the diagnostic logger written to stderr.
func NewLogger(verbose bool) hclog.Logger {
	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "pulsectl",
		Level:  level,
		Output: os.Stderr,
	})
}

// EnsureClient loads and validates configuration and returns the API
// client. Credential problems fail here, before any network activity.
func EnsureClient(c *cli.Context) (*pulse.Client, *config.Config, error) {
	cfg, err := LoadConfig(c)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger := NewLogger(c.Bool("verbose"))
	client := pulse.NewClient(cfg.BaseURL, cfg.OrgID, cfg.Token, logger)
	return client, cfg, nil
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
