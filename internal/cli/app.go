// Package cli implements the terminal front end of the loan approval simulator.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	urfave "github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"loan-approval-simulator/internal/config"
	"loan-approval-simulator/internal/presentation/render"
	"loan-approval-simulator/internal/services/simulator"
	"loan-approval-simulator/internal/utils"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// ErrInvalidInput is returned by simulate when any field fails validation.
var ErrInvalidInput = errors.New("invalid input")

const (
	debugFlag   = "debug"
	formatFlag  = "format"
	noColorFlag = "no-color"
)

var (
	version = "v0.0.1-default"
	commit  = ""
)

// Execute creates and runs the CLI application.
func Execute() {
	a := &app{in: os.Stdin, out: os.Stdout}
	if err := a.command().Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, ErrInvalidInput) {
			os.Exit(2)
		}
		utils.GetLogger().Error("fatal error", utils.Error(err))
		os.Exit(1)
	}
}

type app struct {
	in  io.Reader
	out io.Writer

	format string
	cfg    *config.Config
	svc    *simulator.Service
}

func (a *app) command() *urfave.Command {
	return &urfave.Command{
		Name:    "loan-sim",
		Version: fmt.Sprintf("%s (%s)", version, commit),
		Usage:   "Loan approval probability simulator",
		Reader:  a.in,
		Writer:  a.out,
		Flags: []urfave.Flag{
			&urfave.BoolFlag{
				Name:  debugFlag,
				Usage: "Prints verbose logs (optional, default: false)",
			},
			&urfave.StringFlag{
				Name:  formatFlag,
				Usage: "Output format [text, json, yaml]",
				Value: formatText,
			},
			&urfave.BoolFlag{
				Name:  noColorFlag,
				Usage: "Disables colored verdicts and errors",
			},
		},
		Commands: []*urfave.Command{
			a.simulateCmd(),
			a.interactiveCmd(),
			a.guideCmd(),
		},
		Before: func(ctx context.Context, cmd *urfave.Command) (context.Context, error) {
			if err := utils.InitCLILogger(cmd.Bool(debugFlag)); err != nil {
				return ctx, fmt.Errorf("failed to initialize logger: %w", err)
			}

			switch f := cmd.String(formatFlag); f {
			case formatText, formatJSON, formatYAML:
				a.format = f
			case "yml":
				a.format = formatYAML
			default:
				return ctx, fmt.Errorf("unsupported format %q", f)
			}

			cfg, err := config.Load()
			if err != nil {
				return ctx, fmt.Errorf("failed to load config: %w", err)
			}
			a.cfg = cfg
			a.svc = simulator.NewService(utils.GetLogger(), nil)
			return ctx, nil
		},
		After: func(ctx context.Context, cmd *urfave.Command) error {
			utils.Sync()
			return nil
		},
	}
}

func (a *app) textOptions(cmd *urfave.Command) render.TextOptions {
	opts := render.DefaultTextOptions()
	opts.Color = !cmd.Bool(noColorFlag)
	return opts
}

// encode writes v in the selected structured format.
func (a *app) encode(v any) error {
	if a.format == formatYAML {
		enc := yaml.NewEncoder(a.out)
		defer enc.Close()
		return enc.Encode(v)
	}
	e := json.NewEncoder(a.out)
	e.SetIndent("", "  ")
	return e.Encode(v)
}
