package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/MKhiriev/help-me-shop/internal/adapter"
	"github.com/MKhiriev/help-me-shop/internal/config"
	"github.com/MKhiriev/help-me-shop/internal/logger"
	"github.com/MKhiriev/help-me-shop/models"
	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var validFormats = []string{formatText, formatJSON}

// AdapterFactory builds the server adapter once flags and env are parsed.
type AdapterFactory func(cfg config.ClientConfig, logger *logger.Logger) (adapter.ServerAdapter, error)

type rootOptions struct {
	verbose bool
	format  string
}

type App struct {
	newAdapter AdapterFactory
	buildInfo  models.AppBuildInfo

	out    io.Writer
	errOut io.Writer

	opts    rootOptions
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

// NewApp returns a client that talks to the server through adapters made by
// newAdapter. Output goes to stdout, diagnostics to stderr.
func NewApp(newAdapter AdapterFactory, buildInfo models.AppBuildInfo) *App {
	return &App{
		newAdapter: newAdapter,
		buildInfo:  buildInfo,
		out:        os.Stdout,
		errOut:     os.Stderr,
		logger:     logger.Nop(),
	}
}

// WithOutput redirects command output and diagnostics.
func (a *App) WithOutput(out, errOut io.Writer) *App {
	a.out = out
	a.errOut = errOut
	return a
}

func (a *App) Run(ctx context.Context, args []string) error {
	cmd := a.rootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(a.out)
	cmd.SetErr(a.errOut)

	return cmd.ExecuteContext(ctx)
}

func (a *App) rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "hms",
		Short:         "help-me-shop list client",
		Long:          "Create, share and edit shopping lists on a help-me-shop server.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	config.RegisterClientFlags(cmd.PersistentFlags())
	cmd.PersistentFlags().BoolVarP(&a.opts.verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&a.opts.format, "format", formatText, "output format (text|json)")

	cmd.AddCommand(
		a.registerCommand(),
		a.loginCommand(),
		a.versionCommand(),
		a.listsCommand(),
		a.createCommand(),
		a.showCommand(),
		a.replaceCommand(),
		a.deleteCommand(),
		a.historyCommand(),
		a.addItemCommand(),
		a.updateItemCommand(),
		a.removeItemCommand(),
	)

	return cmd
}

// setup validates global flags and builds the adapter.
func (a *App) setup(cmd *cobra.Command) error {
	if !slices.Contains(validFormats, a.opts.format) {
		return fmt.Errorf("invalid format %q: must be one of %v", a.opts.format, validFormats)
	}

	a.logger = logger.NewClientLogger("hms", a.opts.verbose)

	cfg, err := config.GetClientConfig(cmd.Flags())
	if err != nil {
		return err
	}

	a.adapter, err = a.newAdapter(*cfg, a.logger)
	if err != nil {
		return fmt.Errorf("error creating server adapter: %w", err)
	}

	a.logger.Debug().Str("server", cfg.ServerAddress).Str("command", cmd.Name()).Msg("client ready")
	return nil
}

func (a *App) printer(cmd *cobra.Command) printer {
	return printer{format: a.opts.format, w: cmd.OutOrStdout()}
}
