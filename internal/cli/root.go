// Package cli implements the headless mycelia command: it drives the same
// loader and fetch bridge as the desktop UI, polling from a terminal loop.
package cli

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ytget/mycelia/internal/applog"
	"github.com/ytget/mycelia/internal/config"
	"github.com/ytget/mycelia/internal/fetch"
	"github.com/ytget/mycelia/internal/loader"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// pollInterval paces the terminal frame loop
const pollInterval = 16 * time.Millisecond

// App carries flags shared by all subcommands
type App struct {
	APIKey   string
	Endpoint string
	Timeout  time.Duration
	Debug    bool

	env config.Env
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:           "mycelia",
		Short:         "Fetch and read Mycelia entries from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # List entries, newest first
  mycelia fetch --api-key "$KEY"

  # Raw JSON for scripts
  mycelia fetch --format json

  # Render one entry as markdown
  mycelia show 42
`),
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		env, err := config.LoadEnv()
		if err != nil {
			return err
		}
		app.env = env
		debug := app.Debug || env.Debug
		applog.Init(cmd.ErrOrStderr(), debug)
		if !debug {
			// stderr carries user-facing errors; only warnings and up join them
			applog.SetLevel(slog.LevelWarn)
		}
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.APIKey, "api-key", "", "API key sent as bearer token (default: $"+config.EnvAPIKey+")")
	cmd.PersistentFlags().StringVar(&app.Endpoint, "endpoint", "", "Messages endpoint URL (default: $"+config.EnvEndpoint+" or "+config.DefaultEndpoint+")")
	cmd.PersistentFlags().DurationVar(&app.Timeout, "timeout", 0, "Request timeout (default: $"+config.EnvTimeout+" or 30s)")
	cmd.PersistentFlags().BoolVar(&app.Debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(newFetchCmd(app))
	cmd.AddCommand(newShowCmd(app))

	return cmd
}

// Execute runs the command tree with the given arguments
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.ExecuteContext(ctx)
}

func (app *App) apiKey() string {
	if app.APIKey != "" {
		return app.APIKey
	}
	return app.env.APIKey
}

func (app *App) endpoint() string {
	if app.Endpoint != "" {
		return app.Endpoint
	}
	return app.env.Endpoint
}

func (app *App) timeout() time.Duration {
	if app.Timeout > 0 {
		return app.Timeout
	}
	return app.env.Timeout
}

// load dispatches one reload and polls until its outcome is applied
func (app *App) load(ctx context.Context) (loader.Snapshot, error) {
	client := fetch.NewClient(fetch.WithTimeout(app.timeout()))
	svc := loader.NewService(client, app.endpoint())
	svc.Reload(app.apiKey())

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		if svc.Poll() {
			return svc.Snapshot(), nil
		}
		select {
		case <-ctx.Done():
			return loader.Snapshot{}, ctx.Err()
		case <-ticker.C:
		}
	}
}
