// Package commands implements the CLI commands for the hoist release tool.
package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.trai.ch/hoist/internal/app"
	"go.trai.ch/hoist/internal/build"
)

const (
	keyConfig  = "config"
	keyDir     = "dir"
	keyLogJSON = "log-json"
	keyDryRun  = "dry-run"
	keyDelay   = "index-delay"
	keyVersion = "version"
)

// CLI represents the command line interface for hoist.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	v       *viper.Viper
}

// Application represents the application logic interface.
type Application interface {
	Publish(ctx context.Context, opts app.PublishOptions) error
	Plan(ctx context.Context, opts app.Options) error
	Restore(ctx context.Context, opts app.Options) error
	Status(ctx context.Context, opts app.Options) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "hoist",
		Short:         "Publish the crates of a Cargo workspace in dependency order",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP(keyConfig, "c", "", "Path to the release configuration (default hoist.yaml)")
	rootCmd.PersistentFlags().StringP(keyDir, "C", "", "Workspace root (default current directory)")
	rootCmd.PersistentFlags().Bool(keyLogJSON, false, "Emit logs as JSON records")

	v := viper.New()
	v.SetEnvPrefix("HOIST")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlags(rootCmd.PersistentFlags())

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
		v:       v,
	}

	rootCmd.AddCommand(c.newPublishCmd())
	rootCmd.AddCommand(c.newPlanCmd())
	rootCmd.AddCommand(c.newRestoreCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetJSONLogHook sets up a PersistentPreRun function that reports whether
// JSON logging was requested before any command runs.
func (c *CLI) SetJSONLogHook(fn func(bool)) {
	c.rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		fn(c.v.GetBool(keyLogJSON))
	}
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) options() app.Options {
	return app.Options{
		Root:       c.v.GetString(keyDir),
		ConfigPath: c.v.GetString(keyConfig),
	}
}
