package terminal

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/thierryteisseire/0crm-skill/pkg/runtime/terminal/commands"
	"github.com/thierryteisseire/0crm-skill/pkg/runtime/terminal/export"
)

// CLI represents the command-line interface
type CLI struct {
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
	Logger zerolog.Logger
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	globals := &commands.Globals{
		Output: opts.Output,
		Logger: opts.Logger,
	}

	rootCmd := &cobra.Command{
		Use:   "0crm",
		Short: "Command-line tool for the Zero CRM API",
	}

	rootCmd.PersistentFlags().StringVar(&globals.ConfigPath, "config", defaultConfigPath(),
		"Path to the .0crmcfg profile file")
	rootCmd.PersistentFlags().StringVar(&globals.Profile, "profile", "",
		"Named profile in the config file")
	rootCmd.PersistentFlags().StringVar(&globals.Host, "host", "",
		"API base URL override")
	rootCmd.PersistentFlags().StringVar(&globals.SettingsPath, "settings", "",
		"Path to an optional yaml settings file (retry tuning, forecast table)")
	rootCmd.PersistentFlags().DurationVar(&globals.Timeout, "timeout", 0,
		"Per-attempt request timeout")

	reporter := export.NewReporter(opts.Output)

	rootCmd.AddCommand(
		commands.NewContactsCmd(globals),
		commands.NewDealsCmd(globals),
		commands.NewReportCmd(globals, reporter),
		commands.NewProfileCmd(globals),
		commands.NewHealthCmd(globals),
		commands.NewImportCmd(globals),
		commands.NewSeedCmd(globals),
	)

	return &CLI{rootCmd: rootCmd}
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".0crmcfg"
	}
	return filepath.Join(home, ".0crmcfg")
}
