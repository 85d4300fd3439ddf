package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/idelchi/mediascan/internal/mediascan"
)

// EnvPrefix prefixes environment variables that override flag defaults.
const EnvPrefix = "MEDIASCAN"

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

//nolint:gochecknoglobals // Config constant
var allowedFormats = []string{"table", "json", "yaml"}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute(ctx context.Context) error {
	return fang.Execute(
		ctx,
		c.Command(),
		fang.WithVersion(c.version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	)
}

// Command builds the root command.
func (c CLI) Command() *cobra.Command {
	var configFile string

	v := viper.New()

	cmd := &cobra.Command{
		Use:   "mediascan <path>",
		Short: "Report the sizes of media files in a directory or manifest",
		Long: heredoc.Doc(`
			mediascan finds image and video files and reports their sizes.

			The path is either a directory, which is scanned recursively, or a .txt
			manifest listing one file or directory per line. Directories named in a
			manifest are scanned one level deep only.

			Matched extensions (case-insensitive):
			  ` + strings.Join(mediascan.DefaultFileTypes().List(), ", ") + `

			Flags can also be set through MEDIASCAN_* environment variables
			(e.g. MEDIASCAN_SUMMARY_ONLY=true) or a --config file.
		`),
		Example: heredoc.Doc(`
			mediascan ./assets
			mediascan paths.txt --output report.txt
			mediascan ./assets --summary-only
		`),
		Version:      c.version,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := loadOptions(v, configFile, args)
			if err != nil {
				return err
			}

			return logic(cmd.Context(), mediascan.OS{}, options, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.SortFlags = false
	defineFlags(flags, &configFile)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	_ = v.BindPFlags(flags) //nolint:errcheck // Fails only for a nil flag set

	return cmd
}

func defineFlags(flags *pflag.FlagSet, configFile *string) {
	flags.StringP("output", "o", "", "Append every report row to this file")
	flags.Bool("summary-only", false, "Print only the number of files and their total size")
	flags.StringP("format", "f", "table", "Report format: "+strings.Join(allowedFormats, ", "))
	flags.Bool("debug", false, "Enable debug output")
	flags.StringVarP(configFile, "config", "c", "", "Read defaults from this config file (yaml, toml or json)")
}

// loadOptions merges flags, environment and the config file into scan options.
func loadOptions(v *viper.Viper, configFile string, args []string) (mediascan.Options, error) {
	var options mediascan.Options

	if configFile != "" {
		v.SetConfigFile(configFile)

		if err := v.ReadInConfig(); err != nil {
			return options, fmt.Errorf("reading config %q: %w", configFile, err)
		}
	}

	options.Output = v.GetString("output")
	options.SummaryOnly = v.GetBool("summary-only")
	options.Format = strings.ToLower(v.GetString("format"))
	options.Debug = v.GetBool("debug")

	if !slices.Contains(allowedFormats, options.Format) {
		return options, fmt.Errorf("invalid output format %q: must be one of %v", options.Format, allowedFormats)
	}

	// The first positional argument is the path; any further ones are ignored.
	if len(args) == 0 || args[0] == "" {
		return options, mediascan.ErrMissingArgument
	}

	options.Path = args[0]

	return options, nil
}
