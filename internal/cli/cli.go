package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/specialistvlad/componeer/internal/app"
)

// EnvPrefix prefixes the environment variables that override flags, e.g.
// COMPONEER_LOG_LEVEL.
const EnvPrefix = "COMPONEER"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	v := viper.New()
	var config *app.Config
	cmd := newCommand(v, func(c *app.Config) { config = c })
	if args == nil {
		args = []string{} // cobra falls back to os.Args on nil
	}
	cmd.SetArgs(args)
	cmd.SetOut(output)
	cmd.SetErr(output)

	if err := cmd.Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return nil, false, exitErr
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	// Help and version exit without running the command.
	if config == nil {
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

func newCommand(v *viper.Viper, done func(*app.Config)) *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "componeer [flags] [DOCUMENT]",
		Short: "Mount declarative components into an HTML document.",
		Long: `Componeer - mounts the components declared in HCL or YAML manifests into
the elements of an HTML document that match their selectors, and reports the
instances it created.`,
		Version:       "dev",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(v, cmd.Flags(), cfgFile); err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}

			document := v.GetString("document")
			if document == "" && len(args) > 0 {
				document = args[0]
			}
			if document == "" {
				slog.Debug("No document provided, printing usage and exiting.")
				return cmd.Help()
			}
			slog.Debug("Document path determined.", "path", document)

			config, err := app.NewConfig(app.Config{
				ManifestPath:    v.GetString("manifest"),
				DocumentPath:    document,
				ContextSelector: v.GetString("context"),
				Targets:         v.GetStringSlice("target"),
				LogFormat:       strings.ToLower(v.GetString("log-format")),
				LogLevel:        strings.ToLower(v.GetString("log-level")),
				Watch:           v.GetBool("watch"),
				Debounce:        v.GetDuration("debounce"),
				ShowMetrics:     v.GetBool("metrics"),
			})
			if err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}
			done(config)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfgFile, "config", "c", "", "Path to a YAML, TOML or JSON file holding flag values.")
	flags.StringP("manifest", "m", "components", "Path to a manifest file or a directory of .hcl/.yaml manifests.")
	flags.StringP("document", "d", "", "Path to the HTML document (alternative to the DOCUMENT argument).")
	flags.String("context", "", "CSS selector of the element components are discovered under. Defaults to the whole document.")
	flags.StringSliceP("target", "t", nil, "Components to initialize. Defaults to every component not required by another.")
	flags.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flags.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.BoolP("watch", "w", false, "Remount the components whenever the document changes.")
	flags.Duration("debounce", 0, "Quiet period before a change is acted on in watch mode (default 200ms).")
	flags.Bool("metrics", false, "Print instance metrics in the Prometheus text format before exiting.")

	return cmd
}

// initConfig layers the config file and COMPONEER_* environment variables
// under the command-line flags.
func initConfig(v *viper.Viper, flags *pflag.FlagSet, cfgFile string) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
	}
	return nil
}
