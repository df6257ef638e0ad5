package cli

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/grovetools/agentschema/config"
	"github.com/grovetools/agentschema/errors"
	"github.com/grovetools/agentschema/logging"
)

// CommandOptions holds the options shared by every agentschema command
type CommandOptions struct {
	ConfigFile string
	Verbose    bool
	JSONOutput bool
}

// NewStandardCommand creates a new command with the standard flags
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("json", false, "Emit logs as JSON")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to agentschema.yml config file")

	SetStyledHelp(cmd)

	return cmd
}

// GetLogger returns the logger for component. Without --verbose, --json or
// --config it is the shared cached logger; otherwise a fresh logger is built
// for this invocation so the flags never leak into later commands.
func GetLogger(cmd *cobra.Command, component string) *logrus.Entry {
	opts := GetOptions(cmd)
	if !opts.Verbose && !opts.JSONOutput && opts.ConfigFile == "" {
		return logging.NewLogger(component)
	}

	// A broken config is reported by the command itself; logging falls back to defaults.
	cfg, err := LoadConfig(cmd)
	if err != nil {
		cfg = nil
	}

	var logOpts []logging.Option
	if opts.Verbose {
		logOpts = append(logOpts,
			logging.WithLevel(logrus.DebugLevel),
			logging.WithOutput(logging.GetGlobalOutput()))
	}
	if opts.JSONOutput {
		logOpts = append(logOpts, logging.WithFormatter(&logrus.JSONFormatter{}))
	}
	return logging.FromConfig(component, cfg, logOpts...)
}

// GetOptions extracts common options from a command
func GetOptions(cmd *cobra.Command) CommandOptions {
	configFile, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	return CommandOptions{
		ConfigFile: configFile,
		Verbose:    verbose,
		JSONOutput: jsonOutput,
	}
}

// InitConfig resolves the configuration file path. An explicit path wins;
// otherwise the nearest config file at or above the working directory is used.
// An empty path with a nil error means no config file exists.
func InitConfig(configFile string) (string, error) {
	if configFile != "" {
		return configFile, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	foundConfigFile, err := config.FindConfigFile(cwd)
	if err != nil {
		// No config file found, defaults apply
		return "", nil
	}

	return foundConfigFile, nil
}

// LoadConfig loads the configuration selected by the command's flags. It
// returns nil without error when no config file exists and none was requested.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := InitConfig(GetOptions(cmd).ConfigFile)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to locate config file")
	}
	if path == "" {
		return nil, nil
	}
	return config.Load(path)
}
