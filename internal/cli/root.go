package cli

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rosdep-sources/internal/app"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "ROSDEP_SOURCES"

type RootConfig struct {
	ConfigFile     string
	LogLevel       string
	SourcesListDir string
	SourcesCache   string
	OSName         string
	OSCodename     string
	RosDistro      string
	OSReleasePath  string
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:           "rosdep-sources",
		Short:         "Sync and inspect rosdep sources lists and their local cache",
		Version:       version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			return nil
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	flags.StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	flags.StringVar(&cfg.SourcesListDir, "sources-list-dir", app.DefaultSourcesListDir, "Directory of *.list sources files")
	flags.StringVar(&cfg.SourcesCache, "sources-cache-dir", app.DefaultSourcesCacheDir(), "Sources cache directory")
	flags.StringVar(&cfg.OSName, "os-name", "", "Override the detected OS name (e.g., ubuntu)")
	flags.StringVar(&cfg.OSCodename, "os-codename", "", "Override the detected OS codename (e.g., jammy)")
	flags.StringVar(&cfg.RosDistro, "ros-distro", "", "ROS distro codename (defaults to $ROS_DISTRO)")
	flags.StringVar(&cfg.OSReleasePath, "os-release", "/etc/os-release", "os-release file used for platform detection")
	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("sources_list_dir", flags.Lookup("sources-list-dir"))
	_ = viper.BindPFlag("sources_cache_dir", flags.Lookup("sources-cache-dir"))
	_ = viper.BindPFlag("os_name", flags.Lookup("os-name"))
	_ = viper.BindPFlag("os_codename", flags.Lookup("os-codename"))
	_ = viper.BindPFlag("ros_distro", flags.Lookup("ros-distro"))
	_ = viper.BindPFlag("os_release_path", flags.Lookup("os-release"))

	cmd.AddCommand(newUpdateCommand())
	cmd.AddCommand(newListCommand())
	cmd.AddCommand(newValidateCommand())
	cmd.AddCommand(newViewsCommand())
	return cmd
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("rosdep-sources")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/rosdep-sources")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.DefaultContextLogger = &log.Logger
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func exitCodeForError(err error) int {
	code := errbuilder.CodeOf(err)
	switch code {
	case errbuilder.CodeInvalidArgument, errbuilder.CodeAlreadyExists:
		return 2
	case errbuilder.CodePermissionDenied:
		return 3
	case errbuilder.CodeFailedPrecondition, errbuilder.CodeUnavailable:
		return 4
	case errbuilder.CodeNotFound, errbuilder.CodeInternal:
		return 5
	default:
		return 1
	}
}
