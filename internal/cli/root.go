// internal/cli/root.go
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arc-language/depfind"
	"github.com/arc-language/depfind/internal/logging"
	"github.com/arc-language/depfind/pkg/core"
)

var (
	cfgFile      string
	platformName string
	debug        bool
	config       *core.Config
	logger       = zap.NewNop()

	buildVersion string
	buildCommit  string
	buildDate    string

	// managerOptions are passed to every Manager the commands create
	managerOptions []depfind.Option
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "depfind",
	Short: "Locate build dependencies",
	Long: `depfind - build dependency locator

Finds the Boost headers and libraries installed on this machine, plus the
platform SDK directories, and reports them as the include paths, library
paths, libraries and flags a build needs.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command with build info injected via ldflags
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	rootCmd.Version = version
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/depfind/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&platformName, "platform", "", "target platform (posix, darwin, windows)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log every candidate tried")
}

func initConfig(cmd *cobra.Command, args []string) error {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		return err
	}

	// Override config with flags
	if platformName != "" {
		config.Platform = platformName
	}
	if debug {
		config.Debug = true
	}

	logger, err = logging.New(config.Debug)
	if err != nil {
		return err
	}
	logger = logger.With(zap.String("command", cmd.Name()))
	return nil
}

func newManager() (*depfind.Manager, error) {
	opts := append([]depfind.Option{depfind.WithLogger(logger)}, managerOptions...)
	return depfind.NewManager(config, opts...)
}
