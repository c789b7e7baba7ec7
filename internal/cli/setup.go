// internal/cli/setup.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arc-language/depfind"
	"github.com/arc-language/depfind/pkg/env"
)

const outputFlags = "flags"

var (
	setupOutput    string
	setupSave      string
	setupStatic    bool
	setupLibraries []string
	setupFeatures  []string
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Build the full environment for a target",
	Long: `Run the whole setup the config describes and print the resulting environment.

Examples:
  depfind setup
  depfind setup --lib system --lib thread --feature networking
  depfind setup --static --output json
  depfind setup --save build/deps.toml`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

var flagsCmd = &cobra.Command{
	Use:   "flags",
	Short: "Print the environment as compiler and linker flags",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, e, err := configure()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), e.String())
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{setupCmd, flagsCmd} {
		c.Flags().BoolVar(&setupStatic, "static", false, "link statically")
		c.Flags().StringSliceVar(&setupLibraries, "lib", nil, "Boost library to link (repeatable)")
		c.Flags().StringSliceVar(&setupFeatures, "feature", nil, "feature to enable: networking, random_number")
	}
	setupCmd.Flags().StringVarP(&setupOutput, "output", "o", "", "output format: yaml, json, toml, flags")
	setupCmd.Flags().StringVar(&setupSave, "save", "", "write a snapshot to this file instead of printing")

	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(flagsCmd)
}

// configure applies the command-line additions to the config and runs the
// whole setup sequence on a fresh environment
func configure() (*depfind.Manager, *env.Environment, error) {
	if setupStatic {
		config.Static = true
	}
	config.Libraries = appendNew(config.Libraries, setupLibraries...)
	config.Features = appendNew(config.Features, setupFeatures...)
	if err := config.Check(); err != nil {
		return nil, nil, err
	}

	m, err := newManager()
	if err != nil {
		return nil, nil, err
	}

	e := env.New()
	if err := m.Configure(e); err != nil {
		return nil, nil, err
	}

	logger.Debug("environment ready", zap.Strings("keys", e.Keys()))
	return m, e, nil
}

// appendNew appends the values dst does not hold yet, keeping first-seen order
func appendNew(dst []string, values ...string) []string {
	seen := make(map[string]bool, len(dst)+len(values))
	out := make([]string, 0, len(dst)+len(values))
	for _, list := range [][]string{dst, values} {
		for _, v := range list {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

func runSetup(cmd *cobra.Command, args []string) error {
	m, e, err := configure()
	if err != nil {
		return err
	}
	snap := e.Snapshot(m.Platform().String())

	if setupSave != "" {
		if err := snap.Save(setupSave); err != nil {
			return err
		}
		logger.Info("snapshot written", zap.String("path", setupSave))
		return nil
	}

	output := setupOutput
	if output == "" {
		output = config.Output
	}
	if output == outputFlags {
		fmt.Fprintln(cmd.OutOrStdout(), e.String())
		return nil
	}

	format, err := env.ParseFormat(output)
	if err != nil {
		return err
	}
	return snap.Encode(cmd.OutOrStdout(), format)
}
