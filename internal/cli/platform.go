// internal/cli/platform.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arc-language/depfind/pkg/platform"
)

var platformCmd = &cobra.Command{
	Use:   "platform",
	Short: "Show the target platform and its conventions",
	Long:  `Show the platform dependencies are located for and the literal flags and libraries it adds.`,
	Args:  cobra.NoArgs,
	RunE:  runPlatform,
}

var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "List known dependencies",
	Long:  `List every compiled-in dependency and the candidate roots it searches on the target platform.`,
	Args:  cobra.NoArgs,
	RunE:  runDeps,
}

func init() {
	rootCmd.AddCommand(platformCmd)
	rootCmd.AddCommand(depsCmd)
}

func runPlatform(cmd *cobra.Command, args []string) error {
	m, err := newManager()
	if err != nil {
		return err
	}

	conv, err := platform.Lookup(m.Platform())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Platform: %s\n", conv.ID)
	fmt.Fprintf(out, "Library prefix: %s\n", conv.LibraryPrefix)
	fmt.Fprintf(out, "Static libraries: %s\n", strings.Join(conv.StaticExtensions, " "))
	fmt.Fprintf(out, "Shared libraries: %s\n", strings.Join(conv.SharedExtensions, " "))
	fmt.Fprintf(out, "CCFLAGS: %s\n", strings.Join(conv.CCFlags, " "))
	fmt.Fprintf(out, "LIBS: %s\n", strings.Join(conv.Libs, " "))
	if conv.StaticSupported() {
		fmt.Fprintf(out, "Static LINKFLAGS: %s\n", strings.Join(conv.StaticLinkFlags, " "))
	} else {
		fmt.Fprintf(out, "Static linking: not supported\n")
	}
	if len(conv.SystemDeps) > 0 {
		fmt.Fprintf(out, "System dependencies: %s\n", strings.Join(conv.SystemDeps, ", "))
	}

	fmt.Fprintf(out, "\nSupported platforms: %v\n", platform.Supported())
	return nil
}

func runDeps(cmd *cobra.Command, args []string) error {
	m, err := newManager()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, name := range m.Dependencies() {
		entry, err := m.Dependency(name)
		if err != nil {
			return err
		}

		target, err := entry.Target(m.Platform())
		if err != nil {
			fmt.Fprintf(out, "%s (not defined for %s)\n", name, m.Platform())
			continue
		}

		fmt.Fprintf(out, "%s\n", name)
		if len(target.HeaderRoots) > 0 {
			fmt.Fprintf(out, "  headers:   %s\n", strings.Join(target.HeaderRoots, ", "))
		}
		if len(target.LibDirRoots) > 0 {
			fmt.Fprintf(out, "  libdirs:   %s\n", strings.Join(target.LibDirRoots, ", "))
		}
		if len(target.LibraryRoots) > 0 {
			fmt.Fprintf(out, "  libraries: %s\n", strings.Join(target.LibraryRoots, ", "))
		}
	}
	return nil
}
