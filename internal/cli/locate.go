// internal/cli/locate.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var libShowPath bool

var includeCmd = &cobra.Command{
	Use:   "include",
	Short: "Print the Boost header directory",
	Args:  cobra.NoArgs,
	RunE:  runInclude,
}

var libCmd = &cobra.Command{
	Use:   "lib [name...]",
	Short: "Print linker names for Boost libraries",
	Long: `Resolve Boost libraries by logical name and print the name to hand the linker.

Examples:
  depfind lib system
  depfind lib system thread --path`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLib,
}

func init() {
	libCmd.Flags().BoolVar(&libShowPath, "path", false, "also print the matched file")

	rootCmd.AddCommand(includeCmd)
	rootCmd.AddCommand(libCmd)
}

func runInclude(cmd *cobra.Command, args []string) error {
	m, err := newManager()
	if err != nil {
		return err
	}

	dir, err := m.IncludePath()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), dir)
	return nil
}

func runLib(cmd *cobra.Command, args []string) error {
	m, err := newManager()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, name := range args {
		lib, err := m.LibraryName(name)
		if err != nil {
			return err
		}

		if libShowPath {
			fmt.Fprintf(out, "%s\t%s\n", lib.Name, lib.Path)
		} else {
			fmt.Fprintln(out, lib.Name)
		}
	}
	return nil
}
