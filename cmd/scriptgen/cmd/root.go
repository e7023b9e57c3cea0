package cmd

import "github.com/spf13/cobra"

// Root builds the scriptgen root command with its subcommands attached,
// one file per subcommand, the way the teacher splits its own CLI
// entry points.
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "scriptgen",
		Short: "A metadata-driven source-to-source compiler core",
	}
	root.AddCommand(newCompileCmd())
	root.AddCommand(newDumpImporterCmd())
	root.AddCommand(newVersionCmd())
	return root
}
