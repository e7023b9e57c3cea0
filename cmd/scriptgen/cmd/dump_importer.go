package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/scriptgen/internal/diag"
	"github.com/cwbudde/scriptgen/internal/fixture"
	"github.com/cwbudde/scriptgen/internal/importer"
	"github.com/cwbudde/scriptgen/internal/model"
)

func newDumpImporterCmd() *cobra.Command {
	var minify bool

	c := &cobra.Command{
		Use:   "dump-importer <fixture.yaml>",
		Short: "Print the resolved script name of every type in a fixture file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, err := fixture.Load(args[0])
			if err != nil {
				return err
			}
			reporter := diag.NewReporter()
			imp := importer.NewImporter(importer.Config{Minify: minify}, reporter)
			if err := imp.PrepareAll(comp); err != nil {
				return err
			}
			for _, t := range comp.Types {
				if t.Kind == model.KindDelegate {
					continue
				}
				sem := imp.GetTypeSemantics(t)
				fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", t.Name, sem.DottedScriptName)
			}
			for _, d := range reporter.Diagnostics() {
				fmt.Fprintln(cmd.ErrOrStderr(), d.Message)
			}
			return nil
		},
	}
	c.Flags().BoolVar(&minify, "minify", false, "allocate minified type names")
	return c
}
