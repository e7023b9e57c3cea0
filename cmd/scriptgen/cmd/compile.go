package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/scriptgen/internal/compile"
	"github.com/cwbudde/scriptgen/internal/config"
	"github.com/cwbudde/scriptgen/internal/diag"
	"github.com/cwbudde/scriptgen/internal/fixture"
	"github.com/cwbudde/scriptgen/internal/manifest"
	"github.com/cwbudde/scriptgen/internal/model"
	"github.com/cwbudde/scriptgen/internal/script"
)

func newCompileCmd() *cobra.Command {
	var configPath string
	var manifestOut string

	c := &cobra.Command{
		Use:   "compile <fixture.yaml>",
		Short: "Import and rewrite the types and methods described by a fixture file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, err := fixture.Load(args[0])
			if err != nil {
				return err
			}

			opts := config.Default()
			if configPath != "" {
				opts, err = config.Load(configPath)
				if err != nil {
					return err
				}
			}

			unit, err := compile.Run(comp, map[model.Symbol]*script.Block{}, compile.Options{Config: *opts})
			if err != nil {
				return err
			}
			hasErrors := false
			for _, d := range unit.Diagnostics {
				fmt.Fprintln(cmd.ErrOrStderr(), d.Message)
				if d.Severity == diag.Error {
					hasErrors = true
				}
			}
			if hasErrors {
				return fmt.Errorf("compile: errors were reported; no output written")
			}

			if manifestOut != "" {
				m := compile.BuildManifest(comp, unit.Importer)
				data, err := (manifest.Serializer{}).SerializeManifest(m)
				if err != nil {
					return err
				}
				if err := os.WriteFile(manifestOut, data, 0o644); err != nil {
					return err
				}
			}
			return nil
		},
	}
	c.Flags().StringVar(&configPath, "config", "", "path to a YAML options file")
	c.Flags().StringVar(&manifestOut, "manifest", "", "path to write the companion manifest to")
	return c
}
