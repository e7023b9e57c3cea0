// Package compile wires the Importer, Emitter, and Rewriter into the
// single entry point spec_full §10.5 calls the Expression/Method
// Compiler: the thin driver that walks a resolved model.Compilation and
// produces the output script form, standing in for the full expression
// lowering pass spec §4 assumes exists upstream of these three
// components.
package compile

import (
	"github.com/cwbudde/scriptgen/internal/config"
	"github.com/cwbudde/scriptgen/internal/diag"
	"github.com/cwbudde/scriptgen/internal/emitter"
	"github.com/cwbudde/scriptgen/internal/importer"
	"github.com/cwbudde/scriptgen/internal/manifest"
	"github.com/cwbudde/scriptgen/internal/model"
	"github.com/cwbudde/scriptgen/internal/rewriter"
	"github.com/cwbudde/scriptgen/internal/script"
)

// Unit is the result of compiling one model.Compilation: the bodies
// produced for every method that carried one, plus the diagnostics
// accumulated along the way.
type Unit struct {
	Bodies      map[model.Symbol]*script.Block
	Diagnostics []diag.Diagnostic
	Importer    *importer.Importer
}

// Options configures a Run.
type Options struct {
	Config           config.Options
	AssemblyNamespace map[string]string
}

// Run imports comp, then rewrites every method body supplied via
// bodies (callers own producing the body tree itself — this repository
// does not parse source text, spec §6). Imports happen first so emitter
// calls made while building those bodies can query resolved names; in
// this stand-in there are no emitter calls wired into body construction
// since bodies arrive pre-built, but Run still constructs the Emitter
// so a caller authoring bodies alongside Run has one ready to use.
func Run(comp *model.Compilation, bodies map[model.Symbol]*script.Block, opts Options) (*Unit, error) {
	reporter := diag.NewReporter()

	imp := importer.NewImporter(importer.Config{
		Minify:            opts.Config.Minify,
		AssemblyNamespace: opts.AssemblyNamespace,
	}, reporter)

	if err := imp.PrepareAll(comp); err != nil {
		return nil, err
	}

	_ = emitter.New(emitter.Config{
		OmitDowncastChecks: opts.Config.OmitDowncastChecks,
		OmitNullableChecks: opts.Config.OmitNullableChecks,
	}, imp, reporter)

	rw := rewriter.New()
	out := make(map[model.Symbol]*script.Block, len(bodies))
	for sym, body := range bodies {
		rw.Reset()
		out[sym] = rw.RewriteBody(body)
	}

	return &Unit{
		Bodies:      out,
		Diagnostics: reporter.Diagnostics(),
		Importer:    imp,
	}, nil
}

// BuildManifest captures imp's resolved type names into a manifest.Manifest.
func BuildManifest(comp *model.Compilation, imp *importer.Importer) *manifest.Manifest {
	m := &manifest.Manifest{Major: manifest.CurrentMajor, Minor: manifest.CurrentMinor}
	for _, t := range comp.Types {
		sem := imp.GetTypeSemantics(t)
		if sem.ImplKind == importer.TypeNotUsable {
			continue
		}
		entry := manifest.TypeEntry{
			SourceSymbol:     t.Symbol.String(),
			DottedScriptName: sem.DottedScriptName,
			IsGenericErased:  sem.IgnoreGenericArguments,
		}
		for _, meth := range t.Methods {
			methSem := imp.GetMethodSemantics(meth)
			if methSem.Name != "" {
				entry.Members = append(entry.Members, manifest.MemberEntry{
					SourceName: meth.Name,
					ScriptName: methSem.Name,
				})
			}
		}
		m.Types = append(m.Types, entry)
	}
	return m
}
