package main

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/reoring/dcmeta"
	"github.com/reoring/dcmeta/internal/render"
	"github.com/reoring/dcmeta/opf"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newClassifyCmd(a *app) *cobra.Command {
	var (
		format     string
		all        bool
		namespace  string
		lang       bool
		strictLang bool
	)
	cmd := &cobra.Command{
		Use:   "classify [pattern...]",
		Short: "Classify metadata elements of OPF or EPUB files",
		Long: `Classify reads every file matching the given patterns (doublestar syntax,
e.g. 'books/**/*.opf') and prints one record per classified element.
Files ending in .epub are opened as archives.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			flags := cmd.Flags()
			if flags.Changed("format") {
				cfg.Format = format
			}
			if flags.Changed("all") {
				cfg.IncludeUnrecognized = all
			}
			if flags.Changed("namespace") {
				cfg.Namespace = namespace
			}
			if flags.Changed("lang") {
				cfg.Language = lang
			}
			if flags.Changed("strict-lang") {
				cfg.StrictLanguage = strictLang
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			files, err := expand(a.fs, args)
			if err != nil {
				return err
			}

			var opfOpts []opf.Option
			if cfg.Namespace == dcmeta.NamespaceURI.String() {
				opfOpts = append(opfOpts, opf.WithRawNamespaces())
			}
			c := dcmeta.NewClassifier(cfg.ClassifierOptions(a.logger)...)

			records := []render.Record{}
			for _, f := range files {
				elems, err := decode(a.fs, f, opfOpts)
				if err != nil {
					return fmt.Errorf("%s: %w", f, err)
				}
				a.logger.Debug("decoded package document", "file", f, "elements", len(elems))
				for _, e := range elems {
					m := c.Classify(e)
					if m.Kind() == dcmeta.KindUnrecognized && !cfg.IncludeUnrecognized {
						continue
					}
					records = append(records, render.FromMetadata(f, m))
				}
			}
			f, _ := render.ParseFormat(cfg.Format)
			return render.Write(cmd.OutOrStdout(), f, records)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	cmd.Flags().BoolVar(&all, "all", false, "also print elements that were not recognized")
	cmd.Flags().StringVar(&namespace, "namespace", "prefix", "namespace match: prefix, uri or any")
	cmd.Flags().BoolVar(&lang, "lang", false, "read xml:lang into records")
	cmd.Flags().BoolVar(&strictLang, "strict-lang", false, "validate xml:lang as BCP 47")
	return cmd
}

func decode(fs afero.Fs, name string, opts []opf.Option) ([]dcmeta.Element, error) {
	if strings.EqualFold(filepath.Ext(name), ".epub") {
		return opf.DecodeEPUBFile(fs, name, opts...)
	}
	return opf.DecodeFile(fs, name, opts...)
}

// expand resolves each pattern against fs and returns the matches in
// argument order without duplicates.
func expand(fs afero.Fs, patterns []string) ([]string, error) {
	var out []string
	seen := map[string]bool{}
	for _, p := range patterns {
		p = filepath.ToSlash(p)
		base, rel := doublestar.SplitPattern(p)
		fsys := fs
		if base != "." {
			fsys = afero.NewBasePathFs(fs, base)
		}
		matches, err := doublestar.Glob(afero.NewIOFS(fsys), rel, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", p)
		}
		for _, m := range matches {
			full := m
			if base != "." {
				full = path.Join(base, m)
			}
			if !seen[full] {
				seen[full] = true
				out = append(out, full)
			}
		}
	}
	return out, nil
}
