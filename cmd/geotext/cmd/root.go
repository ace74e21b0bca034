package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/geotext/locale"
	"github.com/npillmayer/geotext/match"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

var (
	traceLevel  string
	localeName  string
	localeFiles []string
)

var rootCmd = &cobra.Command{
	Use:   "geotext",
	Short: "Text matching and transformation for map data",
	Long: `geotext compares, searches and transforms names of map objects:
folding of case and accents, fuzzy and wildcard matching, abbreviation,
letter case and transliteration.

Examples:
  geotext compare --method fold Straße strasse
  geotext find --prefix --ignore-whitespace "new york city" york
  geotext abbrev --locale de Hauptstrasse`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		gtrace.CoreTracer = gologadapter.New()
		level, err := parseTraceLevel(traceLevel)
		if err != nil {
			return err
		}
		gtrace.CoreTracer.SetTraceLevel(level)
		return nil
	},
}

// Execute runs the command line interface.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "error", "trace level (error, info, debug)")
	rootCmd.PersistentFlags().StringVarP(&localeName, "locale", "l", "", "locale for case and abbreviation data (default: from environment)")
	rootCmd.PersistentFlags().StringSliceVar(&localeFiles, "locale-file", nil, "additional locale data file (YAML or TOML)")
}

func parseTraceLevel(s string) (tracing.TraceLevel, error) {
	switch strings.ToLower(s) {
	case "error":
		return tracing.LevelError, nil
	case "info":
		return tracing.LevelInfo, nil
	case "debug":
		return tracing.LevelDebug, nil
	}
	return tracing.LevelError, fmt.Errorf("unknown trace level %q", s)
}

// localeData finds the locale data selected by flags, together with the
// language tag of the locale. The data may be that of a fallback locale.
func localeData() (*locale.Data, language.Tag, error) {
	reg := locale.Default()
	for _, path := range localeFiles {
		data, err := locale.LoadFile(path)
		if err != nil {
			return nil, language.Und, err
		}
		reg = reg.With(data...)
	}
	loc := localeName
	if loc == "" {
		loc = locale.FromEnvironment()
	}
	return reg.Lookup(loc), locale.TagFor(loc), nil
}

// Flags selecting a match method.
type methodFlags struct {
	preset           string
	prefix           bool
	ignoreSymbols    bool
	foldAccents      bool
	fuzzy            bool
	foldCase         bool
	ignoreWhitespace bool
}

var presets = map[string]match.Method{
	"exact":        match.ExactMethod,
	"fold-case":    match.FoldCaseMethod,
	"fold-accents": match.FoldAccentsMethod,
	"fold":         match.FoldMethod,
	"prefix":       match.PrefixMethod,
	"loose":        match.LooseMethod,
	"fuzzy":        match.FuzzyMethod,
}

func (mf *methodFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&mf.preset, "method", "m", "exact", "preset (exact, fold-case, fold-accents, fold, prefix, loose, fuzzy)")
	cmd.Flags().BoolVar(&mf.prefix, "prefix", false, "search term may be a prefix")
	cmd.Flags().BoolVar(&mf.ignoreSymbols, "ignore-symbols", false, "ignore symbols and punctuation")
	cmd.Flags().BoolVar(&mf.foldAccents, "fold-accents", false, "ignore accents")
	cmd.Flags().BoolVar(&mf.fuzzy, "fuzzy", false, "allow a few wrong, missing or extra characters")
	cmd.Flags().BoolVar(&mf.foldCase, "fold-case", false, "ignore letter case")
	cmd.Flags().BoolVar(&mf.ignoreWhitespace, "ignore-whitespace", false, "ignore whitespace")
}

func (mf *methodFlags) method() (match.Method, error) {
	m, ok := presets[strings.ToLower(mf.preset)]
	if !ok {
		return m, fmt.Errorf("unknown match method %q", mf.preset)
	}
	for _, f := range []struct {
		set  bool
		flag match.Flag
	}{
		{mf.prefix, match.Prefix},
		{mf.ignoreSymbols, match.IgnoreSymbols},
		{mf.foldAccents, match.FoldAccents},
		{mf.fuzzy, match.Fuzzy},
		{mf.foldCase, match.FoldCase},
		{mf.ignoreWhitespace, match.IgnoreWhitespace},
	} {
		if f.set {
			m = m.With(f.flag)
		}
	}
	return m, nil
}

func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
