package cmd

import (
	"fmt"
	"strings"

	"github.com/npillmayer/geotext"
	"github.com/npillmayer/geotext/abbrev"
	"github.com/npillmayer/geotext/attrib"
	"github.com/npillmayer/geotext/casing"
	"github.com/npillmayer/geotext/locale"
	"github.com/spf13/cobra"
)

var (
	deleteWords bool
	letterCase  string
	fromCode    bool
)

var abbrevCmd = &cobra.Command{
	Use:   "abbrev <text>",
	Short: "Abbreviate a text",
	Long: `Abbreviates the words of a text with the abbreviations of a locale.

Examples:
  geotext abbrev --locale de Hauptstrasse
  geotext abbrev --locale en --delete "The Fifth Avenue"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, _, err := localeData()
		if err != nil {
			printError("cannot load locale data", err)
			return err
		}
		s := geotext.FromUTF8(strings.Join(args, " "))
		if err := abbrev.Abbreviate(s, data.AbbreviationDictionary(), deleteWords); err != nil {
			return err
		}
		fmt.Fprintln(out(cmd), s)
		return nil
	},
}

var caseCmd = &cobra.Command{
	Use:   "case <text>",
	Short: "Change the letter case of a text",
	Long: `Changes the letter case of a text, following the rules of a locale.

Examples:
  geotext case --to title --locale en "bank of the usa"
  geotext case --to upper --locale tr istanbul`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, ok := casing.ParseLetterCase(letterCase)
		if !ok {
			return fmt.Errorf("unknown letter case %q", letterCase)
		}
		data, tag, err := localeData()
		if err != nil {
			printError("cannot load locale data", err)
			return err
		}
		s := geotext.FromUTF8(strings.Join(args, " "))
		if err := casing.SetCase(s, kind, data.TitleDictionary(), tag); err != nil {
			return err
		}
		fmt.Fprintln(out(cmd), s)
		return nil
	},
}

var translitCmd = &cobra.Command{
	Use:   "translit <text>",
	Short: "Transliterate a text to Latin script",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, tag, err := localeData()
		if err != nil {
			printError("cannot load locale data", err)
			return err
		}
		s := geotext.FromUTF8(strings.Join(args, " "))
		if err := casing.Transliterate(s, data.TitleDictionary(), tag); err != nil {
			return err
		}
		fmt.Fprintln(out(cmd), s)
		return nil
	},
}

var tagsCmd = &cobra.Command{
	Use:   "tags <key=value>...",
	Short: "Pack key/value pairs into a single text and unpack them",
	Long: `Packs key/value pairs into the attribute format of map objects and
lists the resulting attributes. An empty value removes a key.

Example:
  geotext tags name="Elm Street" highway=residential name="Oak Street"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := geotext.NewString()
		for _, arg := range args {
			kv := strings.SplitN(arg, "=", 2)
			if len(kv) != 2 {
				return fmt.Errorf("expected key=value, have %q", arg)
			}
			if err := attrib.SetAttribute(s, kv[0], kv[1]); err != nil {
				return err
			}
		}
		for _, tag := range attrib.Tags(s) {
			fmt.Fprintf(out(cmd), "%s=%s\n", tag.Key, tag.Value)
		}
		return nil
	},
}

var countryCmd = &cobra.Command{
	Use:   "country <name>",
	Short: "Convert between country names and ISO 3166 country codes",
	Long: `Converts the English name of a country to its two-letter code, or
with --code a two-letter code to the English name.

Examples:
  geotext country Germany
  geotext country --code DE`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		arg := strings.Join(args, " ")
		if fromCode {
			fmt.Fprintln(out(cmd), locale.CodeToCountry(arg))
			return nil
		}
		code := locale.CountryToCode(arg)
		if code == "" {
			return fmt.Errorf("unknown country %q", arg)
		}
		fmt.Fprintln(out(cmd), code)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(abbrevCmd)
	rootCmd.AddCommand(caseCmd)
	rootCmd.AddCommand(translitCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(countryCmd)

	abbrevCmd.Flags().BoolVar(&deleteWords, "delete", false, "delete words like 'the'")
	caseCmd.Flags().StringVar(&letterCase, "to", "title", "letter case (lower, upper, title, sentence)")
	countryCmd.Flags().BoolVar(&fromCode, "code", false, "convert a country code to a name")
}
