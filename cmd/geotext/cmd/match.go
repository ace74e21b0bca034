package cmd

import (
	"fmt"

	"github.com/npillmayer/geotext"
	"github.com/npillmayer/geotext/match"
	"github.com/npillmayer/geotext/ucp"
	"github.com/spf13/cobra"
)

var (
	compareFlags methodFlags
	findFlags    methodFlags
	fuzzyMax     int
)

var compareCmd = &cobra.Command{
	Use:   "compare <a> <b>",
	Short: "Compare two texts",
	Long: `Compares two texts with a match method. The result is one of
LessNotPrefix, IsPrefix, Equal, HasPrefix, GreaterNotPrefix.

Examples:
  geotext compare Main "Main Street"
  geotext compare --method fold Straße strasse
  geotext compare --method fuzzy Picadilly Piccadilly`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := compareFlags.method()
		if err != nil {
			return err
		}
		o := match.Compare(geotext.FromUTF8(args[0]), geotext.FromUTF8(args[1]), m)
		fmt.Fprintf(out(cmd), "%s (%d)\n", o, o)
		return nil
	},
}

var findCmd = &cobra.Command{
	Use:   "find <text> <search term>",
	Short: "Search a text for a term",
	Long: `Finds the first occurrence of a search term in a text, using a match
method, and prints its position in UTF-16 units.

Example:
  geotext find --prefix --ignore-whitespace "new york city" york`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := findFlags.method()
		if err != nil {
			return err
		}
		haystack := geotext.FromUTF8(args[0])
		start, end, ok := match.Find(haystack, geotext.FromUTF8(args[1]), m)
		if !ok {
			fmt.Fprintln(out(cmd), "not found")
			return nil
		}
		fmt.Fprintf(out(cmd), "%d…%d %q\n", start, end, geotext.Substring(haystack, start, end-start))
		return nil
	},
}

var fuzzyCmd = &cobra.Command{
	Use:   "fuzzy <a> <b>",
	Short: "Compute the edit distance of two texts",
	Long: `Computes the edit distance of two texts, up to a maximum of 4.

Example:
  geotext fuzzy --max 1 Picadilly Piccadilly`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, ok := match.FuzzyDistance(
			ucp.NewUTF8Iter([]byte(args[0])),
			ucp.NewUTF8Iter([]byte(args[1])),
			fuzzyMax)
		if !ok {
			fmt.Fprintf(out(cmd), "distance > %d\n", fuzzyMax)
			return nil
		}
		fmt.Fprintf(out(cmd), "distance %d\n", d)
		return nil
	},
}

var wildCmd = &cobra.Command{
	Use:   "wild <text> <pattern>",
	Short: "Match a text against a wildcard pattern",
	Long: `Matches a text against a pattern with wildcards '*' and '?'. Patterns
may list alternatives, separated by commas.

Examples:
  geotext wild "Main North Street" "Main*Street"
  geotext wild road/major "path, road/*"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(out(cmd), match.LayerMatchString(geotext.FromUTF8(args[0]), args[1]))
		return nil
	},
}

var typeCmd = &cobra.Command{
	Use:   "type <text> <search term>",
	Short: "Classify how well a search term matches a text",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(out(cmd), match.Type(geotext.FromUTF8(args[0]), geotext.FromUTF8(args[1])))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(fuzzyCmd)
	rootCmd.AddCommand(wildCmd)
	rootCmd.AddCommand(typeCmd)

	compareFlags.register(compareCmd)
	findFlags.register(findCmd)
	fuzzyCmd.Flags().IntVar(&fuzzyMax, "max", match.KMaxFuzzyDistance, "maximum edit distance")
}
