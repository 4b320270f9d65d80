package match

import (
	"fmt"

	"github.com/mlehner/strkit/cmd/util"
	"github.com/mlehner/strkit/lib/rex"
	"github.com/mlehner/strkit/lib/str"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// MatchCmd runs the pattern matcher against a text and prints the
	// match with its capture groups and byte offsets.
	MatchCmd = &cobra.Command{
		Use:     "match [pattern] [text]",
		Short:   "Match a pattern against a text and print the captures",
		Args:    cobra.ExactArgs(2),
		RunE:    runMatch,
		PreRunE: processMatchConfig,
	}

	matchFlags string
)

func init() {
	key := "flags"
	MatchCmd.Flags().String(key, "", util.WrapString("Pattern flags: i (ignore case), m (multiline)"))
}

func processMatchConfig(cmd *cobra.Command, _ []string) error {
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}
	matchFlags = viper.GetString("flags")
	return nil
}

func runMatch(_ *cobra.Command, args []string) error {
	pattern, text := args[0], args[1]

	groups, ok := rex.Groups(pattern, text, matchFlags)
	if !ok {
		fmt.Println("no match")
		return nil
	}

	idx := rex.SubmatchIndex(pattern, text, matchFlags)
	groups.Range(func(i int, g str.Str) bool {
		if raw, present := g.Value(); present {
			fmt.Printf("[%d] %q at %d:%d\n", i, raw, idx[2*i], idx[2*i+1])
		} else {
			fmt.Printf("[%d] (unmatched)\n", i)
		}
		return true
	})
	return nil
}
