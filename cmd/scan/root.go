package scan

import (
	"fmt"

	"github.com/mlehner/strkit/cmd/util"
	"github.com/mlehner/strkit/lib/ospath"
	"github.com/mlehner/strkit/lib/rex"
	"github.com/mlehner/strkit/lib/sortedmap"
	"github.com/mlehner/strkit/lib/str"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// ScanCmd lists directories through the containers: entries are read
	// in directory order, optionally filtered by pattern, grouped by file
	// extension into a ListMap and per directory into a MapMap, then
	// printed in sorted key order.
	ScanCmd = &cobra.Command{
		Use:     "scan [dir]...",
		Short:   "List directory entries grouped with the sorted maps",
		Args:    cobra.MinimumNArgs(1),
		RunE:    runScan,
		PreRunE: processScanConfig,
	}

	scanPattern string
	scanFlags   string
	scanByExt   bool
)

func init() {
	key := "pattern"
	ScanCmd.Flags().String(key, "", util.WrapString("Only include entry names matching this regular expression"))
	key = "flags"
	ScanCmd.Flags().String(key, "", util.WrapString("Pattern flags: i (ignore case), m (multiline)"))
	key = "by-ext"
	ScanCmd.Flags().Bool(key, false, util.WrapString("Group entry names by file extension instead of listing them"))
}

func processScanConfig(cmd *cobra.Command, _ []string) error {
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}
	scanPattern = viper.GetString("pattern")
	scanFlags = viper.GetString("flags")
	scanByExt = viper.GetBool("by-ext")
	return nil
}

func runScan(_ *cobra.Command, args []string) error {
	byDir := sortedmap.NewMapMap()

	for _, dir := range args {
		path := str.Of(dir)
		if !ospath.IsDir(path) {
			return fmt.Errorf("not a directory: %s", dir)
		}
		byDir.PutOwned(path, scanDir(path))
	}

	byDir.Range(func(dir str.Str, groups *sortedmap.ListMap) bool {
		if len(args) > 1 {
			fmt.Printf("%s:\n", dir.String())
		}
		groups.Keys().Range(func(_ int, key str.Str) bool {
			values, _ := groups.Get(key)
			fmt.Printf("%s: %s\n", key.String(), values.Join(str.Of(" ")).String())
			return true
		})
		return true
	})
	return nil
}

// scanDir builds the group map for one directory. Without --by-ext all
// entries end up under a single "entries" key, preserving directory order
// through the ListMap merge policy.
func scanDir(path str.Str) *sortedmap.ListMap {
	groups := sortedmap.NewListMap()

	ospath.ListDir(path).Range(func(_ int, name str.Str) bool {
		if scanPattern != "" && !rex.Match(scanPattern, name.String(), scanFlags) {
			return true
		}
		groups.Append(groupKey(name), name)
		return true
	})
	return groups
}

func groupKey(name str.Str) str.Str {
	if !scanByExt {
		return str.Of("entries")
	}
	dot := name.Index(str.Of("."))
	if dot <= 0 {
		return str.Of("(none)")
	}
	// the extension after the last dot
	for {
		next := name.CutFrom(dot + 1).Index(str.Of("."))
		if next < 0 {
			break
		}
		dot += next + 1
	}
	return name.CutFrom(dot + 1)
}
