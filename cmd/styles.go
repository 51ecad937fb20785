package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/sodatea/berry/common"
	"github.com/sodatea/berry/pretty"
)

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List the registered progress bar styles.",
	Long:  "List the registered progress bar styles, including any loaded from the settings file.",
	Run: func(cmd *cobra.Command, args []string) {
		pretty.Header("Progress bar styles:")
		for _, name := range pretty.BarStyleNames() {
			style := pretty.LookupBarStyle(name)
			sample := strings.Repeat(style.Filled, 6) + strings.Repeat(style.Empty, 6)
			common.Stdout("  %-12s %s\n", name, sample)
		}
		common.Stdout("\n")
		pretty.Ok()
	},
}

func init() {
	rootCmd.AddCommand(stylesCmd)
}
