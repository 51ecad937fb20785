package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sodatea/berry/common"
	"github.com/sodatea/berry/pretty"
	"github.com/sodatea/berry/settings"
	"github.com/sodatea/berry/xviper"
)

var (
	debugFlag    bool
	traceFlag    bool
	silentFlag   bool
	jsonFlag     bool
	noBarsFlag   bool
	noFooterFlag bool
	styleFlag    string
	settingsFile string
)

var rootCmd = &cobra.Command{
	Use:   "berry",
	Short: "Streaming diagnostics and progress reporting for package installs.",
	Long:  "Streaming diagnostics and progress reporting for package installs.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		common.DefineVerbosity(silentFlag, debugFlag, traceFlag)
		pretty.Setup()
		if loaded, err := settings.LoadFile(settingsFile); err == nil {
			if selected := loaded.Apply(); selected != "" && styleFlag == "" {
				styleFlag = selected
			}
		} else {
			pretty.WarnMessage(fmt.Sprintf("Could not load settings %q, reason: %v", settingsFile, err))
		}
		if jsonFlag {
			xviper.Set(xviper.JsonOutputKey, true)
		}
		if noBarsFlag {
			xviper.Set(xviper.EnableProgressBarsKey, false)
		}
		if styleFlag != "" {
			xviper.Set(xviper.ProgressBarStyleKey, styleFlag)
		}
	},
}

func Execute() {
	defer common.WaitLogs()
	if err := rootCmd.Execute(); err != nil {
		common.Fatal("root", err)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Show debug messages during execution.")
	rootCmd.PersistentFlags().BoolVar(&traceFlag, "trace", false, "Show trace messages during execution.")
	rootCmd.PersistentFlags().BoolVar(&silentFlag, "silent", false, "Reduce output to the minimum.")
	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "Emit one JSON record per event instead of human output.")
	rootCmd.PersistentFlags().BoolVar(&noBarsFlag, "no-progress", false, "Disable live progress rows.")
	rootCmd.PersistentFlags().BoolVar(&noFooterFlag, "no-footer", false, "Skip the summary footer.")
	rootCmd.PersistentFlags().StringVar(&styleFlag, "style", "", "Progress bar style name.")
	rootCmd.PersistentFlags().StringVar(&settingsFile, "settings", "berry_settings.yaml", "Optional styling settings file.")
	rootCmd.PersistentFlags().BoolVar(&common.LogLinenumbers, "numbers", false, "Include line numbers in logged messages.")
	rootCmd.PersistentFlags().StringArrayVar(&common.LogHides, "loghide", []string{}, "Hide logged messages containing the given fragment.")
}
