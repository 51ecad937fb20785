package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sodatea/berry/common"
	"github.com/sodatea/berry/message"
	"github.com/sodatea/berry/report"
)

var (
	demoPackages int
	demoFailures bool
)

type demoPackage struct {
	name   string
	size   uint64
	cached bool
	steps  int
	pace   time.Duration
}

// demoCatalog draws every random value up front; fetches later run in
// parallel and the seeded source is not safe for concurrent use.
func demoCatalog(count int) []demoPackage {
	generator := rand.New(rand.NewSource(common.When))
	catalog := make([]demoPackage, 0, count)
	for i := 0; i < count; i++ {
		catalog = append(catalog, demoPackage{
			name:   fmt.Sprintf("pkg-%02d", i),
			size:   uint64(256<<10 + generator.Intn(8<<20)),
			cached: i%3 != 0,
			steps:  20 + generator.Intn(30),
			pace:   time.Duration(10+generator.Intn(40)) * time.Millisecond,
		})
	}
	return catalog
}

// fetchPackage simulates one download, feeding a progress source.
func fetchPackage(reporter report.Reporter, pkg demoPackage) error {
	if pkg.cached {
		reporter.ReportCacheHit(pkg.name)
		reporter.ReportInfo(message.UnusedCacheEntry, "%s found in cache", pkg.name)
		return nil
	}
	reporter.ReportCacheMiss(pkg.name)
	reporter.ReportInfo(message.FetchNotCached, "%s can't be found in the cache and will be fetched (%s)",
		pkg.name, humanize.Bytes(pkg.size))

	source := make(chan report.Progress)
	handle := reporter.StartProgress(source)
	defer handle.Stop()

	for step := 0; step <= pkg.steps; step++ {
		source <- report.Progress{
			Fraction: float64(step) / float64(pkg.steps),
			Title:    pkg.name,
		}
		time.Sleep(pkg.pace)
	}
	close(source)
	<-handle.Done()
	return nil
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a simulated installation to exercise the reporter.",
	Long:  "Run a simulated installation to exercise the reporter.",
	Run: func(cmd *cobra.Command, args []string) {
		watch := common.Stopwatch("Simulated install lasted")
		opts := report.DefaultOptions()
		opts.IncludeFooter = !noFooterFlag
		reporter := report.New(opts)

		catalog := demoCatalog(demoPackages)

		_ = reporter.Section(message.ResolutionStep, "Resolution step", func() error {
			for _, pkg := range catalog {
				reporter.ReportInfo(message.Unnamed, "%s resolved", pkg.name)
			}
			if demoFailures {
				reporter.ReportWarning(message.DeprecatedPackage, "%s is deprecated", catalog[0].name)
			}
			return nil
		})

		_ = reporter.Section(message.FetchStep, "Fetch step", func() error {
			group := errgroup.Group{}
			group.SetLimit(4)
			for _, pkg := range catalog {
				pkg := pkg
				group.Go(func() error {
					return fetchPackage(reporter, pkg)
				})
			}
			return group.Wait()
		})

		_ = reporter.Section(message.LinkStep, "Link step", func() error {
			if demoFailures {
				return fmt.Errorf("%s could not be linked", catalog[len(catalog)-1].name)
			}
			return nil
		})

		reporter.Finalize()
		watch.Debug()
		common.WaitLogs()
		os.Exit(reporter.ExitCode())
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().IntVarP(&demoPackages, "packages", "p", 12, "How many packages the simulated install handles.")
	demoCmd.Flags().BoolVarP(&demoFailures, "failures", "f", false, "Inject a warning and an error into the run.")
}
