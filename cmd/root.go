package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"sweep/metrics"
	"sweep/output"
	"sweep/scan"
	"sweep/version"
)

var debug bool
var timeoutMS int = 3000
var maxProbes int
var portSelection string
var openOnly bool
var jsonOutput bool
var tableOutput bool
var sortResults bool
var metricsAddr string
var interval time.Duration
var versionRequested bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&openOnly, "open-only", "o", openOnly, "Omit output for ports which are not open")
	rootCmd.PersistentFlags().BoolVarP(&versionRequested, "version", "", versionRequested, "Output version information and exit")
	rootCmd.PersistentFlags().BoolVarP(&debug, "verbose", "v", debug, "Enable verbose logging")
	rootCmd.PersistentFlags().IntVarP(&timeoutMS, "timeout-ms", "t", timeoutMS, "Connect timeout per probe in MS")
	rootCmd.PersistentFlags().IntVarP(&maxProbes, "max-probes", "m", maxProbes, "Maximum concurrent probes, 0 for unlimited")
	rootCmd.PersistentFlags().StringVarP(&portSelection, "ports", "p", portSelection, "Ports to scan. Comma separated, can use hyphens e.g. 22,80,443,8080-8090")
	rootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "", jsonOutput, "Write the report as JSON")
	rootCmd.PersistentFlags().BoolVarP(&tableOutput, "table", "", tableOutput, "Write the report as a table")
	rootCmd.PersistentFlags().BoolVarP(&sortResults, "sort", "", sortResults, "Sort results by target and port instead of completion order")
	rootCmd.PersistentFlags().StringVarP(&metricsAddr, "metrics-addr", "", metricsAddr, "Expose Prometheus metrics on this address, e.g. :9090")
	rootCmd.PersistentFlags().DurationVarP(&interval, "interval", "i", interval, "Repeat the scan at this interval, 0 to scan once")
}

var rootCmd = &cobra.Command{
	Use:   "sweep [targets]",
	Short: "Sweep is a concurrent TCP connect port scanner",
	Long:  `A TCP connect scanner which probes every target/port combination concurrently and reports the aggregate result.`,
	Run: func(cmd *cobra.Command, args []string) {

		if versionRequested {
			v := version.Version
			if v == "" {
				v = "development version"
			}
			fmt.Printf("sweep %s\n", v)
			return
		}

		if debug {
			log.SetLevel(log.DebugLevel)
		}

		if len(args) == 0 {
			fmt.Println("Please specify at least one target")
			os.Exit(1)
		}

		targets, err := scan.ParseTargets(strings.Join(args, ","))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		ports, err := scan.ParsePorts(portSelection)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		scanner := scan.NewScanner(targets, ports, time.Millisecond*time.Duration(timeoutMS), maxProbes)
		scanner.SortResults = sortResults

		if metricsAddr != "" {
			recorder := metrics.NewRecorder()
			scanner.Register(recorder)
			go func() {
				if err := recorder.Serve(metricsAddr); err != nil {
					log.Errorf("Metrics server failed: %s", err)
				}
			}()
		}

		switch {
		case jsonOutput:
			scanner.Register(output.NewJSON(os.Stdout))
		case tableOutput:
			scanner.Register(output.NewTable(os.Stdout, openOnly))
		default:
			scanner.Register(output.NewScreen(os.Stdout, openOnly))
		}

		log.Debugf("Scanning %d ports on %d targets...", len(ports), len(targets))

		for {
			if err := scanner.Execute(context.Background()); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			if interval == 0 {
				break
			}
			time.Sleep(interval)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
