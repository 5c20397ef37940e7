package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/isabella232/dotnet-do/config"
	"github.com/isabella232/dotnet-do/logging"
	"github.com/isabella232/dotnet-do/metrics"
	"github.com/isabella232/dotnet-do/runner"
)

func newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the configured tasks in order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			cfg, err := config.LoadConfig(path)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			registry := prometheus.NewRegistry()
			recorder, err := metrics.NewRecorder(registry)
			if err != nil {
				return fmt.Errorf("initializing metrics: %w", err)
			}

			provider := logging.NewProvider(cfg.Logging.Filter(), logging.WithMetrics(recorder))
			defer provider.Close()

			tasks := make([]runner.Task, len(cfg.Tasks))
			for i, t := range cfg.Tasks {
				tasks[i] = runner.Task{
					Name:     t.Name,
					Category: t.Category,
					Command:  t.Command,
					Args:     t.Args,
					Dir:      t.Dir,
					Timeout:  t.Timeout,
				}
			}

			runErr := runner.New(provider).Run(cmd.Context(), tasks)
			logSummary(provider, registry)
			return runErr
		},
	}
}

// logSummary reports how many activities finished with each outcome, read
// back from the run's metric counters.
func logSummary(provider *logging.Provider, registry *prometheus.Registry) {
	families, err := registry.Gather()
	if err != nil {
		return
	}

	var succeeded, failed float64
	for _, fam := range families {
		if fam.GetName() != "do_activities_total" {
			continue
		}
		for _, m := range fam.GetMetric() {
			value := m.GetCounter().GetValue()
			for _, label := range m.GetLabel() {
				if label.GetName() != "outcome" {
					continue
				}
				switch label.GetValue() {
				case "success":
					succeeded += value
				case "failure":
					failed += value
				}
			}
		}
	}

	log := provider.Logger("DO")
	if failed > 0 {
		log.Errorf("%d task(s) succeeded, %d failed", int(succeeded), int(failed))
		return
	}
	log.Infof("%d task(s) succeeded", int(succeeded))
}
