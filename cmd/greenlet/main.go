// Command greenlet exercises the cooperative switch core: a ping-pong demo
// over the task layer and a raw switch-latency benchmark.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type config struct {
	Tasks   int
	Iters   int
	Verbose bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "greenlet:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "greenlet",
		Short:         "Cooperative task switching demos",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Int("tasks", 4, "number of tasks to spawn")
	root.PersistentFlags().Int("iters", 100000, "iterations per task")
	root.PersistentFlags().BoolP("verbose", "v", false, "print per-task detail")
	root.AddCommand(newPingpongCmd(), newBenchCmd())
	return root
}

// loadConfig resolves settings from GREENLET_* environment variables, then
// lets command-line flags override them.
func loadConfig(fs *pflag.FlagSet) (config, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider("GREENLET_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "GREENLET_"))
	}), nil); err != nil {
		return config{}, fmt.Errorf("load env: %w", err)
	}
	if err := k.Load(posflag.Provider(fs, ".", k), nil); err != nil {
		return config{}, fmt.Errorf("load flags: %w", err)
	}
	cfg := config{
		Tasks:   k.Int("tasks"),
		Iters:   k.Int("iters"),
		Verbose: k.Bool("verbose"),
	}
	if cfg.Tasks < 1 || cfg.Iters < 1 {
		return config{}, fmt.Errorf("tasks and iters must be positive (got %d, %d)", cfg.Tasks, cfg.Iters)
	}
	return cfg, nil
}
