package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"greenlet/arch"
	"greenlet/task"
)

// Demo task bodies run on task stacks, so they follow the package task
// discipline: nosplit, leaf, state in package globals.

var (
	demoProc   *task.Processor
	demoIters  int
	demoCounts []int
)

//go:nosplit
func demoBody() {
	id := demoProc.Current().ID()
	for i := 0; i < demoIters; i++ {
		demoCounts[id]++
		demoProc.Yield()
	}
}

func newPingpongCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pingpong",
		Short: "Spawn tasks that count and yield until done",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			if cfg.Tasks > task.MaxTasks {
				return fmt.Errorf("at most %d tasks (got %d)", task.MaxTasks, cfg.Tasks)
			}

			demoProc = task.New()
			demoIters = cfg.Iters
			demoCounts = make([]int, cfg.Tasks)
			tasks := make([]*task.Task, cfg.Tasks)
			for i := range tasks {
				tk, err := demoProc.Spawn(fmt.Sprintf("ping-%d", i), demoBody)
				if err != nil {
					return fmt.Errorf("spawn: %w", err)
				}
				tasks[i] = tk
			}

			start := time.Now()
			demoProc.Run()
			elapsed := time.Since(start)

			if cfg.Verbose {
				for i, tk := range tasks {
					fmt.Printf("%s  counted %d  state %s\n", tk.Name(), demoCounts[i], tk.State())
				}
			}
			total := 0
			for _, n := range demoCounts {
				total += n
			}
			fmt.Printf("%d tasks x %d yields in %s (%d switches)\n",
				cfg.Tasks, cfg.Iters, elapsed, total*2)
			return nil
		},
	}
}

var (
	benchMain arch.Context
	benchTask arch.Context
)

//go:nosplit
func benchBody() {
	for {
		arch.Swtch(&benchTask, &benchMain)
	}
}

func newBenchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Time raw context-switch round trips",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}

			stack, top := task.NewStack()
			benchTask.Init(task.EntryPC(benchBody), top)

			start := time.Now()
			for i := 0; i < cfg.Iters; i++ {
				arch.Swtch(&benchMain, &benchTask)
			}
			elapsed := time.Since(start)
			runtime.KeepAlive(stack)

			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"round trips", "total", "ns/switch"})
			tw.AppendRow(table.Row{
				cfg.Iters,
				elapsed.Round(time.Microsecond),
				fmt.Sprintf("%.1f", float64(elapsed.Nanoseconds())/float64(2*cfg.Iters)),
			})
			tw.Render()
			return nil
		},
	}
}
