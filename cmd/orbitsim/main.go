// Command orbitsim replays recorded input traces headlessly, one camera per trace,
// and reports where each camera ended up and when it came to rest.
//
// Usage:
//
//	orbitsim [-config camera.yaml] [-workers N] trace.yaml [trace.yaml ...]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/trace"
	"github.com/go-gl/mathgl/mgl32"
)

// result is the outcome of replaying one trace file.
type result struct {
	Path    string
	Summary trace.Summary
	Err     error
}

func main() {
	configPath := flag.String("config", "", "camera config YAML applied to every replay")
	workers := flag.Int("workers", runtime.NumCPU(), "number of concurrent replays")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: orbitsim [-config camera.yaml] [-workers N] trace.yaml ...")
		os.Exit(2)
	}

	cfg := camera.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = camera.LoadConfig(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	results := replayAll(flag.Args(), cfg, *workers)
	if failed := report(os.Stdout, results); failed > 0 {
		os.Exit(1)
	}
}

// newPool builds the replay pool; tests swap it to observe the pool's lifecycle.
var newPool = func(workers int) worker.DynamicWorkerPool {
	return worker.NewDynamicWorkerPool(max(workers, 1), 256, time.Second)
}

// replayAll loads and replays every trace on a worker pool. Results keep the order of paths.
// The pool is stopped before returning.
func replayAll(paths []string, cfg camera.Config, workers int) []result {
	results := make([]result, len(paths))
	pool := newPool(workers)
	defer pool.Stop()

	// A WaitGroup is the barrier; the pool's own Wait blocks until workers idle out.
	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		id, p := i, path
		pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				results[id] = replayFile(p, cfg)
				return nil, results[id].Err
			},
		})
	}
	wg.Wait()
	return results
}

func replayFile(path string, cfg camera.Config) result {
	t, err := trace.Load(path)
	if err != nil {
		return result{Path: path, Err: err}
	}
	return result{Path: path, Summary: trace.Replay(camera.NewCameraFromConfig(cfg), t, nil)}
}

// report prints one row per result and returns the number of failures.
func report(w io.Writer, results []result) int {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TRACE\tFRAMES\tSETTLED\tTHETA\tPHI\tDISTANCE\tEYE")
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(tw, "%s\terror: %v\n", r.Path, r.Err)
			continue
		}
		s := r.Summary
		settled := "moving"
		if s.Settled() {
			settled = fmt.Sprintf("frame %d", s.SettledAt)
		}
		eye := s.Final.Eye
		fmt.Fprintf(tw, "%s\t%d\t%s\t%.2f\t%.2f\t%.3f\t(%.2f, %.2f, %.2f)\n",
			r.Path, s.Frames, settled,
			mgl32.RadToDeg(s.Final.Theta), mgl32.RadToDeg(s.Final.Phi), s.Final.Distance,
			eye[0], eye[1], eye[2])
	}
	tw.Flush()
	return failed
}
