// Command fftbench benchmarks the kernel the dispatcher picks for a
// set of transform sizes, reporting nanoseconds per forward, inverse,
// or roundtrip call.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/briandowns/spinner"

	"github.com/cwbudde/algofft"
)

type cli struct {
	Sizes  string `help:"Comma-separated transform sizes" default:"1024,4096,16384,65536"`
	Iters  int    `help:"Benchmark iterations" default:"50"`
	Warmup int    `help:"Warmup iterations" default:"5"`
	Mode   string `help:"Benchmark mode: forward, inverse, roundtrip, all" default:"forward" enum:"forward,inverse,roundtrip,all"`
	Seed   int64  `help:"RNG seed" default:"1"`
	Quiet  bool   `help:"Disable the progress spinner"`
}

type benchResult struct {
	size    int
	mode    string
	kernel  string
	nsPerOp float64
}

func main() {
	var params cli
	kong.Parse(&params)

	sizes := parseSizes(params.Sizes)
	if len(sizes) == 0 {
		fmt.Fprintln(os.Stderr, "no sizes specified")
		os.Exit(1)
	}

	rnd := rand.New(rand.NewSource(params.Seed))
	modes := resolveModes(params.Mode)

	var sp *spinner.Spinner
	if !params.Quiet {
		sp = spinner.New(spinner.CharSets[11], 100*time.Millisecond)
		sp.Suffix = " benchmarking..."
		sp.Start()
		defer sp.Stop()
	}

	fmt.Printf("iters=%d warmup=%d\n", params.Iters, params.Warmup)
	fmt.Printf("%8s  %10s  %16s  %12s\n", "size", "mode", "kernel", "ns/op")

	for _, n := range sizes {
		for _, mode := range modes {
			if sp != nil {
				sp.Suffix = fmt.Sprintf(" size=%d mode=%s", n, mode)
			}
			res, err := benchmarkSize(rnd, n, params.Iters, params.Warmup, mode)
			if err != nil {
				fmt.Fprintf(os.Stderr, "size %d: %v\n", n, err)
				continue
			}
			fmt.Printf("%8d  %10s  %16s  %12.1f\n", n, mode, res.kernel, res.nsPerOp)
		}
	}
}

func benchmarkSize(rnd *rand.Rand, n, iters, warmup int, mode string) (benchResult, error) {
	fft, err := algofft.MakeFFT[complex128](n)
	if err != nil {
		return benchResult{}, err
	}

	src := make([]complex128, n)
	for i := range src {
		src[i] = complex(rnd.Float64(), rnd.Float64())
	}
	buf := make([]complex128, n)
	freq := make([]complex128, n)

	if mode == "inverse" {
		copy(freq, src)
		if err := fft.InPlaceForward(freq); err != nil {
			return benchResult{}, err
		}
	}

	run := func() error { return runMode(fft, buf, src, freq, mode) }

	for i := 0; i < warmup; i++ {
		if err := run(); err != nil {
			return benchResult{}, err
		}
	}

	runtime.GC()
	start := time.Now()
	for i := 0; i < iters; i++ {
		if err := run(); err != nil {
			return benchResult{}, err
		}
	}
	elapsed := time.Since(start)

	return benchResult{
		size:    n,
		mode:    mode,
		kernel:  fft.String(),
		nsPerOp: float64(elapsed.Nanoseconds()) / float64(iters),
	}, nil
}

func runMode(fft *algofft.FFT[complex128], buf, src, freq []complex128, mode string) error {
	switch mode {
	case "inverse":
		copy(buf, freq)
		return fft.InPlaceInverse(buf)
	case "roundtrip":
		copy(buf, src)
		if err := fft.InPlaceForward(buf); err != nil {
			return err
		}
		return fft.InPlaceInverse(buf)
	default:
		copy(buf, src)
		return fft.InPlaceForward(buf)
	}
}

func resolveModes(mode string) []string {
	if mode == "all" {
		return []string{"forward", "inverse", "roundtrip"}
	}
	return []string{mode}
}

func parseSizes(list string) []int {
	parts := strings.Split(list, ",")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n <= 0 {
			continue
		}
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}
