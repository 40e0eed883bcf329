// Package main appends synthetic station readings to a registro file, in the
// same line format and with the same trend labels as the station.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chrissnell/tempstats/internal/log"
	"github.com/chrissnell/tempstats/internal/parser"
	"github.com/chrissnell/tempstats/internal/trend"
	"github.com/chrissnell/tempstats/internal/types"
)

// Emulator generates a daily temperature cycle with some noise
type Emulator struct {
	base   float64
	rng    *rand.Rand
	window *trend.Window
}

// NewEmulator creates an emulator centred on base degrees
func NewEmulator(base float64, seed int64) *Emulator {
	return &Emulator{
		base:   base,
		rng:    rand.New(rand.NewSource(seed)),
		window: trend.NewWindow(trend.DefaultWindowSize),
	}
}

// Next returns the reading for time now, classified against the last few
// readings including itself
func (e *Emulator) Next(now time.Time) types.Reading {
	hour := float64(now.Hour()) + float64(now.Minute())/60
	daily := 6 * math.Sin(2*math.Pi*(hour-9)/24)
	temp := e.base + daily + (e.rng.Float64()-0.5)*2

	// Round to what the station logs so the file reads back unchanged
	temp = math.Round(temp*100) / 100

	label := e.window.Observe(temp, trend.DefaultPercent)

	return types.Reading{
		Date:        now.Format("02/01/2006"),
		Time:        now.Format("15:04:05"),
		Temperature: float32(temp),
		Trend:       label,
	}
}

func generate(ctx context.Context, w io.Writer, emu *Emulator, count int, interval time.Duration, clock func() time.Time) (int, error) {
	written := 0
	for count <= 0 || written < count {
		if _, err := fmt.Fprintln(w, parser.FormatLine(emu.Next(clock()))); err != nil {
			return written, err
		}
		written++

		if interval <= 0 || (count > 0 && written == count) {
			continue
		}
		select {
		case <-ctx.Done():
			return written, nil
		case <-time.After(interval):
		}
	}
	return written, nil
}

func main() {
	out := flag.String("out", "registro.txt", "File to append readings to")
	count := flag.Int("count", 100, "Number of readings to write; 0 runs until interrupted")
	interval := flag.Duration("interval", 0, "Delay between readings")
	base := flag.Float64("base", 20, "Mean temperature in °C")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	flag.Parse()

	if err := log.Init(*debug); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if *count <= 0 && *interval <= 0 {
		log.Errorf("-count 0 requires a positive -interval")
		os.Exit(1)
	}

	f, err := os.OpenFile(*out, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Errorf("error opening %s: %v", *out, err)
		os.Exit(1)
	}
	defer f.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	log.Infow("registro simulator starting", "out", *out, "count", *count, "interval", *interval, "base", *base)

	// Simulated readings advance one interval (or one minute) per line
	step := *interval
	if step <= 0 {
		step = time.Minute
	}
	start := time.Now().Add(-time.Duration(*count) * step)
	i := 0
	clock := func() time.Time {
		if *interval > 0 {
			return time.Now()
		}
		t := start.Add(time.Duration(i) * step)
		i++
		return t
	}

	n, err := generate(ctx, f, NewEmulator(*base, *seed), *count, *interval, clock)
	if err != nil {
		log.Errorf("error writing readings: %v", err)
		os.Exit(1)
	}
	log.Infow("registro simulator finished", "written", n)
}
