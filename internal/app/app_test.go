package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/chrissnell/tempstats/internal/parser"
	"github.com/chrissnell/tempstats/internal/stats"
	"github.com/chrissnell/tempstats/pkg/config"
	"go.uber.org/zap"
)

func TestOptionsFromConfig(t *testing.T) {
	opts, err := OptionsFromConfig(config.InputData{Strict: true}, config.StatsData{Mode: "legacy"})
	if err != nil {
		t.Fatalf("OptionsFromConfig() error: %v", err)
	}
	if opts.Policy != parser.PolicyStrict || opts.ModeStrategy != stats.ModeLegacy {
		t.Errorf("OptionsFromConfig() = %+v", opts)
	}

	opts, err = OptionsFromConfig(config.InputData{}, config.StatsData{})
	if err != nil {
		t.Fatalf("OptionsFromConfig() error: %v", err)
	}
	if opts.Policy != parser.PolicySkip || opts.ModeStrategy != stats.ModePerLevel {
		t.Errorf("OptionsFromConfig() defaults = %+v", opts)
	}

	if _, err := OptionsFromConfig(config.InputData{}, config.StatsData{Mode: "median"}); err == nil {
		t.Errorf("OptionsFromConfig() accepted an unknown mode strategy")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	provider := config.NewStaticProvider(config.ConfigData{
		Input: config.InputData{Path: "registro.txt"},
		REST:  config.RESTServerData{ListenAddr: "127.0.0.1", Port: 0},
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() {
		done <- New(provider, zap.NewNop().Sugar()).Run(ctx)
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error: %v", err)
		}
	case <-time.After(15 * time.Second):
		t.Fatal("Run() did not return after cancellation")
	}
}

// recordingProvider wraps a static configuration and records which sections
// were read and whether it was closed.
type recordingProvider struct {
	*config.StaticProvider
	statsErr error
	read     []string
	closed   bool
}

func (p *recordingProvider) GetInputConfig() (*config.InputData, error) {
	p.read = append(p.read, "input")
	return p.StaticProvider.GetInputConfig()
}

func (p *recordingProvider) GetStatsConfig() (*config.StatsData, error) {
	p.read = append(p.read, "stats")
	if p.statsErr != nil {
		return nil, p.statsErr
	}
	return p.StaticProvider.GetStatsConfig()
}

func (p *recordingProvider) GetRESTServerConfig() (*config.RESTServerData, error) {
	p.read = append(p.read, "rest")
	return p.StaticProvider.GetRESTServerConfig()
}

func (p *recordingProvider) Close() error {
	p.closed = true
	return nil
}

func TestRunReadsConfigSections(t *testing.T) {
	errStats := errors.New("stats section unavailable")
	p := &recordingProvider{
		StaticProvider: config.NewStaticProvider(config.ConfigData{Input: config.InputData{Path: "registro.txt"}}),
		statsErr:       errStats,
	}

	err := New(p, zap.NewNop().Sugar()).Run(context.Background())
	if !errors.Is(err, errStats) {
		t.Fatalf("Run() error = %v, expected %v", err, errStats)
	}
	if len(p.read) != 2 || p.read[0] != "input" || p.read[1] != "stats" {
		t.Errorf("sections read = %v, expected [input stats]", p.read)
	}
	if !p.closed {
		t.Errorf("provider was not closed")
	}
}

func TestRunRejectsUnknownModeStrategy(t *testing.T) {
	p := config.NewStaticProvider(config.ConfigData{Stats: config.StatsData{Mode: "median"}})
	if err := New(p, zap.NewNop().Sugar()).Run(context.Background()); err == nil {
		t.Errorf("Run() accepted an unknown mode strategy")
	}
}
