package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ble-trails.klederson.com/internal/app"
	"ble-trails.klederson.com/internal/beacon"
	"ble-trails.klederson.com/internal/config"
	"ble-trails.klederson.com/internal/ingest"
	"ble-trails.klederson.com/internal/render"
	"ble-trails.klederson.com/internal/sink"
	"ble-trails.klederson.com/internal/strip"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	flagEnvFile  string
	flagSimulate bool
	flagDemo     bool
	flagSource   string
	flagBeacons  int
	flagDuration time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ble-trails",
		Short: "BLE Trails - beacon proximity animation for WLED LED strips",
		Long: `BLE Trails listens for beacon sightings (espresense over MQTT, or a
local Bluetooth adapter) and animates each beacon as a colored runner
with a fading trail on a WLED-controlled LED strip.

Beacon color encodes estimated distance (green = near, red = far), a
per-beacon hue shift keeps identities apart, and beacons fade out
gracefully when their signal is lost.

Use --simulate to render the strip in the terminal instead of driving
a WLED device, and --demo to synthesize beacons without a broker.`,
		RunE: run,
	}

	rootCmd.Flags().StringVar(&flagEnvFile, "env", ".env", "Path to .env configuration file")
	rootCmd.Flags().BoolVar(&flagSimulate, "simulate", false, "Render the strip in the terminal instead of sending to WLED")
	rootCmd.Flags().BoolVar(&flagDemo, "demo", false, "Use synthetic beacons (no broker or Bluetooth required)")
	rootCmd.Flags().StringVar(&flagSource, "source", "mqtt", "Beacon source: mqtt or ble")
	rootCmd.Flags().IntVar(&flagBeacons, "beacons", 3, "Number of synthetic beacons in demo mode")
	rootCmd.Flags().DurationVar(&flagDuration, "duration", 0, "Stop after this long (0 = run until interrupted)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagEnvFile)
	if err != nil {
		return err
	}
	if flagSimulate {
		err = cfg.ValidateSimulator()
	} else {
		err = cfg.Validate()
	}
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if flagSource != "mqtt" && flagSource != "ble" {
		return fmt.Errorf("--source must be mqtt or ble, got %q", flagSource)
	}

	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if flagDuration > 0 {
		ctx, cancel = context.WithTimeout(ctx, flagDuration)
		defer cancel()
	}

	registry := beacon.NewRegistry(cfg.BeaconTimeout, cfg.BeaconFadeOut)

	if flagSimulate {
		return runSimulator(ctx, cancel, cfg, registry)
	}
	return runBridge(ctx, cfg, registry)
}

// runBridge drives a real WLED controller.
func runBridge(ctx context.Context, cfg *config.Config, registry *beacon.Registry) error {
	out, closeSink, err := newSink(cfg)
	if err != nil {
		return err
	}
	defer closeSink()

	stopSource, sourceName, err := startSource(registry, cfg)
	if err != nil {
		return err
	}
	defer stopSource()

	loop, err := render.New(registry, out, cfg.LEDCount, cfg.UpdateInterval, cfg.TrailLength, cfg.FadeFactor)
	if err != nil {
		return err
	}

	log.Info().
		Str("source", sourceName).
		Str("output", cfg.OutputMode).
		Str("host", cfg.WLEDHost).
		Int("leds", cfg.LEDCount).
		Dur("interval", cfg.UpdateInterval).
		Msg("starting beacon animation")

	err = loop.Run(ctx)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		log.Info().Msg("animation stopped")
		return nil
	}
	return err
}

// runSimulator renders the strip in the terminal.
func runSimulator(ctx context.Context, cancel context.CancelFunc, cfg *config.Config, registry *beacon.Registry) error {
	// A live logger would fight the TUI for the terminal.
	log.Logger = zerolog.New(io.Discard)

	stats := app.NewStats(registry, 30, time.Second)

	stopSource, sourceName, err := startSource(stats, cfg)
	if err != nil {
		return err
	}

	programSink := &app.ProgramSink{}
	loop, err := render.New(registry, programSink, cfg.LEDCount, cfg.UpdateInterval, cfg.TrailLength, cfg.FadeFactor)
	if err != nil {
		stopSource()
		return err
	}

	stop := func() {
		cancel()
		stopSource()
	}

	model := app.New(registry, stats, sourceName, cfg.SimRows, cfg.SimCols, stop)
	p := tea.NewProgram(model, tea.WithAltScreen())
	programSink.Attach(p)

	go func() {
		_ = loop.Run(ctx)
	}()
	go func() {
		// Quit the TUI when the duration limit or a signal fires.
		<-ctx.Done()
		p.Send(tea.Quit())
	}()

	_, err = p.Run()
	stop()
	return err
}

// newSink builds the configured WLED transport.
func newSink(cfg *config.Config) (strip.Sink, func(), error) {
	if cfg.OutputMode == "udp" {
		udp, err := sink.NewUDP(cfg.WLEDHost, cfg.UDPPort)
		if err != nil {
			return nil, nil, err
		}
		return udp, func() { _ = udp.Close() }, nil
	}
	return sink.NewHTTP(cfg.WLEDHost, cfg.HTTPTimeout, cfg.HTTPMaxRetries), func() {}, nil
}

// startSource starts the configured beacon feed, returning its stop
// function and display name.
func startSource(updater ingest.Updater, cfg *config.Config) (func(), string, error) {
	if flagDemo {
		gen := ingest.NewMockGenerator(updater, flagBeacons)
		gen.Start()
		return gen.Stop, "demo", nil
	}

	if flagSource == "ble" {
		scanner := ingest.NewBLEScanner(updater)
		if err := scanner.Start(); err != nil {
			return nil, "", err
		}
		return scanner.Stop, "ble", nil
	}

	listener := ingest.NewListener(updater, ingest.ListenerConfig{
		Broker:   cfg.MQTTBroker,
		Port:     cfg.MQTTPort,
		Location: cfg.MQTTLocation,
		Username: cfg.MQTTUsername,
		Password: cfg.MQTTPassword,
	})
	if err := listener.Start(); err != nil {
		return nil, "", err
	}
	return listener.Stop, "mqtt", nil
}
