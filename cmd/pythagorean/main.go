package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/RMahshie/pythagorean/internal/config"
	"github.com/RMahshie/pythagorean/internal/display"
	"github.com/RMahshie/pythagorean/internal/playback"
	"github.com/RMahshie/pythagorean/internal/tuning"
)

var (
	cfg *config.Config

	root         float64
	numOctaves   int
	noteDuration float64
	play         bool
	backend      string
)

var rootCmd = &cobra.Command{
	Use:   "pythagorean",
	Short: "Generate a Pythagorean scale demonstrating the Pythagorean comma",
	Long: `pythagorean stacks perfect fifths (3/2) into twelve-note octaves and chains
each octave from the comma note of the one before it.

The Pythagorean comma is the ~23.46 cent drift that occurs because
(3/2)^12 != 2^7. Chaining octaves makes the drift visible and audible.`,
	Example: `  pythagorean                     # Default: A440, 3 octaves
  pythagorean -r 261.63 -o 5      # C4 root, 5 octaves
  pythagorean -o 7 -d 1.0         # 7 octaves to hear comma accumulation
  pythagorean -p                  # Play the generated scale`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runScale,
}

func init() {
	// Assigned here rather than in the literal to avoid an initialization
	// cycle (applyConfig refers to rootCmd)
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
		applyConfig(cfg)
		return setupLogging(cfg.LogLevel)
	}

	flags := rootCmd.Flags()
	flags.Float64VarP(&root, "root", "r", config.DefaultRoot, "Root note frequency in Hz")
	flags.IntVarP(&numOctaves, "num-octaves", "o", config.DefaultNumOctaves, "Number of octaves to generate")
	flags.Float64VarP(&noteDuration, "duration", "d", config.DefaultNoteDuration, "Duration of each note in seconds")
	flags.BoolVarP(&play, "play", "p", false, "Play the generated scale")
	flags.StringVar(&backend, "backend", config.DefaultBackend, "Audio output: speaker or sox")

	rootCmd.AddCommand(serveCmd)
}

// applyConfig fills every flag the user did not set from the loaded config
func applyConfig(c *config.Config) {
	flags := rootCmd.Flags()
	if !flags.Changed("root") {
		root = c.Scale.Root
	}
	if !flags.Changed("num-octaves") {
		numOctaves = c.Scale.NumOctaves
	}
	if !flags.Changed("duration") {
		noteDuration = c.Playback.NoteDuration
	}
	if !flags.Changed("backend") {
		backend = c.Playback.Backend
	}
	if !serveCmd.Flags().Changed("port") {
		port = c.Server.Port
	}
}

// setupLogging configures zerolog for console output on stderr
func setupLogging(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	return nil
}

func runScale(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// A missing audio backend must not stop the scale from being shown
	var player playback.Player
	var playerErr error
	if play {
		player, playerErr = playback.NewPlayer(backend, cfg.Playback.SoxCommand)
	}

	svc := tuning.NewScaleService(player)
	result, err := svc.Generate(ctx, root, numOctaves)
	if err != nil {
		return fmt.Errorf("failed to generate scale: %w", err)
	}

	printer := display.NewPrinter(cmd.OutOrStdout())
	if err := printer.Scale(result); err != nil {
		return err
	}

	if !play {
		return nil
	}
	if playerErr != nil {
		return fmt.Errorf("failed to play scale: %w", playerErr)
	}
	if err := svc.Play(ctx, result, noteDuration, printer); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info().Msg("Playback interrupted")
			return nil
		}
		return fmt.Errorf("failed to play scale: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
