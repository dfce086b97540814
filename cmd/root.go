package cmd

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/olivierh59500/aichair/internal/config"
	"github.com/olivierh59500/aichair/internal/landing"
)

var (
	settingsPath string
	width        int
	height       int
	tps          int
	seed         int64
)

var rootCmd = &cobra.Command{
	Use:   "aichair",
	Short: "AI Chair landing page",
	Long: `Opens the AI Chair landing page in a window: an interactive dot field
behind the hero, the header navigation and the product showcase.

Esc or Q quits.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runPage,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "settings file (default ~/.config/aichair/settings.json)")
	rootCmd.Flags().IntVar(&width, "width", 0, "window width, overrides the settings file")
	rootCmd.Flags().IntVar(&height, "height", 0, "window height, overrides the settings file")
	rootCmd.Flags().IntVar(&tps, "tps", 0, "ticks per second, overrides the settings file")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "random seed for the dot field (default: current time)")
}

// Execute runs the command line.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	path := settingsPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("locate settings: %w", err)
		}
		path = p
	}
	s, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		s.WindowWidth = width
	}
	if flags.Changed("height") {
		s.WindowHeight = height
	}
	if flags.Changed("tps") {
		s.TPS = tps
	}
	s.Normalize()
	return s, nil
}

func runPage(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	if !cmd.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
	}
	page := landing.New(s, rand.New(rand.NewSource(seed)))
	defer page.Close()

	ebiten.SetWindowSize(s.WindowWidth, s.WindowHeight)
	ebiten.SetWindowTitle("AI Chair - Intelligent chairs for the modern home")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(s.TPS)

	log.Printf("Starting at %dx%d, %d tps", s.WindowWidth, s.WindowHeight, s.TPS)
	if err := ebiten.RunGame(page); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run page: %w", err)
	}
	return nil
}
