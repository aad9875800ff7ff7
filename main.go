package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/sheikhrachel/life-editor/gui"
	"github.com/sheikhrachel/life-editor/model"
	"github.com/sheikhrachel/life-editor/tui"
	"github.com/sheikhrachel/life-editor/utils"
)

// cliFlags holds raw flag values. They override the loaded config only when
// the user actually set them.
type cliFlags struct {
	configFile string
	logFile    string

	width, height int
	cellSize      int
	interval      float64
	paused        bool
	fps           int
	density       float64
	seed          int64
	patterns      bool

	generations int
	runs        int
	printGrid   bool
	keepGoing   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		flags    cliFlags
		config   utils.Config
		defaults = utils.DefaultConfig()
	)

	rootCmd := &cobra.Command{
		Use:          "life",
		Short:        "interactive Game of Life editor",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			config, err = loadConfig(cmd, flags)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(config, flags.logFile)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configFile, "config", "", "config file path (json or yaml)")
	pf.StringVar(&flags.logFile, "log-file", "", "write diagnostics to this file")
	pf.IntVar(&flags.width, "width", defaults.Width, "board width in cells")
	pf.IntVar(&flags.height, "height", defaults.Height, "board height in cells")
	pf.IntVar(&flags.cellSize, "cell-size", defaults.CellSize, "cell size in pixels (window)")
	pf.Float64Var(&flags.interval, "interval", defaults.TickInterval, "seconds between generations")
	pf.BoolVar(&flags.paused, "paused", defaults.StartPaused, "start paused")
	pf.IntVar(&flags.fps, "fps", defaults.FrameRate, "frames per second of the UI loop")
	pf.Float64Var(&flags.density, "density", defaults.RandomDensity, "initial random density in [0,1]")
	pf.Int64Var(&flags.seed, "seed", defaults.Seed, "random seed")
	pf.BoolVar(&flags.patterns, "patterns", defaults.Patterns, "start with gliders and blinkers")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "edit and run the board in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(config, flags.logFile)
		},
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "edit and run the board in a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			closeLog, err := setupLog(flags.logFile)
			if err != nil {
				return err
			}
			defer closeLog()

			engine, err := newSeededEngine(config, config.Seed)
			if err != nil {
				return err
			}
			return gui.Run(engine, config)
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run boards headless and report how they evolved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			closeLog, err := setupLog(flags.logFile)
			if err != nil {
				return err
			}
			defer closeLog()
			return runHeadless(cmd, config, flags)
		},
	}
	runCmd.Flags().IntVarP(&flags.generations, "generations", "g", defaults.MaxGenerations, "stop after this many generations (0 = no limit)")
	runCmd.Flags().IntVar(&flags.runs, "runs", 1, "number of independent boards to run concurrently")
	runCmd.Flags().BoolVar(&flags.printGrid, "print", false, "print each final board")
	runCmd.Flags().BoolVar(&flags.keepGoing, "keep-going", false, "do not stop when the board stagnates")

	rootCmd.AddCommand(tuiCmd, guiCmd, runCmd)
	return rootCmd
}

// loadConfig reads the config file, if any, and applies the flags the user set.
func loadConfig(cmd *cobra.Command, flags cliFlags) (utils.Config, error) {
	config := utils.DefaultConfig()
	if flags.configFile != "" {
		var err error
		if config, err = utils.LoadConfig(flags.configFile); err != nil {
			return config, err
		}
	}

	set := cmd.Flags().Changed
	if set("width") {
		config.Width = flags.width
	}
	if set("height") {
		config.Height = flags.height
	}
	if set("cell-size") {
		config.CellSize = flags.cellSize
	}
	if set("interval") {
		config.TickInterval = flags.interval
	}
	if set("paused") {
		config.StartPaused = flags.paused
	}
	if set("fps") {
		config.FrameRate = flags.fps
	}
	if set("density") {
		config.RandomDensity = flags.density
	}
	if set("seed") {
		config.Seed = flags.seed
	}
	if set("patterns") {
		config.Patterns = flags.patterns
	}
	if set("generations") {
		config.MaxGenerations = flags.generations
	}
	if set("keep-going") {
		config.StopOnStagnation = !flags.keepGoing
	}

	return config, config.Validate()
}

// setupLog points the log package at path and returns a func closing it.
func setupLog(path string) (func(), error) {
	if path == "" {
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}, nil
}

func runTUI(config utils.Config, logFile string) error {
	engine, err := newSeededEngine(config, config.Seed)
	if err != nil {
		return err
	}
	return tui.Run(engine, config, logFile)
}

// newSeededEngine builds an engine from config and seeds its board with rng
// state derived from seed.
func newSeededEngine(config utils.Config, seed int64) (*model.Engine, error) {
	engine, err := model.NewEngine(config)
	if err != nil {
		return nil, err
	}
	model.NewEditor(engine).Seed(config, newRand(seed))
	return engine, nil
}
