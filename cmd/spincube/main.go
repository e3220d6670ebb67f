package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/spincube/internal/config"
	"github.com/san-kum/spincube/internal/driver"
	"github.com/san-kum/spincube/internal/gui"
	"github.com/san-kum/spincube/internal/logging"
	"github.com/san-kum/spincube/internal/loop"
	"github.com/san-kum/spincube/internal/render"
	"github.com/san-kum/spincube/internal/tui"
)

var (
	configFile string
	preset     string
	logFile    string
	verbose    bool

	fps   int
	theme string

	frames int
	width  int
	height int
	outDir string
	gifOut string

	savePath string

	logCloser io.Closer
)

// main registers the commands and runs the terminal view when no
// subcommand is given. It exits with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:               "spincube",
		Short:             "a spinning, lit cube in your terminal or a window",
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logCloser != nil {
				logCloser.Close()
			}
		},
		RunE: runTUI,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "start from a named preset")
	rootCmd.PersistentFlags().StringVar(&logFile, "log", "", "write logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug-level logging")
	rootCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	rootCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "animate in the terminal",
		RunE:  runTUI,
	}
	tuiCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	tuiCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "animate in a native window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return gui.Run(cfg)
		},
	}
	guiCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render frames to PNG files or an animated GIF",
		RunE:  runRender,
	}
	renderCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate (sets frame timestamps)")
	renderCmd.Flags().IntVar(&frames, "frames", 120, "number of frames")
	renderCmd.Flags().IntVar(&width, "width", 640, "surface width")
	renderCmd.Flags().IntVar(&height, "height", 480, "surface height")
	renderCmd.Flags().StringVar(&outDir, "out", "", "directory for PNG frames")
	renderCmd.Flags().StringVar(&gifOut, "gif", "", "animated GIF output path")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tFOV\tCAMERA Z\tCUBE COLOR\tTHEME")
			for _, name := range config.ListPresets() {
				c := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.0f\t%.1f\t%s\t%s\n", name, c.Scene.Camera.FOV, c.Scene.Camera.Z, c.Scene.Cube.Color, c.Theme)
			}
			return w.Flush()
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if savePath == "" {
				return config.Write(cmd.OutOrStdout(), cfg)
			}
			if err := config.Save(savePath, cfg); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", savePath)
			return nil
		},
	}
	configCmd.Flags().StringVar(&savePath, "save", "", "write the configuration to this file instead of stdout")

	rootCmd.AddCommand(tuiCmd, guiCmd, renderCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogging installs a text handler on --log. Without --log, only the
// render command logs, to stderr; the terminal view owns stdout.
func setupLogging(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	var w io.Writer
	switch {
	case logFile != "":
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		logCloser, w = f, f
	case cmd.Name() == "render":
		w = cmd.ErrOrStderr()
	default:
		return nil
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return nil
}

// loadConfig starts from defaults or a preset, overlays the config file,
// then applies flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Loop.FPS = fps
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("frames") {
		cfg.Render.Frames = frames
	}
	if flags.Changed("width") {
		cfg.Render.Width = width
	}
	if flags.Changed("height") {
		cfg.Render.Height = height
	}
	if flags.Changed("out") {
		cfg.Render.Out = outDir
	}
	if flags.Changed("gif") {
		cfg.Render.GIF = gifOut
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return tui.Run(cfg)
}

// runRender drives the scene headlessly with synthetic timestamps, one
// frame every 1000/fps milliseconds.
func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	rc := cfg.Render
	if rc.Frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", rc.Frames)
	}
	if rc.Out == "" && rc.GIF == "" {
		return errors.New("nothing to write: set --out and/or --gif")
	}
	if rc.Out != "" {
		if err := os.MkdirAll(rc.Out, 0755); err != nil {
			return err
		}
	}

	surface := &render.Size{W: rc.Width, H: rc.Height}
	raster := render.NewRasterRenderer(cfg.Scene.Antialias)
	defer raster.Close()
	frameLoop := loop.New()
	d := driver.New(cfg.Scene, raster, frameLoop)
	if err := d.Initialize(surface, &driver.ResizeNotifier{}); err != nil {
		return err
	}
	defer d.Stop()

	rec := render.NewRecorder(cfg.Loop.FPS)
	step := 1000.0 / float64(cfg.Loop.FPS)
	for i := 0; i < rc.Frames; i++ {
		if !frameLoop.TickAt(float64(i) * step) {
			break
		}
		if err := d.Err(); err != nil {
			return err
		}
		if rc.Out != "" {
			if err := writePNG(filepath.Join(rc.Out, fmt.Sprintf("frame_%04d.png", i)), raster); err != nil {
				return err
			}
		}
		if rc.GIF != "" {
			rec.Capture(raster.Image())
		}
	}
	if err := d.Err(); err != nil {
		return err
	}

	if rc.GIF != "" {
		f, err := os.Create(rc.GIF)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := rec.Encode(f); err != nil {
			return err
		}
	}
	w, h := raster.Size()
	fmt.Fprintf(cmd.OutOrStdout(), "rendered %d frames (%dx%d)\n", d.Frames(), w, h)
	if rc.GIF != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d frames)\n", rc.GIF, rec.Len())
	}
	return nil
}

func writePNG(path string, r *render.RasterRenderer) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.EncodePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
