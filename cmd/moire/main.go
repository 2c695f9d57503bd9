package main

import (
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/moire/internal/analysis"
	"github.com/san-kum/moire/internal/config"
	"github.com/san-kum/moire/internal/controls"
	"github.com/san-kum/moire/internal/export"
	"github.com/san-kum/moire/internal/gui"
	"github.com/san-kum/moire/internal/params"
	"github.com/san-kum/moire/internal/portfolio"
	"github.com/san-kum/moire/internal/render"
	"github.com/san-kum/moire/internal/tui"
	"github.com/san-kum/moire/pkg/logging"
)

var (
	configFile string
	logLevel   string
	logFile    string
	instant    bool
	theme      string
	fps        int
	// Frame options shared by render and profile
	preset   string
	sets     []string
	atTime   float64
	width    int
	height   int
	outPath  string
	svgPath  string
	svgScale float64
	samples  int
	path     string
	peaks    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "moire",
		Short:         "interactive moiré pattern simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			if cmd.Root() == cmd {
				return logging.InitForTUI(level, logFile)
			}
			logging.InitForCLI(level, os.Stderr)
			return nil
		},
		RunE: runTUI,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "", "palette: "+strings.Join(render.PaletteNames(), ", "))
	rootCmd.PersistentFlags().IntVar(&fps, "fps", 0, "animation frame rate")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "start from a named preset")
	rootCmd.PersistentFlags().StringArrayVar(&sets, "set", nil, "set a control, e.g. ctrl-frequency-a=440 (repeatable)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file while the TUI runs")
	rootCmd.Flags().BoolVar(&instant, "instant", false, "skip the intro animation")
	rootCmd.Flags().StringVar(&path, "path", "", "open at this page, e.g. /projects/moire-simulator")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the simulator in a native window",
		RunE:  runGUI,
	}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render one frame to png or svg",
		RunE:  runRender,
	}
	addFrameFlags(renderCmd)
	renderCmd.Flags().StringVarP(&outPath, "out", "o", "moire.png", "output file (.png or .svg)")
	renderCmd.Flags().StringVar(&svgPath, "svg", "", "also write an svg to this path")
	renderCmd.Flags().Float64Var(&svgScale, "scale", 4, "svg dot spacing")

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "plot the intensity across the centre row",
		RunE:  runProfile,
	}
	addFrameFlags(profileCmd)
	profileCmd.Flags().IntVar(&samples, "samples", 512, "number of samples")
	profileCmd.Flags().IntVar(&peaks, "peaks", 3, "spectrum peaks to report")
	profileCmd.Flags().StringVar(&svgPath, "svg", "", "also write the cross-section as an svg polyline")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tFREQ A\tFREQ B\tWIDTH A\tWIDTH B\tANGLE\tBLEND")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.1f\t%.1f\t%.3f\t%.3f\t%.1f\t%s\n",
					name, p.FrequencyA, p.FrequencyB, p.WidthA, p.WidthB, p.Angle, p.BlendMode)
			}
			return w.Flush()
		},
	}

	projectsCmd := &cobra.Command{
		Use:   "projects",
		Short: "list portfolio projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("%s: %s\n\n", portfolio.Whoami.Name, portfolio.Whoami.Tagline)
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SLUG\tHREF\tSUMMARY")
			for _, p := range portfolio.Projects {
				fmt.Fprintf(w, "%s\t%s\t%s\n", p.Slug, p.Href(), p.Summary)
			}
			return w.Flush()
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage configuration files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dst := "moire.yaml"
			if len(args) == 1 {
				dst = args[0]
			}
			if _, err := os.Stat(dst); err == nil {
				return fmt.Errorf("%s already exists", dst)
			}
			if err := config.Save(dst, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", dst)
			return nil
		},
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(guiCmd, renderCmd, profileCmd, presetsCmd, projectsCmd, configCmd)

	err := rootCmd.Execute()
	logging.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addFrameFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&atTime, "time", 0, "animation time in seconds")
	cmd.Flags().IntVar(&width, "width", 0, "frame width in pixels")
	cmd.Flags().IntVar(&height, "height", 0, "frame height in pixels")
}

// loadConfig reads --config and applies flag overrides.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return nil, err
		}
	}
	if theme != "" {
		cfg.Theme = theme
	}
	if fps > 0 {
		cfg.FPS = fps
	}
	if width > 0 {
		cfg.Width = width
	}
	if height > 0 {
		cfg.Height = height
	}
	if instant {
		cfg.Instant = true
	}

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q (have %s)", preset, strings.Join(config.ListPresets(), ", "))
		}
		cfg.Parameters = *p
	}
	if len(sets) > 0 {
		p, err := applySets(cfg)
		if err != nil {
			return nil, err
		}
		cfg.Parameters = p
	}
	return cfg, cfg.Validate()
}

// applySets runs every --set through the same control path the UI uses.
func applySets(cfg *config.Config) (params.Parameters, error) {
	ranges, err := cfg.Ranges()
	if err != nil {
		return params.Parameters{}, err
	}
	store := params.NewStore(cfg.Parameters)
	panel := controls.NewPanel(store, ranges)
	defer panel.Close()

	for _, s := range sets {
		id, value, ok := strings.Cut(s, "=")
		if !ok {
			return params.Parameters{}, fmt.Errorf("--set %q: want control=value", s)
		}
		if err := panel.Set(strings.TrimSpace(id), strings.TrimSpace(value)); err != nil {
			return params.Parameters{}, fmt.Errorf("--set %s: %w", id, err)
		}
		logging.Debug("cli", "set %s=%s", id, value)
	}
	return store.Snapshot(), nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return tui.Run(tui.Options{Config: cfg, Path: path, Source: os.ReadFile})
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return gui.Run(cfg)
}

func frameFor(cfg *config.Config) export.Frame {
	return export.Frame{
		Params:  cfg.Parameters,
		Time:    atTime,
		Width:   cfg.Width,
		Height:  cfg.Height,
		Palette: render.GetPalette(cfg.Theme),
		Scale:   svgScale,
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	f := frameFor(cfg)

	if err := export.Save(outPath, f); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%dx%d)\n", outPath, f.Width, f.Height)

	if svgPath != "" {
		out, err := os.Create(svgPath)
		if err != nil {
			return err
		}
		defer out.Close()
		if err := export.WriteSVG(out, f, svgScale); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgPath)
	}
	return nil
}

func runProfile(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if samples < 2 {
		return fmt.Errorf("--samples must be at least 2, got %d", samples)
	}
	if peaks < 1 {
		return fmt.Errorf("--peaks must be at least 1, got %d", peaks)
	}
	p := cfg.Parameters
	values := render.Profile(p, atTime, cfg.Width, cfg.Height, samples)
	stats := analysis.Summarize(values)

	graph := asciigraph.Plot(values,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("centre row intensity (%s)", p.BlendMode)),
	)
	fmt.Println(graph)
	fmt.Printf("\nmean %.3f  contrast %.3f\n", stats.Mean, stats.Contrast)

	if svgPath != "" {
		svg := export.ProfileToSVG(values, cfg.Width, cfg.Height/4, "#00d4ff")
		if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgPath)
	}

	fmt.Printf("beat |A-B|: %.1f cycles across the frame\n", math.Abs(p.FrequencyA-p.FrequencyB))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BIN\tPOWER")
	for _, pk := range analysis.Peaks(analysis.PowerSpectrum(values), peaks) {
		fmt.Fprintf(w, "%d\t%.3f\n", pk.Bin, pk.Power)
	}
	return w.Flush()
}
