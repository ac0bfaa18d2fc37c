// Package cmd wires the arbor CLI: configuration loading, the shared
// resolution stack, and one file per subcommand.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/arbor/internal/config"
	"github.com/zjrosen/arbor/internal/keys"
	"github.com/zjrosen/arbor/internal/log"
	"github.com/zjrosen/arbor/internal/paths"
	"github.com/zjrosen/arbor/internal/render"
	"github.com/zjrosen/arbor/internal/ui/styles"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version   = "dev"
	cfgFile   string
	dirFlag   string
	debugFlag bool
	logFile   string
	logLevel  string
	noColor   bool

	cfg        config.Config
	arborDir   string
	logCleanup func()
)

var rootCmd = &cobra.Command{
	Use:   "arbor",
	Short: "Resolve manifest-declared content trees",
	Long: `Arbor resolves declarative YAML manifests into content trees.

Manifests declare named entries (groups, pages, widgets, fragments) and
per-kind resolution rules. Arbor builds the tree a descriptor expands to,
records each resolution in a local history database, and renders the
result as text, JSON, or an interactive browser.`,
	Version:           version,
	PersistentPreRunE: setup,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .arbor/config.yaml, then ~/.config/arbor/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&dirFlag, "dir", "d", "",
		"project or .arbor data directory (default: current directory)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"write a debug log to .arbor/debug.log")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"debug log path (implies --debug)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"minimum debug log level: debug, info, warn, or error")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"disable ANSI colors in command output")
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("auto_refresh", defaults.AutoRefresh)
	viper.SetDefault("ui.show_status_bar", defaults.UI.ShowStatusBar)
	viper.SetDefault("ui.markdown_style", defaults.UI.MarkdownStyle)
	viper.SetDefault("cache.enabled", defaults.Cache.Enabled)
	viper.SetDefault("cache.ttl", defaults.Cache.TTL)
	viper.SetDefault("history.enabled", defaults.History.Enabled)
	viper.SetDefault("history.keep", defaults.History.Keep)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.file_path", config.DefaultTracesFilePath())
	viper.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)

	arborDir = paths.ResolveArborDir(dataDir())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. <arbor dir>/config.yaml (project)
		// 2. ~/.config/arbor/config.yaml (user config)
		if _, err := os.Stat(paths.ConfigPath(arborDir)); err == nil {
			viper.SetConfigFile(paths.ConfigPath(arborDir))
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "arbor"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	// A missing config file is fine, the defaults above apply. `arbor init`
	// is the explicit way to create one.
	_ = viper.ReadInConfig()
	_ = viper.Unmarshal(&cfg)
}

// dataDir returns the directory holding the .arbor data, from --dir, the
// ARBOR_DIR environment variable, or the working directory.
func dataDir() string {
	if dirFlag != "" {
		return dirFlag
	}
	if env := os.Getenv("ARBOR_DIR"); env != "" {
		return env
	}
	return "."
}

// manifestDir returns the directory manifests load from: the manifest_dir
// config key when set, otherwise <arbor dir>/manifests.
func manifestDir() string {
	if cfg.ManifestDir != "" {
		return cfg.ManifestDir
	}
	return paths.ManifestDir(arborDir)
}

// setup validates the loaded configuration and applies the pieces every
// subcommand shares: theme, keybindings, and the optional debug log.
func setup(_ *cobra.Command, _ []string) error {
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := styles.ApplyTheme(styles.ThemeConfig{
		Preset: cfg.Theme.Preset,
		Mode:   cfg.Theme.Mode,
		Colors: cfg.Theme.Colors,
	}); err != nil {
		return fmt.Errorf("invalid theme configuration: %w", err)
	}

	keys.ApplyConfig(cfg.Keybindings.ToggleLogs, cfg.Keybindings.Refresh)

	if debugFlag || logFile != "" || os.Getenv("ARBOR_DEBUG") != "" {
		path := logFile
		if path == "" {
			path = paths.LogPath(arborDir)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return fmt.Errorf("creating log directory: %w", err)
		}
		cleanup, err := log.Init(path)
		if err != nil {
			return fmt.Errorf("initializing logging: %w", err)
		}
		logCleanup = cleanup
		if logLevel != "" {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			log.SetMinLevel(level)
		}
		log.Info(log.CatConfig, "arbor starting", "version", version, "arborDir", arborDir)
	}
	return nil
}

// newRenderer builds a renderer from the shared color and width flags.
// --no-color wins over --color=always.
func newRenderer(color string, width int) (render.Renderer, error) {
	mode, err := render.ParseColorMode(color)
	if err != nil {
		return render.Renderer{}, err
	}
	enabled := mode.Enabled()
	if noColor {
		enabled = false
	}
	return render.Renderer{Width: width, Color: enabled}, nil
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if logCleanup != nil {
		logCleanup()
	}
	return err
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
