// Package main provides the entry point for the goconify CLI application.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/goconify/goconify/iconify"
	gap "github.com/muesli/go-app-paths"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Version as provided by goreleaser.
	Version = ""
	// CommitSHA as provided by goreleaser.
	CommitSHA = ""

	configFile string
	color      string
	height     string
	iconWidth  string
	flip       string
	rotate     string
	box        bool
	outputPath string
	copyToClip bool
	printPath  bool

	rootCmd = &cobra.Command{
		Use:   "goconify PREFIX:NAME",
		Short: "Fetch icons from the Iconify API, with a local cache",
		Long: paragraph(
			fmt.Sprintf("\nFetch %s from the Iconify API. Icons are cached on disk, so repeat lookups work offline.", keyword("SVG icons")),
		),
		Example:          "goconify mdi:home --color red --height 24",
		SilenceErrors:    false,
		SilenceUsage:     true,
		TraverseChildren: true,
		Args:             cobra.ExactArgs(1),
		RunE:             execute,
	}
)

// svgOptions collects the rendering flags into API query options. Flags the
// user didn't set stay empty and are omitted from the request.
func svgOptions() *iconify.SVGOptions {
	return &iconify.SVGOptions{
		Color:  color,
		Height: height,
		Width:  iconWidth,
		Flip:   flip,
		Rotate: rotate,
		Box:    box,
	}
}

// newClient builds a client from the resolved config. Viper has already
// merged config file values, environment and flags by the time this runs.
func newClient() *iconify.Client {
	return iconify.New(iconify.Config{
		BaseURL: viper.GetString("api"),
		Cache:   viper.GetString("cache"),
	})
}

func execute(_ *cobra.Command, args []string) error {
	c := newClient()

	if printPath {
		p, err := c.SVGPath(args[0], svgOptions(), "")
		if err != nil {
			return err
		}
		fmt.Println(p)
		return nil
	}

	b, err := c.SVG(args[0], svgOptions())
	if err != nil {
		return err
	}

	switch {
	case copyToClip:
		if err := clipboard.WriteAll(string(b)); err != nil {
			return fmt.Errorf("unable to write to clipboard: %w", err)
		}
		return nil
	case outputPath != "":
		if err := os.WriteFile(outputPath, b, 0o644); err != nil { //nolint:gosec
			return fmt.Errorf("unable to write file: %w", err)
		}
		return nil
	default:
		if _, err := os.Stdout.Write(b); err != nil {
			return fmt.Errorf("unable to write to stdout: %w", err)
		}
		if len(b) == 0 || b[len(b)-1] != '\n' {
			fmt.Println()
		}
		return nil
	}
}

func main() {
	closer, err := setupLog()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		iconify.Cleanup()
		_ = closer()
		os.Exit(1)
	}
	iconify.Cleanup()
	_ = closer()
}

func init() {
	tryLoadConfigFromDefaultPlaces()
	if len(CommitSHA) >= 7 {
		vt := rootCmd.VersionTemplate()
		rootCmd.SetVersionTemplate(vt[:len(vt)-1] + " (" + CommitSHA[0:7] + ")\n")
	}
	if Version == "" {
		Version = "unknown (built from source)"
	}
	rootCmd.Version = Version
	rootCmd.InitDefaultCompletionCmd()

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", fmt.Sprintf("config file (default %s)", viper.GetViper().ConfigFileUsed()))
	rootCmd.PersistentFlags().String("api", "", "Iconify API base URL")
	rootCmd.PersistentFlags().String("cache", "", "cache directory (set to 0 to disable caching)")
	rootCmd.Flags().StringVar(&color, "color", "", "icon color (keyword, hex or currentColor)")
	rootCmd.Flags().StringVar(&height, "height", "", "icon height (number, auto, unset or none)")
	rootCmd.Flags().StringVar(&iconWidth, "width", "", "icon width (number, auto, unset or none)")
	rootCmd.Flags().StringVar(&flip, "flip", "", "flip the icon (horizontal, vertical or horizontal,vertical)")
	rootCmd.Flags().StringVar(&rotate, "rotate", "", "rotate the icon (90deg, 180deg, 270deg or 1, 2, 3)")
	rootCmd.Flags().BoolVar(&box, "box", false, "add an empty rectangle matching the icon's view box")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the SVG to a file instead of stdout")
	rootCmd.Flags().BoolVarP(&copyToClip, "copy", "c", false, "copy the SVG to the clipboard")
	rootCmd.Flags().BoolVar(&printPath, "path", false, "print the path of the cached SVG instead of its contents")

	// Config bindings
	_ = viper.BindPFlag("api", rootCmd.PersistentFlags().Lookup("api"))
	_ = viper.BindPFlag("cache", rootCmd.PersistentFlags().Lookup("cache"))

	viper.SetDefault("api", iconify.DefaultBaseURL)
	viper.SetDefault("cache", "")

	rootCmd.AddCommand(
		configCmd,
		manCmd,
		cacheCmd,
		collectionsCmd,
		collectionCmd,
		searchCmd,
		cssCmd,
		keywordsCmd,
		themeCmd,
	)
}

func tryLoadConfigFromDefaultPlaces() {
	scope := gap.NewScope(gap.User, "goconify")
	dirs, err := scope.ConfigDirs()
	if err != nil {
		fmt.Println("Could not load find configuration directory.")
		os.Exit(1)
	}

	if c := os.Getenv("XDG_CONFIG_HOME"); c != "" {
		dirs = append([]string{filepath.Join(c, "goconify")}, dirs...)
	}

	if c := os.Getenv("GOCONIFY_CONFIG_HOME"); c != "" {
		dirs = append([]string{c}, dirs...)
	}

	for _, v := range dirs {
		viper.AddConfigPath(v)
	}

	viper.SetConfigName("goconify")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("goconify")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warn("Could not parse configuration file", "err", err)
		}
	}

	if used := viper.ConfigFileUsed(); used != "" {
		log.Debug("Using configuration file", "path", viper.ConfigFileUsed())
		return
	}

	if viper.ConfigFileUsed() == "" {
		configFile = filepath.Join(dirs[0], "goconify.yml")
	}
	if err := ensureConfigFile(); err != nil {
		log.Error("Could not create default configuration", "error", err)
	}
}
