package main

import (
	"fmt"

	"github.com/goconify/goconify/freedesktop"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	themeName    string
	themeComment string
	themeBaseDir string

	themeCmd = &cobra.Command{
		Use:   "theme MAPPING",
		Short: "Generate a freedesktop icon theme from a YAML mapping",
		Long: paragraph(fmt.Sprintf("\nGenerate a %s icon theme. The mapping file maps freedesktop icon names to iconify keys:\n\n"+
			"  edit-copy: mdi:content-copy\n  weather-clear: mdi:weather-sunny", keyword("freedesktop"))),
		Example: "goconify theme icons.yml --name my-icons --dir ~/.local/share/icons",
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			mapping := viper.New()
			mapping.SetConfigFile(args[0])
			if err := mapping.ReadInConfig(); err != nil {
				return fmt.Errorf("unable to read mapping file: %w", err)
			}

			icons := make(map[string]freedesktop.Icon)
			for name := range mapping.AllSettings() {
				icons[name] = freedesktop.Icon{Key: mapping.GetString(name)}
			}
			if len(icons) == 0 {
				return fmt.Errorf("mapping file %s contains no icons", args[0])
			}

			base, err := freedesktop.Theme(newClient(), themeName, icons, freedesktop.Options{
				Comment:       themeComment,
				BaseDirectory: themeBaseDir,
				SVG:           svgOptions(),
			})
			if err != nil {
				return err
			}
			fmt.Println("Wrote icon theme to:", base)
			return nil
		},
	}
)

func init() {
	themeCmd.Flags().StringVarP(&themeName, "name", "n", "goconify", "theme name")
	themeCmd.Flags().StringVar(&themeComment, "comment", "", "theme comment for index.theme")
	themeCmd.Flags().StringVarP(&themeBaseDir, "dir", "d", "", "base directory for the theme folder")
	themeCmd.Flags().StringVar(&color, "color", "", "icon color applied to every icon")
	themeCmd.Flags().StringVar(&height, "height", "", "icon height applied to every icon")
}
