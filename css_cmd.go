package main

import (
	"fmt"

	"github.com/goconify/goconify/iconify"
	"github.com/spf13/cobra"
)

var (
	cssSelector string
	cssCommon   string
	cssOverride string
	cssPseudo   bool
	cssVar      string
	cssSquare   bool
	cssColor    string
	cssMode     string
	cssFormat   string

	cssCmd = &cobra.Command{
		Use:     "css PREFIX ICON...",
		Short:   "Generate CSS for icons of one icon set",
		Example: paragraph("goconify css mdi home account\ngoconify css mdi home --mode mask --format compressed"),
		Args:    cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			css, err := newClient().CSS(args[0], args[1:], &iconify.CSSOptions{
				Selector: cssSelector,
				Common:   cssCommon,
				Override: cssOverride,
				Pseudo:   cssPseudo,
				Var:      cssVar,
				Square:   cssSquare,
				Color:    cssColor,
				Mode:     cssMode,
				Format:   cssFormat,
			})
			if err != nil {
				return err
			}
			fmt.Print(css)
			return nil
		},
	}
)

func init() {
	cssCmd.Flags().StringVar(&cssSelector, "selector", "", "per-icon CSS selector")
	cssCmd.Flags().StringVar(&cssCommon, "common", "", "selector shared by all icons")
	cssCmd.Flags().StringVar(&cssOverride, "override", "", "selector mixing per-icon and common rules")
	cssCmd.Flags().BoolVar(&cssPseudo, "pseudo", false, "treat selectors as pseudo-selectors")
	cssCmd.Flags().StringVar(&cssVar, "var", "", "CSS variable name for the icon")
	cssCmd.Flags().BoolVar(&cssSquare, "square", false, "force square icons")
	cssCmd.Flags().StringVar(&cssColor, "css-color", "", "color for monotone icons")
	cssCmd.Flags().StringVar(&cssMode, "mode", "", "rendering mode (mask or background)")
	cssCmd.Flags().StringVar(&cssFormat, "format", "", "stylesheet format (expanded, compact or compressed)")
}
