package main

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
)

var (
	collectionsFilter string

	collectionsCmd = &cobra.Command{
		Use:   "collections [PREFIX...]",
		Short: "List available icon sets",
		Example: paragraph("goconify collections\n" +
			"goconify collections mdi bi\n" +
			"goconify collections --filter material"),
		RunE: runCollections,
	}
)

var prefixColStyle = lipgloss.NewStyle().Width(24)

func runCollections(_ *cobra.Command, args []string) error {
	sets, err := newClient().Collections(args...)
	if err != nil {
		return err
	}

	prefixes := make([]string, 0, len(sets))
	for p := range sets {
		prefixes = append(prefixes, p)
	}
	sort.Strings(prefixes)

	if collectionsFilter != "" {
		// Match against "prefix name" so either column can hit.
		haystack := make([]string, len(prefixes))
		for i, p := range prefixes {
			haystack[i] = p + " " + sets[p].Name
		}
		matches := fuzzy.Find(collectionsFilter, haystack)
		filtered := make([]string, 0, len(matches))
		for _, m := range matches {
			filtered = append(filtered, prefixes[m.Index])
		}
		prefixes = filtered
	}

	for _, p := range prefixes {
		info := sets[p]
		line := prefixColStyle.Render(p) + info.Name
		if info.Total > 0 {
			line += fmt.Sprintf(" (%d icons)", info.Total)
		}
		fmt.Println(line)
	}
	return nil
}

var collectionCmd = &cobra.Command{
	Use:     "collection PREFIX",
	Short:   "List the icons of one icon set",
	Example: "goconify collection mdi",
	Args:    cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		col, err := newClient().Collection(args[0], false, false)
		if err != nil {
			return err
		}

		names := append([]string{}, col.Uncategorized...)
		for _, icons := range col.Categories {
			names = append(names, icons...)
		}
		sort.Strings(names)
		for _, n := range names {
			fmt.Println(col.Prefix + ":" + n)
		}
		return nil
	},
}

func init() {
	collectionsCmd.Flags().StringVarP(&collectionsFilter, "filter", "f", "", "fuzzy-filter icon sets by prefix or name")
}
