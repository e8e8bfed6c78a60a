package main

import (
	"fmt"

	"github.com/goconify/goconify/iconify"
	"github.com/spf13/cobra"
)

var (
	searchLimit    int
	searchStart    int
	searchPrefixes []string
	searchCategory string

	searchCmd = &cobra.Command{
		Use:     "search QUERY",
		Short:   "Search for icons across all icon sets",
		Example: paragraph("goconify search home\ngoconify search home --prefix mdi --limit 10"),
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			res, err := newClient().Search(args[0], &iconify.SearchOptions{
				Limit:    searchLimit,
				Start:    searchStart,
				Prefixes: searchPrefixes,
				Category: searchCategory,
			})
			if err != nil {
				return err
			}

			for _, icon := range res.Icons {
				fmt.Println(icon)
			}
			if res.Total > len(res.Icons) {
				fmt.Printf("\nShowing %d of %d matches.\n", len(res.Icons), res.Total)
			}
			return nil
		},
	}
)

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "l", 0, "maximum number of results (32-999)")
	searchCmd.Flags().IntVar(&searchStart, "start", 0, "start offset into the result list")
	searchCmd.Flags().StringSliceVarP(&searchPrefixes, "prefix", "p", nil, "restrict the search to these icon set prefixes")
	searchCmd.Flags().StringVar(&searchCategory, "category", "", "restrict the search to one icon set category")
}
