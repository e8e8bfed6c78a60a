package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	keywordPrefix  string
	keywordKeyword string

	keywordsCmd = &cobra.Command{
		Use:     "keywords",
		Short:   "Suggest search keywords",
		Example: paragraph("goconify keywords --prefix arr\ngoconify keywords --keyword arrow"),
		Args:    cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			res, err := newClient().Keywords(keywordPrefix, keywordKeyword)
			if err != nil {
				return err
			}

			for _, m := range res.Matches {
				fmt.Println(m)
			}
			return nil
		},
	}
)

func init() {
	keywordsCmd.Flags().StringVarP(&keywordPrefix, "prefix", "p", "", "list keywords starting with this prefix")
	keywordsCmd.Flags().StringVarP(&keywordKeyword, "keyword", "k", "", "list keywords containing this keyword")
}
