// ABOUTME: URL subcommand for htmltool
// ABOUTME: Prints the detail page path of catalog listings

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"realtorist-web/core/listings"
	"realtorist-web/core/urls"
)

func newURLCommand() *cobra.Command {
	var (
		catalogPath string
		route       string
		basePath    string
	)

	cmd := &cobra.Command{
		Use:   "url [listing-id...]",
		Short: "Print listing detail page paths",
		Long:  "Url prints the detail page path of each named listing, or of every listing when none are named.",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := listings.LoadCatalog(catalogPath)
			if err != nil {
				return err
			}
			builder := urls.NewBuilder(urls.Options{ListingRoute: route, BasePath: basePath})

			if len(args) == 0 {
				for _, l := range catalog.List(cmd.Context()) {
					if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", l.ID, builder.ListingPath(&l)); err != nil {
						return err
					}
				}
				return nil
			}

			for _, id := range args {
				l, err := catalog.Get(cmd.Context(), id)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", l.ID, builder.ListingPath(l)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "data/catalog.yaml", "listing catalog YAML file")
	cmd.Flags().StringVar(&route, "route", urls.DefaultListingRoute, "listing route template")
	cmd.Flags().StringVar(&basePath, "base-path", "/", "application base path")

	return cmd
}
