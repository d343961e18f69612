package cli

import (
	"context"
	"fmt"

	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/cli/formatter"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/contract"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/domain"
	"github.com/spf13/cobra"
)

func newVendorCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vendors",
		Aliases: []string{"vendor"},
		Short:   "Browse the vendor directory",
	}

	cmd.AddCommand(
		newVendorListCmd(app),
		newVendorGroupsCmd(app),
		newVendorTopCmd(app),
	)

	return cmd
}

func newVendorListCmd(app *App) *cobra.Command {
	var category string
	var top int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List vendors ranked by trust score",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewVendorListRequest()
			if category != "" {
				c := domain.VendorCategory(category)
				req.Category = &c
			}
			req.TopN = top

			resp, err := app.Vendors.List(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatVendorList(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter by category (inspector, lender, title, appraiser, contractor)")
	cmd.Flags().IntVar(&top, "top", 0, "Show only the top N by trust score")

	return cmd
}

func newVendorGroupsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "Show vendors grouped by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Vendors.Groups(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatVendorGroups(resp))
			return nil
		},
	}
}

func newVendorTopCmd(app *App) *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the most trusted vendors",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Vendors.TopByTrust(context.Background(), n)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatVendorList(resp))
			return nil
		},
	}

	cmd.Flags().IntVar(&n, "n", 3, "How many vendors to show")

	return cmd
}
