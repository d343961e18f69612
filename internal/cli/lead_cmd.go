package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/cli/formatter"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/contract"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/domain"
	"github.com/spf13/cobra"
)

func newLeadCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "leads",
		Aliases: []string{"lead"},
		Short:   "Manage and inspect leads",
	}

	cmd.AddCommand(
		newLeadListCmd(app),
		newLeadShowCmd(app),
		newLeadAddCmd(app),
		newLeadImportCmd(app),
	)

	return cmd
}

func newLeadListCmd(app *App) *cobra.Command {
	var temp temperatureValue
	var stage stageValue
	var source string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List leads with derived temperature and stage",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewLeadListRequest()
			if cmd.Flags().Changed("temp") {
				t := domain.Temperature(temp)
				req.Temperature = &t
			}
			if cmd.Flags().Changed("stage") {
				s := domain.Stage(stage)
				req.Stage = &s
			}
			req.Source = source

			resp, err := app.Leads.List(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatLeadList(resp))
			return nil
		},
	}

	cmd.Flags().Var(&temp, "temp", "Filter by temperature (hot, warm, cold)")
	cmd.Flags().Var(&stage, "stage", "Filter by pipeline stage")
	cmd.Flags().StringVar(&source, "source", "", "Filter by lead source")

	return cmd
}

func newLeadShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one lead in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lead, err := app.Leads.GetByID(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatLead(lead))
			return nil
		},
	}
}

func newLeadAddCmd(app *App) *cobra.Command {
	var req contract.LeadCreateRequest
	var score int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a lead in the local cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("score") {
				req.UrgencyScore = &score
			}

			// No flags and a terminal: walk through the form instead.
			if cmd.Flags().NFlag() == 0 && app.interactive() {
				var scoreText string
				if err := leadForm(&req, &scoreText).Run(); err != nil {
					return err
				}
				if scoreText != "" {
					n, err := strconv.Atoi(scoreText)
					if err != nil {
						return fmt.Errorf("parsing score: %w", err)
					}
					req.UrgencyScore = &n
				}
			}

			lead, err := app.Leads.Create(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatLead(lead))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.FirstName, "first", "", "First name")
	cmd.Flags().StringVar(&req.LastName, "last", "", "Last name")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&req.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&req.Source, "source", "", "Lead source")
	cmd.Flags().StringVar(&req.Budget, "budget", "", "Budget")
	cmd.Flags().IntVar(&score, "score", 0, "Urgency score (0-100)")
	cmd.Flags().StringVar(&req.Status, "status", "", "Raw status (new, contacted, qualified, proposal, won)")
	cmd.Flags().StringVar(&req.PropertyAddress, "address", "", "Property address")
	cmd.Flags().StringVar(&req.Description, "notes", "", "Notes")

	return cmd
}

func newLeadImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Bulk-import leads from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportLeads(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d leads\n", result.LeadCount)
			return nil
		},
	}
}
