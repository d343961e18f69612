package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/cli/formatter"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/contract"
)

func trusthomeHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// loginForm collects the backend API token.
func loginForm(token *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("API token").
				Description("Stored locally; used on the next run").
				EchoMode(huh.EchoModePassword).
				Value(token).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("token is required")
					}
					return nil
				}),
		),
	).WithTheme(trusthomeHuhTheme()).WithShowHelp(false)
}

// leadForm collects the fields for a new lead. score is parsed into the
// request after the form runs.
func leadForm(req *contract.LeadCreateRequest, score *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("First name").Value(&req.FirstName),
			huh.NewInput().Title("Last name").Value(&req.LastName),
			huh.NewInput().Title("Phone").Placeholder("5125550100").Value(&req.Phone),
			huh.NewInput().Title("Email").Value(&req.Email),
		),
		huh.NewGroup(
			huh.NewInput().Title("Source").Placeholder("Referral").Value(&req.Source),
			huh.NewInput().Title("Budget").Placeholder("TBD").Value(&req.Budget),
			huh.NewInput().Title("Urgency score (0-100, blank to derive)").
				Value(score).
				Validate(validateOptionalScore),
			huh.NewInput().Title("Property address").Value(&req.PropertyAddress),
			huh.NewText().Title("Notes").Value(&req.Description),
		),
	).WithTheme(trusthomeHuhTheme()).WithShowHelp(false)
}

func validateOptionalScore(s string) error {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if n < 0 || n > 100 {
		return fmt.Errorf("must be between 0 and 100")
	}
	return nil
}
