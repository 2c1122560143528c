package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartrecruiter/smartrec/internal/cli/formatter"
	"github.com/smartrecruiter/smartrec/internal/domain"
)

// performance renders all three recruiter dashboards in one shot. Each
// fetch fails independently so a partial dashboard still renders.
func newPerformanceCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "performance",
		Short: "Show recruiter performance dashboards",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRole(app, domain.RoleRecruiter); err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if err := app.Store.FetchStatistics(cmd.Context()); err != nil {
				fmt.Fprintln(out, formatter.StyleRed.Render(app.Store.Snapshot().Performance.Err))
			} else {
				fmt.Fprintln(out, formatter.StyleHeader.Render("Monthly performance"))
				fmt.Fprint(out, formatter.RenderMonthlyChart(app.Store.Snapshot().Performance.Monthly))
			}

			if err := app.Store.FetchComposition(cmd.Context()); err != nil {
				fmt.Fprintln(out, formatter.StyleRed.Render(app.Store.Snapshot().Performance.Err))
			} else {
				fmt.Fprintln(out)
				fmt.Fprintln(out, formatter.StyleHeader.Render("Interviewee composition"))
				fmt.Fprint(out, formatter.RenderComposition(app.Store.Snapshot().Performance.Composition))
			}

			if err := app.Store.FetchStatusRows(cmd.Context()); err != nil {
				fmt.Fprintln(out, formatter.StyleRed.Render(app.Store.Snapshot().Performance.Err))
			} else {
				fmt.Fprintln(out)
				fmt.Fprintln(out, formatter.StyleHeader.Render("Interviewee status"))
				fmt.Fprint(out, formatter.RenderStatusRows(app.Store.Snapshot().Performance.StatusRows))
			}
			return nil
		},
	}
}
