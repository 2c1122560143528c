package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/smartrecruiter/smartrec/internal/api"
	"github.com/smartrecruiter/smartrec/internal/cli/formatter"
	"github.com/smartrecruiter/smartrec/internal/domain"
)

func newFeedbackCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "View and give submission feedback",
	}
	cmd.AddCommand(newFeedbackShowCmd(app), newFeedbackGiveCmd(app))
	return cmd
}

func newFeedbackShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <submission-id>",
		Short: "Show feedback for a submission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(app); err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid submission id %q", args[0])
			}
			items, err := app.Client.ListFeedback(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("%s", api.ErrorMessage(err))
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No feedback yet.")
				return nil
			}
			out := cmd.OutOrStdout()
			for _, f := range items {
				if f.Score != nil {
					fmt.Fprintf(out, "%s %s\n", formatter.StyleBold.Render(fmt.Sprintf("%.1f", *f.Score)), f.Text)
				} else {
					fmt.Fprintln(out, f.Text)
				}
			}
			return nil
		},
	}
}

func newFeedbackGiveCmd(app *App) *cobra.Command {
	var (
		text  string
		score float64
	)
	cmd := &cobra.Command{
		Use:   "give <submission-id>",
		Short: "Give feedback on a submission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRole(app, domain.RoleRecruiter); err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid submission id %q", args[0])
			}
			var scorep *float64
			if cmd.Flags().Changed("score") {
				scorep = &score
			}
			if err := app.Client.GiveFeedback(cmd.Context(), id, text, scorep); err != nil {
				return fmt.Errorf("%s", api.ErrorMessage(err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Feedback recorded.")
			return nil
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "feedback text")
	cmd.Flags().Float64Var(&score, "score", 0, "score out of 100")
	_ = cmd.MarkFlagRequired("text")
	return cmd
}
