package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/smartrecruiter/smartrec/internal/api"
	"github.com/smartrecruiter/smartrec/internal/cli/formatter"
	"github.com/smartrecruiter/smartrec/internal/domain"
)

func newInviteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invite",
		Short: "Manage assessment invitations",
	}
	cmd.AddCommand(newInviteListCmd(app), newInviteSendCmd(app), newInviteAcceptCmd(app))
	return cmd
}

func newInviteListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your pending invitations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRole(app, domain.RoleInterviewee); err != nil {
				return err
			}
			if err := app.Store.FetchInvitations(cmd.Context()); err != nil {
				return fmt.Errorf("%s", app.Store.Snapshot().Invitation.Err)
			}
			invs := app.Store.Snapshot().Invitation.Invitations
			if len(invs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No pending invitations.")
				return nil
			}
			rows := make([][]string, 0, len(invs))
			for _, inv := range invs {
				rows = append(rows, []string{
					strconv.Itoa(inv.ID),
					strconv.Itoa(inv.AssessmentID),
					formatter.InvitationBadge(inv.Status),
					inv.ExpiryDate,
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(
				[]string{"ID", "ASSESSMENT", "STATUS", "EXPIRES"}, rows))
			return nil
		},
	}
}

func newInviteSendCmd(app *App) *cobra.Command {
	var (
		assessmentID int
		interviewees []int
	)
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Invite interviewees to an assessment",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRole(app, domain.RoleRecruiter); err != nil {
				return err
			}
			if len(interviewees) == 0 {
				return fmt.Errorf("at least one --interviewee is required")
			}
			if err := app.Store.CreateInvitations(cmd.Context(), assessmentID, interviewees); err != nil {
				return fmt.Errorf("%s", api.ErrorMessage(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Invited %d interviewee(s) to assessment %d\n",
				len(interviewees), assessmentID)
			return nil
		},
	}
	cmd.Flags().IntVar(&assessmentID, "assessment", 0, "assessment id")
	cmd.Flags().IntSliceVar(&interviewees, "interviewee", nil, "interviewee id (repeatable)")
	_ = cmd.MarkFlagRequired("assessment")
	return cmd
}

func newInviteAcceptCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "accept <id>",
		Short: "Accept an invitation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRole(app, domain.RoleInterviewee); err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid invitation id %q", args[0])
			}
			if err := app.Store.AcceptInvitation(cmd.Context(), id); err != nil {
				return fmt.Errorf("%s", api.ErrorMessage(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Accepted invitation %d\n", id)
			return nil
		},
	}
}
