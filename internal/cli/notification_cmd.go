package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/smartrecruiter/smartrec/internal/api"
	"github.com/smartrecruiter/smartrec/internal/cli/formatter"
)

func newNotificationCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notification",
		Short: "View and manage notifications",
	}
	cmd.AddCommand(newNotificationListCmd(app), newNotificationReadCmd(app))
	return cmd
}

func newNotificationListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(app); err != nil {
				return err
			}
			if err := app.Store.FetchNotifications(cmd.Context()); err != nil {
				return fmt.Errorf("%s", app.Store.Snapshot().Notification.Err)
			}
			ns := app.Store.Snapshot().Notification.Notifications
			if len(ns) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No notifications.")
				return nil
			}
			rows := make([][]string, 0, len(ns))
			for _, n := range ns {
				rows = append(rows, []string{
					strconv.Itoa(n.ID),
					formatter.ReadMark(n.IsRead),
					string(n.Type),
					n.Message,
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(
				[]string{"ID", "", "TYPE", "MESSAGE"}, rows))
			return nil
		},
	}
}

func newNotificationReadCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "read <id>",
		Short: "Mark a notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(app); err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid notification id %q", args[0])
			}
			if err := app.Store.MarkNotificationRead(cmd.Context(), id); err != nil {
				return fmt.Errorf("%s", api.ErrorMessage(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Marked notification %d read\n", id)
			return nil
		},
	}
}
