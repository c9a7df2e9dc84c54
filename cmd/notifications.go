package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/otabek-dev/corpex/internal/app"
	"github.com/otabek-dev/corpex/internal/ui/views"
)

// NewNotificationsCmd builds the notifications command for establishment
// owners to read their payment notifications.
func NewNotificationsCmd(application *app.App) *cobra.Command {
	var (
		accountID  int64
		unreadOnly bool
		markRead   bool
	)

	notificationsCmd := &cobra.Command{
		Use:   "notifications",
		Short: "Show payment notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			if accountID <= 0 {
				return fmt.Errorf("an account is required, pass --account")
			}

			notifications, err := application.Service.Account.Notifications(accountID, unreadOnly)
			if err != nil {
				return err
			}

			views.RenderNotifications(notifications)

			if markRead && len(notifications) > 0 {
				ids := make([]int64, 0, len(notifications))
				for _, n := range notifications {
					if !n.IsRead {
						ids = append(ids, n.ID)
					}
				}
				if len(ids) > 0 {
					if err := application.Service.Account.MarkNotificationsRead(ids); err != nil {
						return err
					}
					pterm.Info.Printf("%d notification(s) marked as read\n", len(ids))
				}
			}

			return nil
		},
	}

	notificationsCmd.Flags().Int64VarP(&accountID, "account", "a", 0, "recipient account ID")
	notificationsCmd.Flags().BoolVarP(&unreadOnly, "unread", "u", false, "show only unread notifications")
	notificationsCmd.Flags().BoolVar(&markRead, "mark-read", false, "mark the shown notifications as read")

	return notificationsCmd
}
