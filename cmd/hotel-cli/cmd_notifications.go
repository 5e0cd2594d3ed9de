package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hotelhub/hotel-booking/internal/domain/notification"
	"github.com/hotelhub/hotel-booking/internal/interfaces/views"
)

// notificationsPerPage matches the inbox page of the web client.
const notificationsPerPage = 5

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "Read a user's notifications",
}

var notificationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notifications, unread first",
	RunE:  runNotificationsList,
}

var notificationsReadCmd = &cobra.Command{
	Use:   "read <id>",
	Short: "Mark one notification read",
	Args:  cobra.ExactArgs(1),
	RunE:  runNotificationsRead,
}

var notificationsReadAllCmd = &cobra.Command{
	Use:   "read-all",
	Short: "Mark all of a user's notifications read",
	RunE:  runNotificationsReadAll,
}

func init() {
	notificationsCmd.AddCommand(notificationsListCmd)
	notificationsCmd.AddCommand(notificationsReadCmd)
	notificationsCmd.AddCommand(notificationsReadAllCmd)

	notificationsListCmd.Flags().Int64("user", 0, "User id")
	notificationsReadAllCmd.Flags().Int64("user", 0, "User id")
	notificationsListCmd.Flags().Int("page", 1, "Inbox page")
	notificationsListCmd.Flags().String("type", "", "Only notifications of this type")
	notificationsListCmd.Flags().Bool("unread", false, "Only unread notifications")
	_ = notificationsListCmd.MarkFlagRequired("user")
	_ = notificationsReadAllCmd.MarkFlagRequired("user")
}

func runNotificationsList(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	userID, _ := cmd.Flags().GetInt64("user")
	kind, _ := cmd.Flags().GetString("type")
	unread, _ := cmd.Flags().GetBool("unread")

	svc, err := services(cmd.Context())
	if err != nil {
		return err
	}

	if kind != "" || unread {
		var items []notification.Notification
		if kind != "" {
			items, err = svc.Notifications.NotificationsByType(cmd.Context(), userID, kind)
		} else {
			items, err = svc.Notifications.UnreadNotificationsForUser(cmd.Context(), userID)
		}
		if err != nil {
			return err
		}
		items = notification.SortForInbox(items)
		return render(cmd.OutOrStdout(), format, items, notificationRows(items))
	}

	inbox := views.NewNotifications(svc.Notifications, userID, notificationsPerPage, current.log)
	if err := inbox.Load(cmd.Context()); err != nil {
		return err
	}
	if page, _ := cmd.Flags().GetInt("page"); page != 1 && !inbox.GoTo(page) {
		return fmt.Errorf("page %d does not exist", page)
	}

	view := inbox.View()
	if err := render(cmd.OutOrStdout(), format, view, notificationRows(view.Items)); err != nil {
		return err
	}
	if format == formatTable {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  (%d unread)\n", pageFooter(view), inbox.Unread())
	}
	return nil
}

func notificationRows(items []notification.Notification) table {
	rows := table{{"ID", "TYPE", "RECEIVED", "READ", "MESSAGE"}}
	for _, n := range items {
		received := ""
		if !n.CreatedAt.IsZero() {
			received = n.CreatedAt.Format("2006-01-02 15:04")
		}
		rows = append(rows, []string{itoa(n.ID), n.Type, received, yesNo(n.Read), n.Message})
	}
	return rows
}

func runNotificationsRead(cmd *cobra.Command, args []string) error {
	id, err := idArg(args[0])
	if err != nil {
		return err
	}
	svc, err := services(cmd.Context())
	if err != nil {
		return err
	}
	msg, err := svc.Notifications.MarkNotificationRead(cmd.Context(), id)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}

func runNotificationsReadAll(cmd *cobra.Command, args []string) error {
	userID, _ := cmd.Flags().GetInt64("user")
	svc, err := services(cmd.Context())
	if err != nil {
		return err
	}
	inbox := views.NewNotifications(svc.Notifications, userID, notificationsPerPage, current.log)
	msg, err := inbox.MarkAllRead(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}
