package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hotelhub/hotel-booking/internal/interfaces/views"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Inspect user accounts",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	RunE:  runUsersList,
}

var usersWhoamiCmd = &cobra.Command{
	Use:   "whoami <id>",
	Short: "Show a user's header badge: initials and unread notifications",
	Args:  cobra.ExactArgs(1),
	RunE:  runUsersWhoami,
}

func init() {
	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersWhoamiCmd)
}

func runUsersList(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	svc, err := services(cmd.Context())
	if err != nil {
		return err
	}
	users, err := svc.Users.FetchUsers(cmd.Context())
	if err != nil {
		return err
	}

	rows := table{{"ID", "NAME", "EMAIL", "ROLE", "PHONE"}}
	for _, u := range users {
		rows = append(rows, []string{itoa(u.ID), u.FullName(), u.Email, string(u.Role), u.PhoneNumber})
	}
	return render(cmd.OutOrStdout(), format, users, rows)
}

type whoami struct {
	ID       int64  `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Initials string `json:"initials" yaml:"initials"`
	Admin    bool   `json:"admin" yaml:"admin"`
	Unread   int    `json:"unread" yaml:"unread"`
}

func runUsersWhoami(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	id, err := idArg(args[0])
	if err != nil {
		return err
	}
	svc, err := services(cmd.Context())
	if err != nil {
		return err
	}
	u, err := svc.Users.FetchUser(cmd.Context(), id)
	if err != nil {
		return err
	}

	header := views.NewHeader(svc.Notifications, id, current.log)
	// the badge stays at zero when the inbox is unreachable
	_ = header.RefreshUnread(cmd.Context())

	out := whoami{
		ID:       u.ID,
		Name:     u.FullName(),
		Initials: views.Initials(u.FirstName, u.LastName),
		Admin:    u.IsAdmin(),
		Unread:   header.Unread(),
	}
	rows := table{
		{"USER", fmt.Sprintf("[%s] %s", out.Initials, out.Name)},
		{"ADMIN", yesNo(out.Admin)},
		{"UNREAD", strconv.Itoa(out.Unread)},
	}
	return render(cmd.OutOrStdout(), format, out, rows)
}
