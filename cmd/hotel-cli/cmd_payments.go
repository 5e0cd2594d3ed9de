package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/hotelhub/hotel-booking/internal/domain/payment"
	"github.com/hotelhub/hotel-booking/internal/interfaces/views"
)

var paymentsCmd = &cobra.Command{
	Use:   "payments",
	Short: "Inspect payments",
}

var paymentsReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Payments grouped per booking, newest first",
	RunE:  runPaymentsReport,
}

var paymentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List payments of a user or a booking",
	RunE:  runPaymentsList,
}

func init() {
	paymentsCmd.AddCommand(paymentsReportCmd)
	paymentsCmd.AddCommand(paymentsListCmd)

	paymentsListCmd.Flags().Int64("user", 0, "Payments made by this user")
	paymentsListCmd.Flags().Int64("booking", 0, "Payments made for this booking")
}

func runPaymentsReport(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	svc, err := services(cmd.Context())
	if err != nil {
		return err
	}

	report := views.NewPayments(svc.Payments, svc.Bookings, svc.Users, svc.Hotels, current.log)
	if err := report.Load(cmd.Context()); err != nil {
		return errors.New(report.Error())
	}

	rows := table{{"BOOKING", "GUEST", "HOTEL", "PAYMENTS", "TOTAL", "STATUS", "LATEST"}}
	for _, r := range report.Rows() {
		rows = append(rows, []string{
			itoa(r.BookingID), r.GuestName, r.HotelName, itoa(int64(len(r.Payments))),
			"$" + r.TotalAmount.StringFixed(2), r.Status, r.LatestTransactionDate.Format("2006-01-02 15:04"),
		})
	}
	return render(cmd.OutOrStdout(), format, report.Rows(), rows)
}

func runPaymentsList(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	userID, _ := cmd.Flags().GetInt64("user")
	bookingID, _ := cmd.Flags().GetInt64("booking")
	if (userID == 0) == (bookingID == 0) {
		return errors.New("use exactly one of --user or --booking")
	}

	svc, err := services(cmd.Context())
	if err != nil {
		return err
	}
	var payments []payment.Payment
	if userID != 0 {
		payments, err = svc.Payments.PaymentsForUser(cmd.Context(), userID)
	} else {
		payments, err = svc.Payments.PaymentsForBooking(cmd.Context(), bookingID)
	}
	if err != nil {
		return err
	}

	rows := table{{"ID", "BOOKING", "METHOD", "AMOUNT", "STATUS", "DATE"}}
	for _, p := range payments {
		rows = append(rows, []string{
			itoa(p.ID), itoa(p.BookingID), string(p.Method), "$" + p.Amount.StringFixed(2),
			p.Status, p.TransactionDate.Format("2006-01-02 15:04"),
		})
	}
	rows = append(rows, []string{"", "", "TOTAL", "$" + payment.Total(payments).StringFixed(2)})
	return render(cmd.OutOrStdout(), format, payments, rows)
}
