package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hotelhub/hotel-booking/internal/domain/booking"
)

var bookingsCmd = &cobra.Command{
	Use:   "bookings",
	Short: "List and manage bookings",
}

var bookingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bookings, optionally for one user or hotel",
	RunE:  runBookingsList,
}

var bookingsStatusCmd = &cobra.Command{
	Use:   "status <id> <PENDING|CONFIRMED|CANCELLED>",
	Short: "Change a booking's status",
	Args:  cobra.ExactArgs(2),
	RunE:  runBookingsStatus,
}

var bookingsCancelCmd = &cobra.Command{
	Use:   "cancel <id>",
	Short: "Cancel a booking",
	Args:  cobra.ExactArgs(1),
	RunE:  runBookingsCancel,
}

var bookingsAvailabilityCmd = &cobra.Command{
	Use:   "availability",
	Short: "Check whether a room is free for a stay",
	RunE:  runBookingsAvailability,
}

func init() {
	bookingsCmd.AddCommand(bookingsListCmd)
	bookingsCmd.AddCommand(bookingsStatusCmd)
	bookingsCmd.AddCommand(bookingsCancelCmd)
	bookingsCmd.AddCommand(bookingsAvailabilityCmd)

	bookingsListCmd.Flags().Int64("user", 0, "Only bookings of this user")
	bookingsListCmd.Flags().Int64("hotel", 0, "Only bookings of this hotel")

	bookingsAvailabilityCmd.Flags().Int64("hotel", 0, "Hotel id")
	bookingsAvailabilityCmd.Flags().Int64("room", 0, "Room id")
	bookingsAvailabilityCmd.Flags().String("check-in", "", "Check-in date (YYYY-MM-DD)")
	bookingsAvailabilityCmd.Flags().String("check-out", "", "Check-out date (YYYY-MM-DD)")
	_ = bookingsAvailabilityCmd.MarkFlagRequired("hotel")
	_ = bookingsAvailabilityCmd.MarkFlagRequired("room")
	_ = bookingsAvailabilityCmd.MarkFlagRequired("check-in")
	_ = bookingsAvailabilityCmd.MarkFlagRequired("check-out")
}

func runBookingsList(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	userID, _ := cmd.Flags().GetInt64("user")
	hotelID, _ := cmd.Flags().GetInt64("hotel")
	if userID != 0 && hotelID != 0 {
		return errors.New("use either --user or --hotel")
	}

	svc, err := services(cmd.Context())
	if err != nil {
		return err
	}
	var bookings []booking.Booking
	switch {
	case userID != 0:
		bookings, err = svc.Bookings.BookingsForUser(cmd.Context(), userID)
	case hotelID != 0:
		bookings, err = svc.Bookings.BookingsForHotel(cmd.Context(), hotelID)
	default:
		bookings, err = svc.Bookings.FetchBookings(cmd.Context())
	}
	if err != nil {
		return err
	}

	rows := table{{"ID", "HOTEL", "ROOM", "GUEST", "CHECK-IN", "CHECK-OUT", "STATUS", "TOTAL"}}
	for _, b := range bookings {
		rows = append(rows, []string{
			itoa(b.ID), b.HotelName, b.RoomType, b.UserFirstName + " " + b.UserLastName,
			b.CheckInDate, b.CheckOutDate, string(b.Status), "$" + b.TotalAmount.StringFixed(2),
		})
	}
	return render(cmd.OutOrStdout(), format, bookings, rows)
}

func runBookingsStatus(cmd *cobra.Command, args []string) error {
	id, err := idArg(args[0])
	if err != nil {
		return err
	}
	svc, err := services(cmd.Context())
	if err != nil {
		return err
	}
	change, err := svc.Bookings.UpdateBookingStatus(cmd.Context(), id, booking.Status(args[1]))
	if err != nil {
		return err
	}
	return printStatusChange(cmd, change)
}

func runBookingsCancel(cmd *cobra.Command, args []string) error {
	id, err := idArg(args[0])
	if err != nil {
		return err
	}
	svc, err := services(cmd.Context())
	if err != nil {
		return err
	}
	change, err := svc.Bookings.CancelBooking(cmd.Context(), id)
	if err != nil {
		return err
	}
	return printStatusChange(cmd, change)
}

func printStatusChange(cmd *cobra.Command, change booking.StatusChange) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	rows := table{{"BOOKING", "STATUS", "MESSAGE"}, {itoa(change.BookingID), string(change.Status), change.Message}}
	return render(cmd.OutOrStdout(), format, change, rows)
}

func runBookingsAvailability(cmd *cobra.Command, args []string) error {
	hotelID, _ := cmd.Flags().GetInt64("hotel")
	roomID, _ := cmd.Flags().GetInt64("room")
	checkIn, err := dateFlag(cmd, "check-in")
	if err != nil {
		return err
	}
	checkOut, err := dateFlag(cmd, "check-out")
	if err != nil {
		return err
	}

	svc, err := services(cmd.Context())
	if err != nil {
		return err
	}
	free, err := svc.Bookings.CheckRoomAvailability(cmd.Context(), hotelID, roomID, checkIn, checkOut)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Room %d at hotel %d available: %s\n", roomID, hotelID, yesNo(free))
	return nil
}
