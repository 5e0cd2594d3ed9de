package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/hotelhub/hotel-booking/internal/domain/filters"
	"github.com/hotelhub/hotel-booking/internal/domain/hotel"
	"github.com/hotelhub/hotel-booking/internal/interfaces/views"
)

var hotelsCmd = &cobra.Command{
	Use:   "hotels",
	Short: "Search and inspect hotels",
}

var hotelsSearchCmd = &cobra.Command{
	Use:   "search <city|country>",
	Short: "Search hotels by destination",
	Long: `Search hotels by destination. With both --check-in and --check-out, rooms
booked for the stay are hidden and hotels without a free room are dropped.`,
	Args: cobra.ExactArgs(1),
	RunE: runHotelsSearch,
}

var hotelsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one hotel and its rooms",
	Args:  cobra.ExactArgs(1),
	RunE:  runHotelsGet,
}

var hotelsDestinationsCmd = &cobra.Command{
	Use:   "destinations",
	Short: "List popular destinations",
	RunE:  runHotelsDestinations,
}

var hotelsNearbyCmd = &cobra.Command{
	Use:   "nearby <latitude> <longitude>",
	Short: "List hotels near a location",
	Args:  cobra.ExactArgs(2),
	RunE:  runHotelsNearby,
}

var hotelsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a hotel",
	Args:  cobra.ExactArgs(1),
	RunE:  runHotelsDelete,
}

var filterFlags = map[string]string{
	"min-price":  filters.MinPrice,
	"max-price":  filters.MaxPrice,
	"min-rating": filters.MinRating,
	"max-rating": filters.MaxRating,
}

func init() {
	hotelsCmd.AddCommand(hotelsSearchCmd)
	hotelsCmd.AddCommand(hotelsGetCmd)
	hotelsCmd.AddCommand(hotelsDestinationsCmd)
	hotelsCmd.AddCommand(hotelsNearbyCmd)
	hotelsCmd.AddCommand(hotelsDeleteCmd)

	hotelsSearchCmd.Flags().String("check-in", "", "Check-in date (YYYY-MM-DD)")
	hotelsSearchCmd.Flags().String("check-out", "", "Check-out date (YYYY-MM-DD)")
	hotelsSearchCmd.Flags().Int("page", 1, "Result page")
	hotelsSearchCmd.Flags().Bool("list", false, "List layout with descriptions")
	for flag, field := range filterFlags {
		hotelsSearchCmd.Flags().String(flag, "", "Filter: "+field)
	}
}

func runHotelsSearch(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	city, country, ok := views.ParseDestination(args[0])
	if !ok {
		return errors.New("destination is required")
	}
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
	search := views.NewSearchResults(svc.Hotels, svc.Bookings, current.cfg.Pagination.PageSize, current.log)
	if err := search.Load(cmd.Context(), views.Query{City: city, Country: country, CheckIn: checkIn, CheckOut: checkOut}); err != nil {
		return errors.New(search.Error())
	}

	for flag, field := range filterFlags {
		if cmd.Flags().Changed(flag) {
			value, _ := cmd.Flags().GetString(flag)
			search.SetFilter(field, value)
		}
	}
	if list, _ := cmd.Flags().GetBool("list"); list {
		search.ToggleLayout()
	}
	if page, _ := cmd.Flags().GetInt("page"); page != 1 && !search.GoTo(page) {
		return fmt.Errorf("page %d does not exist", page)
	}

	view, err := search.Visible()
	if err != nil {
		return err
	}

	header := []string{"ID", "NAME", "CITY", "RATING", "FROM", "PRICES"}
	if search.Layout() == views.LayoutList {
		header = append(header, "DESCRIPTION")
	}
	rows := table{header}
	for _, h := range view.Items {
		from := "-"
		if price, ok := h.CheapestRoom(); ok {
			from = "$" + price.StringFixed(2)
		}
		row := []string{itoa(h.ID), h.Name, h.City, strconv.FormatFloat(h.AverageRating, 'f', 1, 64), from, hotel.PricingRange(h.Rooms)}
		if search.Layout() == views.LayoutList {
			row = append(row, h.Description)
		}
		rows = append(rows, row)
	}
	if err := render(cmd.OutOrStdout(), format, view, rows); err != nil {
		return err
	}
	if format == formatTable {
		fmt.Fprintln(cmd.OutOrStdout(), pageFooter(view))
	}
	return nil
}

func runHotelsGet(cmd *cobra.Command, args []string) error {
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
	h, err := svc.Hotels.FetchHotelByID(cmd.Context(), id)
	if err != nil {
		return err
	}

	rows := table{
		{"NAME", h.Name},
		{"ADDRESS", h.Address + ", " + h.City + ", " + h.Country},
		{"RATING", strconv.FormatFloat(h.AverageRating, 'f', 1, 64)},
		{"CHECK-IN", hotel.FormatAMPM(h.CheckIn)},
		{"CHECK-OUT", hotel.FormatAMPM(h.CheckOut)},
		{"CONTACT", h.Contact},
		{"PRICES", hotel.PricingRange(h.Rooms)},
		{""},
		{"ROOM", "TYPE", "PER NIGHT", "GUESTS", "STATUS"},
	}
	for _, r := range h.Rooms {
		rows = append(rows, []string{itoa(r.ID.RoomID), r.RoomType, "$" + r.PricePerNight.StringFixed(2), strconv.Itoa(r.MaxOccupancy), r.Status})
	}
	return render(cmd.OutOrStdout(), format, h, rows)
}

func runHotelsDestinations(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	svc, err := services(cmd.Context())
	if err != nil {
		return err
	}
	search := views.NewSearchResults(svc.Hotels, svc.Bookings, current.cfg.Pagination.PageSize, current.log)
	search.LoadDestinations(cmd.Context())

	rows := table{{"DESTINATION", "CITY", "COUNTRY", "HOTELS"}}
	for _, d := range search.Destinations() {
		rows = append(rows, []string{d.Key(), d.City, d.Country, strconv.Itoa(d.Count)})
	}
	return render(cmd.OutOrStdout(), format, search.Destinations(), rows)
}

func runHotelsNearby(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	lat, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid latitude %q", args[0])
	}
	lon, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid longitude %q", args[1])
	}
	svc, err := services(cmd.Context())
	if err != nil {
		return err
	}
	hotels, err := svc.Hotels.HotelsNearby(cmd.Context(), lat, lon)
	if err != nil {
		return err
	}

	rows := table{{"ID", "NAME", "CITY", "COUNTRY"}}
	for _, h := range hotels {
		rows = append(rows, []string{itoa(h.ID), h.Name, h.City, h.Country})
	}
	return render(cmd.OutOrStdout(), format, hotels, rows)
}

func runHotelsDelete(cmd *cobra.Command, args []string) error {
	id, err := idArg(args[0])
	if err != nil {
		return err
	}
	svc, err := services(cmd.Context())
	if err != nil {
		return err
	}
	msg, err := svc.Hotels.DeleteHotel(cmd.Context(), id)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}

func idArg(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

func dateFlag(cmd *cobra.Command, name string) (time.Time, error) {
	raw, _ := cmd.Flags().GetString(name)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s %q: want YYYY-MM-DD", name, raw)
	}
	return t, nil
}
