package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/Eursukkul/restaurant-booking/internal/clientview"
	"github.com/Eursukkul/restaurant-booking/internal/dto"
	"github.com/Eursukkul/restaurant-booking/pkg/client"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var apiURL string

	root := &cobra.Command{
		Use:           "tablebook",
		Short:         "Search and book restaurant tables",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&apiURL, "api", envOr("TABLEBOOK_API", client.DefaultBaseURL), "reservation API base URL")

	newSession := func() *clientview.Session {
		return clientview.NewSession(client.New(apiURL), clientview.DemoBookings())
	}

	root.AddCommand(
		newSearchCmd(newSession),
		newBookCmd(newSession),
		newDashboardCmd(newSession),
	)
	return root
}

func newSearchCmd(newSession func() *clientview.Session) *cobra.Command {
	var date, clock string
	var party int

	cmd := &cobra.Command{
		Use:   "search",
		Short: "List restaurants with room for the party",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession()
			if err := s.Search(cmd.Context(), date, clock, party); err != nil {
				return err
			}
			printResults(cmd.OutOrStdout(), date, clock, party, s.Results())
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", time.Now().Format("2006-01-02"), "date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&clock, "time", "19:00", "time (HH:MM)")
	cmd.Flags().IntVar(&party, "party", 2, "party size")
	return cmd
}

func newBookCmd(newSession func() *clientview.Session) *cobra.Command {
	var (
		restaurantID uint
		name         string
		party        int
		date, clock  string
		deposit      float64
	)

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book a table",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession()
			s.SetCustomer(name, deposit)
			if err := s.Search(cmd.Context(), date, clock, party); err != nil {
				return err
			}

			// The server accepts bookings for restaurants the search did not list.
			restaurantName := fmt.Sprintf("restaurant #%d", restaurantID)
			for _, r := range s.Results() {
				if r.ID == restaurantID {
					restaurantName = r.Name
					break
				}
			}

			booking, err := s.Book(cmd.Context(), restaurantID, restaurantName)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s Your table at %s is reserved for %d on %s %s.\n",
				dto.BookingSuccessMessage, booking.Restaurant, booking.Party, booking.Date, booking.Time)
			printResults(out, date, clock, party, s.Results())
			fmt.Fprintln(out)
			printBookings(out, s.Bookings())
			return nil
		},
	}
	cmd.Flags().UintVar(&restaurantID, "restaurant", 0, "restaurant id")
	cmd.Flags().StringVar(&name, "name", clientview.DemoCustomerName, "customer name")
	cmd.Flags().IntVar(&party, "party", 2, "party size")
	cmd.Flags().StringVar(&date, "date", time.Now().Format("2006-01-02"), "date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&clock, "time", "19:00", "time (HH:MM)")
	cmd.Flags().Float64Var(&deposit, "deposit", clientview.DemoDeposit, "deposit amount")
	_ = cmd.MarkFlagRequired("restaurant")
	return cmd
}

func newDashboardCmd(newSession func() *clientview.Session) *cobra.Command {
	var cancelID int

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show my bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession()
			if err := s.Show(clientview.ScreenDashboard); err != nil {
				return err
			}
			if cancelID != 0 {
				if err := s.Cancel(cancelID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Booking #%d cancelled.\n", cancelID)
			}
			printBookings(cmd.OutOrStdout(), s.Bookings())
			return nil
		},
	}
	cmd.Flags().IntVar(&cancelID, "cancel", 0, "cancel a confirmed booking by id")
	return cmd
}

func printResults(w io.Writer, date, clock string, party int, rows []dto.AvailableRestaurantResponse) {
	fmt.Fprintf(w, "Available reservations for %d guests, %s %s\n", party, date, clock)
	if len(rows) == 0 {
		fmt.Fprintln(w, "No restaurants available for this slot.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCUISINE\tAVAILABLE")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d/%d\n", r.ID, r.Name, r.Cuisine, r.AvailableSlots, r.Capacity)
	}
	tw.Flush()
}

func printBookings(w io.Writer, bookings []clientview.LocalBooking) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tRESTAURANT\tDATE\tTIME\tPARTY\tSTATUS")
	for _, b := range bookings {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\n", b.ID, b.Restaurant, b.Date, b.Time, b.Party, b.Status)
	}
	tw.Flush()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
