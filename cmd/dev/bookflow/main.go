// bookflow walks the booking wizard end-to-end against a real backend from
// the terminal: pick a hotel and room, step through validation the same way
// the browser does, then submit. Useful for smoke-testing a backend without
// the frontend running.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"stayfront/internal/bookingflow"
	"stayfront/internal/session"
	"stayfront/pkg/backendapi"
	"stayfront/pkg/config"
)

func main() {
	var (
		email    = flag.String("email", "", "account email (omit for an anonymous dry run)")
		password = flag.String("password", "", "account password")
		hotelID  = flag.String("hotel", "", "hotel id (omit to list hotels and exit)")
		roomID   = flag.String("room", "", "room type id (omit to list room types and exit)")
		checkIn  = flag.String("checkin", "", "check-in date YYYY-MM-DD")
		checkOut = flag.String("checkout", "", "check-out date YYYY-MM-DD")
		guests   = flag.Int("guests", 2, "guest count")
		method   = flag.String("method", string(bookingflow.PayAtHotel), "payment method")
		submit   = flag.Bool("submit", false, "actually create the booking")
	)
	flag.Parse()

	cfg := config.Load()
	ctx := context.Background()

	store := session.NewMemoryStore()
	if err := store.Put(ctx, &session.Session{ID: "bookflow-cli"}); err != nil {
		fatal("session: %v", err)
	}
	client := backendapi.New(cfg.Backend.BaseURL, session.Credentials(store, "bookflow-cli"))

	if *hotelID == "" {
		hotels, err := client.Hotels(ctx, backendapi.HotelListParams{PageSize: 20})
		if err != nil {
			fatal("list hotels: %v", err)
		}
		for _, h := range hotels.Items {
			fmt.Printf("%s\t%s (%s)\n", h.ID, h.Name, h.City)
		}
		return
	}

	if *roomID == "" {
		rooms, err := client.RoomTypes(ctx, *hotelID)
		if err != nil {
			fatal("list room types: %v", err)
		}
		for _, rt := range rooms {
			fmt.Printf("%s\t%s\tsleeps %d\t%s/night\n", rt.ID, rt.Name, rt.MaxOccupancy, rt.PricePerNight)
		}
		return
	}

	rt, err := client.RoomType(ctx, *roomID)
	if err != nil {
		fatal("room type: %v", err)
	}

	// Step through the wizard exactly as the browser would.
	flow := bookingflow.New()
	set := func(field, value string) {
		if err := flow.Update(field, value); err != nil {
			fatal("update %s: %v", field, err)
		}
	}
	set("hotelId", *hotelID)
	set("roomTypeId", *roomID)
	set("checkInDate", *checkIn)
	set("checkOutDate", *checkOut)
	set("guests", fmt.Sprintf("%d", *guests))
	set("maxOccupancy", fmt.Sprintf("%d", rt.MaxOccupancy))
	set("pricePerNight", rt.PricePerNight.String())
	flow.RecalcTotal()

	if errs := flow.ValidateStep(bookingflow.StepReview); len(errs) != 0 {
		fatal("step 1 invalid: %v", errs)
	}
	flow.Next()
	flow.Next()
	set("paymentMethod", *method)
	if errs := flow.ValidateStep(bookingflow.StepPayment); len(errs) != 0 {
		fatal("step 3 invalid: %v", errs)
	}
	flow.Next()
	if errs := flow.ValidateStep(bookingflow.StepConfirm); len(errs) != 0 {
		fatal("confirm invalid: %v", errs)
	}

	fmt.Printf("draft ok: %d nights, total %s\n", flow.Draft.Nights(), flow.Draft.TotalAmount)

	available, err := client.CheckAvailability(ctx, *roomID, *checkIn, *checkOut)
	if err != nil {
		fatal("availability: %v", err)
	}
	fmt.Printf("available: %v\n", available)

	if !*submit {
		return
	}
	if *email == "" {
		fatal("submit requires -email/-password")
	}
	if _, err := client.Login(ctx, *email, *password); err != nil {
		fatal("login: %v", err)
	}

	start := time.Now()
	b, err := client.CreateBooking(ctx, backendapi.CreateBookingRequest{
		HotelID:       flow.Draft.HotelID,
		RoomTypeID:    flow.Draft.RoomTypeID,
		CheckInDate:   flow.Draft.CheckInDate,
		CheckOutDate:  flow.Draft.CheckOutDate,
		Guests:        flow.Draft.Guests,
		TotalAmount:   flow.Draft.TotalAmount,
		PaymentMethod: flow.Draft.PaymentMethod,
	})
	if err != nil {
		if backendapi.IsConflict(err) {
			fatal("conflict: %s", backendapi.UserMessage(err))
		}
		fatal("create: %v", err)
	}
	fmt.Printf("booking %s created (%s) in %s\n", b.ID, b.Status, time.Since(start).Round(time.Millisecond))
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
