package bookingflow

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var testToday = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func validDraft() Draft {
	return Draft{
		HotelID:       "hotel-1",
		RoomTypeID:    "room-1",
		CheckInDate:   "2025-06-20",
		CheckOutDate:  "2025-06-23",
		Guests:        2,
		MaxOccupancy:  4,
		PricePerNight: decimal.RequireFromString("120.00"),
		PaymentMethod: string(PayVNPay),
	}
}

func TestValidateStep1_ValidDraftPasses(t *testing.T) {
	errs := ValidateStep(validDraft(), StepReview, testToday)
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateStep1_PastCheckIn(t *testing.T) {
	d := validDraft()
	d.CheckInDate = "2025-01-01"
	d.CheckOutDate = "2025-01-03"

	errs := ValidateStep(d, StepReview, testToday)
	if errs["checkInDate"] == "" {
		t.Fatalf("expected checkInDate error, got %v", errs)
	}
}

func TestValidateStep1_TodayCheckInIsAllowed(t *testing.T) {
	d := validDraft()
	d.CheckInDate = "2025-06-15" // same calendar day as the clock
	d.CheckOutDate = "2025-06-16"

	errs := ValidateStep(d, StepReview, testToday)
	if errs["checkInDate"] != "" {
		t.Fatalf("booking for today must be allowed, got %v", errs)
	}
}

func TestValidateStep1_CheckOutNotAfterCheckIn(t *testing.T) {
	d := validDraft()
	d.CheckInDate = "2025-06-16" // tomorrow
	d.CheckOutDate = "2025-06-16"

	errs := ValidateStep(d, StepReview, testToday)
	if errs["checkOutDate"] == "" {
		t.Fatalf("expected checkout-after-checkin error, got %v", errs)
	}
}

func TestValidateStep1_StayTooLong(t *testing.T) {
	d := validDraft()
	d.CheckInDate = "2025-06-20"
	d.CheckOutDate = "2025-07-21" // 31 nights

	errs := ValidateStep(d, StepReview, testToday)
	if errs["checkOutDate"] == "" {
		t.Fatalf("expected max-stay error, got %v", errs)
	}

	d.CheckOutDate = "2025-07-20" // exactly 30 nights
	errs = ValidateStep(d, StepReview, testToday)
	if errs["checkOutDate"] != "" {
		t.Fatalf("30 nights must be allowed, got %v", errs)
	}
}

func TestValidateStep1_GuestBounds(t *testing.T) {
	d := validDraft()
	d.Guests = 0
	errs := ValidateStep(d, StepReview, testToday)
	if errs["guests"] == "" {
		t.Fatalf("expected guests-minimum error, got %v", errs)
	}

	d.Guests = d.MaxOccupancy + 1
	errs = ValidateStep(d, StepReview, testToday)
	if errs["guests"] == "" {
		t.Fatalf("expected capacity error, got %v", errs)
	}

	// Unknown occupancy: only the lower bound applies.
	d.MaxOccupancy = 0
	d.Guests = 9
	errs = ValidateStep(d, StepReview, testToday)
	if errs["guests"] != "" {
		t.Fatalf("unexpected guests error without occupancy: %v", errs)
	}
}

func TestValidateStep1_MissingIDsAndZeroTotal(t *testing.T) {
	d := validDraft()
	d.HotelID = " "
	d.RoomTypeID = ""
	d.PricePerNight = decimal.Zero
	d.TotalAmount = decimal.Zero

	errs := ValidateStep(d, StepReview, testToday)
	for _, key := range []string{"hotelId", "roomTypeId", "totalAmount"} {
		if errs[key] == "" {
			t.Fatalf("expected %s error, got %v", key, errs)
		}
	}
}

func TestValidateStep3_PaymentMethod(t *testing.T) {
	d := validDraft()
	d.PaymentMethod = ""
	if errs := ValidateStep(d, StepPayment, testToday); errs["paymentMethod"] == "" {
		t.Fatalf("expected missing-method error, got %v", errs)
	}

	d.PaymentMethod = "CRYPTO"
	if errs := ValidateStep(d, StepPayment, testToday); errs["paymentMethod"] == "" {
		t.Fatalf("expected unknown-method error, got %v", errs)
	}

	// Known but disabled.
	d.PaymentMethod = string(BankTransfer)
	if errs := ValidateStep(d, StepPayment, testToday); errs["paymentMethod"] == "" {
		t.Fatalf("expected disabled-method error, got %v", errs)
	}

	d.PaymentMethod = string(PayAtHotel)
	if errs := ValidateStep(d, StepPayment, testToday); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateStep2_GuestInfo(t *testing.T) {
	d := validDraft()
	d.GuestName = "Linh Tran"
	d.GuestEmail = "linh@example.com"
	if errs := ValidateStep(d, StepGuestInfo, testToday); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}

	d.GuestEmail = "not-an-email"
	if errs := ValidateStep(d, StepGuestInfo, testToday); errs["guestEmail"] == "" {
		t.Fatalf("expected email error, got %v", errs)
	}

	d.GuestEmail = "linh@example.com"
	d.SpecialRequests = string(make([]byte, MaxSpecialRequestsLen+1))
	if errs := ValidateStep(d, StepGuestInfo, testToday); errs["specialRequests"] == "" {
		t.Fatalf("expected special-requests length error, got %v", errs)
	}
}

func TestValidateStep4_UnionOfStepsOneAndThree(t *testing.T) {
	d := validDraft()
	d.CheckOutDate = d.CheckInDate // step 1 violation
	d.PaymentMethod = ""           // step 3 violation
	d.GuestName = ""               // step 2 violation, must NOT surface

	errs := ValidateStep(d, StepConfirm, testToday)
	if errs["checkOutDate"] == "" {
		t.Fatalf("expected step-1 error at confirm, got %v", errs)
	}
	if errs["paymentMethod"] == "" {
		t.Fatalf("expected step-3 error at confirm, got %v", errs)
	}
	if errs["guestName"] != "" {
		t.Fatalf("step 2 must not be revalidated at confirm, got %v", errs)
	}
}

func TestValidateStep_Idempotent(t *testing.T) {
	d := validDraft()
	d.Guests = 0
	d.PaymentMethod = "CRYPTO"

	first := ValidateStep(d, StepConfirm, testToday)
	for i := 0; i < 5; i++ {
		if got := ValidateStep(d, StepConfirm, testToday); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %v vs %v", i, got, first)
		}
	}
}
