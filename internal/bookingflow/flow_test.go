package bookingflow

import (
	"errors"
	"testing"
	"time"
)

func TestSetStep_Clamps(t *testing.T) {
	f := New()
	for _, tt := range []struct{ in, want int }{
		{-100, StepReview},
		{0, StepReview},
		{1, 1},
		{3, 3},
		{4, 4},
		{5, StepConfirm},
		{9999, StepConfirm},
	} {
		f.SetStep(tt.in)
		if f.Step != tt.want {
			t.Fatalf("SetStep(%d): expected %d, got %d", tt.in, tt.want, f.Step)
		}
	}
}

func TestNextPrev_StayInRange(t *testing.T) {
	f := New()
	for i := 0; i < 10; i++ {
		f.Prev()
	}
	if f.Step != StepReview {
		t.Fatalf("expected floor at %d, got %d", StepReview, f.Step)
	}
	for i := 0; i < 10; i++ {
		f.Next()
	}
	if f.Step != StepConfirm {
		t.Fatalf("expected ceiling at %d, got %d", StepConfirm, f.Step)
	}
}

func TestUpdate_MarksTouchedAndDoesNotValidate(t *testing.T) {
	f := New()
	if err := f.Update("checkInDate", "2020-01-01"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !f.Touched["checkInDate"] {
		t.Fatalf("expected field marked touched")
	}
	if len(f.Errors) != 0 {
		t.Fatalf("Update must not validate, got %v", f.Errors)
	}
}

func TestUpdate_UnknownFieldAndBadCoercion(t *testing.T) {
	f := New()
	if err := f.Update("favouriteColor", "blue"); err == nil {
		t.Fatalf("expected error for unknown field")
	}
	if err := f.Update("guests", "many"); err == nil {
		t.Fatalf("expected error for non-numeric guests")
	}
	if err := f.Update("pricePerNight", "cheap"); err == nil {
		t.Fatalf("expected error for non-decimal price")
	}
}

func TestUpdate_RefusedWhileLoading(t *testing.T) {
	f := New()
	f.Loading = true
	if err := f.Update("guests", "3"); !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
	if f.Touched["guests"] {
		t.Fatalf("locked update must not touch fields")
	}
}

func TestReset_RestoresInitialState(t *testing.T) {
	f := New()
	f.today = func() time.Time { return testToday }
	f.SetStep(3)
	_ = f.Update("hotelId", "hotel-1")
	_ = f.Update("guests", "0")
	f.ValidateStep(StepReview)
	f.Loading = true

	f.Reset()

	if f.Step != StepReview {
		t.Fatalf("expected step 1, got %d", f.Step)
	}
	if len(f.Errors) != 0 || len(f.Touched) != 0 {
		t.Fatalf("expected empty errors/touched, got %v / %v", f.Errors, f.Touched)
	}
	if f.Loading {
		t.Fatalf("expected loading cleared")
	}
	if f.Draft.HotelID != "" {
		t.Fatalf("expected fresh draft, got %+v", f.Draft)
	}
	// The injected clock survives a reset.
	if f.now() != testToday {
		t.Fatalf("expected injected clock retained")
	}
}

func TestRecalcTotal(t *testing.T) {
	f := New()
	_ = f.Update("checkInDate", "2025-06-20")
	_ = f.Update("checkOutDate", "2025-06-23")
	_ = f.Update("pricePerNight", "120.50")

	f.RecalcTotal()
	if got := f.Draft.TotalAmount.String(); got != "361.5" {
		t.Fatalf("expected 361.5, got %s", got)
	}
}

func TestSnapshotRestore_RoundTrip(t *testing.T) {
	f := New()
	f.SetStep(3)
	_ = f.Update("hotelId", "hotel-1")
	_ = f.Update("roomTypeId", "room-2")
	_ = f.Update("checkInDate", "2025-06-20")
	_ = f.Update("guests", "2")
	f.ValidateStep(StepConfirm) // dirty error state should not survive restore

	data, err := f.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	g := New()
	if err := g.Restore(data); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if g.Step != 3 {
		t.Fatalf("expected step 3, got %d", g.Step)
	}
	if g.Draft.HotelID != "hotel-1" || g.Draft.RoomTypeID != "room-2" || g.Draft.Guests != 2 {
		t.Fatalf("draft not restored: %+v", g.Draft)
	}
	if len(g.Errors) != 0 || len(g.Touched) != 0 || g.Loading {
		t.Fatalf("restore must start clean: %v %v %v", g.Errors, g.Touched, g.Loading)
	}
}

func TestRestore_RejectsGarbageAndClampsStep(t *testing.T) {
	f := New()
	if err := f.Restore([]byte("{not json")); err == nil {
		t.Fatalf("expected error for malformed snapshot")
	}

	if err := f.Restore([]byte(`{"draft":{},"step":42}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Step != StepConfirm {
		t.Fatalf("expected clamped step, got %d", f.Step)
	}
}
