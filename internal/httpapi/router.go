package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"stayfront/internal/admin"
	"stayfront/internal/api"
	"stayfront/internal/auth"
	"stayfront/internal/booking"
	"stayfront/internal/bookingflow"
	"stayfront/internal/hotel"
	"stayfront/internal/host"
	"stayfront/internal/review"
	"stayfront/internal/session"
	"stayfront/internal/upload"
	"stayfront/pkg/config"
)

type Dependencies struct {
	Cfg      config.Config
	Sessions session.Store
}

func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	clients := api.NewBackendClients(deps.Cfg, deps.Sessions)

	authHandlers := auth.Handlers{Sessions: deps.Sessions, Clients: clients}
	hotelHandlers := hotel.Handlers{Clients: clients}
	bookingHandlers := booking.Handlers{Clients: clients}
	flowHandlers := bookingflow.Handlers{Sessions: deps.Sessions, Clients: clients}
	reviewHandlers := review.Handlers{Clients: clients}
	hostHandlers := host.Handlers{Clients: clients}
	adminHandlers := admin.Handlers{Clients: clients}
	uploadHandlers := upload.Handlers{Clients: clients}

	// v1
	r.Route("/v1", func(r chi.Router) {
		r.Use(api.CORSMiddleware(api.CORSOptions{
			AllowedOrigins: deps.Cfg.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
			MaxAgeSeconds:  600,
		}))
		r.Use(api.SessionMiddleware(deps.Cfg, deps.Sessions))

		r.Post("/auth/login", authHandlers.Login)
		r.Post("/auth/logout", authHandlers.Logout)
		r.Get("/auth/me", authHandlers.Me)

		// Browsing is anonymous.
		r.Get("/hotels", hotelHandlers.List)
		r.Get("/hotels/{id}", hotelHandlers.Get)
		r.Get("/hotels/{id}/room-types", hotelHandlers.RoomTypes)
		r.Get("/hotels/{id}/reviews", reviewHandlers.ListForHotel)
		r.Get("/bookings/check-availability", bookingHandlers.CheckAvailability)

		// Wizard: validation and the pending snapshot are open so steps 1-2
		// work before sign-in; submission enforces auth itself (it parks the
		// draft instead of failing it).
		r.Route("/booking-flow", func(r chi.Router) {
			r.Post("/validate", flowHandlers.Validate)
			r.Post("/quote", flowHandlers.Quote)
			r.Get("/payment-methods", flowHandlers.PaymentMethods)
			r.Put("/pending", flowHandlers.SavePending)
			r.Get("/pending", flowHandlers.ResumePending)
			r.Delete("/pending", flowHandlers.ClearPending)
			r.Post("/submit", flowHandlers.Submit)
		})

		// Guest account area.
		r.Group(func(r chi.Router) {
			r.Use(api.RequireAuth)
			r.Get("/bookings/my", bookingHandlers.MyList)
			r.Get("/bookings/my/{id}", bookingHandlers.MyGet)
			r.Patch("/bookings/my/{id}/cancel", bookingHandlers.MyCancel)
			r.Post("/bookings/my/{id}/payment-url", bookingHandlers.PaymentURL)

			r.Get("/bookings/my/{id}/payment-status", bookingHandlers.PaymentStatus)
			r.Post("/booking-flow/voucher", flowHandlers.Voucher)

			r.Post("/reviews", reviewHandlers.Create)
			r.Put("/reviews/{id}", reviewHandlers.Update)
			r.Delete("/reviews/{id}", reviewHandlers.Delete)

			r.Post("/uploads", uploadHandlers.RequestTicket)
		})

		// Host dashboard.
		r.Group(func(r chi.Router) {
			r.Use(api.RequireRole("HOST"))
			r.Get("/host/bookings", hostHandlers.List)
			r.Patch("/host/bookings/{id}/confirm", hostHandlers.Confirm)
			r.Patch("/host/bookings/{id}/cancel", hostHandlers.Cancel)
			r.Patch("/host/bookings/{id}/complete", hostHandlers.Complete)
			r.Patch("/host/bookings/{id}/confirm-payment", hostHandlers.ConfirmPayment)
		})

		// Admin dashboard.
		r.Group(func(r chi.Router) {
			r.Use(api.RequireRole("ADMIN"))
			r.Get("/admin/bookings", adminHandlers.List)
			r.Put("/admin/bookings/{id}", adminHandlers.Update)
			r.Delete("/admin/bookings/{id}", adminHandlers.Delete)
			r.Get("/admin/revenue", adminHandlers.Revenue)
			r.Get("/admin/bookings/export", adminHandlers.ExportCSV)
		})
	})

	return r
}
