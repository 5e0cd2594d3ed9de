package apiclient

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/hotelhub/hotel-booking/internal/config"
	"github.com/hotelhub/hotel-booking/internal/infrastructure/cache"
	"github.com/hotelhub/hotel-booking/internal/infrastructure/observability"
)

// Services bundles one API per backend.
type Services struct {
	Hotels        *HotelAPI
	Bookings      *BookingAPI
	Notifications *NotificationAPI
	Payments      *PaymentAPI
	Users         *UserAPI
}

// NewServices builds the API clients from configuration. provider may be nil,
// in which case the global OpenTelemetry providers are used.
func NewServices(cfg *config.Config, provider *observability.Provider, log zerolog.Logger) (*Services, error) {
	newClient := func(service, baseURL string) *Client {
		opts := Options{
			Service:    service,
			BaseURL:    baseURL,
			Timeout:    cfg.HTTP.Timeout,
			RetryCount: cfg.HTTP.RetryCount,
			Logger:     log,
		}
		if provider != nil {
			opts.Tracer = provider.Tracer
			opts.Meter = provider.Meter
			opts.Sanitizer = provider.Sanitizer
		}
		return New(opts)
	}

	hotels, err := NewHotelAPI(newClient("hotel", cfg.Services.HotelURL), cache.Config{
		Backend:   cfg.Cache.Backend,
		MaxSize:   cfg.Cache.Size,
		TTL:       cfg.Cache.TTL,
		RedisURL:  cfg.Cache.RedisURL,
		KeyPrefix: cfg.ServiceName + ":",
	})
	if err != nil {
		return nil, fmt.Errorf("create hotel api: %w", err)
	}

	return &Services{
		Hotels:        hotels,
		Bookings:      NewBookingAPI(newClient("booking", cfg.Services.BookingURL)),
		Notifications: NewNotificationAPI(newClient("notification", cfg.Services.NotificationURL)),
		Payments:      NewPaymentAPI(newClient("payment", cfg.Services.PaymentURL)),
		Users:         NewUserAPI(newClient("user", cfg.Services.UserURL)),
	}, nil
}
