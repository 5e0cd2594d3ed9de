package apiclient

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/hotelhub/hotel-booking/internal/domain/booking"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// Inputs checked before a request is built.

type stayQuery struct {
	HotelID  int64     `json:"hotelId" validate:"gt=0"`
	RoomID   int64     `json:"roomId" validate:"gt=0"`
	CheckIn  time.Time `json:"checkIn" validate:"required"`
	CheckOut time.Time `json:"checkOut" validate:"required,gtfield=CheckIn"`
}

type dateRange struct {
	Start time.Time `json:"startDate" validate:"required"`
	End   time.Time `json:"endDate" validate:"required,gtefield=Start"`
}

type coordinates struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

type statusUpdate struct {
	Status booking.Status `json:"status" validate:"oneof=PENDING CONFIRMED CANCELLED"`
}

// validateInput reports the first invalid field as a request error; no
// request is sent.
func validateInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return requestError(err)
	}
	fe := fieldErrs[0]
	return requestError(fmt.Errorf("%s %s", fe.Field(), describe(fe)))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "gtfield":
		return "must be after " + fe.Param()
	case "gtefield":
		return "must not be before " + fe.Param()
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "is invalid"
	}
}
