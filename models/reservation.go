package models

import (
	"strings"
	"time"
)

type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
)

// ParseReservationStatus maps free-form input to a known status;
// unrecognized values map to the empty status.
func ParseReservationStatus(input string) ReservationStatus {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "pending":
		return StatusPending
	case "confirmed":
		return StatusConfirmed
	case "cancelled", "canceled":
		return StatusCancelled
	case "completed":
		return StatusCompleted
	default:
		return ""
	}
}

// Reservation is a hotel booking with a status lifecycle:
// pending -> confirmed -> completed, with cancellation possible before
// completion. New reservations always start pending.
type Reservation struct {
	ID             string            `json:"id" db:"id"`
	GuestName      string            `json:"guest_name" db:"guest_name"`
	GuestEmail     string            `json:"guest_email" db:"guest_email"`
	HotelName      string            `json:"hotel_name" db:"hotel_name"`
	RoomType       string            `json:"room_type" db:"room_type"`
	CheckInDate    time.Time         `json:"check_in_date" db:"check_in_date"`
	CheckOutDate   time.Time         `json:"check_out_date" db:"check_out_date"`
	NumberOfGuests int               `json:"number_of_guests" db:"number_of_guests"`
	Status         ReservationStatus `json:"status" db:"status"`
	TotalPrice     float64           `json:"total_price" db:"total_price"`
}

// Nights returns the length of the stay in nights.
func (r *Reservation) Nights() int {
	return int(r.CheckOutDate.Sub(r.CheckInDate).Hours() / 24)
}

// PricePerNight returns the total price spread over the stay, or the
// total itself for a degenerate zero-night range.
func (r *Reservation) PricePerNight() float64 {
	nights := r.Nights()
	if nights <= 0 {
		return r.TotalPrice
	}
	return r.TotalPrice / float64(nights)
}
