package models

import "time"

// ReservationRequest is the payload for creating or updating a
// reservation. Dates are plain dates serialized as RFC 3339 timestamps.
type ReservationRequest struct {
	GuestName      string    `json:"guest_name"`
	GuestEmail     string    `json:"guest_email"`
	HotelName      string    `json:"hotel_name"`
	RoomType       string    `json:"room_type"`
	CheckInDate    time.Time `json:"check_in_date"`
	CheckOutDate   time.Time `json:"check_out_date"`
	NumberOfGuests int       `json:"number_of_guests"`
	TotalPrice     float64   `json:"total_price"`
}

// ToReservation builds the entity for the service layer; the service
// assigns id and initial status.
func (r ReservationRequest) ToReservation() *Reservation {
	return &Reservation{
		GuestName:      r.GuestName,
		GuestEmail:     r.GuestEmail,
		HotelName:      r.HotelName,
		RoomType:       r.RoomType,
		CheckInDate:    r.CheckInDate,
		CheckOutDate:   r.CheckOutDate,
		NumberOfGuests: r.NumberOfGuests,
		TotalPrice:     r.TotalPrice,
	}
}
