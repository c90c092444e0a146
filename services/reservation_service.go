package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bookingmx/cityconnect/models"
	"github.com/bookingmx/cityconnect/repository"
)

// Sentinel errors for reservation operations.
var (
	ErrInvalidReservation  = errors.New("invalid reservation")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrReservationExists   = errors.New("reservation already exists")
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

const maxGuests = 10

// ReservationService owns the reservation lifecycle and all of its
// validation rules; the repository only stores what the service accepts.
type ReservationService struct {
	repo repository.ReservationRepository
}

func NewReservationService(repo repository.ReservationRepository) *ReservationService {
	return &ReservationService{repo: repo}
}

// CreateReservation validates and stores a new reservation. An empty id
// gets a generated UUID; an explicit id must not already exist. The
// reservation always starts pending.
func (s *ReservationService) CreateReservation(reservation *models.Reservation) (*models.Reservation, error) {
	if err := s.validate(reservation); err != nil {
		return nil, err
	}

	if reservation.ID == "" {
		reservation.ID = uuid.NewString()
	}

	exists, err := s.repo.ExistsByID(reservation.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: id %q", ErrReservationExists, reservation.ID)
	}

	reservation.Status = models.StatusPending
	return s.repo.Save(reservation)
}

// UpdateReservation replaces the stored data of an active reservation.
// Cancelled and completed reservations cannot be updated.
func (s *ReservationService) UpdateReservation(id string, updated *models.Reservation) (*models.Reservation, error) {
	existing, err := s.mustFind(id)
	if err != nil {
		return nil, err
	}

	if existing.Status == models.StatusCancelled {
		return nil, fmt.Errorf("%w: a cancelled reservation cannot be updated", ErrInvalidReservation)
	}
	if existing.Status == models.StatusCompleted {
		return nil, fmt.Errorf("%w: a completed reservation cannot be updated", ErrInvalidReservation)
	}

	if err := s.validate(updated); err != nil {
		return nil, err
	}
	updated.ID = id
	updated.Status = existing.Status
	return s.repo.Update(updated)
}

// ConfirmReservation moves a pending reservation to confirmed.
func (s *ReservationService) ConfirmReservation(id string) (*models.Reservation, error) {
	reservation, err := s.mustFind(id)
	if err != nil {
		return nil, err
	}
	if reservation.Status != models.StatusPending {
		return nil, fmt.Errorf("%w: only pending reservations can be confirmed", ErrInvalidReservation)
	}
	reservation.Status = models.StatusConfirmed
	return s.repo.Update(reservation)
}

// CancelReservation cancels a reservation that is not already cancelled
// or completed.
func (s *ReservationService) CancelReservation(id string) (*models.Reservation, error) {
	reservation, err := s.mustFind(id)
	if err != nil {
		return nil, err
	}
	if reservation.Status == models.StatusCancelled {
		return nil, fmt.Errorf("%w: the reservation has already been cancelled", ErrInvalidReservation)
	}
	if reservation.Status == models.StatusCompleted {
		return nil, fmt.Errorf("%w: a completed reservation cannot be cancelled", ErrInvalidReservation)
	}
	reservation.Status = models.StatusCancelled
	return s.repo.Update(reservation)
}

// CompleteReservation moves a confirmed reservation to completed.
func (s *ReservationService) CompleteReservation(id string) (*models.Reservation, error) {
	reservation, err := s.mustFind(id)
	if err != nil {
		return nil, err
	}
	if reservation.Status != models.StatusConfirmed {
		return nil, fmt.Errorf("%w: only confirmed reservations can be completed", ErrInvalidReservation)
	}
	reservation.Status = models.StatusCompleted
	return s.repo.Update(reservation)
}

// FindReservationByID looks up a single reservation.
func (s *ReservationService) FindReservationByID(id string) (*models.Reservation, error) {
	return s.mustFind(id)
}

// FindReservationsByGuestName lists the reservations of a guest.
func (s *ReservationService) FindReservationsByGuestName(guestName string) ([]*models.Reservation, error) {
	if isBlank(guestName) {
		return nil, fmt.Errorf("%w: the guest name cannot be empty", ErrInvalidReservation)
	}
	return s.repo.FindByGuestName(guestName)
}

// FindReservationsByEmail lists the reservations made with an email
// address, validating its format first.
func (s *ReservationService) FindReservationsByEmail(email string) ([]*models.Reservation, error) {
	if isBlank(email) {
		return nil, fmt.Errorf("%w: the email cannot be empty", ErrInvalidReservation)
	}
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("%w: the email format is invalid", ErrInvalidReservation)
	}
	return s.repo.FindByGuestEmail(email)
}

// GetAllReservations lists every stored reservation.
func (s *ReservationService) GetAllReservations() ([]*models.Reservation, error) {
	return s.repo.FindAll()
}

// CalculateTotalPrice computes the price of a stay from its nightly rate.
func (s *ReservationService) CalculateTotalPrice(checkIn, checkOut time.Time, pricePerNight float64) (float64, error) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return 0, fmt.Errorf("%w: dates cannot be empty", ErrInvalidReservation)
	}
	if !checkIn.Before(checkOut) {
		return 0, fmt.Errorf("%w: the check-in date must be earlier than the check-out date", ErrInvalidReservation)
	}
	if pricePerNight <= 0 {
		return 0, fmt.Errorf("%w: the price per night must be greater than 0", ErrInvalidReservation)
	}
	nights := checkOut.Sub(checkIn).Hours() / 24
	return nights * pricePerNight, nil
}

func (s *ReservationService) mustFind(id string) (*models.Reservation, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: the reservation id cannot be empty", ErrInvalidReservation)
	}
	reservation, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, fmt.Errorf("%w: id %q", ErrReservationNotFound, id)
	}
	return reservation, nil
}

func (s *ReservationService) validate(reservation *models.Reservation) error {
	if reservation == nil {
		return fmt.Errorf("%w: the reservation cannot be nil", ErrInvalidReservation)
	}
	if isBlank(reservation.GuestName) {
		return fmt.Errorf("%w: guest name is required", ErrInvalidReservation)
	}
	if isBlank(reservation.GuestEmail) {
		return fmt.Errorf("%w: guest email address is required", ErrInvalidReservation)
	}
	if !emailPattern.MatchString(reservation.GuestEmail) {
		return fmt.Errorf("%w: the email format is invalid", ErrInvalidReservation)
	}
	if isBlank(reservation.HotelName) {
		return fmt.Errorf("%w: the hotel name is required", ErrInvalidReservation)
	}
	if isBlank(reservation.RoomType) {
		return fmt.Errorf("%w: the room type is required", ErrInvalidReservation)
	}
	if reservation.CheckInDate.IsZero() {
		return fmt.Errorf("%w: the check-in date is required", ErrInvalidReservation)
	}
	if reservation.CheckOutDate.IsZero() {
		return fmt.Errorf("%w: the check-out date is required", ErrInvalidReservation)
	}
	if reservation.CheckInDate.Before(today()) {
		return fmt.Errorf("%w: the check-in date cannot be earlier than today", ErrInvalidReservation)
	}
	if !reservation.CheckInDate.Before(reservation.CheckOutDate) {
		return fmt.Errorf("%w: the check-in date must be earlier than the check-out date", ErrInvalidReservation)
	}
	if reservation.NumberOfGuests <= 0 {
		return fmt.Errorf("%w: the number of guests must be greater than 0", ErrInvalidReservation)
	}
	if reservation.NumberOfGuests > maxGuests {
		return fmt.Errorf("%w: the maximum number of guests is %d", ErrInvalidReservation, maxGuests)
	}
	if reservation.TotalPrice <= 0 {
		return fmt.Errorf("%w: the total price must be greater than 0", ErrInvalidReservation)
	}
	return nil
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
