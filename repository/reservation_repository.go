package repository

import (
	"sort"
	"sync"

	"github.com/bookingmx/cityconnect/models"
)

// ReservationRepository is the persistence boundary for reservations.
// FindByID returns (nil, nil) when no reservation exists with the id.
type ReservationRepository interface {
	Save(reservation *models.Reservation) (*models.Reservation, error)
	Update(reservation *models.Reservation) (*models.Reservation, error)
	FindByID(id string) (*models.Reservation, error)
	FindByGuestName(guestName string) ([]*models.Reservation, error)
	FindByGuestEmail(email string) ([]*models.Reservation, error)
	FindByHotelName(hotelName string) ([]*models.Reservation, error)
	FindAll() ([]*models.Reservation, error)
	DeleteByID(id string) error
	ExistsByID(id string) (bool, error)
	Count() (int64, error)
}

// MemoryReservationRepository keeps reservations in memory, for tests
// and for running the server without a database.
type MemoryReservationRepository struct {
	mu           sync.RWMutex
	reservations map[string]models.Reservation
}

func NewMemoryReservationRepository() *MemoryReservationRepository {
	return &MemoryReservationRepository{
		reservations: make(map[string]models.Reservation),
	}
}

func (r *MemoryReservationRepository) Save(reservation *models.Reservation) (*models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reservations[reservation.ID] = *reservation
	saved := *reservation
	return &saved, nil
}

func (r *MemoryReservationRepository) Update(reservation *models.Reservation) (*models.Reservation, error) {
	return r.Save(reservation)
}

func (r *MemoryReservationRepository) FindByID(id string) (*models.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.reservations[id]
	if !ok {
		return nil, nil
	}
	return &res, nil
}

func (r *MemoryReservationRepository) FindByGuestName(guestName string) ([]*models.Reservation, error) {
	return r.filter(func(res models.Reservation) bool { return res.GuestName == guestName })
}

func (r *MemoryReservationRepository) FindByGuestEmail(email string) ([]*models.Reservation, error) {
	return r.filter(func(res models.Reservation) bool { return res.GuestEmail == email })
}

func (r *MemoryReservationRepository) FindByHotelName(hotelName string) ([]*models.Reservation, error) {
	return r.filter(func(res models.Reservation) bool { return res.HotelName == hotelName })
}

func (r *MemoryReservationRepository) FindAll() ([]*models.Reservation, error) {
	return r.filter(func(models.Reservation) bool { return true })
}

func (r *MemoryReservationRepository) DeleteByID(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.reservations, id)
	return nil
}

func (r *MemoryReservationRepository) ExistsByID(id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.reservations[id]
	return ok, nil
}

func (r *MemoryReservationRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.reservations)), nil
}

func (r *MemoryReservationRepository) filter(keep func(models.Reservation) bool) ([]*models.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.Reservation
	for _, res := range r.reservations {
		if keep(res) {
			res := res
			out = append(out, &res)
		}
	}
	// Map iteration order is random; keep listings stable.
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
