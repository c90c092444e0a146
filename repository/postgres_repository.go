package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/bookingmx/cityconnect/models"
)

// PostgresReservationRepository stores reservations in PostgreSQL.
type PostgresReservationRepository struct {
	db *sqlx.DB
}

func NewPostgresReservationRepository(db *sqlx.DB) *PostgresReservationRepository {
	return &PostgresReservationRepository{db: db}
}

const reservationColumns = `id, guest_name, guest_email, hotel_name, room_type,
	check_in_date, check_out_date, number_of_guests, status, total_price`

func (r *PostgresReservationRepository) Save(reservation *models.Reservation) (*models.Reservation, error) {
	query := `INSERT INTO reservations (` + reservationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(query,
		reservation.ID, reservation.GuestName, reservation.GuestEmail,
		reservation.HotelName, reservation.RoomType,
		reservation.CheckInDate, reservation.CheckOutDate,
		reservation.NumberOfGuests, reservation.Status, reservation.TotalPrice)
	if err != nil {
		return nil, fmt.Errorf("could not save reservation: %w", err)
	}
	return reservation, nil
}

func (r *PostgresReservationRepository) Update(reservation *models.Reservation) (*models.Reservation, error) {
	query := `UPDATE reservations SET guest_name=$2, guest_email=$3, hotel_name=$4,
		room_type=$5, check_in_date=$6, check_out_date=$7, number_of_guests=$8,
		status=$9, total_price=$10 WHERE id=$1`
	_, err := r.db.Exec(query,
		reservation.ID, reservation.GuestName, reservation.GuestEmail,
		reservation.HotelName, reservation.RoomType,
		reservation.CheckInDate, reservation.CheckOutDate,
		reservation.NumberOfGuests, reservation.Status, reservation.TotalPrice)
	if err != nil {
		return nil, fmt.Errorf("could not update reservation: %w", err)
	}
	return reservation, nil
}

func (r *PostgresReservationRepository) FindByID(id string) (*models.Reservation, error) {
	var res models.Reservation
	err := r.db.Get(&res, `SELECT `+reservationColumns+` FROM reservations WHERE id=$1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not load reservation: %w", err)
	}
	return &res, nil
}

func (r *PostgresReservationRepository) FindByGuestName(guestName string) ([]*models.Reservation, error) {
	return r.selectWhere(`guest_name=$1`, guestName)
}

func (r *PostgresReservationRepository) FindByGuestEmail(email string) ([]*models.Reservation, error) {
	return r.selectWhere(`guest_email=$1`, email)
}

func (r *PostgresReservationRepository) FindByHotelName(hotelName string) ([]*models.Reservation, error) {
	return r.selectWhere(`hotel_name=$1`, hotelName)
}

func (r *PostgresReservationRepository) FindAll() ([]*models.Reservation, error) {
	var out []*models.Reservation
	err := r.db.Select(&out, `SELECT `+reservationColumns+` FROM reservations ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("could not list reservations: %w", err)
	}
	return out, nil
}

func (r *PostgresReservationRepository) DeleteByID(id string) error {
	if _, err := r.db.Exec(`DELETE FROM reservations WHERE id=$1`, id); err != nil {
		return fmt.Errorf("could not delete reservation: %w", err)
	}
	return nil
}

func (r *PostgresReservationRepository) ExistsByID(id string) (bool, error) {
	var exists bool
	err := r.db.Get(&exists, `SELECT EXISTS (SELECT 1 FROM reservations WHERE id=$1)`, id)
	if err != nil {
		return false, fmt.Errorf("could not check reservation existence: %w", err)
	}
	return exists, nil
}

func (r *PostgresReservationRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Get(&count, `SELECT COUNT(*) FROM reservations`); err != nil {
		return 0, fmt.Errorf("could not count reservations: %w", err)
	}
	return count, nil
}

func (r *PostgresReservationRepository) selectWhere(where string, arg interface{}) ([]*models.Reservation, error) {
	var out []*models.Reservation
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE ` + where + ` ORDER BY id`
	if err := r.db.Select(&out, query, arg); err != nil {
		return nil, fmt.Errorf("could not query reservations: %w", err)
	}
	return out, nil
}
