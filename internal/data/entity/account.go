package entity

import "time"

type Customer struct {
	Username     string
	PasswordHash string
	Name         string
	Email        string
	Phone        string
	Bookings     []Booking
	CreatedAt    time.Time
}

type Admin struct {
	Username     string
	PasswordHash string
}
