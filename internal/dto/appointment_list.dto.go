package dto

import "time"

type CustomerAppointmentDTO struct {
	ID              uint      `json:"id"`
	Reference       string    `json:"reference"`
	AppointmentDate string    `json:"appointment_date"`
	AppointmentTime string    `json:"appointment_time"`
	Status          string    `json:"status"`
	BarberName      string    `json:"barber_name"`
	BarbershopName  string    `json:"barbershop_name"`
	ServiceName     string    `json:"service_name"`
	ServicePrice    float64   `json:"service_price"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
}

type BarberAppointmentDTO struct {
	ID              uint   `json:"id"`
	AppointmentTime string `json:"appointment_time"`
	Status          string `json:"status"`
	CustomerName    string `json:"customer_name"`
	ServiceName     string `json:"service_name"`
	Notes           string `json:"notes"`
}
