package dto

import "github.com/sharpcut-app/sharpcut-api/internal/models"

// Flat row for the dashboard agenda list.
type AppointmentListDTO struct {
	ID           uint    `json:"id"`
	Reference    string  `json:"reference"`
	Date         string  `json:"date"`
	StartTime    string  `json:"start_time"`
	Status       string  `json:"status"`
	CustomerName string  `json:"customer_name"`
	Phone        string  `json:"phone"`
	ServiceName  string  `json:"service_name"`
	ServicePrice float64 `json:"service_price"`
	Notes        string  `json:"notes"`
}

func FromAppointment(ap models.Appointment) AppointmentListDTO {
	name := ap.GuestName
	phone := ap.GuestPhone
	if ap.Customer != nil {
		name = ap.Customer.Name
		phone = ap.Customer.Phone
	}

	return AppointmentListDTO{
		ID:           ap.ID,
		Reference:    ap.Reference,
		Date:         ap.Date,
		StartTime:    ap.StartTime,
		Status:       ap.Status,
		CustomerName: name,
		Phone:        phone,
		ServiceName:  ap.ServiceName,
		ServicePrice: ap.ServicePrice,
		Notes:        ap.Notes,
	}
}

func FromAppointments(aps []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, FromAppointment(ap))
	}
	return out
}
