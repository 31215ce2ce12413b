package model

import "time"

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// AppointmentRequest は医師面談の予約依頼。
type AppointmentRequest struct {
	ID            string            `json:"id"`
	DoctorID      string            `json:"doctorId"`
	PatientName   string            `json:"patientName"`
	ContactNumber string            `json:"contactNumber"`
	Reason        string            `json:"reason"`
	Status        AppointmentStatus `json:"status"`
	CreatedAt     time.Time         `json:"createdAt"`
	IsRead        bool              `json:"isRead"`
}
