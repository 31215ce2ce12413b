package model

import "time"

type CartRequestStatus string

const (
	CartRequestStatusPending  CartRequestStatus = "pending"
	CartRequestStatusCalled   CartRequestStatus = "called"
	CartRequestStatusFollowUp CartRequestStatus = "follow-up"
	CartRequestStatusClosed   CartRequestStatus = "closed"
)

// CartRequest はカートから確定した注文依頼。
// Items は送信時点の凍結コピー（カタログともカートとも切り離す）。
type CartRequest struct {
	ID          string            `json:"id"`
	PatientName string            `json:"patientName"`
	Address     string            `json:"address"`
	Mobile      string            `json:"mobile"`
	Items       []CartLineItem    `json:"items"`
	TotalAmount int64             `json:"totalAmount"`
	Status      CartRequestStatus `json:"status"`
	Notes       string            `json:"notes,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	IsRead      bool              `json:"isRead"`
}
