package model

import "time"

type HomeCollectionStatus string

const (
	HomeCollectionStatusPending       HomeCollectionStatus = "pending"
	HomeCollectionStatusCallDone      HomeCollectionStatus = "call_done"
	HomeCollectionStatusFollowUp      HomeCollectionStatus = "follow_up"
	HomeCollectionStatusDealClosed    HomeCollectionStatus = "deal_closed"
	HomeCollectionStatusNotInterested HomeCollectionStatus = "not_interested"
)

// HomeCollectionRequest は自宅集荷（訪問採血）の依頼。
// 既読フラグは本体には持たず、別キーの既読集合で管理する。
type HomeCollectionRequest struct {
	ID            string               `json:"id"`
	FullName      string               `json:"fullName"`
	MobileNumber  string               `json:"mobileNumber"`
	Address       string               `json:"address"`
	City          string               `json:"city"`
	PinCode       string               `json:"pinCode"`
	PreferredDate string               `json:"preferredDate"`
	PreferredTime string               `json:"preferredTime"`
	Status        HomeCollectionStatus `json:"status"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}
