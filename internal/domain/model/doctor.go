package model

// Doctor は面談予約の対象となる医師。
type Doctor struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Specialty        string   `json:"specialty"`
	Qualification    string   `json:"qualification"`
	Experience       string   `json:"experience"`
	About            string   `json:"about"`
	AvailabilityDays []string `json:"availabilityDays"`
	AvailabilityTime string   `json:"availabilityTime"`
	ConsultationFee  int64    `json:"consultationFee"`
	Image            string   `json:"image"`
}
