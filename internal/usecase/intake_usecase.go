package usecase

import (
	"context"
	"fmt"
	"strings"

	"pslab/internal/domain/model"
	"pslab/internal/notify"
	repo "pslab/internal/repository"
	"pslab/internal/validator"
)

// NotificationDispatcher は依頼の永続化が済んだ後に呼ぶ投げっぱなし口。
type NotificationDispatcher interface {
	Dispatch(n notify.Notification)
}

// IntakePolicies は入口ごとの携帯番号ルール。
// ゲスト購入だけ厳しめ（先頭6〜9）を使うのが元仕様。
type IntakePolicies struct {
	CartMobile           validator.MobilePolicy
	HomeCollectionMobile validator.MobilePolicy
	AppointmentMobile    validator.MobilePolicy
}

func DefaultIntakePolicies() IntakePolicies {
	return IntakePolicies{
		CartMobile:           validator.IndianMobile{},
		HomeCollectionMobile: validator.TenDigits{},
		AppointmentMobile:    validator.TenDigits{},
	}
}

// IntakeUsecase はカート・フォームの内容を依頼（Request）に変換して保存する。
// 保存は同期、通知は非同期ベストエフォート。検証に落ちたら何も保存しない。
type IntakeUsecase struct {
	cartRepo        repo.CartRepository
	cartRequestRepo repo.CartRequestRepository
	collectionRepo  repo.HomeCollectionRepository
	appointmentRepo repo.AppointmentRepository

	idGen      IDGenerator
	clock      Clock
	dispatcher NotificationDispatcher
	policies   IntakePolicies
}

func NewIntakeUsecase(
	cartRepo repo.CartRepository,
	cartRequestRepo repo.CartRequestRepository,
	collectionRepo repo.HomeCollectionRepository,
	appointmentRepo repo.AppointmentRepository,
	idGen IDGenerator,
	clock Clock,
	dispatcher NotificationDispatcher,
	policies IntakePolicies,
) *IntakeUsecase {
	return &IntakeUsecase{
		cartRepo:        cartRepo,
		cartRequestRepo: cartRequestRepo,
		collectionRepo:  collectionRepo,
		appointmentRepo: appointmentRepo,
		idGen:           idGen,
		clock:           clock,
		dispatcher:      dispatcher,
		policies:        policies,
	}
}

type SubmitCartRequestInput struct {
	PatientName string
	Mobile      string
	Address     string
}

// SubmitCartRequest はいまのカートを凍結コピーして注文依頼を作る。
// カートを空にするのは呼び出し側（決済完了画面）の仕事。
func (u *IntakeUsecase) SubmitCartRequest(ctx context.Context, in SubmitCartRequestInput) (model.CartRequest, error) {
	fields := map[string]string{}
	if strings.TrimSpace(in.PatientName) == "" {
		fields["patientName"] = "required"
	}
	if !u.policies.CartMobile.Validate(in.Mobile) {
		fields["mobile"] = "must be a valid 10-digit mobile number"
	}
	if strings.TrimSpace(in.Address) == "" {
		fields["address"] = "required"
	}

	items, err := u.cartRepo.Items(ctx)
	if err != nil {
		return model.CartRequest{}, err
	}
	if len(items) == 0 {
		fields["items"] = "cart is empty"
	}
	if len(fields) > 0 {
		return model.CartRequest{}, NewValidationError(fields)
	}

	// スナップショット（カタログやカートを後から触っても依頼は変わらない）
	frozen := make([]model.CartLineItem, len(items))
	copy(frozen, items)

	var total int64
	for _, it := range frozen {
		total += it.Price
	}

	req := model.CartRequest{
		ID:          u.idGen.NewID(),
		PatientName: strings.TrimSpace(in.PatientName),
		Address:     strings.TrimSpace(in.Address),
		Mobile:      in.Mobile,
		Items:       frozen,
		TotalAmount: total,
		Status:      model.CartRequestStatusPending,
		CreatedAt:   u.clock.Now(),
		IsRead:      false,
	}

	if err := u.cartRequestRepo.Create(ctx, req); err != nil {
		return model.CartRequest{}, err
	}

	itemLines := make([]string, 0, len(frozen))
	for _, it := range frozen {
		itemLines = append(itemLines, fmt.Sprintf("%s (₹%d)", it.Name, it.Price))
	}
	u.dispatcher.Dispatch(notify.Notification{
		Subject: "New Cart Request",
		Message: "A new cart request has been received.",
		Details: map[string]string{
			"Patient Name": req.PatientName,
			"Mobile":       req.Mobile,
			"Address":      req.Address,
			"Total Amount": fmt.Sprintf("₹%d", req.TotalAmount),
			"Items":        strings.Join(itemLines, "\n"),
		},
	})

	return req, nil
}

type SubmitHomeCollectionInput struct {
	FullName      string
	MobileNumber  string
	Address       string
	City          string
	PinCode       string
	PreferredDate string
	PreferredTime string
}

func (u *IntakeUsecase) SubmitHomeCollection(ctx context.Context, in SubmitHomeCollectionInput) (model.HomeCollectionRequest, error) {
	fields := map[string]string{}
	if strings.TrimSpace(in.FullName) == "" {
		fields["fullName"] = "required"
	}
	if !u.policies.HomeCollectionMobile.Validate(in.MobileNumber) {
		fields["mobileNumber"] = "must be a valid 10-digit mobile number"
	}
	if strings.TrimSpace(in.Address) == "" {
		fields["address"] = "required"
	}
	if strings.TrimSpace(in.City) == "" {
		fields["city"] = "required"
	}
	if !validator.ValidPinCode(in.PinCode) {
		fields["pinCode"] = "must be a 6-digit pin code"
	}
	if strings.TrimSpace(in.PreferredDate) == "" {
		fields["preferredDate"] = "required"
	}
	if strings.TrimSpace(in.PreferredTime) == "" {
		fields["preferredTime"] = "required"
	}
	if len(fields) > 0 {
		return model.HomeCollectionRequest{}, NewValidationError(fields)
	}

	now := u.clock.Now()
	req := model.HomeCollectionRequest{
		ID:            "hc_" + u.idGen.NewID(),
		FullName:      strings.TrimSpace(in.FullName),
		MobileNumber:  in.MobileNumber,
		Address:       strings.TrimSpace(in.Address),
		City:          strings.TrimSpace(in.City),
		PinCode:       in.PinCode,
		PreferredDate: in.PreferredDate,
		PreferredTime: in.PreferredTime,
		Status:        model.HomeCollectionStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := u.collectionRepo.Create(ctx, req); err != nil {
		return model.HomeCollectionRequest{}, err
	}

	u.dispatcher.Dispatch(notify.Notification{
		Subject: "New Home Collection Request",
		Message: "A new home collection request has been received.",
		Details: map[string]string{
			"Full Name":      req.FullName,
			"Mobile Number":  req.MobileNumber,
			"Address":        req.Address,
			"City":           req.City,
			"Pin Code":       req.PinCode,
			"Preferred Date": req.PreferredDate,
			"Preferred Time": req.PreferredTime,
		},
	})

	return req, nil
}

type SubmitAppointmentInput struct {
	DoctorID      string
	PatientName   string
	ContactNumber string
	Reason        string
}

// SubmitAppointment は医師面談の依頼を作る。
// doctorId の実在確認はこの層ではしない（呼び出し側の責務）。
func (u *IntakeUsecase) SubmitAppointment(ctx context.Context, in SubmitAppointmentInput) (model.AppointmentRequest, error) {
	fields := map[string]string{}
	if strings.TrimSpace(in.DoctorID) == "" {
		fields["doctorId"] = "required"
	}
	if strings.TrimSpace(in.PatientName) == "" {
		fields["patientName"] = "required"
	}
	if !u.policies.AppointmentMobile.Validate(in.ContactNumber) {
		fields["contactNumber"] = "must be a valid 10-digit mobile number"
	}
	if strings.TrimSpace(in.Reason) == "" {
		fields["reason"] = "required"
	}
	if len(fields) > 0 {
		return model.AppointmentRequest{}, NewValidationError(fields)
	}

	now := u.clock.Now()
	req := model.AppointmentRequest{
		ID:            u.idGen.NewID(),
		DoctorID:      in.DoctorID,
		PatientName:   strings.TrimSpace(in.PatientName),
		ContactNumber: in.ContactNumber,
		Reason:        strings.TrimSpace(in.Reason),
		Status:        model.AppointmentStatusPending,
		CreatedAt:     now,
		IsRead:        false,
	}

	if err := u.appointmentRepo.Create(ctx, req); err != nil {
		return model.AppointmentRequest{}, err
	}

	u.dispatcher.Dispatch(notify.Notification{
		Subject: "New Appointment Request",
		Message: "A new appointment request has been received.",
		Details: map[string]string{
			"Patient Name":   req.PatientName,
			"Contact Number": req.ContactNumber,
			"Reason":         req.Reason,
			"Doctor ID":      req.DoctorID,
			"Status":         "Pending",
			"Created At":     now.Format("2006-01-02 15:04:05"),
		},
	})

	return req, nil
}
