package usecase

import (
	"context"
	"errors"

	"pslab/internal/domain/model"
	repo "pslab/internal/repository"
)

// 許可する遷移だけを列挙する。載っていない遷移は黙って無視。
// closed / confirmed / cancelled / deal_closed / not_interested は終端。

var cartRequestTransitions = map[model.CartRequestStatus][]model.CartRequestStatus{
	model.CartRequestStatusPending:  {model.CartRequestStatusCalled, model.CartRequestStatusFollowUp, model.CartRequestStatusClosed},
	model.CartRequestStatusCalled:   {model.CartRequestStatusFollowUp, model.CartRequestStatusClosed},
	model.CartRequestStatusFollowUp: {model.CartRequestStatusFollowUp, model.CartRequestStatusClosed},
}

var appointmentTransitions = map[model.AppointmentStatus][]model.AppointmentStatus{
	model.AppointmentStatusPending: {model.AppointmentStatusConfirmed, model.AppointmentStatusCancelled},
}

var homeCollectionTransitions = map[model.HomeCollectionStatus][]model.HomeCollectionStatus{
	model.HomeCollectionStatusPending:  {model.HomeCollectionStatusCallDone, model.HomeCollectionStatusNotInterested},
	model.HomeCollectionStatusCallDone: {model.HomeCollectionStatusFollowUp, model.HomeCollectionStatusNotInterested},
	model.HomeCollectionStatusFollowUp: {model.HomeCollectionStatusDealClosed, model.HomeCollectionStatusNotInterested},
}

func cartRequestCanTransition(from, to model.CartRequestStatus) bool {
	for _, next := range cartRequestTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func appointmentCanTransition(from, to model.AppointmentStatus) bool {
	for _, next := range appointmentTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func homeCollectionCanTransition(from, to model.HomeCollectionStatus) bool {
	for _, next := range homeCollectionTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// LifecycleUsecase はスタッフによる依頼の仕分け。
// 消えたidへの操作・許可されていない遷移はエラーにせず黙って無視する
// （管理画面の再試行・定期リフレッシュと相性を合わせるため）。
type LifecycleUsecase struct {
	cartRequestRepo repo.CartRequestRepository
	collectionRepo  repo.HomeCollectionRepository
	appointmentRepo repo.AppointmentRepository
	clock           Clock
}

func NewLifecycleUsecase(
	cartRequestRepo repo.CartRequestRepository,
	collectionRepo repo.HomeCollectionRepository,
	appointmentRepo repo.AppointmentRepository,
	clock Clock,
) *LifecycleUsecase {
	return &LifecycleUsecase{
		cartRequestRepo: cartRequestRepo,
		collectionRepo:  collectionRepo,
		appointmentRepo: appointmentRepo,
		clock:           clock,
	}
}

// ---- カート注文依頼 ----

func (u *LifecycleUsecase) ListCartRequests(ctx context.Context) ([]model.CartRequest, error) {
	return u.cartRequestRepo.List(ctx)
}

func (u *LifecycleUsecase) GetCartRequest(ctx context.Context, id string) (model.CartRequest, bool, error) {
	req, err := u.cartRequestRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.CartRequest{}, false, nil
	}
	if err != nil {
		return model.CartRequest{}, false, err
	}
	return req, true, nil
}

func (u *LifecycleUsecase) UpdateCartRequestStatus(ctx context.Context, id string, status model.CartRequestStatus, notes string) error {
	req, err := u.cartRequestRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if !cartRequestCanTransition(req.Status, status) {
		return nil
	}

	err = u.cartRequestRepo.UpdateStatus(ctx, id, status, notes)
	if errors.Is(err, repo.ErrNotFound) {
		return nil
	}
	return err
}

func (u *LifecycleUsecase) MarkCartRequestRead(ctx context.Context, id string) error {
	err := u.cartRequestRepo.MarkRead(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil
	}
	return err
}

func (u *LifecycleUsecase) DeleteCartRequest(ctx context.Context, id string) error {
	err := u.cartRequestRepo.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil
	}
	return err
}

// UnreadCartRequestCount はバッジ用の未読件数。毎回数え直す。
func (u *LifecycleUsecase) UnreadCartRequestCount(ctx context.Context) (int, error) {
	reqs, err := u.cartRequestRepo.List(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, req := range reqs {
		if !req.IsRead {
			count++
		}
	}
	return count, nil
}

// ---- 自宅集荷依頼 ----

func (u *LifecycleUsecase) ListHomeCollections(ctx context.Context) ([]model.HomeCollectionRequest, error) {
	return u.collectionRepo.List(ctx)
}

func (u *LifecycleUsecase) UpdateHomeCollectionStatus(ctx context.Context, id string, status model.HomeCollectionStatus) error {
	req, err := u.collectionRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if !homeCollectionCanTransition(req.Status, status) {
		return nil
	}

	// 遷移のたびに updatedAt を刻む
	err = u.collectionRepo.UpdateStatus(ctx, id, status, u.clock.Now())
	if errors.Is(err, repo.ErrNotFound) {
		return nil
	}
	return err
}

func (u *LifecycleUsecase) MarkHomeCollectionRead(ctx context.Context, id string) error {
	return u.collectionRepo.MarkRead(ctx, id)
}

func (u *LifecycleUsecase) DeleteHomeCollection(ctx context.Context, id string) error {
	err := u.collectionRepo.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil
	}
	return err
}

// 既読集合に入っていない依頼を数える。
func (u *LifecycleUsecase) UnreadHomeCollectionCount(ctx context.Context) (int, error) {
	reqs, err := u.collectionRepo.List(ctx)
	if err != nil {
		return 0, err
	}
	read, err := u.collectionRepo.ReadIDs(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, req := range reqs {
		if !read[req.ID] {
			count++
		}
	}
	return count, nil
}

// ---- 面談予約依頼 ----

func (u *LifecycleUsecase) ListAppointments(ctx context.Context) ([]model.AppointmentRequest, error) {
	return u.appointmentRepo.List(ctx)
}

func (u *LifecycleUsecase) ListAppointmentsByDoctor(ctx context.Context, doctorID string) ([]model.AppointmentRequest, error) {
	return u.appointmentRepo.ListByDoctorID(ctx, doctorID)
}

func (u *LifecycleUsecase) UpdateAppointmentStatus(ctx context.Context, id string, status model.AppointmentStatus) error {
	req, err := u.appointmentRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if !appointmentCanTransition(req.Status, status) {
		return nil
	}

	err = u.appointmentRepo.UpdateStatus(ctx, id, status)
	if errors.Is(err, repo.ErrNotFound) {
		return nil
	}
	return err
}

func (u *LifecycleUsecase) MarkAppointmentRead(ctx context.Context, id string) error {
	err := u.appointmentRepo.MarkRead(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil
	}
	return err
}

func (u *LifecycleUsecase) DeleteAppointment(ctx context.Context, id string) error {
	err := u.appointmentRepo.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil
	}
	return err
}

func (u *LifecycleUsecase) UnreadAppointmentCount(ctx context.Context) (int, error) {
	reqs, err := u.appointmentRepo.List(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, req := range reqs {
		if !req.IsRead {
			count++
		}
	}
	return count, nil
}
