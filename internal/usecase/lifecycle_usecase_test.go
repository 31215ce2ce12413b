package usecase

import (
	"context"
	"testing"
	"time"

	"pslab/internal/domain/model"
	infraRepo "pslab/internal/infra/repository"
	"pslab/internal/infra/storage"

	"github.com/stretchr/testify/assert"
)

type lifecycleFixture struct {
	uc          *LifecycleUsecase
	cartReqRepo *infraRepo.CartRequestKVRepository
	hcRepo      *infraRepo.HomeCollectionKVRepository
	apptRepo    *infraRepo.AppointmentKVRepository
	clock       *fixedClock
}

func newLifecycleFixture(t *testing.T) *lifecycleFixture {
	t.Helper()

	store := storage.NewMemoryStore()
	cartReqRepo := infraRepo.NewCartRequestKVRepository(store)
	hcRepo := infraRepo.NewHomeCollectionKVRepository(store)
	apptRepo := infraRepo.NewAppointmentKVRepository(store)
	clock := &fixedClock{t: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)}

	return &lifecycleFixture{
		uc:          NewLifecycleUsecase(cartReqRepo, hcRepo, apptRepo, clock),
		cartReqRepo: cartReqRepo,
		hcRepo:      hcRepo,
		apptRepo:    apptRepo,
		clock:       clock,
	}
}

func (f *lifecycleFixture) seedCartRequest(t *testing.T, ctx context.Context, id string) {
	t.Helper()
	assert.NoError(t, f.cartReqRepo.Create(ctx, model.CartRequest{
		ID:          id,
		PatientName: "Ravi Kumar",
		Mobile:      "9876543210",
		Address:     "12 MG Road",
		Items:       []model.CartLineItem{{ID: 1, Kind: model.ItemKindTest, Name: "CBC", Price: 599}},
		TotalAmount: 599,
		Status:      model.CartRequestStatusPending,
	}))
}

func (f *lifecycleFixture) seedHomeCollection(t *testing.T, ctx context.Context, id string) {
	t.Helper()
	assert.NoError(t, f.hcRepo.Create(ctx, model.HomeCollectionRequest{
		ID:       id,
		FullName: "Meena Iyer",
		Status:   model.HomeCollectionStatusPending,
	}))
}

func (f *lifecycleFixture) seedAppointment(t *testing.T, ctx context.Context, id string) {
	t.Helper()
	assert.NoError(t, f.apptRepo.Create(ctx, model.AppointmentRequest{
		ID:       id,
		DoctorID: "1",
		Status:   model.AppointmentStatusPending,
	}))
}

func TestLifecycleUsecase_CartRequestTransitions(t *testing.T) {
	ctx := context.Background()
	f := newLifecycleFixture(t)
	f.seedCartRequest(t, ctx, "r1")

	// pending -> called -> follow-up -> follow-up -> closed
	steps := []model.CartRequestStatus{
		model.CartRequestStatusCalled,
		model.CartRequestStatusFollowUp,
		model.CartRequestStatusFollowUp,
		model.CartRequestStatusClosed,
	}
	for _, s := range steps {
		assert.NoError(t, f.uc.UpdateCartRequestStatus(ctx, "r1", s, ""))
		got, found, err := f.uc.GetCartRequest(ctx, "r1")
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, s, got.Status)
	}
}

func TestLifecycleUsecase_CartRequest_ClosedIsTerminal(t *testing.T) {
	ctx := context.Background()
	f := newLifecycleFixture(t)
	f.seedCartRequest(t, ctx, "r1")

	assert.NoError(t, f.uc.UpdateCartRequestStatus(ctx, "r1", model.CartRequestStatusClosed, ""))
	// 終端からはどこへも動かない
	assert.NoError(t, f.uc.UpdateCartRequestStatus(ctx, "r1", model.CartRequestStatusPending, ""))
	assert.NoError(t, f.uc.UpdateCartRequestStatus(ctx, "r1", model.CartRequestStatusCalled, ""))

	got, found, err := f.uc.GetCartRequest(ctx, "r1")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, model.CartRequestStatusClosed, got.Status)
}

func TestLifecycleUsecase_CartRequest_NotesKeptWhenEmpty(t *testing.T) {
	ctx := context.Background()
	f := newLifecycleFixture(t)
	f.seedCartRequest(t, ctx, "r1")

	assert.NoError(t, f.uc.UpdateCartRequestStatus(ctx, "r1", model.CartRequestStatusCalled, "asked to call back"))
	assert.NoError(t, f.uc.UpdateCartRequestStatus(ctx, "r1", model.CartRequestStatusFollowUp, ""))

	got, _, err := f.uc.GetCartRequest(ctx, "r1")
	assert.NoError(t, err)
	assert.Equal(t, "asked to call back", got.Notes)
}

func TestLifecycleUsecase_UnknownIDIsSilentNoop(t *testing.T) {
	ctx := context.Background()
	f := newLifecycleFixture(t)

	assert.NoError(t, f.uc.UpdateCartRequestStatus(ctx, "missing", model.CartRequestStatusCalled, ""))
	assert.NoError(t, f.uc.MarkCartRequestRead(ctx, "missing"))
	assert.NoError(t, f.uc.DeleteCartRequest(ctx, "missing"))
	assert.NoError(t, f.uc.UpdateHomeCollectionStatus(ctx, "missing", model.HomeCollectionStatusCallDone))
	assert.NoError(t, f.uc.DeleteHomeCollection(ctx, "missing"))
	assert.NoError(t, f.uc.UpdateAppointmentStatus(ctx, "missing", model.AppointmentStatusConfirmed))
	assert.NoError(t, f.uc.MarkAppointmentRead(ctx, "missing"))
	assert.NoError(t, f.uc.DeleteAppointment(ctx, "missing"))

	_, found, err := f.uc.GetCartRequest(ctx, "missing")
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestLifecycleUsecase_HomeCollectionTransitions(t *testing.T) {
	ctx := context.Background()
	f := newLifecycleFixture(t)
	f.seedHomeCollection(t, ctx, "hc_1")

	// pending から follow_up へは飛べない
	assert.NoError(t, f.uc.UpdateHomeCollectionStatus(ctx, "hc_1", model.HomeCollectionStatusFollowUp))
	list, err := f.uc.ListHomeCollections(ctx)
	assert.NoError(t, err)
	assert.Equal(t, model.HomeCollectionStatusPending, list[0].Status)

	// 正規の道: pending -> call_done -> follow_up -> deal_closed
	for _, s := range []model.HomeCollectionStatus{
		model.HomeCollectionStatusCallDone,
		model.HomeCollectionStatusFollowUp,
		model.HomeCollectionStatusDealClosed,
	} {
		assert.NoError(t, f.uc.UpdateHomeCollectionStatus(ctx, "hc_1", s))
	}
	list, err = f.uc.ListHomeCollections(ctx)
	assert.NoError(t, err)
	assert.Equal(t, model.HomeCollectionStatusDealClosed, list[0].Status)

	// deal_closed は終端
	assert.NoError(t, f.uc.UpdateHomeCollectionStatus(ctx, "hc_1", model.HomeCollectionStatusNotInterested))
	list, err = f.uc.ListHomeCollections(ctx)
	assert.NoError(t, err)
	assert.Equal(t, model.HomeCollectionStatusDealClosed, list[0].Status)
}

func TestLifecycleUsecase_HomeCollection_UpdatedAtStamped(t *testing.T) {
	ctx := context.Background()
	f := newLifecycleFixture(t)
	f.seedHomeCollection(t, ctx, "hc_1")

	f.clock.t = time.Date(2025, 6, 3, 14, 30, 0, 0, time.UTC)
	assert.NoError(t, f.uc.UpdateHomeCollectionStatus(ctx, "hc_1", model.HomeCollectionStatusCallDone))

	list, err := f.uc.ListHomeCollections(ctx)
	assert.NoError(t, err)
	assert.Equal(t, f.clock.t, list[0].UpdatedAt)
}

func TestLifecycleUsecase_HomeCollection_UnreadCount(t *testing.T) {
	ctx := context.Background()
	f := newLifecycleFixture(t)
	f.seedHomeCollection(t, ctx, "hc_1")
	f.seedHomeCollection(t, ctx, "hc_2")
	f.seedHomeCollection(t, ctx, "hc_3")

	count, err := f.uc.UnreadHomeCollectionCount(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)

	assert.NoError(t, f.uc.MarkHomeCollectionRead(ctx, "hc_2"))
	// 既読は何度付けても増えない
	assert.NoError(t, f.uc.MarkHomeCollectionRead(ctx, "hc_2"))
	count, err = f.uc.UnreadHomeCollectionCount(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 2, count)

	// 未読の依頼を消すと未読数も減る
	assert.NoError(t, f.uc.DeleteHomeCollection(ctx, "hc_1"))
	count, err = f.uc.UnreadHomeCollectionCount(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestLifecycleUsecase_AppointmentTransitions(t *testing.T) {
	ctx := context.Background()
	f := newLifecycleFixture(t)
	f.seedAppointment(t, ctx, "a1")
	f.seedAppointment(t, ctx, "a2")

	assert.NoError(t, f.uc.UpdateAppointmentStatus(ctx, "a1", model.AppointmentStatusConfirmed))
	assert.NoError(t, f.uc.UpdateAppointmentStatus(ctx, "a2", model.AppointmentStatusCancelled))

	// confirmed / cancelled は終端
	assert.NoError(t, f.uc.UpdateAppointmentStatus(ctx, "a1", model.AppointmentStatusCancelled))
	assert.NoError(t, f.uc.UpdateAppointmentStatus(ctx, "a2", model.AppointmentStatusPending))

	list, err := f.uc.ListAppointments(ctx)
	assert.NoError(t, err)
	byID := map[string]model.AppointmentStatus{}
	for _, a := range list {
		byID[a.ID] = a.Status
	}
	assert.Equal(t, model.AppointmentStatusConfirmed, byID["a1"])
	assert.Equal(t, model.AppointmentStatusCancelled, byID["a2"])
}

func TestLifecycleUsecase_UnreadCounts_ReadFlagVariants(t *testing.T) {
	ctx := context.Background()
	f := newLifecycleFixture(t)
	f.seedCartRequest(t, ctx, "r1")
	f.seedCartRequest(t, ctx, "r2")
	f.seedAppointment(t, ctx, "a1")

	count, err := f.uc.UnreadCartRequestCount(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 2, count)

	assert.NoError(t, f.uc.MarkCartRequestRead(ctx, "r1"))
	count, err = f.uc.UnreadCartRequestCount(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.NoError(t, f.uc.MarkAppointmentRead(ctx, "a1"))
	count, err = f.uc.UnreadAppointmentCount(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, count)
}
