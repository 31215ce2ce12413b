package repository

import (
	"context"
	"time"

	"pslab/internal/domain/model"
)

type CartRequestRepository interface {
	List(ctx context.Context) ([]model.CartRequest, error)
	FindByID(ctx context.Context, id string) (model.CartRequest, error)
	Create(ctx context.Context, req model.CartRequest) error
	// notes は空なら上書きしない
	UpdateStatus(ctx context.Context, id string, status model.CartRequestStatus, notes string) error
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type HomeCollectionRepository interface {
	List(ctx context.Context) ([]model.HomeCollectionRequest, error)
	FindByID(ctx context.Context, id string) (model.HomeCollectionRequest, error)
	Create(ctx context.Context, req model.HomeCollectionRequest) error
	// 状態を変えるたびに updatedAt を刻む
	UpdateStatus(ctx context.Context, id string, status model.HomeCollectionStatus, updatedAt time.Time) error

	// 既読集合は依頼本体と別キーで持つ
	MarkRead(ctx context.Context, id string) error
	ReadIDs(ctx context.Context) (map[string]bool, error)
	Delete(ctx context.Context, id string) error
}

type AppointmentRepository interface {
	List(ctx context.Context) ([]model.AppointmentRequest, error)
	ListByDoctorID(ctx context.Context, doctorID string) ([]model.AppointmentRequest, error)
	FindByID(ctx context.Context, id string) (model.AppointmentRequest, error)
	Create(ctx context.Context, req model.AppointmentRequest) error
	UpdateStatus(ctx context.Context, id string, status model.AppointmentStatus) error
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
