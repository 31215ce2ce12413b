package repository

import (
	"context"

	"pslab/internal/domain/model"
	"pslab/internal/infra/storage"
	repo "pslab/internal/repository"
)

type AppointmentKVRepository struct {
	store storage.Store
}

func NewAppointmentKVRepository(store storage.Store) *AppointmentKVRepository {
	return &AppointmentKVRepository{store: store}
}

func (r *AppointmentKVRepository) load(ctx context.Context) ([]model.AppointmentRequest, error) {
	var reqs []model.AppointmentRequest
	ok, err := storage.LoadJSON(ctx, r.store, storage.KeyAppointments, &reqs)
	if err != nil || !ok {
		return []model.AppointmentRequest{}, err
	}
	return reqs, nil
}

func (r *AppointmentKVRepository) save(ctx context.Context, reqs []model.AppointmentRequest) error {
	return storage.SaveJSON(ctx, r.store, storage.KeyAppointments, reqs)
}

func (r *AppointmentKVRepository) List(ctx context.Context) ([]model.AppointmentRequest, error) {
	return r.load(ctx)
}

func (r *AppointmentKVRepository) ListByDoctorID(ctx context.Context, doctorID string) ([]model.AppointmentRequest, error) {
	reqs, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	matched := []model.AppointmentRequest{}
	for _, req := range reqs {
		if req.DoctorID == doctorID {
			matched = append(matched, req)
		}
	}
	return matched, nil
}

func (r *AppointmentKVRepository) FindByID(ctx context.Context, id string) (model.AppointmentRequest, error) {
	reqs, err := r.load(ctx)
	if err != nil {
		return model.AppointmentRequest{}, err
	}
	for _, req := range reqs {
		if req.ID == id {
			return req, nil
		}
	}
	return model.AppointmentRequest{}, repo.ErrNotFound
}

func (r *AppointmentKVRepository) Create(ctx context.Context, req model.AppointmentRequest) error {
	reqs, err := r.load(ctx)
	if err != nil {
		return err
	}
	reqs = append(reqs, req)
	return r.save(ctx, reqs)
}

func (r *AppointmentKVRepository) UpdateStatus(ctx context.Context, id string, status model.AppointmentStatus) error {
	reqs, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i, req := range reqs {
		if req.ID == id {
			reqs[i].Status = status
			return r.save(ctx, reqs)
		}
	}
	return repo.ErrNotFound
}

func (r *AppointmentKVRepository) MarkRead(ctx context.Context, id string) error {
	reqs, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i, req := range reqs {
		if req.ID == id {
			reqs[i].IsRead = true
			return r.save(ctx, reqs)
		}
	}
	return repo.ErrNotFound
}

func (r *AppointmentKVRepository) Delete(ctx context.Context, id string) error {
	reqs, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i, req := range reqs {
		if req.ID == id {
			reqs = append(reqs[:i], reqs[i+1:]...)
			return r.save(ctx, reqs)
		}
	}
	return repo.ErrNotFound
}
