package repository

import (
	"context"

	"pslab/internal/domain/model"
	"pslab/internal/infra/storage"
	repo "pslab/internal/repository"
)

type DoctorKVRepository struct {
	store storage.Store
}

func NewDoctorKVRepository(store storage.Store) *DoctorKVRepository {
	return &DoctorKVRepository{store: store}
}

func (r *DoctorKVRepository) load(ctx context.Context) ([]model.Doctor, error) {
	var doctors []model.Doctor
	ok, err := storage.LoadJSON(ctx, r.store, storage.KeyDoctors, &doctors)
	if err != nil {
		return nil, err
	}
	if !ok {
		// 空なら既定の医師リスト
		return DefaultDoctors(), nil
	}
	return doctors, nil
}

func (r *DoctorKVRepository) save(ctx context.Context, doctors []model.Doctor) error {
	return storage.SaveJSON(ctx, r.store, storage.KeyDoctors, doctors)
}

func (r *DoctorKVRepository) List(ctx context.Context) ([]model.Doctor, error) {
	return r.load(ctx)
}

func (r *DoctorKVRepository) FindByID(ctx context.Context, id string) (model.Doctor, error) {
	doctors, err := r.load(ctx)
	if err != nil {
		return model.Doctor{}, err
	}
	for _, d := range doctors {
		if d.ID == id {
			return d, nil
		}
	}
	return model.Doctor{}, repo.ErrNotFound
}

func (r *DoctorKVRepository) Create(ctx context.Context, d model.Doctor) error {
	doctors, err := r.load(ctx)
	if err != nil {
		return err
	}
	doctors = append(doctors, d)
	return r.save(ctx, doctors)
}

func (r *DoctorKVRepository) Update(ctx context.Context, d model.Doctor) error {
	doctors, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i, existing := range doctors {
		if existing.ID == d.ID {
			doctors[i] = d
			return r.save(ctx, doctors)
		}
	}
	return repo.ErrNotFound
}

func (r *DoctorKVRepository) Delete(ctx context.Context, id string) error {
	doctors, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i, d := range doctors {
		if d.ID == id {
			doctors = append(doctors[:i], doctors[i+1:]...)
			return r.save(ctx, doctors)
		}
	}
	return repo.ErrNotFound
}
