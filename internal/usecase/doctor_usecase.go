package usecase

import (
	"context"
	"errors"

	"pslab/internal/domain/model"
	repo "pslab/internal/repository"
)

type DoctorUsecase struct {
	doctorRepo repo.DoctorRepository
	idGen      IDGenerator
}

func NewDoctorUsecase(doctorRepo repo.DoctorRepository, idGen IDGenerator) *DoctorUsecase {
	return &DoctorUsecase{doctorRepo: doctorRepo, idGen: idGen}
}

func (u *DoctorUsecase) List(ctx context.Context) ([]model.Doctor, error) {
	return u.doctorRepo.List(ctx)
}

func (u *DoctorUsecase) GetByID(ctx context.Context, id string) (model.Doctor, bool, error) {
	d, err := u.doctorRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Doctor{}, false, nil
	}
	if err != nil {
		return model.Doctor{}, false, err
	}
	return d, true, nil
}

func (u *DoctorUsecase) Add(ctx context.Context, d model.Doctor) (model.Doctor, error) {
	d.ID = u.idGen.NewID()
	if err := u.doctorRepo.Create(ctx, d); err != nil {
		return model.Doctor{}, err
	}
	return d, nil
}

func (u *DoctorUsecase) Update(ctx context.Context, d model.Doctor) error {
	err := u.doctorRepo.Update(ctx, d)
	if errors.Is(err, repo.ErrNotFound) {
		return nil
	}
	return err
}

func (u *DoctorUsecase) Delete(ctx context.Context, id string) error {
	err := u.doctorRepo.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil
	}
	return err
}
