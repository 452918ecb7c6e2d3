package service

import (
	"context"

	"github.com/nexuscrm/nexus/internal/domain"
	"github.com/nexuscrm/nexus/internal/repository"
)

type profileService struct {
	profile repository.ProfileRepo
}

func NewProfileService(profile repository.ProfileRepo) ProfileService {
	return &profileService{profile: profile}
}

func (s *profileService) Get(ctx context.Context) (domain.UserProfile, error) {
	return s.profile.Get(ctx)
}

func (s *profileService) Update(ctx context.Context, field domain.ProfileField, value string) error {
	return s.profile.SetField(ctx, field, value)
}
