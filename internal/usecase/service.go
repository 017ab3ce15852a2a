package usecase

import (
	"cinema-manager/internal/data/repository"
	"cinema-manager/pkg/mailer"
	"cinema-manager/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth  AuthService
	Admin AdminService
	Movie MovieService
	Hall  HallService
}

func NewService(repo *repository.Repository, config *utils.Config, mail mailer.Mailer, log *zap.Logger) *Service {
	return &Service{
		Auth:  NewAuthService(repo, config, mail, log),
		Admin: NewAdminService(repo.User, log),
		Movie: NewMovieService(repo.Movie, log),
		Hall:  NewHallService(repo.Hall, log),
	}
}
