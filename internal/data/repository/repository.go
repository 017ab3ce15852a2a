package repository

import (
	"cinema-manager/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User  UserRepository
	OTP   OTPRepository
	Movie MovieRepository
	Hall  HallRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:  NewUserRepository(db, log),
		OTP:   NewOTPRepository(db, log),
		Movie: NewMovieRepository(db, log),
		Hall:  NewHallRepository(db, log),
	}
}
