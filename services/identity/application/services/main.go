package services

import (
	"github.com/ghuser/blooprint/pkg/app"
	"github.com/ghuser/blooprint/services/identity/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Auth *AuthService
}

// New wires all identity application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewUserRepository(a.Db)
	return &Services{
		Auth: NewAuthService(repo, a.Tokens),
	}
}
