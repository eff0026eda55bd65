package service

import (
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
)

type Services struct {
	AuthService AuthService
	TodoService TodoService
}

func NewServices(storages store.Storages, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.Users, storages.Sessions, logger),
		TodoService: NewTodoService(storages.Todos, logger),
	}
}
