package get_available_vets

import (
	"context"

	getAvailableVets "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/usecase/get_available_vets"
)

type GetAvailableVetsUseCase interface {
	Execute(ctx context.Context, req *getAvailableVets.Request) (*getAvailableVets.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
