package petregistry

import "errors"

var (
	// ErrPetNotFound возвращается, когда питомец не найден или не принадлежит клиенту
	ErrPetNotFound = errors.New("pet not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("petregistry client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("petregistry client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что реестр питомцев недоступен и запись создаётся без
	// денормализованных данных питомца
	ErrServiceDegraded = errors.New("petregistry unavailable: graceful degradation applied")
)
