package create_appointment

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrPetNotFound возвращается, когда питомец не найден или не принадлежит клиенту
	ErrPetNotFound = errors.New("create_appointment: pet not found")

	// ErrVetNotAvailable возвращается, когда у ветеринара нет записи о доступности
	// Ветеринар без объявленного расписания никогда не предлагается для записи
	ErrVetNotAvailable = errors.New("create_appointment: vet has no declared availability")

	// ErrSlotNotAvailable возвращается, когда выбранный слот занят или вне расписания
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrInvalidDate возвращается при некорректной дате записи
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
