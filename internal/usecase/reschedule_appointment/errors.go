package reschedule_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда исходная запись не найдена
	ErrAppointmentNotFound = errors.New("reschedule_appointment: appointment not found")

	// ErrCannotReschedule возвращается, когда запись в терминальном статусе
	ErrCannotReschedule = errors.New("reschedule_appointment: appointment cannot be rescheduled")

	// ErrAccessDenied возвращается, когда пользователь не владелец записи и не сотрудник
	ErrAccessDenied = errors.New("reschedule_appointment: access denied")

	// ErrVetNotAvailable возвращается, когда у ветеринара нет записи о доступности
	ErrVetNotAvailable = errors.New("reschedule_appointment: vet has no declared availability")

	// ErrSlotNotAvailable возвращается, когда новый слот занят или вне расписания
	ErrSlotNotAvailable = errors.New("reschedule_appointment: slot is not available")

	// ErrInvalidDate возвращается при некорректной дате новой записи
	ErrInvalidDate = errors.New("reschedule_appointment: invalid appointment date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_appointment: internal error")
)
