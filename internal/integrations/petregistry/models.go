package petregistry

// Pet модель питомца из реестра медицинских карт
type Pet struct {
	ID       int64  `json:"id"`
	ClientID int64  `json:"client_id"`
	Name     string `json:"name"`
	Species  string `json:"species"`
	Breed    string `json:"breed"`
	AgeYears int    `json:"age_years"`
}

// ErrorResponse модель ошибки от реестра питомцев
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
