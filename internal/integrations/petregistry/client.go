package petregistry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с реестром питомцев (медицинские карты)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента реестра питомцев
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetPet получает питомца клиента по ID
func (c *Client) GetPet(ctx context.Context, clientID, petID int64) (*Pet, error) {
	url := fmt.Sprintf("%s/internal/clients/%d/pets/%d", c.baseURL, clientID, petID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid client or pet ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrPetNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var pet Pet
	if err := json.NewDecoder(resp.Body).Decode(&pet); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &pet, nil
}

// GetPetWithGracefulDegradation получает питомца с graceful degradation
// При недоступности реестра возвращает ErrServiceDegraded: запись на приём
// создаётся без денормализованного снимка питомца, а не падает целиком
func (c *Client) GetPetWithGracefulDegradation(ctx context.Context, clientID, petID int64) (*Pet, error) {
	c.log.Info("Fetching pet id=%d for client_id=%d", petID, clientID)

	pet, err := c.GetPet(ctx, clientID, petID)
	if err != nil {
		// Бизнес-ошибку "питомец не найден" пробрасываем дальше
		if errors.Is(err, ErrPetNotFound) {
			c.log.Info("Pet id=%d not found for client_id=%d", petID, clientID)
			return nil, err
		}

		// Для остальных ошибок (недоступность сервиса, timeout, ошибки парсинга)
		// применяем graceful degradation
		c.log.Error("PetRegistry unavailable, applying graceful degradation for client_id=%d pet_id=%d: %v",
			clientID, petID, err)
		return nil, fmt.Errorf("%w: client_id=%d, pet_id=%d, error=%v", ErrServiceDegraded, clientID, petID, err)
	}

	c.log.Info("Successfully fetched pet id=%d (%s, %s)", pet.ID, pet.Name, pet.Species)
	return pet, nil
}
