package availabilityapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Ограничение на размер читаемого ответа
const maxResponseBytes = 4 << 20

// Client клиент для удаленного сервиса расчета доступности
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
// К baseURL добавляется завершающий слэш, если его нет
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Compute отправляет payload на сервис и возвращает свободные слоты по дням
func (c *Client) Compute(ctx context.Context, payload []byte) ([]Day, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.log.Info("Posting availability payload to %s (%d bytes)", c.baseURL, len(payload))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrInvalidResponse, err)
	}

	// Объект ошибки может прийти с любым статусом
	if remote, ok := decodeError(body); ok {
		c.log.Warn("Availability service returned error: status=%d, error=%s, detail=%s",
			resp.StatusCode, remote.Error, remote.Detail)
		if remote.Detail != "" {
			return nil, fmt.Errorf("%w: %s (%s)", ErrRemote, remote.Error, remote.Detail)
		}
		return nil, fmt.Errorf("%w: %s", ErrRemote, remote.Error)
	}

	// Обработка статус-кодов
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var days []Day
	if err := json.Unmarshal(body, &days); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if days == nil {
		days = []Day{}
	}

	c.log.Info("Availability received: days=%d", len(days))
	return days, nil
}

func decodeError(body []byte) (ErrorResponse, bool) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return ErrorResponse{}, false
	}

	var remote ErrorResponse
	if err := json.Unmarshal(trimmed, &remote); err != nil || remote.Error == "" {
		return ErrorResponse{}, false
	}
	return remote, true
}
