package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/payload"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
)

// UseCase use case расчета свободных слотов на ближайшие дни
type UseCase struct {
	normalizer   PayloadNormalizer
	oracle       HolidayOracle
	location     *time.Location
	timeProvider TimeProvider
	metrics      MetricsRecorder
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// location - часовой пояс, в котором считаются "сегодня" и границы дней
func NewUseCase(
	normalizer PayloadNormalizer,
	oracle HolidayOracle,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.Local
	}
	return &UseCase{
		normalizer:   normalizer,
		oracle:       oracle,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithMetrics подключает сбор метрик
func (uc *UseCase) WithMetrics(recorder MetricsRecorder) *UseCase {
	uc.metrics = recorder
	return uc
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(provider TimeProvider) *UseCase {
	uc.timeProvider = provider
	return uc
}

// Execute выполняет use case расчета свободных слотов
// Паника внутри расчета превращается в ErrInternal, чтобы вызывающий всегда мог ответить JSON
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	started := time.Now()
	uc.logger.Info("GetAvailableSlots: request=%s, payload_bytes=%d", req.RequestID, len(req.Payload))

	defer func() {
		if r := recover(); r != nil {
			uc.logger.Error("GetAvailableSlots: request=%s: recovered panic: %v", req.RequestID, r)
			resp, err = nil, fmt.Errorf("%w: %v", ErrInternal, r)
		}
		uc.observe(resp, err, time.Since(started))
	}()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 1. Нормализуем payload
	normalized, err := uc.normalizer.Normalize(req.Payload)
	if err != nil {
		switch {
		case errors.Is(err, payload.ErrMalformedJSON):
			uc.logger.Warn("GetAvailableSlots: request=%s: malformed JSON: %v", req.RequestID, err)
			return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
		case errors.Is(err, payload.ErrUnsupportedPayload):
			uc.logger.Warn("GetAvailableSlots: request=%s: unsupported payload: %v", req.RequestID, err)
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedPayload, err)
		default:
			uc.logger.Error("GetAvailableSlots: request=%s: failed to normalize payload: %v", req.RequestID, err)
			return nil, fmt.Errorf("%w: failed to normalize payload: %v", ErrInternal, err)
		}
	}
	uc.reportDiagnostics(req.RequestID, normalized)

	// 2. Проверяем конфигурацию фильтра
	filter := normalized.Filter
	if err := validateFilter(filter); err != nil {
		uc.logger.Warn("GetAvailableSlots: request=%s: validation failed: %v", req.RequestID, err)
		return nil, err
	}

	// 3. Получаем текущую дату в часовом поясе сервиса
	today := domain.DateOf(uc.timeProvider.Now().In(uc.location))

	// 4. Выбираем дни
	selection := selectDays(today, filter, uc.oracle, domain.DayScanLimit)
	if selection.Truncated {
		uc.logger.Warn("GetAvailableSlots: request=%s: scan limit of %d days reached, selected %d of %d days",
			req.RequestID, domain.DayScanLimit, len(selection.Days), filter.TargetDayCount)
	}

	// 5. Для каждого дня вычисляем окно и свободные слоты
	days := make([]domain.DayAvailability, 0, len(selection.Days))
	for _, day := range selection.Days {
		window := resolveWindow(filter, day)
		days = append(days, domain.DayAvailability{
			Day:   day,
			Slots: generateFreeSlots(day, window, filter.SlotMinutes, normalized.Busy),
		})
	}

	// 6. Сортируем результат по дате
	resp = &Response{
		Days:                assembleResult(days),
		Truncated:           selection.Truncated,
		Diagnostics:         normalized.Diagnostics,
		AllIntervalsDropped: normalized.AllIntervalsDropped(),
	}

	uc.logger.Info("GetAvailableSlots: request=%s: today=%s, busy=%d, days=%d, slots=%d, truncated=%t",
		req.RequestID, today.Format(domain.DateFormat), len(normalized.Busy), len(resp.Days), resp.TotalSlots(), resp.Truncated)

	return resp, nil
}

// assembleResult сортирует дни по строке даты YYYY-MM-DD
func assembleResult(days []domain.DayAvailability) []domain.DayAvailability {
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Day.Format(domain.DateFormat) < days[j].Day.Format(domain.DateFormat)
	})
	return days
}

func (uc *UseCase) reportDiagnostics(requestID string, normalized *payload.Normalized) {
	for _, d := range normalized.Diagnostics {
		uc.logger.Warn("GetAvailableSlots: request=%s: ignored %s: %s", requestID, d.Kind, d.String())
	}

	if normalized.AllIntervalsDropped() {
		uc.logger.Warn("GetAvailableSlots: request=%s: all %d supplied intervals were rejected",
			requestID, normalized.CandidateCount())
	}

	if uc.metrics == nil {
		return
	}
	counts := make(map[payload.DiagnosticKind]int)
	for _, d := range normalized.Diagnostics {
		counts[d.Kind]++
	}
	for kind, n := range counts {
		uc.metrics.AddDroppedItems(string(kind), n)
	}
}

func (uc *UseCase) observe(resp *Response, err error, duration time.Duration) {
	if uc.metrics == nil {
		return
	}

	switch {
	case err == nil && resp.Truncated:
		uc.metrics.ObserveComputation(metrics.OutcomeTruncated, len(resp.Days), resp.TotalSlots(), duration)
	case err == nil:
		uc.metrics.ObserveComputation(metrics.OutcomeSuccess, len(resp.Days), resp.TotalSlots(), duration)
	case errors.Is(err, ErrInternal):
		uc.metrics.ObserveComputation(metrics.OutcomeFailure, 0, 0, duration)
	default:
		uc.metrics.ObserveComputation(metrics.OutcomeBadInput, 0, 0, duration)
	}
}
