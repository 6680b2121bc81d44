package payload

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Ключи верхнего уровня с занятыми интервалами
const (
	keyOccupancy    = "resultado"
	keyAppointments = "citas"
	keyCalendar     = "calendar"
	keyResult       = "result"
)

// Normalizer приводит payload любого поддерживаемого вида к каноническому набору
// занятых интервалов и конфигурации фильтра
type Normalizer struct {
	location *time.Location
}

// NewNormalizer создает нормализатор; даты интервалов интерпретируются в location
func NewNormalizer(location *time.Location) *Normalizer {
	if location == nil {
		location = time.Local
	}
	return &Normalizer{location: location}
}

// Normalize разбирает payload
// Ошибку возвращает только для невалидного JSON и для JSON, который не объект и не массив.
// Отдельные некорректные интервалы и значения фильтра отбрасываются и попадают в Diagnostics
func (n *Normalizer) Normalize(raw []byte) (*Normalized, error) {
	var probe interface{}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}

	result := &Normalized{Filter: domain.DefaultFilterConfig()}

	switch {
	case startsWith(raw, '{'):
		root, _ := asObject(raw)
		n.collectFromObject(root, result)
		filter, diags := parseFilter(root)
		result.Filter = filter
		result.Diagnostics = append(result.Diagnostics, diags...)

	case startsWith(raw, '['):
		source, diag := decodeTopLevelArray(raw)
		n.addSource(result, source, diag)

	default:
		return nil, fmt.Errorf("%w: got %T", ErrUnsupportedPayload, probe)
	}

	n.parseCandidates(result)
	return result, nil
}

// collectFromObject объединяет интервалы всех вариантов, найденных в объекте, в порядке приоритета
func (n *Normalizer) collectFromObject(root object, result *Normalized) {
	if raw, ok := root[keyOccupancy]; ok && !isNull(raw) {
		source, diag := decodeOccupancy(raw)
		n.addSource(result, source, diag)
	}

	if raw, ok := root[keyAppointments]; ok && !isNull(raw) {
		source, diag := decodeAppointments(raw, ShapeAppointments)
		n.addSource(result, source, diag)
	}

	if raw, ok := root[keyCalendar]; ok && !isNull(raw) {
		source, diag := decodeCalendarExport(raw)
		n.addSource(result, source, diag)
	}

	if _, ok := root[keyResult]; ok {
		source, diag := decodeAppointmentsObject(root, ShapeResultEnvelope)
		n.addSource(result, source, diag)
	}
}

func (n *Normalizer) addSource(result *Normalized, source Source, diag *Diagnostic) {
	if diag != nil {
		result.Diagnostics = append(result.Diagnostics, *diag)
		return
	}
	result.Sources = append(result.Sources, source)
}

// parseCandidates парсит даты; ошибка в одном интервале не влияет на остальные
func (n *Normalizer) parseCandidates(result *Normalized) {
	for _, source := range result.Sources {
		for _, c := range source.Candidates {
			interval, reason := n.parseCandidate(c)
			if reason != "" {
				result.Diagnostics = append(result.Diagnostics, Diagnostic{
					Kind:   KindInterval,
					Shape:  c.Shape,
					Index:  c.Index,
					Value:  c.From + " - " + c.To,
					Reason: reason,
				})
				continue
			}
			result.Busy = append(result.Busy, interval)
		}
	}
}

func (n *Normalizer) parseCandidate(c Candidate) (domain.BusyInterval, string) {
	if c.Problem != "" {
		return domain.BusyInterval{}, c.Problem
	}

	start, err := time.ParseInLocation(domain.AppointmentDateTime, c.From, n.location)
	if err != nil {
		return domain.BusyInterval{}, fmt.Sprintf("invalid DATE_FROM %q", c.From)
	}

	end, err := time.ParseInLocation(domain.AppointmentDateTime, c.To, n.location)
	if err != nil {
		return domain.BusyInterval{}, fmt.Sprintf("invalid DATE_TO %q", c.To)
	}

	interval := domain.BusyInterval{Start: start, End: end}
	if !interval.IsValid() {
		return domain.BusyInterval{}, "DATE_TO is not after DATE_FROM"
	}
	return interval, ""
}
