package payload

import (
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Shape вариант формата, в котором пришли занятые интервалы
type Shape string

const (
	// ShapeOccupancy одиночный интервал под ключом "resultado"
	ShapeOccupancy Shape = "resultado"
	// ShapeAppointments объект "citas" вида {"result": [...]}
	ShapeAppointments Shape = "citas"
	// ShapeCalendarExport выгрузка календаря: [{"body": {"result": [...]}}]
	ShapeCalendarExport Shape = "calendar"
	// ShapeIntervalList массив интервалов верхнего уровня
	ShapeIntervalList Shape = "interval_list"
	// ShapeResultEnvelope объект верхнего уровня с ключом "result" (значение "citas" без обертки)
	ShapeResultEnvelope Shape = "result"
)

// Candidate интервал в исходном текстовом виде, до парсинга дат
type Candidate struct {
	Shape Shape
	Index int
	From  string
	To    string
	// Problem заполняется декодером, если поля отсутствуют или не являются строками
	Problem string
}

// Source интервалы, извлеченные из одного варианта формата
type Source struct {
	Shape      Shape
	Candidates []Candidate
}

// DiagnosticKind категория проигнорированного элемента
type DiagnosticKind string

const (
	KindInterval DiagnosticKind = "interval"
	KindShape    DiagnosticKind = "shape"
	KindWeekday  DiagnosticKind = "weekday"
	KindJornada  DiagnosticKind = "jornada"
	KindHorario  DiagnosticKind = "horario"
	KindNumber   DiagnosticKind = "number"
)

// Diagnostic описание элемента, отброшенного при нормализации
// В JSON-ответ не попадает - только в логи, метрики и Response usecase
type Diagnostic struct {
	Kind   DiagnosticKind
	Shape  Shape
	Index  int
	Field  string
	Value  string
	Reason string
}

func (d Diagnostic) String() string {
	switch d.Kind {
	case KindInterval:
		return fmt.Sprintf("%s[%d]: %s", d.Shape, d.Index, d.Reason)
	case KindShape:
		return fmt.Sprintf("%s: %s", d.Shape, d.Reason)
	default:
		return fmt.Sprintf("%s %q: %s", d.Field, d.Value, d.Reason)
	}
}

// Normalized канонический вид входных данных
type Normalized struct {
	Busy        []domain.BusyInterval
	Filter      domain.FilterConfig
	Sources     []Source
	Diagnostics []Diagnostic
}

// CandidateCount количество интервалов во всех распознанных форматах
func (n *Normalized) CandidateCount() int {
	total := 0
	for _, s := range n.Sources {
		total += len(s.Candidates)
	}
	return total
}

// AllIntervalsDropped отличает "интервалов не передали" от "все интервалы некорректны"
func (n *Normalized) AllIntervalsDropped() bool {
	return n.CandidateCount() > 0 && len(n.Busy) == 0
}

// DroppedCount количество диагностик указанного вида
func (n *Normalized) DroppedCount(kind DiagnosticKind) int {
	count := 0
	for _, d := range n.Diagnostics {
		if d.Kind == kind {
			count++
		}
	}
	return count
}
