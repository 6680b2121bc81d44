package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Ключи фильтра в payload
const (
	keyFilter      = "filtro"
	keySlotMinutes = "minutos"
	keyDayCount    = "Cantidad_dias"
	keyWeekdays    = "dias"
	keyJornada     = "jornada"
	keyHorario     = "horario"
)

// weekdayNames названия дней недели после удаления диакритики и приведения к нижнему регистру
var weekdayNames = map[string]int{
	"lunes":     0,
	"martes":    1,
	"miercoles": 2,
	"jueves":    3,
	"viernes":   4,
	"sabado":    5,
	"domingo":   6,
}

// Синонимы границ явного окна в объектной форме horario
var (
	horarioFromKeys = []string{"desde", "inicio", "from"}
	horarioToKeys   = []string{"hasta", "fin", "to"}
)

// foldWeekday убирает диакритику и приводит название дня к нижнему регистру
func foldWeekday(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// parseFilter собирает FilterConfig из корневого объекта payload
// Некорректные значения не прерывают расчет: используется значение по умолчанию и пишется диагностика
func parseFilter(root object) (domain.FilterConfig, []Diagnostic) {
	cfg := domain.DefaultFilterConfig()
	var diags []Diagnostic

	if raw, ok := root[keySlotMinutes]; ok {
		if n, ok := parsePositiveInt(raw); ok {
			cfg.SlotMinutes = n
		} else {
			diags = append(diags, fieldProblem(KindNumber, keySlotMinutes, raw, "not a positive integer, using default"))
		}
	}

	if raw, ok := root[keyDayCount]; ok {
		if n, ok := parsePositiveInt(raw); ok {
			cfg.TargetDayCount = n
		} else {
			diags = append(diags, fieldProblem(KindNumber, keyDayCount, raw, "not a positive integer, using default"))
		}
	}

	rawFilter, ok := root[keyFilter]
	if !ok || isNull(rawFilter) {
		return cfg, diags
	}

	filter, ok := asObject(rawFilter)
	if !ok {
		return cfg, append(diags, fieldProblem(KindShape, keyFilter, rawFilter, "expected an object"))
	}

	if raw, ok := filter[keyWeekdays]; ok && !isNull(raw) {
		weekdays, weekdayDiags := parseWeekdays(raw)
		cfg.AllowedWeekdays = weekdays
		diags = append(diags, weekdayDiags...)
	}

	if raw, ok := filter[keyJornada]; ok && !isNull(raw) {
		n, ok := parsePositiveInt(raw)
		if j := domain.Jornada(n); ok && j.IsValid() {
			cfg.Jornada = &j
		} else {
			diags = append(diags, fieldProblem(KindJornada, keyJornada, raw, "unknown jornada code, using full day"))
		}
	}

	if raw, ok := filter[keyHorario]; ok && !isNull(raw) {
		window, horarioDiags := parseHorario(raw)
		cfg.ExplicitWindow = window
		diags = append(diags, horarioDiags...)
	}

	return cfg, diags
}

// parseWeekdays принимает массив названий или строку через запятую
func parseWeekdays(raw json.RawMessage) (map[int]struct{}, []Diagnostic) {
	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		var joined string
		if err := json.Unmarshal(raw, &joined); err != nil {
			return nil, []Diagnostic{fieldProblem(KindWeekday, keyWeekdays, raw, "expected a list of weekday names")}
		}
		names = strings.Split(joined, ",")
	}

	var diags []Diagnostic
	weekdays := make(map[int]struct{}, len(names))
	for _, name := range names {
		index, ok := weekdayNames[foldWeekday(name)]
		if !ok {
			diags = append(diags, Diagnostic{Kind: KindWeekday, Field: keyWeekdays, Value: name, Reason: "unknown weekday name"})
			continue
		}
		weekdays[index] = struct{}{}
	}
	return weekdays, diags
}

// parseHorario принимает строку "HH:MM-HH:MM" или объект {"desde": "HH:MM", "hasta": "HH:MM"}
// Любая из границ может отсутствовать
func parseHorario(raw json.RawMessage) (*domain.PartialWindow, []Diagnostic) {
	var from, to string

	if obj, ok := asObject(raw); ok {
		from, _ = stringField(obj, horarioFromKeys)
		to, _ = stringField(obj, horarioToKeys)
	} else {
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil, []Diagnostic{fieldProblem(KindHorario, keyHorario, raw, "expected \"HH:MM-HH:MM\" or an object")}
		}
		parts := strings.Split(text, "-")
		if len(parts) != 2 {
			return nil, []Diagnostic{fieldProblem(KindHorario, keyHorario, raw, "expected \"HH:MM-HH:MM\"")}
		}
		from, to = parts[0], parts[1]
	}

	var diags []Diagnostic
	window := &domain.PartialWindow{}

	if ts, ok, diag := parseEndpoint(keyHorario+".desde", from); ok {
		window.From = &ts
	} else if diag != nil {
		diags = append(diags, *diag)
	}
	if ts, ok, diag := parseEndpoint(keyHorario+".hasta", to); ok {
		window.To = &ts
	} else if diag != nil {
		diags = append(diags, *diag)
	}

	if window.From == nil && window.To == nil {
		return nil, diags
	}
	return window, diags
}

func parseEndpoint(field, value string) (types.TimeString, bool, *Diagnostic) {
	value = strings.TrimSpace(value)
	if value == "" {
		return types.TimeString{}, false, nil
	}
	ts, err := types.NewTimeStringFromString(value)
	if err != nil {
		return types.TimeString{}, false, &Diagnostic{Kind: KindHorario, Field: field, Value: value, Reason: "invalid time of day"}
	}
	return ts, true, nil
}

// parsePositiveInt принимает целое число или строку с целым числом
func parsePositiveInt(raw json.RawMessage) (int, bool) {
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		text = string(bytes.TrimSpace(raw))
	}

	text = strings.TrimSpace(text)
	n, err := strconv.Atoi(text)
	if err != nil {
		// 60.0 и подобные целые значения в виде float; слишком большие числа насыщаются до MaxInt
		f, ferr := strconv.ParseFloat(text, 64)
		switch {
		case ferr != nil && !errors.Is(ferr, strconv.ErrRange):
			return 0, false
		case ferr == nil && math.IsInf(f, 0), math.IsNaN(f), f <= 0:
			return 0, false
		case f >= math.MaxInt:
			n = math.MaxInt
		case f != math.Trunc(f):
			return 0, false
		default:
			n = int(f)
		}
	}
	if n <= 0 {
		return 0, false
	}
	return n, true
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

func fieldProblem(kind DiagnosticKind, field string, raw json.RawMessage, reason string) Diagnostic {
	return Diagnostic{Kind: kind, Field: field, Value: string(raw), Reason: reason}
}
