package payload

import (
	"bytes"
	"encoding/json"
)

// Имена полей интервала. Вариант с пробелом приходит из "resultado" и имеет приоритет
var (
	fromKeys          = []string{"DATE_FROM"}
	toKeys            = []string{"DATE_TO"}
	occupancyFromKeys = []string{"DATE FROM", "DATE_FROM"}
	occupancyToKeys   = []string{"DATE TO", "DATE_TO"}
)

type object = map[string]json.RawMessage

// decodeOccupancy разбирает одиночный интервал под ключом "resultado"
func decodeOccupancy(raw json.RawMessage) (Source, *Diagnostic) {
	obj, ok := asObject(raw)
	if !ok {
		return Source{}, shapeProblem(ShapeOccupancy, "expected an object")
	}

	return Source{
		Shape:      ShapeOccupancy,
		Candidates: []Candidate{candidateFrom(obj, ShapeOccupancy, 0, occupancyFromKeys, occupancyToKeys)},
	}, nil
}

// decodeAppointments разбирает объект {"result": [...]} (ключ "citas" или верхний уровень)
func decodeAppointments(raw json.RawMessage, shape Shape) (Source, *Diagnostic) {
	obj, ok := asObject(raw)
	if !ok {
		return Source{}, shapeProblem(shape, "expected an object with a result array")
	}
	return decodeAppointmentsObject(obj, shape)
}

func decodeAppointmentsObject(obj object, shape Shape) (Source, *Diagnostic) {
	items, ok := asArray(obj["result"])
	if !ok {
		return Source{}, shapeProblem(shape, "result is missing or not an array")
	}

	return Source{Shape: shape, Candidates: candidatesFrom(items, shape)}, nil
}

// decodeCalendarExport разбирает выгрузку календаря: читается только body первого элемента
func decodeCalendarExport(raw json.RawMessage) (Source, *Diagnostic) {
	envelopes, ok := asArray(raw)
	if !ok {
		return Source{}, shapeProblem(ShapeCalendarExport, "expected an array")
	}
	if len(envelopes) == 0 {
		return Source{Shape: ShapeCalendarExport}, nil
	}

	first, ok := asObject(envelopes[0])
	if !ok {
		return Source{}, shapeProblem(ShapeCalendarExport, "first element is not an object")
	}

	body, ok := asObject(first["body"])
	if !ok {
		return Source{}, shapeProblem(ShapeCalendarExport, "body is missing or not an object")
	}

	items, ok := asArray(body["result"])
	if !ok {
		return Source{}, shapeProblem(ShapeCalendarExport, "body.result is missing or not an array")
	}

	return Source{Shape: ShapeCalendarExport, Candidates: candidatesFrom(items, ShapeCalendarExport)}, nil
}

// decodeTopLevelArray различает выгрузку календаря и простой список интервалов
func decodeTopLevelArray(raw json.RawMessage) (Source, *Diagnostic) {
	items, _ := asArray(raw)
	if len(items) > 0 {
		if first, ok := asObject(items[0]); ok {
			if _, hasBody := first["body"]; hasBody {
				return decodeCalendarExport(raw)
			}
		}
	}

	return Source{Shape: ShapeIntervalList, Candidates: candidatesFrom(items, ShapeIntervalList)}, nil
}

func candidatesFrom(items []json.RawMessage, shape Shape) []Candidate {
	candidates := make([]Candidate, 0, len(items))
	for i, item := range items {
		obj, ok := asObject(item)
		if !ok {
			candidates = append(candidates, Candidate{Shape: shape, Index: i, Problem: "entry is not an object"})
			continue
		}
		candidates = append(candidates, candidateFrom(obj, shape, i, fromKeys, toKeys))
	}
	return candidates
}

func candidateFrom(obj object, shape Shape, index int, fromNames, toNames []string) Candidate {
	c := Candidate{Shape: shape, Index: index}

	from, fromOK := stringField(obj, fromNames)
	to, toOK := stringField(obj, toNames)
	switch {
	case !fromOK:
		c.Problem = "DATE_FROM is missing or not a string"
	case !toOK:
		c.Problem = "DATE_TO is missing or not a string"
	}

	c.From, c.To = from, to
	return c
}

// stringField берет первое присутствующее поле из списка; значение должно быть строкой
func stringField(obj object, names []string) (string, bool) {
	for _, name := range names {
		raw, ok := obj[name]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return s, true
	}
	return "", false
}

func asObject(raw json.RawMessage) (object, bool) {
	if !startsWith(raw, '{') {
		return nil, false
	}
	var obj object
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, false
	}
	return obj, true
}

func asArray(raw json.RawMessage) ([]json.RawMessage, bool) {
	if !startsWith(raw, '[') {
		return nil, false
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	return items, true
}

func startsWith(raw json.RawMessage, c byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == c
}

func shapeProblem(shape Shape, reason string) *Diagnostic {
	return &Diagnostic{Kind: KindShape, Shape: shape, Reason: reason}
}
