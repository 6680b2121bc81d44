package holidays

import "time"

// Границы лет, для которых корректен расчет даты Пасхи
const (
	MinYear = 1583
	MaxYear = 9999
)

// sundayName имя, под которым воскресенья попадают в список
const sundayName = "Domingo"

// ListRequest запрос списка нерабочих дней года
type ListRequest struct {
	Year           int
	IncludeSundays bool // добавить все воскресенья года, как в исходном расписании
}

// Day нерабочий день
type Day struct {
	Date   time.Time
	Name   string
	Sunday bool
}

// ListResponse нерабочие дни года по возрастанию даты
type ListResponse struct {
	Year    int
	Country string
	Days    []Day
}
