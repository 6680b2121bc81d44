package holidays

import "time"

// CountryColombia код юрисдикции Колумбии
const CountryColombia = "CO"

// Праздники с фиксированной датой
var coFixed = []struct {
	month time.Month
	day   int
	name  string
}{
	{time.January, 1, "Año Nuevo"},
	{time.May, 1, "Día del Trabajo"},
	{time.July, 20, "Día de la Independencia"},
	{time.August, 7, "Batalla de Boyacá"},
	{time.December, 8, "Inmaculada Concepción"},
	{time.December, 25, "Navidad"},
}

// Праздники, переносимые на ближайший понедельник (Ley Emiliani)
var coMovable = []struct {
	month time.Month
	day   int
	name  string
}{
	{time.January, 6, "Día de los Reyes Magos"},
	{time.March, 19, "Día de San José"},
	{time.June, 29, "San Pedro y San Pablo"},
	{time.August, 15, "La Asunción de la Virgen"},
	{time.October, 12, "Día de la Raza"},
	{time.November, 1, "Día de Todos los Santos"},
	{time.November, 11, "Independencia de Cartagena"},
}

// colombianHolidays возвращает праздники Колумбии за год
func colombianHolidays(year int) []Holiday {
	result := make([]Holiday, 0, 18)

	for _, h := range coFixed {
		result = append(result, Holiday{Date: date(year, h.month, h.day), Name: h.name})
	}

	for _, h := range coMovable {
		result = append(result, Holiday{Date: nextMonday(date(year, h.month, h.day)), Name: h.name})
	}

	easter := easterSunday(year)
	result = append(result,
		Holiday{Date: easter.AddDate(0, 0, -3), Name: "Jueves Santo"},
		Holiday{Date: easter.AddDate(0, 0, -2), Name: "Viernes Santo"},
		Holiday{Date: nextMonday(easter.AddDate(0, 0, 39)), Name: "Ascensión del Señor"},
		Holiday{Date: nextMonday(easter.AddDate(0, 0, 60)), Name: "Corpus Christi"},
		Holiday{Date: nextMonday(easter.AddDate(0, 0, 68)), Name: "Sagrado Corazón"},
	)

	return result
}

// easterSunday вычисляет дату Пасхи (григорианский календарь, алгоритм Мееуса/Бутчера)
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1

	return date(year, time.Month(month), day)
}

// nextMonday возвращает ту же дату, если это понедельник, иначе следующий понедельник
func nextMonday(t time.Time) time.Time {
	offset := (int(time.Monday) - int(t.Weekday()) + 7) % 7
	return t.AddDate(0, 0, offset)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
