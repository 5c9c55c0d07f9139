package entities

import (
	"fmt"
	"strings"
	"time"
)

type Pharmacy struct {
	ID            int64
	Name          string
	Address       string
	Region        string
	Comune        string
	OpensAt       string
	ClosesAt      string
	OperatingDays []Weekday
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Weekday string

const (
	Monday    Weekday = "MON"
	Tuesday   Weekday = "TUE"
	Wednesday Weekday = "WED"
	Thursday  Weekday = "THU"
	Friday    Weekday = "FRI"
	Saturday  Weekday = "SAT"
	Sunday    Weekday = "SUN"
)

var weekOrder = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func weekdayOf(d time.Weekday) Weekday {
	// time.Sunday == 0
	return weekOrder[(int(d)+6)%7]
}

// ParseOperatingDays разбирает строку вида "MON,TUE,FRI". Дубликаты
// схлопываются, порядок всегда понедельник..воскресенье.
func ParseOperatingDays(raw string) ([]Weekday, error) {
	seen := make(map[Weekday]bool, len(weekOrder))
	for _, part := range strings.Split(raw, ",") {
		code := Weekday(strings.ToUpper(strings.TrimSpace(part)))
		if code == "" {
			continue
		}
		if !code.IsValid() {
			return nil, fmt.Errorf("unknown weekday %q", part)
		}
		seen[code] = true
	}

	days := make([]Weekday, 0, len(seen))
	for _, day := range weekOrder {
		if seen[day] {
			days = append(days, day)
		}
	}
	return days, nil
}

// WeekdaysOf приводит коды дней к верхнему регистру без проверки, её делает сервис аптек.
func WeekdaysOf(codes []string) []Weekday {
	days := make([]Weekday, len(codes))
	for i, code := range codes {
		days[i] = Weekday(strings.ToUpper(strings.TrimSpace(code)))
	}
	return days
}

func FormatOperatingDays(days []Weekday) string {
	codes := make([]string, 0, len(days))
	for _, day := range weekOrder {
		for _, d := range days {
			if d == day {
				codes = append(codes, string(day))
				break
			}
		}
	}
	return strings.Join(codes, ",")
}

func (w Weekday) IsValid() bool {
	for _, day := range weekOrder {
		if day == w {
			return true
		}
	}
	return false
}

// ParseClock проверяет формат "HH:MM".
func ParseClock(value string) (time.Duration, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, fmt.Errorf("invalid clock %q: %w", value, err)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// IsOpenAt учитывает дни работы и часы. Ночной режим (закрытие раньше
// открытия) означает работу через полночь.
func (p *Pharmacy) IsOpenAt(at time.Time) bool {
	if !p.Active {
		return false
	}

	opens, err := ParseClock(p.OpensAt)
	if err != nil {
		return false
	}
	closes, err := ParseClock(p.ClosesAt)
	if err != nil {
		return false
	}

	day := weekdayOf(at.Weekday())
	clock := time.Duration(at.Hour())*time.Hour + time.Duration(at.Minute())*time.Minute

	worksOn := func(d Weekday) bool {
		for _, od := range p.OperatingDays {
			if od == d {
				return true
			}
		}
		return false
	}

	if opens <= closes {
		return worksOn(day) && clock >= opens && clock < closes
	}

	if clock >= opens {
		return worksOn(day)
	}
	previous := weekdayOf(at.Add(-24 * time.Hour).Weekday())
	return clock < closes && worksOn(previous)
}

type PharmacyModify struct {
	ID            *int64
	Name          *string
	Address       *string
	Region        *string
	Comune        *string
	OpensAt       *string
	ClosesAt      *string
	OperatingDays []Weekday
	Active        *bool
}
