package period

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Location is the fixed UTC-6 civil time every period boundary is computed in.
// It carries no daylight-saving rules.
var Location = time.FixedZone("CST", -6*60*60)

// DateLayout is the civil date format used for reference dates and day keys.
const DateLayout = "2006-01-02"

var monthNames = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

var displayMonths [12]string

func init() {
	caser := cases.Title(language.Spanish)
	for i, name := range monthNames {
		displayMonths[i] = caser.String(name)
	}
}

// MonthName returns the capitalized Spanish name of m.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return displayMonths[m-1]
}

// Key identifies one semi-monthly period.
type Key struct {
	Year  int
	Month time.Month
	Half  Half
}

// String formats the key as YYYY-MM-Q1 or YYYY-MM-Q2.
func (k Key) String() string {
	return fmt.Sprintf("%04d-%02d-Q%d", k.Year, int(k.Month), int(k.Half))
}

// Bounds returns midnight of the first and of the last civil day of the period.
func (k Key) Bounds() (time.Time, time.Time) {
	if k.Half == HalfFirst {
		return time.Date(k.Year, k.Month, 1, 0, 0, 0, 0, Location),
			time.Date(k.Year, k.Month, 15, 0, 0, 0, 0, Location)
	}
	return time.Date(k.Year, k.Month, 16, 0, 0, 0, 0, Location),
		time.Date(k.Year, k.Month, DaysIn(k.Year, k.Month), 0, 0, 0, 0, Location)
}

// Next returns the period that follows k.
func (k Key) Next() Key {
	if k.Half == HalfFirst {
		return Key{Year: k.Year, Month: k.Month, Half: HalfSecond}
	}
	if k.Month == time.December {
		return Key{Year: k.Year + 1, Month: time.January, Half: HalfFirst}
	}
	return Key{Year: k.Year, Month: k.Month + 1, Half: HalfFirst}
}

// DaysIn returns the real length of the month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, Location).Day()
}

// MonthIdentifiers returns both period identifiers of a calendar month.
func MonthIdentifiers(year int, month time.Month) []string {
	return []string{
		Key{Year: year, Month: month, Half: HalfFirst}.String(),
		Key{Year: year, Month: month, Half: HalfSecond}.String(),
	}
}

func halfOf(day int) Half {
	if day <= 15 {
		return HalfFirst
	}
	return HalfSecond
}

func civil(ref time.Time) (time.Time, error) {
	if ref.IsZero() {
		return time.Time{}, ErrInvalidReferenceDate
	}
	return ref.In(Location), nil
}

// KeyOf returns the period key of the reference instant.
func KeyOf(ref time.Time) (Key, error) {
	local, err := civil(ref)
	if err != nil {
		return Key{}, err
	}
	year, month, day := local.Date()
	return Key{Year: year, Month: month, Half: halfOf(day)}, nil
}

// Resolve returns the semi-monthly period the reference instant belongs to.
func Resolve(ref time.Time) (Info, error) {
	key, err := KeyOf(ref)
	if err != nil {
		return Info{}, err
	}

	name := MonthName(key.Month)
	info := Info{
		Year:       key.Year,
		Month:      key.Month,
		MonthName:  name,
		Half:       key.Half,
		Identifier: key.String(),
		Status:     StatusOpen,
	}

	if key.Half == HalfFirst {
		info.StartDay, info.EndDay = 1, 15
	} else {
		info.StartDay, info.EndDay = 16, DaysIn(key.Year, key.Month)
	}
	info.DisplayRange = fmt.Sprintf("%02d - %d de %s", info.StartDay, info.EndDay, name)

	return info, nil
}

// Identifier returns the stable YYYY-MM-Q{1|2} key of the reference instant.
func Identifier(ref time.Time) (string, error) {
	key, err := KeyOf(ref)
	if err != nil {
		return "", err
	}
	return key.String(), nil
}

// AdvanceToNext moves a reference date to the start of the following period:
// day 16 of the same month from the first half, day 1 of the next month from
// the second half.
func AdvanceToNext(ref time.Time) (time.Time, error) {
	local, err := civil(ref)
	if err != nil {
		return time.Time{}, err
	}
	year, month, day := local.Date()
	if halfOf(day) == HalfFirst {
		return time.Date(year, month, 16, 0, 0, 0, 0, Location), nil
	}
	return time.Date(year, month+1, 1, 0, 0, 0, 0, Location), nil
}

// ParseIdentifier parses a YYYY-MM-Q{1|2} identifier.
func ParseIdentifier(id string) (Key, error) {
	parts := strings.Split(id, "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 {
		return Key{}, fmt.Errorf("%w: %q", ErrInvalidIdentifier, id)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Key{}, fmt.Errorf("%w: %q", ErrInvalidIdentifier, id)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return Key{}, fmt.Errorf("%w: %q", ErrInvalidIdentifier, id)
	}

	var half Half
	switch parts[2] {
	case "Q1":
		half = HalfFirst
	case "Q2":
		half = HalfSecond
	default:
		return Key{}, fmt.Errorf("%w: %q", ErrInvalidIdentifier, id)
	}

	return Key{Year: year, Month: time.Month(month), Half: half}, nil
}

// ParseReferenceDate accepts a civil date (YYYY-MM-DD, read in Location) or an
// RFC 3339 timestamp.
func ParseReferenceDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidReferenceDate
	}
	if t, err := time.ParseInLocation(DateLayout, s, Location); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidReferenceDate, s)
}

// DayKey returns the civil date of t in Location, formatted as YYYY-MM-DD.
func DayKey(t time.Time) string {
	return t.In(Location).Format(DateLayout)
}
