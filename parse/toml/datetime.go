package toml

import "fmt"

// TimeOffset is a signed minute count from UTC. The source material is
// inconsistent about "minutes total" vs. "hours and minutes"; this package
// settles on the single signed-minute form everywhere.
type TimeOffset int32

// Hours and Minutes split the offset back into its component parts for
// formatting. Hours truncates toward zero and keeps the offset's sign;
// Minutes is the absolute remainder, always in [0, 59], so an offset
// between -59 and -1 splits to Hours 0 and a positive Minutes.
func (o TimeOffset) Hours() int { return int(o) / 60 }

func (o TimeOffset) Minutes() int {
	m := int(o) % 60
	if m < 0 {
		m = -m
	}
	return m
}

// LocalDate is a calendar date with no time-of-day or offset component.
type LocalDate struct {
	Year  int
	Month int
	Day   int
}

func (d LocalDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// LocalTime is a time-of-day with no date or offset component. Nanosecond
// holds the fractional-second component, always in [0, 999999999].
type LocalTime struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

func (t LocalTime) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	if t.Nanosecond != 0 {
		s += fmt.Sprintf(".%09d", t.Nanosecond)
	}
	return s
}

// LocalDateTime is a date and time with no offset component.
type LocalDateTime struct {
	Date LocalDate
	Time LocalTime
}

func (dt LocalDateTime) String() string {
	return dt.Date.String() + "T" + dt.Time.String()
}

// OffsetDateTime is a date and time anchored to a UTC offset.
type OffsetDateTime struct {
	Date   LocalDate
	Time   LocalTime
	Offset TimeOffset
	// Z is true when the document spelled the offset as "Z" rather than
	// "+00:00"; both mean the same instant, but the writer reproduces the
	// document's own spelling when it round-trips a value it parsed.
	Z bool
}

func (dt OffsetDateTime) String() string {
	s := dt.Date.String() + "T" + dt.Time.String()
	if dt.Z && dt.Offset == 0 {
		return s + "Z"
	}
	sign := "+"
	off := int(dt.Offset)
	if off < 0 {
		sign = "-"
		off = -off
	}
	return s + fmt.Sprintf("%s%02d:%02d", sign, off/60, off%60)
}

// ToLocalDateTime strips the offset, per the Integer->Float-style
// promotion table in §4.1: OffsetDateTime -> LocalDateTime.
func (dt OffsetDateTime) ToLocalDateTime() LocalDateTime {
	return LocalDateTime{Date: dt.Date, Time: dt.Time}
}

// ToLocalDate strips both the offset and the time-of-day.
func (dt OffsetDateTime) ToLocalDate() LocalDate { return dt.Date }

// ToLocalDate strips the time-of-day from a LocalDateTime.
func (dt LocalDateTime) ToLocalDate() LocalDate { return dt.Date }
