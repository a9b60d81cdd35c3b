package schedule

// fallbackDayStart is substituted when the configured day start does not
// parse. The grid must always be renderable, even from a corrupted
// configuration; a recovered default beats an unrenderable timetable.
const fallbackDayStart = "09:00"

// Slots generates the ordered slot start times for one day: slot i starts
// at dayStart + i × unitMinutes. Arithmetic is raw minute arithmetic with
// no wrap at midnight; callers must not assume slots stay within one
// calendar day for large unitsPerDay × unitMinutes products.
func Slots(dayStart string, unitMinutes, unitsPerDay int) []MinuteOfDay {
	start := parseStartOrFallback(dayStart)
	slots := make([]MinuteOfDay, 0, max(unitsPerDay, 0))
	for i := 0; i < unitsPerDay; i++ {
		slots = append(slots, start.Add(i*unitMinutes))
	}
	return slots
}

// SlotStrings is Slots rendered as "HH:MM" labels.
func SlotStrings(dayStart string, unitMinutes, unitsPerDay int) []string {
	slots := Slots(dayStart, unitMinutes, unitsPerDay)
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}

// DayEnd returns the close of the last slot: dayStart + unitMinutes × unitsPerDay.
func DayEnd(dayStart string, unitMinutes, unitsPerDay int) MinuteOfDay {
	return parseStartOrFallback(dayStart).Add(unitMinutes * unitsPerDay)
}

func parseStartOrFallback(dayStart string) MinuteOfDay {
	start, err := ParseClock(dayStart)
	if err != nil {
		start, _ = ParseClock(fallbackDayStart)
	}
	return start
}
