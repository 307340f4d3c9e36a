package calendar

// Built-in Japanese national holidays. Dates beyond 2026 require either a
// config update (CALENDAR_EXTRA_HOLIDAYS) or an AddHoliday call at runtime.
var holidays2025 = []string{
	"2025-01-01",
	"2025-01-13",
	"2025-02-11",
	"2025-02-23",
	"2025-02-24",
	"2025-03-20",
	"2025-04-29",
	"2025-05-03",
	"2025-05-04",
	"2025-05-05",
	"2025-05-06",
	"2025-07-21",
	"2025-08-11",
	"2025-09-15",
	"2025-09-23",
	"2025-10-13",
	"2025-11-03",
	"2025-11-23",
	"2025-11-24",
}

var holidays2026 = []string{
	"2026-01-01",
	"2026-01-12",
	"2026-02-11",
	"2026-02-23",
	"2026-03-20",
	"2026-04-29",
	"2026-05-03",
	"2026-05-04",
	"2026-05-05",
	"2026-05-06",
	"2026-07-20",
	"2026-08-11",
	"2026-09-21",
	"2026-09-22",
	"2026-09-23",
	"2026-10-12",
	"2026-11-03",
	"2026-11-23",
}

func defaultHolidays() []string {
	out := make([]string, 0, len(holidays2025)+len(holidays2026))
	out = append(out, holidays2025...)
	out = append(out, holidays2026...)
	return out
}
