package engine

import (
	"log/slog"
	"time"

	"github.com/tartampluch/go-contacts/internal/config"
)

const hoursPerDay = 24

// UpcomingBirthdays returns, in directory order, the records whose birthday
// falls within the next config.UpcomingWindowDays days (today included).
// Records without a birthday are skipped.
func UpcomingBirthdays(dir *Directory, today time.Time) []UpcomingBirthday {
	todayDate := dateOf(today)
	stats := struct{ total, withBday, upcoming int }{}
	var upcoming []UpcomingBirthday

	for name, r := range dir.All() {
		stats.total++
		if r.Birthday == nil {
			continue
		}
		stats.withBday++

		birthDate := r.Birthday.Time()
		next, ageNext := calculateNextOccurrence(todayDate, birthDate)

		days := daysBetween(todayDate, next)
		if days < 0 || days > config.UpcomingWindowDays {
			continue
		}
		stats.upcoming++

		if days == 0 {
			slog.Debug(config.MsgBdayToday,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyName, string(name),
				config.LogKeyDOB, birthDate.Format(config.DateFormatInput))
		}

		upcoming = append(upcoming, UpcomingBirthday{
			Name:               string(name),
			DateOfBirth:        birthDate,
			NextOccurrence:     next,
			CongratulationDate: congratulationDate(next),
			AgeNext:            ageNext,
		})
	}

	slog.Debug(config.MsgUpcomingDone,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyToday, todayDate.Format(config.DateFormatInput),
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyTotal, stats.total),
			slog.Int(config.LogKeyFound, stats.withBday),
			slog.Int(config.LogKeyUpcoming, stats.upcoming),
		),
	)
	return upcoming
}

// dateOf keeps the calendar date of t (in its own location) at UTC midnight,
// so that day arithmetic is not affected by DST transitions.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / hoursPerDay)
}

// calculateNextOccurrence determines the next birthday date relative to today
// (a UTC-midnight date). A birthday falling on today counts as the next one.
func calculateNextOccurrence(today time.Time, birthDate time.Time) (time.Time, int) {
	currentYear := today.Year()

	// time.Date normalizes Feb 29 to March 1st when currentYear is not a leap year.
	candidate := time.Date(currentYear, birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, time.UTC)

	if candidate.Before(today) {
		candidate = time.Date(currentYear+1, birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, time.UTC)
	}

	return candidate, candidate.Year() - birthDate.Year()
}

// congratulationDate moves a Saturday or Sunday to the following Monday.
func congratulationDate(d time.Time) time.Time {
	// Monday=0 ... Sunday=6
	idx := (int(d.Weekday()) + 6) % 7
	if idx >= 5 {
		return d.AddDate(0, 0, 7-idx)
	}
	return d
}
