package engine

import (
	"time"

	"github.com/tartampluch/go-contacts/internal/config"
)

// UpcomingBirthday is one line of the upcoming birthdays report.
// It is computed on demand and never stored.
type UpcomingBirthday struct {
	// Name is the contact name (directory key).
	Name string

	// DateOfBirth is the birthday as entered.
	DateOfBirth time.Time

	// NextOccurrence is the birthday in today's year, or next year when it
	// has already passed.
	NextOccurrence time.Time

	// CongratulationDate is NextOccurrence moved to the following Monday
	// when it falls on a weekend.
	CongratulationDate time.Time

	// AgeNext is the age the person turns at NextOccurrence.
	AgeNext int
}

// FormattedDate renders the congratulation date as DD.MM.YYYY.
func (u UpcomingBirthday) FormattedDate() string {
	return u.CongratulationDate.Format(config.DateFormatInput)
}
