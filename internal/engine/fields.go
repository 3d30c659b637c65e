package engine

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/tartampluch/go-contacts/internal/config"
)

// validate is shared by every field constructor; validator.Validate caches
// parsed tags and is safe for reuse.
var validate = validator.New()

// Name is a contact name, the key of the Directory.
type Name string

// Phone is a string of exactly ten decimal digits.
type Phone string

// Birthday is a calendar date without time of day, stored at UTC midnight.
type Birthday struct {
	t time.Time
}

// NewName validates a raw name. Any non-empty string is accepted.
func NewName(value string) (Name, error) {
	if err := validate.Var(value, config.TagName); err != nil {
		return "", NewError(KindInvalidName, value, err)
	}
	return Name(value), nil
}

func (n Name) String() string { return string(n) }

// NewPhone validates a raw phone number: digits 0-9 only, length 10.
func NewPhone(value string) (Phone, error) {
	if err := validate.Var(value, config.TagPhone); err != nil {
		return "", NewError(KindInvalidPhone, value, err)
	}
	return Phone(value), nil
}

func (p Phone) String() string { return string(p) }

// ParseBirthday parses a DD.MM.YYYY string denoting a real calendar date.
func ParseBirthday(value string) (Birthday, error) {
	t, err := time.Parse(config.DateFormatInput, value)
	if err != nil {
		return Birthday{}, NewError(KindInvalidBirthday, value, err)
	}
	return Birthday{t: t}, nil
}

// Time returns the date at UTC midnight.
func (b Birthday) Time() time.Time { return b.t }

// String renders the date as DD.MM.YYYY.
func (b Birthday) String() string {
	return b.t.Format(config.DateFormatInput)
}
