package engine

import (
	"fmt"
	"strings"

	"github.com/tartampluch/go-contacts/internal/config"
)

// Record aggregates one contact: a name, an ordered list of phones
// (duplicates allowed, insertion order kept) and at most one birthday.
type Record struct {
	Name     Name
	Phones   []Phone
	Birthday *Birthday
}

// NewRecord creates an empty record for the given name.
func NewRecord(name Name) *Record {
	return &Record{Name: name}
}

// AddPhone appends a phone. Duplicates are not rejected.
func (r *Record) AddPhone(p Phone) {
	r.Phones = append(r.Phones, p)
}

// RemovePhone drops every phone equal to text. It is a no-op when none match.
func (r *Record) RemovePhone(text string) {
	kept := r.Phones[:0]
	for _, p := range r.Phones {
		if string(p) != text {
			kept = append(kept, p)
		}
	}
	r.Phones = kept
}

// EditPhone removes every phone equal to oldText and appends newPhone.
// When oldText is absent the net effect is a plain append.
func (r *Record) EditPhone(oldText string, newPhone Phone) {
	r.RemovePhone(oldText)
	r.AddPhone(newPhone)
}

// FindPhone returns the first phone equal to text.
func (r *Record) FindPhone(text string) (Phone, bool) {
	for _, p := range r.Phones {
		if string(p) == text {
			return p, true
		}
	}
	return "", false
}

// AddBirthday sets the birthday, replacing any previous one.
func (r *Record) AddBirthday(b Birthday) {
	r.Birthday = &b
}

// PhonesText joins the phones with "; ".
func (r *Record) PhonesText() string {
	parts := make([]string, len(r.Phones))
	for i, p := range r.Phones {
		parts[i] = string(p)
	}
	return strings.Join(parts, config.PhoneSeparator)
}

// BirthdayText renders the birthday as DD.MM.YYYY, or "Not Set".
func (r *Record) BirthdayText() string {
	if r.Birthday == nil {
		return config.BirthdayNotSet
	}
	return r.Birthday.String()
}

// String renders the record on one line.
func (r *Record) String() string {
	return fmt.Sprintf(config.FormatRecord, r.Name, r.PhonesText(), r.BirthdayText())
}
