package engine

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-contacts/internal/config"
)

// Generator turns the directory into the upcoming birthdays report and its
// iCalendar rendering.
type Generator struct {
	Clock Clock // Interface for time mocking.

	// ReminderTrigger is an ISO8601 duration (e.g. "-P1D"); empty disables alarms.
	ReminderTrigger string

	// FormatSummary allows the UI to inject localized event titles.
	FormatSummary func(name string) string
}

// Today returns the current date according to the generator's clock.
func (g *Generator) Today() time.Time {
	return dateOf(g.now())
}

func (g *Generator) now() time.Time {
	if g.Clock == nil {
		return time.Now()
	}
	return g.Clock.Now()
}

// Upcoming runs the upcoming birthdays computation for today.
func (g *Generator) Upcoming(dir *Directory) []UpcomingBirthday {
	return UpcomingBirthdays(dir, g.Today())
}

// Calendar encodes the upcoming birthdays as an iCalendar feed: one all-day
// event per entry, dated on its congratulation date.
// It returns the ICS data and the number of events.
func (g *Generator) Calendar(ctx context.Context, dir *Directory) ([]byte, int, error) {
	start := time.Now()
	now := g.now()
	upcoming := UpcomingBirthdays(dir, now)

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// RFC 7986: Suggest a refresh interval
	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	for _, u := range upcoming {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		event := g.createEvent(u)
		event.Props.Set(dtStampProp)
		cal.Children = append(cal.Children, event.Component)
	}

	if len(cal.Children) == 0 {
		g.logSuccess(0, start)
		return []byte(config.StubVCalendar), 0, nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	g.logSuccess(len(upcoming), start)
	return buf.Bytes(), len(upcoming), nil
}

// createEvent builds the all-day event for one upcoming birthday.
func (g *Generator) createEvent(u UpcomingBirthday) *ical.Event {
	// Deterministic UID for stability across exports
	input := fmt.Sprintf(config.FormatHashInput, u.Name, u.DateOfBirth.Format(time.RFC3339), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	uidBase := fmt.Sprintf("%x", hash[:config.UIDHashLength])

	event := ical.NewEvent()
	event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, uidBase, u.NextOccurrence.Year(), config.ICalDomain))

	summary := fmt.Sprintf(config.FallbackSummary, u.Name)
	if g.FormatSummary != nil {
		summary = g.FormatSummary(u.Name)
	}
	event.Props.SetText(config.PropSummary, summary)

	dtStartProp := ical.NewProp(config.PropDTStart)
	dtStartProp.SetDate(u.CongratulationDate)
	event.Props.Set(dtStartProp)

	if g.ReminderTrigger != "" {
		addAlarm(event, g.ReminderTrigger, summary)
	}
	return event
}

// addAlarm appends a DISPLAY alarm (notification) to the event.
func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(config.ICalComponent)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, description)

	// Set trigger manually to avoid "VALUE=TEXT" param
	triggerProp := ical.NewProp(config.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}

func (g *Generator) logSuccess(events int, start time.Time) {
	slog.Debug(config.MsgCalendarBuilt,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyCount, events,
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)
}
