package ui

import (
	"context"
	"strings"

	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/engine"
)

// handler describes one console command. An arity of -1 accepts any
// number of arguments (they are ignored).
type handler struct {
	arity int
	usage string // translation key of the usage line
	run   func(ctx context.Context, args []string) (string, error)
}

func (app *ContactsApp) commandTable() map[string]handler {
	return map[string]handler{
		config.CmdHello:        {arity: -1, run: app.cmdHello},
		config.CmdHelp:         {arity: -1, run: app.cmdHelp},
		config.CmdAdd:          {arity: 2, usage: config.TKeyUsageAdd, run: app.cmdAdd},
		config.CmdAddPhone:     {arity: 2, usage: config.TKeyUsageAddPhone, run: app.cmdAddPhone},
		config.CmdChangePhone:  {arity: 2, usage: config.TKeyUsageChange, run: app.cmdChangePhone},
		config.CmdRemovePhone:  {arity: 2, usage: config.TKeyUsageRemovePhone, run: app.cmdRemovePhone},
		config.CmdPhone:        {arity: 1, usage: config.TKeyUsagePhone, run: app.cmdPhone},
		config.CmdDelete:       {arity: 1, usage: config.TKeyUsageDelete, run: app.cmdDelete},
		config.CmdAll:          {arity: -1, run: app.cmdAll},
		config.CmdAddBirthday:  {arity: 2, usage: config.TKeyUsageAddBirthday, run: app.cmdAddBirthday},
		config.CmdShowBirthday: {arity: 1, usage: config.TKeyUsageShowBday, run: app.cmdShowBirthday},
		config.CmdBirthdays:    {arity: -1, run: app.cmdBirthdays},
		config.CmdExport:       {arity: -1, run: app.cmdExport},
		config.CmdCalendar:     {arity: -1, run: app.cmdCalendar},
	}
}

// findRecord looks a contact up and turns absence into a KindNotFound error.
func (app *ContactsApp) findRecord(name string) (*engine.Record, error) {
	r, ok := app.Directory.Find(name)
	if !ok {
		return nil, engine.NewError(engine.KindNotFound, name, nil)
	}
	return r, nil
}

func (app *ContactsApp) cmdHello(context.Context, []string) (string, error) {
	return app.GetMsg(config.TKeyHello), nil
}

func (app *ContactsApp) cmdHelp(context.Context, []string) (string, error) {
	return app.GetMsg(config.TKeyHelp), nil
}

// cmdAdd creates a fresh record, replacing any contact with the same name.
func (app *ContactsApp) cmdAdd(_ context.Context, args []string) (string, error) {
	name, err := engine.NewName(args[0])
	if err != nil {
		return "", err
	}
	phone, err := engine.NewPhone(args[1])
	if err != nil {
		return "", err
	}

	r := engine.NewRecord(name)
	r.AddPhone(phone)
	app.Directory.AddRecord(r)

	return app.GetMsgData(config.TKeyContactAdded, map[string]any{"Name": name, "Phone": phone}), nil
}

func (app *ContactsApp) cmdAddPhone(_ context.Context, args []string) (string, error) {
	r, err := app.findRecord(args[0])
	if err != nil {
		return "", err
	}
	phone, err := engine.NewPhone(args[1])
	if err != nil {
		return "", err
	}

	r.AddPhone(phone)
	return app.GetMsgData(config.TKeyPhoneAdded, map[string]any{"Name": r.Name, "Phone": phone}), nil
}

// cmdChangePhone replaces the contact's first phone.
func (app *ContactsApp) cmdChangePhone(_ context.Context, args []string) (string, error) {
	r, err := app.findRecord(args[0])
	if err != nil {
		return "", err
	}
	if len(r.Phones) == 0 {
		return "", engine.NewError(engine.KindNoPhone, args[0], nil)
	}
	newPhone, err := engine.NewPhone(args[1])
	if err != nil {
		return "", err
	}

	old := r.Phones[0]
	r.EditPhone(string(old), newPhone)
	return app.GetMsgData(config.TKeyPhoneChanged, map[string]any{"Name": r.Name, "Old": old, "New": newPhone}), nil
}

func (app *ContactsApp) cmdRemovePhone(_ context.Context, args []string) (string, error) {
	r, err := app.findRecord(args[0])
	if err != nil {
		return "", err
	}

	data := map[string]any{"Name": r.Name, "Phone": args[1]}
	if _, ok := r.FindPhone(args[1]); !ok {
		return app.GetMsgData(config.TKeyPhoneMissing, data), nil
	}
	r.RemovePhone(args[1])
	return app.GetMsgData(config.TKeyPhoneRemoved, data), nil
}

func (app *ContactsApp) cmdPhone(_ context.Context, args []string) (string, error) {
	r, err := app.findRecord(args[0])
	if err != nil {
		return "", err
	}
	if len(r.Phones) == 0 {
		return "", engine.NewError(engine.KindNoPhone, args[0], nil)
	}
	return app.GetMsgData(config.TKeyPhoneList, map[string]any{"Name": r.Name, "Phones": r.PhonesText()}), nil
}

func (app *ContactsApp) cmdDelete(_ context.Context, args []string) (string, error) {
	if !app.Directory.Delete(args[0]) {
		return "", engine.NewError(engine.KindNotFound, args[0], nil)
	}
	return app.GetMsgData(config.TKeyContactDeleted, map[string]any{"Name": args[0]}), nil
}

func (app *ContactsApp) cmdAll(context.Context, []string) (string, error) {
	if app.Directory.Len() == 0 {
		return app.GetMsg(config.TKeyAllEmpty), nil
	}

	lines := []string{app.GetMsg(config.TKeyAllHeader)}
	for _, r := range app.Directory.All() {
		lines = append(lines, app.renderRecord(r))
	}
	return strings.Join(lines, "\n"), nil
}

// renderRecord is the localized counterpart of engine.Record.String.
func (app *ContactsApp) renderRecord(r *engine.Record) string {
	bday := app.GetMsg(config.TKeyBirthdayNotSet)
	if r.Birthday != nil {
		bday = r.Birthday.String()
	}
	return app.GetMsgData(config.TKeyRecordLine, map[string]any{
		"Name":     r.Name,
		"Phones":   r.PhonesText(),
		"Birthday": bday,
	})
}

func (app *ContactsApp) cmdAddBirthday(_ context.Context, args []string) (string, error) {
	r, err := app.findRecord(args[0])
	if err != nil {
		return "", err
	}
	b, err := engine.ParseBirthday(args[1])
	if err != nil {
		return "", err
	}

	r.AddBirthday(b)
	return app.GetMsgData(config.TKeyBirthdayAdded, map[string]any{"Name": r.Name}), nil
}

func (app *ContactsApp) cmdShowBirthday(_ context.Context, args []string) (string, error) {
	r, err := app.findRecord(args[0])
	if err != nil {
		return "", err
	}
	if r.Birthday == nil {
		return app.GetMsgData(config.TKeyBirthdayMissing, map[string]any{"Name": r.Name}), nil
	}
	return app.GetMsgData(config.TKeyBirthdayShow, map[string]any{"Name": r.Name, "Date": r.Birthday.String()}), nil
}

func (app *ContactsApp) cmdBirthdays(context.Context, []string) (string, error) {
	upcoming := app.Generator.Upcoming(app.Directory)
	if len(upcoming) == 0 {
		return app.GetMsg(config.TKeyUpcomingEmpty), nil
	}

	lines := []string{app.GetMsg(config.TKeyUpcomingHeader)}
	for _, u := range upcoming {
		lines = append(lines, app.GetMsgData(config.TKeyUpcomingLine, map[string]any{
			"Name": u.Name,
			"Date": u.FormattedDate(),
		}))
	}
	return strings.Join(lines, "\n"), nil
}

func (app *ContactsApp) cmdExport(context.Context, []string) (string, error) {
	if app.Directory.Len() == 0 {
		return app.GetMsg(config.TKeyAllEmpty), nil
	}

	var b strings.Builder
	if _, err := engine.ExportVCards(&b, app.Directory); err != nil {
		return "", err
	}
	return strings.TrimRight(b.String(), "\r\n"), nil
}

func (app *ContactsApp) cmdCalendar(ctx context.Context, _ []string) (string, error) {
	ics, _, err := app.Generator.Calendar(ctx, app.Directory)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(ics), "\r\n"), nil
}
