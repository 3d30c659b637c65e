package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/engine"
)

// ContactsApp is the console front end: it owns the session directory,
// reads commands line by line and prints localized replies.
type ContactsApp struct {
	In  io.Reader
	Out io.Writer

	Directory *engine.Directory
	Generator *engine.Generator

	Language           string
	SupportedLanguages []string
	I18nBundle         *i18n.Bundle
	Localizer          *i18n.Localizer

	handlers map[string]handler
}

// NewContactsApp constructs the application and wires dependencies.
func NewContactsApp(in io.Reader, out io.Writer, gen *engine.Generator, lang string) *ContactsApp {
	if gen == nil {
		gen = &engine.Generator{Clock: engine.RealClock{}}
	}
	app := &ContactsApp{
		In:                 in,
		Out:                out,
		Directory:          engine.NewDirectory(),
		Generator:          gen,
		Language:           lang,
		SupportedLanguages: config.SupportedLanguages,
	}
	app.handlers = app.commandTable()
	app.SetupI18n()
	if gen.FormatSummary == nil {
		gen.FormatSummary = app.buildSummaryFormatter()
	}
	return app
}

// Run prints the welcome line and processes commands until close/exit,
// end of input, or context cancellation.
func (app *ContactsApp) Run(ctx context.Context) error {
	log := slog.With(config.LogKeyComponent, config.CompUI)

	// Releases the reader goroutine on every return path.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string, config.LineBufferSize)
	readErr := make(chan error, 1)
	go app.readLines(ctx, lines, readErr)

	app.println(app.GetMsg(config.TKeyWelcome))

	for {
		app.print(app.GetMsg(config.TKeyPrompt))

		select {
		case <-ctx.Done():
			log.Info(config.MsgCtxCancel)
			app.println("")
			app.println(app.GetMsg(config.TKeyGoodbye))
			return nil

		case line, ok := <-lines:
			if !ok {
				log.Info(config.MsgInputClosed)
				app.println("")
				app.println(app.GetMsg(config.TKeyGoodbye))
				select {
				case err := <-readErr:
					return fmt.Errorf("%s: %w", config.ErrReadInput, err)
				default:
					return nil
				}
			}

			reply, quit := app.Execute(ctx, line)
			if reply != "" {
				app.println(reply)
			}
			if quit {
				return nil
			}
		}
	}
}

// readLines forwards input lines until EOF, a read error, or cancellation.
func (app *ContactsApp) readLines(ctx context.Context, lines chan<- string, readErr chan<- error) {
	defer close(lines)

	scanner := bufio.NewScanner(app.In)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}
	if err := scanner.Err(); err != nil {
		readErr <- err
	}
}

// Execute handles one input line and returns the reply to print and whether
// the session should end. Failures never end the session.
func (app *ContactsApp) Execute(ctx context.Context, line string) (reply string, quit bool) {
	cmd, ok := ParseInput(line)
	if !ok {
		return "", false
	}

	slog.Debug(config.MsgCommand,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyCommand, cmd.Name,
		config.LogKeyArgs, len(cmd.Args))

	switch cmd.Name {
	case config.CmdClose, config.CmdExit:
		return app.GetMsg(config.TKeyGoodbye), true
	}

	h, found := app.handlers[cmd.Name]
	if !found {
		return app.fail(cmd, engine.NewError(engine.KindUnknownCommand, cmd.Name, nil)), false
	}

	if h.arity >= 0 && len(cmd.Args) != h.arity {
		return app.fail(cmd, engine.NewError(engine.KindInvalidArguments, cmd.Name, nil)), false
	}

	out, err := h.run(ctx, cmd.Args)
	if err != nil {
		return app.fail(cmd, err), false
	}
	return out, false
}

func (app *ContactsApp) fail(cmd Command, err error) string {
	slog.Warn(config.MsgCommandFailed,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyCommand, cmd.Name,
		config.LogKeyKind, engine.KindOf(err).String(),
		config.LogKeyError, err)
	return app.FormatError(err)
}

// FormatError maps an error to the fixed user-facing message of its kind.
func (app *ContactsApp) FormatError(err error) string {
	var e *engine.Error
	if !errors.As(err, &e) {
		return app.GetMsg(config.TKeyErrGeneric)
	}

	switch e.Kind {
	case engine.KindNotFound:
		return app.GetMsgData(config.TKeyErrNotFound, map[string]any{"Name": e.Value})
	case engine.KindNoPhone:
		return app.GetMsgData(config.TKeyErrNoPhone, map[string]any{"Name": e.Value})
	case engine.KindInvalidPhone:
		return app.GetMsg(config.TKeyErrPhone)
	case engine.KindInvalidBirthday:
		return app.GetMsg(config.TKeyErrBirthday)
	case engine.KindInvalidName:
		return app.GetMsg(config.TKeyErrName)
	case engine.KindInvalidArguments:
		usage := e.Value
		if h, ok := app.handlers[e.Value]; ok && h.usage != "" {
			usage = app.GetMsg(h.usage)
		}
		return app.GetMsgData(config.TKeyErrArguments, map[string]any{"Usage": usage})
	case engine.KindUnknownCommand:
		return app.GetMsg(config.TKeyInvalidCommand)
	default:
		return app.GetMsg(config.TKeyErrGeneric)
	}
}

// buildSummaryFormatter returns a closure that localizes calendar event titles.
func (app *ContactsApp) buildSummaryFormatter() func(name string) string {
	return func(name string) string {
		msg := app.GetMsgData(config.TKeyEvtSummary, map[string]any{"Name": name})
		if msg == config.TKeyEvtSummary {
			return fmt.Sprintf(config.FallbackSummary, name)
		}
		return msg
	}
}

func (app *ContactsApp) print(s string) {
	if _, err := io.WriteString(app.Out, s); err != nil {
		slog.Error(config.ErrWriteOutput,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err)
	}
}

func (app *ContactsApp) println(s string) {
	app.print(s + "\n")
}
