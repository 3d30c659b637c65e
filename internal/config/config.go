package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Go Contacts"
	AppID       = "com.github.tartampluch.go-contacts"
	CommandName = "go-contacts"
	LogFileName = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating the cache directory holding the log file.
	DirPermUserRWX fs.FileMode = 0700

	// LineBufferSize is the capacity of the channel carrying raw input lines.
	LineBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagLanguage     = "lang"
	FlagConfig       = "config"
	FlagToday        = "today"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stderr"
	FlagDescLanguage = "Language of the assistant messages (en, fr)"
	FlagDescConfig   = "Path to a YAML settings file"
	FlagDescToday    = "Override today's date (DD.MM.YYYY)"
	CmdShort         = "Assistant bot managing contacts and upcoming birthdays"
	CmdVersionShort  = "Print version information"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Log Rotation
// -----------------------------------------------------------------------------

const (
	LogMaxSizeMB  = 5
	LogMaxBackups = 3
	LogMaxAgeDays = 14
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultLanguage      = "en"
	DefaultReminderValue = 1
	UIDSalt              = "go-contacts-v1-" // Salt for deterministic UID generation

	// UpcomingWindowDays is the inclusive horizon, in days from today, of the
	// upcoming birthdays report.
	UpcomingWindowDays = 7

	// PhoneDigits is the exact length of a phone number.
	PhoneDigits = 10
)

// SupportedLanguages defines the list of available message languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// Validator tags applied to raw field values.
const (
	TagName  = "required"
	TagPhone = "required,len=10,number"
)

// -----------------------------------------------------------------------------
// Reminder Units & Directions
// -----------------------------------------------------------------------------

const (
	UnitDays    = "d"
	UnitHours   = "h"
	UnitMinutes = "m"
	DirBefore   = "before"
	DirAfter    = "after"
)

// ISO8601 Duration Components for Reminders
const (
	ISOPeriodPrefix   = "P"
	ISONegativePrefix = "-P"
	ISODay            = "D"
	ISOHour           = "H"
	ISOMinute         = "M"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion   = "2.0"
	ICalProdid    = "-//Go Contacts//Engine//EN"
	ICalCalName   = "Upcoming Birthdays"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalComponent = "VALARM"
	ICalAction    = "DISPLAY"
	ICalDomain    = "gocontacts"

	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropRefresh     = "REFRESH-INTERVAL"
	PropAction      = "ACTION"
	PropDescription = "DESCRIPTION"
	PropTrigger     = "TRIGGER"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	DefaultICalRefresh = 24 * time.Hour

	// StubVCalendar is the minimal valid iCalendar object used when no events are found.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Data Formats
// -----------------------------------------------------------------------------

const (
	// DateFormatInput is DD.MM.YYYY, used for parsing and rendering birthdays.
	DateFormatInput = "02.01.2006"

	// DateFormatVCard is the vCard BDAY layout.
	DateFormatVCard = "2006-01-02"

	// Record rendering
	FormatRecord    = "Contact name: %s, phones: %s, birthday: %s"
	PhoneSeparator  = "; "
	BirthdayNotSet  = "Not Set"
	FallbackSummary = "Birthday: %s"

	// UID Generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"
)

// -----------------------------------------------------------------------------
// Error Messages
// -----------------------------------------------------------------------------

const (
	// Validation (user-visible through the English catalog as well)
	ErrNameEmpty       = "Name must not be empty"
	ErrPhoneDigits     = "Phone number must contain 10 digits"
	ErrBirthdayFormat  = "Invalid date format. Use DD.MM.YYYY"
	ErrContactNotFound = "contact not found"
	ErrNoPhone         = "contact has no phone number"
	ErrArguments       = "invalid number of arguments"
	ErrUnknownCommand  = "unknown command"
	ErrInternal        = "internal error"

	// Technical
	ErrVCardEncode   = "failed to encode vCard data"
	ErrICalEncode    = "failed to encode iCalendar data"
	ErrConfigRead    = "failed to read settings file"
	ErrConfigParse   = "failed to parse settings file"
	ErrConfigInvalid = "invalid settings"
	ErrLanguage      = "unsupported language"
	ErrReminderUnit  = "unsupported reminder unit"
	ErrReminderDir   = "unsupported reminder direction"
	ErrReminderValue = "reminder value must be positive"
	ErrTodayFlag     = "invalid --today value"
	ErrCacheDir      = "could not determine user cache dir"
	ErrCreateDir     = "could not create app cache dir"
	ErrAppFailed     = "application failed unexpectedly"
	ErrReadInput     = "failed to read input"
	ErrWriteOutput   = "failed to write output"
	ErrLocalesAccess = "failed to access embedded locales"
	ErrLocaleLoad    = "failed to load locale file"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting    = "Starting application"
	MsgAppStop        = "Application stopped gracefully"
	MsgCtxCancel      = "Context cancelled, leaving command loop"
	MsgInputClosed    = "Input closed, leaving command loop"
	MsgCommand        = "Command received"
	MsgCommandFailed  = "Command failed"
	MsgRecordAdded    = "Record stored"
	MsgRecordReplaced = "Record replaced"
	MsgRecordDeleted  = "Record deleted"
	MsgUpcomingDone   = "Upcoming birthdays computed"
	MsgBdayToday      = "Birthday found today"
	MsgCalendarBuilt  = "Calendar generation successful"
	MsgVCardExported  = "vCard export successful"
	MsgSettingsLoaded = "Settings loaded"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleBadName  = "Skipping malformed locale filename"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation key"
	MsgLogWarning     = "Warning: %s: %v\n"
	MsgErrorOutput    = "Error: %s: %v\n"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWelcome          = "welcome"
	TKeyPrompt           = "prompt"
	TKeyGoodbye          = "goodbye"
	TKeyHello            = "hello"
	TKeyHelp             = "help"
	TKeyInvalidCommand   = "invalid_command"
	TKeyContactAdded     = "contact_added"     // Requires Name, Phone
	TKeyPhoneAdded       = "phone_added"       // Requires Name, Phone
	TKeyPhoneChanged     = "phone_changed"     // Requires Name, Old, New
	TKeyPhoneRemoved     = "phone_removed"     // Requires Name, Phone
	TKeyPhoneList        = "phone_list"        // Requires Name, Phones
	TKeyContactDeleted   = "contact_deleted"   // Requires Name
	TKeyAllHeader        = "all_header"        // No args
	TKeyAllEmpty         = "all_empty"         // No args
	TKeyRecordLine       = "record_line"       // Requires Name, Phones, Birthday
	TKeyBirthdayNotSet   = "birthday_not_set"  // Placeholder used in record_line
	TKeyBirthdayAdded    = "birthday_added"    // Requires Name
	TKeyBirthdayShow     = "birthday_show"     // Requires Name, Date
	TKeyBirthdayMissing  = "birthday_missing"  // Requires Name
	TKeyUpcomingHeader   = "upcoming_header"   // No args
	TKeyUpcomingLine     = "upcoming_line"     // Requires Name, Date
	TKeyUpcomingEmpty    = "upcoming_empty"    // No args
	TKeyErrNotFound      = "err_not_found"     // Requires Name
	TKeyErrNoPhone       = "err_no_phone"      // Requires Name
	TKeyErrPhone         = "err_phone"         // No args
	TKeyErrBirthday      = "err_birthday"      // No args
	TKeyErrName          = "err_name"          // No args
	TKeyErrArguments     = "err_arguments"     // Requires Usage
	TKeyErrGeneric       = "err_generic"       // No args
	TKeyPhoneMissing     = "phone_missing"     // Requires Name, Phone
	TKeyEvtSummary       = "event_summary"     // Requires Name

	// Usage lines
	TKeyUsageAdd         = "usage_add"
	TKeyUsageAddPhone    = "usage_add_phone"
	TKeyUsageChange      = "usage_change"
	TKeyUsageRemovePhone = "usage_remove"
	TKeyUsagePhone       = "usage_phone"
	TKeyUsageDelete      = "usage_delete"
	TKeyUsageAddBirthday = "usage_add_bday"
	TKeyUsageShowBday    = "usage_show_bday"
)

// -----------------------------------------------------------------------------
// Console Commands
// -----------------------------------------------------------------------------

const (
	CmdHello        = "hello"
	CmdHelp         = "help"
	CmdAdd          = "add"
	CmdAddPhone     = "add phone"
	CmdChangePhone  = "change phone"
	CmdRemovePhone  = "remove phone"
	CmdPhone        = "phone"
	CmdDelete       = "delete"
	CmdAll          = "all"
	CmdAddBirthday  = "add birthday"
	CmdShowBirthday = "show birthday"
	CmdBirthdays    = "birthdays"
	CmdExport       = "export"
	CmdCalendar     = "calendar"
	CmdClose        = "close"
	CmdExit         = "exit"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyKind      = "kind"
	LogKeyCommand   = "command"
	LogKeyArgs      = "arg_count"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyValue     = "value"
	LogKeyName      = "name"
	LogKeyDOB       = "date_of_birth"
	LogKeyToday     = "today"
	LogKeyStats     = "stats"
	LogKeyTotal     = "total_records"
	LogKeyFound     = "birthdays_found"
	LogKeyUpcoming  = "birthdays_upcoming"
	LogKeyCount     = "count"
	LogKeySizeBytes = "size_bytes"
	LogKeyDuration  = "duration_ms"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI     = "ui"
	CompEngine = "engine"
	CompConfig = "config"
	CompMain   = "main"
	CompI18n   = "i18n"
)
