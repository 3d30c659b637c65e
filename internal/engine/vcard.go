package engine

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-contacts/internal/config"
)

// ExportVCards writes every record of dir as a vCard 4.0 stream, in directory
// order. It returns the number of cards written.
func ExportVCards(w io.Writer, dir *Directory) (int, error) {
	enc := vcard.NewEncoder(w)
	count := 0

	for _, r := range dir.All() {
		if err := enc.Encode(recordToCard(r)); err != nil {
			return count, fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
		}
		count++
	}

	slog.Debug(config.MsgVCardExported,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyCount, count)
	return count, nil
}

// recordToCard maps a record to FN, one TEL per phone and BDAY.
func recordToCard(r *Record) vcard.Card {
	card := make(vcard.Card)
	card.SetValue(vcard.FieldFormattedName, string(r.Name))
	card.SetName(&vcard.Name{GivenName: string(r.Name)})

	for _, p := range r.Phones {
		card.Add(vcard.FieldTelephone, &vcard.Field{
			Value:  string(p),
			Params: vcard.Params{vcard.ParamType: {vcard.TypeVoice}},
		})
	}

	if r.Birthday != nil {
		card.SetValue(vcard.FieldBirthday, r.Birthday.Time().Format(config.DateFormatVCard))
	}

	vcard.ToV4(card)
	return card
}
