package notify

import (
	"html"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Supported lists the locales with a complete message catalog, default first.
var Supported = []language.Tag{language.English, language.BrazilianPortuguese}

var matcher = language.NewMatcher(Supported)

// Renderer produces localized email copy.
type Renderer struct {
	printer *message.Printer
}

// NewRenderer returns a Renderer for the closest supported match of locale.
// Unknown or malformed locales render in English.
func NewRenderer(locale string) *Renderer {
	tag := language.English
	if requested, err := language.Parse(strings.TrimSpace(locale)); err == nil {
		_, idx, conf := matcher.Match(requested)
		if conf != language.No {
			tag = Supported[idx]
		}
	}
	return &Renderer{printer: message.NewPrinter(tag)}
}

// TripDates is the part of a trip that appears in email copy.
type TripDates struct {
	Destination string
	StartsAt    time.Time
	EndsAt      time.Time
}

// TripConfirmation asks the owner to confirm a trip they just created.
func (r *Renderer) TripConfirmation(toName, to string, trip TripDates, confirmURL string) Message {
	start, end := r.LongDate(trip.StartsAt), r.LongDate(trip.EndsAt)
	return Message{
		ToName:  toName,
		To:      to,
		Subject: r.printer.Sprintf(keyTripConfirmationSubject, trip.Destination, start),
		HTMLBody: r.printer.Sprintf(keyTripConfirmationBody,
			html.EscapeString(trip.Destination), start, end, html.EscapeString(confirmURL)),
	}
}

// Invitation asks an invitee to confirm attendance on a trip.
func (r *Renderer) Invitation(to string, trip TripDates, confirmURL string) Message {
	start, end := r.LongDate(trip.StartsAt), r.LongDate(trip.EndsAt)
	return Message{
		To:      to,
		Subject: r.printer.Sprintf(keyInvitationSubject, trip.Destination, start),
		HTMLBody: r.printer.Sprintf(keyInvitationBody,
			html.EscapeString(trip.Destination), start, end, html.EscapeString(confirmURL)),
	}
}

// LongDate formats t as a long calendar date in UTC ("March 10, 2025").
// The year goes in as a string: the printer would group its digits ("2,025").
func (r *Renderer) LongDate(t time.Time) string {
	t = t.UTC()
	month := r.printer.Sprintf(monthKeys[t.Month()-1])
	return r.printer.Sprintf(keyLongDate, t.Day(), month, strconv.Itoa(t.Year()))
}
