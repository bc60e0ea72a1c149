package notify

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	keyTripConfirmationSubject = "email.trip_confirmation.subject"
	keyTripConfirmationBody    = "email.trip_confirmation.body"
	keyInvitationSubject       = "email.invitation.subject"
	keyInvitationBody          = "email.invitation.body"
	keyLongDate                = "date.long"
)

var monthKeys = [12]string{
	"date.month.january", "date.month.february", "date.month.march",
	"date.month.april", "date.month.may", "date.month.june",
	"date.month.july", "date.month.august", "date.month.september",
	"date.month.october", "date.month.november", "date.month.december",
}

func init() {
	lang := language.English

	message.SetString(lang, keyTripConfirmationSubject, "Confirm your trip to %s on %s")
	message.SetString(lang, keyTripConfirmationBody, shell(
		`<p>You asked to create a trip to <strong>%[1]s</strong> from <strong>%[2]s</strong> to <strong>%[3]s</strong>.</p>`+
			`<p>To confirm your trip, click the link below.</p>`+
			`<p><a href="%[4]s">Confirm trip</a></p>`+
			`<p>If you don't know what this email is about, just ignore it.</p>`))
	message.SetString(lang, keyInvitationSubject, "Confirm your attendance on the trip to %s on %s")
	message.SetString(lang, keyInvitationBody, shell(
		`<p>You have been invited to a trip to <strong>%[1]s</strong> from <strong>%[2]s</strong> to <strong>%[3]s</strong>.</p>`+
			`<p>To confirm your attendance, click the link below.</p>`+
			`<p><a href="%[4]s">Confirm attendance</a></p>`+
			`<p>If you don't know what this email is about, just ignore it.</p>`))
	message.SetString(lang, keyLongDate, "%[2]s %[1]d, %[3]s")
	for i, name := range []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	} {
		message.SetString(lang, monthKeys[i], name)
	}
}

func init() {
	lang := language.BrazilianPortuguese

	message.SetString(lang, keyTripConfirmationSubject, "Confirme sua viagem para %s em %s")
	message.SetString(lang, keyTripConfirmationBody, shell(
		`<p>Você solicitou a criação de uma viagem para <strong>%[1]s</strong> nas datas de <strong>%[2]s</strong> até <strong>%[3]s</strong>.</p>`+
			`<p>Para confirmar sua viagem, clique no link abaixo.</p>`+
			`<p><a href="%[4]s">Confirmar viagem</a></p>`+
			`<p>Caso você não saiba do que se trata esse e-mail, apenas ignore esse e-mail.</p>`))
	message.SetString(lang, keyInvitationSubject, "Confirme sua presença na viagem para %s em %s")
	message.SetString(lang, keyInvitationBody, shell(
		`<p>Você foi convidado para participar de uma viagem para <strong>%[1]s</strong> nas datas de <strong>%[2]s</strong> até <strong>%[3]s</strong>.</p>`+
			`<p>Para confirmar sua presença na viagem, clique no link abaixo.</p>`+
			`<p><a href="%[4]s">Confirmar presença</a></p>`+
			`<p>Caso você não saiba do que se trata esse e-mail, apenas ignore esse e-mail.</p>`))
	message.SetString(lang, keyLongDate, "%[1]d de %[2]s de %[3]s")
	for i, name := range []string{
		"janeiro", "fevereiro", "março", "abril", "maio", "junho",
		"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
	} {
		message.SetString(lang, monthKeys[i], name)
	}
}

func shell(inner string) string {
	return `<div style="font-family: sans-serif; font-size: 16px; line-height: 1.6;">` + inner + `</div>`
}
