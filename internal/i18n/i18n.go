// Package i18n provides the localized user-facing strings returned in error
// responses. The product ships to a Lithuanian audience, so Lithuanian is the
// default; English is served when the client's Accept-Language prefers it.
// Server logs always carry the full technical detail in English — these
// strings are only what end users see.
package i18n

import "golang.org/x/text/language"

// MessageID identifies one translatable user-facing string.
type MessageID string

const (
	MsgInvalidEmail      MessageID = "invalid_email"
	MsgContactFailed     MessageID = "contact_failed"
	MsgBadPassword       MessageID = "bad_password"
	MsgLoginFailed       MessageID = "login_failed"
	MsgVisitorsFailed    MessageID = "visitors_failed"
	MsgSubmissionsFailed MessageID = "submissions_failed"
	MsgExportFailed      MessageID = "export_failed"
	MsgTrackFailed       MessageID = "track_failed"
)

// supported lists the served languages; the first entry is the fallback.
var supported = []language.Tag{
	language.Lithuanian,
	language.English,
}

var matcher = language.NewMatcher(supported)

var catalog = map[language.Tag]map[MessageID]string{
	language.Lithuanian: {
		MsgInvalidEmail:      "Prašome įvesti teisingą el. pašto adresą",
		MsgContactFailed:     "Nepavyko išsiųsti žinutės",
		MsgBadPassword:       "Neteisingas slaptažodis",
		MsgLoginFailed:       "Prisijungimo klaida",
		MsgVisitorsFailed:    "Klaida gaunant lankytojų duomenis",
		MsgSubmissionsFailed: "Klaida gaunant žinučių duomenis",
		MsgExportFailed:      "Klaida eksportuojant duomenis",
		MsgTrackFailed:       "Nepavyko užfiksuoti apsilankymo",
	},
	language.English: {
		MsgInvalidEmail:      "Please enter a valid email address",
		MsgContactFailed:     "Failed to send message",
		MsgBadPassword:       "Incorrect password",
		MsgLoginFailed:       "Login error",
		MsgVisitorsFailed:    "Failed to load visitor data",
		MsgSubmissionsFailed: "Failed to load submission data",
		MsgExportFailed:      "Failed to export data",
		MsgTrackFailed:       "Failed to track visit",
	},
}

// T resolves id against the best-matching language for the given
// Accept-Language header value. An empty or unparsable header, or a language
// we do not carry, falls back to Lithuanian. Unknown ids resolve to the id
// itself so a missing translation is visible instead of silent.
func T(acceptLanguage string, id MessageID) string {
	tag := supported[0]
	if acceptLanguage != "" {
		if wanted, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil {
			_, idx, _ := matcher.Match(wanted...)
			tag = supported[idx]
		}
	}
	if msg, ok := catalog[tag][id]; ok {
		return msg
	}
	return string(id)
}
