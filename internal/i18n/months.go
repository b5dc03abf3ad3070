package i18n

import "github.com/Veraticus/faktura/internal/model"

// monthAbbreviations holds the translated month labels, January
// through December, for every supported language.
var monthAbbreviations = map[model.Language][12]string{
	model.LanguageEnUS: {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	model.LanguageNlBE: {"Jan", "Feb", "Mrt", "Apr", "Mei", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dec"},
	model.LanguageFrBE: {"Jan", "Fév", "Mar", "Avr", "Mai", "Juin", "Juil", "Août", "Sep", "Oct", "Nov", "Déc"},
	model.LanguageTrTR: {"Oca", "Şub", "Mar", "Nis", "May", "Haz", "Tem", "Ağu", "Eyl", "Eki", "Kas", "Ara"},
}

// Months returns the month abbreviations for a language, falling back
// to the default language's entries for unknown tags.
func Months(lang model.Language) [12]string {
	if months, ok := monthAbbreviations[lang]; ok {
		return months
	}
	return monthAbbreviations[DefaultLanguage]
}

// statusLabels holds the translated invoice status names.
var statusLabels = map[model.Language]map[model.InvoiceStatus]string{
	model.LanguageEnUS: {model.StatusPaid: "Paid", model.StatusPending: "Pending", model.StatusOverdue: "Overdue"},
	model.LanguageNlBE: {model.StatusPaid: "Betaald", model.StatusPending: "In behandeling", model.StatusOverdue: "Achterstallig"},
	model.LanguageFrBE: {model.StatusPaid: "Payée", model.StatusPending: "En attente", model.StatusOverdue: "En retard"},
	model.LanguageTrTR: {model.StatusPaid: "Ödenmiş", model.StatusPending: "Beklemede", model.StatusOverdue: "Gecikmiş"},
}

// StatusLabel returns the translated label for an invoice status,
// treating unknown statuses as pending and unknown languages as the
// default language.
func StatusLabel(lang model.Language, status model.InvoiceStatus) string {
	labels, ok := statusLabels[lang]
	if !ok {
		labels = statusLabels[DefaultLanguage]
	}
	if label, ok := labels[status]; ok {
		return label
	}
	return labels[model.StatusPending]
}
