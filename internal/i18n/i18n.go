// Package i18n holds the currency and language tables and the
// locale-aware formatting helpers derived from them.
package i18n

import "github.com/Veraticus/faktura/internal/model"

// Defaults used whenever a code is unknown.
const (
	DefaultCurrency = model.CurrencyEUR
	DefaultLanguage = model.LanguageEnUS
)

// CurrencyConfig describes one supported currency.
type CurrencyConfig struct {
	Code   model.Currency
	Symbol string
	Name   string
}

// LanguageConfig describes one supported UI language.
type LanguageConfig struct {
	Code            model.Language
	Name            string
	NativeName      string
	DefaultCurrency model.Currency
}

// Currencies lists every supported currency, in display order.
var Currencies = []CurrencyConfig{
	{Code: model.CurrencyEUR, Symbol: "€", Name: "Euro"},
	{Code: model.CurrencyUSD, Symbol: "$", Name: "US Dollar"},
	{Code: model.CurrencyTRY, Symbol: "₺", Name: "Turkish Lira"},
}

// Languages lists every supported language, in display order.
var Languages = []LanguageConfig{
	{Code: model.LanguageEnUS, Name: "English (US)", NativeName: "English", DefaultCurrency: model.CurrencyUSD},
	{Code: model.LanguageNlBE, Name: "Nederlands (BE)", NativeName: "Nederlands", DefaultCurrency: model.CurrencyEUR},
	{Code: model.LanguageFrBE, Name: "Français (BE)", NativeName: "Français", DefaultCurrency: model.CurrencyEUR},
	{Code: model.LanguageTrTR, Name: "Turkish (TR)", NativeName: "Türkçe", DefaultCurrency: model.CurrencyTRY},
}

// CurrencyFor returns the configuration for a currency code, falling
// back to the default currency when the code is unknown. Never fails.
func CurrencyFor(code model.Currency) CurrencyConfig {
	for _, c := range Currencies {
		if c.Code == code {
			return c
		}
	}
	return CurrencyFor(DefaultCurrency)
}

// LanguageFor returns the configuration for a language tag, falling
// back to the default language when the tag is unknown. Never fails.
func LanguageFor(code model.Language) LanguageConfig {
	for _, l := range Languages {
		if l.Code == code {
			return l
		}
	}
	return LanguageFor(DefaultLanguage)
}
