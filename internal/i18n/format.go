package i18n

import (
	"context"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/Veraticus/faktura/internal/model"
)

// displayLocale is the fixed currency→locale mapping used for amount
// rendering. It never changes at runtime, which keeps formatting
// deterministic for a given (amount, currency) pair.
type displayLocale struct {
	tag         language.Tag
	symbolAfter bool // symbol trails the number ("1.000 €" style)
	symbolSpace bool // space between symbol and number
}

var locales = map[model.Currency]displayLocale{
	model.CurrencyEUR: {tag: language.MustParse("nl-BE"), symbolSpace: true},
	model.CurrencyTRY: {tag: language.MustParse("tr-TR")},
	model.CurrencyUSD: {tag: language.AmericanEnglish},
}

// FormatAmount renders an amount in the given currency with
// locale-aware digit grouping and zero fraction digits.
func FormatAmount(amount float64, code model.Currency) string {
	cfg := CurrencyFor(code)
	loc, ok := locales[cfg.Code]
	if !ok {
		loc = locales[DefaultCurrency]
	}

	p := message.NewPrinter(loc.tag)
	digits := p.Sprint(number.Decimal(amount,
		number.MaxFractionDigits(0),
		number.MinFractionDigits(0),
	))

	sep := ""
	if loc.symbolSpace {
		sep = " "
	}
	if loc.symbolAfter {
		return digits + sep + cfg.Symbol
	}
	return cfg.Symbol + sep + digits
}

// CurrencySource yields the currency a formatter should fall back to.
// *prefs.Service satisfies it.
type CurrencySource interface {
	Currency(ctx context.Context) model.Currency
}

// Formatter renders amounts in the user's preferred currency unless an
// explicit currency is supplied.
type Formatter struct {
	prefs CurrencySource
}

// NewFormatter creates a Formatter bound to a preference source.
func NewFormatter(prefs CurrencySource) *Formatter {
	return &Formatter{prefs: prefs}
}

// Format renders an amount in the user's preferred currency.
func (f *Formatter) Format(ctx context.Context, amount float64) string {
	return FormatAmount(amount, f.prefs.Currency(ctx))
}

// FormatIn renders an amount in an explicitly chosen currency,
// bypassing the stored preference.
func (f *Formatter) FormatIn(amount float64, code model.Currency) string {
	return FormatAmount(amount, code)
}
