package model

// Currency is an ISO 4217 code from the supported set.
type Currency string

// Supported currencies.
const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyTRY Currency = "TRY"
)

// Language is a BCP 47 tag from the supported set.
type Language string

// Supported languages.
const (
	LanguageEnUS Language = "en-US"
	LanguageNlBE Language = "nl-BE"
	LanguageFrBE Language = "fr-BE"
	LanguageTrTR Language = "tr-TR"
)

// Theme selects the app appearance.
type Theme string

// Supported themes.
const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// SaveLocation selects where uploaded invoice files are kept.
type SaveLocation string

// Supported save locations.
const (
	SaveLocal SaveLocation = "local"
	SaveCloud SaveLocation = "cloud"
	SaveBoth  SaveLocation = "both"
)

// NotificationPreferences holds the per-channel notification toggles.
type NotificationPreferences struct {
	Email bool `json:"email"`
	Push  bool `json:"push"`
	SMS   bool `json:"sms"`
}

// UserPreferences is the singleton settings record for an installation.
// Absence in the store means "use defaults", never an error.
type UserPreferences struct {
	Currency                Currency                `json:"currency"`
	Language                Language                `json:"language"`
	Theme                   Theme                   `json:"theme"`
	DefaultInvoiceStatus    InvoiceStatus           `json:"defaultInvoiceStatus"`
	DefaultSaveLocation     SaveLocation            `json:"defaultSaveLocation"`
	ColorScheme             string                  `json:"colorScheme"`
	TextSize                string                  `json:"textSize"`
	NotificationPreferences NotificationPreferences `json:"notificationPreferences"`
}

// DefaultPreferences returns the hard-coded defaults used whenever no
// record is stored or the stored record cannot be decoded.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		Currency:             CurrencyEUR,
		Language:             LanguageEnUS,
		Theme:                ThemeSystem,
		DefaultInvoiceStatus: StatusPending,
		DefaultSaveLocation:  SaveLocal,
		ColorScheme:          "default",
		TextSize:             "medium",
		NotificationPreferences: NotificationPreferences{
			Email: true,
			Push:  true,
			SMS:   false,
		},
	}
}

// PreferencesPatch is a partial update: nil fields leave the current
// value untouched, matching shallow-merge semantics.
type PreferencesPatch struct {
	Currency                *Currency                `json:"currency,omitempty"`
	Language                *Language                `json:"language,omitempty"`
	Theme                   *Theme                   `json:"theme,omitempty"`
	DefaultInvoiceStatus    *InvoiceStatus           `json:"defaultInvoiceStatus,omitempty"`
	DefaultSaveLocation     *SaveLocation            `json:"defaultSaveLocation,omitempty"`
	ColorScheme             *string                  `json:"colorScheme,omitempty"`
	TextSize                *string                  `json:"textSize,omitempty"`
	NotificationPreferences *NotificationPreferences `json:"notificationPreferences,omitempty"`
}

// Apply merges the patch on top of p. The notification struct is
// replaced wholesale when present; this is a shallow merge.
func (patch PreferencesPatch) Apply(p *UserPreferences) {
	if patch.Currency != nil {
		p.Currency = *patch.Currency
	}
	if patch.Language != nil {
		p.Language = *patch.Language
	}
	if patch.Theme != nil {
		p.Theme = *patch.Theme
	}
	if patch.DefaultInvoiceStatus != nil {
		p.DefaultInvoiceStatus = *patch.DefaultInvoiceStatus
	}
	if patch.DefaultSaveLocation != nil {
		p.DefaultSaveLocation = *patch.DefaultSaveLocation
	}
	if patch.ColorScheme != nil {
		p.ColorScheme = *patch.ColorScheme
	}
	if patch.TextSize != nil {
		p.TextSize = *patch.TextSize
	}
	if patch.NotificationPreferences != nil {
		p.NotificationPreferences = *patch.NotificationPreferences
	}
}
