package domain

// Country describes a supported corridor endpoint.
type Country struct {
	Code     string
	Name     string
	Currency string
	Flag     string
}

// SendingCountries are the corridors we accept funds from.
var SendingCountries = []Country{
	{Code: "US", Name: "United States", Currency: "USD", Flag: "🇺🇸"},
	{Code: "CA", Name: "Canada", Currency: "CAD", Flag: "🇨🇦"},
	{Code: "GB", Name: "United Kingdom", Currency: "GBP", Flag: "🇬🇧"},
}

// ReceivingCountry is the single payout corridor.
var ReceivingCountry = Country{Code: "GH", Name: "Ghana", Currency: "GHS", Flag: "🇬🇭"}

// MobileMoneyProvider is a payout wallet operator in Ghana.
type MobileMoneyProvider struct {
	ID   string
	Name string
}

// MobileMoneyProviders are the supported payout wallets.
var MobileMoneyProviders = []MobileMoneyProvider{
	{ID: "mtn", Name: "MTN Mobile Money"},
	{ID: "vodafone", Name: "Vodafone Cash"},
	{ID: "airteltigo", Name: "AirtelTigo Money"},
}

// GhanaBanks are the supported payout banks.
var GhanaBanks = []string{
	"GCB Bank",
	"Ecobank Ghana",
	"Absa Bank Ghana",
	"Fidelity Bank Ghana",
	"Standard Chartered Bank",
	"Zenith Bank Ghana",
	"CalBank",
	"Access Bank Ghana",
}

// SendingCountryByCode looks up a sending country by its ISO code.
func SendingCountryByCode(code string) (Country, bool) {
	for _, c := range SendingCountries {
		if c.Code == code {
			return c, true
		}
	}
	return Country{}, false
}

// SendingCountryByCurrency looks up a sending country by its currency code.
func SendingCountryByCurrency(currency string) (Country, bool) {
	for _, c := range SendingCountries {
		if c.Currency == currency {
			return c, true
		}
	}
	return Country{}, false
}

// IsMobileMoneyProvider reports whether id is a known payout wallet.
func IsMobileMoneyProvider(id string) bool {
	for _, p := range MobileMoneyProviders {
		if p.ID == id {
			return true
		}
	}
	return false
}

// IsGhanaBank reports whether name is a known payout bank.
func IsGhanaBank(name string) bool {
	for _, b := range GhanaBanks {
		if b == name {
			return true
		}
	}
	return false
}
