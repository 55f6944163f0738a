package domain

// ShopSettings is the operator-editable shop profile persisted as a single
// preference record.
type ShopSettings struct {
	ShopName       string `json:"shopName"`
	OwnerName      string `json:"ownerName,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Address        string `json:"address,omitempty"`
	CurrencySymbol string `json:"currencySymbol"`
}

// Preference keys used by the core. The persisted layout expects at minimum
// these names; consumers may add their own alongside.
const (
	PrefTheme        = "theme"
	PrefLanguage     = "language"
	PrefLastPage     = "lastPage"
	PrefCartSnapshot = "cartSnapshot"
	PrefCreditsData  = "creditsData"
	PrefShopSettings = "shopSettings"
	PrefTutorialSeen = "tutorialSeen"
	PrefSoundEnabled = "soundEnabled"
	PrefAutoBackup   = "autoBackup"
)
