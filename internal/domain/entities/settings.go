package entities

// SettingsID is the key of the single settings document.
const SettingsID = "app"

// PaymentConfig toggles which payment methods the shop accepts.
type PaymentConfig struct {
	Money  bool `json:"money"`
	Pix    bool `json:"pix"`
	Credit bool `json:"credit"`
	Debit  bool `json:"debit"`
	Other  bool `json:"other"`
}

// Allows reports whether the method is enabled.
func (p PaymentConfig) Allows(m PaymentMethod) bool {
	switch m {
	case PaymentMethodDinheiro:
		return p.Money
	case PaymentMethodPix:
		return p.Pix
	case PaymentMethodCredito:
		return p.Credit
	case PaymentMethodDebito:
		return p.Debit
	case PaymentMethodOutro:
		return p.Other
	}
	return false
}

type ShopInfo struct {
	Name    string `json:"name"`
	CNPJ    string `json:"cnpj,omitempty"`
	Address string `json:"address,omitempty"`
}

type AppSettings struct {
	Payment PaymentConfig `json:"payment"`
	Shop    ShopInfo      `json:"shop"`
}

func DefaultSettings() AppSettings {
	return AppSettings{
		Payment: PaymentConfig{Money: true, Pix: true, Credit: true, Debit: true},
		Shop:    ShopInfo{Name: "Oficina Insufilm"},
	}
}
