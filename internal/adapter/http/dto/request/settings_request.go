package request

import "oficina_insufilm/internal/domain/entities"

type PaymentConfigRequest struct {
	Money  bool `json:"money"`
	Pix    bool `json:"pix"`
	Credit bool `json:"credit"`
	Debit  bool `json:"debit"`
	Other  bool `json:"other"`
}

type ShopInfoRequest struct {
	Name    string `json:"name" binding:"required"`
	CNPJ    string `json:"cnpj"`
	Address string `json:"address"`
}

// SettingsRequest replaces the whole settings document.
type SettingsRequest struct {
	Payment PaymentConfigRequest `json:"payment"`
	Shop    ShopInfoRequest      `json:"shop" binding:"required"`
}

func (r SettingsRequest) ToEntity() entities.AppSettings {
	return entities.AppSettings{
		Payment: entities.PaymentConfig(r.Payment),
		Shop:    entities.ShopInfo(r.Shop),
	}
}
