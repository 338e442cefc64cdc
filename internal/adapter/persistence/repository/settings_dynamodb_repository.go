package repository

import (
	"context"

	"oficina_insufilm/internal/domain/entities"
	"oficina_insufilm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type settingsItem struct {
	ID          string `dynamodbav:"id"`
	PayMoney    bool   `dynamodbav:"pay_money"`
	PayPix      bool   `dynamodbav:"pay_pix"`
	PayCredit   bool   `dynamodbav:"pay_credit"`
	PayDebit    bool   `dynamodbav:"pay_debit"`
	PayOther    bool   `dynamodbav:"pay_other"`
	ShopName    string `dynamodbav:"shop_name"`
	ShopCNPJ    string `dynamodbav:"shop_cnpj,omitempty"`
	ShopAddress string `dynamodbav:"shop_address,omitempty"`
}

// SettingsDynamoRepository keeps the settings document as a single row keyed
// by entities.SettingsID.

type SettingsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb *dynamodb.Client, tableName string) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *SettingsDynamoRepository) Get(ctx context.Context) (entities.AppSettings, bool, error) {
	var it settingsItem
	found, err := getItem(ctx, r.ddb, r.tableName, entities.SettingsID, &it)
	if err != nil || !found {
		return entities.AppSettings{}, false, err
	}
	return fromSettingsItem(it), true, nil
}

func (r *SettingsDynamoRepository) Put(ctx context.Context, s entities.AppSettings) (entities.AppSettings, error) {
	av, err := attributevalue.MarshalMap(toSettingsItem(s))
	if err != nil {
		return entities.AppSettings{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.AppSettings{}, err
	}
	return s, nil
}

func toSettingsItem(s entities.AppSettings) settingsItem {
	return settingsItem{
		ID:          entities.SettingsID,
		PayMoney:    s.Payment.Money,
		PayPix:      s.Payment.Pix,
		PayCredit:   s.Payment.Credit,
		PayDebit:    s.Payment.Debit,
		PayOther:    s.Payment.Other,
		ShopName:    s.Shop.Name,
		ShopCNPJ:    s.Shop.CNPJ,
		ShopAddress: s.Shop.Address,
	}
}

func fromSettingsItem(it settingsItem) entities.AppSettings {
	return entities.AppSettings{
		Payment: entities.PaymentConfig{
			Money:  it.PayMoney,
			Pix:    it.PayPix,
			Credit: it.PayCredit,
			Debit:  it.PayDebit,
			Other:  it.PayOther,
		},
		Shop: entities.ShopInfo{
			Name:    it.ShopName,
			CNPJ:    it.ShopCNPJ,
			Address: it.ShopAddress,
		},
	}
}
