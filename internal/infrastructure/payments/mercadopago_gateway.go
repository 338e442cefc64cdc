package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"

	"oficina_insufilm/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
	ErrInvalidChargeRequest            = errors.New("invalid mercado pago payment request")
)

// MercadoPagoGateway charges work orders through the Mercado Pago payments
// API. The request must already carry the order total and its
// external_reference (the work order id).
type MercadoPagoGateway struct {
	client payment.Client
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		log.Printf("[payment][mercadopago] missing access token")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][mercadopago] sdk config failed err=%v", err)
		return nil, err
	}
	log.Printf("[payment][mercadopago] client ready")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	req, err := decodeChargeRequest(requestPayload)
	if err != nil {
		log.Printf("[payment][mercadopago] rejected request err=%v", err)
		return "", "", nil, err
	}
	log.Printf("[payment][mercadopago] charge start order_id=%s amount=%.2f method=%s", req.ExternalReference, req.TransactionAmount, req.PaymentMethodID)

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][mercadopago] charge failed order_id=%s err=%v", req.ExternalReference, err)
		return "", "", nil, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, fmt.Errorf("encode mercado pago response: %w", err)
	}
	id := strconv.Itoa(resp.ID)
	log.Printf("[payment][mercadopago] charge done order_id=%s provider_payment_id=%s status=%s detail=%s", req.ExternalReference, id, resp.Status, resp.StatusDetail)

	return id, resp.Status, raw, nil
}

// decodeChargeRequest reads a payment request and checks the fields every
// work order charge needs.
func decodeChargeRequest(payload json.RawMessage) (payment.Request, error) {
	var req payment.Request
	if err := json.Unmarshal(payload, &req); err != nil {
		return payment.Request{}, fmt.Errorf("%w: %v", ErrInvalidChargeRequest, err)
	}
	if req.TransactionAmount <= 0 {
		return payment.Request{}, fmt.Errorf("%w: transaction_amount must be positive", ErrInvalidChargeRequest)
	}
	if req.ExternalReference == "" {
		return payment.Request{}, fmt.Errorf("%w: external_reference is required", ErrInvalidChargeRequest)
	}
	return req, nil
}
