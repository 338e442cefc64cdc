package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"oficina_insufilm/internal/domain/entities"
	"sort"
	"strconv"
	"strings"
)

var (
	ErrInvalidProviderPayload         = entities.NewValidationError("payload", "invalid mercado pago payload")
	ErrOrderAlreadyPaid               = fmt.Errorf("work order already paid: %w", entities.ErrConflict)
	ErrNothingToCharge                = entities.NewValidationError("total", "order total is zero")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// ChargePayment charges the order total through the payment provider and, once
// approved, records the payment in the cash ledger. The provider response is
// kept as a PaymentCharge. In mock mode the provider is not called and an
// approved response is synthesized.
func (u *WorkOrderUseCase) ChargePayment(ctx context.Context, id string, providerPayload json.RawMessage, actor string) (PaymentResult, error) {
	log.Printf("[payment][usecase] charge start raw_order_id=%q payload_len=%d", id, len(providerPayload))
	mockMode := u.gatewayOpts.Mock
	id = strings.TrimSpace(id)
	if id == "" {
		log.Printf("[payment][usecase] invalid order_id (empty)")
		return PaymentResult{}, ErrInvalidOrderID
	}
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return PaymentResult{}, ErrInvalidActor
	}
	if len(providerPayload) == 0 || !json.Valid(providerPayload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload order_id=%s", id)
			return PaymentResult{}, ErrInvalidProviderPayload
		}
		providerPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !mockMode {
		log.Printf("[payment][usecase] gateway not configured order_id=%s", id)
		return PaymentResult{}, ErrPaymentGatewayNotConfigured
	}

	log.Printf("[payment][usecase] loading order order_id=%s", id)
	o, err := u.GetByID(ctx, id)
	if err != nil {
		log.Printf("[payment][usecase] failed loading order order_id=%s err=%v", id, err)
		return PaymentResult{}, err
	}
	if o.Status == entities.OrderStatusCancelada {
		return PaymentResult{}, ErrOrderCancelled
	}
	if o.PaymentReceived {
		log.Printf("[payment][usecase] order already paid order_id=%s", id)
		return PaymentResult{}, ErrOrderAlreadyPaid
	}
	if !o.Total.IsPositive() {
		return PaymentResult{}, ErrNothingToCharge
	}
	log.Printf("[payment][usecase] order loaded order_id=%s status=%s total=%s", id, o.Status, o.Total.StringFixed(2))

	var reqMap map[string]any
	if err := json.Unmarshal(providerPayload, &reqMap); err != nil {
		// A JSON array or scalar is valid JSON but not a payment request.
		if !mockMode {
			log.Printf("[payment][usecase] payload unmarshal failed order_id=%s err=%v", id, err)
			return PaymentResult{}, ErrInvalidProviderPayload
		}
		reqMap = map[string]any{}
	}
	if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
		log.Printf("[payment][usecase] missing payment_method_id order_id=%s", id)
		return PaymentResult{}, ErrInvalidProviderPayload
	}
	if !mockMode {
		u.normalizeSandboxPayerFromUserID(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Printf("[payment][usecase] missing/invalid payer order_id=%s", id)
			return PaymentResult{}, ErrInvalidProviderPayload
		}
	}

	// Mercado Pago uses external_reference to reconcile events with the order.
	if !hasNonEmptyString(reqMap, "external_reference") {
		reqMap["external_reference"] = o.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Ordem de servico %s", o.ID)
	}
	// The order total is the source of truth for the amount.
	reqMap["transaction_amount"] = o.Total.InexactFloat64()
	payload, err := json.Marshal(reqMap)
	if err != nil {
		return PaymentResult{}, err
	}

	var (
		providerPaymentID string
		providerStatus    string
		providerResp      json.RawMessage
	)
	if mockMode {
		log.Printf("[payment][usecase] mock mode enabled; skipping external payment gateway order_id=%s", id)
		providerPaymentID, providerStatus, providerResp, err = u.mockProviderResponse(reqMap)
		if err != nil {
			return PaymentResult{}, err
		}
	} else {
		log.Printf("[payment][usecase] calling payment gateway order_id=%s", id)
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, payload)
		if err != nil {
			log.Printf("[payment][usecase] payment gateway failed order_id=%s err=%v", id, err)
			return PaymentResult{}, classifyGatewayError(err)
		}
	}
	log.Printf("[payment][usecase] payment gateway success order_id=%s provider_payment_id=%s provider_status=%s", id, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed order_id=%s err=%v", id, err)
	}
	paymentType, _ := parsed["payment_type_id"].(string)
	if paymentType == "" {
		paymentType, _ = reqMap["payment_method_id"].(string)
	}

	charge := entities.PaymentCharge{
		ID:                 providerPaymentID,
		OrderID:            o.ID,
		Amount:             o.Total,
		Method:             entities.MethodFromProvider(paymentType),
		Status:             chargeStatusFromProvider(providerStatus),
		Date:               u.now(),
		By:                 actor,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	result := PaymentResult{Order: o}
	var payErr error
	if charge.Status == entities.ChargeStatusAprovado {
		// The provider already took the money, so the settings allowlist is
		// not consulted here.
		paid, err := u.recordPayment(ctx, o, charge.Amount, charge.Method, actor)
		if err != nil {
			payErr = err
		} else {
			result = paid
			charge.CashEntryID = paid.Entry.ID
		}
	}

	if u.charges != nil {
		created, err := u.charges.Create(ctx, charge)
		if err != nil {
			log.Printf("[payment][usecase] charge repository create failed order_id=%s charge_id=%s err=%v", id, charge.ID, err)
			return result, errors.Join(payErr, err)
		}
		charge = created
	}
	result.Charge = &charge
	if payErr != nil {
		return result, payErr
	}
	log.Printf("[payment][usecase] charge finished order_id=%s charge_id=%s status=%s", id, charge.ID, charge.Status)
	return result, nil
}

// ListCharges returns the provider charges of an order, newest first.
func (u *WorkOrderUseCase) ListCharges(ctx context.Context, id string) ([]entities.PaymentCharge, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidOrderID
	}
	if u.charges == nil {
		return []entities.PaymentCharge{}, nil
	}
	charges, err := u.charges.ListByOrderID(ctx, id)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(charges, func(i, j int) bool {
		return charges[i].Date.After(charges[j].Date)
	})
	return charges, nil
}

func (u *WorkOrderUseCase) mockProviderResponse(req map[string]any) (string, string, json.RawMessage, error) {
	now := u.now()
	paymentID := strconv.FormatInt(now.UnixNano(), 10)
	resp := make(map[string]any, len(req)+5)
	for k, v := range req {
		resp[k] = v
	}
	resp["id"] = paymentID
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now.Format("2006-01-02T15:04:05.000Z07:00")
	resp["date_approved"] = now.Format("2006-01-02T15:04:05.000Z07:00")
	if _, ok := resp["payment_type_id"]; !ok {
		resp["payment_type_id"] = "pix"
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return paymentID, "approved", b, nil
}

func chargeStatusFromProvider(status string) entities.ChargeStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.ChargeStatusAprovado
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.ChargeStatusNegado
	}
	return entities.ChargeStatusPendente
}

func classifyGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *WorkOrderUseCase) sandboxToken() bool {
	return strings.HasPrefix(strings.TrimSpace(u.gatewayOpts.AccessToken), "TEST-")
}

func (u *WorkOrderUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox, either payer.id or payer.email may be used.
	// Fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(u.gatewayOpts.TestPayerEmail); email != "" {
			payer["email"] = email
		} else if u.sandboxToken() {
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

func (u *WorkOrderUseCase) normalizeSandboxPayerFromUserID(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		return
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if !u.sandboxToken() {
		return
	}

	configuredUserID := strings.TrimSpace(u.gatewayOpts.TestPayerUserID)
	configuredEmail := strings.TrimSpace(u.gatewayOpts.TestPayerEmail)
	if configuredUserID == "" || configuredEmail == "" {
		return
	}

	rawID := strings.TrimSpace(fmt.Sprintf("%v", payer["id"]))
	if rawID == "" || rawID == "<nil>" || rawID != configuredUserID {
		return
	}

	payer["email"] = configuredEmail
	delete(payer, "id")
	log.Printf("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") ||
		strings.Contains(msg, "\"status\":400") ||
		strings.Contains(msg, "invalid mercado pago payment request")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
