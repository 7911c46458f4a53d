package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/api"
	"storefront/internal/cart"
	"storefront/internal/models"
	"storefront/internal/session"
)

type memoryStore struct {
	records map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{records: map[string][]byte{}}
}

func (m *memoryStore) Load(key string, v any) (bool, error) {
	raw, ok := m.records[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, v)
}

func (m *memoryStore) Save(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.records[key] = raw
	return nil
}

// mockPlacer records the submitted payload and key, and fails on demand.
type mockPlacer struct {
	payload models.OrderPayload
	key     string
	calls   int
	err     error
}

func (m *mockPlacer) CreateOrder(_ context.Context, payload models.OrderPayload, idempotencyKey string) (*models.OrderResponse, error) {
	m.calls++
	m.payload = payload
	m.key = idempotencyKey
	if m.err != nil {
		return nil, m.err
	}
	return &models.OrderResponse{ID: 12, OrderNumber: "PK-12", Status: "pending"}, nil
}

var zones = []models.DeliveryZone{
	{ID: 4, Name: "Plateau", DeliveryFeeCents: 1000},
	{ID: 5, Name: "Almadies", DeliveryFeeCents: 2000},
}

func newFixtures(t *testing.T) (*session.Session, *cart.Cart) {
	t.Helper()
	sess, err := session.New(newMemoryStore())
	require.NoError(t, err)
	sess.SetCountryCode("SN")
	sess.SetCountryID(1)
	sess.SetStoreID(3)

	basket, err := cart.New(newMemoryStore())
	require.NoError(t, err)
	basket.Add(
		models.Product{ID: 5, Name: "Kebab", PriceCents: 2500},
		2,
		models.CartItemSupplements{Frites: "Moyenne", Sauces: []string{"Blanche"}},
		500,
	)
	return sess, basket
}

func validForm() Form {
	return Form{Name: "Awa Diop", Phone: "771234567", DeliveryZoneID: 4, Note: "  Sans oignons  "}
}

func TestValidateFormReportsAllErrorsAtOnce(t *testing.T) {
	errs := ValidateForm(Form{Name: "   ", Phone: "", DeliveryZoneID: 0}, "SN", zones)
	require.Len(t, errs, 3)
	assert.Equal(t, "Le nom est requis", errs["name"])
	assert.Equal(t, "Le numéro de téléphone est requis", errs["phone"])
	assert.Equal(t, "La zone de livraison est requise", errs["deliveryZone"])
}

func TestValidateFormPhoneLengthBoundary(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		wantErr bool
	}{
		{"eight digits", "77123456", true},
		{"nine digits", "771234567", false},
		{"ten digits", "7712345678", true},
		{"nine digits with separators", "77 123-45.67", false},
	}

	for _, tt := range tests {
		form := validForm()
		form.Phone = tt.phone
		errs := ValidateForm(form, "SN", zones)
		if tt.wantErr {
			require.Contains(t, errs, "phone", tt.name)
			assert.Equal(t, "Le numéro doit contenir 9 chiffres", errs["phone"], tt.name)
		} else {
			assert.NotContains(t, errs, "phone", tt.name)
		}
	}
}

func TestValidateFormTenDigitCountry(t *testing.T) {
	form := validForm()
	form.Phone = "0712345678"
	assert.Nil(t, ValidateForm(form, "CI", zones))

	form.Phone = "771234567"
	errs := ValidateForm(form, "CI", zones)
	assert.Equal(t, "Le numéro doit contenir 10 chiffres", errs["phone"])
}

func TestValidateFormZoneMustBeFetched(t *testing.T) {
	form := validForm()
	form.DeliveryZoneID = 99
	errs := ValidateForm(form, "SN", zones)
	assert.Equal(t, "La zone de livraison est requise", errs["deliveryZone"])
}

func TestSubmitBuildsPayloadAndClearsCart(t *testing.T) {
	sess, basket := newFixtures(t)
	placer := &mockPlacer{}

	resp, err := Submit(context.Background(), placer, sess, basket, validForm(), zones)
	require.NoError(t, err)
	assert.Equal(t, "PK-12", resp.OrderNumber)

	assert.Equal(t, 3, placer.payload.StoreID)
	assert.Equal(t, "Awa Diop", placer.payload.CustomerName)
	assert.Equal(t, "+221771234567", placer.payload.CustomerPhone)
	assert.Equal(t, 4, placer.payload.DeliveryZoneID)
	assert.Equal(t, "Sans oignons", placer.payload.Note)
	require.Len(t, placer.payload.Items, 1)
	assert.Equal(t, 5, placer.payload.Items[0].ProductID)
	assert.Equal(t, 2, placer.payload.Items[0].Quantity)
	assert.Equal(t, "Moyenne", placer.payload.Items[0].Frites)
	assert.Equal(t, []string{"Blanche"}, placer.payload.Items[0].Sauces)
	assert.NotEmpty(t, placer.key)

	assert.Empty(t, basket.Items())
}

func TestSubmitValidationFailureMakesNoCall(t *testing.T) {
	sess, basket := newFixtures(t)
	placer := &mockPlacer{}

	form := validForm()
	form.Phone = "123"
	_, err := Submit(context.Background(), placer, sess, basket, form, zones)

	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "phone")
	assert.Equal(t, 0, placer.calls)
	assert.Len(t, basket.Items(), 1)
}

func TestSubmitFailureKeepsCart(t *testing.T) {
	sess, basket := newFixtures(t)
	placer := &mockPlacer{err: errors.New("connection refused")}

	_, err := Submit(context.Background(), placer, sess, basket, validForm(), zones)

	var subErr *SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, fallbackMessage, subErr.Message)
	assert.Len(t, basket.Items(), 1)
}

func TestSubmitPrefersServerMessage(t *testing.T) {
	sess, basket := newFixtures(t)
	placer := &mockPlacer{err: &api.Error{Status: http.StatusConflict, Message: "Commande déjà enregistrée"}}

	_, err := Submit(context.Background(), placer, sess, basket, validForm(), zones)

	var subErr *SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, "Commande déjà enregistrée", subErr.Message)
	assert.Len(t, basket.Items(), 1)
}

func TestSubmitServerErrorWithoutMessageFallsBack(t *testing.T) {
	sess, basket := newFixtures(t)
	placer := &mockPlacer{err: &api.Error{Status: http.StatusBadRequest}}

	_, err := Submit(context.Background(), placer, sess, basket, validForm(), zones)

	var subErr *SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, fallbackMessage, subErr.Message)
}

func TestSubmitFreshKeyPerSubmission(t *testing.T) {
	sess, basket := newFixtures(t)
	placer := &mockPlacer{err: errors.New("boom")}

	_, err := Submit(context.Background(), placer, sess, basket, validForm(), zones)
	require.Error(t, err)
	firstKey := placer.key

	placer.err = nil
	_, err = Submit(context.Background(), placer, sess, basket, validForm(), zones)
	require.NoError(t, err)

	assert.NotEqual(t, firstKey, placer.key)
}
