package checkout

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"storefront/internal/api"
	"storefront/internal/cart"
	"storefront/internal/models"
	"storefront/internal/phone"
	"storefront/internal/session"
)

// fallbackMessage is shown when the server gives no usable message.
const fallbackMessage = "Une erreur est survenue lors de la commande. Veuillez réessayer."

var validate = validator.New()

// Form carries the delivery details the customer typed in.
type Form struct {
	Name           string `validate:"required"`
	Phone          string
	DeliveryZoneID int
	Note           string
}

// FieldErrors maps form field names to user-facing messages. All fields are
// checked in one pass so the customer sees every problem at once.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}

// SubmissionError wraps a failed submission with the message to show.
type SubmissionError struct {
	Message string
	Err     error
}

func (e *SubmissionError) Error() string { return e.Message }
func (e *SubmissionError) Unwrap() error { return e.Err }

// OrderPlacer is the one API operation submission needs.
type OrderPlacer interface {
	CreateOrder(ctx context.Context, payload models.OrderPayload, idempotencyKey string) (*models.OrderResponse, error)
}

// ValidateForm runs every field check and returns nil when the form is
// clean. The zone must belong to the zones fetched for the active store.
func ValidateForm(form Form, countryCode string, zones []models.DeliveryZone) FieldErrors {
	errs := FieldErrors{}

	trimmed := form
	trimmed.Name = strings.TrimSpace(form.Name)
	if err := validate.Struct(trimmed); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				if fe.Field() == "Name" {
					errs["name"] = "Le nom est requis"
				}
			}
		}
	}

	if err := phone.Validate(form.Phone, countryCode); err != nil {
		errs["phone"] = err.Error()
	}

	if !zoneExists(form.DeliveryZoneID, zones) {
		errs["deliveryZone"] = "La zone de livraison est requise"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func zoneExists(id int, zones []models.DeliveryZone) bool {
	for _, z := range zones {
		if z.ID == id {
			return true
		}
	}
	return false
}

// BuildPayload assembles the outbound order from the session, the cart lines
// and the form. Supplement choices are copied through per line unchanged.
func BuildPayload(storeID int, countryCode string, items []models.CartItem, form Form) models.OrderPayload {
	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Pain:      item.Supplements.Pain,
			Frites:    item.Supplements.Frites,
			Sauces:    item.Supplements.Sauces,
		})
	}

	return models.OrderPayload{
		StoreID:        storeID,
		CustomerName:   strings.TrimSpace(form.Name),
		CustomerPhone:  phone.FormatWithPrefix(form.Phone, countryCode),
		DeliveryZoneID: form.DeliveryZoneID,
		Note:           strings.TrimSpace(form.Note),
		Items:          orderItems,
	}
}

// Submit validates the form, sends the order with a fresh idempotency key,
// and clears the cart only on success. A failed submission leaves the cart
// intact so the customer can retry without re-entering items. Validation
// failures come back as FieldErrors without any network call.
func Submit(ctx context.Context, placer OrderPlacer, sess *session.Session, basket *cart.Cart, form Form, zones []models.DeliveryZone) (*models.OrderResponse, error) {
	storeID, ok := sess.StoreID()
	if !ok {
		return nil, &SubmissionError{Message: "Aucun magasin sélectionné"}
	}
	countryCode, ok := sess.CountryCode()
	if !ok {
		return nil, &SubmissionError{Message: "Aucun pays sélectionné"}
	}

	if errs := ValidateForm(form, countryCode, zones); errs != nil {
		return nil, errs
	}

	payload := BuildPayload(storeID, countryCode, basket.Items(), form)
	key := uuid.NewString()

	resp, err := placer.CreateOrder(ctx, payload, key)
	if err != nil {
		log.Printf("[CHECKOUT] order submission failed: %v", err)
		message := fallbackMessage
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			message = apiErr.Message
		}
		return nil, &SubmissionError{Message: message, Err: err}
	}

	basket.Clear()
	return resp, nil
}
