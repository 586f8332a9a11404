package payment

import "context"

// Intent is the subset of the processor's response the frontend needs to
// complete the payment.
type Intent struct {
	ID           string
	ClientSecret string
}

// Gateway creates payment intents with the external processor. Amount is in
// major currency units; implementations convert to minor units.
type Gateway interface {
	CreateIntent(ctx context.Context, userID string, amount float64) (*Intent, error)
}

// ProviderError carries the processor's rejection message verbatim. It maps
// to a 400 at the HTTP layer.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return e.Message
}
