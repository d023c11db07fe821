package service

// AuthMetrics records outcomes of session operations.
type AuthMetrics interface {
	// LoginAttempt counts a login with the given outcome label.
	LoginAttempt(outcome string)

	// RefreshAttempt counts a refresh with the given outcome label.
	RefreshAttempt(outcome string)

	// TokensIssued counts one freshly minted token pair.
	TokensIssued()
}

// Outcome labels shared by AuthMetrics implementations.
const (
	OutcomeSuccess           = "success"
	OutcomeInvalidCredential = "invalid_credential"
	OutcomeThrottled         = "throttled"
	OutcomeUnauthorized      = "unauthorized"
	OutcomeError             = "error"
)
