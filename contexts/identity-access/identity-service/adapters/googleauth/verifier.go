package googleauth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	domainerrors "bookcourier/contexts/identity-access/identity-service/domain/errors"
)

const defaultEndpoint = "https://identitytoolkit.googleapis.com/v1/accounts:lookup"

// Verifier checks bearer ID tokens against the Google Identity Toolkit
// lookup endpoint. A rejected token is unauthenticated; transport errors
// and 5xx responses are a provider outage, reported distinctly so the
// caller never conflates them with an invalid credential.
type Verifier struct {
	APIKey   string
	Endpoint string
	Client   *http.Client
	Logger   *slog.Logger
}

func NewVerifier(apiKey string, logger *slog.Logger) *Verifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Verifier{
		APIKey:   apiKey,
		Endpoint: defaultEndpoint,
		Client:   &http.Client{Timeout: 10 * time.Second},
		Logger:   logger,
	}
}

type lookupRequest struct {
	IDToken string `json:"idToken"`
}

type lookupResponse struct {
	Users []struct {
		Email string `json:"email"`
	} `json:"users"`
}

func (v *Verifier) VerifyIDToken(ctx context.Context, rawToken string) (string, error) {
	token := strings.TrimSpace(rawToken)
	if token == "" {
		return "", domainerrors.ErrUnauthenticated
	}

	body, err := json.Marshal(lookupRequest{IDToken: token})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s?key=%s", v.endpoint(), v.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client().Do(req)
	if err != nil {
		v.Logger.Error("identity provider call failed",
			"event", "identity_provider_call_failed",
			"module", "identity-access/identity-service",
			"layer", "adapter",
			"error", err.Error(),
		)
		return "", domainerrors.ErrProviderUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		v.Logger.Error("identity provider returned server error",
			"event", "identity_provider_server_error",
			"module", "identity-access/identity-service",
			"layer", "adapter",
			"status", resp.StatusCode,
		)
		return "", domainerrors.ErrProviderUnavailable
	}
	if resp.StatusCode != http.StatusOK {
		return "", domainerrors.ErrUnauthenticated
	}

	var decoded lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", domainerrors.ErrProviderUnavailable
	}
	if len(decoded.Users) == 0 || decoded.Users[0].Email == "" {
		return "", domainerrors.ErrUnauthenticated
	}
	return strings.ToLower(decoded.Users[0].Email), nil
}

func (v *Verifier) endpoint() string {
	if v.Endpoint == "" {
		return defaultEndpoint
	}
	return v.Endpoint
}

func (v *Verifier) client() *http.Client {
	if v.Client == nil {
		return http.DefaultClient
	}
	return v.Client
}
