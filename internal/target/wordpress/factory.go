package wordpress

import (
	"log/slog"
	"time"

	"post_syncer/internal/domain"
)

// Factory builds one client per tenant; the signing key differs per tenant.
type Factory struct {
	operatorEmail string
	timeout       time.Duration
	logger        *slog.Logger
}

func NewFactory(operatorEmail string, timeout time.Duration, logger *slog.Logger) *Factory {
	return &Factory{
		operatorEmail: operatorEmail,
		timeout:       timeout,
		logger:        logger,
	}
}

func (f *Factory) ForTenant(tenant *domain.Tenant) *Client {
	return NewClient(Config{
		WordpressURL:  tenant.WordpressURL,
		SecretPhrase:  tenant.SecretPhrase,
		OperatorEmail: f.operatorEmail,
		StripHashtags: tenant.DeleteHash,
		Timeout:       f.timeout,
	}, f.logger)
}
