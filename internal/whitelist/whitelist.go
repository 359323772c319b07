package whitelist

import (
	"strings"

	"go.uber.org/zap"
)

// Checker answers trust queries against the known-legitimate domain table.
// Matching is exact or dot-suffix (subdomains of a trusted domain are
// trusted); a match short-circuits URL analysis entirely.
type Checker struct {
	domains []string
	logger  *zap.Logger
}

// NewChecker creates a checker over the built-in table plus any extra
// domains from configuration.
func NewChecker(domains []string, logger *zap.Logger) *Checker {
	normalized := make([]string, 0, len(domains))
	for _, domain := range domains {
		d := strings.ToLower(strings.TrimSpace(domain))
		if d != "" {
			normalized = append(normalized, d)
		}
	}

	if len(normalized) > 0 && logger != nil {
		logger.Info("Initialized trusted-domain checker", zap.Int("domains", len(normalized)))
	}

	return &Checker{
		domains: normalized,
		logger:  logger,
	}
}

// IsTrusted checks whether domain is whitelisted or a subdomain of a
// whitelisted domain.
func (c *Checker) IsTrusted(domain string) bool {
	domain = strings.ToLower(strings.TrimSpace(domain))
	domain = strings.TrimPrefix(domain, "www.")
	if domain == "" {
		return false
	}

	for _, trusted := range c.domains {
		if domain == trusted || strings.HasSuffix(domain, "."+trusted) {
			if c.logger != nil {
				c.logger.Debug("Domain is trusted",
					zap.String("domain", domain),
					zap.String("matched", trusted))
			}
			return true
		}
	}

	return false
}

// Domains returns the normalized trust table, used as the typosquatting
// comparison set.
func (c *Checker) Domains() []string {
	return c.domains
}
