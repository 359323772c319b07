// Package netprobe implements the bounded-timeout network collaborators the
// URL analyzer consumes: DNS A-record presence and TLS handshake probing.
package netprobe

import (
	"context"
	"time"

	"github.com/miekg/dns"
	"go.uber.org/zap"
)

// DNSChecker resolves A records against a configured upstream with a short
// timeout. Any failure (timeout, SERVFAIL, network error) is reported as
// record absence; the scoring layer treats that as a soft signal, never a
// hard failure.
type DNSChecker struct {
	client *dns.Client
	server string
	logger *zap.Logger
}

// NewDNSChecker creates a checker querying server (host:port) with the given
// per-query timeout.
func NewDNSChecker(server string, timeout time.Duration, logger *zap.Logger) *DNSChecker {
	return &DNSChecker{
		client: &dns.Client{Timeout: timeout},
		server: server,
		logger: logger,
	}
}

// HasARecords reports whether domain resolves to at least one A record
func (c *DNSChecker) HasARecords(ctx context.Context, domain string) bool {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(domain), dns.TypeA)
	msg.RecursionDesired = true

	resp, _, err := c.client.ExchangeContext(ctx, msg, c.server)
	if err != nil {
		c.logger.Debug("DNS query failed",
			zap.String("domain", domain),
			zap.Error(err))
		return false
	}
	if resp.Rcode != dns.RcodeSuccess {
		return false
	}

	for _, rr := range resp.Answer {
		if _, ok := rr.(*dns.A); ok {
			return true
		}
	}
	return false
}
