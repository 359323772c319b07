// Package domainparse splits host names into subdomain, registrable domain
// and public suffix using the embedded public suffix list.
package domainparse

import (
	"fmt"
	"net"
	"strings"

	"golang.org/x/net/publicsuffix"

	"github.com/mikey/fraud-detector/internal/core"
)

// Parser implements core.DomainParser on top of golang.org/x/net/publicsuffix
type Parser struct{}

// NewParser creates a public-suffix-list backed domain parser
func NewParser() *Parser {
	return &Parser{}
}

// Parse decomposes a host into its parts. Hosts that are bare suffixes or
// unlisted single labels still yield a usable Registrable so downstream
// layers can score them.
func (p *Parser) Parse(host string) (core.ParsedDomain, error) {
	host = strings.ToLower(strings.TrimSuffix(strings.TrimSpace(host), "."))
	if host == "" {
		return core.ParsedDomain{}, fmt.Errorf("empty host")
	}

	// Literal IPs have no suffix structure to decompose. Bare IPv6 hosts
	// are full of colons, so this must run before any port stripping.
	if trimmed := strings.Trim(host, "[]"); net.ParseIP(trimmed) != nil {
		return core.ParsedDomain{Registrable: trimmed}, nil
	}

	// Strip a port if present
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
		if net.ParseIP(host) != nil {
			return core.ParsedDomain{Registrable: host}, nil
		}
	}

	suffix, _ := publicsuffix.PublicSuffix(host)

	registrable, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		// Hosts equal to a public suffix or without a dot fall back to
		// the host itself
		registrable = host
	}

	sub := strings.TrimSuffix(host, registrable)
	sub = strings.TrimSuffix(sub, ".")

	return core.ParsedDomain{
		Subdomain:   sub,
		Registrable: registrable,
		Suffix:      suffix,
	}, nil
}
