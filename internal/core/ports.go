package core

import (
	"context"
)

// ParsedDomain is the decomposition of a host name into its parts
type ParsedDomain struct {
	Subdomain   string
	Registrable string
	Suffix      string
}

// DomainParser splits a host into subdomain, registrable domain and suffix
type DomainParser interface {
	Parse(host string) (ParsedDomain, error)
}

// DNSChecker reports whether a domain has any A records, within a bounded
// timeout. A resolution failure is reported as absence, not as an error.
type DNSChecker interface {
	HasARecords(ctx context.Context, domain string) bool
}

// ProbeStatus is the typed outcome of a TLS handshake probe
type ProbeStatus int

const (
	// ProbeVerified means the handshake completed with a valid certificate
	ProbeVerified ProbeStatus = iota
	// ProbeInvalid means the peer presented an invalid or self-signed
	// certificate; this is a hard negative signal
	ProbeInvalid
	// ProbeUnverifiable means the probe timed out or failed for reasons
	// unrelated to the certificate; it must never be scored as insecure
	ProbeUnverifiable
)

// ProbeOutcome carries the probe status and a short reason for the non-success
// variants
type ProbeOutcome struct {
	Status ProbeStatus
	Reason string
}

// TLSProber performs a best-effort handshake against host:443
type TLSProber interface {
	Probe(ctx context.Context, host string) ProbeOutcome
}

// ModelStore persists the trained classifier artifact keyed by a fixed model
// name. Load returns (nil, nil) when no artifact exists yet.
type ModelStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, artifact []byte) error
	Close() error
}

// TextExtractor pulls text out of an image for downstream analysis. An
// implementation is optional; analyzers must treat a nil extractor as
// "extraction unavailable".
type TextExtractor interface {
	ExtractText(ctx context.Context, image []byte) (string, error)
}
