package netprobe

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"net"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/mikey/fraud-detector/internal/core"
)

// TLSProber performs a best-effort handshake against host:443 and reports a
// typed outcome. Only an explicit certificate verification failure is a
// negative signal; timeouts and connection errors are Unverifiable.
type TLSProber struct {
	timeout time.Duration
	logger  *zap.Logger
}

// NewTLSProber creates a prober with the given dial+handshake timeout
func NewTLSProber(timeout time.Duration, logger *zap.Logger) *TLSProber {
	return &TLSProber{
		timeout: timeout,
		logger:  logger,
	}
}

// Probe dials host:443 and completes a TLS handshake with certificate
// verification. The probe honors ctx cancellation so an aborted request does
// not leak a pending dial.
func (p *TLSProber) Probe(ctx context.Context, host string) core.ProbeOutcome {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	dialer := &net.Dialer{Timeout: p.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(host, "443"))
	if err != nil {
		return unverifiable(err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	tlsConn := tls.Client(conn, &tls.Config{ServerName: host})
	if err := tlsConn.HandshakeContext(ctx); err != nil {
		if isCertificateError(err) {
			p.logger.Debug("TLS certificate rejected",
				zap.String("host", host),
				zap.Error(err))
			return core.ProbeOutcome{Status: core.ProbeInvalid, Reason: err.Error()}
		}
		return unverifiable(err)
	}
	defer tlsConn.Close()

	return core.ProbeOutcome{Status: core.ProbeVerified}
}

func unverifiable(err error) core.ProbeOutcome {
	reason := "connection failed"
	if errors.Is(err, os.ErrDeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		reason = "timeout"
	}
	return core.ProbeOutcome{Status: core.ProbeUnverifiable, Reason: reason}
}

func isCertificateError(err error) bool {
	var certErr *tls.CertificateVerificationError
	if errors.As(err, &certErr) {
		return true
	}
	var unknownAuth x509.UnknownAuthorityError
	if errors.As(err, &unknownAuth) {
		return true
	}
	var hostnameErr x509.HostnameError
	if errors.As(err, &hostnameErr) {
		return true
	}
	var invalidErr x509.CertificateInvalidError
	return errors.As(err, &invalidErr)
}
