package test

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"fmt"
	"math/big"
	"net"
	"net/url"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	apiv1 "github.com/haoyan-ts/dexhand-manager/api/v1"
)

// testPKI is an ephemeral CA plus certificates minted for one test run:
// a server cert for localhost and per-client certs carrying SPIFFE IDs.
type testPKI struct {
	caPEM  string
	caCert *x509.Certificate
	caKey  *ecdsa.PrivateKey
}

type keyPair struct {
	certPEM string
	keyPEM  string
}

func newTestPKI(t *testing.T) *testPKI {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("generate CA key: %v", err)
	}
	tmpl := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "dexhand test CA"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(time.Hour),
		IsCA:                  true,
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageDigitalSignature,
		BasicConstraintsValid: true,
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("create CA cert: %v", err)
	}
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		t.Fatalf("parse CA cert: %v", err)
	}

	return &testPKI{
		caPEM:  string(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})),
		caCert: cert,
		caKey:  key,
	}
}

// issue mints a leaf cert. spiffeID, when non-empty, becomes a URI SAN of
// the form spiffe://<id>, which is how the server identifies clients.
func (p *testPKI) issue(t *testing.T, cn string, spiffeID string, server bool) keyPair {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("generate key for %s: %v", cn, err)
	}

	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(time.Now().UnixNano()),
		Subject:      pkix.Name{CommonName: cn},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
	}
	if server {
		tmpl.ExtKeyUsage = []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth}
		tmpl.DNSNames = []string{"localhost"}
		tmpl.IPAddresses = []net.IP{net.ParseIP("127.0.0.1"), net.ParseIP("::1")}
	} else {
		tmpl.ExtKeyUsage = []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth}
	}
	if spiffeID != "" {
		tmpl.URIs = []*url.URL{{Scheme: "spiffe", Host: spiffeID}}
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, p.caCert, &key.PublicKey, p.caKey)
	if err != nil {
		t.Fatalf("create cert for %s: %v", cn, err)
	}
	keyDER, err := x509.MarshalECPrivateKey(key)
	if err != nil {
		t.Fatalf("marshal key for %s: %v", cn, err)
	}

	return keyPair{
		certPEM: string(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})),
		keyPEM:  string(pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER})),
	}
}

func (p *testPKI) clientCreds(t *testing.T, kp keyPair) credentials.TransportCredentials {
	t.Helper()

	cert, err := tls.X509KeyPair([]byte(kp.certPEM), []byte(kp.keyPEM))
	if err != nil {
		t.Fatalf("parse client key pair: %v", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM([]byte(p.caPEM)) {
		t.Fatal("failed to parse CA cert")
	}
	return credentials.NewTLS(&tls.Config{
		Certificates: []tls.Certificate{cert},
		RootCAs:      pool,
		MinVersion:   tls.VersionTLS13,
	})
}

func startTLSServer(t *testing.T, addr string, pki *testPKI) func() {
	t.Helper()

	server := pki.issue(t, "server", "server", true)
	return startServer(t, addr,
		fmt.Sprintf("DHM_TLS_KEY=%s", server.keyPEM),
		fmt.Sprintf("DHM_TLS_CERT=%s", server.certPEM),
		fmt.Sprintf("DHM_CA_TLS_CERT=%s", pki.caPEM),
	)
}

func dialCreds(t *testing.T, addr string, creds credentials.TransportCredentials) apiv1.DexHandManagerServiceClient {
	t.Helper()

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(creds))
	if err != nil {
		t.Fatalf("failed to dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return apiv1.NewDexHandManagerServiceClient(conn)
}

func TestAuth_ServerRejectsPlaintext(t *testing.T) {
	addr := getAvailableAddress(t)
	pki := newTestPKI(t)
	stop := startTLSServer(t, addr, pki)
	defer stop()

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("failed to dial: %v", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	_, err = apiv1.NewDexHandManagerServiceClient(conn).ListSessions(ctx, &apiv1.ListSessionsRequest{})
	if err == nil {
		t.Fatal("expected plaintext call against TLS server to fail")
	}
}

func TestAuth_RejectsUnknownClientCA(t *testing.T) {
	addr := getAvailableAddress(t)
	pki := newTestPKI(t)
	stop := startTLSServer(t, addr, pki)
	defer stop()

	rogue := newTestPKI(t)
	rogueClient := rogue.issue(t, "client", "intruder", false)

	// Client cert chains to a CA the server does not trust; trust of the
	// server side still uses the real CA so only the client cert is at fault.
	cert, err := tls.X509KeyPair([]byte(rogueClient.certPEM), []byte(rogueClient.keyPEM))
	if err != nil {
		t.Fatalf("parse rogue key pair: %v", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM([]byte(pki.caPEM)) {
		t.Fatal("failed to parse CA cert")
	}
	creds := credentials.NewTLS(&tls.Config{
		Certificates: []tls.Certificate{cert},
		RootCAs:      pool,
		MinVersion:   tls.VersionTLS13,
	})

	client := dialCreds(t, addr, creds)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := client.ListSessions(ctx, &apiv1.ListSessionsRequest{}); err == nil {
		t.Fatal("expected client cert from unknown CA to be rejected")
	}
}

func TestAuth_SessionOwnership(t *testing.T) {
	addr := getAvailableAddress(t)
	pki := newTestPKI(t)
	stop := startTLSServer(t, addr, pki)
	defer stop()

	client1 := dialCreds(t, addr, pki.clientCreds(t, pki.issue(t, "client1", "client1", false)))
	client2 := dialCreds(t, addr, pki.clientCreds(t, pki.issue(t, "client2", "client2", false)))

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	key := "LEFT_PIPER_INSPIRE"

	if _, err := client1.StartControl(ctx, &apiv1.StartControlRequest{
		ResourceKey: key,
		Command:     &apiv1.ControlCommand{Command: "sleep", Args: []string{"30"}},
	}); err != nil {
		t.Fatalf("start: %v", err)
	}

	// A different identity may observe but not stop the session.
	if _, err := client2.QueryControl(ctx, &apiv1.QueryControlRequest{ResourceKey: key}); err != nil {
		t.Fatalf("query from second client: %v", err)
	}
	_, err := client2.StopControl(ctx, &apiv1.StopControlRequest{ResourceKey: key})
	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("expected PermissionDenied for foreign stop, got %v", err)
	}

	if _, err := client1.StopControl(ctx, &apiv1.StopControlRequest{ResourceKey: key}); err != nil {
		t.Fatalf("owner stop: %v", err)
	}
}
