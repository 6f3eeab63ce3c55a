package main

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

const defaultAddress = "localhost:50051"

// dial connects to the server at DHM_ADDRESS. When the DHM_TLS_* variables
// are set the connection uses mTLS, otherwise plaintext.
func dial() (*grpc.ClientConn, error) {
	addr := os.Getenv("DHM_ADDRESS")
	if strings.TrimSpace(addr) == "" {
		addr = defaultAddress
	}

	keyPEM := os.Getenv("DHM_TLS_KEY")
	certPEM := os.Getenv("DHM_TLS_CERT")
	caPEM := os.Getenv("DHM_CA_TLS_CERT")

	if strings.TrimSpace(keyPEM) == "" && strings.TrimSpace(certPEM) == "" && strings.TrimSpace(caPEM) == "" {
		return grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	}
	if strings.TrimSpace(keyPEM) == "" || strings.TrimSpace(certPEM) == "" || strings.TrimSpace(caPEM) == "" {
		return nil, fmt.Errorf("partial TLS environment; require all of DHM_TLS_KEY, DHM_TLS_CERT, DHM_CA_TLS_CERT")
	}

	cert, err := tls.X509KeyPair([]byte(certPEM), []byte(keyPEM))
	if err != nil {
		return nil, fmt.Errorf("failed to parse TLS cert/key from env: %w", err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM([]byte(caPEM)) {
		return nil, fmt.Errorf("failed to parse CA cert from env")
	}

	cfg := &tls.Config{
		Certificates: []tls.Certificate{cert},
		RootCAs:      pool,
		MinVersion:   tls.VersionTLS13,
	}
	return grpc.NewClient(addr, grpc.WithTransportCredentials(credentials.NewTLS(cfg)))
}

func grpcCode(err error) codes.Code {
	st, ok := status.FromError(err)
	if !ok {
		return codes.Unknown
	}
	return st.Code()
}
