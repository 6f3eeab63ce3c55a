package main

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/haoyan-ts/dexhand-manager/pkg/lib"
)

type spiffeIDContextKey struct{}

func extractSpiffeIDFromContext(ctx context.Context) *string {
	if v := ctx.Value(spiffeIDContextKey{}); v != nil {
		if spiffeID, ok := v.(string); ok {
			return &spiffeID
		}
	}
	return nil
}

func extractSpiffeIDFromTLS(ctx context.Context) *string {
	// First, check if it was already injected into context.
	if v := extractSpiffeIDFromContext(ctx); v != nil {
		return v
	}

	p, ok := peer.FromContext(ctx)
	if !ok || p == nil {
		return nil
	}

	ti, ok := p.AuthInfo.(credentials.TLSInfo)
	if !ok {
		return nil
	}

	state := ti.State
	if len(state.PeerCertificates) == 0 || state.PeerCertificates[0] == nil {
		return nil
	}
	leaf := state.PeerCertificates[0]

	// Find the first SPIFFE URI SAN.
	for _, uri := range leaf.URIs {
		if uri == nil {
			continue
		}
		if uri.Scheme == "spiffe" {
			// Return the trust domain (host) part as the client identity,
			// e.g. spiffe://client1 -> "client1".
			return &uri.Host
		}
	}

	return nil
}

func injectSpiffeID(ctx context.Context, spiffeID string) context.Context {
	return context.WithValue(ctx, spiffeIDContextKey{}, spiffeID)
}

// injectSpiffeIDUnary extracts the SPIFFE ID from the TLS certificate.
func injectSpiffeIDUnary(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	spiffeID := extractSpiffeIDFromTLS(ctx)
	if spiffeID == nil {
		return nil, status.Error(codes.Unauthenticated, "client must have SPIFFE ID")
	}

	return handler(injectSpiffeID(ctx, *spiffeID), req)
}

type streamWithCtx struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *streamWithCtx) Context() context.Context { return s.ctx }

// injectSpiffeIDStream extracts the SPIFFE ID from the TLS certificate.
func injectSpiffeIDStream(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	ctx := ss.Context()

	spiffeID := extractSpiffeIDFromTLS(ctx)
	if spiffeID == nil {
		return status.Error(codes.Unauthenticated, "client must have SPIFFE ID")
	}

	return handler(srv, &streamWithCtx{ServerStream: ss, ctx: injectSpiffeID(ctx, *spiffeID)})
}

// checkOwnership refuses access to a live session started by a different
// client identity. In plaintext mode there are no identities and every
// caller may act on every session.
func (s *DexHandManagerServiceServer) checkOwnership(ctx context.Context, key lib.ResourceKey) error {
	if !s.requireTLS {
		return nil
	}

	spiffeID := extractSpiffeIDFromContext(ctx)
	if spiffeID == nil {
		return status.Error(codes.Unauthenticated, "client must have SPIFFE ID")
	}

	owner, ok := s.dispatcher.Owner(key)
	if !ok || owner == "" {
		// No live session, or it was started before ownership tracking
		// kicked in. Nothing to protect.
		return nil
	}
	if owner != *spiffeID {
		return status.Error(codes.PermissionDenied, "only the original owner can access the session")
	}

	return nil
}

// callerIdentity returns the SPIFFE ID of the caller, or "" in plaintext mode.
func callerIdentity(ctx context.Context) string {
	if id := extractSpiffeIDFromContext(ctx); id != nil {
		return *id
	}
	return ""
}
