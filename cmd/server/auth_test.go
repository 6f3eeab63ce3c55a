package main

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/haoyan-ts/dexhand-manager/pkg/lib"
)

func TestContext_HasSpiffeID(t *testing.T) {
	ctx := context.Background()

	expected := "TEST"
	newCtx := injectSpiffeID(ctx, expected)
	actual := extractSpiffeIDFromTLS(newCtx)

	if actual == nil {
		t.Fatalf("expected %s, got nil", expected)
	}

	if expected != *actual {
		t.Fatalf("expected %s, got %s", expected, *actual)
	}
}

func TestCheckOwnership_PlaintextAllowsAll(t *testing.T) {
	s := &DexHandManagerServiceServer{requireTLS: false}

	if err := s.checkOwnership(context.Background(), lib.ResourceKey("LEFT_PIPER_INSPIRE")); err != nil {
		t.Fatalf("plaintext ownership check should pass, got %v", err)
	}
}

func TestCheckOwnership_RequiresIdentity(t *testing.T) {
	s := &DexHandManagerServiceServer{requireTLS: true}

	err := s.checkOwnership(context.Background(), lib.ResourceKey("LEFT_PIPER_INSPIRE"))
	if err == nil {
		t.Fatal("expected Unauthenticated error, got nil")
	}
	if st, ok := status.FromError(err); !ok || st.Code() != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", err)
	}
}
