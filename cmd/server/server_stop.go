package main

import (
	"context"

	apiv1 "github.com/haoyan-ts/dexhand-manager/api/v1"
	"github.com/haoyan-ts/dexhand-manager/pkg/lib"
)

func (s *DexHandManagerServiceServer) StopControl(ctx context.Context, request *apiv1.StopControlRequest) (*apiv1.StopControlResponse, error) {
	key := lib.ResourceKey(request.ResourceKey)

	if err := s.checkOwnership(ctx, key); err != nil {
		return nil, err
	}

	state, err := s.dispatcher.Stop(ctx, key)
	if err != nil {
		return nil, rpcError(err)
	}

	return &apiv1.StopControlResponse{State: toProtoState(state)}, nil
}
