package main

import (
	"context"

	apiv1 "github.com/haoyan-ts/dexhand-manager/api/v1"
	"github.com/haoyan-ts/dexhand-manager/pkg/lib"
)

func (s *DexHandManagerServiceServer) StartControl(ctx context.Context, request *apiv1.StartControlRequest) (*apiv1.StartControlResponse, error) {
	key := lib.ResourceKey(request.ResourceKey)

	res, err := s.dispatcher.Start(ctx, key, fromProtoCommand(request.Command), callerIdentity(ctx))
	if err != nil {
		return nil, rpcError(err)
	}

	return &apiv1.StartControlResponse{
		HandleId: res.HandleID,
		State:    toProtoState(res.State),
	}, nil
}
