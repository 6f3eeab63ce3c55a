package main

import (
	"context"

	apiv1 "github.com/haoyan-ts/dexhand-manager/api/v1"
	"github.com/haoyan-ts/dexhand-manager/pkg/lib"
)

func (s *DexHandManagerServiceServer) QueryControl(ctx context.Context, request *apiv1.QueryControlRequest) (*apiv1.QueryControlResponse, error) {
	st, err := s.dispatcher.Query(lib.ResourceKey(request.ResourceKey))
	if err != nil {
		return nil, rpcError(err)
	}

	return &apiv1.QueryControlResponse{Status: toProtoStatus(st)}, nil
}
