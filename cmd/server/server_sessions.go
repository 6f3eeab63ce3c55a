package main

import (
	"context"

	apiv1 "github.com/haoyan-ts/dexhand-manager/api/v1"
)

func (s *DexHandManagerServiceServer) ListSessions(ctx context.Context, request *apiv1.ListSessionsRequest) (*apiv1.ListSessionsResponse, error) {
	response := &apiv1.ListSessionsResponse{}
	for _, st := range s.dispatcher.Sessions() {
		response.Sessions = append(response.Sessions, toProtoStatus(st))
	}
	return response, nil
}
