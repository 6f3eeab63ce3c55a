package main

import (
	"context"

	apiv1 "github.com/haoyan-ts/dexhand-manager/api/v1"
)

func (s *DexHandManagerServiceServer) RegisterHand(ctx context.Context, request *apiv1.RegisterHandRequest) (*apiv1.RegisterHandResponse, error) {
	hand, err := s.hands.Register(fromProtoConfig(request.Config))
	if err != nil {
		return nil, rpcError(err)
	}

	s.log.Info().Str("hand", hand.Name).Msg("hand registered")
	return &apiv1.RegisterHandResponse{Hand: toProtoHand(hand)}, nil
}

func (s *DexHandManagerServiceServer) ListHands(ctx context.Context, request *apiv1.ListHandsRequest) (*apiv1.ListHandsResponse, error) {
	response := &apiv1.ListHandsResponse{}
	for _, hand := range s.hands.List() {
		response.Hands = append(response.Hands, toProtoHand(hand))
	}
	return response, nil
}

func (s *DexHandManagerServiceServer) RemoveHand(ctx context.Context, request *apiv1.RemoveHandRequest) (*apiv1.RemoveHandResponse, error) {
	if err := s.hands.Remove(request.Name); err != nil {
		return nil, rpcError(err)
	}

	s.log.Info().Str("hand", request.Name).Msg("hand removed")
	return &apiv1.RemoveHandResponse{}, nil
}
