package main

import (
	"google.golang.org/grpc"

	apiv1 "github.com/haoyan-ts/dexhand-manager/api/v1"
	"github.com/haoyan-ts/dexhand-manager/pkg/lib"
)

const attachChannelCapacity = 64

func (s *DexHandManagerServiceServer) AttachOutput(request *apiv1.AttachOutputRequest, streaming grpc.ServerStreamingServer[apiv1.AttachOutputResponse]) error {
	key := lib.ResourceKey(request.ResourceKey)

	ctx := streaming.Context()
	if err := s.checkOwnership(ctx, key); err != nil {
		return err
	}

	stdout, stderr, err := s.dispatcher.Attach(ctx, key, attachChannelCapacity)
	if err != nil {
		return rpcError(err)
	}
	for {
		if stdout == nil && stderr == nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case chunk, ok := <-stdout:
			if !ok {
				stdout = nil
				continue
			}
			if err := streaming.Send(&apiv1.AttachOutputResponse{Stream: apiv1.AttachOutputResponse_STREAM_STDOUT, Data: chunk}); err != nil {
				return err
			}
		case chunk, ok := <-stderr:
			if !ok {
				stderr = nil
				continue
			}
			if err := streaming.Send(&apiv1.AttachOutputResponse{Stream: apiv1.AttachOutputResponse_STREAM_STDERR, Data: chunk}); err != nil {
				return err
			}
		}
	}
}
