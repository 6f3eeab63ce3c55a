package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	apiv1 "github.com/haoyan-ts/dexhand-manager/api/v1"
)

func newLogsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs <resource_key>",
		Short: "Stream the session's stdout/stderr from the beginning",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			client := apiv1.NewDexHandManagerServiceClient(conn)
			stream, err := client.AttachOutput(ctx, &apiv1.AttachOutputRequest{ResourceKey: args[0]})
			if err != nil {
				return err
			}
			for {
				msg, err := stream.Recv()
				if err == io.EOF {
					return nil
				}
				if err != nil {
					return err
				}

				var w io.Writer
				switch msg.GetStream() {
				case apiv1.AttachOutputResponse_STREAM_STDOUT:
					w = os.Stdout
				case apiv1.AttachOutputResponse_STREAM_STDERR:
					w = os.Stderr
				}

				if w != nil {
					if _, werr := w.Write(msg.GetData()); werr != nil {
						return werr
					}
				}
			}
		},
	}
	return cmd
}
