package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc/codes"

	apiv1 "github.com/haoyan-ts/dexhand-manager/api/v1"
)

func newStopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stop <resource_key>",
		Short: "Stop the control session for a resource key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			client := apiv1.NewDexHandManagerServiceClient(conn)
			resp, err := client.StopControl(ctx, &apiv1.StopControlRequest{ResourceKey: key})
			if err != nil {
				if grpcCode(err) == codes.PermissionDenied {
					_, _ = fmt.Fprintln(os.Stderr, "Forbidden. Only the client that started the session can stop it.")
					return nil
				}
				return err
			}
			fmt.Println(stateName(resp.GetState()))
			return nil
		},
	}
	return cmd
}
