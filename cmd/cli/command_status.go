package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	apiv1 "github.com/haoyan-ts/dexhand-manager/api/v1"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <resource_key>",
		Short: "Get the session status for a resource key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			client := apiv1.NewDexHandManagerServiceClient(conn)
			resp, err := client.QueryControl(ctx, &apiv1.QueryControlRequest{ResourceKey: args[0]})
			if err != nil {
				return err
			}
			printSessionTable(resp.GetStatus())
			return nil
		},
	}
	return cmd
}
