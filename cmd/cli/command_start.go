package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	apiv1 "github.com/haoyan-ts/dexhand-manager/api/v1"
)

func newStartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start <resource_key> [-- <command> [args...]]",
		Short: "Start a control session for a resource key",
		Long: "Start a control session. The command after -- is optional when a hand\n" +
			"registered under the key has a configured control command.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			request := &apiv1.StartControlRequest{ResourceKey: args[0]}
			if len(args) > 1 {
				request.Command = &apiv1.ControlCommand{Command: args[1], Args: args[2:]}
			}

			client := apiv1.NewDexHandManagerServiceClient(conn)
			resp, err := client.StartControl(ctx, request)
			if err != nil {
				return err
			}
			fmt.Println(resp.GetHandleId())
			return nil
		},
	}
	return cmd
}
