package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	apiv1 "github.com/haoyan-ts/dexhand-manager/api/v1"
)

func newSessionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List all control sessions, live and recently finished",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			client := apiv1.NewDexHandManagerServiceClient(conn)
			resp, err := client.ListSessions(ctx, &apiv1.ListSessionsRequest{})
			if err != nil {
				return err
			}
			printSessionTable(resp.GetSessions()...)
			return nil
		},
	}
	return cmd
}
