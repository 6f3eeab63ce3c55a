package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	apiv1 "github.com/haoyan-ts/dexhand-manager/api/v1"
)

func newHandsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hands",
		Short: "Manage the hand inventory",
	}
	cmd.AddCommand(newHandsListCmd())
	cmd.AddCommand(newHandsAddCmd())
	cmd.AddCommand(newHandsRemoveCmd())
	return cmd
}

func newHandsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered hands",
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
			resp, err := client.ListHands(ctx, &apiv1.ListHandsRequest{})
			if err != nil {
				return err
			}
			printHandTable(resp.GetHands())
			return nil
		},
	}
}

func newHandsAddCmd() *cobra.Command {
	var side, arm, hand string
	cmd := &cobra.Command{
		Use:   "add [-- <command> [args...]]",
		Short: "Register a hand",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := &apiv1.DexHandConfig{
				Side:     parseSide(side),
				ArmType:  parseArm(arm),
				HandType: parseHandType(hand),
			}
			if len(args) > 0 {
				config.ControlCommand = &apiv1.ControlCommand{Command: args[0], Args: args[1:]}
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			client := apiv1.NewDexHandManagerServiceClient(conn)
			resp, err := client.RegisterHand(ctx, &apiv1.RegisterHandRequest{Config: config})
			if err != nil {
				return err
			}
			fmt.Println(resp.GetHand().GetName())
			return nil
		},
	}
	cmd.Flags().StringVar(&side, "side", "", "hand side: left or right")
	cmd.Flags().StringVar(&arm, "arm", "", "arm type: piper or nova")
	cmd.Flags().StringVar(&hand, "hand", "", "hand type: inspire or dh")
	_ = cmd.MarkFlagRequired("side")
	_ = cmd.MarkFlagRequired("arm")
	_ = cmd.MarkFlagRequired("hand")
	return cmd
}

func newHandsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a hand by name",
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
			if _, err := client.RemoveHand(ctx, &apiv1.RemoveHandRequest{Name: args[0]}); err != nil {
				return err
			}
			fmt.Println("removed", args[0])
			return nil
		},
	}
}

func parseSide(s string) apiv1.Side {
	switch strings.ToLower(s) {
	case "left":
		return apiv1.Side_SIDE_LEFT
	case "right":
		return apiv1.Side_SIDE_RIGHT
	default:
		return apiv1.Side_SIDE_UNSPECIFIED
	}
}

func parseArm(s string) apiv1.ArmType {
	switch strings.ToLower(s) {
	case "piper":
		return apiv1.ArmType_ARM_TYPE_PIPER
	case "nova":
		return apiv1.ArmType_ARM_TYPE_NOVA
	default:
		return apiv1.ArmType_ARM_TYPE_UNSPECIFIED
	}
}

func parseHandType(s string) apiv1.HandType {
	switch strings.ToLower(s) {
	case "inspire":
		return apiv1.HandType_HAND_TYPE_INSPIRE
	case "dh":
		return apiv1.HandType_HAND_TYPE_DH
	default:
		return apiv1.HandType_HAND_TYPE_UNSPECIFIED
	}
}
