package main

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	apiv1 "github.com/haoyan-ts/dexhand-manager/api/v1"
	"github.com/haoyan-ts/dexhand-manager/pkg/lib"
	"github.com/haoyan-ts/dexhand-manager/pkg/lib/store"
)

// rpcError maps the session core's error taxonomy onto gRPC status codes.
func rpcError(err error) error {
	if err == nil {
		return nil
	}

	var inUse *lib.ResourceInUseError
	var spawn *lib.SpawnError
	switch {
	case errors.Is(err, lib.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.As(err, &inUse):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, lib.ErrNoActiveSession):
		return status.Error(codes.NotFound, err.Error())
	case errors.As(err, &spawn):
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, store.ErrDuplicateSide):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, store.ErrHandNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func toProtoState(s lib.SessionState) apiv1.SessionState {
	switch s {
	case lib.StateIdle:
		return apiv1.SessionState_SESSION_STATE_IDLE
	case lib.StateStarting:
		return apiv1.SessionState_SESSION_STATE_STARTING
	case lib.StateRunning:
		return apiv1.SessionState_SESSION_STATE_RUNNING
	case lib.StateStopping:
		return apiv1.SessionState_SESSION_STATE_STOPPING
	case lib.StateStopped:
		return apiv1.SessionState_SESSION_STATE_STOPPED
	case lib.StateFailed:
		return apiv1.SessionState_SESSION_STATE_FAILED
	default:
		return apiv1.SessionState_SESSION_STATE_UNSPECIFIED
	}
}

func toProtoStatus(st lib.SessionStatus) *apiv1.SessionStatus {
	out := &apiv1.SessionStatus{
		ResourceKey: string(st.Key),
		HandleId:    st.HandleID,
		State:       toProtoState(st.State),
	}
	if st.Command.Command != "" {
		out.Command = &apiv1.ControlCommand{Command: st.Command.Command, Args: st.Command.Args}
	}
	if !st.StartedAt.IsZero() {
		out.StartedAt = timestamppb.New(st.StartedAt)
	}
	if st.Exit != nil {
		out.ExitInfo = &apiv1.ExitInfo{
			ExitCode: int32(st.Exit.Code),
			Signal:   st.Exit.Signal,
			ExitedAt: timestamppb.New(st.Exit.ExitedAt),
		}
	}
	return out
}

func toProtoHand(h *store.Hand) *apiv1.DexHand {
	out := &apiv1.DexHand{
		Id:   h.ID,
		Name: h.Name,
		Config: &apiv1.DexHandConfig{
			Side:     toProtoSide(h.Config.Side),
			ArmType:  toProtoArm(h.Config.Arm),
			HandType: toProtoHandType(h.Config.Hand),
		},
	}
	if h.Config.Command.Command != "" {
		out.Config.ControlCommand = &apiv1.ControlCommand{
			Command: h.Config.Command.Command,
			Args:    h.Config.Command.Args,
		}
	}
	return out
}

func toProtoSide(s store.Side) apiv1.Side {
	switch s {
	case store.SideLeft:
		return apiv1.Side_SIDE_LEFT
	case store.SideRight:
		return apiv1.Side_SIDE_RIGHT
	default:
		return apiv1.Side_SIDE_UNSPECIFIED
	}
}

func toProtoArm(a store.ArmType) apiv1.ArmType {
	switch a {
	case store.ArmPiper:
		return apiv1.ArmType_ARM_TYPE_PIPER
	case store.ArmNova:
		return apiv1.ArmType_ARM_TYPE_NOVA
	default:
		return apiv1.ArmType_ARM_TYPE_UNSPECIFIED
	}
}

func toProtoHandType(h store.HandType) apiv1.HandType {
	switch h {
	case store.HandInspire:
		return apiv1.HandType_HAND_TYPE_INSPIRE
	case store.HandDH:
		return apiv1.HandType_HAND_TYPE_DH
	default:
		return apiv1.HandType_HAND_TYPE_UNSPECIFIED
	}
}

func fromProtoConfig(c *apiv1.DexHandConfig) store.Config {
	cfg := store.Config{}
	if c == nil {
		return cfg
	}
	switch c.Side {
	case apiv1.Side_SIDE_LEFT:
		cfg.Side = store.SideLeft
	case apiv1.Side_SIDE_RIGHT:
		cfg.Side = store.SideRight
	}
	switch c.ArmType {
	case apiv1.ArmType_ARM_TYPE_PIPER:
		cfg.Arm = store.ArmPiper
	case apiv1.ArmType_ARM_TYPE_NOVA:
		cfg.Arm = store.ArmNova
	}
	switch c.HandType {
	case apiv1.HandType_HAND_TYPE_INSPIRE:
		cfg.Hand = store.HandInspire
	case apiv1.HandType_HAND_TYPE_DH:
		cfg.Hand = store.HandDH
	}
	if c.ControlCommand != nil {
		cfg.Command = lib.Command{
			Command: c.ControlCommand.Command,
			Args:    c.ControlCommand.Args,
		}
	}
	return cfg
}

func fromProtoCommand(c *apiv1.ControlCommand) lib.Command {
	if c == nil {
		return lib.Command{}
	}
	return lib.Command{Command: c.Command, Args: c.Args}
}
