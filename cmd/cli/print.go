package main

import (
	"fmt"
	"strings"

	apiv1 "github.com/haoyan-ts/dexhand-manager/api/v1"
)

func stateName(s apiv1.SessionState) string {
	switch s {
	case apiv1.SessionState_SESSION_STATE_IDLE:
		return "Idle"
	case apiv1.SessionState_SESSION_STATE_STARTING:
		return "Starting"
	case apiv1.SessionState_SESSION_STATE_RUNNING:
		return "Running"
	case apiv1.SessionState_SESSION_STATE_STOPPING:
		return "Stopping"
	case apiv1.SessionState_SESSION_STATE_STOPPED:
		return "Stopped"
	case apiv1.SessionState_SESSION_STATE_FAILED:
		return "Failed"
	default:
		return "Unknown"
	}
}

func commandLine(c *apiv1.ControlCommand) string {
	if c == nil {
		return ""
	}
	all := append([]string{c.GetCommand()}, c.GetArgs()...)
	return strings.TrimSpace(strings.Join(all, " "))
}

func exitSummary(e *apiv1.ExitInfo) string {
	if e == nil {
		return ""
	}
	if e.GetSignal() != "" {
		return e.GetSignal()
	}
	return fmt.Sprintf("exit %d", e.GetExitCode())
}

// printSessionTable renders one row per session status.
func printSessionTable(statuses ...*apiv1.SessionStatus) {
	keyW, stateW, cmdW, exitW := len("KEY"), len("STATE"), len("COMMAND"), len("EXIT")
	rows := make([][4]string, 0, len(statuses))
	for _, st := range statuses {
		row := [4]string{
			st.GetResourceKey(),
			stateName(st.GetState()),
			commandLine(st.GetCommand()),
			exitSummary(st.GetExitInfo()),
		}
		keyW = maxInt(keyW, len(row[0]))
		stateW = maxInt(stateW, len(row[1]))
		cmdW = maxInt(cmdW, len(row[2]))
		exitW = maxInt(exitW, len(row[3]))
		rows = append(rows, row)
	}

	sep := fmt.Sprintf("+-%s-+-%s-+-%s-+-%s-+\n",
		strings.Repeat("-", keyW), strings.Repeat("-", stateW),
		strings.Repeat("-", cmdW), strings.Repeat("-", exitW))
	fmt.Print(sep)
	fmt.Printf("| %s | %s | %s | %s |\n", pad("KEY", keyW), pad("STATE", stateW), pad("COMMAND", cmdW), pad("EXIT", exitW))
	fmt.Print(sep)
	for _, row := range rows {
		fmt.Printf("| %s | %s | %s | %s |\n", pad(row[0], keyW), pad(row[1], stateW), pad(row[2], cmdW), pad(row[3], exitW))
	}
	fmt.Print(sep)
}

func printHandTable(hands []*apiv1.DexHand) {
	nameW, idW := len("NAME"), len("ID")
	for _, h := range hands {
		nameW = maxInt(nameW, len(h.GetName()))
		idW = maxInt(idW, len(h.GetId()))
	}

	sep := fmt.Sprintf("+-%s-+-%s-+\n", strings.Repeat("-", nameW), strings.Repeat("-", idW))
	fmt.Print(sep)
	fmt.Printf("| %s | %s |\n", pad("NAME", nameW), pad("ID", idW))
	fmt.Print(sep)
	for _, h := range hands {
		fmt.Printf("| %s | %s |\n", pad(h.GetName(), nameW), pad(h.GetId(), idW))
	}
	fmt.Print(sep)
}

func pad(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
