//go:build !linux

package control

import (
	"os"
	"syscall"
)

type sysProcAttr struct {
	File *os.File
	Raw  *syscall.SysProcAttr
}

// getSysProcAttr puts the process in its own process group so the whole
// control process tree can be signaled as a unit.
func getSysProcAttr(id string) (*sysProcAttr, error) {
	return &sysProcAttr{Raw: &syscall.SysProcAttr{Setpgid: true}}, nil
}

func killCgroup(id string) (bool, error) {
	return false, nil
}

func cleanupCgroup(id string) error {
	return nil
}
