//go:build linux

package control

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
)

// Each control process gets its own cgroup under this root so a hung hand
// controller can be killed as a unit (cgroup.kill reaches every descendant).
const cgroupRoot = "/sys/fs/cgroup/dexhand"

const memoryHighBytes = int64(512) * 1024 * 1024

var (
	cgroupInitOnce sync.Once
	cgroupInitErr  error
)

// initCgroups prepares the dexhand cgroup root. Safe to call repeatedly;
// without root privileges it is a no-op and processes fall back to plain
// process groups.
func initCgroups() error {
	cgroupInitOnce.Do(func() {
		cgroupInitErr = initCgroupsImpl()
	})
	return cgroupInitErr
}

func initCgroupsImpl() error {
	if os.Geteuid() != 0 {
		return nil
	}

	if err := os.MkdirAll(cgroupRoot, 0o755); err != nil {
		return err
	}

	available, err := readControllerSet(filepath.Join(cgroupRoot, "cgroup.controllers"))
	if err != nil {
		return err
	}
	enabled, err := readControllerSet(filepath.Join(cgroupRoot, "cgroup.subtree_control"))
	if err != nil {
		return err
	}

	var toAdd []string
	for _, ctrl := range []string{"cpu", "io", "memory"} {
		if available[ctrl] && !enabled[ctrl] {
			toAdd = append(toAdd, "+"+ctrl)
		}
	}
	if len(toAdd) > 0 {
		if err := writeString(filepath.Join(cgroupRoot, "cgroup.subtree_control"), strings.Join(toAdd, " ")); err != nil {
			return err
		}
	}
	return nil
}

func readControllerSet(path string) (map[string]bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool)
	for _, f := range strings.Fields(string(data)) {
		set[strings.TrimPrefix(f, "+")] = true
	}
	return set, nil
}

func controllerEnabled(controller string) bool {
	enabled, err := readControllerSet(filepath.Join(cgroupRoot, "cgroup.subtree_control"))
	if err != nil {
		return false
	}
	return enabled[controller]
}

// sysProcAttr bundles the raw attributes with the cgroup FD that must stay
// open across Start.
type sysProcAttr struct {
	File *os.File
	Raw  *syscall.SysProcAttr
}

// getSysProcAttr returns attributes that place the process in its own
// process group and, when running as root, in a dedicated cgroup.
func getSysProcAttr(id string) (*sysProcAttr, error) {
	if os.Geteuid() != 0 {
		return &sysProcAttr{Raw: &syscall.SysProcAttr{Setpgid: true}}, nil
	}

	_ = initCgroups()

	cgDir, err := setupCgroupFor(id)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(cgDir)
	if err != nil {
		return nil, err
	}

	return &sysProcAttr{
		File: f,
		Raw: &syscall.SysProcAttr{
			Setpgid:     true,
			UseCgroupFD: true,
			CgroupFD:    int(f.Fd()),
		},
	}, nil
}

func setupCgroupFor(id string) (string, error) {
	cgDir := filepath.Join(cgroupRoot, id)
	if err := os.MkdirAll(cgDir, 0o755); err != nil {
		return "", err
	}

	if controllerEnabled("cpu") {
		if err := writeString(filepath.Join(cgDir, "cpu.weight"), "100"); err != nil {
			return "", err
		}
	}
	if controllerEnabled("io") {
		if err := writeString(filepath.Join(cgDir, "io.weight"), "100"); err != nil {
			return "", err
		}
	}
	if controllerEnabled("memory") {
		if err := writeString(filepath.Join(cgDir, "memory.high"), fmt.Sprint(memoryHighBytes)); err != nil {
			return "", err
		}
	}

	return cgDir, nil
}

// killCgroup kills every process in the handle's cgroup. Returns false when
// the cgroup path is unavailable (non-root), in which case the caller falls
// back to signaling the process group.
func killCgroup(id string) (bool, error) {
	err := writeString(filepath.Join(cgroupRoot, id, "cgroup.kill"), "1")
	return err == nil, err
}

func cleanupCgroup(id string) error {
	return os.Remove(filepath.Join(cgroupRoot, id))
}

func writeString(path, val string) error {
	return os.WriteFile(path, []byte(val), 0o644)
}
