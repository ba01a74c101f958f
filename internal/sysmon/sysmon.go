// Package sysmon samples the load the sorting runs put on the machine.
package sysmon

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats is one snapshot of system-wide usage plus the process goroutines.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
	Goroutines int
}

// Sample collects a snapshot. CPU usage is the delta since the previous
// call, so the first sample of a process may read zero. Fields whose reading
// fails are left at zero.
func Sample() Stats {
	s := Stats{Goroutines: runtime.NumGoroutine()}
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if vmem, err := mem.VirtualMemory(); err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}

// String renders the snapshot for a status line.
func (s Stats) String() string {
	return fmt.Sprintf("CPU %.0f%%  MEM %.0f%%  goroutines %d", s.CPUPercent, s.MemPercent, s.Goroutines)
}
