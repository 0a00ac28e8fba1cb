package observability

import (
	"log/slog"
	"os"

	"github.com/shirou/gopsutil/process"
)

// ProcessStats is the resource usage of the running server, reported by /health.
type ProcessStats struct {
	PID        int32   `json:"pid"`
	RSSBytes   uint64  `json:"rss_bytes"`
	CPUPercent float64 `json:"cpu_percent"`
}

// ProcessProbe samples the current process on demand.
type ProcessProbe struct {
	log  *slog.Logger
	proc *process.Process
}

func NewProcessProbe(log *slog.Logger) (*ProcessProbe, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, err
	}
	return &ProcessProbe{log: log, proc: p}, nil
}

// Snapshot never fails: a metric the OS refuses to report stays at zero.
func (pp *ProcessProbe) Snapshot() ProcessStats {
	stats := ProcessStats{PID: pp.proc.Pid}

	memInfo, err := pp.proc.MemoryInfo()
	if err != nil {
		pp.log.Warn("Failed to read memory usage", "error", err)
	} else {
		stats.RSSBytes = memInfo.RSS
	}

	cpuPercent, err := pp.proc.CPUPercent()
	if err != nil {
		pp.log.Warn("Failed to read cpu usage", "error", err)
	} else {
		stats.CPUPercent = cpuPercent
	}
	return stats
}
