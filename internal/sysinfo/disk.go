package sysinfo

import (
	"github.com/shirou/gopsutil/v4/disk"
)

// DiskUsage describes the capacity of the filesystem containing a path.
type DiskUsage struct {
	Total       uint64
	Free        uint64
	UsedPercent float64
}

// Usage returns capacity information for the filesystem containing path.
// Callers treat a failure as "no context available", never as fatal.
func Usage(path string) (DiskUsage, error) {
	u, err := disk.Usage(path)
	if err != nil {
		return DiskUsage{}, err
	}
	return DiskUsage{
		Total:       u.Total,
		Free:        u.Free,
		UsedPercent: u.UsedPercent,
	}, nil
}
