// Package hardware collects RAM and CPU figures from a metrics provider.
//
// The default provider is backed by gopsutil. Every Collect call refreshes
// the provider; nothing is cached between snapshots.
//
//	stats := (&hardware.Collector{}).Collect(ctx)
//	fmt.Println(stats.CPUBrand, stats.CPUCores)
package hardware
