package collector

import (
	"runtime"

	"github.com/vengine/sysprobe/pkg/collector/gpu"
	"github.com/vengine/sysprobe/pkg/collector/hardware"
)

// Factory creates collectors with their dependencies.
// This interface enables dependency injection for testing.
type Factory interface {
	CreateHardwareCollector() *hardware.Collector
	CreateGPUEnumerator() gpu.Enumerator
}

// DefaultFactory creates collectors with production dependencies.
type DefaultFactory struct {
	// HardwareProvider backs the hardware collector. Nil means gopsutil.
	HardwareProvider hardware.Provider

	// GOOS selects the GPU strategy. Empty means the running platform.
	GOOS string

	// Runner executes GPU listing commands. Nil means os/exec.
	Runner gpu.Runner
}

// NewDefaultFactory creates a factory with default settings.
func NewDefaultFactory() *DefaultFactory {
	return &DefaultFactory{}
}

// CreateHardwareCollector creates a RAM and CPU collector.
func (f *DefaultFactory) CreateHardwareCollector() *hardware.Collector {
	return &hardware.Collector{
		Provider: f.HardwareProvider,
	}
}

// CreateGPUEnumerator creates the GPU strategy for the configured platform.
func (f *DefaultFactory) CreateGPUEnumerator() gpu.Enumerator {
	if f.GOOS == "" && f.Runner == nil {
		return gpu.Default()
	}

	goos := f.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}

	var opts []gpu.Option
	if f.Runner != nil {
		opts = append(opts, gpu.WithRunner(f.Runner))
	}
	return gpu.ForPlatform(goos, opts...)
}
