package inference

import (
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

var (
	runtimeMu  sync.Mutex
	runtimeCfg RuntimeConfig
)

// InitRuntime initializes the ONNX Runtime environment. It is safe to call
// more than once; only the first successful call has an effect.
func InitRuntime(cfg RuntimeConfig) error {
	runtimeMu.Lock()
	defer runtimeMu.Unlock()

	if ort.IsInitialized() {
		return nil
	}
	if cfg.SharedLibraryPath != "" {
		ort.SetSharedLibraryPath(cfg.SharedLibraryPath)
	}
	if err := ort.InitializeEnvironment(); err != nil {
		return fmt.Errorf("initialize onnxruntime: %w", err)
	}
	runtimeCfg = cfg
	return nil
}

// DestroyRuntime releases the ONNX Runtime environment if it was initialized.
func DestroyRuntime() error {
	runtimeMu.Lock()
	defer runtimeMu.Unlock()

	if !ort.IsInitialized() {
		return nil
	}
	return ort.DestroyEnvironment()
}

func defaultIntraOpThreads() int {
	runtimeMu.Lock()
	defer runtimeMu.Unlock()
	return runtimeCfg.IntraOpThreads
}
