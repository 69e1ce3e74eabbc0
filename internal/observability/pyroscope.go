package observability

import (
	"runtime"

	"github.com/grafana/pyroscope-go"
	"github.com/riskibarqy/sports-league/internal/config"
	"github.com/riskibarqy/sports-league/internal/platform/logging"
)

// Sampling rates for the contention profiles. Every mutation holds the store
// write lock, so lock waits are the main thing these profiles show.
const (
	mutexProfileFraction = 5
	blockProfileRate     = 5
)

var profileTypes = []pyroscope.ProfileType{
	pyroscope.ProfileCPU,
	pyroscope.ProfileAllocObjects,
	pyroscope.ProfileAllocSpace,
	pyroscope.ProfileInuseSpace,
	pyroscope.ProfileGoroutines,
	pyroscope.ProfileMutexCount,
	pyroscope.ProfileMutexDuration,
	pyroscope.ProfileBlockCount,
	pyroscope.ProfileBlockDuration,
}

func startProfiling(cfg config.Config, logger *logging.Logger) (func() error, error) {
	if !cfg.PyroscopeEnabled {
		logger.Info("profiling disabled", "reason", "PYROSCOPE_ENABLED=false")
		return func() error { return nil }, nil
	}

	previousMutexFraction := runtime.SetMutexProfileFraction(mutexProfileFraction)
	runtime.SetBlockProfileRate(blockProfileRate)

	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName:   cfg.PyroscopeAppName,
		ServerAddress:     cfg.PyroscopeServerAddress,
		AuthToken:         cfg.PyroscopeAuthToken,
		BasicAuthUser:     cfg.PyroscopeBasicAuthUser,
		BasicAuthPassword: cfg.PyroscopeBasicAuthPassword,
		UploadRate:        cfg.PyroscopeUploadRate,
		Tags: map[string]string{
			"env":     cfg.AppEnv,
			"service": cfg.ServiceName,
			"version": cfg.ServiceVersion,
		},
		ProfileTypes: profileTypes,
	})
	if err != nil {
		runtime.SetMutexProfileFraction(previousMutexFraction)
		runtime.SetBlockProfileRate(0)
		return nil, err
	}

	logger.Info("profiling enabled",
		"server_address", cfg.PyroscopeServerAddress,
		"application", cfg.PyroscopeAppName,
	)

	return func() error {
		err := profiler.Stop()
		runtime.SetMutexProfileFraction(previousMutexFraction)
		runtime.SetBlockProfileRate(0)
		return err
	}, nil
}
