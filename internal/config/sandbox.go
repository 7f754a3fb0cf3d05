package config

import (
	"os"
	"strconv"
	"time"
)

// SandboxConfig is the process-wide sandbox configuration. Read once at
// startup; per-request only the free-form execution timeout varies.
type SandboxConfig struct {
	Image           string
	MemoryLimit     string
	CPULimit        float64
	NetworkDisabled bool
	ReadOnlyRootFS  bool
	NoNewPrivileges bool
	DefaultTimeout  time.Duration
	MaxTimeout      time.Duration
	TestCaseTimeout time.Duration
	MaxOutputBytes  int64
	MaxConcurrent   int64
	SweepInterval   time.Duration
	ContainerLabel  string
}

func NewSandboxConfig() *SandboxConfig {
	return &SandboxConfig{
		Image:           getStr("SANDBOX_IMAGE", "python:3.11-slim"),
		MemoryLimit:     getStr("SANDBOX_MEMORY_LIMIT", "128m"),
		CPULimit:        getFloat("SANDBOX_CPU_LIMIT", 0.5),
		NetworkDisabled: getBool("SANDBOX_NETWORK_DISABLED", true),
		ReadOnlyRootFS:  getBool("SANDBOX_READ_ONLY_FS", true),
		NoNewPrivileges: getBool("SANDBOX_NO_NEW_PRIVILEGES", true),
		DefaultTimeout:  getSeconds("SANDBOX_DEFAULT_TIMEOUT_SEC", 30),
		MaxTimeout:      getSeconds("SANDBOX_MAX_TIMEOUT_SEC", 60),
		TestCaseTimeout: getSeconds("SANDBOX_TEST_CASE_TIMEOUT_SEC", 10),
		MaxOutputBytes:  int64(getInt("SANDBOX_MAX_OUTPUT_BYTES", 10240)),
		MaxConcurrent:   int64(getInt("SANDBOX_MAX_CONCURRENT", 10)),
		SweepInterval:   getSeconds("SANDBOX_SWEEP_INTERVAL_SEC", 300),
		ContainerLabel:  getStr("SANDBOX_CONTAINER_LABEL", "codecamp.sandbox"),
	}
}

func getStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return fallback
	}
	return v
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v == "true"
}

func getSeconds(key string, fallback int) time.Duration {
	return time.Duration(getInt(key, fallback)) * time.Second
}
