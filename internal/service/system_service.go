package service

import (
	"runtime"
	"time"

	"flameo-chatbot/internal/dto"
)

const (
	StatusHealthy = "healthy"
	StatusOnline  = "online"
)

// SystemService reports process health and service info.
type SystemService struct {
	startedAt  time.Time
	version    string
	corpusSize func() int
}

func NewSystemService(version string, corpusSize func() int) *SystemService {
	return &SystemService{
		startedAt:  time.Now(),
		version:    version,
		corpusSize: corpusSize,
	}
}

func (s *SystemService) Health() *dto.HealthResponse {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return &dto.HealthResponse{
		Status:        StatusHealthy,
		Uptime:        time.Since(s.startedAt).Round(time.Second).String(),
		Goroutines:    runtime.NumGoroutine(),
		MemoryAllocMB: float64(mem.Alloc) / 1024 / 1024,
		NumCPU:        runtime.NumCPU(),
		CorpusSize:    s.corpusSize(),
	}
}

func (s *SystemService) Info() *dto.InfoResponse {
	return &dto.InfoResponse{
		Message:    "Flameo chatbot is running",
		Timestamp:  time.Now().UTC(),
		Status:     StatusOnline,
		Version:    s.version,
		CorpusSize: s.corpusSize(),
	}
}
