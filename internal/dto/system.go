package dto

import "time"

type HealthResponse struct {
	Status        string  `json:"status"`
	Uptime        string  `json:"uptime"`
	Goroutines    int     `json:"goroutines"`
	MemoryAllocMB float64 `json:"memory_alloc_mb"`
	NumCPU        int     `json:"num_cpu"`
	CorpusSize    int     `json:"corpus_size"`
}

type InfoResponse struct {
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
	Status     string    `json:"status"`
	Version    string    `json:"version"`
	CorpusSize int       `json:"corpus_size"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
