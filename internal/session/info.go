package session

import "time"

// TranscriptInfo holds structured information about a transcript file
type TranscriptInfo struct {
	SessionID   string    `json:"sessionId"`
	LogFilePath string    `json:"logFilePath"`
	StartedAt   time.Time `json:"startedAt,omitempty"`
	Size        int64     `json:"size"`
	Turns       int       `json:"turns"`
	Label       string    `json:"label,omitempty"`
	OutputName  string    `json:"outputName"`
}
