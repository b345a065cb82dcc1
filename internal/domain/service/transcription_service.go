package service

import "context"

// TranscriptionService is the external speech-to-text collaborator. The core
// consumes it only through this contract; everything behind it is a relay to
// a third-party API.
type TranscriptionService interface {
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)
}
