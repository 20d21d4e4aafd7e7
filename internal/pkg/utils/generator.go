package utils

import (
	"fmt"
	"medibook-service/internal/pkg/constvars"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.New().String()
}

func GenerateSessionID() string {
	return uuid.New().String()
}

// GenerateVerificationImageKey mirrors the browser-era object naming so keys
// stay readable when listing a practitioner's uploads.
func GenerateVerificationImageKey(userID, imageType string) string {
	return fmt.Sprintf(constvars.VerificationImageKeyFormat, userID, imageType, time.Now().UnixNano())
}
