package utils

import (
	"fmt"
	"strings"
	"time"

	"policlinico-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRecordID() string {
	return uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}

// GenerateInvoiceNumber produces FACT-<timestamp>-<suffix>; the random
// suffix keeps numbers unique when two invoices land on the same second.
func GenerateInvoiceNumber(now time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:6])
	return fmt.Sprintf("%s%s-%s", constvars.InvoiceNumberPrefix, now.Format("20060102150405"), suffix)
}

func GenerateExportFileName(collection, extension string) string {
	timestamp := time.Now().Format("20060102_150405")
	return fmt.Sprintf("%s_%s.%s", collection, timestamp, extension)
}

func GenerateRequestID() string {
	return uuid.NewString()
}
