package certificates

import "time"

// Displayed certificate statuses. A record has no internal state; its status
// is a pure function of (ValidFrom, ValidTo, now), computed by the consumer
// and never stored.
const (
	StatusValid        = "Valid"
	StatusExpiringSoon = "Expiring Soon"
	StatusExpired      = "Expired"
)

// ExpiringSoonWindow is the remaining validity below which a record is
// reported as expiring soon.
const ExpiringSoonWindow = 30 * 24 * time.Hour

// RecordStatus computes the displayed status of a record at the given instant.
func RecordStatus(record *CertificateRecord, now time.Time) string {
	if !now.Before(record.ValidTo) {
		return StatusExpired
	}
	if record.ValidTo.Sub(now) <= ExpiringSoonWindow {
		return StatusExpiringSoon
	}
	return StatusValid
}
