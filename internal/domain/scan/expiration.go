package scan

const SecondsPerDay = 86400

// ExpiresSoonDays is the threshold for the expires_soon band.
const ExpiresSoonDays = 7

// ActualExpiration re-anchors the configured shelf life to the first scan.
// ok is false for products that never expire.
func (r Record) ActualExpiration() (int64, bool) {
	if r.OriginalExpirationTimestamp == nil {
		return 0, false
	}
	lifetime := *r.OriginalExpirationTimestamp - r.RegistrationTimestamp
	return r.FirstScanTimestamp + lifetime, true
}

// DaysRemaining is floor((expiresAt-now)/86400), rounding toward negative infinity.
func DaysRemaining(expiresAt, now int64) int64 {
	d := expiresAt - now
	q := d / SecondsPerDay
	if d%SecondsPerDay != 0 && d < 0 {
		q--
	}
	return q
}

type Band string

const (
	BandExpiredToday Band = "expired_today"
	BandExpiresSoon  Band = "expires_soon"
	BandOK           Band = "ok"
)

func BandFor(daysRemaining int64) Band {
	switch {
	case daysRemaining <= 0:
		return BandExpiredToday
	case daysRemaining <= ExpiresSoonDays:
		return BandExpiresSoon
	default:
		return BandOK
	}
}
