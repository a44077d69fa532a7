package scan

type Status string

const (
	StatusAuthentic Status = "authentic"
	StatusExpired   Status = "expired"
	StatusNotFound  Status = "not_found"
	StatusMalformed Status = "malformed"
)

const ReasonNotInRegistry = "not in registry"

// Result is the outcome of one verification. The set of variants is closed.
type Result interface {
	Status() Status
	isResult()
}

type Authentic struct {
	Owner         string
	ProductName   string
	RegisteredAt  int64
	ExpiresAt     *int64
	DaysRemaining *int64
	IsFirstScan   bool
	TotalScans    int64
}

func (Authentic) Status() Status { return StatusAuthentic }
func (Authentic) isResult()      {}

// Band is nil for products that never expire.
func (a Authentic) Band() *Band {
	if a.DaysRemaining == nil {
		return nil
	}
	b := BandFor(*a.DaysRemaining)
	return &b
}

type Expired struct {
	ProductName string
	ExpiredAt   int64
	TotalScans  int64
}

func (Expired) Status() Status { return StatusExpired }
func (Expired) isResult()      {}

// NotFound is definitive unless Degraded is set, in which case the ledger
// could not be read in full and the reason carries the diagnostic.
type NotFound struct {
	Reason   string
	Degraded bool
}

func (NotFound) Status() Status { return StatusNotFound }
func (NotFound) isResult()      {}

type Malformed struct {
	Reason string
}

func (Malformed) Status() Status { return StatusMalformed }
func (Malformed) isResult()      {}

// Classify produces the result for a scan record observed at now.
func Classify(rec Record, created bool, now int64) Result {
	actual, expires := rec.ActualExpiration()
	if expires && now > actual && !created {
		return Expired{ProductName: rec.ProductName, ExpiredAt: actual, TotalScans: rec.TotalScans}
	}

	a := Authentic{
		Owner:        rec.Owner,
		ProductName:  rec.ProductName,
		RegisteredAt: rec.RegistrationTimestamp,
		IsFirstScan:  created,
		TotalScans:   rec.TotalScans,
	}
	if expires {
		days := DaysRemaining(actual, now)
		a.ExpiresAt = &actual
		a.DaysRemaining = &days
	}
	return a
}
