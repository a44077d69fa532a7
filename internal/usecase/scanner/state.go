package scanner

type State int

const (
	StateIdle State = iota
	StateCapturing
	StateDecoding
	StateVerifying
	StateRedirecting
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCapturing:
		return "capturing"
	case StateDecoding:
		return "decoding"
	case StateVerifying:
		return "verifying"
	case StateRedirecting:
		return "redirecting"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session is over. Only a new controller can scan again.
func (s State) Terminal() bool {
	return s == StateRedirecting || s == StateError
}

type NoticeKind string

const (
	// NoticeMalformed is raised when a live frame decoded to an unreadable payload.
	NoticeMalformed NoticeKind = "malformed"
)

// Notice is a transient message for the operator. It never ends the session.
type Notice struct {
	Kind    NoticeKind
	Message string
}
