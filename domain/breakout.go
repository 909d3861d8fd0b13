package domain

// Room amount bounds accepted by a breakout setup.
const (
	MinimumRoomAmount = 1
	MaximumRoomAmount = 20
)

// Mode is the assignment strategy chosen on a parent session.
type Mode int

const (
	ModeNotConfigured Mode = 0
	ModeAutomatic     Mode = 1
	ModeManual        Mode = 2
	ModeFree          Mode = 3
)

func (m Mode) String() string {
	switch m {
	case ModeNotConfigured:
		return "not_configured"
	case ModeAutomatic:
		return "automatic"
	case ModeManual:
		return "manual"
	case ModeFree:
		return "free"
	default:
		return "unknown"
	}
}

// IsAssignable reports whether the mode can be chosen by a setup.
func (m Mode) IsAssignable() bool {
	return m == ModeAutomatic || m == ModeManual || m == ModeFree
}

// IsValid reports whether the mode is any known value, including NOT_CONFIGURED.
func (m Mode) IsValid() bool {
	return m == ModeNotConfigured || m.IsAssignable()
}

// Status is meaningful on the parent session only.
type Status int

const (
	StatusStopped Status = 0
	StatusStarted Status = 1
)

func (s Status) String() string {
	if s == StatusStarted {
		return "started"
	}
	return "stopped"
}

// LobbyState is meaningful on each child session.
type LobbyState int

const (
	LobbyOpenToAll      LobbyState = 0
	LobbyModeratorsOnly LobbyState = 1
)

func (l LobbyState) String() string {
	if l == LobbyModeratorsOnly {
		return "moderators_only"
	}
	return "open_to_all"
}

// AssistanceStatus is the help signal a child session raises to moderators.
type AssistanceStatus int

const (
	AssistanceReset     AssistanceStatus = 0
	AssistanceRequested AssistanceStatus = 2
)

func (a AssistanceStatus) IsValid() bool {
	return a == AssistanceReset || a == AssistanceRequested
}

func (a AssistanceStatus) String() string {
	switch a {
	case AssistanceReset:
		return "reset"
	case AssistanceRequested:
		return "requested"
	default:
		return "unknown"
	}
}
