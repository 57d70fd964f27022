package life

// Command is a control-surface action.
type Command int

const (
	CmdSpeedUp Command = iota
	CmdSlowDown
	CmdTogglePause
	CmdReset
	CmdStep
)

var commandNames = map[Command]string{
	CmdSpeedUp:     "speed_up",
	CmdSlowDown:    "slow_down",
	CmdTogglePause: "toggle_pause",
	CmdReset:       "reset",
	CmdStep:        "step",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseCommand looks a command up by its String name.
func ParseCommand(s string) (Command, bool) {
	for c, name := range commandNames {
		if name == s {
			return c, true
		}
	}
	return 0, false
}
