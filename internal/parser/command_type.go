package parser

// CommandType enumerates the sequencer commands.
type CommandType int

const (
	// Unknown is any name that is not a sequencer command.
	Unknown CommandType = iota
	Insert
	Remove
	Print
	Clip
	Copy
	Swap
	Transcribe
)

// ParseCommandType maps an uppercased command name to its type.
func ParseCommandType(name string) CommandType {
	switch name {
	case "INSERT":
		return Insert
	case "REMOVE":
		return Remove
	case "PRINT":
		return Print
	case "CLIP":
		return Clip
	case "COPY":
		return Copy
	case "SWAP":
		return Swap
	case "TRANSCRIBE":
		return Transcribe
	default:
		return Unknown
	}
}

func (t CommandType) String() string {
	switch t {
	case Insert:
		return "INSERT"
	case Remove:
		return "REMOVE"
	case Print:
		return "PRINT"
	case Clip:
		return "CLIP"
	case Copy:
		return "COPY"
	case Swap:
		return "SWAP"
	case Transcribe:
		return "TRANSCRIBE"
	default:
		return "UNKNOWN"
	}
}
