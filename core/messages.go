package core

import "log"

var (
	EmptyMessage          = ""
	OpenedFileMessage     = "Opened a file"
	OpenedUntitledMessage = "Opened untitled file"
	FileWrittenMessage    = "File written successfully"
	ExitingMessage        = "exiting minivi"
	LineYankedMessage     = "line yanked"
	PastedMessage         = "clipboard pasted"
)

func (s *Session) DispatchMessage(message string) {
	select {
	case s.updateSignal <- MessageSignal{message}:
	default:
		log.Println("Channel is full, unable to send message signal")
	}
}
