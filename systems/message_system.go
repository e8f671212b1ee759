package systems

// MessageLog stores game messages
type MessageLog struct {
	Messages    []ColoredMessage
	MaxMessages int
}

// Global message log instance (singleton)
var globalMessageLog *MessageLog

// GetMessageLog returns the global message log instance
func GetMessageLog() *MessageLog {
	if globalMessageLog == nil {
		globalMessageLog = NewMessageLog()
	}
	return globalMessageLog
}

// NewMessageLog creates a new message log
func NewMessageLog() *MessageLog {
	return &MessageLog{
		Messages:    []ColoredMessage{},
		MaxMessages: 100, // Store the last 100 messages
	}
}

// Add adds a normal message to the log
func (ml *MessageLog) Add(message string) {
	ml.AddTyped(message, MessageTypeNormal)
}

// AddEnvironment adds a descriptive message about the catacombs
func (ml *MessageLog) AddEnvironment(message string) {
	ml.AddTyped(message, MessageTypeEnvironment)
}

// AddAlert adds an important message
func (ml *MessageLog) AddAlert(message string) {
	ml.AddTyped(message, MessageTypeAlert)
}

// AddError adds an error message
func (ml *MessageLog) AddError(message string) {
	ml.AddTyped(message, MessageTypeError)
}

// AddTyped adds a message with an explicit type
func (ml *MessageLog) AddTyped(message string, messageType MessageType) {
	ml.Messages = append(ml.Messages, ColoredMessage{Text: message, Type: messageType})

	// Truncate if we have too many messages
	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []ColoredMessage {
	if n > len(ml.Messages) {
		n = len(ml.Messages)
	}

	result := make([]ColoredMessage, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}

	return result
}

// Contains reports whether any message of the given type has exactly this text
func (ml *MessageLog) Contains(text string, messageType MessageType) bool {
	for _, m := range ml.Messages {
		if m.Text == text && m.Type == messageType {
			return true
		}
	}
	return false
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.Messages = []ColoredMessage{}
}
