package notify

// Notifier displays short messages to the user.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: display is best-effort; methods must not panic.
type Notifier interface {
	// Info shows an informational message.
	Info(msg string)

	// Warn shows a warning message.
	Warn(msg string)
}

// Logger is the subset of logging needed by the Log notifier.
type Logger interface {
	Logf(format string, args ...any)
}

type logNotifier struct {
	logger Logger
}

func (n logNotifier) Info(msg string) { n.logger.Logf("info: %s", msg) }
func (n logNotifier) Warn(msg string) { n.logger.Logf("warn: %s", msg) }

// Log returns a Notifier that writes messages through the given logger.
func Log(l Logger) Notifier {
	return logNotifier{logger: l}
}

type discard struct{}

func (discard) Info(string) {}
func (discard) Warn(string) {}

// Discard is a Notifier that drops all messages.
var Discard Notifier = discard{}
