package puzzle

// NotificationKind classifies user-facing messages raised by the controller.
type NotificationKind int

const (
	NotifyMismatch NotificationKind = iota
)

// MismatchMessage is shown when a match check fails.
const MismatchMessage = "Not quite right. Try again!"

// Notification is a message the shell must present to the player.
type Notification struct {
	Kind    NotificationKind
	Message string
}

// Notifier presents notifications. Implementations may block until the
// player dismisses the message.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }
