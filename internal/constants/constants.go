package constants

// Category sentinel: "all" means no filter is applied to the menu.
const (
	CategoryAll = "all"
)

// Order lifecycle.
const (
	OrderStatusReceived = "received"
	OrderStatusNotified = "notified"
)

// Session transport.
const (
	SessionTokenHeader = "X-Session-Token"
)

// Queue names and task types.
const (
	QueueDefault    = "default"
	TaskOrderPlaced = "order:placed"
)
