package domain

// BroadcastAction names a fire-and-forget notification sent to other open
// contexts after a write. Delivery is best-effort: a context that is not
// listening simply misses the event and re-reads storage next time it wakes.
type BroadcastAction string

const (
	BroadcastCategoriesUpdated  BroadcastAction = "categoriesUpdated"
	BroadcastConnectionsUpdated BroadcastAction = "connectionsUpdated"
	BroadcastDataImported       BroadcastAction = "dataImported"
)

// Broadcast is the event fanned out to subscribed contexts.
type Broadcast struct {
	Action    BroadcastAction `json:"action"`
	Timestamp int64           `json:"timestamp"`
}
