package model

// TabEventType is the kind of tab lifecycle event forwarded by the extension.
type TabEventType string

const (
	TabCreated TabEventType = "created"
	TabUpdated TabEventType = "updated"
	TabRemoved TabEventType = "removed"
)

// TabStatusComplete is the status the host reports once a page finished loading.
const TabStatusComplete = "complete"

// TabEvent mirrors the host's tab callbacks. TabID is nil when the host did not send one.
type TabEvent struct {
	Type       TabEventType
	TabID      *int64
	URL        string
	ChangeInfo TabChangeInfo
}

// TabChangeInfo carries the fields of an update that changed.
type TabChangeInfo struct {
	URL    string
	Status string
}
