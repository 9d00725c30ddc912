package camera

// Tracker remembers the context and camera ID seen on the previous
// invocation. One Tracker is constructed at plugin attach and handed to the
// engine; it is only ever touched from the host's camera-update thread, so
// it carries no locking.
type Tracker struct {
	context Context
	lastID  CameraID
}

func NewTracker() *Tracker {
	return &Tracker{
		context: ContextQuest,
		lastID:  IDNormal,
	}
}

// Update classifies id and returns the new effective context. An ID outside
// every set leaves the context sticky on whatever was tracked before; the
// ID itself is always recorded.
func (t *Tracker) Update(id CameraID) Context {
	if ctx, ok := contextByID[id]; ok {
		t.context = ctx
	}
	t.lastID = id
	return t.context
}

func (t *Tracker) Context() Context { return t.context }

func (t *Tracker) LastID() CameraID { return t.lastID }
