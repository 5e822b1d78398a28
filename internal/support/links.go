package support

// MessageLinkIndex maps managers-channel message ids to the ticket
// they belong to, so a manager reply can be routed back to the owner.
// Entries are removed en masse when the ticket closes.
type MessageLinkIndex struct {
	byMessage map[int]int
}

func NewMessageLinkIndex() *MessageLinkIndex {
	return &MessageLinkIndex{byMessage: make(map[int]int)}
}

func (idx *MessageLinkIndex) Link(messageID, ticketID int) {
	idx.byMessage[messageID] = ticketID
}

// Resolve returns the ticket id a message belongs to, if linked.
func (idx *MessageLinkIndex) Resolve(messageID int) (int, bool) {
	id, ok := idx.byMessage[messageID]
	return id, ok
}

// UnlinkAll removes every listed message id. Missing entries are
// ignored.
func (idx *MessageLinkIndex) UnlinkAll(messageIDs []int) {
	for _, id := range messageIDs {
		delete(idx.byMessage, id)
	}
}
