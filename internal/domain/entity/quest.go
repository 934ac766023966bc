package entity

import "time"

// QuestStatus represents the lifecycle state of a quest. The set is closed.
type QuestStatus string

const (
	QuestStatusOpen       QuestStatus = "Open"
	QuestStatusInProgress QuestStatus = "InProgress"
	QuestStatusCompleted  QuestStatus = "Completed"
	QuestStatusCancelled  QuestStatus = "Cancelled"
)

// String returns the string representation of the QuestStatus.
func (s QuestStatus) String() string {
	return string(s)
}

// IsValid checks if the QuestStatus is a valid value.
func (s QuestStatus) IsValid() bool {
	switch s {
	case QuestStatusOpen, QuestStatusInProgress, QuestStatusCompleted, QuestStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status admits no further status changes.
func (s QuestStatus) IsTerminal() bool {
	return s == QuestStatusCompleted || s == QuestStatusCancelled
}

// order gives the forward progression rank. Cancelled sits outside the
// forward chain and is handled separately in CanTransitionTo.
func (s QuestStatus) order() int {
	switch s {
	case QuestStatusOpen:
		return 0
	case QuestStatusInProgress:
		return 1
	case QuestStatusCompleted:
		return 2
	default:
		return -1
	}
}

// CanTransitionTo reports whether a quest may move from s to next.
// Transitions run forward through Open -> InProgress -> Completed (skipping
// is allowed), Cancelled is reachable from any non-terminal state, and
// terminal states admit no change. Re-asserting the current status is a
// no-op and allowed, so idempotent patch retries do not fail.
func (s QuestStatus) CanTransitionTo(next QuestStatus) bool {
	if !next.IsValid() {
		return false
	}
	if next == s {
		return !s.IsTerminal()
	}
	if s.IsTerminal() {
		return false
	}
	if next == QuestStatusCancelled {
		return true
	}

	return next.order() > s.order()
}

// Quest is an aggregate owned by exactly one guild commander.
type Quest struct {
	ID               int32
	Name             string
	Description      *string
	Status           QuestStatus
	GuildCommanderID int32 // Owning commander; required and immutable.
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// OwnedBy reports whether the quest belongs to the given commander.
func (q *Quest) OwnedBy(commanderID int32) bool {
	return q.GuildCommanderID == commanderID
}

// QuestDraft carries the fields needed to persist a new quest. Status is not
// part of the draft: new quests always start Open.
type QuestDraft struct {
	Name             string
	Description      *string
	GuildCommanderID int32
}

// QuestPatch is a partial update. Only non-nil fields change; updated_at is
// always refreshed by the repository.
type QuestPatch struct {
	Name        *string
	Description *string
	Status      *QuestStatus
}

// IsEmpty reports whether the patch changes nothing.
func (p *QuestPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Status == nil
}

// QuestFilter narrows quest listings. Nil fields match everything.
type QuestFilter struct {
	Name   *string // Case-insensitive substring match on the quest name.
	Status *QuestStatus
}
