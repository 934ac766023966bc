package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestStatus_IsValid(t *testing.T) {
	for _, s := range []QuestStatus{QuestStatusOpen, QuestStatusInProgress, QuestStatusCompleted, QuestStatusCancelled} {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, QuestStatus("Paused").IsValid())
	assert.False(t, QuestStatus("").IsValid())
}

func TestQuestStatus_CanTransitionTo_Forward(t *testing.T) {
	assert.True(t, QuestStatusOpen.CanTransitionTo(QuestStatusInProgress))
	assert.True(t, QuestStatusOpen.CanTransitionTo(QuestStatusCompleted)) // skipping is allowed
	assert.True(t, QuestStatusInProgress.CanTransitionTo(QuestStatusCompleted))

	assert.False(t, QuestStatusInProgress.CanTransitionTo(QuestStatusOpen))
	assert.False(t, QuestStatusCompleted.CanTransitionTo(QuestStatusInProgress))
}

func TestQuestStatus_CanTransitionTo_Cancel(t *testing.T) {
	assert.True(t, QuestStatusOpen.CanTransitionTo(QuestStatusCancelled))
	assert.True(t, QuestStatusInProgress.CanTransitionTo(QuestStatusCancelled))

	// Terminal states are frozen, including Cancelled -> Cancelled.
	assert.False(t, QuestStatusCompleted.CanTransitionTo(QuestStatusCancelled))
	assert.False(t, QuestStatusCancelled.CanTransitionTo(QuestStatusCancelled))
	assert.False(t, QuestStatusCancelled.CanTransitionTo(QuestStatusOpen))
	assert.False(t, QuestStatusCompleted.CanTransitionTo(QuestStatusOpen))
}

func TestQuestStatus_CanTransitionTo_NoOp(t *testing.T) {
	assert.True(t, QuestStatusOpen.CanTransitionTo(QuestStatusOpen))
	assert.True(t, QuestStatusInProgress.CanTransitionTo(QuestStatusInProgress))
	assert.False(t, QuestStatusCompleted.CanTransitionTo(QuestStatusCompleted))
}

func TestQuestStatus_CanTransitionTo_InvalidTarget(t *testing.T) {
	assert.False(t, QuestStatusOpen.CanTransitionTo(QuestStatus("Paused")))
}

func TestQuest_OwnedBy(t *testing.T) {
	q := &Quest{ID: 1, GuildCommanderID: 7}
	assert.True(t, q.OwnedBy(7))
	assert.False(t, q.OwnedBy(8))
}

func TestQuestPatch_IsEmpty(t *testing.T) {
	assert.True(t, (&QuestPatch{}).IsEmpty())

	name := "Slay dragon"
	assert.False(t, (&QuestPatch{Name: &name}).IsEmpty())
}

func TestPrincipalKind_IsValid(t *testing.T) {
	assert.True(t, KindGuildCommander.IsValid())
	assert.True(t, KindAdventurer.IsValid())
	assert.False(t, PrincipalKind("wizard").IsValid())
}
