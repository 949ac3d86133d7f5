package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnums_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
		got   bool
	}{
		{name: "priority must", valid: true, got: PriorityMust.IsValid()},
		{name: "priority wont", valid: true, got: PriorityWont.IsValid()},
		{name: "priority empty", valid: false, got: Priority("").IsValid()},
		{name: "priority unknown", valid: false, got: Priority("urgent").IsValid()},
		{name: "status planned", valid: true, got: StatusPlanned.IsValid()},
		{name: "status board column", valid: false, got: Status("todo").IsValid()},
		{name: "board todo", valid: true, got: BoardTodo.IsValid()},
		{name: "board lifecycle status", valid: false, got: BoardStatus("planned").IsValid()},
		{name: "level low", valid: true, got: LevelLow.IsValid()},
		{name: "level unknown", valid: false, got: Level("extreme").IsValid()},
		{name: "contact external", valid: true, got: ContactExternal.IsValid()},
		{name: "contact unknown", valid: false, got: ContactType("partner").IsValid()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.got)
		})
	}
}

func TestStory_Clone(t *testing.T) {
	orig := &Story{
		ID:           "S-1",
		Status:       StatusPlanned,
		Stakeholders: []string{"alice"},
		UpdatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	c := orig.Clone()
	require.NotSame(t, orig, c)
	assert.Equal(t, orig, c)

	c.Stakeholders[0] = "mallory"
	c.Status = StatusDone
	assert.Equal(t, "alice", orig.Stakeholders[0])
	assert.Equal(t, StatusPlanned, orig.Status)

	assert.Nil(t, (&Story{ID: "S-2"}).Clone().Stakeholders)
}

func TestSprint_HasStory(t *testing.T) {
	sp := &Sprint{ID: "SP-1", StoryIDs: []string{"S-1", "S-2"}}
	assert.True(t, sp.HasStory("S-2"))
	assert.False(t, sp.HasStory("S-3"))
	assert.False(t, (&Sprint{}).HasStory(""))
}

func TestBacklog_Find(t *testing.T) {
	b := &Backlog{
		Stories: []*Story{nil, {ID: "S-1"}, {ID: "S-1", Title: "dup"}},
		Sprints: []*Sprint{{ID: "SP-1"}, nil},
	}

	s := b.FindStory("S-1")
	require.NotNil(t, s)
	assert.Empty(t, s.Title, "first match wins")
	assert.Nil(t, b.FindStory("S-9"))

	assert.NotNil(t, b.FindSprint("SP-1"))
	assert.Nil(t, b.FindSprint("SP-9"))
}
