// Package model defines the backlog entities shared by the prioritization and
// sprint synchronization engines.
//
// The entities are owned by external collaborators (the planning surfaces that
// create and delete them). The engines only read them, and the sprint
// synchronizer only ever rewrites Status, SprintID, TeamID and UpdatedAt on
// existing stories.
//
// Reference fields (SprintID, TeamID, LinkedNeedID, LinkedGoalID, ContactID)
// use the empty string for "no reference".
//
// Key types:
//   - [Story] - a backlog work item with MoSCoW priority and lifecycle status
//   - [Sprint] - a time-boxed container referencing a set of story IDs
//   - [Need], [Goal], [Contact] - read-only lookups used for impact scoring
//   - [Backlog] - the aggregate persisted by the store package
package model

import "time"

// Priority is a story's MoSCoW priority.
type Priority string

// Priority values.
const (
	PriorityMust   Priority = "must"
	PriorityShould Priority = "should"
	PriorityCould  Priority = "could"
	PriorityWont   Priority = "wont"
)

// IsValid reports whether p is one of the four MoSCoW values.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityMust, PriorityShould, PriorityCould, PriorityWont:
		return true
	}
	return false
}

// Status is a story's lifecycle status as tracked by sprint planning.
type Status string

// Status values. An empty Status is treated as [StatusUnassigned].
const (
	StatusUnassigned Status = "unassigned"
	StatusPlanned    Status = "planned"
	StatusInProgress Status = "inProgress"
	StatusDone       Status = "done"
)

// IsValid reports whether s is a recognized lifecycle status.
func (s Status) IsValid() bool {
	switch s {
	case StatusUnassigned, StatusPlanned, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// BoardStatus is the three-column status used by the board "status" sort.
//
// It is deliberately a separate type from [Status]: the board ordering only
// knows todo, inProgress and done, while sprint planning tracks four states.
// The two are not converted into each other.
type BoardStatus string

// BoardStatus values.
const (
	BoardTodo       BoardStatus = "todo"
	BoardInProgress BoardStatus = "inProgress"
	BoardDone       BoardStatus = "done"
)

// IsValid reports whether b is one of the three board columns.
func (b BoardStatus) IsValid() bool {
	switch b {
	case BoardTodo, BoardInProgress, BoardDone:
		return true
	}
	return false
}

// Level is the four-step scale used for need importance and goal priority.
type Level string

// Level values.
const (
	LevelCritical Level = "critical"
	LevelHigh     Level = "high"
	LevelMedium   Level = "medium"
	LevelLow      Level = "low"
)

// IsValid reports whether l is a recognized level.
func (l Level) IsValid() bool {
	switch l {
	case LevelCritical, LevelHigh, LevelMedium, LevelLow:
		return true
	}
	return false
}

// ContactType distinguishes internal stakeholders from external clients.
type ContactType string

// ContactType values.
const (
	ContactInternal ContactType = "internal"
	ContactExternal ContactType = "external"
)

// IsValid reports whether c is internal or external.
func (c ContactType) IsValid() bool {
	return c == ContactInternal || c == ContactExternal
}

// Story is a backlog work item.
type Story struct {
	ID           string    `yaml:"id" json:"id"`
	Title        string    `yaml:"title,omitempty" json:"title,omitempty"`
	Priority     Priority  `yaml:"priority,omitempty" json:"priority,omitempty"`
	Status       Status    `yaml:"status,omitempty" json:"status,omitempty"`
	SprintID     string    `yaml:"sprint_id,omitempty" json:"sprintId,omitempty"`
	TeamID       string    `yaml:"team_id,omitempty" json:"teamId,omitempty"`
	LinkedNeedID string    `yaml:"linked_need_id,omitempty" json:"linkedNeedId,omitempty"`
	LinkedGoalID string    `yaml:"linked_goal_id,omitempty" json:"linkedGoalId,omitempty"`
	Stakeholders []string  `yaml:"stakeholders,omitempty" json:"stakeholders,omitempty"`
	CreatedAt    time.Time `yaml:"created_at,omitempty" json:"createdAt"`
	UpdatedAt    time.Time `yaml:"updated_at,omitempty" json:"updatedAt"`
}

// Clone returns a copy of s that shares no mutable state with it.
func (s *Story) Clone() *Story {
	c := *s
	if s.Stakeholders != nil {
		c.Stakeholders = append([]string(nil), s.Stakeholders...)
	}
	return &c
}

// Sprint is a time-boxed container of stories. StoryIDs is a set; order is
// not significant.
type Sprint struct {
	ID       string   `yaml:"id" json:"id"`
	Name     string   `yaml:"name,omitempty" json:"name,omitempty"`
	StoryIDs []string `yaml:"story_ids,omitempty" json:"storyIds,omitempty"`
	TeamID   string   `yaml:"team_id,omitempty" json:"teamId,omitempty"`
}

// HasStory reports whether id is a member of the sprint.
func (s *Sprint) HasStory(id string) bool {
	for _, sid := range s.StoryIDs {
		if sid == id {
			return true
		}
	}
	return false
}

// Need is a stakeholder-reported requirement.
type Need struct {
	ID         string `yaml:"id" json:"id"`
	Title      string `yaml:"title,omitempty" json:"title,omitempty"`
	Importance Level  `yaml:"importance,omitempty" json:"importance,omitempty"`
	ContactID  string `yaml:"contact_id,omitempty" json:"contactId,omitempty"`
}

// Goal is a product objective.
type Goal struct {
	ID       string `yaml:"id" json:"id"`
	Title    string `yaml:"title,omitempty" json:"title,omitempty"`
	Priority Level  `yaml:"priority,omitempty" json:"priority,omitempty"`
}

// Contact is a person a need can be traced to.
type Contact struct {
	ID   string      `yaml:"id" json:"id"`
	Name string      `yaml:"name,omitempty" json:"name,omitempty"`
	Type ContactType `yaml:"type,omitempty" json:"type,omitempty"`
}

// Backlog is the full set of planning collections for one product.
type Backlog struct {
	Stories  []*Story  `yaml:"stories"`
	Sprints  []*Sprint `yaml:"sprints,omitempty"`
	Needs    []Need    `yaml:"needs,omitempty"`
	Goals    []Goal    `yaml:"goals,omitempty"`
	Contacts []Contact `yaml:"contacts,omitempty"`
}

// FindSprint returns the sprint with the given ID, or nil if there is none.
func (b *Backlog) FindSprint(id string) *Sprint {
	for _, s := range b.Sprints {
		if s != nil && s.ID == id {
			return s
		}
	}
	return nil
}

// FindStory returns the story with the given ID, or nil if there is none.
func (b *Backlog) FindStory(id string) *Story {
	for _, s := range b.Stories {
		if s != nil && s.ID == id {
			return s
		}
	}
	return nil
}
