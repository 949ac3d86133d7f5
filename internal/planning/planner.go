// Package planning wires the impact scorer and the sprint synchronizer to a
// persisted backlog.
//
// The planning package provides [Planner], which plays the part of the
// prioritization board and the sprint planning view: it loads a backlog
// snapshot, runs the pure engines over it, and persists the result.
//
// Key concepts:
//   - Backlog access goes through [BacklogReader] and [BacklogWriter]
//   - Sprint membership edits go through sprintsync.Reconcile and are
//     persisted together with the sprint's new story list
//   - Summaries can be observed via [NotifyFunc]
//
// A Planner assumes it is the only writer of the backlog for the duration of
// a call. It does not lock the backlog file.
package planning

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"pmplan/internal/impact"
	"pmplan/internal/model"
)

// ErrSprintNotFound is returned when a membership edit names a sprint that is
// not in the backlog.
var ErrSprintNotFound = errors.New("sprint not found")

// ErrStoryNotFound is returned when a single-story lookup names an unknown story.
var ErrStoryNotFound = errors.New("story not found")

// BacklogReader loads the current backlog snapshot.
//
// The [store.Reader] type implements this interface.
type BacklogReader interface {
	Read() (*model.Backlog, error)
}

// BacklogWriter persists a backlog snapshot.
//
// The [store.Writer] type implements this interface.
type BacklogWriter interface {
	Write(backlog *model.Backlog) error
}

// NotifyFunc receives user-facing summary messages, such as
// "2 stories updated" or "3 stories assigned to team T1".
type NotifyFunc func(message string)

// Options configures scoring behaviour.
type Options struct {
	// UseGoals enables goal weighting. When false the scorer is built
	// without goals, deactivating goal weighting.
	UseGoals bool
}

// Planner runs prioritization and sprint planning against a backlog.
//
// Use [NewPlanner] to create an instance.
type Planner struct {
	reader  BacklogReader
	writer  BacklogWriter
	logger  *log.Logger
	opts    Options
	notify  NotifyFunc
	nowFunc func() time.Time
}

// NewPlanner creates a Planner with the required dependencies.
//
// A nil logger discards log output. Goal weighting is enabled by default.
func NewPlanner(reader BacklogReader, writer BacklogWriter, logger *log.Logger) *Planner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Planner{
		reader:  reader,
		writer:  writer,
		logger:  logger,
		opts:    Options{UseGoals: true},
		nowFunc: time.Now,
	}
}

// SetOptions replaces the scoring options.
func (p *Planner) SetOptions(opts Options) {
	p.opts = opts
}

// SetNotify configures an optional callback for summary messages.
func (p *Planner) SetNotify(fn NotifyFunc) {
	p.notify = fn
}

// SetClock overrides the time source used to stamp UpdatedAt.
func (p *Planner) SetClock(now func() time.Time) {
	p.nowFunc = now
}

func (p *Planner) load() (*model.Backlog, error) {
	backlog, err := p.reader.Read()
	if err != nil {
		return nil, err
	}
	return backlog, nil
}

// scorer builds an impact scorer for the backlog. When goal weighting is
// disabled it is given an empty goal collection.
func (p *Planner) scorer(backlog *model.Backlog) *impact.Scorer {
	goals := backlog.Goals
	if !p.opts.UseGoals {
		goals = nil
	}
	return impact.NewScorer(backlog.Needs, backlog.Contacts, goals)
}

func (p *Planner) emit(message string) {
	p.logger.Info(message)
	if p.notify != nil {
		p.notify(message)
	}
}

// wrapStory annotates err with a story ID.
func wrapStory(err error, id string) error {
	return fmt.Errorf("%w: %s", err, id)
}

// checkContext returns ctx.Err() if the context is already done.
func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
