package sprintsync

import "pmplan/internal/model"

// addedTransitions maps the status of a story joining a sprint to its new
// status. Statuses not listed are left unchanged so that joining a sprint
// never overrides a story that is already being worked on.
var addedTransitions = map[model.Status]model.Status{
	"":                     model.StatusPlanned,
	model.StatusUnassigned: model.StatusPlanned,
}

// onAdded returns the status a story moves to when it joins a sprint, and
// whether it moves at all.
func onAdded(s model.Status) (model.Status, bool) {
	next, ok := addedTransitions[s]
	return next, ok
}

// onRemoved returns the status a story moves to when it leaves a sprint, and
// whether it moves at all. Done is terminal.
func onRemoved(s model.Status) (model.Status, bool) {
	if s == model.StatusDone {
		return "", false
	}
	return model.StatusUnassigned, true
}
