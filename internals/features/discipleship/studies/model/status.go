package model

import (
	"fmt"

	helper "disciplehub_backend/internals/helpers"
)

// Statuses are closed enumerations with explicit transition tables.
// Writes outside the table are rejected, never stored.

type StudyStatus string

const (
	StudyStatusInProgress StudyStatus = "in-progress"
	StudyStatusCompleted  StudyStatus = "completed"
	StudyStatusDropped    StudyStatus = "dropped"
)

var studyTransitions = map[StudyStatus][]StudyStatus{
	StudyStatusInProgress: {StudyStatusCompleted, StudyStatusDropped},
	StudyStatusDropped:    {StudyStatusInProgress},
	StudyStatusCompleted:  {},
}

func ParseStudyStatus(s string) (StudyStatus, error) {
	switch StudyStatus(s) {
	case StudyStatusInProgress, StudyStatusCompleted, StudyStatusDropped:
		return StudyStatus(s), nil
	}
	return "", helper.NewValidationErr("status", fmt.Sprintf("unknown study status %q", s))
}

// CanTransitionTo consults the transition table.
func (s StudyStatus) CanTransitionTo(next StudyStatus) bool {
	for _, allowed := range studyTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type LessonStatus string

const (
	LessonStatusNotStarted LessonStatus = "not-started"
	LessonStatusInProgress LessonStatus = "in-progress"
	LessonStatusCompleted  LessonStatus = "completed"
)

var lessonTransitions = map[LessonStatus][]LessonStatus{
	LessonStatusNotStarted: {LessonStatusInProgress, LessonStatusCompleted},
	LessonStatusInProgress: {LessonStatusCompleted, LessonStatusNotStarted},
	LessonStatusCompleted:  {},
}

func ParseLessonStatus(s string) (LessonStatus, error) {
	switch LessonStatus(s) {
	case LessonStatusNotStarted, LessonStatusInProgress, LessonStatusCompleted:
		return LessonStatus(s), nil
	}
	return "", helper.NewValidationErr("status", fmt.Sprintf("unknown lesson status %q", s))
}

func (s LessonStatus) CanTransitionTo(next LessonStatus) bool {
	for _, allowed := range lessonTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
