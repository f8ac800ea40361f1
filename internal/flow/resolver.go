// Package flow resolves a technique's flow-chart connections: the
// techniques that lead into it and the ones that follow from it.
package flow

import (
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/curriculum"
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/progress"
)

// Connections holds a technique's resolved prerequisite (parents) and
// follow-up (children) edges.
type Connections struct {
	Parents  []string
	Children []string
}

// Resolve returns the connections for a technique as seen by one
// learner. A learner override replaces the curriculum default
// wholesale — an override with empty edge lists means the learner
// disconnected the technique, not "fall back". Unknown technique IDs
// resolve to empty edge lists.
func Resolve(techniqueID string, profile *progress.StudentProfile) Connections {
	if profile != nil && profile.CustomConnections != nil {
		if o := profile.CustomConnections[techniqueID]; o != nil {
			return Connections{
				Parents:  orEmpty(o.Parents),
				Children: orEmpty(o.Children),
			}
		}
	}
	parents, children := curriculum.DefaultConnections(techniqueID)
	return Connections{Parents: parents, Children: children}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
