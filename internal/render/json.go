package render

import (
	"github.com/joshuapare/partsim/internal/session"
	"github.com/joshuapare/partsim/partition"
)

// OutcomeDoc is the JSON form of one outcome.
type OutcomeDoc struct {
	Line       int                  `json:"line,omitempty"`
	Command    string               `json:"command"`
	OK         bool                 `json:"ok"`
	Error      string               `json:"error,omitempty"`
	Message    string               `json:"message"`
	Placement  *partition.Placement `json:"placement,omitempty"`
	Release    *partition.Release   `json:"release,omitempty"`
	Partitions []partition.View     `json:"partitions,omitempty"`
	Total      *int                 `json:"total,omitempty"`
	Stats      *partition.Stats     `json:"stats,omitempty"`
}

// RunDoc is the JSON form of a whole script run.
type RunDoc struct {
	Source   string           `json:"source,omitempty"`
	Outcomes []OutcomeDoc     `json:"outcomes"`
	Summary  session.Summary  `json:"summary"`
	Final    []partition.View `json:"final"`
	Total    int              `json:"total_fragmentation"`
}

// OutcomeJSON converts o for encoding.
func OutcomeJSON(o session.Outcome) OutcomeDoc {
	doc := OutcomeDoc{
		Line:       o.Command.Line,
		Command:    o.Command.String(),
		OK:         o.OK(),
		Message:    Outcome(o),
		Placement:  o.Placement,
		Release:    o.Release,
		Partitions: o.Views,
		Total:      o.Total,
		Stats:      o.Stats,
	}
	if o.Err != nil {
		doc.Error = o.Err.Error()
	}
	return doc
}

// RunJSON builds the document for a finished run.
func RunJSON(source string, outcomes []session.Outcome, a partition.Interface) RunDoc {
	docs := make([]OutcomeDoc, len(outcomes))
	for i, o := range outcomes {
		docs[i] = OutcomeJSON(o)
	}
	return RunDoc{
		Source:   source,
		Outcomes: docs,
		Summary:  session.Summarize(outcomes),
		Final:    a.Snapshot(),
		Total:    a.TotalInternalFragmentation(),
	}
}
