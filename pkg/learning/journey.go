package learning

import (
	"errors"
	"fmt"

	"github.com/lintang-b-s/ir-lab/pkg/datastructure"
)

var (
	ErrLocked      = errors.New("learning node is locked")
	ErrUnknownNode = errors.New("unknown learning node")
)

// Journey is the prerequisite DAG of the course. Cycles are not detected; a
// node on a cycle simply never unlocks.
type Journey struct {
	nodes []datastructure.LearningNode
	byID  map[string]int
}

func NewJourney(nodes []datastructure.LearningNode) (*Journey, error) {
	byID := make(map[string]int, len(nodes))
	for i, node := range nodes {
		if node.ID == "" {
			return nil, fmt.Errorf("learning node %d has an empty id", i)
		}
		if _, ok := byID[node.ID]; ok {
			return nil, fmt.Errorf("duplicate learning node %q", node.ID)
		}
		byID[node.ID] = i
	}
	return &Journey{nodes: nodes, byID: byID}, nil
}

func (j *Journey) Nodes() []datastructure.LearningNode {
	out := make([]datastructure.LearningNode, len(j.nodes))
	copy(out, j.nodes)
	return out
}

func (j *Journey) Node(id string) (datastructure.LearningNode, bool) {
	i, ok := j.byID[id]
	if !ok {
		return datastructure.LearningNode{}, false
	}
	return j.nodes[i], true
}

// CompletedSet turns the stored list of completed ids into a set.
func CompletedSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// IsUnlocked reports whether every prerequisite of id is completed. Unknown ids
// are never unlocked.
func (j *Journey) IsUnlocked(id string, completed map[string]struct{}) bool {
	node, ok := j.Node(id)
	if !ok {
		return false
	}
	for _, prereq := range node.Prerequisites {
		if _, done := completed[prereq]; !done {
			return false
		}
	}
	return true
}

// Unlocked returns the unlocked nodes in journey order.
func (j *Journey) Unlocked(completed map[string]struct{}) []datastructure.LearningNode {
	unlocked := []datastructure.LearningNode{}
	for _, node := range j.nodes {
		if j.IsUnlocked(node.ID, completed) {
			unlocked = append(unlocked, node)
		}
	}
	return unlocked
}

// NodeStatus model info
// @Description a learning node with its completion and lock state for one learner.
type NodeStatus struct {
	Node      datastructure.LearningNode `json:"node"`
	Completed bool                       `json:"completed"`
	Unlocked  bool                       `json:"unlocked"`
}

func (j *Journey) Status(completed map[string]struct{}) []NodeStatus {
	statuses := make([]NodeStatus, 0, len(j.nodes))
	for _, node := range j.nodes {
		_, done := completed[node.ID]
		statuses = append(statuses, NodeStatus{
			Node:      node,
			Completed: done,
			Unlocked:  j.IsUnlocked(node.ID, completed),
		})
	}
	return statuses
}

// UnitProgress model info
// @Description how many nodes of a unit are completed.
type UnitProgress struct {
	Unit      string  `json:"unit"`
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Percent   float64 `json:"percent"`
}

// UnitProgress returns one entry per unit, in order of first appearance.
func (j *Journey) UnitProgress(completed map[string]struct{}) []UnitProgress {
	units := []UnitProgress{}
	pos := make(map[string]int)
	for _, node := range j.nodes {
		i, ok := pos[node.Unit]
		if !ok {
			i = len(units)
			pos[node.Unit] = i
			units = append(units, UnitProgress{Unit: node.Unit})
		}
		units[i].Total++
		if _, done := completed[node.ID]; done {
			units[i].Completed++
		}
	}
	for i := range units {
		units[i].Percent = 100 * float64(units[i].Completed) / float64(units[i].Total)
	}
	return units
}

// Complete returns completed with id added. Locked nodes are refused with
// ErrLocked; completing a node twice is a no-op.
func (j *Journey) Complete(id string, completed []string) ([]string, error) {
	if _, ok := j.Node(id); !ok {
		return completed, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}
	set := CompletedSet(completed)
	if _, done := set[id]; done {
		return completed, nil
	}
	if !j.IsUnlocked(id, set) {
		return completed, fmt.Errorf("%w: %q", ErrLocked, id)
	}
	out := make([]string, 0, len(completed)+1)
	out = append(out, completed...)
	return append(out, id), nil
}
