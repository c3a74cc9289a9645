package diagram

import "explainer/geom"

type ActionType int

const (
	ActionMoveNode ActionType = iota
	ActionSetPosition
)

type Action struct {
	Type    ActionType
	Data    interface{}
	Inverse interface{}
}

type MoveNodeData struct {
	ID     string
	DeltaX float64
	DeltaY float64
}

type OriginalNodeState struct {
	ID       string
	Position geom.Point
}

// History is an undo/redo stack of node edits.
type History struct {
	undoStack []Action
	redoStack []Action
}

func (h *History) Record(actionType ActionType, data, inverse interface{}) {
	h.undoStack = append(h.undoStack, Action{Type: actionType, Data: data, Inverse: inverse})
	h.redoStack = h.redoStack[:0]
}

// RecordMove moves a node and remembers how to put it back.
func (h *History) RecordMove(d *Diagram, id string, dx, dy float64) error {
	n, err := d.mustNode(id)
	if err != nil {
		return err
	}
	original := OriginalNodeState{ID: id, Position: n.Local}
	if err := d.MoveNode(id, dx, dy); err != nil {
		return err
	}
	h.Record(ActionMoveNode, MoveNodeData{ID: id, DeltaX: dx, DeltaY: dy}, original)
	return nil
}

func (h *History) CanUndo() bool { return len(h.undoStack) > 0 }
func (h *History) CanRedo() bool { return len(h.redoStack) > 0 }

func (h *History) Undo(d *Diagram) error {
	if len(h.undoStack) == 0 {
		return nil
	}
	lastIndex := len(h.undoStack) - 1
	action := h.undoStack[lastIndex]
	h.undoStack = h.undoStack[:lastIndex]

	switch action.Type {
	case ActionMoveNode, ActionSetPosition:
		data := action.Inverse.(OriginalNodeState)
		if err := d.SetPosition(data.ID, data.Position); err != nil {
			return err
		}
	}

	h.redoStack = append(h.redoStack, action)
	return nil
}

func (h *History) Redo(d *Diagram) error {
	if len(h.redoStack) == 0 {
		return nil
	}
	lastIndex := len(h.redoStack) - 1
	action := h.redoStack[lastIndex]
	h.redoStack = h.redoStack[:lastIndex]

	switch action.Type {
	case ActionMoveNode:
		data := action.Data.(MoveNodeData)
		if err := d.MoveNode(data.ID, data.DeltaX, data.DeltaY); err != nil {
			return err
		}
	case ActionSetPosition:
		data := action.Data.(OriginalNodeState)
		if err := d.SetPosition(data.ID, data.Position); err != nil {
			return err
		}
	}

	h.undoStack = append(h.undoStack, action)
	return nil
}

// RecordSetPosition places a node at p and remembers where it was.
func (h *History) RecordSetPosition(d *Diagram, id string, p geom.Point) error {
	n, err := d.mustNode(id)
	if err != nil {
		return err
	}
	original := OriginalNodeState{ID: id, Position: n.Local}
	if err := d.SetPosition(id, p); err != nil {
		return err
	}
	h.Record(ActionSetPosition, OriginalNodeState{ID: id, Position: p}, original)
	return nil
}
