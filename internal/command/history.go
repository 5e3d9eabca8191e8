package command

import "log/slog"

// History is a linear undo/redo timeline. Submitting a new command discards
// everything that could have been redone. A command is on at most one
// stack at a time.
//
// History is not safe for concurrent use, and a command must not submit
// another command from inside Execute or Undo; such nested submissions are
// dropped.
type History struct {
	undo    []Command
	redo    []Command
	running bool
	logger  *slog.Logger
}

// NewHistory creates an empty history
func NewHistory(logger *slog.Logger) *History {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &History{logger: logger}
}

// Submit executes cmd, pushes it onto the undo stack and clears the redo
// stack. It reports false if cmd was dropped.
func (h *History) Submit(cmd Command) bool {
	if cmd == nil {
		return false
	}
	if h.running {
		h.logger.Warn("nested command submission ignored", "command", cmd.Describe())
		return false
	}

	h.run(cmd.Execute)
	h.undo = append(h.undo, cmd)
	clear(h.redo)
	h.redo = h.redo[:0]

	h.logger.Debug("command submitted", "command", cmd.Describe(), "undo_depth", len(h.undo))
	return true
}

// Undo reverses the most recent command. It reports false when there is
// nothing to undo.
func (h *History) Undo() bool {
	if h.running || len(h.undo) == 0 {
		return false
	}

	cmd := pop(&h.undo)
	h.run(cmd.Undo)
	h.redo = append(h.redo, cmd)

	h.logger.Debug("command undone", "command", cmd.Describe(), "redo_depth", len(h.redo))
	return true
}

// Redo re-executes the most recently undone command. It reports false when
// there is nothing to redo.
func (h *History) Redo() bool {
	if h.running || len(h.redo) == 0 {
		return false
	}

	cmd := pop(&h.redo)
	h.run(cmd.Execute)
	h.undo = append(h.undo, cmd)

	h.logger.Debug("command redone", "command", cmd.Describe(), "undo_depth", len(h.undo))
	return true
}

// PeekUndo returns the command Undo would reverse, or nil.
func (h *History) PeekUndo() Command { return peek(h.undo) }

// PeekRedo returns the command Redo would re-execute, or nil.
func (h *History) PeekRedo() Command { return peek(h.redo) }

func (h *History) CanUndo() bool  { return len(h.undo) > 0 }
func (h *History) CanRedo() bool  { return len(h.redo) > 0 }
func (h *History) UndoDepth() int { return len(h.undo) }
func (h *History) RedoDepth() int { return len(h.redo) }

// Reset drops both stacks.
func (h *History) Reset() {
	h.undo = nil
	h.redo = nil
	h.logger.Debug("history reset")
}

func (h *History) run(fn func()) {
	h.running = true
	defer func() { h.running = false }()
	fn()
}

func pop(stack *[]Command) Command {
	s := *stack
	cmd := s[len(s)-1]
	s[len(s)-1] = nil
	*stack = s[:len(s)-1]
	return cmd
}

func peek(stack []Command) Command {
	if len(stack) == 0 {
		return nil
	}
	return stack[len(stack)-1]
}
