// Package command implements reversible catalog mutations and the
// undo/redo history that drives them.
package command

import (
	"fmt"

	"github.com/rpggio/artvault/internal/domain/art"
	"github.com/rpggio/artvault/internal/repository"
)

// Command is one reversible repository mutation. Execute while already
// executed and Undo while not executed are no-ops.
type Command interface {
	Execute()
	Undo()
	// Kind names the mutation: "add", "remove" or "edit".
	Kind() string
	Describe() string
}

// Add appends a record; undoing it removes that exact record.
type Add struct {
	repo     repository.Repository
	rec      *art.Record
	executed bool
}

// NewAdd creates a command that appends rec to repo.
func NewAdd(repo repository.Repository, rec *art.Record) *Add {
	return &Add{repo: repo, rec: rec}
}

func (c *Add) Execute() {
	if c.executed {
		return
	}
	c.repo.Add(c.rec)
	c.executed = true
}

// Undo removes the slot holding the added record, found by identity. If the
// record is no longer present nothing is removed.
func (c *Add) Undo() {
	if !c.executed {
		return
	}
	if i := repository.IndexOf(c.repo, c.rec); i >= 0 {
		c.repo.Remove(i)
	}
	c.executed = false
}

func (c *Add) Kind() string { return "add" }

func (c *Add) Describe() string {
	return fmt.Sprintf("add %s %q", c.rec.Kind(), c.rec.Name)
}

// Record returns the record this command adds.
func (c *Add) Record() *art.Record { return c.rec }

// Remove erases the record at an index. Undo re-appends it at the end, so
// the original position is not restored.
type Remove struct {
	repo     repository.Repository
	index    int
	removed  *art.Record
	executed bool
}

// NewRemove creates a command that removes the record at index.
func NewRemove(repo repository.Repository, index int) *Remove {
	return &Remove{repo: repo, index: index}
}

// Execute captures whatever is at the index now, then removes it.
func (c *Remove) Execute() {
	if c.executed {
		return
	}
	c.removed = c.repo.Get(c.index)
	c.repo.Remove(c.index)
	c.executed = true
}

func (c *Remove) Undo() {
	if !c.executed {
		return
	}
	if c.removed != nil {
		c.repo.Add(c.removed)
	}
	c.executed = false
}

func (c *Remove) Kind() string { return "remove" }

func (c *Remove) Describe() string {
	if c.removed == nil {
		return fmt.Sprintf("remove #%d", c.index)
	}
	return fmt.Sprintf("remove #%d %q", c.index, c.removed.Name)
}

// Removed returns the record captured by the last Execute, or nil.
func (c *Remove) Removed() *art.Record { return c.removed }

// Edit swaps the record at an index between two snapshots.
type Edit struct {
	repo     repository.Repository
	index    int
	old      *art.Record
	updated  *art.Record
	executed bool
}

// NewEdit creates a command that replaces old with updated at index.
func NewEdit(repo repository.Repository, index int, old, updated *art.Record) *Edit {
	return &Edit{repo: repo, index: index, old: old, updated: updated}
}

func (c *Edit) Execute() {
	if c.executed {
		return
	}
	c.repo.Update(c.index, c.updated)
	c.executed = true
}

func (c *Edit) Undo() {
	if !c.executed {
		return
	}
	c.repo.Update(c.index, c.old)
	c.executed = false
}

func (c *Edit) Kind() string { return "edit" }

func (c *Edit) Describe() string {
	return fmt.Sprintf("edit #%d %q", c.index, c.updated.Name)
}
