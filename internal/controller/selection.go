package controller

import (
	"context"
	"sort"
)

// EnterMultiSelect switches the list into multi-select mode with an empty
// selection. No-op when already active.
func (c *Controller) EnterMultiSelect() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.multiSelect = true
}

// ExitMultiSelect leaves multi-select mode and clears the selection.
func (c *Controller) ExitMultiSelect() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.multiSelect = false
	clear(c.selected)
}

// ToggleSelection flips the selection state of a single note. Deselecting the
// last remaining note leaves multi-select mode entirely; both transitions
// happen under one lock, so observers never see an empty selection with the
// mode still active.
func (c *Controller) ToggleSelection(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.multiSelect {
		return
	}
	if _, ok := c.selected[id]; ok {
		delete(c.selected, id)
		if len(c.selected) == 0 {
			c.multiSelect = false
		}
		return
	}
	c.selected[id] = struct{}{}
}

// InMultiSelect reports whether multi-select mode is active.
func (c *Controller) InMultiSelect() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.multiSelect
}

// IsSelected reports whether the note with the given id is selected.
func (c *Controller) IsSelected(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.selected[id]
	return ok
}

// SelectionCount returns the number of selected notes.
func (c *Controller) SelectionCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.selected)
}

// SelectedIDs returns the selected note ids in ascending order.
func (c *Controller) SelectedIDs() []int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	ids := make([]int64, 0, len(c.selected))
	for id := range c.selected {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// DeleteSelected deletes every selected note in one batch and leaves
// multi-select mode. With nothing selected it is a no-op. The deletion runs
// off the caller's goroutine; failures are reported through
// [Controller.Errors] and the selection is kept so the user can retry.
func (c *Controller) DeleteSelected(ctx context.Context) {
	ids := c.SelectedIDs()
	if len(ids) == 0 {
		return
	}

	go func() {
		if err := c.service.DeleteNotes(ctx, ids); err != nil {
			c.reportError(err)
			return
		}
		c.ExitMultiSelect()
	}()
}
