// Package picker contains the Bubble Tea model for the hierarchical dropdown.
// The package is structured so the Model type focuses on message orchestration,
// while dedicated helpers own navigation, input, and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update routes each tea.Msg through a typed handler registry so every
//     message kind is handled by a focused function (key presses, mouse
//     events, terminal resizes, data reloads).
//   - Navigation helpers (navigation.go) manage the trail of drilled-in
//     levels, the selection resolver, and cursor movement. Input helpers
//     (input.go) keep key routing and the search box isolated from the
//     Bubble Tea event loop.
//
// State ownership:
//   - The navigation trail lives in internal/picker/state.Path, the visible
//     row set with its cursor and viewport in state.List, and the search box
//     state in state.Search.
//   - The input forest itself is plain internal/tree data; the model never
//     mutates nodes, so callers may share them.
//
// Selection semantics:
//   - Activating a leaf resolves the selection, notifies the caller through
//     Config.OnSelect with the trail as it stood at activation time, and
//     closes the dropdown.
//   - Activating a branch descends into it. The optional virtual first row
//     picks the branch node itself, reporting the trail above it.
//   - Reopening resolves the stored selection id against the current forest
//     and rebuilds the trail so the cursor lands on the selected node; an id
//     that no longer exists falls back to the root level.
package picker
