// Package viz renders shot reports and trajectories in the terminal.
//
//   - [RenderReport]: lipgloss panel with the shot verdict
//   - [PlotHeight], [PlotSeries]: asciigraph line plots
//   - [Replay]: Bubble Tea program stepping through a stored trajectory
//
// # Replay Key Bindings
//
//	Space - Pause/Resume
//	R     - Restart
//	[ ]   - Step back/forward one frame while paused
//	Q     - Quit
package viz
