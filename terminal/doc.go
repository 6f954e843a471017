// Package terminal provides the tcell-backed environment a termunator World claims.
//
// Features:
//   - Alternate screen with hidden cursor while the world is Active
//   - Non-blocking key polling for the input system
//   - Cell canvas for the draw system
//   - Exactly-once restoration on Release, including crash paths
package terminal
