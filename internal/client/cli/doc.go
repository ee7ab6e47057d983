// Package cli provides the interactive useradmin console.
//
// It wires configuration, the local session database, the API client and the
// view controllers behind a small REPL. Every screen is reached through the
// router, so protected screens bounce to login when no session is stored.
//
// Commands:
//   - register / login         fill in the matching form
//   - dashboard                user count and user table
//   - profile [uuid]           show and edit a profile (own by default)
//   - delete <uuid>            delete a user from the dashboard, after a y/n confirmation
//   - open <path>              navigate to any route, e.g. /profile?uuid=...
//   - logout, help, exit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
