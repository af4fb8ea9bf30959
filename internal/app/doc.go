// Package app is the composition root for LazyFloat.
//
// # Overview
//
// Run wires configuration, logging, tracing, the login client and the UI,
// then blocks in the Bubble Tea program until the user quits or the context
// is cancelled.
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()       Read config.toml (defaults if missing)
//	       ├─────> openLogger()        slog text handler via tea.LogToFile
//	       ├─────> telemetry.Setup()   OTLP exporter when configured
//	       ├─────> float.NewClient()   HTTP login client
//	       └─────> ui.Run()            Start TUI (blocks)
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Invalid or unreadable configuration
//   - Log file or exporter setup failure
//   - An unusable auth_url
//   - Terminal failures from Bubble Tea
//   - A failed login when on_login_error = "exit"
//
// Cancelling ctx (SIGINT/SIGTERM from main) stops the program cleanly and
// Run returns nil.
//
// Standard output belongs to the TUI, so logs go to the configured file only.
package app
