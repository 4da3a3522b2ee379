// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 11

// Stack Container - these keys bound the buffers handed to CLI stacks.
const (
	StackMaxSlots        = "stack.max_slots"
	StackInitialCapacity = "stack.initial_capacity"
)

// Session Persistence - these keys configure how the working stack survives between runs.
const (
	SessionPersist     = "session.persist"
	SessionJournalSize = "session.journal_size"
)

// Scripting - these keys configure the Lua runtime.
const (
	ScriptPreloadLibs = "script.preload_libs"
)

// Terminal User Interface (TUI) - these keys define the interactive console's rendering.
const (
	TUIShowSlots = "tui.show_slots"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored = "cli.colored"
)
