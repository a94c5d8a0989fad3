package clamtypes

// HelpInfo is the structured help surface a command descriptor exposes.
// The help builtin renders it as a styled table or markdown; front-ends may
// also serialize it.
type HelpInfo struct {
	Command     string        `json:"command"`               // Full command path, space separated
	Aliases     []string      `json:"aliases,omitempty"`     // Alternate names
	Description string        `json:"description"`           // What the command does
	Usage       string        `json:"usage"`                 // Usage syntax line
	Options     []HelpOption  `json:"options,omitempty"`     // Arguments in declaration order
	Subcommands []HelpInfo    `json:"subcommands,omitempty"` // Populated for command groups
	Examples    []HelpExample `json:"examples,omitempty"`    // Usage examples
}

// HelpOption describes one argument of a command.
type HelpOption struct {
	Name        string   `json:"name"`              // Canonical argument name
	Aliases     []string `json:"aliases,omitempty"` // Alternate names
	Description string   `json:"description"`       // What this argument controls
	Type        string   `json:"type"`              // Declared type (string, int, [string], ...)
	Required    bool     `json:"required"`          // Whether the argument must be supplied
	Positional  bool     `json:"positional"`        // Whether it may be supplied positionally
	Default     string   `json:"default,omitempty"` // Rendered default value, when optional
	Choices     []string `json:"choices,omitempty"` // Allowed values, when constrained
}

// HelpExample pairs an example command line with what it demonstrates.
type HelpExample struct {
	Command     string `json:"command"`     // Example input line
	Description string `json:"description"` // What the example shows
}
