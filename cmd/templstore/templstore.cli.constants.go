package main

// Command names
const (
	CmdNameResolve  = "resolve"
	CmdNameValidate = "validate"
	CmdNameVersion  = "version"
	CmdNameHelp     = "help"
)

// Flag names - long form
const (
	FlagFile    = "file"
	FlagPartial = "partial"
	FlagFormat  = "format"
	FlagKey     = "key"
	FlagArg     = "arg"
	FlagOutput  = "output"
)

// Flag names - short form
const (
	FlagFileShort    = "f"
	FlagPartialShort = "p"
	FlagFormatShort  = "F"
	FlagKeyShort     = "k"
	FlagArgShort     = "a"
	FlagOutputShort  = "o"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFormat = "yaml"
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Exit codes
const (
	ExitCodeSuccess         = 0
	ExitCodeError           = 1
	ExitCodeUsageError      = 2
	ExitCodeValidationError = 3
	ExitCodeInputError      = 4
	ExitCodeNotFound        = 5
)

// File permissions for output files
const FilePermissions = 0o644

// Error messages - all must be constants
const (
	ErrMsgUnknownCommand   = "unknown command"
	ErrMsgMissingFile      = "templates file required"
	ErrMsgMissingKey       = "template key required (namespace.name)"
	ErrMsgInvalidKey       = "template key must be namespace.name"
	ErrMsgInvalidArg       = "arguments must be name=value"
	ErrMsgInvalidFormat    = "unknown templates format"
	ErrMsgReadFileFailed   = "failed to read file"
	ErrMsgWriteFailed      = "failed to write output"
	ErrMsgLoadFailed       = "templates failed to load"
	ErrMsgNotFound         = "no template configured for key"
	ErrMsgApplyFailed      = "argument substitution failed"
	ErrMsgValidationFailed = "templates file is not valid"
)

// Output format strings
const (
	FmtErrorWithCause  = "Error: %s: %v\n"
	FmtErrorWithDetail = "Error: %s: %s\n"
	FmtValidSummary    = "valid: %d namespaces, %d templates\n"
	FmtNamespaceLine   = "  %s: %d templates\n"
	FmtVariableLine    = "    %s.%s: ${%s}\n"
)

// Help text
const (
	HelpMainUsage = `templstore - namespaced template resolution CLI

Usage:
  templstore <command> [flags]

Commands:
  resolve    Resolve a template by namespace.name, optionally applying arguments
  validate   Check a templates file for well-formedness
  version    Print version information
  help       Show help for a command

Run 'templstore help <command>' for command details.`

	HelpResolveUsage = `templstore resolve - resolve a template by key

Usage:
  templstore resolve -f <file> -k <namespace.name> [flags]

Flags:
  -f, --file      templates file path ('-' for stdin)
  -p, --partial   optional override templates file, merged entry-wise over --file
  -F, --format    file format: json, yaml or toml (default: yaml)
  -k, --key       template key as namespace.name
  -a, --arg       named argument as name=value (repeatable); when present,
                  placeholders are substituted before printing
  -o, --output    output path (default: stdout)`

	HelpValidateUsage = `templstore validate - check a templates file

Usage:
  templstore validate -f <file> [flags]

Flags:
  -f, --file      templates file path ('-' for stdin)
  -F, --format    file format: json, yaml or toml (default: yaml)

Prints a per-namespace summary and the placeholder variables of each
template. Exits non-zero when the file does not deserialize.`

	HelpVersionUsage = `templstore version - print version information

Usage:
  templstore version`

	HelpHelpUsage = `templstore help - show help

Usage:
  templstore help [command]`
)
