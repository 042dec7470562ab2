// Package guard denies dangerous shell fragments before execution.
package guard

import (
	"log/slog"
	"regexp"

	"github.com/ratchet-works/ratchet/pkg/services"
)

// CompiledPattern holds a pre-compiled deny pattern with its description.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Description string
}

// Gate checks shell commands against a denylist before the core executes
// them. Check applies to every execution path; CheckHost additionally
// applies host-only patterns for commands that run outside any container.
type Gate struct {
	base []*CompiledPattern
	host []*CompiledPattern
}

// basePatterns are denied everywhere, including inside containers. They
// cover operations that destroy the workspace or the execution environment
// itself.
var basePatterns = []*CompiledPattern{
	{
		Name:        "process_elevation",
		Regex:       regexp.MustCompile(`(?:^|[;&|]\s*|\s)sudo\s`),
		Description: "privilege escalation via sudo",
	},
	{
		Name:        "root_switch",
		Regex:       regexp.MustCompile(`\bsu\s+(-\s+)?root\b`),
		Description: "switching to the root user",
	},
	{
		Name:        "recursive_root_delete",
		Regex:       regexp.MustCompile(`\brm\s+(-[a-zA-Z]*[rf][a-zA-Z]*\s+)+(--[a-z-]+\s+)*("|')?(/|/\*|~|\$HOME|/home|/etc|/usr|/var|/bin|/boot)("|')?(\s|$)`),
		Description: "recursive delete on a root path",
	},
	{
		Name:        "filesystem_format",
		Regex:       regexp.MustCompile(`\bmkfs(\.[a-z0-9]+)?\b`),
		Description: "formatting a filesystem",
	},
	{
		Name:        "raw_device_write",
		Regex:       regexp.MustCompile(`\bdd\s+[^|;]*\bof=/dev/`),
		Description: "writing directly to a block device",
	},
	{
		Name:        "fork_bomb",
		Regex:       regexp.MustCompile(`:\(\)\s*\{\s*:\s*\|\s*:\s*&\s*\}\s*;`),
		Description: "classic fork bomb",
	},
	{
		Name:        "world_writable_root",
		Regex:       regexp.MustCompile(`\bchmod\s+(-[a-zA-Z]*R[a-zA-Z]*\s+)+[0-7]*777\s+/(\s|$)`),
		Description: "making the filesystem root world-writable",
	},
	{
		Name:        "kill_all_processes",
		Regex:       regexp.MustCompile(`\bkill\s+(-9\s+)?-1\b`),
		Description: "killing every reachable process",
	},
}

// hostPatterns are additionally denied when the command would run directly
// on the host (sandbox policy "none"). Inside a container these operations
// are contained and often legitimate (image setup installs packages).
var hostPatterns = []*CompiledPattern{
	{
		Name:        "host_package_install",
		Regex:       regexp.MustCompile(`\b(apt|apt-get|dnf|yum|pacman|zypper|brew)\s+(-[a-zA-Z]+\s+)*(install|remove|purge|upgrade|dist-upgrade)\b`),
		Description: "package manager mutation on the host",
	},
	{
		Name:        "piped_remote_shell",
		Regex:       regexp.MustCompile(`\b(curl|wget)\b[^|;]*\|\s*(sudo\s+)?(ba|z|da)?sh\b`),
		Description: "piping a remote script into a shell",
	},
	{
		Name:        "host_power_control",
		Regex:       regexp.MustCompile(`\b(shutdown|reboot|poweroff|halt)\b`),
		Description: "host shutdown or reboot",
	},
	{
		Name:        "systemd_mutation",
		Regex:       regexp.MustCompile(`\bsystemctl\s+(stop|disable|mask|kill)\b`),
		Description: "stopping host services",
	},
}

// NewGate creates a command gate from the built-in denylist plus additional
// patterns from configuration. Invalid extra patterns are logged and skipped.
func NewGate(extraPatterns []string) *Gate {
	g := &Gate{
		base: basePatterns,
		host: hostPatterns,
	}

	for i, pattern := range extraPatterns {
		compiled, err := regexp.Compile(pattern)
		if err != nil {
			slog.Error("Failed to compile extra deny pattern, skipping",
				"index", i, "error", err)
			continue
		}
		g.base = append(g.base, &CompiledPattern{
			Name:        "extra",
			Regex:       compiled,
			Description: "configured deny pattern",
		})
	}

	return g
}

// Check returns nil when the command is allowed, or a security_denied error
// naming the matched rule with the offending fragment redacted.
func (g *Gate) Check(command string) error {
	return match(g.base, command)
}

// CheckHost is Check plus the host-only patterns. Used when the command
// would execute outside any container.
func (g *Gate) CheckHost(command string) error {
	if err := match(g.base, command); err != nil {
		return err
	}
	return match(g.host, command)
}

func match(patterns []*CompiledPattern, command string) error {
	for _, p := range patterns {
		if !p.Regex.MatchString(command) {
			continue
		}
		// Redact before truncating so a secret can never straddle the cut.
		fragment := capString(RedactSecrets(command), 160)
		return services.NewSecurityDeniedError(
			"command blocked (%s): %s in %q", p.Name, p.Description, fragment)
	}
	return nil
}

// capString bounds the quoted command so huge commands cannot flood the
// error message.
func capString(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
