package discord

import (
	"fmt"
	"strings"
)

const (
	// CustomIDSeparator is the character used to separate parts
	CustomIDSeparator = ":"

	// MaxCustomIDLength is Discord's limit for custom IDs
	MaxCustomIDLength = 100

	// DomainDungeon prefixes every component this handler owns
	DomainDungeon = "dungeon"
)

// CustomID is a parsed component ID of the form domain:action:target:args...
// The target is the Discord user that owns the game.
type CustomID struct {
	Domain string
	Action string
	Target string
	Args   []string
}

// NewCustomID creates a dungeon component ID
func NewCustomID(action, target string, args ...string) *CustomID {
	return &CustomID{
		Domain: DomainDungeon,
		Action: action,
		Target: target,
		Args:   args,
	}
}

// Arg returns the n-th argument or "" when absent
func (c *CustomID) Arg(n int) string {
	if n < 0 || n >= len(c.Args) {
		return ""
	}
	return c.Args[n]
}

// Encode converts the CustomID to a string
func (c *CustomID) Encode() (string, error) {
	parts := []string{c.Domain, c.Action}
	if c.Target != "" {
		parts = append(parts, c.Target)
	}
	parts = append(parts, c.Args...)

	result := strings.Join(parts, CustomIDSeparator)
	if len(result) > MaxCustomIDLength {
		return "", fmt.Errorf("custom ID exceeds maximum length of %d characters", MaxCustomIDLength)
	}

	return result, nil
}

// MustEncode is like Encode but panics on error
func (c *CustomID) MustEncode() string {
	result, err := c.Encode()
	if err != nil {
		panic(err)
	}
	return result
}

// ParseCustomID parses a custom ID string
func ParseCustomID(customID string) (*CustomID, error) {
	if customID == "" {
		return nil, fmt.Errorf("empty custom ID")
	}

	parts := strings.Split(customID, CustomIDSeparator)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("invalid custom ID format: expected at least domain:action")
	}

	result := &CustomID{
		Domain: parts[0],
		Action: parts[1],
		Args:   make([]string, 0),
	}
	if len(parts) > 2 {
		result.Target = parts[2]
		result.Args = append(result.Args, parts[3:]...)
	}

	return result, nil
}
