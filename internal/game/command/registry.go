package command

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// Registry resolves typed words to duel commands. Lookups are case
// insensitive, so names and aliases are stored lowercased.
type Registry struct {
	byName  map[string]*Command // canonical name and every alias → command
	ordered []*Command          // sorted by canonical name
}

// NewRegistry validates cmds and indexes them by name and alias.
//
// Precondition: every command has a non-empty name, a known category and a
// handler the Dispatcher implements. No word is used twice, whether as a
// name or as an alias.
// Postcondition: Returns a Registry, or an error naming the first offending
// command.
func NewRegistry(cmds []Command) (*Registry, error) {
	r := &Registry{byName: make(map[string]*Command, len(cmds)*3)}
	for i := range cmds {
		cmd := cmds[i]
		if err := validateCommand(&cmd); err != nil {
			return nil, err
		}
		words := append([]string{cmd.Name}, cmd.Aliases...)
		for _, w := range words {
			key := strings.ToLower(w)
			if key == "" || strings.ContainsFunc(key, unicode.IsSpace) {
				return nil, fmt.Errorf("command %q: %q must be one non-empty word", cmd.Name, w)
			}
			if prev, ok := r.byName[key]; ok {
				return nil, fmt.Errorf("command %q: %q is already taken by %q", cmd.Name, w, prev.Name)
			}
			r.byName[key] = &cmd
		}
		r.ordered = append(r.ordered, &cmd)
	}
	sort.Slice(r.ordered, func(i, j int) bool { return r.ordered[i].Name < r.ordered[j].Name })
	return r, nil
}

func validateCommand(cmd *Command) error {
	switch {
	case cmd.Name == "":
		return fmt.Errorf("command with handler %q has no name", cmd.Handler)
	case !turnHandlers[cmd.Handler] && !freeHandlers[cmd.Handler]:
		return fmt.Errorf("command %q: unknown handler %q", cmd.Name, cmd.Handler)
	case !categories[cmd.Category]:
		return fmt.Errorf("command %q: unknown category %q", cmd.Name, cmd.Category)
	}
	return nil
}

// DefaultRegistry creates a Registry with all built-in commands.
//
// Postcondition: Returns a Registry with all built-in commands registered.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(BuiltinCommands())
	if err != nil {
		panic(fmt.Sprintf("building default registry: %v", err))
	}
	return r
}

// Resolve looks up a command by name or alias, ignoring case.
//
// Postcondition: Returns (command, true) if found, or (nil, false).
func (r *Registry) Resolve(input string) (*Command, bool) {
	cmd, ok := r.byName[strings.ToLower(input)]
	return cmd, ok
}

// Commands returns all registered commands sorted by name.
func (r *Registry) Commands() []*Command {
	out := make([]*Command, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// HelpText renders every command grouped by category, categories and
// commands in alphabetical order. Commands that do not end the turn are
// marked "(free)".
func (r *Registry) HelpText() string {
	byCat := make(map[string][]*Command)
	for _, cmd := range r.ordered {
		byCat[cmd.Category] = append(byCat[cmd.Category], cmd)
	}
	cats := make([]string, 0, len(byCat))
	for c := range byCat {
		cats = append(cats, c)
	}
	sort.Strings(cats)

	var b strings.Builder
	for i, c := range cats {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s:\n", strings.ToUpper(c[:1])+c[1:])
		for _, cmd := range byCat[c] {
			name := cmd.Name
			if len(cmd.Aliases) > 0 {
				name += " (" + strings.Join(cmd.Aliases, ", ") + ")"
			}
			help := cmd.Help
			if !cmd.TakesTurn() {
				help += " (free)"
			}
			fmt.Fprintf(&b, "  %-20s %s\n", name, help)
		}
	}
	return b.String()
}
