// Package desktop models freedesktop desktop-entry files, the key=value
// records consumed by the host desktop environment.
package desktop

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Header is the group header every desktop entry starts with.
const Header = "[Desktop Entry]"

// Entry is a single desktop-entry record. Only the keys this tool reads
// and writes are modeled; unknown keys survive a Parse in Extra.
type Entry struct {
	Version    string
	Type       string
	Name       string
	Comment    string
	Exec       string
	Icon       string
	Terminal   bool
	Categories []string

	// Autostart adds the X-GNOME-Autostart-enabled key so login managers
	// pick the entry up from the autostart directory.
	Autostart bool

	Extra map[string]string
}

// Render emits the entry in the exact on-disk format. Optional keys are
// omitted when empty.
func (e *Entry) Render() string {
	var b strings.Builder

	b.WriteString(Header + "\n")

	if e.Version != "" {
		fmt.Fprintf(&b, "Version=%s\n", e.Version)
	}
	fmt.Fprintf(&b, "Type=%s\n", e.Type)
	fmt.Fprintf(&b, "Name=%s\n", e.Name)
	if e.Comment != "" {
		fmt.Fprintf(&b, "Comment=%s\n", e.Comment)
	}
	fmt.Fprintf(&b, "Exec=%s\n", e.Exec)
	if e.Icon != "" {
		fmt.Fprintf(&b, "Icon=%s\n", e.Icon)
	}
	fmt.Fprintf(&b, "Terminal=%t\n", e.Terminal)
	if len(e.Categories) > 0 {
		fmt.Fprintf(&b, "Categories=%s;\n", strings.Join(e.Categories, ";"))
	}
	if e.Autostart {
		b.WriteString("X-GNOME-Autostart-enabled=true\n")
	}

	return b.String()
}

// Validate checks the keys a launchable entry cannot do without.
func (e *Entry) Validate() error {
	if e.Type == "" {
		return fmt.Errorf("desktop entry: missing Type")
	}
	if e.Name == "" {
		return fmt.Errorf("desktop entry: missing Name")
	}
	if e.Exec == "" {
		return fmt.Errorf("desktop entry: missing Exec")
	}

	return nil
}

// Parse reads a desktop entry back from its on-disk form. Keys outside
// the [Desktop Entry] group are ignored.
func Parse(r io.Reader) (*Entry, error) {
	entry := &Entry{}

	scanner := bufio.NewScanner(r)
	inGroup := false
	seenHeader := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") {
			inGroup = line == Header
			if inGroup {
				seenHeader = true
			}
			continue
		}

		if !inGroup {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			logrus.Tracef("skipping malformed line: %s", line)
			continue
		}

		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "Version":
			entry.Version = value
		case "Type":
			entry.Type = value
		case "Name":
			entry.Name = value
		case "Comment":
			entry.Comment = value
		case "Exec":
			entry.Exec = value
		case "Icon":
			entry.Icon = value
		case "Terminal":
			entry.Terminal = value == "true"
		case "Categories":
			entry.Categories = splitList(value)
		case "X-GNOME-Autostart-enabled":
			entry.Autostart = value == "true"
		default:
			if entry.Extra == nil {
				entry.Extra = map[string]string{}
			}
			entry.Extra[key] = value
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if !seenHeader {
		return nil, fmt.Errorf("desktop entry: missing %s header", Header)
	}

	return entry, nil
}

// Filename normalizes an application name into its desktop-entry file name.
func Filename(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "-")
	return name + ".desktop"
}

func splitList(value string) []string {
	parts := strings.Split(strings.TrimSuffix(value, ";"), ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
