package config

import (
	"strings"
)

type Launchers map[string]*Launcher

// Launcher is a named profile the generate command renders into a desktop
// entry. The shorthand string form is "Display Name@python.module".
type Launcher struct {
	Name       string   `yaml:"name" toml:"name"`
	Comment    string   `yaml:"comment" toml:"comment"`
	Module     string   `yaml:"module" toml:"module"`
	Icon       string   `yaml:"icon" toml:"icon"`
	Terminal   bool     `yaml:"terminal" toml:"terminal"`
	Categories []string `yaml:"categories" toml:"categories"`
}

func (l *Launcher) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var value string
	if unmarshal(&value) == nil {
		p := strings.Split(value, "@")
		l.Name = p[0]
		if len(p) > 1 {
			l.Module = p[1]
		}
		return nil
	}

	type launcher Launcher
	aux := (*launcher)(l)
	if err := unmarshal(aux); err != nil {
		return err
	}

	return nil
}

func (l *Launcher) UnmarshalText(b []byte) error {
	p := strings.Split(string(b), "@")
	launcher := Launcher{Name: p[0]}
	if len(p) > 1 {
		launcher.Module = p[1]
	}
	*l = launcher
	return nil
}
