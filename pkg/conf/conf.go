// Package conf holds the program metadata printed by the info command.
package conf

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v2"
)

// CanonicalGreeting is the exact text emitted by the hello command.
const CanonicalGreeting = "Hello World"

var Cnf = Config{
	Name:         "lib-list",
	Title:        "small library of list manipulation helpers",
	Version:      "v1.0.0",
	Homepage:     "https://github.com/bitranox/lib-list",
	Author:       "bitranox",
	AuthorEmail:  "bitranox@gmail.com",
	ShellCommand: "lib-list",
}

type Config struct {
	Name         string `yaml:"name" mapstructure:"name"`
	Title        string `yaml:"title" mapstructure:"title"`
	Version      string `yaml:"version" mapstructure:"version"`
	Homepage     string `yaml:"homepage" mapstructure:"homepage"`
	Author       string `yaml:"author" mapstructure:"author"`
	AuthorEmail  string `yaml:"author_email" mapstructure:"author-email"`
	ShellCommand string `yaml:"shell_command" mapstructure:"shell-command"`
}

// PrintInfo writes the metadata as an aligned key/value block.
func (c Config) PrintInfo(w io.Writer) {
	fmt.Fprintf(w, "Info for %s:\n\n", c.Name)
	for _, field := range []struct{ key, value string }{
		{"name", c.Name},
		{"title", c.Title},
		{"version", c.Version},
		{"homepage", c.Homepage},
		{"author", c.Author},
		{"author_email", c.AuthorEmail},
		{"shell_command", c.ShellCommand},
	} {
		fmt.Fprintf(w, "    %-13s : %s\n", field.key, field.value)
	}
}

// YAML renders the metadata as a YAML document.
func (c Config) YAML() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
