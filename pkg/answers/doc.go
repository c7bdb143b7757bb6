// Package answers collects the values a generation run is parameterized
// with. Answers come from an answers file (YAML, TOML or JSON) and from
// key=value assignments given on the command line, later sources winning.
package answers
