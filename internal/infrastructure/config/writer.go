package config

import (
	"bytes"
	"fmt"
	"os"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

var durationType = reflect.TypeOf(time.Duration(0))

// WriteConfigOrdered writes the configuration to disk with consistent ordering.
// Durations are written as strings ("15m0s") so the file stays hand-editable,
// and TOML sections are sorted alphabetically for deterministic output.
func WriteConfigOrdered(cfg *Config, path string) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)

	if err := enc.Encode(tomlTree(reflect.ValueOf(*cfg))); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	sorted := sortTOMLSections(buf.String())

	if err := os.WriteFile(path, []byte(sorted), filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// tomlTree converts a config struct into nested maps keyed by toml tag.
func tomlTree(v reflect.Value) map[string]any {
	out := make(map[string]any, v.NumField())
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		key := strings.Split(field.Tag.Get("toml"), ",")[0]
		if key == "" || key == "-" {
			continue
		}
		fv := v.Field(i)
		switch {
		case fv.Type() == durationType:
			out[key] = time.Duration(fv.Int()).String()
		case fv.Kind() == reflect.Struct:
			out[key] = tomlTree(fv)
		default:
			out[key] = fv.Interface()
		}
	}
	return out
}

// sortTOMLSections sorts TOML content so sections are in alphabetical order.
// This handles both top-level sections and indented nested sections.
func sortTOMLSections(content string) string {
	lines := strings.Split(content, "\n")

	type section struct {
		header string   // e.g., "appearance" or "appearance.dark_palette"
		lines  []string // lines belonging to this section (including header)
	}

	var sections []section
	var currentSection *section
	var preamble []string // lines before first section

	// Match section headers with optional leading whitespace (for indented sub-tables)
	sectionRegex := regexp.MustCompile(`^(\s*)\[([^\]]+)\]\s*$`)

	for _, line := range lines {
		if match := sectionRegex.FindStringSubmatch(line); match != nil {
			if currentSection != nil {
				sections = append(sections, *currentSection)
			}
			currentSection = &section{
				header: match[2],
				lines:  []string{line},
			}
		} else if currentSection != nil {
			currentSection.lines = append(currentSection.lines, line)
		} else {
			preamble = append(preamble, line)
		}
	}

	if currentSection != nil {
		sections = append(sections, *currentSection)
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].header < sections[j].header
	})

	var result strings.Builder

	for _, line := range preamble {
		result.WriteString(line)
		result.WriteString("\n")
	}

	for i, sec := range sections {
		if i > 0 || len(preamble) > 0 {
			content := result.String()
			if !strings.HasSuffix(content, "\n\n") && content != "" {
				result.WriteString("\n")
			}
		}

		for _, line := range sec.lines {
			if strings.TrimSpace(line) == "" {
				continue
			}
			result.WriteString(line)
			result.WriteString("\n")
		}
	}

	// Trim trailing whitespace but ensure single newline at end
	output := strings.TrimRight(result.String(), "\n")
	if output != "" {
		output += "\n"
	}

	return output
}
