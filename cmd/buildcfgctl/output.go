package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"buildcfg/internal/domain"
)

func writeJSON(value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func writeYAML(value any) error {
	data, err := yaml.Marshal(value)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

func printResolution(resolution domain.Resolution, opts *cliOptions) error {
	if opts.jsonOutput {
		return writeJSON(resolution)
	}
	if opts.yamlOutput {
		return writeYAML(map[string]any{
			"id":         resolution.ID,
			"resolvedAt": resolution.ResolvedAt,
			"options":    resolution.Options,
		})
	}

	fmt.Printf("resolution=%s flags=%d\n", resolution.ID, len(resolution.Settings))
	for _, setting := range resolution.Settings {
		flag, _ := domain.FlagByName(setting.Flag)
		line := fmt.Sprintf("%-12s %-5t %-8s %s", setting.Flag, setting.Value, setting.Source, flag.EnvVar)
		if setting.Source == domain.SourceEnv {
			line += fmt.Sprintf("=%s", setting.Raw)
		}
		fmt.Println(line)
	}
	return nil
}

func printFlagList(flags []domain.Flag, opts *cliOptions) error {
	if opts.jsonOutput {
		list := make([]map[string]any, 0, len(flags))
		for _, flag := range flags {
			list = append(list, map[string]any{
				"name":        flag.Name,
				"envVar":      flag.EnvVar,
				"default":     flag.Default,
				"style":       flagStyle(flag),
				"description": flag.Description,
			})
		}
		return writeJSON(list)
	}
	for _, flag := range flags {
		fmt.Printf("%-12s %-16s %-11s default=%-5t %s\n", flag.Name, flag.EnvVar, flagStyle(flag), flag.Default, flag.Description)
	}
	return nil
}

func printDiff(diff domain.OptionsDiff, opts *cliOptions) error {
	if opts.jsonOutput {
		changed := diff.Changed
		if changed == nil {
			changed = []string{}
		}
		return writeJSON(map[string]any{"changed": changed})
	}
	if diff.IsEmpty() {
		fmt.Println("no changes")
		return nil
	}
	fmt.Printf("changed: %s\n", strings.Join(diff.Changed, ", "))
	return nil
}

func flagStyle(flag domain.Flag) string {
	if flag.Negative {
		return "negative"
	}
	return "affirmative"
}
