// cmd/tools/registry/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"loan-assistant/pkg/registry"
)

const defaultPath = "configs/activities.json"

func main() {
	if len(os.Args) < 2 {
		help(os.Stderr)
		os.Exit(1)
	}
	if err := runCommand(os.Args[1], os.Args[2:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runCommand(name string, args []string, out io.Writer) error {
	switch name {
	case "validate":
		fs := flag.NewFlagSet("validate", flag.ContinueOnError)
		path := fs.String("path", defaultPath, "Path to registry file")
		if err := fs.Parse(args); err != nil {
			return err
		}
		reg, err := registry.LoadRegistry(*path)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Registry %s is valid (%d activities)\n", *path, len(reg.Activities))
		return nil

	case "list":
		fs := flag.NewFlagSet("list", flag.ContinueOnError)
		path := fs.String("path", defaultPath, "Path to registry file")
		if err := fs.Parse(args); err != nil {
			return err
		}
		reg, err := registry.LoadRegistry(*path)
		if err != nil {
			return err
		}
		activities := append([]registry.Activity(nil), reg.Activities...)
		sort.Slice(activities, func(i, j int) bool { return activities[i].TaskType < activities[j].TaskType })
		for _, a := range activities {
			fmt.Fprintf(out, "%-28s %-14s %s\n", a.TaskType, a.Category, a.DisplayName)
		}
		return nil

	case "check-input":
		fs := flag.NewFlagSet("check-input", flag.ContinueOnError)
		path := fs.String("path", defaultPath, "Path to registry file")
		taskType := fs.String("task", "", "Task type to validate against")
		vars := fs.String("vars", "", "Job variables as JSON, or @file")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if *taskType == "" || *vars == "" {
			return fmt.Errorf("-task and -vars are required")
		}
		reg, err := registry.LoadRegistry(*path)
		if err != nil {
			return err
		}
		doc, err := readVariables(*vars)
		if err != nil {
			return err
		}
		if err := reg.ValidateInput(*taskType, doc); err != nil {
			return err
		}
		fmt.Fprintf(out, "Variables are valid for %s\n", *taskType)
		return nil

	default:
		help(out)
		return fmt.Errorf("unknown command %q", name)
	}
}

func readVariables(arg string) ([]byte, error) {
	if file, ok := strings.CutPrefix(arg, "@"); ok {
		return os.ReadFile(file)
	}
	return []byte(arg), nil
}

func help(w io.Writer) {
	fmt.Fprint(w, `Usage: registry <command> [flags]

Commands:
  validate     Check the registry file
  list         List registered task types
  check-input  Validate job variables against a task type's input schema

Examples:
  registry validate -path configs/activities.json
  registry check-input -task calculate-emi -vars '{"principal":300000,"tenure":36}'
`)
}
