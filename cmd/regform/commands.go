package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/muurk/regform/internal/config"
	"github.com/muurk/regform/internal/logging"
	"github.com/muurk/regform/internal/tui"
	"github.com/muurk/regform/internal/validate"
)

// Command flags
var (
	configPath   string
	outputFormat string

	checkName     string
	checkEmail    string
	checkPassword string
	checkPhone    string
	checkAll      bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to preferences file (default: platform config dir)")

	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkName, "name", "", "Name value to validate")
	checkCmd.Flags().StringVar(&checkEmail, "email", "", "Email value to validate")
	checkCmd.Flags().StringVar(&checkPassword, "password", "", "Password value to validate")
	checkCmd.Flags().StringVar(&checkPhone, "phone", "", "Phone value to validate")
	checkCmd.Flags().BoolVar(&checkAll, "all", false, "Require all four fields to be supplied")
	checkCmd.Flags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, compact, json)")
}

// runForm launches the interactive registration form
func runForm(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeFromEnv(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the interactive form requires a terminal; use 'regform check' for scripted validation")
	}

	prefs, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}

	return tui.Run(prefs)
}

// checkCmd validates supplied field values without the TUI
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate field values non-interactively",
	Long: `Validate registration field values from the command line.

Only the fields supplied as flags are checked, unless --all is given, in
which case all four fields are required. The exit status is 1 when any
checked field fails validation, making the command usable in scripts.`,
	Example: `  # Check a single field
  regform check --email user@example.com

  # Check several fields at once
  regform check --name "Jane Doe" --phone "(555) 123-4567"

  # Full registration check with JSON output
  regform check --all --name "Jane Doe" --email user@example.com \
      --password 'Pass123!' --phone 0997720056 --format json`,
	RunE: runCheck,
}

// fieldCheck is one field's verdict in check output. Values are never
// echoed back, only verdicts.
type fieldCheck struct {
	Field   string `json:"field"`
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeFromEnv(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	supplied := map[validate.Field]*string{
		validate.FieldName:     nil,
		validate.FieldEmail:    nil,
		validate.FieldPassword: nil,
		validate.FieldPhone:    nil,
	}
	if cmd.Flags().Changed("name") || checkAll {
		supplied[validate.FieldName] = &checkName
	}
	if cmd.Flags().Changed("email") || checkAll {
		supplied[validate.FieldEmail] = &checkEmail
	}
	if cmd.Flags().Changed("password") || checkAll {
		supplied[validate.FieldPassword] = &checkPassword
	}
	if cmd.Flags().Changed("phone") || checkAll {
		supplied[validate.FieldPhone] = &checkPhone
	}

	var checks []fieldCheck
	for _, f := range validate.Fields() {
		value := supplied[f]
		if value == nil {
			continue
		}
		res := validate.Check(f, *value)
		checks = append(checks, fieldCheck{
			Field:   f.String(),
			Valid:   res.Valid,
			Message: res.Message,
		})
	}

	if len(checks) == 0 {
		return fmt.Errorf("no fields supplied; pass --name, --email, --password, --phone or --all")
	}

	switch outputFormat {
	case "detailed":
		printDetailed(checks)
	case "compact":
		printCompact(checks)
	case "json":
		data, err := json.MarshalIndent(checks, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
	default:
		return fmt.Errorf("unknown format %q (expected detailed, compact or json)", outputFormat)
	}

	failed := 0
	for _, c := range checks {
		if !c.Valid {
			failed++
		}
	}
	if failed > 0 {
		cmd.SilenceUsage = true
		return fmt.Errorf("%d of %d fields failed validation", failed, len(checks))
	}
	return nil
}

func printDetailed(checks []fieldCheck) {
	for _, c := range checks {
		mark := "✓"
		if !c.Valid {
			mark = "✗"
		}
		fmt.Printf("%s %-9s %s\n", mark, c.Field+":", c.Message)
	}
}

func printCompact(checks []fieldCheck) {
	for _, c := range checks {
		status := "ok"
		if !c.Valid {
			status = "invalid"
		}
		fmt.Printf("%s=%s\n", c.Field, status)
	}
}
