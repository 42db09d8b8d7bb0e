package system

import (
	"fmt"
	"os"

	"github.com/julianstephens/hitmaker/internal/cli"
	"github.com/julianstephens/hitmaker/internal/notifier"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: DB reachable
	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
	}

	// Check 2: Data readable
	if !hasError {
		if _, err := ctx.Store.GetAllHitmakers(); err != nil {
			fmt.Printf("❌ Habit data readable: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Habit data readable: OK\n")
		}
	} else {
		fmt.Printf("⊘ Habit data readable: SKIPPED (database not reachable)\n")
	}

	// Check 3: Widget surface dir writable
	if err := os.MkdirAll(ctx.Refresher.Dir(), 0755); err != nil {
		fmt.Printf("⚠ Widget directory writable: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Widget directory writable: OK\n")
	}

	// Check 4: Tray app available (warning only, console fallback exists)
	if dir, err := notifier.TrayConfigDir(); err != nil {
		fmt.Printf("⚠ Tray notifier: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else if _, err := os.Stat(dir); err != nil {
		fmt.Printf("⚠ Tray notifier: not installed (reminders will print to console)\n")
	} else {
		fmt.Printf("✓ Tray notifier: OK\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}
