package main

import (
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/hitmaker/internal/cli"
	"github.com/julianstephens/hitmaker/internal/cli/habits"
	"github.com/julianstephens/hitmaker/internal/cli/system"
	"github.com/julianstephens/hitmaker/internal/cli/widgets"
	"github.com/julianstephens/hitmaker/internal/constants"
	"github.com/julianstephens/hitmaker/internal/errors"
	"github.com/julianstephens/hitmaker/internal/logger"
	"github.com/julianstephens/hitmaker/internal/notifier"
	"github.com/julianstephens/hitmaker/internal/orchestrator"
	"github.com/julianstephens/hitmaker/internal/reminder"
	"github.com/julianstephens/hitmaker/internal/storage/sqlite"
	"github.com/julianstephens/hitmaker/internal/widget"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database path." type:"path" default:"~/.config/hitmaker/hitmaker.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init   system.InitCmd   `cmd:"" help:"Initialize hitmaker storage."`
	Doctor system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Tui    system.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Notify system.NotifyCmd `cmd:"" help:"Fire reminders due this minute (for cron)."`
	Remind struct {
		Serve system.ServeCmd `cmd:"" help:"Run the reminder daemon." default:"1"`
	} `cmd:"" help:"Reminder delivery."`
	Habit struct {
		Add      habits.AddCmd      `cmd:"" help:"Add a new habit."`
		List     habits.ListCmd     `cmd:"" help:"List habits with streaks." default:"1"`
		Show     habits.ShowCmd     `cmd:"" help:"Show stats and the yearly heatmap."`
		Done     habits.DoneCmd     `cmd:"" help:"Mark a habit done for today."`
		Undone   habits.UndoneCmd   `cmd:"" help:"Unmark today, optionally keeping partial progress."`
		Rename   habits.RenameCmd   `cmd:"" help:"Rename a habit."`
		Color    habits.ColorCmd    `cmd:"" help:"Change a habit's accent color."`
		Icon     habits.IconCmd     `cmd:"" help:"Change a habit's icon."`
		Icons    habits.IconsCmd    `cmd:"" help:"List the icon catalog."`
		Reminder habits.ReminderCmd `cmd:"" help:"Set or clear a habit's reminder."`
		Move     habits.MoveCmd     `cmd:"" help:"Move a habit up, down, or to the top."`
		Reorder  habits.ReorderCmd  `cmd:"" help:"Reorder habits by listing names."`
		Delete   habits.DeleteCmd   `cmd:"" help:"Delete a habit and its history."`
	} `cmd:"" help:"Manage habits."`
	Widget struct {
		Pin   widgets.PinCmd   `cmd:"" help:"Pin a widget bound to a habit."`
		Unpin widgets.UnpinCmd `cmd:"" help:"Unpin a widget instance."`
		List  widgets.ListCmd  `cmd:"" help:"List pinned widgets." default:"1"`
		Show  widgets.ShowCmd  `cmd:"" help:"Render a pinned widget to stdout."`
	} `cmd:"" help:"Manage pinned widgets."`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("hitmaker"),
		kong.Description("Habit tracker with streaks, heatmaps, reminders, and pinned widgets"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	configDir := filepath.Dir(CLI.Config)
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		errors.Fatal(err)
	}

	// Composition root: the store and everything that shares it is
	// built here and injected; there is no ambient global handle.
	store := sqlite.NewStore(CLI.Config)
	refresher := widget.NewRefresher(store, filepath.Join(configDir, constants.WidgetDirName))

	var sched *reminder.Scheduler
	alarms := reminder.NewTimerAlarms(func(p reminder.Payload) {
		sched.HandleFire(p)
	})
	sched = reminder.NewScheduler(alarms, notifier.New())

	ctx := &cli.Context{
		Store:        store,
		Orchestrator: orchestrator.New(store, sched, refresher),
		Scheduler:    sched,
		Refresher:    refresher,
		Debug:        CLI.Debug,
	}

	err := kctx.Run(ctx)
	if cerr := store.Close(); err == nil {
		err = cerr
	}
	errors.Fatal(err)
}
