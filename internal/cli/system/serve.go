package system

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/julianstephens/hitmaker/internal/cli"
	"github.com/julianstephens/hitmaker/internal/logger"
	"github.com/julianstephens/hitmaker/internal/notifier"
	"github.com/julianstephens/hitmaker/internal/reminder"
)

// ServeCmd runs the reminder daemon: it arms a one-shot alarm per habit
// with a reminder configured and keeps re-arming on every fire until
// interrupted.
type ServeCmd struct{}

func (c *ServeCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	hitmakers, err := ctx.Store.GetAllHitmakers()
	if err != nil {
		return err
	}

	var sched *reminder.Scheduler
	alarms := reminder.NewTimerAlarms(func(p reminder.Payload) {
		sched.HandleFire(p)
	})
	defer alarms.Stop()

	sched = reminder.NewScheduler(alarms, notifier.New())
	sched.ArmAll(hitmakers)

	armed := 0
	for _, h := range hitmakers {
		if state, _ := sched.StateOf(h.ID); state == reminder.Armed {
			armed++
		}
	}
	fmt.Printf("Reminder daemon running, %d reminder(s) armed. Ctrl-C to stop.\n", armed)
	logger.Info("reminder daemon started", "armed", armed)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	logger.Info("reminder daemon stopped")
	return nil
}
