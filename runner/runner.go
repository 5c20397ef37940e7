// Package runner executes a sequence of tasks, wrapping each one in a
// logged activity scope so the console shows matching start and end lines
// with the task's outcome.
package runner

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/isabella232/dotnet-do/activity"
	"github.com/isabella232/dotnet-do/logging"
)

// Task is one command to execute.
type Task struct {
	// Name is the human-readable description shown on the start/stop lines.
	Name string

	// Category labels the task's log lines, e.g. "BUILD" or "TASK".
	Category string

	// Command is the executable to run, with Args as its arguments.
	Command string
	Args    []string

	// Dir is the working directory; empty means the current directory.
	Dir string

	// Timeout bounds the task's runtime when positive.
	Timeout time.Duration
}

// Runner executes tasks sequentially, logging through the provider's
// category loggers.
type Runner struct {
	provider *logging.Provider
}

// New creates a Runner that logs through provider.
func New(provider *logging.Provider) *Runner {
	return &Runner{provider: provider}
}

// Run executes the tasks in order, stopping at the first failure. The
// context cancels any in-flight command.
func (r *Runner) Run(ctx context.Context, tasks []Task) error {
	for _, task := range tasks {
		if err := r.runTask(ctx, task); err != nil {
			return fmt.Errorf("task %q: %w", task.Name, err)
		}
	}
	return nil
}

func (r *Runner) runTask(ctx context.Context, task Task) error {
	log := r.provider.Logger(task.Category)
	act := activity.New(task.Category, task.Name)
	scope := log.BeginActivity(act)
	defer scope.Close()

	if task.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, task.Timeout)
		defer cancel()
	}

	started := time.Now()
	cmd := exec.CommandContext(ctx, task.Command, task.Args...)
	cmd.Dir = task.Dir

	output, err := cmd.CombinedOutput()
	if text := strings.TrimRight(string(output), "\r\n"); text != "" {
		log.Infof("%s", text)
	}
	if err != nil {
		act.Fail(err.Error())
		return err
	}
	act.Complete(fmt.Sprintf("(%s)", time.Since(started).Round(10*time.Millisecond)))
	return nil
}
