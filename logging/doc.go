// Package logging renders hierarchical activity start/stop events and
// leveled log messages to the terminal, stamping every line with the time
// elapsed since the process first logged.
//
// A Provider hands out one Logger per category and shares a single elapsed
// clock across all of them, so timestamps from different categories line up:
//
//	provider := logging.NewProvider(filter)
//	log := provider.Logger("BUILD")
//
//	act := activity.New("BUILD", "compile")
//	scope := log.BeginActivity(act)
//	defer scope.Close()
//
//	log.Infof("restoring packages")
//	act.Complete("")
//
// Each rendered line has a fixed layout: a 9-wide category column with a
// scope marker (">" opening, "<" closing), the elapsed time, a 4-wide
// centered status column, and the message text:
//
//	[BUILD    >] [00:00:01.25] [    ] compile
//	[BUILD    <] [00:00:04.80] [ OK ] compile
//
// How colored text reaches the screen is the console package's problem; a
// Logger owns exactly one console backend, selected at construction.
package logging
