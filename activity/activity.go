// Package activity defines the record describing one nested unit of work
// whose start and end are both logged.
//
// An Activity is created by the caller before entering a scope, handed to
// the logger's BeginActivity, and mutated by the caller before the scope
// closes:
//
//	act := activity.New("BUILD", "compile")
//	scope := log.BeginActivity(act)
//	defer scope.Close()
//
//	if err := compile(); err != nil {
//	    act.Fail(err.Error())
//	    return err
//	}
//	act.Complete("")
//
// The logger reads the record once when the scope closes and never retains
// it.
package activity

// Activity describes a nested unit of work being logged.
type Activity struct {
	// Category is the short label identifying the kind of work, e.g.
	// "BUILD" or "TASK". It fills the fixed-width category column.
	Category string

	// Name is the human-readable description of the work.
	Name string

	// Success is the outcome, set by the caller before the scope closes.
	Success bool

	// Conclusion is optional trailing detail appended to the close line.
	// Empty means no detail.
	Conclusion string
}

// New creates an Activity for the given category and name. The outcome
// starts as failed; callers mark success explicitly.
func New(category, name string) *Activity {
	return &Activity{Category: category, Name: name}
}

// Complete marks the activity successful with an optional conclusion.
func (a *Activity) Complete(conclusion string) {
	a.Success = true
	a.Conclusion = conclusion
}

// Fail marks the activity failed with an optional conclusion.
func (a *Activity) Fail(conclusion string) {
	a.Success = false
	a.Conclusion = conclusion
}
