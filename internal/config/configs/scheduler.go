package configs

// Scheduler configures the periodic analysis job. When Enabled, the
// service re-runs the budget analysis on the given cron spec and logs
// the resulting summary. Budget is the total amount the job reallocates
// on each run.
type Scheduler struct {
	Enabled bool `env:"ENABLED" envDefault:"false"`
	// Spec is a standard 5-field cron expression. Defaults to every
	// Monday at 08:00.
	Spec   string  `env:"SPEC" envDefault:"0 8 * * 1"`
	Budget float64 `env:"BUDGET" envDefault:"100000"`
}
