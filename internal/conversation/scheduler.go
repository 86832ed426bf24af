package conversation

import (
	"context"
	"time"
)

// Scheduler supplies the simulated thinking time between a user event and
// the bot's reply.
type Scheduler interface {
	Wait(ctx context.Context, d time.Duration) error
}

type SchedulerFunc func(ctx context.Context, d time.Duration) error

func (f SchedulerFunc) Wait(ctx context.Context, d time.Duration) error { return f(ctx, d) }

// NoDelay returns immediately. Used by tests and by job workers.
type NoDelay struct{}

func (NoDelay) Wait(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

// Clock sleeps for the requested duration, scaled by Factor when set.
type Clock struct {
	Factor float64
}

func (c Clock) Wait(ctx context.Context, d time.Duration) error {
	if c.Factor > 0 {
		d = time.Duration(float64(d) * c.Factor)
	}
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Delays are the simulated latencies of each step.
type Delays struct {
	Thinking         time.Duration `mapstructure:"thinking"`
	FollowUp         time.Duration `mapstructure:"follow_up"`
	CreditCheck      time.Duration `mapstructure:"credit_check"`
	Sanction         time.Duration `mapstructure:"sanction"`
	DocumentVerify   time.Duration `mapstructure:"document_verify"`
	DocumentToCredit time.Duration `mapstructure:"document_to_credit"`
}

func DefaultDelays() Delays {
	return Delays{
		Thinking:         1000 * time.Millisecond,
		FollowUp:         2000 * time.Millisecond,
		CreditCheck:      3000 * time.Millisecond,
		Sanction:         3000 * time.Millisecond,
		DocumentVerify:   2500 * time.Millisecond,
		DocumentToCredit: 2000 * time.Millisecond,
	}
}
