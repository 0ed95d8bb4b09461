package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"

	"github.com/ChrisLebbano/embermud/internal/session"
)

type SessionConfig struct {
	GracePeriod string `json:"grace_period"`
}

func (c *SessionConfig) validate() error {
	el := errors.NewErrorList()

	if c.GracePeriod != "" {
		d, err := time.ParseDuration(c.GracePeriod)
		if err != nil {
			el.Add(fmt.Errorf("parsing grace_period: %w", err))
		} else if d <= 0 {
			el.Add(fmt.Errorf("grace_period must be positive"))
		}
	}

	return el.Err()
}

func (c *SessionConfig) Options() []session.ManagerOpt {
	var opts []session.ManagerOpt
	if c.GracePeriod != "" {
		d, err := time.ParseDuration(c.GracePeriod)
		if err == nil {
			opts = append(opts, session.WithGracePeriod(d))
		}
	}
	return opts
}
