package skill

import (
	"context"
	"errors"
	"net"

	"go.uber.org/zap"

	"bitbucket.org/sotavant/kodi-skill/internal/kodi"
	"bitbucket.org/sotavant/kodi-skill/internal/metrics"
)

// Observer получает все наблюдаемые события маршрутизатора.
type Observer interface {
	SessionStarted(ev Event)
	SessionEnded(ev Event)
	Launched(ev Event)
	IntentReceived(ev Event, intent Intent)
	IntentRejected(ev Event, err error)
	CommandSent(ev Event, cmd kodi.Command, res kodi.Result)
	CommandFailed(ev Event, cmd kodi.Command, res kodi.Result, err error)
}

type observer struct {
	log *zap.Logger
}

// NewObserver пишет события в zap и считает их в prometheus.
func NewObserver(log *zap.Logger) Observer {
	return &observer{log: log}
}

func eventFields(ev Event) []zap.Field {
	return []zap.Field{
		zap.String("request_id", ev.RequestID),
		zap.String("session_id", ev.SessionID),
	}
}

func (o *observer) SessionStarted(ev Event) {
	metrics.SkillRequests.WithLabelValues(ev.Type.String()).Inc()
	o.log.Info("session started", eventFields(ev)...)
}

func (o *observer) SessionEnded(ev Event) {
	metrics.SkillRequests.WithLabelValues(ev.Type.String()).Inc()
	o.log.Info("session ended", eventFields(ev)...)
}

func (o *observer) Launched(ev Event) {
	metrics.SkillRequests.WithLabelValues(ev.Type.String()).Inc()
	o.log.Info("launch", eventFields(ev)...)
}

func (o *observer) IntentReceived(ev Event, intent Intent) {
	metrics.SkillRequests.WithLabelValues(ev.Type.String()).Inc()
	o.log.Info("intent", append(eventFields(ev), zap.Stringer("intent", intent))...)
}

func (o *observer) IntentRejected(ev Event, err error) {
	metrics.SkillRequests.WithLabelValues(ev.Type.String()).Inc()
	metrics.SkillIntentsRejected.Inc()
	o.log.Warn("intent rejected", append(eventFields(ev),
		zap.String("intent", ev.IntentName),
		zap.Error(err),
	)...)
}

func (o *observer) CommandSent(ev Event, cmd kodi.Command, res kodi.Result) {
	metrics.KodiCommands.WithLabelValues(cmd.String(), metrics.OutcomeOK).Inc()
	metrics.KodiCommandDuration.WithLabelValues(cmd.String()).Observe(res.Duration.Seconds())
	o.log.Info("kodi command sent", append(eventFields(ev),
		zap.Stringer("command", cmd),
		zap.Int("status", res.StatusCode),
		zap.String("body", res.Body),
	)...)
}

func (o *observer) CommandFailed(ev Event, cmd kodi.Command, res kodi.Result, err error) {
	outcome := commandOutcome(err)
	metrics.KodiCommands.WithLabelValues(cmd.String(), outcome).Inc()
	if res.Duration > 0 {
		metrics.KodiCommandDuration.WithLabelValues(cmd.String()).Observe(res.Duration.Seconds())
	}
	o.log.Error("kodi command failed", append(eventFields(ev),
		zap.Stringer("command", cmd),
		zap.String("outcome", outcome),
		zap.Int("status", res.StatusCode),
		zap.Error(err),
	)...)
}

func commandOutcome(err error) string {
	switch {
	case errors.Is(err, kodi.ErrRemoteRejected):
		return metrics.OutcomeRejected
	case errors.Is(err, kodi.ErrTransport) && isTimeout(err):
		return metrics.OutcomeTimeout
	case errors.Is(err, kodi.ErrTransport):
		return metrics.OutcomeTransport
	case errors.Is(err, kodi.ErrMalformedEndpoint):
		return metrics.OutcomeMalformed
	}
	return metrics.OutcomeError
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
