package skill

//go:generate mockgen -destination=mock/observer.go -package=mock bitbucket.org/sotavant/kodi-skill/internal/skill Observer

import (
	"context"
	"fmt"

	"bitbucket.org/sotavant/kodi-skill/internal/kodi"
)

// EventType задаёт тип события голосовой платформы.
type EventType int

const (
	EventSessionStarted EventType = iota + 1
	EventLaunch
	EventIntent
	EventSessionEnded
)

func (t EventType) String() string {
	switch t {
	case EventSessionStarted:
		return "session_started"
	case EventLaunch:
		return "launch"
	case EventIntent:
		return "intent"
	case EventSessionEnded:
		return "session_ended"
	}
	return "unknown"
}

// Event описывает одно входящее событие. RequestID и SessionID нужны только для логов.
// IntentName пустой, если объект намерения в запросе отсутствует.
type Event struct {
	Type       EventType
	RequestID  string
	SessionID  string
	IntentName string
}

// Router сопоставляет событию ответ и, для команд воспроизведения,
// отправляет команду на Kodi. Состояния между запросами не хранит.
type Router struct {
	commander kodi.Commander
	observer  Observer
}

func NewRouter(c kodi.Commander, o Observer) *Router {
	return &Router{commander: c, observer: o}
}

// Handle обрабатывает событие. Для SessionStarted и SessionEnded ответа нет:
// возвращается nil без ошибки.
func (r *Router) Handle(ctx context.Context, ev Event) (*Response, error) {
	switch ev.Type {
	case EventSessionStarted:
		r.observer.SessionStarted(ev)
		return nil, nil
	case EventSessionEnded:
		r.observer.SessionEnded(ev)
		return nil, nil
	case EventLaunch:
		r.observer.Launched(ev)
		return welcomeTemplate.response(), nil
	case EventIntent:
		return r.handleIntent(ctx, ev)
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownEvent, ev.Type)
}

func (r *Router) handleIntent(ctx context.Context, ev Event) (*Response, error) {
	intent, err := ParseIntent(ev.IntentName)
	if err != nil {
		r.observer.IntentRejected(ev, err)
		return nil, err
	}
	r.observer.IntentReceived(ev, intent)

	t := intentTemplates[intent]
	if t.command != 0 {
		r.send(ctx, ev, t.command)
	}
	return t.response(), nil
}

// send отправляет команду. Ошибка пользователю не показывается:
// голосовой ответ остаётся успешным, а сбой уходит в наблюдатель.
func (r *Router) send(ctx context.Context, ev Event, cmd kodi.Command) {
	res, err := r.commander.Send(ctx, cmd)
	if err != nil {
		r.observer.CommandFailed(ev, cmd, res, err)
		return
	}
	r.observer.CommandSent(ev, cmd, res)
}
