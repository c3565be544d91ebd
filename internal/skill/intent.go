package skill

import (
	"errors"
	"fmt"

	"bitbucket.org/sotavant/kodi-skill/internal/kodi"
)

var (
	ErrInvalidIntent = errors.New("invalid intent")
	ErrUnknownEvent  = errors.New("unknown event type")
)

// Intent описывает поддерживаемое навыком намерение пользователя.
type Intent int

const (
	IntentPlay Intent = iota
	IntentPause
	IntentStop
	IntentHelp

	intentCount
)

var intentNames = [intentCount]string{
	IntentPlay:  "PlayIntent",
	IntentPause: "PauseIntent",
	IntentStop:  "StopIntent",
	IntentHelp:  "AMAZON.HelpIntent",
}

// ParseIntent сопоставляет имя намерения точным сравнением строк.
func ParseIntent(name string) (Intent, error) {
	for i, n := range intentNames {
		if n == name {
			return Intent(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidIntent, name)
}

func (i Intent) String() string {
	if i < 0 || i >= intentCount {
		return "unknown"
	}
	return intentNames[i]
}

// template описывает ответ на намерение и команду, которую оно отправляет.
type template struct {
	kind    Kind
	title   string
	speech  string
	command kodi.Command
}

var intentTemplates = [intentCount]template{
	IntentPlay: {
		kind:    KindTell,
		title:   "Kodi Play",
		speech:  "Starting playback.",
		command: kodi.CommandPlay,
	},
	IntentPause: {
		kind:    KindTell,
		title:   "Kodi Pause",
		speech:  "Pausing playback.",
		command: kodi.CommandPause,
	},
	IntentStop: {
		kind:    KindTell,
		title:   "Kodi Stop",
		speech:  "Stopping playback",
		command: kodi.CommandStop,
	},
	IntentHelp: {
		kind:   KindAsk,
		title:  "Kodi",
		speech: "You can control playback to kodi. Say play, pause, or stop.",
	},
}

var welcomeTemplate = template{
	kind:   KindAsk,
	title:  "Alexa Kodi Voice Control",
	speech: "Welcome to the Alexa Skills Kodi Control",
}
