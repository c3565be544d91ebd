package kodi

// Command описывает команду управления воспроизведением на сервере Kodi.
type Command int

const (
	CommandPlay Command = iota + 1
	CommandPause
	CommandStop
)

var keywords = map[Command]string{
	CommandPlay:  "play",
	CommandPause: "pause",
	CommandStop:  "stop",
}

// Keyword возвращает ключевое слово, которое уходит на сервер в параметре args.
// Для значений вне перечисления возвращает false.
func (c Command) Keyword() (string, bool) {
	kw, ok := keywords[c]
	return kw, ok
}

func (c Command) String() string {
	if kw, ok := keywords[c]; ok {
		return kw
	}
	return "unknown"
}
