package skill

// Kind определяет, завершает ли ответ диалог.
type Kind int

const (
	// KindTell завершает диалог.
	KindTell Kind = iota
	// KindAsk ждёт следующей реплики пользователя.
	KindAsk
)

func (k Kind) String() string {
	if k == KindAsk {
		return "ask"
	}
	return "tell"
}

// Response содержит озвучиваемый текст и карточку для экрана.
type Response struct {
	Kind      Kind
	Speech    string
	CardTitle string
	CardBody  string
	// Reprompt заполняется только для KindAsk.
	Reprompt string
}

func (t template) response() *Response {
	r := &Response{
		Kind:      t.kind,
		Speech:    t.speech,
		CardTitle: t.title,
		CardBody:  t.speech,
	}
	if t.kind == KindAsk {
		r.Reprompt = t.speech
	}
	return r
}
