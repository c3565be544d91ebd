package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"bitbucket.org/sotavant/kodi-skill/internal/logger"
	"bitbucket.org/sotavant/kodi-skill/internal/models"
	"bitbucket.org/sotavant/kodi-skill/internal/skill"
)

type app struct {
	router *skill.Router
	appID  string
}

func newApp(r *skill.Router, appID string) *app {
	return &app{router: r, appID: appID}
}

func (a *app) webhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		logger.Log.Debug("got request with bad method", zap.String("method", r.Method))

		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	logger.Log.Debug("decoding request")
	var req models.Request
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		logger.Log.Debug("cannot decode request JSON body", zap.Error(err))

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if a.appID != "" && req.Session.Application.ApplicationID != a.appID {
		logger.Log.Warn("unexpected application id",
			zap.String("application_id", req.Session.Application.ApplicationID))
		w.WriteHeader(http.StatusForbidden)
		return
	}

	ev := skill.Event{
		RequestID: req.Request.RequestID,
		SessionID: req.Session.SessionID,
	}

	switch req.Request.Type {
	case models.TypeLaunchRequest:
		ev.Type = skill.EventLaunch
	case models.TypeIntentRequest:
		ev.Type = skill.EventIntent
		if req.Request.Intent != nil {
			ev.IntentName = req.Request.Intent.Name
		}
	case models.TypeSessionEndedRequest:
		ev.Type = skill.EventSessionEnded
	default:
		logger.Log.Debug("unsupported request type", zap.String("type", req.Request.Type))
		w.WriteHeader(http.StatusUnprocessableEntity)
		return
	}

	// новая сессия открывается перед первым запуском или намерением
	if req.Session.New && ev.Type != skill.EventSessionEnded {
		started := ev
		started.Type = skill.EventSessionStarted
		if _, err := a.router.Handle(ctx, started); err != nil {
			logger.Log.Debug("cannot start session", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}

	out, err := a.router.Handle(ctx, ev)
	if err != nil {
		if errors.Is(err, skill.ErrInvalidIntent) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		logger.Log.Debug("cannot handle request", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	resp := models.Response{
		Version:  models.Version,
		Response: responsePayload(out),
	}

	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	if err := enc.Encode(resp); err != nil {
		logger.Log.Debug("error encoding response", zap.Error(err))
		return
	}
	logger.Log.Debug("sending HTTP 200 response")
}

// responsePayload переводит ответ навыка в формат платформы.
// Для событий без ответа возвращает nil.
func responsePayload(r *skill.Response) *models.ResponsePayload {
	if r == nil {
		return nil
	}

	speech := models.OutputSpeech{Type: models.SpeechPlainText, Text: r.Speech}
	p := &models.ResponsePayload{
		OutputSpeech: &speech,
		Card: &models.Card{
			Type:    models.CardSimple,
			Title:   r.CardTitle,
			Content: r.CardBody,
		},
		ShouldEndSession: r.Kind == skill.KindTell,
	}

	if r.Kind == skill.KindAsk {
		p.Reprompt = &models.Reprompt{
			OutputSpeech: models.OutputSpeech{Type: models.SpeechPlainText, Text: r.Reprompt},
		}
	}
	return p
}
