package kodi

//go:generate mockgen -destination=mock/commander.go -package=mock bitbucket.org/sotavant/kodi-skill/internal/kodi Commander

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const DefaultTimeout = 5 * time.Second

var (
	ErrMalformedEndpoint = errors.New("malformed kodi endpoint")
	ErrTransport         = errors.New("kodi transport error")
	ErrRemoteRejected    = errors.New("kodi rejected command")
	ErrUnknownCommand    = errors.New("unknown kodi command")
)

// Commander отправляет команду на медиасервер.
type Commander interface {
	Send(ctx context.Context, cmd Command) (Result, error)
}

// Result описывает итог одного обращения к серверу.
// Body заполнен только при ответе 200.
type Result struct {
	StatusCode int
	Body       string
	Duration   time.Duration
}

type Client struct {
	endpoint Endpoint
	http     *resty.Client
	log      *zap.Logger
}

type Option func(*options)

type options struct {
	timeout    time.Duration
	httpClient *http.Client
	log        *zap.Logger
}

// WithTimeout задаёт предельное время запроса. Неположительные значения
// игнорируются: запрос к Kodi всегда ограничен по времени.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithHTTPClient подменяет транспорт, например на клиент httptest-сервера.
// Клиент копируется, таймаут выставляется только на копии.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.log = l }
}

func NewClient(e Endpoint, opts ...Option) *Client {
	o := options{
		timeout: DefaultTimeout,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	var rc *resty.Client
	if o.httpClient != nil {
		hc := *o.httpClient
		rc = resty.NewWithClient(&hc)
	} else {
		rc = resty.New()
	}
	rc.SetTimeout(o.timeout)

	return &Client{
		endpoint: e,
		http:     rc,
		log:      o.log,
	}
}

// Send выполняет один синхронный POST с командой.
func (c *Client) Send(ctx context.Context, cmd Command) (Result, error) {
	keyword, ok := cmd.Keyword()
	if !ok {
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownCommand, cmd)
	}

	addr, err := c.endpoint.URL()
	if err != nil {
		return Result{}, err
	}

	body := c.formBody(keyword)
	c.log.Debug("sending kodi command",
		zap.String("url", addr),
		zap.String("command", keyword),
	)

	start := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetHeader("charset", "utf-8").
		SetContentLength(true).
		SetBody(body).
		Post(addr)
	elapsed := time.Since(start)
	if err != nil {
		return Result{Duration: elapsed}, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	res := Result{StatusCode: resp.StatusCode(), Duration: elapsed}
	c.log.Debug("kodi response", zap.Int("status", res.StatusCode))

	if res.StatusCode != http.StatusOK {
		c.log.Warn("kodi command failed",
			zap.String("command", keyword),
			zap.Int("status", res.StatusCode),
		)
		return res, fmt.Errorf("%w: status %d", ErrRemoteRejected, res.StatusCode)
	}

	res.Body = string(resp.Body())
	return res, nil
}

// formBody собирает тело запроса. Порядок параметров фиксирован,
// поэтому url.Values с сортировкой ключей не подходит.
func (c *Client) formBody(keyword string) string {
	return "u=" + url.QueryEscape(c.endpoint.Username) +
		"&p=" + url.QueryEscape(c.endpoint.Password) +
		"&args=" + url.QueryEscape(keyword)
}
