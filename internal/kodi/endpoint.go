package kodi

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

// Endpoint описывает адрес и учётные данные удалённого сервера Kodi.
// Заполняется один раз при старте и не меняется до конца работы процесса.
type Endpoint struct {
	BaseURL      string
	Port         string
	ResourcePath string
	Username     string
	Password     string
}

// URL собирает адрес вида <BaseURL>:<Port>/<ResourcePath>.
// BaseURL содержит только схему и хост, допускается только https.
func (e Endpoint) URL() (string, error) {
	if e.BaseURL == "" {
		return "", fmt.Errorf("%w: empty base url", ErrMalformedEndpoint)
	}

	u, err := url.Parse(e.BaseURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedEndpoint, err)
	}
	if u.Scheme != "https" {
		return "", fmt.Errorf("%w: scheme %q is not https", ErrMalformedEndpoint, u.Scheme)
	}
	if u.Hostname() == "" {
		return "", fmt.Errorf("%w: missing host", ErrMalformedEndpoint)
	}
	if u.Port() != "" {
		return "", fmt.Errorf("%w: port belongs in Port, not in base url", ErrMalformedEndpoint)
	}
	if strings.Trim(u.Path, "/") != "" || u.RawQuery != "" || u.Fragment != "" || u.User != nil {
		return "", fmt.Errorf("%w: base url must hold only scheme and host", ErrMalformedEndpoint)
	}

	if e.Port != "" {
		port, err := strconv.Atoi(e.Port)
		if err != nil || port < 1 || port > 65535 {
			return "", fmt.Errorf("%w: invalid port %q", ErrMalformedEndpoint, e.Port)
		}
		u.Host = net.JoinHostPort(u.Hostname(), e.Port)
	}
	u.Path = "/" + strings.TrimLeft(e.ResourcePath, "/")
	u.RawPath = ""

	return u.String(), nil
}

// Validate проверяет, что из настроек получается корректный адрес.
func (e Endpoint) Validate() error {
	_, err := e.URL()
	return err
}
