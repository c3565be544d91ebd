package main

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"bitbucket.org/sotavant/kodi-skill/internal/kodi"
	"bitbucket.org/sotavant/kodi-skill/internal/logger"
	"bitbucket.org/sotavant/kodi-skill/internal/skill"
)

func main() {
	if err := parseFlags(); err != nil {
		panic(err)
	}
	if err := run(); err != nil {
		panic(err)
	}
}

func gzipMiddleware(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ow := w

		acceptEncoding := r.Header.Get("Accept-Encoding")
		supportGzip := strings.Contains(acceptEncoding, "gzip")

		if supportGzip {
			cw := newCompressWriter(w)
			ow = cw
			defer func(cw *compressWriter) {
				if err := cw.Close(); err != nil {
					logger.Log.Debug("compressWriterError", zap.Error(err))
				}
			}(cw)
		}

		contentEncoding := r.Header.Get("Content-Encoding")

		sendsGzip := strings.Contains(contentEncoding, "gzip")
		if sendsGzip {
			cr, err := newCompressReader(r.Body)
			if err != nil {
				logger.Log.Debug("newCompressReaderError", zap.Error(err))
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			r.Body = cr
			defer func(cr *compressReader) {
				if err := cr.Close(); err != nil {
					logger.Log.Debug("closeCompressReaderError", zap.Error(err))
				}
			}(cr)
		}

		h.ServeHTTP(ow, r)
	}
}

func run() error {
	if err := logger.Initialize(flagLogLevel); err != nil {
		return err
	}

	if err := checkConfig(); err != nil {
		return err
	}
	endpoint := kodiEndpoint()

	client := kodi.NewClient(endpoint,
		kodi.WithTimeout(flagKodiTimeout),
		kodi.WithLogger(logger.Log),
	)
	appInstance := newApp(skill.NewRouter(client, skill.NewObserver(logger.Log)), flagAppID)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/", gzipMiddleware(appInstance.webhook))

	logger.Log.Info("Running server",
		zap.String("address", flagRunAddr),
		zap.String("kodi", endpoint.BaseURL),
		zap.Duration("kodi_timeout", flagKodiTimeout),
	)

	return http.ListenAndServe(flagRunAddr, logger.RequestLogger(mux))
}
