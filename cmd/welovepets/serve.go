package main

import (
	"context"
	"errors"
	"net/http"

	"welovepets/internal/adapters/storage"
	"welovepets/internal/domain/pets"
	"welovepets/internal/platform/render"
	"welovepets/internal/router"
	"welovepets/internal/web"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, log, err := setup()
		if err != nil {
			return err
		}

		repo, closer, err := storage.Open(ctx, cfg.Store)
		if err != nil {
			return err
		}
		defer func() {
			if err := closer.Close(); err != nil {
				log.Warn("store close failed", map[string]any{"err": err.Error()})
			}
		}()

		rd, err := newRenderer(cfg.Render.Dir)
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:         cfg.Server.Addr,
			Handler:      router.NewRouter(router.Options{Pets: repo, Renderer: rd, Logger: log}),
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		}

		errCh := make(chan error, 1)
		go func() {
			log.Info("starting server", map[string]any{
				"addr":  cfg.Server.Addr,
				"store": cfg.Store.Driver,
			})
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		log.Info("shutting down", nil)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-errCh
	},
}

// newRenderer carga los templates y exige las páginas que el sitio sirve.
func newRenderer(dir string) (*render.Renderer, error) {
	rd, err := render.New(render.Options{Dir: dir})
	if err != nil {
		return nil, err
	}

	if err := rd.Require(
		pets.TemplateHome,
		pets.TemplateDetail,
		web.ErrorTemplate(http.StatusNotFound),
		web.ErrorTemplate(http.StatusInternalServerError),
	); err != nil {
		return nil, err
	}
	return rd, nil
}
