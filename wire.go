package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"locallibrary/app/echoServer"
	authctrl "locallibrary/app/echoServer/controller/auth"
	authorctrl "locallibrary/app/echoServer/controller/author"
	bookctrl "locallibrary/app/echoServer/controller/book"
	instancectrl "locallibrary/app/echoServer/controller/bookinstance"
	catalogctrl "locallibrary/app/echoServer/controller/catalog"
	genrectrl "locallibrary/app/echoServer/controller/genre"
	"locallibrary/app/echoServer/validation"
	"locallibrary/config"
	authrepo "locallibrary/repository/auth"
	authorrepo "locallibrary/repository/author"
	bookrepo "locallibrary/repository/book"
	instancerepo "locallibrary/repository/bookinstance"
	genrerepo "locallibrary/repository/genre"
	sessionrepo "locallibrary/repository/session"
	authsvc "locallibrary/service/auth"
	authorsvc "locallibrary/service/author"
	booksvc "locallibrary/service/book"
	instancesvc "locallibrary/service/bookinstance"
	catalogsvc "locallibrary/service/catalog"
	genresvc "locallibrary/service/genre"
	"locallibrary/util/database"
	"locallibrary/util/memstore"
)

// repos is one Record Store, backed by MongoDB or memory.
type repos struct {
	users     authrepo.Repo
	sessions  sessionrepo.Repo
	authors   authorrepo.Repo
	genres    genrerepo.Repo
	books     bookrepo.Repo
	instances instancerepo.Repo

	close func(context.Context) error
}

func openRepos(ctx context.Context, cfg config.App, log *slog.Logger) (*repos, error) {
	if cfg.StoreDriver == "memory" {
		log.Warn("using in-memory store; data is lost on exit")
		st := memstore.New()
		return &repos{
			users:     st.Users,
			sessions:  st.Sessions,
			authors:   st.Authors,
			genres:    st.Genres,
			books:     st.Books,
			instances: st.Instances,
			close:     func(context.Context) error { return nil },
		}, nil
	}

	db, err := database.New(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := database.Migrate(ctx, db); err != nil {
		_ = db.Close(context.Background())
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &repos{
		users:     authrepo.New(db),
		sessions:  sessionrepo.New(db),
		authors:   authorrepo.New(db),
		genres:    genrerepo.New(db),
		books:     bookrepo.New(db),
		instances: instancerepo.New(db),
		close:     db.Close,
	}, nil
}

type services struct {
	auth      authsvc.Service
	catalog   catalogsvc.Service
	books     booksvc.Service
	authors   authorsvc.Service
	genres    genresvc.Service
	instances instancesvc.Service
}

func newServices(r *repos, cfg config.App) services {
	return services{
		auth:      authsvc.New(r.users, r.sessions, cfg.SessionSecret, cfg.SessionTTL),
		catalog:   catalogsvc.New(r.books, r.instances, r.authors, r.genres),
		books:     booksvc.New(r.books, r.authors, r.genres, r.instances),
		authors:   authorsvc.New(r.authors, r.books),
		genres:    genresvc.New(r.genres, r.books),
		instances: instancesvc.New(r.instances, r.books),
	}
}

func newServer(cfg config.App, log *slog.Logger, s services) (*echo.Echo, error) {
	renderer, err := echoServer.NewRenderer()
	if err != nil {
		return nil, err
	}

	v := validation.NewValidate()

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Validator = validation.New()
	e.HTTPErrorHandler = echoServer.ErrorHandler(log, !cfg.IsProduction())
	e.Server.ReadHeaderTimeout = 10 * time.Second

	echoServer.RegisterMiddlewares(e)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy",
		})
	})

	echoServer.Register(e, echoServer.C{
		Auth:         &authctrl.Controller{Svc: s.auth, V: v, Log: log, TTL: cfg.SessionTTL, Secure: cfg.CookieSecure},
		Catalog:      &catalogctrl.Controller{Svc: s.catalog, Log: log},
		Book:         &bookctrl.Controller{Svc: s.books, V: v, Log: log},
		Author:       &authorctrl.Controller{Svc: s.authors, V: v, Log: log},
		Genre:        &genrectrl.Controller{Svc: s.genres, V: v, Log: log},
		BookInstance: &instancectrl.Controller{Svc: s.instances, V: v, Log: log},

		AuthSvc:       s.auth,
		SessionSecret: cfg.SessionSecret,
	})
	return e, nil
}
