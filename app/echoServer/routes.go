package echoServer

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"locallibrary/app/echoServer/controller/auth"
	"locallibrary/app/echoServer/controller/author"
	"locallibrary/app/echoServer/controller/book"
	"locallibrary/app/echoServer/controller/bookinstance"
	"locallibrary/app/echoServer/controller/catalog"
	"locallibrary/app/echoServer/controller/genre"
	authsvc "locallibrary/service/auth"
)

type C struct {
	Auth         *auth.Controller
	Catalog      *catalog.Controller
	Book         *book.Controller
	Author       *author.Controller
	Genre        *genre.Controller
	BookInstance *bookinstance.Controller

	AuthSvc       authsvc.Service
	SessionSecret string
}

func Register(e *echo.Echo, c C) {
	// every request gets an Identity; anonymous when the cookie is absent,
	// invalid, or names a dead session
	e.Use(SessionToken(c.SessionSecret), Identify(c.AuthSvc))

	e.GET("/", func(ctx echo.Context) error {
		return ctx.Redirect(http.StatusFound, "/catalog")
	})

	// Public
	anon := AnonymousOnly()
	e.GET("/signup", c.Auth.SignupForm, anon)
	e.POST("/signup", c.Auth.Signup, anon)
	e.GET("/login", c.Auth.LoginForm, anon)
	e.POST("/login", c.Auth.Login, anon)

	e.GET("/logout", c.Auth.Logout)

	// Auth
	cat := e.Group("/catalog", RequireAuth())
	cat.GET("", c.Catalog.Index)
	cat.GET("/", c.Catalog.Index)

	// Books
	cat.GET("/books", c.Book.List)
	cat.GET("/book/create", c.Book.CreateForm)
	cat.POST("/book/create", c.Book.Create)
	cat.GET("/book/:id/delete", c.Book.DeleteForm)
	cat.POST("/book/:id/delete", c.Book.Delete)
	cat.GET("/book/:id/update", c.Book.UpdateForm)
	cat.POST("/book/:id/update", c.Book.Update)
	cat.GET("/book/:id", c.Book.Detail)

	// Authors
	cat.GET("/authors", c.Author.List)
	cat.GET("/author/create", c.Author.CreateForm)
	cat.POST("/author/create", c.Author.Create)
	cat.GET("/author/:id/delete", c.Author.DeleteForm)
	cat.POST("/author/:id/delete", c.Author.Delete)
	cat.GET("/author/:id/update", c.Author.Update)
	cat.POST("/author/:id/update", c.Author.Update)
	cat.GET("/author/:id", c.Author.Detail)

	// Genres
	cat.GET("/genres", c.Genre.List)
	cat.GET("/genre/create", c.Genre.CreateForm)
	cat.POST("/genre/create", c.Genre.Create)
	cat.GET("/genre/:id/delete", c.Genre.DeleteForm)
	cat.POST("/genre/:id/delete", c.Genre.Delete)
	cat.GET("/genre/:id/update", c.Genre.Update)
	cat.POST("/genre/:id/update", c.Genre.Update)
	cat.GET("/genre/:id", c.Genre.Detail)

	// Copies
	cat.GET("/bookinstances", c.BookInstance.List)
	cat.GET("/bookinstance/create", c.BookInstance.CreateForm)
	cat.POST("/bookinstance/create", c.BookInstance.Create)
	cat.GET("/bookinstance/:id/delete", c.BookInstance.DeleteForm)
	cat.POST("/bookinstance/:id/delete", c.BookInstance.Delete)
	cat.GET("/bookinstance/:id/update", c.BookInstance.UpdateForm)
	cat.POST("/bookinstance/:id/update", c.BookInstance.Update)
	cat.GET("/bookinstance/:id", c.BookInstance.Detail)
}
