package echoServer

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"locallibrary/app/echoServer/controller/auth"
	"locallibrary/app/echoServer/controller/author"
	"locallibrary/app/echoServer/controller/book"
	"locallibrary/app/echoServer/controller/bookinstance"
	"locallibrary/app/echoServer/controller/catalog"
	"locallibrary/app/echoServer/controller/genre"
	"locallibrary/app/echoServer/jwtx"
	"locallibrary/app/echoServer/validation"
	"locallibrary/model"
	authsvc "locallibrary/service/auth"
	authorsvc "locallibrary/service/author"
	booksvc "locallibrary/service/book"
	instancesvc "locallibrary/service/bookinstance"
	catalogsvc "locallibrary/service/catalog"
	genresvc "locallibrary/service/genre"
	"locallibrary/util/hash"
	"locallibrary/util/memstore"
)

func init() { hash.Cost = bcrypt.MinCost }

const testSecret = "test-secret"

// recorder stands in for the HTML renderer and remembers the last view.
type recorder struct {
	name string
	data echo.Map
}

func (r *recorder) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	r.name = name
	r.data, _ = data.(echo.Map)
	_, err := io.WriteString(w, name)
	return err
}

// countingBooks counts every read that reaches the book store.
type countingBooks struct {
	*memstore.BookRepo
	reads int
}

func (b *countingBooks) List(ctx context.Context) ([]model.Book, error) {
	b.reads++
	return b.BookRepo.List(ctx)
}

func (b *countingBooks) ByID(ctx context.Context, id primitive.ObjectID) (*model.Book, error) {
	b.reads++
	return b.BookRepo.ByID(ctx, id)
}

type env struct {
	t     *testing.T
	e     *echo.Echo
	st    *memstore.Store
	view  *recorder
	books *countingBooks
}

func newEnv(t *testing.T) *env {
	t.Helper()
	st := memstore.New()
	books := &countingBooks{BookRepo: st.Books}
	view := &recorder{}
	v := validation.NewValidate()

	as := authsvc.New(st.Users, st.Sessions, testSecret, time.Hour)

	e := echo.New()
	e.Renderer = view
	e.Validator = validation.New()
	e.HTTPErrorHandler = ErrorHandler(nil, true)
	RegisterMiddlewares(e)
	Register(e, C{
		Auth:         &auth.Controller{Svc: as, V: v, TTL: time.Hour},
		Catalog:      &catalog.Controller{Svc: catalogsvc.New(books, st.Instances, st.Authors, st.Genres)},
		Book:         &book.Controller{Svc: booksvc.New(books, st.Authors, st.Genres, st.Instances), V: v},
		Author:       &author.Controller{Svc: authorsvc.New(st.Authors, books), V: v},
		Genre:        &genre.Controller{Svc: genresvc.New(st.Genres, books), V: v},
		BookInstance: &bookinstance.Controller{Svc: instancesvc.New(st.Instances, books)},

		AuthSvc:       as,
		SessionSecret: testSecret,
	})
	return &env{t: t, e: e, st: st, view: view, books: books}
}

func (en *env) do(method, target string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	en.t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	en.e.ServeHTTP(rec, req)
	return rec
}

func cookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

// signup registers a fresh user and returns its session cookie.
func (en *env) signup(email string) *http.Cookie {
	en.t.Helper()
	rec := en.do(http.MethodPost, "/signup", url.Values{"email": {email}, "password": {"hunter22"}})
	require.Equal(en.t, http.StatusFound, rec.Code)
	require.Equal(en.t, "/catalog", rec.Header().Get(echo.HeaderLocation))
	ck := cookie(rec, jwtx.SessionCookie)
	require.NotNil(en.t, ck)
	return ck
}

func location(rec *httptest.ResponseRecorder) string { return rec.Header().Get(echo.HeaderLocation) }

func TestRootRedirectsToCatalog(t *testing.T) {
	en := newEnv(t)
	rec := en.do(http.MethodGet, "/", nil)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/catalog", location(rec))
}

func TestAnonymousIsSentToLogin(t *testing.T) {
	en := newEnv(t)

	for _, p := range []string{"/catalog", "/catalog/books", "/catalog/book/create", "/catalog/genres"} {
		rec := en.do(http.MethodGet, p, nil)
		require.Equal(t, http.StatusFound, rec.Code, p)
		require.Equal(t, "/login", location(rec), p)
	}
	require.Zero(t, en.books.reads)
	require.Empty(t, en.view.name)
}

func TestForgedCookieIsAnonymous(t *testing.T) {
	en := newEnv(t)
	rec := en.do(http.MethodGet, "/catalog/books", nil, &http.Cookie{Name: jwtx.SessionCookie, Value: "not-a-jwt"})
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/login", location(rec))
	require.Zero(t, en.books.reads)
}

func TestSignupLoginLogout(t *testing.T) {
	en := newEnv(t)
	ck := en.signup("reader@example.com")

	rec := en.do(http.MethodGet, "/catalog", nil, ck)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "index", en.view.name)

	// signed in users skip the login form
	rec = en.do(http.MethodGet, "/login", nil, ck)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/catalog", location(rec))

	rec = en.do(http.MethodGet, "/logout", nil, ck)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/login", location(rec))
	require.Zero(t, en.st.Sessions.Len())

	// the old cookie now names a destroyed session
	rec = en.do(http.MethodGet, "/catalog/books", nil, ck)
	require.Equal(t, "/login", location(rec))

	rec = en.do(http.MethodPost, "/login", url.Values{"email": {"Reader@Example.com "}, "password": {"hunter22"}})
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/catalog", location(rec))
	require.NotNil(t, cookie(rec, jwtx.SessionCookie))
}

func TestSignupStoresHashNotPassword(t *testing.T) {
	en := newEnv(t)
	en.signup("a@example.com")
	en.signup("b@example.com")

	users := en.st.Users.All()
	require.Len(t, users, 2)
	require.NotEqual(t, "hunter22", users[0].PasswordHash)
	require.NotEqual(t, users[0].PasswordHash, users[1].PasswordHash)
}

func TestSignupDuplicateEmail(t *testing.T) {
	en := newEnv(t)
	en.signup("reader@example.com")

	rec := en.do(http.MethodPost, "/signup", url.Values{"email": {"reader@example.com"}, "password": {"another1"}})
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/signup", location(rec))
	flash := cookie(rec, "flash")
	require.NotNil(t, flash)

	rec = en.do(http.MethodGet, "/signup", nil, flash)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "signup", en.view.name)
	require.Equal(t, "That email is already taken.", en.view.data["Flash"])
	require.Len(t, en.st.Users.All(), 1)
}

func TestSignupInvalidForm(t *testing.T) {
	en := newEnv(t)
	rec := en.do(http.MethodPost, "/signup", url.Values{"email": {"not-an-email"}, "password": {"123"}})
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/signup", location(rec))
	require.Empty(t, en.st.Users.All())
}

func TestLoginFailuresLookAlike(t *testing.T) {
	en := newEnv(t)
	en.signup("reader@example.com")

	wrong := en.do(http.MethodPost, "/login", url.Values{"email": {"reader@example.com"}, "password": {"wrong-password"}})
	unknown := en.do(http.MethodPost, "/login", url.Values{"email": {"nobody@example.com"}, "password": {"wrong-password"}})

	require.Equal(t, http.StatusFound, wrong.Code)
	require.Equal(t, wrong.Code, unknown.Code)
	require.Equal(t, "/login", location(wrong))
	require.Equal(t, location(wrong), location(unknown))
	require.Equal(t, wrong.Header().Values("Set-Cookie"), unknown.Header().Values("Set-Cookie"))
	require.Equal(t, wrong.Body.String(), unknown.Body.String())
	require.Nil(t, cookie(wrong, jwtx.SessionCookie))
}

func TestFantasyDuneScenario(t *testing.T) {
	en := newEnv(t)
	ck := en.signup("reader@example.com")

	rec := en.do(http.MethodPost, "/catalog/genre/create", url.Values{"name": {"Fantasy"}}, ck)
	require.Equal(t, http.StatusFound, rec.Code)
	genreURL := location(rec)
	require.True(t, strings.HasPrefix(genreURL, "/catalog/genre/"))

	// find-or-create: same name, same record
	rec = en.do(http.MethodPost, "/catalog/genre/create", url.Values{"name": {"Fantasy"}}, ck)
	require.Equal(t, genreURL, location(rec))
	n, err := en.st.Genres.Count(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	a := model.Author{FirstName: "Frank", FamilyName: "Herbert"}
	require.NoError(t, en.st.Authors.Create(context.Background(), &a))

	genreID := strings.TrimPrefix(genreURL, "/catalog/genre/")
	rec = en.do(http.MethodPost, "/catalog/book/create", url.Values{
		"title":   {"Dune"},
		"author":  {a.ID.Hex()},
		"summary": {"Spice and sand."},
		"isbn":    {"0001"},
		"genre":   {genreID},
	}, ck)
	require.Equal(t, http.StatusFound, rec.Code)
	bookURL := location(rec)
	require.True(t, strings.HasPrefix(bookURL, "/catalog/book/"))

	rec = en.do(http.MethodGet, bookURL, nil, ck)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "book_detail", en.view.name)
	d := en.view.data["Detail"].(*booksvc.Detail)
	require.Len(t, d.Genres, 1)
	require.Equal(t, "Fantasy", d.Genres[0].Name)
	require.Equal(t, "Herbert, Frank", d.Author.Name())
}

func TestBookCreateMissingTitleRerendersForm(t *testing.T) {
	en := newEnv(t)
	ck := en.signup("reader@example.com")

	g := model.Genre{Name: "Fantasy"}
	require.NoError(t, en.st.Genres.Create(context.Background(), &g))

	rec := en.do(http.MethodPost, "/catalog/book/create", url.Values{
		"title":   {"   "},
		"author":  {primitive.NewObjectID().Hex()},
		"summary": {"<i>kept</i>"},
		"isbn":    {"0001"},
		"genre":   {g.ID.Hex()},
	}, ck)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "book_form", en.view.name)

	// form checks run first; the author lookup waits for a complete form
	msgs := en.view.data["Errors"].([]string)
	require.Equal(t, []string{"Title must not be empty."}, msgs)

	b := en.view.data["Book"].(*model.Book)
	require.Equal(t, "&lt;i&gt;kept&lt;&#x2F;i&gt;", b.Summary)
	require.True(t, b.HasGenre(g.ID))

	n, err := en.st.Books.Count(context.Background())
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestBookCreateDanglingAuthorRerendersForm(t *testing.T) {
	en := newEnv(t)
	ck := en.signup("reader@example.com")

	rec := en.do(http.MethodPost, "/catalog/book/create", url.Values{
		"title":   {"Dune"},
		"author":  {primitive.NewObjectID().Hex()},
		"summary": {"Spice."},
		"isbn":    {"0001"},
	}, ck)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "book_form", en.view.name)
	require.Equal(t, []string{"Author not found."}, en.view.data["Errors"])

	n, err := en.st.Books.Count(context.Background())
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestBookUpdateMissingBeatsInvalidForm(t *testing.T) {
	en := newEnv(t)
	ck := en.signup("reader@example.com")

	rec := en.do(http.MethodPost, "/catalog/book/"+primitive.NewObjectID().Hex()+"/update", url.Values{"title": {""}}, ck)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "error", en.view.name)

	rec = en.do(http.MethodPost, "/catalog/bookinstance/"+primitive.NewObjectID().Hex()+"/update", url.Values{"status": {"Lost"}}, ck)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBookUpdateInvalidFormKeepsID(t *testing.T) {
	en := newEnv(t)
	ck := en.signup("reader@example.com")
	ctx := context.Background()

	b := model.Book{Title: "Dune", Author: primitive.NewObjectID(), Summary: "s", ISBN: "1"}
	require.NoError(t, en.st.Books.Create(ctx, &b))

	rec := en.do(http.MethodPost, b.URL()+"/update", url.Values{"title": {"Dune Messiah"}, "summary": {"s"}, "isbn": {"2"}}, ck)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "book_form", en.view.name)
	require.Equal(t, []string{"Author must not be empty."}, en.view.data["Errors"])
	require.Equal(t, b.ID, en.view.data["Book"].(*model.Book).ID)

	got, err := en.st.Books.ByID(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, "Dune", got.Title)
}

func TestAuthorCreateValidation(t *testing.T) {
	en := newEnv(t)
	ck := en.signup("reader@example.com")

	rec := en.do(http.MethodPost, "/catalog/author/create", url.Values{
		"first_name":    {" "},
		"family_name":   {"Herbert"},
		"date_of_birth": {"1920-13-40"},
	}, ck)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "author_form", en.view.name)
	require.Equal(t, []string{"First name must be specified.", "Invalid date of birth"}, en.view.data["Errors"])

	// a well-formed form can still fail the date order check
	rec = en.do(http.MethodPost, "/catalog/author/create", url.Values{
		"first_name":    {"Frank"},
		"family_name":   {"Herbert"},
		"date_of_birth": {"1992-01-01"},
		"date_of_death": {"1920-01-01"},
	}, ck)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, []string{"Date of death must not be before date of birth."}, en.view.data["Errors"])

	n, err := en.st.Authors.Count(context.Background())
	require.NoError(t, err)
	require.Zero(t, n)

	rec = en.do(http.MethodPost, "/catalog/author/create", url.Values{
		"first_name":    {"Frank"},
		"family_name":   {"Herbert"},
		"date_of_birth": {"1920-10-08"},
	}, ck)
	require.Equal(t, http.StatusFound, rec.Code)
	require.True(t, strings.HasPrefix(location(rec), "/catalog/author/"))
}

func TestBookUpdateKeepsID(t *testing.T) {
	en := newEnv(t)
	ck := en.signup("reader@example.com")
	ctx := context.Background()

	a := model.Author{FirstName: "Frank", FamilyName: "Herbert"}
	require.NoError(t, en.st.Authors.Create(ctx, &a))
	b := model.Book{Title: "Dune", Author: a.ID, Summary: "s", ISBN: "1"}
	require.NoError(t, en.st.Books.Create(ctx, &b))

	rec := en.do(http.MethodGet, b.URL()+"/update", nil, ck)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, a.ID.Hex(), en.view.data["AuthorID"])

	rec = en.do(http.MethodPost, b.URL()+"/update", url.Values{
		"title": {"Dune Messiah"}, "author": {a.ID.Hex()}, "summary": {"s"}, "isbn": {"2"},
	}, ck)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, b.URL(), location(rec))

	got, err := en.st.Books.ByID(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, "Dune Messiah", got.Title)
	n, err := en.st.Books.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
}

func TestGenreDeleteBlockedByBooks(t *testing.T) {
	en := newEnv(t)
	ck := en.signup("reader@example.com")
	ctx := context.Background()

	g := model.Genre{Name: "Fantasy"}
	require.NoError(t, en.st.Genres.Create(ctx, &g))
	b := model.Book{Title: "Dune", Author: primitive.NewObjectID(), Genre: []primitive.ObjectID{g.ID}}
	require.NoError(t, en.st.Books.Create(ctx, &b))

	rec := en.do(http.MethodPost, g.URL()+"/delete", url.Values{"id": {g.ID.Hex()}}, ck)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "genre_delete", en.view.name)
	d := en.view.data["Detail"].(*genresvc.Detail)
	require.Len(t, d.Books, 1)

	still, err := en.st.Genres.ByID(ctx, g.ID)
	require.NoError(t, err)
	require.NotNil(t, still)

	// once unreferenced the genre goes and the user lands on the list
	require.NoError(t, en.st.Books.Delete(ctx, b.ID))
	rec = en.do(http.MethodPost, g.URL()+"/delete", nil, ck)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/catalog/genres", location(rec))
}

func TestBookDeleteCascadesToCopies(t *testing.T) {
	en := newEnv(t)
	ck := en.signup("reader@example.com")
	ctx := context.Background()

	b := model.Book{Title: "Dune", Author: primitive.NewObjectID()}
	require.NoError(t, en.st.Books.Create(ctx, &b))
	var copies []model.BookInstance
	for _, imp := range []string{"Ace, 1965", "Chilton, 1965"} {
		bi := model.BookInstance{Book: b.ID, Imprint: imp, Status: model.StatusAvailable}
		require.NoError(t, en.st.Instances.Create(ctx, &bi))
		copies = append(copies, bi)
	}

	rec := en.do(http.MethodGet, b.URL()+"/delete", nil, ck)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "book_delete", en.view.name)

	rec = en.do(http.MethodPost, b.URL()+"/delete", nil, ck)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/catalog/books", location(rec))

	for _, bi := range copies {
		rec = en.do(http.MethodGet, bi.URL(), nil, ck)
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Equal(t, "error", en.view.name)
	}
	rec = en.do(http.MethodGet, b.URL(), nil, ck)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNotFoundHandling(t *testing.T) {
	en := newEnv(t)

	rec := en.do(http.MethodGet, "/no/such/page", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "error", en.view.name)
	require.Equal(t, "Not Found", en.view.data["Message"])

	ck := en.signup("reader@example.com")
	missing := primitive.NewObjectID().Hex()

	rec = en.do(http.MethodGet, "/catalog/book/"+missing, nil, ck)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = en.do(http.MethodGet, "/catalog/author/not-an-id", nil, ck)
	require.Equal(t, http.StatusNotFound, rec.Code)

	// delete confirmation is lenient and goes back to the list
	rec = en.do(http.MethodGet, "/catalog/book/"+missing+"/delete", nil, ck)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/catalog/books", location(rec))

	for _, id := range []string{missing, "not-an-id"} {
		rec = en.do(http.MethodPost, "/catalog/book/"+id+"/delete", nil, ck)
		require.Equal(t, http.StatusFound, rec.Code)
		require.Equal(t, "/catalog/books", location(rec))
	}

	rec = en.do(http.MethodGet, "/catalog/bookinstance/"+missing+"/delete", nil, ck)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/catalog/bookinstances", location(rec))
}

func TestUpdateStubs(t *testing.T) {
	en := newEnv(t)
	ck := en.signup("reader@example.com")
	id := primitive.NewObjectID().Hex()

	rec := en.do(http.MethodGet, "/catalog/genre/"+id+"/update", nil, ck)
	require.Equal(t, http.StatusNotImplemented, rec.Code)
	require.Equal(t, "NOT IMPLEMENTED: Genre update", en.view.data["Message"])

	rec = en.do(http.MethodPost, "/catalog/author/"+id+"/update", url.Values{}, ck)
	require.Equal(t, http.StatusNotImplemented, rec.Code)
	require.Equal(t, "NOT IMPLEMENTED: Author update", en.view.data["Message"])
}

func TestAuthorDeleteBlockedByBooks(t *testing.T) {
	en := newEnv(t)
	ck := en.signup("reader@example.com")
	ctx := context.Background()

	a := model.Author{FirstName: "Frank", FamilyName: "Herbert"}
	require.NoError(t, en.st.Authors.Create(ctx, &a))
	require.NoError(t, en.st.Books.Create(ctx, &model.Book{Title: "Dune", Author: a.ID}))

	rec := en.do(http.MethodPost, a.URL()+"/delete", nil, ck)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "author_delete", en.view.name)
	n, err := en.st.Authors.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
}

func TestBookInstanceCreate(t *testing.T) {
	en := newEnv(t)
	ck := en.signup("reader@example.com")
	ctx := context.Background()

	b := model.Book{Title: "Dune", Author: primitive.NewObjectID()}
	require.NoError(t, en.st.Books.Create(ctx, &b))

	rec := en.do(http.MethodPost, "/catalog/bookinstance/create", url.Values{"book": {b.ID.Hex()}, "imprint": {""}}, ck)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "bookinstance_form", en.view.name)
	require.Equal(t, b.ID.Hex(), en.view.data["BookID"])
	require.Contains(t, en.view.data["Errors"].([]string), "Imprint must be specified")

	rec = en.do(http.MethodPost, "/catalog/bookinstance/create", url.Values{"book": {b.ID.Hex()}, "imprint": {"Ace"}, "status": {"Lost"}}, ck)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, []string{"Invalid status"}, en.view.data["Errors"])

	rec = en.do(http.MethodPost, "/catalog/bookinstance/create", url.Values{"book": {b.ID.Hex()}, "imprint": {"Ace, 1965"}}, ck)
	require.Equal(t, http.StatusFound, rec.Code)
	require.True(t, strings.HasPrefix(location(rec), "/catalog/bookinstance/"))

	n, err := en.st.Instances.CountByStatus(ctx, model.StatusAvailable)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
}

func TestDashboardCounts(t *testing.T) {
	en := newEnv(t)
	ck := en.signup("reader@example.com")
	require.NoError(t, en.st.Genres.Create(context.Background(), &model.Genre{Name: "Poetry"}))

	rec := en.do(http.MethodGet, "/catalog", nil, ck)
	require.Equal(t, http.StatusOK, rec.Code)
	c := en.view.data["Counts"].(catalogsvc.Counts)
	require.Equal(t, int64(1), c.Genres)
}
