package http_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aretw0/espalier"
	httpadapter "github.com/aretw0/espalier/pkg/adapters/http"
	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/element"
	"github.com/aretw0/espalier/pkg/expose"
	"github.com/aretw0/espalier/pkg/registry"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greetingView struct {
	Name string `need:"name"`
}

func (v greetingView) Body() element.Node {
	return element.P(element.Textf("Hello, %s", v.Name))
}

func TestServesMountedPage(t *testing.T) {
	reg := registry.New()
	registry.MustRegister[greetingView](reg, "greeting",
		registry.WithPath("/"),
		registry.WithHandler(expose.NewHandler("base", expose.Static("name", "Ada"))),
	)

	h, err := httpadapter.NewHandler(espalier.New(reg))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "<p>Hello, Ada</p>", rec.Body.String())
}

func TestUnmountedPagesAreNotServed(t *testing.T) {
	reg := registry.New()
	registry.MustRegister[greetingView](reg, "greeting",
		registry.WithHandler(expose.NewHandler("base", expose.Static("name", "Ada"))),
	)

	h, err := httpadapter.NewHandler(espalier.New(reg))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/greeting", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRequestDerivedValues(t *testing.T) {
	reg := registry.New()
	registry.MustRegister[greetingView](reg, "greeting",
		registry.WithPath("/hello/{name}"),
		registry.WithCallerProvided("name"),
	)

	h, err := httpadapter.NewHandler(espalier.New(reg),
		httpadapter.WithValues("greeting", func(r *http.Request) (domain.Values, error) {
			return domain.Values{"name": chi.URLParam(r, "name")}, nil
		}),
	)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/hello/Grace", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<p>Hello, Grace</p>", rec.Body.String())
}

func TestValueDerivationFailureIsBadRequest(t *testing.T) {
	reg := registry.New()
	registry.MustRegister[greetingView](reg, "greeting",
		registry.WithPath("/"),
		registry.WithCallerProvided("name"),
	)

	h, err := httpadapter.NewHandler(espalier.New(reg),
		httpadapter.WithValues("greeting", func(*http.Request) (domain.Values, error) {
			return nil, errors.New("bad session token")
		}),
	)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRenderFailureIsServerError(t *testing.T) {
	reg := registry.New()
	registry.MustRegister[greetingView](reg, "greeting",
		registry.WithPath("/"),
		registry.WithCallerProvided("name"),
	)

	// The check accepts caller-provided "name"; omitting the ValueFunc
	// makes the render itself fail.
	h, err := httpadapter.NewHandler(espalier.New(reg))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRefusesFailingRegistry(t *testing.T) {
	reg := registry.New()
	registry.MustRegister[greetingView](reg, "greeting", registry.WithPath("/"))

	_, err := httpadapter.NewHandler(espalier.New(reg))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"name"`)
}
