package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRoutes_CoverEveryResource(t *testing.T) {
	routes := DefaultRoutes()

	require.NoError(t, routes.Validate())
	assert.Equal(t, "/generos", routes[Genres])
	assert.Equal(t, "/directores", routes[Directors])
	assert.Equal(t, "/productoras", routes[Producers])
	assert.Equal(t, "/tipos", routes[Types])
	assert.Equal(t, "/medias", routes[Medias])
}

func TestValidate_MissingRouteFailsFast(t *testing.T) {
	routes := DefaultRoutes()
	delete(routes, Medias)
	routes[Types] = "  "

	err := routes.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "medias")
	assert.Contains(t, err.Error(), "tipos")
}

func TestValidate_RelativeRouteRejected(t *testing.T) {
	routes := DefaultRoutes()
	routes[Genres] = "generos"

	assert.ErrorContains(t, routes.Validate(), "absolute")
}

func TestURL_JoinsBaseAndPath(t *testing.T) {
	routes := DefaultRoutes()

	cases := map[string]string{
		"http://localhost:3000":      "http://localhost:3000/generos",
		"http://localhost:3000/":     "http://localhost:3000/generos",
		"https://api.example.com/v1": "https://api.example.com/v1/generos",
	}
	for base, want := range cases {
		got, err := routes.URL(base, Genres)
		require.NoError(t, err, base)
		assert.Equal(t, want, got, base)
	}
}

func TestNew_RejectsBadConfig(t *testing.T) {
	_, err := New(Config{BaseURL: "localhost:3000", Routes: DefaultRoutes()})
	assert.Error(t, err)

	_, err = New(Config{BaseURL: "http://localhost:3000", Routes: Routes{Genres: "/generos"}})
	assert.ErrorContains(t, err, "missing")
}

func TestFor_UnknownResource(t *testing.T) {
	b, err := New(Config{BaseURL: "http://localhost:3000", Routes: DefaultRoutes()})
	require.NoError(t, err)

	_, err = For[genre](b, Resource("actores"))
	assert.Error(t, err)
}
