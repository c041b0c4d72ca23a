package backend

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Resource names one REST collection of the catalog backend.
type Resource string

const (
	Genres    Resource = "generos"
	Directors Resource = "directores"
	Producers Resource = "productoras"
	Types     Resource = "tipos"
	Medias    Resource = "medias"
)

// Resources lists every resource the dashboard needs a route for.
func Resources() []Resource {
	return []Resource{Genres, Directors, Producers, Types, Medias}
}

// Routes maps each resource to its path on the backend (e.g. "/generos").
type Routes map[Resource]string

// DefaultRoutes returns the paths the catalog backend serves by default.
func DefaultRoutes() Routes {
	routes := make(Routes, len(Resources()))
	for _, res := range Resources() {
		routes[res] = "/" + string(res)
	}
	return routes
}

// Validate checks that every required resource has a usable path. It is run
// at startup so a missing route fails fast instead of on first use.
func (r Routes) Validate() error {
	var missing, invalid []string
	for _, res := range Resources() {
		path, ok := r[res]
		path = strings.TrimSpace(path)
		switch {
		case !ok || path == "":
			missing = append(missing, string(res))
		case !strings.HasPrefix(path, "/") || strings.ContainsAny(path, "?#"):
			invalid = append(invalid, fmt.Sprintf("%s=%q", res, path))
		}
	}
	sort.Strings(missing)
	sort.Strings(invalid)

	if len(missing) > 0 {
		return fmt.Errorf("backend routes missing for: %s", strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return fmt.Errorf("backend routes must be absolute paths: %s", strings.Join(invalid, ", "))
	}
	return nil
}

// URL resolves the collection URL of a resource against the base URL.
func (r Routes) URL(base string, res Resource) (string, error) {
	path, ok := r[res]
	path = strings.TrimSpace(path)
	if !ok || path == "" {
		return "", fmt.Errorf("no backend route configured for %s", res)
	}

	u, err := ParseBaseURL(base)
	if err != nil {
		return "", err
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.Trim(path, "/")
	return u.String(), nil
}

// ParseBaseURL validates the backend base URL: absolute http(s), no query.
func ParseBaseURL(base string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(base))
	if err != nil {
		return nil, fmt.Errorf("parsing backend URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("backend URL %q must use http or https", base)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("backend URL %q has no host", base)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return nil, fmt.Errorf("backend URL %q must not carry a query or fragment", base)
	}
	return u, nil
}
