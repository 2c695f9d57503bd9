// Package portfolio lists the hosted projects and resolves page routes.
package portfolio

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrNotFound indicates a path that matches no page.
var ErrNotFound = errors.New("portfolio: page not found")

const projectsPrefix = "/projects/"

// Project is one entry of the projects section.
type Project struct {
	Slug        string
	Name        string
	Eyebrow     string
	Summary     string
	SourceFiles []string
}

// Href is the project's page path.
func (p Project) Href() string { return projectsPrefix + p.Slug }

// MoireSlug identifies the moiré simulator project.
const MoireSlug = "moire-simulator"

// Projects in display order.
var Projects = []Project{
	{
		Slug:    MoireSlug,
		Name:    "Moiré Simulator",
		Eyebrow: "Moiré Simulator",
		Summary: "interference of two line gratings",
		SourceFiles: []string{
			"internal/params/store.go",
			"internal/controls/pair.go",
			"internal/render/moire.go",
			"internal/schedule/loop.go",
			"internal/shell/shell.go",
		},
	},
}

// Find looks up a project by slug.
func Find(slug string) (Project, bool) {
	for _, p := range Projects {
		if p.Slug == slug {
			return p, true
		}
	}
	return Project{}, false
}

// Profile is the whoami section content.
type Profile struct {
	Name    string
	Tagline string
}

var Whoami = Profile{
	Name:    "san-kum",
	Tagline: "simulations, interference and other moving lines",
}

// PageKind distinguishes the two page types.
type PageKind int

const (
	PageHome PageKind = iota
	PageProject
)

// Route is a resolved page address.
type Route struct {
	Kind    PageKind
	Project Project
	Instant bool
}

// Path renders the route back to a path.
func (r Route) Path() string {
	if r.Kind == PageProject {
		return r.Project.Href()
	}
	if r.Instant {
		return "/?instant=1"
	}
	return "/"
}

// Resolve maps "/" (optionally "?instant=1") and "/projects/<slug>".
func Resolve(raw string) (Route, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Route{}, fmt.Errorf("%w: %s", ErrNotFound, raw)
	}
	path := strings.TrimSuffix(u.Path, "/")
	switch {
	case path == "":
		return Route{Kind: PageHome, Instant: u.Query().Get("instant") == "1"}, nil
	case strings.HasPrefix(path, projectsPrefix):
		slug := strings.TrimPrefix(path, projectsPrefix)
		if p, ok := Find(slug); ok {
			return Route{Kind: PageProject, Project: p}, nil
		}
	}
	return Route{}, fmt.Errorf("%w: %s", ErrNotFound, raw)
}
