// Package bouncertest provides an in-process bouncer and CDN for tests.
package bouncertest

import (
	"fmt"
	"html/template"
	"maps"
	"net/http"
	"net/http/httptest"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/neutree-ai/bouncer-probe/pkg/bouncer"
)

var indexTemplate = template.Must(template.New("index").Parse(`<html>
<head><title>Bouncer</title></head>
<body>
<ul>
{{- range . }}
<li><a href="/?product={{ . }}">{{ . }}</a></li>
{{- end }}
</ul>
</body>
</html>`))

// NewServer starts a bouncer that redirects every product in versions, an
// alias to version map, to a file under /pub on the same server.
func NewServer(versions map[string]string) *httptest.Server {
	return httptest.NewServer(NewHandler(versions))
}

// NewHandler returns the gin engine behind NewServer.
func NewHandler(versions map[string]string) http.Handler {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(gin.Recovery())

	bounce := func(c *gin.Context) {
		product := c.Query("product")
		if product == "" {
			c.Status(http.StatusOK)
			c.Header("Content-Type", "text/html; charset=utf-8")
			_ = indexTemplate.Execute(c.Writer, slices.Sorted(maps.Keys(versions)))
			return
		}

		version, ok := versions[product]
		if !ok {
			c.String(http.StatusNotFound, "unknown product %s", product)
			return
		}

		os := bouncer.Platform(c.DefaultQuery("os", string(bouncer.PlatformWindows)))

		dir, err := bouncer.PlatformDir(os)
		if err != nil {
			c.String(http.StatusNotFound, "%s", err.Error())
			return
		}

		filename, err := bouncer.ExpectedFilename(os, product, version)
		if err != nil {
			c.String(http.StatusNotFound, "%s", err.Error())
			return
		}

		c.Redirect(http.StatusFound, fmt.Sprintf("/pub/firefox/releases/%s/%s/%s/%s",
			version, dir, c.DefaultQuery("lang", bouncer.DefaultLocale), filename))
	}

	serve := func(c *gin.Context) {
		c.Header("Content-Type", "application/octet-stream")
		c.Status(http.StatusOK)
	}

	r.GET("/", bounce)
	r.HEAD("/", bounce)
	r.GET("/pub/*path", serve)
	r.HEAD("/pub/*path", serve)

	return r
}
