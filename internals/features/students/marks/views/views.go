// file: internals/features/students/marks/views/views.go
package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed *.html
var files embed.FS

// NewEngine returns the html engine over the embedded templates
// ("form", "result").
func NewEngine() *html.Engine {
	return html.NewFileSystem(http.FS(files), ".html")
}
