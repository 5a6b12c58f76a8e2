package server

import (
	"html/template"
	"net/url"

	"artdex/pkg/view"
)

type pageData struct {
	Art      view.Snapshot
	Creature view.Snapshot
}

var pageFuncs = template.FuncMap{
	// webp routes displayed images through /api/image.
	"webp": func(src string) string {
		if src == "" {
			return ""
		}
		return "/api/image?src=" + url.QueryEscape(src)
	},
}

var pageTmpl = template.Must(template.New("index").Funcs(pageFuncs).Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>artdex</title>
    <style>
      body { margin: 0 auto; max-width: 960px; font-family: ui-sans-serif, system-ui, sans-serif; }
      section { padding: 16px; }
      #ga-piece { max-width: 100%; max-height: 480px; }
      .error p { color: #b91c1c; }
      button { width: 96px; height: 96px; border-radius: 999px; }
    </style>
  </head>
  <body>
    <section id="art">
      <h2>Greek and Roman Art</h2>
      <form method="post" action="/art"><button type="submit">Fetch</button></form>
      <h3 id="ga-title">{{.Art.Title}}</h3>
      <div id="greek-roman-art">{{range .Art.Images}}<img{{if .Src}} src="{{webp .Src}}"{{end}}{{if .Alt}} alt="{{.Alt}}"{{end}}{{if .ID}} id="{{.ID}}"{{end}} />{{end}}</div>
      <div id="ga-error" class="error">{{range .Art.Errors}}<p>{{.}}</p>{{end}}</div>
    </section>
    <section id="creature">
      <h2>Pokemon</h2>
      <form method="post" action="/creature">
        <input type="text" name="name" placeholder="Name or number" autocomplete="off" />
        <input type="hidden" name="key" value="Enter" />
      </form>
      <h3 id="pokemon-title">{{.Creature.Title}}</h3>
      <div id="pokemon-pic">{{range .Creature.Images}}<img{{if .Src}} src="{{webp .Src}}"{{end}}{{if .Alt}} alt="{{.Alt}}"{{end}}{{if .ID}} id="{{.ID}}"{{end}} />{{end}}</div>
      <div id="pokemon-error" class="error">{{range .Creature.Errors}}<p>{{.}}</p>{{end}}</div>
    </section>
  </body>
</html>
`))
