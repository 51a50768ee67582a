package view

import (
	"bytes"
	"html/template"
	"io"
	"strconv"
	"time"

	"cardapio-server/models"
	services "cardapio-server/service"
	"cardapio-server/util"
)

// CommentDraft refills the comment form after a rejected submission.
type CommentDraft struct {
	Author string
	Rating int
	Body   string
}

// CommentsData feeds the comments block.
type CommentsData struct {
	TabID      string
	Query      string
	Comments   []models.Comment
	Admin      bool
	Draft      CommentDraft
	Error      string
	LoginError string
}

// PageData feeds the full page.
type PageData struct {
	TabID      string
	Today      string
	Query      string
	ChartURL   string
	Criteria   models.FilterCriteria
	Categories []string
	Theme      models.ThemeState
	Menu       services.MenuView
	Comments   CommentsData
}

var funcs = template.FuncMap{
	"ms": func(d time.Duration) int64 {
		return d.Milliseconds()
	},
	"num": func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	},
	"ratings": func() []int {
		out := make([]int, 0, models.MAX_RATING)
		for n := models.MAX_RATING; n >= models.MIN_RATING; n-- {
			out = append(out, n)
		}
		return out
	},
	"shortDate": util.FormatShortDatePtBR,
}

var templates = parseTemplates()

func parseTemplates() *template.Template {
	t := template.New("cardapio").Funcs(funcs)
	for _, src := range []string{menuTemplate, commentsTemplate, pageTemplate} {
		t = template.Must(t.Parse(src))
	}
	return t
}

// RenderPage writes the whole document.
func RenderPage(w io.Writer, data PageData) error {
	return templates.ExecuteTemplate(w, "page", data)
}

// RenderMenuFragment writes only the menu sections.
func RenderMenuFragment(w io.Writer, menu services.MenuView) error {
	return templates.ExecuteTemplate(w, "menu", menu)
}

// MenuFragment renders the menu sections into a string, as pushed over the events socket.
func MenuFragment(menu services.MenuView) (string, error) {
	var buf bytes.Buffer
	if err := RenderMenuFragment(&buf, menu); err != nil {
		return "", err
	}
	return buf.String(), nil
}
