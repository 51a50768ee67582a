package handlers

import (
	"log"
	"net/http"
	"net/url"
	"time"

	"cardapio-server/models"
	services "cardapio-server/service"
	"cardapio-server/util"
	"cardapio-server/view"
)

const (
	TAB_ARG    = "tab"
	RETURN_ARG = "voltar"

	COLOR_SCHEME_HINT_HEADER = "Sec-CH-Prefers-Color-Scheme"
)

// pageOptions carries the per-request state of one page render.
type pageOptions struct {
	TabID        string
	Criteria     models.FilterCriteria
	Draft        view.CommentDraft
	CommentError string
	LoginError   string
}

// PageBuilder assembles the full page from every service.
type PageBuilder struct {
	menuService    *services.MenuService
	commentService *services.CommentService
	themeService   *services.ThemeService
	adminGate      *services.AdminGate
	now            func() time.Time
}

func NewPageBuilder(
	menuService *services.MenuService,
	commentService *services.CommentService,
	themeService *services.ThemeService,
	adminGate *services.AdminGate) *PageBuilder {

	return &PageBuilder{
		menuService:    menuService,
		commentService: commentService,
		themeService:   themeService,
		adminGate:      adminGate,
		now:            time.Now,
	}
}

func (pb *PageBuilder) render(w http.ResponseWriter, r *http.Request, status int, opts pageOptions) {
	profileID := ProfileID(r)
	if opts.Draft.Rating == 0 {
		opts.Draft.Rating = models.MAX_RATING
	}
	query := opts.Criteria.ToValues().Encode()

	data := view.PageData{
		TabID:      opts.TabID,
		Today:      util.FormatLongDatePtBR(pb.now()),
		Query:      query,
		ChartURL:   "/v1/menu/chart?" + query,
		Criteria:   opts.Criteria,
		Categories: pb.menuService.Categories(),
		Theme:      pb.themeService.Load(profileID, SystemPrefersDark(r)),
		Menu:       pb.menuService.View(opts.TabID, opts.Criteria),
		Comments: view.CommentsData{
			TabID:      opts.TabID,
			Query:      query,
			Comments:   pb.commentService.List(profileID),
			Admin:      pb.adminGate.IsAdmin(opts.TabID),
			Draft:      opts.Draft,
			Error:      opts.CommentError,
			LoginError: opts.LoginError,
		},
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Accept-CH", COLOR_SCHEME_HINT_HEADER)
	w.Header().Set("Vary", COLOR_SCHEME_HINT_HEADER)
	w.WriteHeader(status)
	if err := view.RenderPage(w, data); err != nil {
		log.Println("[PageBuilder] Error rendering page:", err)
	}
}

// redirectHome sends the browser back to the page, keeping the filters and the tab.
func redirectHome(w http.ResponseWriter, r *http.Request, tabID string) {
	vals, err := parseReturnQuery(r)
	if err != nil {
		vals = url.Values{}
	}
	vals.Set(TAB_ARG, tabID)
	http.Redirect(w, r, "/?"+vals.Encode(), http.StatusSeeOther)
}

// parseReturnQuery decodes the filter query the page posted along with a form.
func parseReturnQuery(r *http.Request) (url.Values, error) {
	return url.ParseQuery(r.FormValue(RETURN_ARG))
}
