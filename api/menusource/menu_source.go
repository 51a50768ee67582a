package menusource

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"cardapio-server/api"
	"cardapio-server/config"
	"cardapio-server/models"
	"cardapio-server/util"
)

// MenuSource fetches the menu document once at startup.
type MenuSource interface {
	Fetch(ctx context.Context) (*models.MenuDocument, error)
	String() string
}

// FileMenuSource reads the document from a local JSON file.
type FileMenuSource struct {
	path string
}

func NewFileMenuSource(path string) *FileMenuSource {
	return &FileMenuSource{path: path}
}

func (s *FileMenuSource) Fetch(ctx context.Context) (*models.MenuDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return util.ReadMenuDocumentFromJSON(s.path)
}

func (s *FileMenuSource) String() string {
	return "file:" + s.path
}

// HTTPMenuSource downloads the document through the shared api.HTTPClient.
type HTTPMenuSource struct {
	*api.HTTPClient
	endpoint string
}

// NewHTTPMenuSource splits rawURL into the client base URL and the document path.
func NewHTTPMenuSource(rawURL string) (*HTTPMenuSource, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid menu url %q: %w", rawURL, err)
	}
	endpoint := u.RequestURI()
	u.Path, u.RawPath, u.RawQuery, u.Fragment = "", "", "", ""
	return &HTTPMenuSource{
		HTTPClient: api.NewHTTPClient(u.String(), config.MENU_FETCH_TIMEOUT),
		endpoint:   endpoint,
	}, nil
}

func (s *HTTPMenuSource) Fetch(ctx context.Context) (*models.MenuDocument, error) {
	var doc models.MenuDocument
	if err := s.Request(ctx, "GET", s.endpoint, nil, nil, &doc); err != nil {
		return nil, fmt.Errorf("failed to fetch menu from %s: %w", s, err)
	}
	return &doc, nil
}

func (s *HTTPMenuSource) String() string {
	return s.BaseURL + s.endpoint
}

// New picks an HTTP source for http(s) URLs and a file source otherwise.
func New(source string) (MenuSource, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		log.Printf("[MenuSource] Using http menu source %s", source)
		s, err := NewHTTPMenuSource(source)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	log.Printf("[MenuSource] Using file menu source %s", source)
	return NewFileMenuSource(source), nil
}
