package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"agentverse-browser/internal/api"
	"agentverse-browser/internal/browser"
	"agentverse-browser/internal/config"
	"agentverse-browser/internal/model"
	"agentverse-browser/internal/view"
)

// Shell is the interactive console surface. It feeds user commands into
// the browser state machine and renders the events coming back.
type Shell struct {
	client  *api.Client
	browser *browser.Browser
	cfg     *config.BrowserConfig
	log     zerolog.Logger
	in      io.Reader

	mu  sync.Mutex
	out io.Writer
}

// New creates a shell reading commands from in and writing to out.
func New(client *api.Client, cfg *config.BrowserConfig, log zerolog.Logger, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		client: client,
		cfg:    cfg,
		log:    log,
		in:     in,
		out:    out,
	}
}

// Run shows the landing view, then processes commands until EOF or quit.
func (s *Shell) Run(ctx context.Context) error {
	s.browser = browser.New(ctx, s.client, s, s.log, s.cfg.PageSize)

	s.home(ctx)

	scanner := bufio.NewScanner(s.in)
	s.prompt()
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "quit" || line == "exit" {
			return nil
		}
		if line != "" {
			s.execute(ctx, line)
		}
		s.prompt()
	}
	return scanner.Err()
}

// home renders the landing surface: facet lists, stats, recent items.
func (s *Shell) home(ctx context.Context) {
	if platforms, err := s.client.Platforms(ctx); err == nil {
		s.printf("platforms: %s\n", strings.Join(platforms, ", "))
	} else {
		s.log.Warn().Err(err).Msg("platforms unavailable")
	}
	if agentTypes, err := s.client.AgentTypes(ctx); err == nil {
		s.printf("agent types: %s\n", strings.Join(agentTypes, ", "))
	} else {
		s.log.Warn().Err(err).Msg("agent types unavailable")
	}
	if stats, err := s.client.Stats(ctx); err == nil {
		s.render(func(w io.Writer) { view.WriteStats(w, *stats) })
	} else {
		s.log.Warn().Err(err).Msg("stats unavailable")
	}
	if recent, err := s.client.Recent(ctx, s.cfg.RecentLimit); err == nil && len(recent) > 0 {
		s.printf("recently indexed:\n")
		s.render(func(w io.Writer) { view.WriteCards(w, recent) })
	} else if err != nil {
		s.log.Warn().Err(err).Msg("recent unavailable")
	}
}

func (s *Shell) execute(ctx context.Context, line string) {
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "search":
		s.browser.SetQuery(rest)
		s.browser.Submit()
	case "type":
		s.browser.SetQuickFilter(dashEmpty(rest))
	case "facets":
		fields := strings.Fields(rest)
		if len(fields) != 3 {
			s.printf("usage: facets <agent-type|-> <platform|-> <sort>\n")
			return
		}
		s.browser.SetFacets(dashEmpty(fields[0]), dashEmpty(fields[1]), dashEmpty(fields[2]))
	case "page":
		n, err := strconv.Atoi(rest)
		if err != nil {
			s.printf("usage: page <number>\n")
			return
		}
		s.browser.SetPage(n)
	case "next":
		s.browser.SetPage(s.browser.Filters().Page() + 1)
	case "prev":
		s.browser.SetPage(s.browser.Filters().Page() - 1)
	case "open":
		id, err := strconv.Atoi(rest)
		if err != nil {
			s.printf("usage: open <id>\n")
			return
		}
		s.browser.Detail(id)
	case "recent":
		if items, err := s.client.Recent(ctx, s.cfg.RecentLimit); err == nil {
			s.render(func(w io.Writer) { view.WriteCards(w, items) })
		} else {
			s.printf("recent failed, try again\n")
			s.log.Error().Err(err).Msg("recent fetch failed")
		}
	case "featured":
		if items, err := s.client.Featured(ctx, s.cfg.FeaturedLimit); err == nil {
			s.render(func(w io.Writer) { view.WriteCards(w, items) })
		} else {
			s.printf("featured failed, try again\n")
			s.log.Error().Err(err).Msg("featured fetch failed")
		}
	case "stats":
		if stats, err := s.client.Stats(ctx); err == nil {
			s.render(func(w io.Writer) { view.WriteStats(w, *stats) })
		} else {
			s.printf("stats failed, try again\n")
			s.log.Error().Err(err).Msg("stats fetch failed")
		}
	case "filters":
		f := s.browser.Filters()
		s.printf("query=%q type=%s agent=%s platform=%s sort=%s page=%d\n",
			f.Query(), orDash(f.ContentType()), orDash(f.AgentType()),
			orDash(f.SourcePlatform()), f.SortBy(), f.Page())
	case "help":
		s.printf("%s", helpText)
	default:
		s.printf("unknown command %q, try help\n", cmd)
	}
}

// Loading implements browser.Sink.
func (s *Shell) Loading(active bool) {
	if active {
		s.printf("searching…\n")
	}
}

// Results implements browser.Sink.
func (s *Shell) Results(page *model.ResultPage) {
	if page.Total == 0 {
		s.printf("no results for %q\n", page.Query)
		return
	}
	s.printf("%d results for %q\n", page.Total, page.Query)
	s.render(func(w io.Writer) {
		view.WriteCards(w, page.Results)
		view.WritePagination(w, page.Page, page.TotalPages)
	})
}

// Error implements browser.Sink. Previous results stay on screen; the
// failure is surfaced with a retry hint and the detail stays in the log.
func (s *Shell) Error(err error) {
	switch {
	case api.IsNotFound(err):
		s.printf("that item no longer exists\n")
	default:
		s.printf("search failed, please try again\n")
	}
}

// Detail implements browser.DetailSink.
func (s *Shell) Detail(item *model.ContentItem) {
	s.render(func(w io.Writer) { view.WriteDetail(w, *item) })
}

func (s *Shell) prompt() { s.printf("> ") }

func (s *Shell) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, format, args...)
}

func (s *Shell) render(fn func(io.Writer)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.out)
}

func dashEmpty(s string) string {
	if s == "-" {
		return ""
	}
	return s
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

const helpText = `commands:
  search <text>                         run a search
  type <content-type|->                 set or clear the quick filter
  facets <agent-type|-> <platform|-> <sort>   set facets and sort order
  page <n> | next | prev                navigate result pages
  open <id>                             show item details
  recent | featured | stats             catalog views
  filters                               show current filter state
  quit                                  leave
`
