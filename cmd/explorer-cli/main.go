package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/vladislavprovich/nft-explorer/internal/feed"
	"github.com/vladislavprovich/nft-explorer/internal/service"
	"github.com/vladislavprovich/nft-explorer/pkg/cache"
	"github.com/vladislavprovich/nft-explorer/pkg/client/glacier"
	"github.com/vladislavprovich/nft-explorer/pkg/ipfs"
	logger2 "github.com/vladislavprovich/nft-explorer/pkg/logger"
	"github.com/vladislavprovich/nft-explorer/pkg/metadata"
	"github.com/vladislavprovich/nft-explorer/pkg/placeholder"
)

type app struct {
	cfg      *Config
	logger   *slog.Logger
	resolver *ipfs.Resolver
	fetcher  *metadata.Fetcher
	ph       *placeholder.Generator
	service  *service.Service
}

func main() {
	a := &app{}

	cliApp := &cli.App{
		Name:  "explorer-cli",
		Usage: "browse NFT collectibles held by an address",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Usage: "log to stderr"},
		},
		Before: a.init,
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "list collectibles page by page",
				Action: a.list,
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "pages", Value: 1, Usage: "number of pages to load"},
					&cli.IntFlag{Name: "page-size", Value: service.DefaultPageSize, Usage: "items per page"},
					&cli.BoolFlag{Name: "demo", Usage: "use generated demo items instead of the indexer"},
				},
			},
			{
				Name:   "show",
				Usage:  "print one collectible as JSON",
				Action: a.show,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Required: true, Usage: "collectible id, e.g. 0xabc-7"},
					&cli.IntFlag{Name: "max-pages", Value: 5, Usage: "pages to search before giving up"},
					&cli.BoolFlag{Name: "demo", Usage: "search the demo items"},
				},
			},
			{
				Name:      "resolve",
				Usage:     "resolve a content URI to a gateway URL",
				ArgsUsage: "URI",
				Action:    a.resolve,
			},
			{
				Name:      "metadata",
				Usage:     "fetch and print a token metadata document",
				ArgsUsage: "URI",
				Action:    a.metadata,
			},
			{
				Name:      "coming-soon",
				Usage:     "show the notice for an unreleased feature",
				ArgsUsage: "favorites|settings|opensea",
				Action:    a.comingSoon,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "contract", Usage: "contract address for opensea"},
					&cli.StringFlag{Name: "token", Usage: "token id for opensea"},
				},
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatalf("explorer-cli: %s", err)
	}
}

func (a *app) init(c *cli.Context) error {
	cfg, err := LoadConfig(c.Context)
	if err != nil {
		return fmt.Errorf("config load error: %w", err)
	}
	a.cfg = cfg

	a.logger = logger2.Discard()
	if c.Bool("verbose") {
		l, err := logger2.NewWithWriter(c.Context, cfg.Logger, os.Stderr)
		if err != nil {
			return err
		}
		a.logger = l.Logger
	}

	httpClient := &http.Client{Timeout: cfg.Client.Timeout}
	memo := cache.NewMemory(cfg.IPFS.ProbeCacheTTL, 2*cfg.IPFS.ProbeCacheTTL)
	a.resolver = ipfs.NewResolver(httpClient, cfg.IPFS, memo, a.logger)
	a.fetcher = metadata.NewFetcher(httpClient, a.resolver, cfg.IPFS.FetchTimeout, a.logger)
	a.ph = placeholder.New(cfg.Placeholder)

	client := glacier.NewBasicClient(glacier.NewRetryableClient(&cfg.Client, a.logger), &cfg.Client, a.logger)
	a.service = service.NewExplorerService(c.Context, a.logger, client, service.Options{
		Address:     cfg.Client.Address,
		Fetcher:     a.fetcher,
		Resolver:    a.resolver,
		Placeholder: a.ph,
	})

	return nil
}

func (a *app) source(demo bool) feed.PageSource {
	if demo {
		return demoSource{ph: a.ph}
	}
	return a.service
}

func (a *app) list(c *cli.Context) error {
	f := feed.New(a.source(c.Bool("demo")), c.Int("page-size"), a.logger)
	out := c.App.Writer

	page := f.Refresh(c.Context)
	printPage(c, page)

	for i := 1; i < c.Int("pages") && f.HasMore(); i++ {
		before := f.Total()
		if f.More(c.Context) == 0 && f.Err() != "" {
			break
		}
		printNFTs(c, f.Items()[before:])
	}

	if msg := f.Err(); msg != "" {
		fmt.Fprintf(out, "error: %s\n", msg)
	}
	fmt.Fprintf(out, "%d item(s), page %d, more: %t\n", f.Total(), f.PageNumber(), f.HasMore())

	return nil
}

func (a *app) show(c *cli.Context) error {
	id := c.String("id")
	f := feed.New(a.source(c.Bool("demo")), service.MaxPageSize, a.logger)
	f.Refresh(c.Context)

	nft, ok := f.Get(id)
	for pages := 1; !ok && pages < c.Int("max-pages") && f.HasMore(); pages++ {
		f.More(c.Context)
		nft, ok = f.Get(id)
	}
	if !ok {
		return fmt.Errorf("collectible %q not found", id)
	}

	return printJSON(c, nft)
}

func (a *app) resolve(c *cli.Context) error {
	uri := c.Args().First()
	if uri == "" {
		return errors.New("missing URI argument")
	}

	fmt.Fprintln(c.App.Writer, a.service.ResolveURI(c.Context, uri))
	return nil
}

func (a *app) metadata(c *cli.Context) error {
	uri := c.Args().First()
	if uri == "" {
		return errors.New("missing URI argument")
	}

	md, err := a.fetcher.Fetch(c.Context, uri)
	if err != nil {
		return err
	}

	extractor := metadata.NewExtractor(a.resolver)
	image, mediaType := extractor.Media(c.Context, md, a.ph.ForID(uri))
	fmt.Fprintf(c.App.Writer, "image: %s\nmediaType: %s\nvideo: %t\n",
		image, mediaType, a.service.IsVideoMedia(mediaType))

	return printJSON(c, md)
}

func (a *app) comingSoon(c *cli.Context) error {
	alerts := &feed.Alerts{}

	var (
		alert feed.Alert
		ok    bool
	)
	switch strings.ToLower(c.Args().First()) {
	case "favorites":
		alert, ok = alerts.Favorites()
	case "settings":
		alert, ok = alerts.Settings()
	case "opensea":
		alert, ok = alerts.OpenSea(c.String("contract"), c.String("token"))
	default:
		return fmt.Errorf("unknown feature %q", c.Args().First())
	}
	if !ok {
		return nil
	}

	fmt.Fprintf(c.App.Writer, "%s\n%s\n", alert.Title, alert.Message)
	return nil
}

func printPage(c *cli.Context, page *service.Page) {
	if page == nil {
		return
	}
	printNFTs(c, page.Collectibles)
}

func printNFTs(c *cli.Context, nfts []service.NFT) {
	for _, nft := range nfts {
		fmt.Fprintf(c.App.Writer, "%-48s %-32s %-14s %s owner=%s\n",
			nft.ID,
			nft.Name,
			nft.MediaType,
			nft.ImageURL,
			service.FormatAddress(nft.Owner, 6, 4),
		)
	}
}

func printJSON(c *cli.Context, v any) error {
	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// demoSource serves generated items as a single final page.
type demoSource struct {
	ph *placeholder.Generator
}

func (d demoSource) FetchPage(_ context.Context, req *service.FetchPageRequest) *service.Page {
	size := req.PageSize
	if size <= 0 {
		size = service.DefaultPageSize
	}
	return service.MockPage(size, d.ph, time.Now())
}
