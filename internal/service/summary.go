// Package service composes the pipeline stages over the stored records
// into the derived views the API and the exporter serve.
package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/avnergomes/comexstat-parana/internal/chains"
	"github.com/avnergomes/comexstat-parana/internal/domain/models"
	"github.com/avnergomes/comexstat-parana/internal/logger"
	"github.com/avnergomes/comexstat-parana/internal/pipeline"
	"github.com/avnergomes/comexstat-parana/internal/storage"
)

// ErrNoRecords means the configured scope matched nothing on either side.
var ErrNoRecords = errors.New("no trade records in scope")

// Options bounds and tunes one service instance.
type Options struct {
	Filter          pipeline.FilterOptions
	TopCountries    int
	TopProducts     int
	Flow            pipeline.FlowOptions
	ForecastPeriods int
}

// SummaryService loads both flow sides once and serves every derived view
// from that snapshot. The dataset is yearly and immutable between
// ingestion runs, so the snapshot never needs invalidation within a
// process lifetime.
type SummaryService struct {
	repo storage.TradeRepository
	lk   pipeline.Lookups
	opts Options

	once    sync.Once
	exports []models.EnrichedRecord
	imports []models.EnrichedRecord
	loadErr error
}

func NewSummaryService(repo storage.TradeRepository, lookups pipeline.Lookups, opts Options) *SummaryService {
	return &SummaryService{repo: repo, lk: lookups, opts: opts}
}

// load fetches, filters and enriches both sides in parallel, exactly once.
func (s *SummaryService) load(ctx context.Context) error {
	s.once.Do(func() {
		g, _ := errgroup.WithContext(ctx)
		g.Go(func() error {
			recs, err := s.repo.LoadRecords(models.FlowExport, s.opts.Filter.YearStart, s.opts.Filter.YearEnd)
			if err != nil {
				return err
			}
			s.exports = pipeline.Enrich(pipeline.Filter(recs, s.opts.Filter), s.lk)
			return nil
		})
		g.Go(func() error {
			recs, err := s.repo.LoadRecords(models.FlowImport, s.opts.Filter.YearStart, s.opts.Filter.YearEnd)
			if err != nil {
				return err
			}
			s.imports = pipeline.Enrich(pipeline.Filter(recs, s.opts.Filter), s.lk)
			return nil
		})
		s.loadErr = g.Wait()
		if s.loadErr == nil {
			logger.L().Info().Int("exports", len(s.exports)).Int("imports", len(s.imports)).Msg("trade snapshot loaded")
		}
	})
	if s.loadErr != nil {
		return s.loadErr
	}
	if len(s.exports) == 0 && len(s.imports) == 0 {
		return ErrNoRecords
	}
	return nil
}

func (s *SummaryService) side(flow models.Flow) []models.EnrichedRecord {
	if flow == models.FlowImport {
		return s.imports
	}
	return s.exports
}

// Summary builds the complete derived view of the dataset.
func (s *SummaryService) Summary(ctx context.Context) (*models.Summary, error) {
	if err := s.load(ctx); err != nil {
		return nil, err
	}

	expYear := pipeline.ByYear(s.exports)
	impYear := pipeline.ByYear(s.imports)

	sum := &models.Summary{
		Metadata:          s.metadata(),
		Filters:           s.filters(),
		Timeseries:        pipeline.Reconcile(expYear, impYear),
		TimeseriesMonthly: pipeline.Reconcile(pipeline.ByMonth(s.exports), pipeline.ByMonth(s.imports)),
		TimeseriesByChain: pipeline.ReconcileChains(pipeline.ByChainYear(s.exports), pipeline.ByChainYear(s.imports)),
		ByChain: models.SideRollups{
			Exports: pipeline.ByChain(s.exports),
			Imports: pipeline.ByChain(s.imports),
		},
		ByCountry: models.CountryRollups{
			Exports: pipeline.ByCountry(s.exports, s.opts.TopCountries),
			Imports: pipeline.ByCountry(s.imports, s.opts.TopCountries),
		},
		TopProducts: models.ProductRollups{
			Exports: pipeline.ByProduct(s.exports, s.opts.TopProducts),
			Imports: pipeline.ByProduct(s.imports, s.opts.TopProducts),
		},
		FlowGraph: pipeline.BuildFlowGraph(s.exports, s.opts.Flow),
		Forecast:  pipeline.ForecastYearly(expYear, impYear, s.opts.ForecastPeriods),
	}
	return sum, nil
}

// Timeseries returns the reconciled balance series, monthly or yearly.
func (s *SummaryService) Timeseries(ctx context.Context, monthly bool) ([]models.BalanceRow, error) {
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	if monthly {
		return pipeline.Reconcile(pipeline.ByMonth(s.exports), pipeline.ByMonth(s.imports)), nil
	}
	return pipeline.Reconcile(pipeline.ByYear(s.exports), pipeline.ByYear(s.imports)), nil
}

// Chains returns the by-chain rollup for one flow side.
func (s *SummaryService) Chains(ctx context.Context, flow models.Flow) ([]models.ChainRow, error) {
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return pipeline.ByChain(s.side(flow)), nil
}

// Countries returns the by-country rollup for one flow side. top <= 0
// falls back to the configured default.
func (s *SummaryService) Countries(ctx context.Context, flow models.Flow, top int) ([]models.CountryRow, error) {
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	if top <= 0 {
		top = s.opts.TopCountries
	}
	return pipeline.ByCountry(s.side(flow), top), nil
}

// Products returns the top-products rollup for one flow side.
func (s *SummaryService) Products(ctx context.Context, flow models.Flow, top int) ([]models.ProductRow, error) {
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	if top <= 0 {
		top = s.opts.TopProducts
	}
	return pipeline.ByProduct(s.side(flow), top), nil
}

// FlowGraph returns the pruned origin→destination graph of the exports.
func (s *SummaryService) FlowGraph(ctx context.Context) (models.FlowGraph, error) {
	if err := s.load(ctx); err != nil {
		return models.FlowGraph{}, err
	}
	return pipeline.BuildFlowGraph(s.exports, s.opts.Flow), nil
}

// Balance returns the reconciled yearly balance.
func (s *SummaryService) Balance(ctx context.Context) ([]models.BalanceRow, error) {
	return s.Timeseries(ctx, false)
}

// Forecast projects both sides and the balance forward.
func (s *SummaryService) Forecast(ctx context.Context) (models.Forecast, error) {
	if err := s.load(ctx); err != nil {
		return models.Forecast{}, err
	}
	return pipeline.ForecastYearly(pipeline.ByYear(s.exports), pipeline.ByYear(s.imports), s.opts.ForecastPeriods), nil
}

func (s *SummaryService) metadata() models.Metadata {
	m := models.Metadata{
		ExportRecords: len(s.exports),
		ImportRecords: len(s.imports),
	}

	years := make(map[int]bool)
	expProducts := make(map[string]bool)
	impProducts := make(map[string]bool)
	destinations := make(map[string]bool)
	origins := make(map[string]bool)

	for _, r := range s.exports {
		years[r.Year] = true
		expProducts[r.ProductCode] = true
		destinations[r.CountryName] = true
		m.ExportValue += r.Value
		m.ExportWeight += r.Weight
	}
	for _, r := range s.imports {
		years[r.Year] = true
		impProducts[r.ProductCode] = true
		origins[r.CountryName] = true
		m.ImportValue += r.Value
		m.ImportWeight += r.Weight
	}

	for y := range years {
		m.Years = append(m.Years, y)
	}
	sort.Ints(m.Years)
	if len(m.Years) > 0 {
		m.YearMin = m.Years[0]
		m.YearMax = m.Years[len(m.Years)-1]
	}
	m.ExportProducts = len(expProducts)
	m.ImportProducts = len(impProducts)
	m.Destinations = len(destinations)
	m.Origins = len(origins)
	return m
}

func (s *SummaryService) filters() models.Filters {
	chapterSet := make(map[int]bool)
	chainSet := make(map[string]bool)
	expCountries := make(map[string]bool)
	impCountries := make(map[string]bool)

	for _, r := range s.exports {
		chapterSet[r.Chapter] = true
		chainSet[r.ChainID] = true
		expCountries[r.CountryName] = true
	}
	for _, r := range s.imports {
		chapterSet[r.Chapter] = true
		chainSet[r.ChainID] = true
		impCountries[r.CountryName] = true
	}

	var f models.Filters
	var chapterCodes []int
	for c := range chapterSet {
		chapterCodes = append(chapterCodes, c)
	}
	sort.Ints(chapterCodes)
	for _, c := range chapterCodes {
		f.Chapters = append(f.Chapters, models.ChapterFilter{Code: c, Name: chains.ChapterName(c)})
	}

	// Chains keep their fixed presentation order.
	for _, c := range chains.All() {
		if chainSet[c.ID()] {
			f.Chains = append(f.Chains, models.ChainFilter{
				Name:  c.Name(),
				Color: c.Color(),
				Kind:  string(c.Kind()),
			})
		}
	}

	f.ExportCountries = sortedKeys(expCountries)
	f.ImportCountries = sortedKeys(impCountries)
	return f
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
