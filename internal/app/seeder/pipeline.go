package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
	"github.com/bhagyarekha373/Reuse-Hub/internal/service/auth"
	"github.com/bhagyarekha373/Reuse-Hub/internal/service/catalog"
)

// Phase names in canonical execution order.
const (
	PhaseCategories = "categories"
	PhaseListings   = "listings"
)

var allPhases = []string{PhaseCategories, PhaseListings}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Errors   int
	Duration time.Duration
	Err      error
}

// Pipeline seeds categories first, then every seller and their listings.
type Pipeline struct {
	log        *slog.Logger
	categories CategoryStore
	cache      CacheInvalidator
	accounts   Accounts
	listings   Listings
	cfg        Config
	results    map[string]PhaseResult
}

// NewPipeline creates a new Pipeline. cache may be nil.
func NewPipeline(
	log *slog.Logger,
	categories CategoryStore,
	cache CacheInvalidator,
	accounts Accounts,
	listings Listings,
	cfg Config,
) *Pipeline {
	return &Pipeline{
		log:        log,
		categories: categories,
		cache:      cache,
		accounts:   accounts,
		listings:   listings,
		cfg:        cfg,
		results:    make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil || r.Errors > 0 {
			return true
		}
	}
	return false
}

// Run executes the pipeline over ds. If phases is non-empty, only the
// listed phases run.
func (p *Pipeline) Run(ctx context.Context, ds *Dataset, phases []string) error {
	toRun := allPhases
	if len(phases) > 0 {
		filter := make(map[string]bool, len(phases))
		for _, ph := range phases {
			filter[ph] = true
		}
		var filtered []string
		for _, ph := range allPhases {
			if filter[ph] {
				filtered = append(filtered, ph)
			}
		}
		if len(filtered) == 0 {
			return fmt.Errorf("no known phase in %v", phases)
		}
		toRun = filtered
	}

	for _, phase := range toRun {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case PhaseCategories:
			result = p.runCategories(ctx, ds.Categories)
		case PhaseListings:
			result = p.runListings(ctx, ds.Sellers)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
		} else {
			p.log.Info("phase completed",
				slog.String("phase", phase),
				slog.Int("inserted", result.Inserted),
				slog.Int("skipped", result.Skipped),
				slog.Int("errors", result.Errors),
				slog.Duration("duration", result.Duration),
			)
		}
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

func (p *Pipeline) runCategories(ctx context.Context, seeds []CategorySeed) PhaseResult {
	existing, err := p.categories.List(ctx)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("list categories: %w", err)}
	}
	known := make(map[string]bool, len(existing))
	for _, c := range existing {
		known[strings.ToLower(c.Name)] = true
	}

	var result PhaseResult
	for _, s := range seeds {
		if known[strings.ToLower(s.Name)] {
			result.Skipped++
			continue
		}
		if _, ok := domain.IconFor(s.Icon); !ok {
			p.log.Warn("unknown category icon", slog.String("category", s.Name), slog.String("icon", s.Icon))
			result.Errors++
			continue
		}
		if p.cfg.DryRun {
			result.Skipped++
			continue
		}
		if err := p.categories.Create(ctx, s.Name, s.Icon); err != nil {
			return PhaseResult{Err: fmt.Errorf("create category %q: %w", s.Name, err)}
		}
		known[strings.ToLower(s.Name)] = true
		result.Inserted++
	}

	if result.Inserted > 0 && p.cache != nil {
		if err := p.cache.Invalidate(ctx); err != nil {
			p.log.Warn("category cache invalidation failed", slog.String("error", err.Error()))
		}
	}
	return result
}

func (p *Pipeline) runListings(ctx context.Context, sellers []SellerSeed) PhaseResult {
	cats, err := p.categories.List(ctx)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("list categories: %w", err)}
	}
	byName := make(map[string]uuid.UUID, len(cats))
	for _, c := range cats {
		byName[strings.ToLower(c.Name)] = c.ID
	}

	var result PhaseResult
	for _, seller := range sellers {
		if p.cfg.DryRun {
			result.Skipped += len(seller.Items)
			continue
		}

		ownerID, err := p.signIn(ctx, seller)
		if err != nil {
			p.log.Warn("seller sign in failed",
				slog.String("username", seller.Username),
				slog.String("error", err.Error()),
			)
			result.Errors += len(seller.Items)
			continue
		}

		listed, err := p.listings.ListByOwner(ctx, ownerID)
		if err != nil {
			return PhaseResult{Err: fmt.Errorf("list items of %s: %w", seller.Username, err)}
		}
		titles := make(map[string]bool, len(listed))
		for _, it := range listed {
			titles[it.Title] = true
		}

		for _, item := range seller.Items {
			if titles[item.Title] {
				result.Skipped++
				continue
			}
			in, err := itemInput(item, byName)
			if err == nil && seller.Phone != "" {
				in.Phone = &seller.Phone
			}
			if err == nil {
				_, err = p.listings.Create(ctx, in)
			}
			if err != nil {
				p.log.Warn("item rejected",
					slog.String("username", seller.Username),
					slog.String("title", item.Title),
					slog.String("error", err.Error()),
				)
				result.Errors++
				continue
			}
			result.Inserted++
		}
	}
	return result
}

// signIn makes seller the current session, creating the account on first use.
func (p *Pipeline) signIn(ctx context.Context, seller SellerSeed) (uuid.UUID, error) {
	password := seller.Password
	if password == "" {
		password = p.cfg.Password
	}

	res, err := p.accounts.SignUp(ctx, auth.SignUpInput{
		Email:    seller.Email,
		Username: seller.Username,
		Password: password,
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		res, err = p.accounts.SignIn(ctx, auth.SignInInput{Email: seller.Email, Password: password})
	}
	if err != nil {
		return uuid.Nil, err
	}
	return res.User.ID, nil
}

func itemInput(s ItemSeed, categories map[string]uuid.UUID) (catalog.ItemInput, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(s.Price))
	if err != nil {
		return catalog.ItemInput{}, fmt.Errorf("price %q: %w", s.Price, err)
	}
	in := catalog.ItemInput{
		Title:       s.Title,
		Description: s.Description,
		Price:       price,
		Location:    s.Location,
	}
	if s.Category != "" {
		id, ok := categories[strings.ToLower(s.Category)]
		if !ok {
			return catalog.ItemInput{}, fmt.Errorf("category %q: %w", s.Category, domain.ErrNotFound)
		}
		in.CategoryID = &id
	}
	return in, nil
}
