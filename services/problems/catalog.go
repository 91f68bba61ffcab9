package problems

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"tutoragents/models"
	"tutoragents/platform/logger"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

const DefaultCacheSize = 64

// Catalog serves the problem documents of one data directory, addressed by
// problem id (the file name without .json). Each id is loaded once.
type Catalog struct {
	dir   string
	cache *lru.Cache[string, *models.ProblemDocument]
	log   *logger.Logger
}

func NewCatalog(dir string, cacheSize int, log *logger.Logger) (*Catalog, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, *models.ProblemDocument](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create problem cache: %w", err)
	}
	return &Catalog{dir: dir, cache: cache, log: logger.OrNop(log)}, nil
}

func (c *Catalog) Dir() string { return c.dir }

func (c *Catalog) Path(id string) string {
	return filepath.Join(c.dir, id+".json")
}

func (c *Catalog) Get(id string) (*models.ProblemDocument, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if doc, ok := c.cache.Get(id); ok {
		return doc, nil
	}

	doc, err := Load(c.Path(id))
	if err != nil {
		c.log.Error("problem load failed", "problem", id, "error", err)
		return nil, err
	}
	c.cache.Add(id, doc)
	c.log.Info("problem loaded", "problem", id, "steps", doc.StepCount())
	return doc, nil
}

// IDs lists the problem ids in the directory in lexical order.
func (c *Catalog) IDs() ([]string, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read problem dir %s: %w", c.dir, err)
	}
	ids := lo.FilterMap(entries, func(e os.DirEntry, _ int) (string, bool) {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			return "", false
		}
		return strings.TrimSuffix(e.Name(), ".json"), true
	})
	sort.Strings(ids)
	return ids, nil
}

// List summarizes every loadable problem. Files that fail validation are
// logged and left out.
func (c *Catalog) List() ([]models.ProblemSummary, error) {
	ids, err := c.IDs()
	if err != nil {
		return nil, err
	}

	summaries := make([]models.ProblemSummary, 0, len(ids))
	for _, id := range ids {
		doc, err := c.Get(id)
		if err != nil {
			continue
		}
		summaries = append(summaries, models.ProblemSummary{
			ID:        id,
			Topic:     doc.Topic,
			Title:     doc.Title,
			StepCount: doc.StepCount(),
		})
	}
	return summaries, nil
}

// Search returns the problems whose id, topic or title fuzzily matches any of
// the whitespace separated terms, closest matches first.
func (c *Catalog) Search(query string) ([]models.ProblemSummary, error) {
	all, err := c.List()
	if err != nil {
		return nil, err
	}

	terms := strings.Fields(query)
	if len(terms) == 0 {
		return all, nil
	}

	type ranked struct {
		summary models.ProblemSummary
		rank    int
	}
	var matches []ranked
	for _, s := range all {
		if rank, ok := matchSummary(s, terms); ok {
			matches = append(matches, ranked{summary: s, rank: rank})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].rank < matches[j].rank })

	c.log.Debug("problem search", "query", query, "matches", len(matches))
	return lo.Map(matches, func(m ranked, _ int) models.ProblemSummary { return m.summary }), nil
}

func matchSummary(s models.ProblemSummary, terms []string) (int, bool) {
	fields := []string{s.ID, s.Topic, s.Title}
	best := -1
	for _, term := range terms {
		for _, field := range fields {
			if !fuzzy.MatchFold(term, field) {
				continue
			}
			rank := fuzzy.RankMatchFold(term, field)
			if best < 0 || rank < best {
				best = rank
			}
		}
	}
	return best, best >= 0
}

func validateID(id string) error {
	if id == "" || strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}
