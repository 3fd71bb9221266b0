package services

import (
	"math/rand"
	"sort"
	"strings"
	"sync"

	"github.com/offerassist/assist-agent-be/internal/modules/assist/catalog"
	"github.com/offerassist/assist-agent-be/internal/modules/assist/models"
	"github.com/offerassist/assist-agent-be/internal/modules/assist/repositories"
)

const (
	keywordsPerPersona   = 5
	maxAvailableKeywords = 15
	maxExtractedKeywords = 3
)

// KeywordService derives the suggested keyword chips and the facet
// lists used to refine an offer search.
type KeywordService struct {
	offerRepo repositories.OfferRepo

	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewKeywordService(offerRepo repositories.OfferRepo, rng *rand.Rand) *KeywordService {
	return &KeywordService{
		offerRepo: offerRepo,
		rng:       rng,
	}
}

// GenerateInitialKeywords builds the balanced initial suggestion set:
// keywords carried by at least minOccurrences offers, grouped per
// persona (up to 5 each, ranked by descending offer count), then
// shuffled. No keyword appears twice.
func (s *KeywordService) GenerateInitialKeywords(minOccurrences int) ([]models.KeywordSuggestion, error) {
	offers, err := s.offerRepo.ListActive()
	if err != nil {
		return nil, err
	}

	counts, order := keywordCounts(offers, nil)

	eligible := make([]string, 0, len(order))
	for _, kw := range order {
		if counts[kw] >= minOccurrences {
			eligible = append(eligible, kw)
		}
	}

	assigned := make(map[string]bool)
	var result []models.KeywordSuggestion
	for _, personaKey := range catalog.PersonaOrder {
		persona := catalog.Personas[personaKey]

		bucket := make([]string, 0, len(eligible))
		for _, kw := range eligible {
			if persona.HasTag(kw) {
				bucket = append(bucket, kw)
			}
		}
		sort.SliceStable(bucket, func(i, j int) bool {
			return counts[bucket[i]] > counts[bucket[j]]
		})

		taken := 0
		for _, kw := range bucket {
			if taken >= keywordsPerPersona {
				break
			}
			if assigned[kw] {
				continue
			}
			assigned[kw] = true
			result = append(result, models.KeywordSuggestion{Keyword: kw, Persona: personaKey})
			taken++
		}
	}

	// Fisher-Yates shuffle: presentation order is intentionally random
	s.rngMu.Lock()
	s.rng.Shuffle(len(result), func(i, j int) {
		result[i], result[j] = result[j], result[i]
	})
	s.rngMu.Unlock()

	return result, nil
}

// AvailableKeywords computes the next refinement facets for a
// selection: the most frequent remaining keywords across the offers
// that still match, capped at 15. An empty selection considers the
// whole catalog; a selection matching nothing yields nothing.
func (s *KeywordService) AvailableKeywords(selected []string) ([]string, error) {
	offers, err := s.offerRepo.ListActive()
	if err != nil {
		return nil, err
	}

	filtered := offers
	if len(selected) > 0 {
		filtered = make([]models.Offer, 0, len(offers))
		for _, offer := range offers {
			if offer.MatchesAll(selected) {
				filtered = append(filtered, offer)
			}
		}
	}
	if len(filtered) == 0 {
		return []string{}, nil
	}

	counts, order := keywordCounts(filtered, selected)
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > maxAvailableKeywords {
		order = order[:maxAvailableKeywords]
	}
	return order, nil
}

// FilterOffers returns the offers whose keyword set is a superset of
// the selection. An empty selection shows no results: the panel only
// opens once the visitor picked at least one keyword.
func (s *KeywordService) FilterOffers(selected []string) ([]models.Offer, error) {
	if len(selected) == 0 {
		return []models.Offer{}, nil
	}

	offers, err := s.offerRepo.ListActive()
	if err != nil {
		return nil, err
	}

	matched := make([]models.Offer, 0, len(offers))
	for _, offer := range offers {
		if offer.MatchesAll(selected) {
			matched = append(matched, offer)
		}
	}
	return matched, nil
}

// ExtractKeywords mines a free-text prompt for catalog keywords. Each
// non-internal keyword matches on its literal or hyphen-to-space form;
// when nothing matches, broad context fallbacks apply. At most 3
// keywords are returned.
func (s *KeywordService) ExtractKeywords(prompt string) ([]string, error) {
	offers, err := s.offerRepo.ListActive()
	if err != nil {
		return nil, err
	}

	lower := strings.ToLower(prompt)

	_, order := keywordCounts(offers, nil)
	var extracted []string
	for _, kw := range order {
		plain := strings.ToLower(kw)
		spaced := strings.ReplaceAll(plain, "-", " ")
		if strings.Contains(lower, plain) || strings.Contains(lower, spaced) {
			extracted = append(extracted, kw)
		}
	}

	if len(extracted) == 0 {
		switch {
		case strings.Contains(lower, "réseau") || strings.Contains(lower, "network"):
			extracted = []string{"sd-wan"}
		case strings.Contains(lower, "sécurité") || strings.Contains(lower, "security"):
			extracted = []string{"cybersecurity"}
		case strings.Contains(lower, "collaboration") || strings.Contains(lower, "teams"):
			extracted = []string{"webex"}
		case strings.Contains(lower, "données") || strings.Contains(lower, "data"):
			extracted = []string{"ai"}
		}
	}

	if len(extracted) > maxExtractedKeywords {
		extracted = extracted[:maxExtractedKeywords]
	}
	return extracted, nil
}

// keywordCounts tallies non-internal keywords across offers, skipping
// any keyword in exclude. The returned slice preserves first-seen
// order, which is the tie-break for frequency sorting.
func keywordCounts(offers []models.Offer, exclude []string) (map[string]int, []string) {
	excluded := make(map[string]bool, len(exclude))
	for _, kw := range exclude {
		excluded[kw] = true
	}

	counts := make(map[string]int)
	var order []string
	for _, offer := range offers {
		for _, kw := range offer.Keywords {
			if strings.HasPrefix(kw, models.InternalTagPrefix) || excluded[kw] {
				continue
			}
			if _, seen := counts[kw]; !seen {
				order = append(order, kw)
			}
			counts[kw]++
		}
	}
	return counts, order
}
