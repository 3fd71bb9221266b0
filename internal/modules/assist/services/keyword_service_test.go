package services

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offerassist/assist-agent-be/internal/modules/assist/catalog"
	"github.com/offerassist/assist-agent-be/internal/modules/assist/models"
)

func newKeywordService(seed int64) *KeywordService {
	return NewKeywordService(newStubOfferRepo(), rand.New(rand.NewSource(seed)))
}

func TestGenerateInitialKeywords(t *testing.T) {
	svc := newKeywordService(1)

	suggestions, err := svc.GenerateInitialKeywords(3)
	require.NoError(t, err)
	require.NotEmpty(t, suggestions)

	seen := make(map[string]bool)
	perPersona := make(map[string]int)
	for _, s := range suggestions {
		assert.False(t, seen[s.Keyword], "keyword %q suggested twice", s.Keyword)
		seen[s.Keyword] = true

		assert.False(t, strings.HasPrefix(s.Keyword, models.InternalTagPrefix),
			"internal facet %q must not be suggested", s.Keyword)
		assert.Contains(t, catalog.Personas, s.Persona)
		perPersona[s.Persona]++
	}

	for persona, count := range perPersona {
		assert.LessOrEqual(t, count, 5, "persona %q exceeds its suggestion quota", persona)
	}
}

func TestGenerateInitialKeywordsHonorsThreshold(t *testing.T) {
	svc := newKeywordService(1)

	suggestions, err := svc.GenerateInitialKeywords(3)
	require.NoError(t, err)

	counts, _ := keywordCounts(catalog.Offers, nil)
	for _, s := range suggestions {
		assert.GreaterOrEqual(t, counts[s.Keyword], 3,
			"keyword %q suggested below the occurrence threshold", s.Keyword)
	}
}

func TestAvailableKeywords(t *testing.T) {
	svc := newKeywordService(1)

	t.Run("whole catalog when nothing is selected", func(t *testing.T) {
		available, err := svc.AvailableKeywords(nil)
		require.NoError(t, err)
		require.NotEmpty(t, available)
		assert.LessOrEqual(t, len(available), 15)
	})

	t.Run("selected keywords are excluded", func(t *testing.T) {
		available, err := svc.AvailableKeywords([]string{"sd-wan"})
		require.NoError(t, err)
		assert.NotContains(t, available, "sd-wan")
	})

	t.Run("sorted by descending frequency", func(t *testing.T) {
		available, err := svc.AvailableKeywords([]string{"sd-wan"})
		require.NoError(t, err)

		matched, err := svc.FilterOffers([]string{"sd-wan"})
		require.NoError(t, err)
		counts, _ := keywordCounts(matched, []string{"sd-wan"})
		for i := 1; i < len(available); i++ {
			assert.GreaterOrEqual(t, counts[available[i-1]], counts[available[i]])
		}
	})

	t.Run("impossible selection yields nothing", func(t *testing.T) {
		available, err := svc.AvailableKeywords([]string{"sd-wan", "genesys"})
		require.NoError(t, err)
		assert.Empty(t, available)
	})
}

func TestFilterOffers(t *testing.T) {
	svc := newKeywordService(1)

	t.Run("empty selection shows no offers", func(t *testing.T) {
		offers, err := svc.FilterOffers(nil)
		require.NoError(t, err)
		assert.Empty(t, offers)
	})

	t.Run("selection is a conjunction", func(t *testing.T) {
		offers, err := svc.FilterOffers([]string{"sd-wan", "sase"})
		require.NoError(t, err)
		require.NotEmpty(t, offers)
		for _, offer := range offers {
			assert.True(t, offer.HasKeyword("sd-wan"))
			assert.True(t, offer.HasKeyword("sase"))
		}
	})

	t.Run("narrowing never widens the result", func(t *testing.T) {
		broad, err := svc.FilterOffers([]string{"cloud"})
		require.NoError(t, err)
		narrow, err := svc.FilterOffers([]string{"cloud", "iaas"})
		require.NoError(t, err)
		assert.LessOrEqual(t, len(narrow), len(broad))
	})
}

func TestExtractKeywords(t *testing.T) {
	svc := newKeywordService(1)

	t.Run("literal catalog keywords", func(t *testing.T) {
		extracted, err := svc.ExtractKeywords("Je cherche une solution SD-WAN avec de la cybersecurity")
		require.NoError(t, err)
		assert.Contains(t, extracted, "sd-wan")
		assert.Contains(t, extracted, "cybersecurity")
	})

	t.Run("hyphenated keywords match their spaced form", func(t *testing.T) {
		extracted, err := svc.ExtractKeywords("un sd wan pour nos agences")
		require.NoError(t, err)
		assert.Contains(t, extracted, "sd-wan")
	})

	t.Run("at most three keywords", func(t *testing.T) {
		extracted, err := svc.ExtractKeywords("cloud sd-wan cybersecurity telephony voip analytics")
		require.NoError(t, err)
		assert.Len(t, extracted, 3)
	})

	t.Run("context fallback when nothing matches", func(t *testing.T) {
		extracted, err := svc.ExtractKeywords("Nous devons moderniser notre réseau d'agences")
		require.NoError(t, err)
		assert.Equal(t, []string{"sd-wan"}, extracted)
	})

	t.Run("no match and no context yields nothing", func(t *testing.T) {
		extracted, err := svc.ExtractKeywords("bonjour")
		require.NoError(t, err)
		assert.Empty(t, extracted)
	})
}
