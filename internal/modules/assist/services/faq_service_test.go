package services

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFaqService(seed int64) *FaqService {
	return NewFaqService(newStubFaqRepo(), rand.New(rand.NewSource(seed)))
}

func TestFaqAnswer(t *testing.T) {
	svc := newFaqService(1)

	t.Run("knowledge base hit", func(t *testing.T) {
		answer, found, err := svc.Answer("j'ai reçu un mail de phishing")
		require.NoError(t, err)
		require.True(t, found)
		assert.Contains(t, answer, "Vérifiez l'expéditeur")
		assert.Contains(t, answer, "Pour plus d'informations, consultez :")
		assert.Contains(t, answer, "https://assistance.orange-business.com/securite/phishing-definition")
	})

	t.Run("short tokens are ignored", func(t *testing.T) {
		// "dns" has three letters, so the row is only reachable
		// through the category fallback
		answer, found, err := svc.Answer("dns")
		require.NoError(t, err)
		require.True(t, found)
		assert.Contains(t, answer, "enregistrement A")
	})

	t.Run("password questions fall back to the reset procedure", func(t *testing.T) {
		answer, found, err := svc.Answer("Comment réinitialiser mon mot de passe")
		require.NoError(t, err)
		require.True(t, found)
		assert.Contains(t, answer, "réinitialisation par email et SMS")
		assert.Contains(t, answer, "modifier-son-mot-de-passe-oublie")
	})

	t.Run("no match at all", func(t *testing.T) {
		_, found, err := svc.Answer("recette des crêpes")
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestFaqPromptSuggestions(t *testing.T) {
	svc := newFaqService(1)

	prompts, err := svc.PromptSuggestions()
	require.NoError(t, err)
	require.Len(t, prompts, 4)

	seen := make(map[string]bool)
	for _, p := range prompts {
		assert.False(t, seen[p], "prompt %q drawn twice", p)
		seen[p] = true
	}
}
