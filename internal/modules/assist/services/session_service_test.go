package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offerassist/assist-agent-be/internal/modules/assist/catalog"
	"github.com/offerassist/assist-agent-be/internal/modules/assist/models"
)

const testTTL = 30 * time.Minute

func openSession(t *testing.T, env *testEnv) *SessionView {
	t.Helper()
	view, err := env.sessionSvc.Open("fr", "")
	require.NoError(t, err)
	return view
}

func TestOpenSession(t *testing.T) {
	env := newTestEnv(1, testTTL)

	view := openSession(t, env)
	assert.Equal(t, models.ViewInitial, view.View)
	assert.NotEmpty(t, view.Session.InitialKeywords)
	assert.Empty(t, view.Session.Selected)
	assert.Empty(t, view.Offers)
	assert.Len(t, view.Session.FaqChat.Prompts, 4)
}

func TestOpenSessionProactiveTrigger(t *testing.T) {
	env := newTestEnv(1, testTTL)

	webexURL := "https://www.orange-business.com/be-en/solutions/collaboration-remote-working/workplace-together-webex"
	view, err := env.sessionSvc.Open("fr", webexURL)
	require.NoError(t, err)

	assert.Equal(t, models.ViewProactiveMessage, view.View)
	require.NotNil(t, view.Proactive)
	assert.Contains(t, view.Proactive.Message, "Webex")

	// Selecting a keyword dismisses the proactive message
	selected, err := env.sessionSvc.SelectKeyword(view.Session.ID, "sd-wan")
	require.NoError(t, err)
	assert.Equal(t, models.ViewRefinement, selected.View)
	assert.Nil(t, selected.Proactive)
}

func TestKeywordSelectionStateMachine(t *testing.T) {
	env := newTestEnv(1, testTTL)
	view := openSession(t, env)
	id := view.Session.ID

	view, err := env.sessionSvc.SelectKeyword(id, "sd-wan")
	require.NoError(t, err)
	assert.Equal(t, models.ViewRefinement, view.View)
	assert.Equal(t, []string{"sd-wan"}, view.Session.Selected)
	assert.Equal(t, "cio", view.Session.ActivePersona)
	assert.NotEmpty(t, view.Offers)
	assert.NotContains(t, view.AvailableKeywords, "sd-wan")

	// Re-selecting is a no-op
	view, err = env.sessionSvc.SelectKeyword(id, "sd-wan")
	require.NoError(t, err)
	assert.Equal(t, []string{"sd-wan"}, view.Session.Selected)

	view, err = env.sessionSvc.SelectKeyword(id, "sase")
	require.NoError(t, err)
	assert.Equal(t, []string{"sd-wan", "sase"}, view.Session.Selected)
	for _, offer := range view.Offers {
		assert.Contains(t, offer.Keywords, "sd-wan")
		assert.Contains(t, offer.Keywords, "sase")
	}

	view, err = env.sessionSvc.DeselectKeyword(id, "sase")
	require.NoError(t, err)
	assert.Equal(t, models.ViewRefinement, view.View)

	// Emptying the selection returns to the initial panel
	view, err = env.sessionSvc.DeselectKeyword(id, "sd-wan")
	require.NoError(t, err)
	assert.Equal(t, models.ViewInitial, view.View)
	assert.Empty(t, view.Session.ActivePersona)
}

func TestSubmitPrompt(t *testing.T) {
	env := newTestEnv(1, testTTL)
	view := openSession(t, env)
	id := view.Session.ID

	view, err := env.sessionSvc.SubmitPrompt(id, "Je cherche un SD-WAN pour mes agences")
	require.NoError(t, err)
	assert.True(t, view.Session.PromptLoading)
	assert.Empty(t, view.Session.Selected)

	// A second submission while the analysis runs is rejected
	_, err = env.sessionSvc.SubmitPrompt(id, "autre demande")
	assert.ErrorIs(t, err, ErrAgentBusy)

	env.sched.Advance(promptAnalysisDelay)

	view, err = env.sessionSvc.State(id)
	require.NoError(t, err)
	assert.False(t, view.Session.PromptLoading)
	assert.Equal(t, models.ViewRefinement, view.View)
	assert.Contains(t, view.Session.Selected, "sd-wan")
	assert.Equal(t, "cio", view.Session.ActivePersona)
}

func TestOfferChatFlow(t *testing.T) {
	env := newTestEnv(1, testTTL)
	view := openSession(t, env)
	id := view.Session.ID

	view, err := env.sessionSvc.StartOfferChat(id, "O004")
	require.NoError(t, err)
	assert.Equal(t, models.ViewOfferChat, view.View)
	require.Len(t, view.Session.OfferChat.History, 1)
	assert.Equal(t, models.RoleAgent, view.Session.OfferChat.History[0].Role)
	assert.Contains(t, view.Session.OfferChat.History[0].Text, "Alex")
	assert.True(t, view.Session.OfferChat.GeneratingQuestions)

	env.sched.Advance(questionGenDelay)
	view, err = env.sessionSvc.State(id)
	require.NoError(t, err)
	assert.False(t, view.Session.OfferChat.GeneratingQuestions)
	assert.Len(t, view.Session.OfferChat.SuggestedQuestions, 3)

	view, err = env.sessionSvc.SubmitOfferChatMessage(id, "quel est le prix ?", false)
	require.NoError(t, err)
	assert.True(t, view.Session.OfferChat.Typing)
	require.Len(t, view.Session.OfferChat.History, 2)

	// The agent is busy until the typing delay elapses
	_, err = env.sessionSvc.SubmitOfferChatMessage(id, "une autre question", false)
	assert.ErrorIs(t, err, ErrAgentBusy)

	env.sched.Advance(typingDelay)
	view, err = env.sessionSvc.State(id)
	require.NoError(t, err)
	assert.False(t, view.Session.OfferChat.Typing)
	require.Len(t, view.Session.OfferChat.History, 3)
	reply := view.Session.OfferChat.History[2]
	assert.Equal(t, models.RoleAgent, reply.Role)
	assert.Contains(t, reply.Text, "devis")
	assert.Equal(t, []string{"Ajouter au panier", "Contacter un expert"}, reply.Suggestions)
}

func TestOfferChatPurchaseIntentAddsToCart(t *testing.T) {
	env := newTestEnv(1, testTTL)
	view := openSession(t, env)
	id := view.Session.ID

	_, err := env.sessionSvc.StartOfferChat(id, "O004")
	require.NoError(t, err)

	_, err = env.sessionSvc.SubmitOfferChatMessage(id, "je veux commander", false)
	require.NoError(t, err)

	env.sched.Advance(typingDelay)
	view, err = env.sessionSvc.State(id)
	require.NoError(t, err)
	assert.Empty(t, view.Session.Cart, "cart add must wait for its follow-up delay")

	env.sched.Advance(cartFollowUpDelay)
	view, err = env.sessionSvc.State(id)
	require.NoError(t, err)
	require.Len(t, view.Session.Cart, 1)
	assert.Equal(t, "O004", view.Session.Cart[0].OfferID)
}

func TestOfferChatContactIntentOpensContact(t *testing.T) {
	env := newTestEnv(1, testTTL)
	view := openSession(t, env)
	id := view.Session.ID

	_, err := env.sessionSvc.StartOfferChat(id, "O004")
	require.NoError(t, err)

	_, err = env.sessionSvc.SubmitOfferChatMessage(id, "je veux parler à un conseiller", false)
	require.NoError(t, err)

	env.sched.Advance(typingDelay + contactFollowUpDelay)
	view, err = env.sessionSvc.State(id)
	require.NoError(t, err)
	assert.Equal(t, models.ViewContact, view.View)
}

func TestOfferChatCartChipAddsImmediately(t *testing.T) {
	env := newTestEnv(1, testTTL)
	view := openSession(t, env)
	id := view.Session.ID

	_, err := env.sessionSvc.StartOfferChat(id, "O004")
	require.NoError(t, err)

	// Produce a reply carrying the two quick-reply chips
	_, err = env.sessionSvc.SubmitOfferChatMessage(id, "quel est le prix ?", false)
	require.NoError(t, err)
	env.sched.Advance(typingDelay)

	view, err = env.sessionSvc.State(id)
	require.NoError(t, err)
	require.Len(t, view.Session.OfferChat.History, 3)
	require.NotEmpty(t, view.Session.OfferChat.History[2].Suggestions)

	// Clicking the cart chip acts at once: no echoed message, no typing
	// pause, the chip list consumed and the offer already in the cart.
	view, err = env.sessionSvc.SubmitOfferChatMessage(id, "Ajouter au panier", true)
	require.NoError(t, err)
	assert.Len(t, view.Session.OfferChat.History, 3)
	assert.False(t, view.Session.OfferChat.Typing)
	assert.Empty(t, view.Session.OfferChat.History[2].Suggestions)
	require.Len(t, view.Session.Cart, 1)
	assert.Equal(t, "O004", view.Session.Cart[0].OfferID)
}

func TestOfferChatExpertChipOpensContactImmediately(t *testing.T) {
	env := newTestEnv(1, testTTL)
	view := openSession(t, env)
	id := view.Session.ID

	_, err := env.sessionSvc.StartOfferChat(id, "O004")
	require.NoError(t, err)
	_, err = env.sessionSvc.SubmitOfferChatMessage(id, "quel est le prix ?", false)
	require.NoError(t, err)
	env.sched.Advance(typingDelay)

	view, err = env.sessionSvc.SubmitOfferChatMessage(id, "Contacter un expert", true)
	require.NoError(t, err)
	assert.Equal(t, models.ViewContact, view.View)
	assert.Len(t, view.Session.OfferChat.History, 3)
	assert.Empty(t, view.Session.OfferChat.History[2].Suggestions)
}

func TestOfferChatSubmissionConsumesSuggestedQuestions(t *testing.T) {
	env := newTestEnv(1, testTTL)
	view := openSession(t, env)
	id := view.Session.ID

	_, err := env.sessionSvc.StartOfferChat(id, "O004")
	require.NoError(t, err)
	env.sched.Advance(questionGenDelay)

	view, err = env.sessionSvc.State(id)
	require.NoError(t, err)
	require.Len(t, view.Session.OfferChat.SuggestedQuestions, 3)

	// A typed message consumes the suggested questions just like a click
	view, err = env.sessionSvc.SubmitOfferChatMessage(id, "quel est le prix ?", false)
	require.NoError(t, err)
	assert.Empty(t, view.Session.OfferChat.SuggestedQuestions)
}

func TestFaqFlow(t *testing.T) {
	env := newTestEnv(1, testTTL)
	view := openSession(t, env)
	id := view.Session.ID

	view, err := env.sessionSvc.OpenFaq(id)
	require.NoError(t, err)
	assert.Equal(t, models.ViewFaq, view.View)
	assert.Len(t, view.Session.FaqChat.Prompts, 4)

	view, err = env.sessionSvc.SubmitFaqMessage(id, "j'ai reçu un mail de phishing")
	require.NoError(t, err)
	assert.True(t, view.Session.FaqChat.Typing)

	_, err = env.sessionSvc.SubmitFaqMessage(id, "autre question")
	assert.ErrorIs(t, err, ErrAgentBusy)

	env.sched.Advance(typingDelay)
	view, err = env.sessionSvc.State(id)
	require.NoError(t, err)
	assert.False(t, view.Session.FaqChat.Typing)
	require.Len(t, view.Session.FaqChat.History, 2)
	assert.Contains(t, view.Session.FaqChat.History[1].Text, "phishing")
}

func TestFaqNoAnswerFallback(t *testing.T) {
	env := newTestEnv(1, testTTL)
	view := openSession(t, env)
	id := view.Session.ID

	_, err := env.sessionSvc.SubmitFaqMessage(id, "recette des crêpes")
	require.NoError(t, err)
	env.sched.Advance(typingDelay)

	view, err = env.sessionSvc.State(id)
	require.NoError(t, err)
	require.Len(t, view.Session.FaqChat.History, 2)
	reply := view.Session.FaqChat.History[1]
	assert.Contains(t, reply.Text, "base de connaissances")
	assert.Equal(t, []string{"Contacter un expert"}, reply.Suggestions)

	// The escalation chip jumps to the contact form
	view, err = env.sessionSvc.SubmitFaqMessage(id, "Contacter un expert")
	require.NoError(t, err)
	assert.Equal(t, models.ViewContact, view.View)
}

func TestCartLifecycle(t *testing.T) {
	env := newTestEnv(1, testTTL)
	view := openSession(t, env)
	id := view.Session.ID

	flight := &models.CartFlight{
		Source: models.FlightRect{X: 10, Y: 20, Width: 200, Height: 80},
		Target: models.FlightPoint{X: 300, Y: 5},
	}
	view, err := env.sessionSvc.AddToCart(id, "O002", flight)
	require.NoError(t, err)
	require.Len(t, view.Session.Cart, 1)
	require.NotNil(t, view.Session.LastFlight)
	assert.Equal(t, "O002", view.Session.LastFlight.OfferID)

	// Duplicate adds are silent no-ops
	view, err = env.sessionSvc.AddToCart(id, "O002", nil)
	require.NoError(t, err)
	assert.Len(t, view.Session.Cart, 1)

	view, err = env.sessionSvc.RemoveFromCart(id, "O002")
	require.NoError(t, err)
	assert.Empty(t, view.Session.Cart)

	_, err = env.sessionSvc.AddToCart(id, "O999", nil)
	assert.ErrorIs(t, err, ErrOfferNotFound)
}

func TestProServicesCompanionFlow(t *testing.T) {
	t.Run("prompt holds the insertion", func(t *testing.T) {
		env := newTestEnv(1, testTTL)
		view := openSession(t, env)
		id := view.Session.ID

		view, err := env.sessionSvc.AddToCart(id, catalog.ProServicesOfferID, nil)
		require.NoError(t, err)
		assert.Equal(t, catalog.ProServicesOfferID, view.Session.PendingProOffer)
		assert.Empty(t, view.Session.Cart, "nothing lands in the cart until the prompt is answered")
	})

	t.Run("confirm inserts offer and companion", func(t *testing.T) {
		env := newTestEnv(1, testTTL)
		view := openSession(t, env)
		id := view.Session.ID

		flight := &models.CartFlight{
			Source: models.FlightRect{X: 10, Y: 20, Width: 200, Height: 80},
			Target: models.FlightPoint{X: 300, Y: 5},
		}
		_, err := env.sessionSvc.AddToCart(id, catalog.ProServicesOfferID, flight)
		require.NoError(t, err)

		view, err = env.sessionSvc.ResolveProServices(id, true)
		require.NoError(t, err)
		assert.Empty(t, view.Session.PendingProOffer)
		require.Len(t, view.Session.Cart, 2)
		assert.Equal(t, catalog.ProServicesOfferID, view.Session.Cart[0].OfferID)
		assert.Equal(t, catalog.ProServicesCompanion.OfferID, view.Session.Cart[1].OfferID)

		// The held animation flight replays at resolution
		require.NotNil(t, view.Session.LastFlight)
		assert.Equal(t, catalog.ProServicesOfferID, view.Session.LastFlight.OfferID)
	})

	t.Run("decline inserts the offer alone", func(t *testing.T) {
		env := newTestEnv(1, testTTL)
		view := openSession(t, env)
		id := view.Session.ID

		_, err := env.sessionSvc.AddToCart(id, catalog.ProServicesOfferID, nil)
		require.NoError(t, err)

		view, err = env.sessionSvc.ResolveProServices(id, false)
		require.NoError(t, err)
		assert.Empty(t, view.Session.PendingProOffer)
		require.Len(t, view.Session.Cart, 1)
		assert.Equal(t, catalog.ProServicesOfferID, view.Session.Cart[0].OfferID)
	})

	t.Run("answering without a prompt fails", func(t *testing.T) {
		env := newTestEnv(1, testTTL)
		view := openSession(t, env)

		_, err := env.sessionSvc.ResolveProServices(view.Session.ID, true)
		assert.ErrorIs(t, err, ErrNoPendingProOffer)
	})

	t.Run("chat purchase skips the prompt", func(t *testing.T) {
		env := newTestEnv(1, testTTL)
		view := openSession(t, env)
		id := view.Session.ID

		_, err := env.sessionSvc.StartOfferChat(id, catalog.ProServicesOfferID)
		require.NoError(t, err)
		_, err = env.sessionSvc.SubmitOfferChatMessage(id, "je veux commander", false)
		require.NoError(t, err)

		env.sched.Advance(typingDelay + cartFollowUpDelay)
		view, err = env.sessionSvc.State(id)
		require.NoError(t, err)
		assert.Empty(t, view.Session.PendingProOffer)
		require.Len(t, view.Session.Cart, 1)
		assert.Equal(t, catalog.ProServicesOfferID, view.Session.Cart[0].OfferID)
	})
}

func TestContactFlowAutoCloses(t *testing.T) {
	env := newTestEnv(1, testTTL)
	view := openSession(t, env)
	id := view.Session.ID

	view, err := env.sessionSvc.StartContact(id)
	require.NoError(t, err)
	assert.Equal(t, models.ViewContact, view.View)

	view, err = env.sessionSvc.SubmitContact(id, ContactRequest{
		Name:  "Marie Dupont",
		Email: "marie.dupont@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ViewContactConfirmation, view.View)

	env.sched.Advance(contactAutoCloseDelay)

	_, err = env.sessionSvc.State(id)
	assert.ErrorIs(t, err, ErrSessionClosed)
}

func TestRfpFlow(t *testing.T) {
	env := newTestEnv(1, testTTL)
	view := openSession(t, env)
	id := view.Session.ID

	view, err := env.sessionSvc.StartRfp(id)
	require.NoError(t, err)
	assert.Equal(t, models.ViewRfp, view.View)

	view, err = env.sessionSvc.SubmitRfp(id, "Appel d'offres : raccordement SD-WAN de 40 agences avec cybersecurity managée")
	require.NoError(t, err)
	assert.Equal(t, models.ViewRfpAnalyzing, view.View)

	env.sched.Advance(rfpAnalyzingDelay)
	view, err = env.sessionSvc.State(id)
	require.NoError(t, err)
	assert.Equal(t, models.ViewRfpSummary, view.View)
	assert.Contains(t, view.Session.Selected, "sd-wan")
}

func TestVoiceSearchPlayback(t *testing.T) {
	env := newTestEnv(1, testTTL)
	view := openSession(t, env)
	id := view.Session.ID

	view, err := env.sessionSvc.StartVoiceSearch(id)
	require.NoError(t, err)
	require.NotNil(t, view.Session.Voice)
	assert.Equal(t, models.VoiceListening, view.Session.Voice.Status)

	_, err = env.sessionSvc.StartVoiceSearch(id)
	assert.ErrorIs(t, err, ErrAgentBusy)

	env.sched.Advance(voiceListeningDelay)
	view, err = env.sessionSvc.State(id)
	require.NoError(t, err)
	require.NotNil(t, view.Session.Voice)
	assert.Equal(t, models.VoiceTranscribing, view.Session.Voice.Status)

	transcriptionTime := time.Duration(len([]rune(voiceTranscript))) * voiceCharDelay
	env.sched.Advance(transcriptionTime)
	view, err = env.sessionSvc.State(id)
	require.NoError(t, err)
	require.NotNil(t, view.Session.Voice)
	assert.Equal(t, voiceTranscript, view.Session.Voice.Transcript)

	env.sched.Advance(voiceHoldDelay)
	view, err = env.sessionSvc.State(id)
	require.NoError(t, err)
	require.NotNil(t, view.Session.Voice)
	assert.Equal(t, models.VoiceProcessing, view.Session.Voice.Status)

	env.sched.Advance(voiceProcessingDelay)
	view, err = env.sessionSvc.State(id)
	require.NoError(t, err)
	assert.Nil(t, view.Session.Voice)
	assert.Equal(t, models.ViewRefinement, view.View)
	assert.Equal(t, []string{"sd-wan"}, view.Session.Selected)
	assert.Equal(t, "cio", view.Session.ActivePersona)
}

func TestResetDropsPendingEffects(t *testing.T) {
	env := newTestEnv(1, testTTL)
	view := openSession(t, env)
	id := view.Session.ID

	_, err := env.sessionSvc.StartOfferChat(id, "O004")
	require.NoError(t, err)
	_, err = env.sessionSvc.SubmitOfferChatMessage(id, "je veux commander", false)
	require.NoError(t, err)

	view, err = env.sessionSvc.Reset(id)
	require.NoError(t, err)
	assert.Equal(t, models.ViewInitial, view.View)
	assert.Empty(t, view.Session.OfferChat.History)

	// The scripted reply and its cart side effect were scheduled before
	// the reset; both must be dropped.
	env.sched.Advance(typingDelay + cartFollowUpDelay)
	view, err = env.sessionSvc.State(id)
	require.NoError(t, err)
	assert.Empty(t, view.Session.OfferChat.History)
	assert.Empty(t, view.Session.Cart)
}

func TestCloseDropsPendingEffects(t *testing.T) {
	env := newTestEnv(1, testTTL)
	view := openSession(t, env)
	id := view.Session.ID

	_, err := env.sessionSvc.SubmitPrompt(id, "un SD-WAN")
	require.NoError(t, err)

	require.NoError(t, env.sessionSvc.Close(id))

	// Firing the analysis after close must not panic or resurrect state
	env.sched.Advance(promptAnalysisDelay)

	_, err = env.sessionSvc.State(id)
	assert.Error(t, err)
}

func TestCleanupExpired(t *testing.T) {
	env := newTestEnv(1, time.Millisecond)
	view := openSession(t, env)

	time.Sleep(5 * time.Millisecond)
	removed := env.sessionSvc.CleanupExpired()
	assert.Equal(t, 1, removed)

	_, err := env.sessionSvc.State(view.Session.ID)
	assert.Error(t, err)
}
