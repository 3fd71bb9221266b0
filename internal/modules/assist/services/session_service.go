package services

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/offerassist/assist-agent-be/internal/core/i18n"
	"github.com/offerassist/assist-agent-be/internal/core/scheduler"
	"github.com/offerassist/assist-agent-be/internal/modules/assist/catalog"
	"github.com/offerassist/assist-agent-be/internal/modules/assist/models"
	"github.com/offerassist/assist-agent-be/internal/modules/assist/repositories"
	"github.com/offerassist/assist-agent-be/internal/shared/utils"
)

var (
	ErrSessionClosed = errors.New("session is closed")
	ErrAgentBusy     = errors.New("agent is already composing a reply")
	ErrInvalidView   = errors.New("operation not allowed in the current view")
)

// Scripted delays. These pace the simulated agent so a polling client
// observes the same typing rhythm as a human advisor would produce.
const (
	typingDelay           = 2 * time.Second
	cartFollowUpDelay     = 1 * time.Second
	contactFollowUpDelay  = 1500 * time.Millisecond
	promptAnalysisDelay   = 1500 * time.Millisecond
	questionGenDelay      = 2 * time.Second
	contactAutoCloseDelay = 2500 * time.Millisecond
	rfpAnalyzingDelay     = 2500 * time.Millisecond
	voiceListeningDelay   = 1500 * time.Millisecond
	voiceCharDelay        = 50 * time.Millisecond
	voiceHoldDelay        = 1 * time.Second
	voiceProcessingDelay  = 2 * time.Second
)

// voiceTranscript is the fixed utterance the simulated voice search
// pretends to hear.
const voiceTranscript = "J'ai besoin de pouvoir raccorder un nouveau site à internet et avec un SD-WAN."

// voice search always resolves to the flagship connectivity need
var (
	voiceResultKeywords = []string{"sd-wan"}
	voiceResultPersona  = "cio"
)

// ContactRequest carries the advisor callback form. It is acknowledged
// and logged, never persisted.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
	Message string `json:"message,omitempty"`
}

// ProactivePayload is the localized attention-grabbing message rendered
// when the widget opens on a page with a registered trigger.
type ProactivePayload struct {
	Message string `json:"message"`
	CTA     string `json:"cta"`
}

// OfferView is an offer localized for the session's language
type OfferView struct {
	OfferID     string   `json:"offer_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Keywords    []string `json:"keywords"`
}

// SessionView is the full widget state a client renders from. View is
// the effective view: it substitutes the proactive message for the
// initial panel when the current page carries a trigger.
type SessionView struct {
	Session           *models.Session   `json:"session"`
	View              models.ViewState  `json:"view"`
	Proactive         *ProactivePayload `json:"proactive,omitempty"`
	AvailableKeywords []string          `json:"available_keywords"`
	Offers            []OfferView       `json:"offers"`
}

// SessionService orchestrates the widget state machine. All mutations
// run under a single mutex, and every deferred effect is guarded by the
// session generation so a reset or close cancels the previous
// lifecycle's timers.
type SessionService struct {
	mu sync.Mutex

	sessionRepo repositories.SessionRepo
	keywordSvc  *KeywordService
	advisorSvc  *AdvisorService
	faqSvc      *FaqService
	cartSvc     *CartService
	sched       scheduler.Scheduler

	ttl            time.Duration
	minOccurrences int
	defaultLocale  string
}

func NewSessionService(
	sessionRepo repositories.SessionRepo,
	keywordSvc *KeywordService,
	advisorSvc *AdvisorService,
	faqSvc *FaqService,
	cartSvc *CartService,
	sched scheduler.Scheduler,
	ttl time.Duration,
	minOccurrences int,
	defaultLocale string,
) *SessionService {
	return &SessionService{
		sessionRepo:    sessionRepo,
		keywordSvc:     keywordSvc,
		advisorSvc:     advisorSvc,
		faqSvc:         faqSvc,
		cartSvc:        cartSvc,
		sched:          sched,
		ttl:            ttl,
		minOccurrences: minOccurrences,
		defaultLocale:  defaultLocale,
	}
}

// Open creates a fresh session for one widget instance
func (s *SessionService) Open(locale, currentURL string) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if locale == "" {
		locale = s.defaultLocale
	} else if !i18n.Supported(locale) {
		utils.LogWarn("🌐 Unsupported locale requested, using default", map[string]interface{}{
			"requested": locale,
			"default":   s.defaultLocale,
		})
		locale = s.defaultLocale
	}

	session := &models.Session{
		ID:         uuid.New(),
		Locale:     locale,
		CurrentURL: currentURL,
		View:       models.ViewInitial,
		Selected:   []string{},
		Cart:       []models.CartEntry{},
		CreatedAt:  time.Now(),
	}
	session.Touch(s.ttl)

	if err := s.populateInitialState(session); err != nil {
		return nil, err
	}
	if err := s.sessionRepo.Create(session); err != nil {
		return nil, err
	}

	utils.LogInfo("🆕 Session opened", map[string]interface{}{
		"session_id": session.ID.String(),
		"locale":     locale,
	})
	return s.buildView(session)
}

// State returns the current widget state
func (s *SessionService) State(sessionID uuid.UUID) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.getOpen(sessionID)
	if err != nil {
		return nil, err
	}
	return s.buildView(session)
}

// SelectKeyword adds a keyword to the selection and moves the widget to
// the refinement panel. Selecting an already selected keyword is a
// no-op.
func (s *SessionService) SelectKeyword(sessionID uuid.UUID, keyword string) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.getOpen(sessionID)
	if err != nil {
		return nil, err
	}

	if !session.IsSelected(keyword) {
		session.Selected = append(session.Selected, keyword)
		session.ActivePersona = catalog.PersonaForKeyword(keyword)
	}
	session.View = models.ViewRefinement
	session.Touch(s.ttl)

	return s.buildView(session)
}

// DeselectKeyword removes a keyword from the selection. Emptying the
// selection returns the widget to the initial panel.
func (s *SessionService) DeselectKeyword(sessionID uuid.UUID, keyword string) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.getOpen(sessionID)
	if err != nil {
		return nil, err
	}

	kept := session.Selected[:0]
	for _, kw := range session.Selected {
		if kw != keyword {
			kept = append(kept, kw)
		}
	}
	session.Selected = kept

	if len(session.Selected) == 0 {
		session.View = models.ViewInitial
		session.ActivePersona = ""
	}
	session.Touch(s.ttl)

	return s.buildView(session)
}

// SubmitPrompt runs the simulated analysis of a free-text need. The
// extracted keywords replace the selection once the analysis delay
// elapses.
func (s *SessionService) SubmitPrompt(sessionID uuid.UUID, prompt string) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.getOpen(sessionID)
	if err != nil {
		return nil, err
	}
	if session.PromptLoading {
		return nil, ErrAgentBusy
	}

	session.PromptLoading = true
	session.Touch(s.ttl)

	s.after(session, promptAnalysisDelay, func(sess *models.Session) {
		sess.PromptLoading = false

		extracted, err := s.keywordSvc.ExtractKeywords(prompt)
		if err != nil {
			utils.LogError("❌ Prompt analysis failed", err, nil)
			return
		}
		if len(extracted) == 0 {
			sess.Selected = []string{}
			return
		}
		sess.Selected = extracted
		sess.ActivePersona = catalog.PersonaForKeyword(extracted[0])
		sess.View = models.ViewRefinement
	})

	return s.buildView(session)
}

// StartOfferChat opens the advisor conversation for one offer. The
// welcome message appears immediately; the suggested follow-up
// questions arrive after the generation delay.
func (s *SessionService) StartOfferChat(sessionID uuid.UUID, offerID string) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.getOpen(sessionID)
	if err != nil {
		return nil, err
	}

	offer, err := s.cartSvc.lookup(offerID)
	if err != nil {
		return nil, err
	}

	tr := i18n.NewTranslator(session.Locale)
	offerName := tr.OfferName(offer.OfferID, offer.Name)

	session.View = models.ViewOfferChat
	session.OfferChat = models.OfferChatState{
		OfferID: offer.OfferID,
		History: []models.ChatMessage{
			agentMessage(tr.Tf("ui_agent_welcome", map[string]string{"offerName": offerName}), nil),
		},
		GeneratingQuestions: true,
	}
	session.Touch(s.ttl)

	s.after(session, questionGenDelay, func(sess *models.Session) {
		if sess.OfferChat.OfferID != offer.OfferID {
			return
		}
		sess.OfferChat.SuggestedQuestions = s.advisorSvc.SuggestedQuestions()
		sess.OfferChat.GeneratingQuestions = false
	})

	return s.buildView(session)
}

// SubmitOfferChatMessage sends a visitor utterance to the advisor. The
// reply lands after the typing delay; purchase and contact intents also
// carry a deferred side effect. fromSuggestion marks a click on a chip,
// which consumes the clicked message's suggestion list.
//
// The two localized quick-reply labels are not utterances: clicking
// them performs the action immediately, with no echoed message, no
// typing pause and no classification.
func (s *SessionService) SubmitOfferChatMessage(sessionID uuid.UUID, text string, fromSuggestion bool) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.getOpen(sessionID)
	if err != nil {
		return nil, err
	}
	if session.View != models.ViewOfferChat || session.OfferChat.OfferID == "" {
		return nil, ErrInvalidView
	}
	if session.OfferChat.Typing {
		return nil, ErrAgentBusy
	}

	tr := i18n.NewTranslator(session.Locale)
	offerID := session.OfferChat.OfferID
	offerName := s.offerDisplayName(offerID, tr)

	switch text {
	case tr.T("ui_add_to_cart"):
		clearLastAgentSuggestions(&session.OfferChat)
		// The advisor already closed the sale; skip the companion
		// prompt.
		if _, err := s.cartSvc.AddDirect(session, offerID, nil, tr); err != nil {
			return nil, err
		}
		session.Touch(s.ttl)
		return s.buildView(session)
	case tr.T("ui_contact_an_expert"):
		clearLastAgentSuggestions(&session.OfferChat)
		session.View = models.ViewContact
		session.Touch(s.ttl)
		return s.buildView(session)
	}

	session.OfferChat.History = append(session.OfferChat.History, userMessage(text))
	session.OfferChat.Typing = true
	session.OfferChat.SuggestedQuestions = nil
	if fromSuggestion {
		clearLastAgentSuggestions(&session.OfferChat)
	}
	session.Touch(s.ttl)

	response := s.advisorSvc.Classify(text, offerName, tr)

	s.after(session, typingDelay, func(sess *models.Session) {
		if sess.OfferChat.OfferID != offerID {
			return
		}
		sess.OfferChat.Typing = false
		sess.OfferChat.History = append(sess.OfferChat.History, agentMessage(response.Text, response.Suggestions))

		switch response.Action {
		case ActionAddToCart:
			s.after(sess, cartFollowUpDelay, func(inner *models.Session) {
				innerTr := i18n.NewTranslator(inner.Locale)
				if _, err := s.cartSvc.AddDirect(inner, offerID, nil, innerTr); err != nil {
					utils.LogError("❌ Deferred cart add failed", err, map[string]interface{}{
						"offer_id": offerID,
					})
				}
			})
		case ActionContactAdvisor:
			s.after(sess, contactFollowUpDelay, func(inner *models.Session) {
				inner.View = models.ViewContact
			})
		}
	})

	return s.buildView(session)
}

// OpenFaq switches to the help panel and refreshes its prompt chips
func (s *SessionService) OpenFaq(sessionID uuid.UUID) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.getOpen(sessionID)
	if err != nil {
		return nil, err
	}

	session.View = models.ViewFaq
	prompts, err := s.faqSvc.PromptSuggestions()
	if err != nil {
		return nil, err
	}
	session.FaqChat.Prompts = prompts
	session.Touch(s.ttl)

	return s.buildView(session)
}

// SubmitFaqMessage asks the help assistant a question. The answer (or
// the no-answer fallback with its expert escalation chip) lands after
// the typing delay, and the prompt chips are redrawn.
func (s *SessionService) SubmitFaqMessage(sessionID uuid.UUID, text string) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.getOpen(sessionID)
	if err != nil {
		return nil, err
	}
	if session.FaqChat.Typing {
		return nil, ErrAgentBusy
	}

	tr := i18n.NewTranslator(session.Locale)

	// The escalation chip jumps straight to the contact form
	if text == tr.T("ui_contact_an_expert") {
		session.View = models.ViewContact
		session.Touch(s.ttl)
		return s.buildView(session)
	}

	session.View = models.ViewFaq
	session.FaqChat.History = append(session.FaqChat.History, userMessage(text))
	session.FaqChat.Typing = true
	session.Touch(s.ttl)

	answer, found, err := s.faqSvc.Answer(text)
	if err != nil {
		session.FaqChat.Typing = false
		return nil, err
	}

	s.after(session, typingDelay, func(sess *models.Session) {
		sess.FaqChat.Typing = false
		if found {
			sess.FaqChat.History = append(sess.FaqChat.History, agentMessage(answer, nil))
		} else {
			sess.FaqChat.History = append(sess.FaqChat.History,
				agentMessage(tr.T("ui_faq_no_answer"), []string{tr.T("ui_contact_an_expert")}))
		}
		if prompts, err := s.faqSvc.PromptSuggestions(); err == nil {
			sess.FaqChat.Prompts = prompts
		}
	})

	return s.buildView(session)
}

// AddToCart puts an offer in the cart, recording the optional animation
// flight. Duplicates are a silent no-op.
func (s *SessionService) AddToCart(sessionID uuid.UUID, offerID string, flight *models.CartFlight) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.getOpen(sessionID)
	if err != nil {
		return nil, err
	}

	tr := i18n.NewTranslator(session.Locale)
	if _, err := s.cartSvc.Add(session, offerID, flight, tr); err != nil {
		return nil, err
	}
	session.Touch(s.ttl)

	return s.buildView(session)
}

// RemoveFromCart drops an offer from the cart
func (s *SessionService) RemoveFromCart(sessionID uuid.UUID, offerID string) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.getOpen(sessionID)
	if err != nil {
		return nil, err
	}

	s.cartSvc.Remove(session, offerID)
	session.Touch(s.ttl)

	return s.buildView(session)
}

// ResolveProServices answers the pending professional-services prompt
func (s *SessionService) ResolveProServices(sessionID uuid.UUID, accepted bool) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.getOpen(sessionID)
	if err != nil {
		return nil, err
	}

	tr := i18n.NewTranslator(session.Locale)
	if accepted {
		err = s.cartSvc.ConfirmProServices(session, tr)
	} else {
		err = s.cartSvc.DeclineProServices(session, tr)
	}
	if err != nil {
		return nil, err
	}
	session.Touch(s.ttl)

	return s.buildView(session)
}

// StartContact opens the advisor callback form. It also serves the
// proactive message CTA.
func (s *SessionService) StartContact(sessionID uuid.UUID) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.getOpen(sessionID)
	if err != nil {
		return nil, err
	}

	session.View = models.ViewContact
	session.Touch(s.ttl)

	return s.buildView(session)
}

// SubmitContact acknowledges the callback form and shows the
// confirmation panel, which closes the widget on its own shortly after.
// The form content is logged, never stored.
func (s *SessionService) SubmitContact(sessionID uuid.UUID, req ContactRequest) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.getOpen(sessionID)
	if err != nil {
		return nil, err
	}
	if session.View != models.ViewContact {
		return nil, ErrInvalidView
	}

	utils.LogInfo("📞 Contact request received", map[string]interface{}{
		"session_id": session.ID.String(),
		"email":      req.Email,
	})

	session.View = models.ViewContactConfirmation
	session.Touch(s.ttl)

	s.after(session, contactAutoCloseDelay, func(sess *models.Session) {
		sess.Closed = true
	})

	return s.buildView(session)
}

// StartRfp opens the request-for-proposal panel
func (s *SessionService) StartRfp(sessionID uuid.UUID) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.getOpen(sessionID)
	if err != nil {
		return nil, err
	}

	session.View = models.ViewRfp
	session.Touch(s.ttl)

	return s.buildView(session)
}

// SubmitRfp runs the simulated analysis of a pasted RFP. The analyzing
// panel holds for its scripted delay, then the summary replaces the
// selection with the keywords mined from the document.
func (s *SessionService) SubmitRfp(sessionID uuid.UUID, document string) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.getOpen(sessionID)
	if err != nil {
		return nil, err
	}
	if session.View != models.ViewRfp {
		return nil, ErrInvalidView
	}

	session.View = models.ViewRfpAnalyzing
	session.Touch(s.ttl)

	s.after(session, rfpAnalyzingDelay, func(sess *models.Session) {
		if sess.View != models.ViewRfpAnalyzing {
			return
		}
		extracted, err := s.keywordSvc.ExtractKeywords(document)
		if err != nil {
			utils.LogError("❌ RFP analysis failed", err, nil)
			extracted = nil
		}
		sess.Selected = extracted
		if len(extracted) > 0 {
			sess.ActivePersona = catalog.PersonaForKeyword(extracted[0])
		}
		sess.View = models.ViewRfpSummary
	})

	return s.buildView(session)
}

// StartVoiceSearch plays the scripted voice capture: a listening pause,
// a character-by-character transcription, a processing hold, then the
// refinement panel with the resolved keywords.
func (s *SessionService) StartVoiceSearch(sessionID uuid.UUID) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.getOpen(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Voice != nil {
		return nil, ErrAgentBusy
	}

	session.Voice = &models.VoiceState{Status: models.VoiceListening}
	session.Touch(s.ttl)

	runes := []rune(voiceTranscript)

	s.after(session, voiceListeningDelay, func(sess *models.Session) {
		if sess.Voice == nil {
			return
		}
		sess.Voice.Status = models.VoiceTranscribing

		for i := range runes {
			prefix := string(runes[:i+1])
			last := i == len(runes)-1
			s.after(sess, time.Duration(i+1)*voiceCharDelay, func(inner *models.Session) {
				if inner.Voice == nil || inner.Voice.Status != models.VoiceTranscribing {
					return
				}
				inner.Voice.Transcript = prefix
				if !last {
					return
				}
				s.after(inner, voiceHoldDelay, func(held *models.Session) {
					if held.Voice == nil {
						return
					}
					held.Voice.Status = models.VoiceProcessing
					s.after(held, voiceProcessingDelay, func(done *models.Session) {
						if done.Voice == nil {
							return
						}
						done.Voice = nil
						done.Selected = append([]string{}, voiceResultKeywords...)
						done.ActivePersona = voiceResultPersona
						done.View = models.ViewRefinement
					})
				})
			})
		}
	})

	return s.buildView(session)
}

// Reset returns the session to a fresh just-opened state. The bumped
// generation drops every timer the previous lifecycle scheduled.
func (s *SessionService) Reset(sessionID uuid.UUID) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessionRepo.Get(sessionID)
	if err != nil {
		return nil, err
	}

	session.Generation++
	session.View = models.ViewInitial
	session.Selected = []string{}
	session.ActivePersona = ""
	session.Cart = []models.CartEntry{}
	session.LastFlight = nil
	session.PendingProOffer = ""
	session.PendingProFlight = nil
	session.OfferChat = models.OfferChatState{}
	session.FaqChat = models.FaqChatState{}
	session.Voice = nil
	session.PromptLoading = false
	session.Closed = false

	if err := s.populateInitialState(session); err != nil {
		return nil, err
	}
	session.Touch(s.ttl)

	utils.LogInfo("🔄 Session reset", map[string]interface{}{
		"session_id": session.ID.String(),
	})
	return s.buildView(session)
}

// Close discards the session entirely
func (s *SessionService) Close(sessionID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessionRepo.Get(sessionID)
	if err != nil {
		return err
	}

	session.Generation++
	session.Closed = true
	s.sessionRepo.Delete(sessionID)

	utils.LogInfo("👋 Session closed", map[string]interface{}{
		"session_id": sessionID.String(),
	})
	return nil
}

// CleanupExpired removes idle sessions past their deadline. Wired to
// the cron sweeper.
func (s *SessionService) CleanupExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionRepo.CleanupExpired()
}

// after schedules fn against the session's current generation. The
// callback is dropped when the session disappeared, closed, or moved to
// a new generation in the meantime.
func (s *SessionService) after(session *models.Session, delay time.Duration, fn func(sess *models.Session)) {
	sessionID := session.ID
	gen := session.Generation

	s.sched.Schedule(delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		sess, err := s.sessionRepo.Get(sessionID)
		if err != nil || sess.Closed || sess.Generation != gen {
			return
		}
		fn(sess)
		sess.Touch(s.ttl)
	})
}

// getOpen fetches a session that is still interactive
func (s *SessionService) getOpen(sessionID uuid.UUID) (*models.Session, error) {
	session, err := s.sessionRepo.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Closed {
		return nil, ErrSessionClosed
	}
	return session, nil
}

// populateInitialState fills the pieces a fresh lifecycle starts with
func (s *SessionService) populateInitialState(session *models.Session) error {
	suggestions, err := s.keywordSvc.GenerateInitialKeywords(s.minOccurrences)
	if err != nil {
		return err
	}
	session.InitialKeywords = suggestions

	prompts, err := s.faqSvc.PromptSuggestions()
	if err != nil {
		return err
	}
	session.FaqChat.Prompts = prompts
	return nil
}

// clearLastAgentSuggestions consumes the quick-reply chips of the most
// recent agent message so a rendered chip cannot be clicked twice.
func clearLastAgentSuggestions(chat *models.OfferChatState) {
	for i := len(chat.History) - 1; i >= 0; i-- {
		if chat.History[i].Role == models.RoleAgent {
			chat.History[i].Suggestions = nil
			return
		}
	}
}

// offerDisplayName resolves the localized name of an offer, falling
// back to the raw identifier if the catalog row vanished.
func (s *SessionService) offerDisplayName(offerID string, tr *i18n.Translator) string {
	offer, err := s.cartSvc.lookup(offerID)
	if err != nil {
		return offerID
	}
	return tr.OfferName(offer.OfferID, offer.Name)
}

// buildView assembles the client-facing snapshot: effective view,
// proactive payload, refinement facets, and the localized matching
// offers.
func (s *SessionService) buildView(session *models.Session) (*SessionView, error) {
	tr := i18n.NewTranslator(session.Locale)

	available, err := s.keywordSvc.AvailableKeywords(session.Selected)
	if err != nil {
		return nil, err
	}
	matched, err := s.keywordSvc.FilterOffers(session.Selected)
	if err != nil {
		return nil, err
	}

	offers := make([]OfferView, 0, len(matched))
	for _, offer := range matched {
		offers = append(offers, OfferView{
			OfferID:     offer.OfferID,
			Name:        tr.OfferName(offer.OfferID, offer.Name),
			Description: tr.OfferDesc(offer.OfferID, offer.Description),
			URL:         offer.URL,
			Keywords:    offer.DisplayKeywords(),
		})
	}

	// Snapshot the session so timer callbacks cannot mutate the state
	// while the caller serializes it.
	snapshot := *session
	if session.Voice != nil {
		voice := *session.Voice
		snapshot.Voice = &voice
	}
	if session.LastFlight != nil {
		flight := *session.LastFlight
		snapshot.LastFlight = &flight
	}

	view := &SessionView{
		Session:           &snapshot,
		View:              session.View,
		AvailableKeywords: available,
		Offers:            offers,
	}

	if session.View == models.ViewInitial && len(session.Selected) == 0 {
		if trigger, ok := catalog.ProactiveTriggers[session.CurrentURL]; ok {
			view.View = models.ViewProactiveMessage
			view.Proactive = &ProactivePayload{
				Message: tr.T(trigger.MessageKey),
				CTA:     tr.T(trigger.CTAKey),
			}
		}
	}

	return view, nil
}

func userMessage(text string) models.ChatMessage {
	return models.ChatMessage{
		ID:        uuid.New(),
		Role:      models.RoleUser,
		Text:      text,
		CreatedAt: time.Now(),
	}
}

func agentMessage(text string, suggestions []string) models.ChatMessage {
	return models.ChatMessage{
		ID:          uuid.New(),
		Role:        models.RoleAgent,
		Text:        text,
		Suggestions: suggestions,
		CreatedAt:   time.Now(),
	}
}
