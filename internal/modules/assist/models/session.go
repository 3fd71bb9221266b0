package models

import (
	"time"

	"github.com/google/uuid"
)

// ViewState identifies which panel of the widget renders. Exactly one
// state is active at a time; this is a flat state machine, not a stack.
type ViewState string

const (
	ViewInitial             ViewState = "initial"
	ViewRefinement          ViewState = "refinement"
	ViewProactiveMessage    ViewState = "proactive_message"
	ViewContact             ViewState = "contact"
	ViewContactConfirmation ViewState = "contact_confirmation"
	ViewFaq                 ViewState = "faq"
	ViewOfferChat           ViewState = "offer_chat"
	ViewRfp                 ViewState = "rfp"
	ViewRfpAnalyzing        ViewState = "rfp_analyzing"
	ViewRfpSummary          ViewState = "rfp_summary"
)

// MessageRole identifies the author of a chat message
type MessageRole string

const (
	RoleUser  MessageRole = "user"
	RoleAgent MessageRole = "agent"
)

// ChatMessage is a single entry of an append-only conversation history
type ChatMessage struct {
	ID          uuid.UUID   `json:"id"`
	Role        MessageRole `json:"role"`
	Text        string      `json:"text"`
	Suggestions []string    `json:"suggestions,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

// CartEntry references an offer placed in the session cart
type CartEntry struct {
	OfferID   string    `json:"offer_id"`
	OfferName string    `json:"offer_name"`
	AddedAt   time.Time `json:"added_at"`
}

// FlightPoint is a screen coordinate used by the cosmetic fly-to-cart
// animation. It has no effect on cart correctness.
type FlightPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// FlightRect is the source bounding box of a fly-to-cart animation
type FlightRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// CartFlight records the origin and destination of the last fly-to-cart
// animation so a graphical client can replay it.
type CartFlight struct {
	OfferID string      `json:"offer_id"`
	Source  FlightRect  `json:"source"`
	Target  FlightPoint `json:"target"`
}

// VoiceStatus is the stage of the simulated voice search
type VoiceStatus string

const (
	VoiceListening    VoiceStatus = "listening"
	VoiceTranscribing VoiceStatus = "transcribing"
	VoiceProcessing   VoiceStatus = "processing"
)

// VoiceState tracks the scripted voice-search playback
type VoiceState struct {
	Status     VoiceStatus `json:"status"`
	Transcript string      `json:"transcript"`
}

// OfferChatState holds the advisor conversation for one active offer
type OfferChatState struct {
	OfferID             string        `json:"offer_id,omitempty"`
	History             []ChatMessage `json:"history"`
	Typing              bool          `json:"typing"`
	SuggestedQuestions  []string      `json:"suggested_questions,omitempty"`
	GeneratingQuestions bool          `json:"generating_questions"`
}

// FaqChatState holds the FAQ conversation and its quick-start prompts
type FaqChatState struct {
	History []ChatMessage `json:"history"`
	Typing  bool          `json:"typing"`
	Prompts []string      `json:"prompts,omitempty"`
}

// Session is the whole widget state for one visitor. Everything here is
// session-scoped: created at open, reset on demand, discarded at close.
type Session struct {
	ID              uuid.UUID           `json:"id"`
	Locale          string              `json:"locale"`
	CurrentURL      string              `json:"current_url,omitempty"`
	View            ViewState           `json:"view"`
	Selected        []string            `json:"selected"`
	ActivePersona   string              `json:"active_persona,omitempty"`
	InitialKeywords []KeywordSuggestion `json:"initial_keywords"`
	Cart            []CartEntry         `json:"cart"`
	LastFlight      *CartFlight         `json:"last_flight,omitempty"`
	PendingProOffer string              `json:"pending_pro_offer,omitempty"`
	// PendingProFlight stashes the animation flight of the held add so
	// it can replay once the companion prompt is answered.
	PendingProFlight *CartFlight `json:"-"`
	OfferChat       OfferChatState      `json:"offer_chat"`
	FaqChat         FaqChatState        `json:"faq_chat"`
	Voice           *VoiceState         `json:"voice,omitempty"`
	PromptLoading   bool                `json:"prompt_loading"`
	Closed          bool                `json:"closed"`

	// Generation increments on reset/close so stale timer callbacks
	// from a previous lifecycle are dropped.
	Generation uint64 `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ExpiresAt time.Time `json:"-"`
}

// IsSelected reports whether the keyword is currently selected
func (s *Session) IsSelected(keyword string) bool {
	for _, kw := range s.Selected {
		if kw == keyword {
			return true
		}
	}
	return false
}

// InCart reports whether the offer is already in the cart
func (s *Session) InCart(offerID string) bool {
	for _, entry := range s.Cart {
		if entry.OfferID == offerID {
			return true
		}
	}
	return false
}

// AddToCart inserts the offer if absent. Duplicate adds are a no-op.
func (s *Session) AddToCart(entry CartEntry) bool {
	if s.InCart(entry.OfferID) {
		return false
	}
	s.Cart = append(s.Cart, entry)
	return true
}

// RemoveFromCart drops the offer from the cart
func (s *Session) RemoveFromCart(offerID string) bool {
	for i, entry := range s.Cart {
		if entry.OfferID == offerID {
			s.Cart = append(s.Cart[:i], s.Cart[i+1:]...)
			return true
		}
	}
	return false
}

// IsExpired checks whether the session passed its idle deadline
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Touch refreshes the idle deadline
func (s *Session) Touch(ttl time.Duration) {
	s.UpdatedAt = time.Now()
	s.ExpiresAt = s.UpdatedAt.Add(ttl)
}
